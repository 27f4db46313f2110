package cmd

import (
	"fmt"
	"os"

	"github.com/go-drift/hammer/cmd/hammer/internal/raster"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render the animation to an animated GIF",
		Long: `Render the animation offline to an animated GIF.

The view runs on a simulated clock that advances one frame delay per
frame, so the output does not depend on machine speed. The first row is
tapped at frame 0 and again every --tap-every frames.

Flags:
  -o, --out FILE     Output file (default: hammer.gif)
  --width W          Surface width in pixels (default: 225)
  --height H         Surface height in pixels (default: 450)
  --frames N         Number of frames (default: 600)
  --tap-every N      Frames between taps, 0 for a single tap (default: 60)
  --colors N         GIF palette size, 2-256 (default: 32)`,
		Usage: "hammer render [-o FILE] [--width W] [--height H] [--frames N] [--tap-every N] [--colors N]",
		Run:   runRender,
	})
}

type renderOptions struct {
	surfaceOptions
	frames   int
	tapEvery int
	colors   int
}

func parseRenderArgs(args []string) (renderOptions, error) {
	opts := renderOptions{
		surfaceOptions: surfaceOptions{out: "hammer.gif", width: 225, height: 450},
		frames:         600,
		tapEvery:       60,
		colors:         32,
	}
	for i := 0; i < len(args); i++ {
		if ok, err := opts.surfaceOptions.parse(args, &i); ok {
			if err != nil {
				return opts, err
			}
			continue
		}
		if ok, err := intFlag(args, &i, "--frames", &opts.frames); ok {
			if err != nil {
				return opts, err
			}
			continue
		}
		if ok, err := intFlag(args, &i, "--tap-every", &opts.tapEvery); ok {
			if err != nil {
				return opts, err
			}
			continue
		}
		if ok, err := intFlag(args, &i, "--colors", &opts.colors); ok {
			if err != nil {
				return opts, err
			}
			continue
		}
		return opts, fmt.Errorf("unknown flag %q", args[i])
	}
	if err := opts.validate(); err != nil {
		return opts, err
	}
	if opts.frames < 1 {
		return opts, fmt.Errorf("--frames must be at least 1")
	}
	return opts, nil
}

func runRender(args []string) error {
	opts, err := parseRenderArgs(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	f, err := os.Create(opts.out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", opts.out, err)
	}
	defer f.Close()

	fmt.Fprintf(os.Stderr, "Rendering %d frames at %dx%d...\n", opts.frames, opts.width, opts.height)
	err = raster.EncodeGIF(f, cfg.Config, raster.GIFOptions{
		Width:    opts.width,
		Height:   opts.height,
		Frames:   opts.frames,
		TapEvery: opts.tapEvery,
		Colors:   opts.colors,
	})
	if err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.out, err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", opts.out)
	return nil
}
