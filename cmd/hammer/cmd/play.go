package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/hammer/cmd/hammer/internal/sound"
	"github.com/go-drift/hammer/cmd/hammer/internal/term"
	"github.com/go-drift/hammer/pkg/errors"
	"github.com/go-drift/hammer/pkg/hammer"
)

func init() {
	RegisterCommand(&Command{
		Name:  "play",
		Short: "Animate in the terminal",
		Long: `Animate the view in the terminal.

Controls:
  space, enter, click   Start the waiting row
  q, Esc, Ctrl-C        Quit

Log output is discarded while the screen is active unless --log is given.

Flags:
  --sound        Play a strike tone when a row lands
  --log FILE     Append log output to FILE`,
		Usage: "hammer play [--sound] [--log FILE]",
		Run:   runPlay,
	})
}

type playOptions struct {
	sound   bool
	logFile string
}

func parsePlayArgs(args []string) (playOptions, error) {
	var opts playOptions
	for i := 0; i < len(args); i++ {
		if args[i] == "--sound" {
			opts.sound = true
			continue
		}
		if value, ok, err := flagValue(args, &i, "--log"); ok {
			if err != nil {
				return opts, err
			}
			opts.logFile = value
			continue
		}
		return opts, fmt.Errorf("unknown flag %q", args[i])
	}
	return opts, nil
}

func runPlay(args []string) error {
	opts, err := parsePlayArgs(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logOut := io.Discard
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	prevLog := log.Writer()
	log.SetOutput(logOut)
	defer log.SetOutput(prevLog)
	prevHandler := errors.SetHandler(&errors.LogHandler{Output: logOut, Verbose: true})
	defer errors.SetHandler(prevHandler)

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.New("tcell.NewScreen", errors.KindPlatform, err)
	}
	if err := screen.Init(); err != nil {
		return errors.New("tcell.Init", errors.KindPlatform, err)
	}
	defer screen.Fini()

	view := hammer.NewView(cfg.Config)
	host := term.NewHost(screen, view)

	if opts.sound {
		striker := sound.New()
		if err := striker.Initialize(); err != nil {
			// Non-fatal, the animation runs without sound
			errors.Report(errors.New("sound.Initialize", errors.KindPlatform, err))
		} else {
			defer striker.Close()
			nodes := cfg.NodeCount
			host.OnCrossing = func(c hammer.Crossing) {
				striker.Strike(c.Node, nodes)
			}
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("play: %d rows of %d bars, resume %s", cfg.NodeCount, cfg.Bars, cfg.Resume)
	return host.Run(ctx)
}
