// Package raster renders a view offline on a simulated clock and encodes
// the frames as GIF or PNG.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"io"
	"time"

	xdraw "golang.org/x/image/draw"

	"github.com/go-drift/hammer/pkg/errors"
	"github.com/go-drift/hammer/pkg/graphics"
	"github.com/go-drift/hammer/pkg/hammer"
)

// Epoch is the simulated time of frame zero.
var Epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// MaxColors is the largest GIF palette.
const MaxColors = 256

// Sequence steps a view one frame delay at a time.
type Sequence struct {
	view     *hammer.View
	canvas   *graphics.ImageCanvas
	now      time.Time
	delay    time.Duration
	frame    int
	tapEvery int
}

// NewSequence creates a sequence that taps at frame 0 and then every
// tapEvery frames. tapEvery <= 0 taps only once.
func NewSequence(cfg hammer.Config, width, height, tapEvery int) *Sequence {
	return &Sequence{
		view:     hammer.NewView(cfg),
		canvas:   graphics.NewImageCanvas(width, height),
		now:      Epoch,
		delay:    cfg.FrameDelay,
		tapEvery: tapEvery,
	}
}

// View returns the view being stepped.
func (s *Sequence) View() *hammer.View {
	return s.view
}

// Frame returns the index of the next frame.
func (s *Sequence) Frame() int {
	return s.frame
}

// Next taps if due, renders one frame and advances the clock. The returned
// image is reused by later calls.
func (s *Sequence) Next() (*image.RGBA, hammer.RenderState) {
	if s.frame == 0 || (s.tapEvery > 0 && s.frame%s.tapEvery == 0) {
		s.view.HandleTap(s.now)
	}
	state := s.view.Render(s.canvas, s.now)
	s.frame++
	s.now = s.now.Add(s.delay)
	return s.canvas.Image(), state
}

// Paint draws the current state without advancing.
func (s *Sequence) Paint() *image.RGBA {
	s.view.Paint(s.canvas)
	return s.canvas.Image()
}

// Palette blends from back to fore in n steps. n is clamped to [2, MaxColors].
func Palette(back, fore graphics.Color, n int) color.Palette {
	n = min(max(n, 2), MaxColors)
	pal := make(color.Palette, n)
	for i := range pal {
		pal[i] = back.Lerp(fore, float64(i)/float64(n-1)).NRGBA()
	}
	return pal
}

// GIFOptions controls EncodeGIF.
type GIFOptions struct {
	Width    int
	Height   int
	Frames   int
	TapEvery int
	Colors   int
}

// EncodeGIF renders opts.Frames frames and writes them as a looping GIF.
func EncodeGIF(w io.Writer, cfg hammer.Config, opts GIFOptions) error {
	if opts.Frames < 1 {
		return fmt.Errorf("frames must be at least 1 (got %d)", opts.Frames)
	}
	seq := NewSequence(cfg, opts.Width, opts.Height, opts.TapEvery)
	pal := Palette(cfg.BackColor, cfg.ForeColor, opts.Colors)
	delay := DelayCentiseconds(cfg.FrameDelay)

	anim := &gif.GIF{LoopCount: 0}
	for range opts.Frames {
		img, _ := seq.Next()
		frame := image.NewPaletted(img.Bounds(), pal)
		xdraw.Draw(frame, frame.Bounds(), img, img.Bounds().Min, xdraw.Src)
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
	}
	if err := gif.EncodeAll(w, anim); err != nil {
		return errors.New("raster.EncodeGIF", errors.KindRender, err)
	}
	return nil
}

// DelayCentiseconds converts a frame delay to GIF units, at least 1.
func DelayCentiseconds(d time.Duration) int {
	return max(int(d/(10*time.Millisecond)), 1)
}

// Snapshot returns the view after frames ticks, with a single tap at
// frame 0, upscaled by scale using nearest neighbour.
func Snapshot(cfg hammer.Config, width, height, frames, scale int) *image.RGBA {
	seq := NewSequence(cfg, width, height, 0)
	for range frames {
		seq.Next()
	}
	img := seq.Paint()
	if scale <= 1 {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, width*scale, height*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return errors.New("raster.EncodePNG", errors.KindRender, err)
	}
	return nil
}
