// Package term hosts a hammer view on a terminal screen.
//
// Each character cell shows two vertically stacked raster pixels using the
// upper half block rune: the foreground color is the top pixel and the
// background color is the bottom one.
package term

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/hammer/pkg/animation"
	"github.com/go-drift/hammer/pkg/errors"
	"github.com/go-drift/hammer/pkg/graphics"
	"github.com/go-drift/hammer/pkg/hammer"
)

// HalfBlock is the rune drawn in every cell.
const HalfBlock = '▀'

// Host drives a view from terminal input. Taps come from space, enter or a
// left click; q, Esc and Ctrl-C quit.
type Host struct {
	screen tcell.Screen
	view   *hammer.View

	// OnCrossing is called on the event loop goroutine whenever a row lands.
	OnCrossing func(hammer.Crossing)

	canvas  *graphics.ImageCanvas
	timer   *time.Timer
	buttons tcell.ButtonMask
}

// NewHost binds a view to an initialized screen.
func NewHost(screen tcell.Screen, view *hammer.View) *Host {
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	return &Host{screen: screen, view: view, timer: timer}
}

type action int

const (
	actionNone action = iota
	actionTap
	actionQuit
	actionRedraw
	actionResize
)

// classify maps a terminal event to what the loop should do with it.
func (h *Host) classify(ev tcell.Event) action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return actionQuit
		case tcell.KeyEnter:
			return actionTap
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return actionQuit
			case ' ':
				return actionTap
			}
		}
	case *tcell.EventMouse:
		prev := h.buttons
		h.buttons = ev.Buttons()
		if h.buttons&tcell.Button1 != 0 && prev&tcell.Button1 == 0 {
			return actionTap
		}
	case *tcell.EventInterrupt:
		return actionRedraw
	case *tcell.EventResize:
		return actionResize
	}
	return actionNone
}

// Run processes events until the context ends or the user quits.
func (h *Host) Run(ctx context.Context) (err error) {
	defer errors.RecoverWithCallback("term.Run", func(r any) {
		err = fmt.Errorf("terminal host panicked: %v", r)
	})

	h.screen.EnableMouse()
	defer h.screen.DisableMouse()
	defer h.timer.Stop()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	h.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch h.classify(ev) {
			case actionQuit:
				return nil
			case actionTap:
				h.view.HandleTap(animation.Now())
				h.requestRedraw()
			case actionResize:
				h.screen.Sync()
				h.draw()
			case actionRedraw:
				h.draw()
			}
		case <-h.timer.C:
			h.requestRedraw()
		}
	}
}

// requestRedraw asks the event loop for a frame. A full queue drops the
// request; the frame is retried after one frame delay.
func (h *Host) requestRedraw() {
	if err := h.screen.PostEvent(tcell.NewEventInterrupt(nil)); err != nil {
		errors.Report(errors.New("term.requestRedraw", errors.KindSchedule, err))
		h.timer.Reset(h.view.Config().FrameDelay)
	}
}

// draw renders one frame and arms the timer for the next one.
func (h *Host) draw() {
	cols, rows := h.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	if h.canvas == nil || h.canvas.Image().Bounds().Dx() != cols || h.canvas.Image().Bounds().Dy() != rows*2 {
		h.canvas = graphics.NewImageCanvas(cols, rows*2)
	}

	now := animation.Now()
	state := h.view.Render(h.canvas, now)
	Blit(h.screen, h.canvas.Image())
	h.screen.Show()

	if state.Crossing != nil && h.OnCrossing != nil {
		h.crossed(*state.Crossing)
	}
	switch {
	case state.Animating:
		h.timer.Reset(max(state.NextFrame.Sub(now), 0))
	case state.Repaint:
		// The driver stopped on this tick; draw the snapped row once more.
		h.timer.Reset(h.view.Config().FrameDelay)
	}
}

// crossed runs the OnCrossing hook. A panicking hook is reported and the
// loop keeps running.
func (h *Host) crossed(c hammer.Crossing) {
	defer errors.Recover("term.OnCrossing")
	h.OnCrossing(c)
}

// CellWriter is the part of tcell.Screen that Blit needs.
type CellWriter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Blit copies img into cells, two pixel rows per cell row. An odd final
// pixel row is paired with itself.
func Blit(screen CellWriter, img *image.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			top := img.RGBAAt(x, y)
			bottom := top
			if y+1 < b.Max.Y {
				bottom = img.RGBAAt(x, y+1)
			}
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			screen.SetContent(x-b.Min.X, (y-b.Min.Y)/2, HalfBlock, nil, style)
		}
	}
}
