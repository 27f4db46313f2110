package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/hammer/pkg/animation"
	"github.com/go-drift/hammer/pkg/graphics"
	"github.com/go-drift/hammer/pkg/hammer"
)

const (
	// DefaultTestWidth is the default width of the test surface.
	DefaultTestWidth = 450
	// DefaultTestHeight is the default height of the test surface.
	DefaultTestHeight = 900
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: view kept animating")

// ViewTester drives a hammer.View the way a host frame loop would, but with
// a fake clock and a recording canvas instead of a real surface.
type ViewTester struct {
	view      *hammer.View
	clock     *FakeClock
	prevClock animation.Clock
	canvas    *RecordingCanvas
	crossings []hammer.Crossing
	frames    int
}

// NewViewTester creates a tester for a view with the given configuration.
// Call Cleanup() when done, or use NewViewTesterWithT() instead.
func NewViewTester(cfg hammer.Config) *ViewTester {
	clk := NewFakeClock()
	t := &ViewTester{
		view:   hammer.NewView(cfg),
		clock:  clk,
		canvas: NewRecordingCanvas(graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight}),
	}
	t.prevClock = animation.SetClock(clk)
	return t
}

// NewViewTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewViewTesterWithT(t *testing.T, cfg hammer.Config) *ViewTester {
	tester := NewViewTester(cfg)
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup restores the animation clock.
func (t *ViewTester) Cleanup() {
	animation.SetClock(t.prevClock)
}

// SetSize changes the size reported by the recording canvas.
func (t *ViewTester) SetSize(size graphics.Size) {
	t.canvas.size = size
}

// View returns the view under test.
func (t *ViewTester) View() *hammer.View {
	return t.view
}

// Clock returns the fake clock for advancing time in tests.
func (t *ViewTester) Clock() *FakeClock {
	return t.clock
}

// Canvas returns the canvas holding the most recent frame's operations.
func (t *ViewTester) Canvas() *RecordingCanvas {
	return t.canvas
}

// Crossings returns every threshold crossing observed so far.
func (t *ViewTester) Crossings() []hammer.Crossing {
	return t.crossings
}

// Frames returns how many frames have been pumped.
func (t *ViewTester) Frames() int {
	return t.frames
}

// Tap delivers a pointer-down to the view at the current fake time.
func (t *ViewTester) Tap() {
	t.view.HandleTap(animation.Now())
}

// Pump renders one frame at the current fake time.
func (t *ViewTester) Pump() hammer.RenderState {
	t.canvas.Reset()
	state := t.view.Render(t.canvas, animation.Now())
	if state.Crossing != nil {
		t.crossings = append(t.crossings, *state.Crossing)
	}
	t.frames++
	return state
}

// PumpFrames pumps n frames, advancing the clock by the view's frame delay
// after each one, and returns the last render state.
func (t *ViewTester) PumpFrames(n int) hammer.RenderState {
	var state hammer.RenderState
	for i := 0; i < n; i++ {
		state = t.Pump()
		t.clock.Advance(t.frameDelay())
	}
	return state
}

// PumpAndSettle pumps frames until the view stops animating or the timeout
// of fake time is reached. Returns ErrSettleTimeout if it never settles.
func (t *ViewTester) PumpAndSettle(timeout time.Duration) error {
	step := t.frameDelay()
	var elapsed time.Duration
	for elapsed <= timeout {
		state := t.Pump()
		if !state.Animating {
			return nil
		}
		t.clock.Advance(step)
		elapsed += step
	}
	return ErrSettleTimeout
}

// TapAndSettle taps and pumps until the tapped row finishes.
func (t *ViewTester) TapAndSettle(timeout time.Duration) error {
	t.Tap()
	return t.PumpAndSettle(timeout)
}

func (t *ViewTester) frameDelay() time.Duration {
	if d := t.view.Config().FrameDelay; d > 0 {
		return d
	}
	return animation.DefaultFrameDelay
}
