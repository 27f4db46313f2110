package hammer

import (
	"time"

	"github.com/go-drift/hammer/pkg/animation"
	"github.com/go-drift/hammer/pkg/graphics"
)

// Crossing describes a row that committed a new anchor during a frame.
type Crossing struct {
	Node   int
	Anchor float64
}

// RenderState is what a host needs to schedule its next frame.
type RenderState struct {
	// Animating is true while the frame driver is active. Hosts keep
	// polling Tick until it turns false.
	Animating bool
	// NextFrame is when the next tick is due. Only meaningful while Animating.
	NextFrame time.Time
	// Ticked reports whether this call advanced the animation.
	Ticked bool
	// Repaint is set whenever the frame ticked, including the tick that
	// stopped the driver. The frame a host just drew predates that tick, so
	// it must render once more to show the committed state.
	Repaint bool
	// Crossing is set when the tick completed a row.
	Crossing *Crossing
}

// View is the composition root: it owns the rows, the controller and the
// frame driver, and draws them onto a host canvas.
type View struct {
	cfg        Config
	chain      *Chain
	controller *Controller
	driver     *animation.FrameDriver
	recorder   graphics.PictureRecorder
}

// NewView builds a view. cfg must pass Validate.
func NewView(cfg Config) *View {
	chain := NewChain(cfg.NodeCount)
	return &View{
		cfg:        cfg,
		chain:      chain,
		controller: NewController(chain, cfg),
		driver:     animation.NewFrameDriver(cfg.FrameDelay),
	}
}

// Config returns the view configuration.
func (v *View) Config() Config {
	return v.cfg
}

// Controller exposes the traversal state for inspection.
func (v *View) Controller() *Controller {
	return v.controller
}

// IsAnimating reports whether the frame driver is active.
func (v *View) IsAnimating() bool {
	return v.driver.IsActive()
}

// HandleTap starts the active row if it is idle.
func (v *View) HandleTap(now time.Time) {
	if v.controller.BeginIfIdle() {
		v.driver.Start(now)
	}
}

// Paint clears to the background color and draws every row.
func (v *View) Paint(canvas graphics.Canvas) {
	canvas.Clear(v.cfg.BackColor)
	paint := graphics.DefaultPaint()
	paint.Color = v.cfg.ForeColor
	v.chain.Draw(canvas, paint, v.cfg)
}

// Tick runs at most one animation step. Any threshold crossing stops the
// driver, so the next row waits for another tap.
func (v *View) Tick(now time.Time) RenderState {
	var crossing *Crossing
	ticked := v.driver.RunFrame(now, func() {
		node := v.controller.Active()
		out := v.controller.Update()
		if out.Crossed() {
			crossing = &Crossing{Node: node, Anchor: out.Anchor}
			v.driver.Stop()
		}
	})
	return RenderState{
		Animating: v.driver.IsActive(),
		NextFrame: v.driver.NextFrame(),
		Ticked:    ticked,
		Repaint:   ticked,
		Crossing:  crossing,
	}
}

// Render paints the current frame and then advances the animation, so the
// host sees the state it drew followed by the schedule for the next frame.
func (v *View) Render(canvas graphics.Canvas, now time.Time) RenderState {
	v.Paint(canvas)
	return v.Tick(now)
}

// Record paints the current frame into a display list and advances the
// animation. The list can be replayed onto any canvas of the given size.
func (v *View) Record(size graphics.Size, now time.Time) (*graphics.DisplayList, RenderState) {
	canvas := v.recorder.BeginRecording(size)
	state := v.Render(canvas, now)
	return v.recorder.EndRecording(), state
}
