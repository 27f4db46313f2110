package animation

import "time"

// DefaultFrameDelay is the target interval between animation frames.
const DefaultFrameDelay = 20 * time.Millisecond

// FrameDriver is a start/stop guard that paces per-frame work.
//
// It owns no goroutine or timer. The host polls RunFrame from its own frame
// loop; while the driver is active and the next frame is due, RunFrame runs
// the tick callback and schedules the following frame Delay later. Stop takes
// effect immediately: the next RunFrame after Stop never ticks.
//
// FrameDriver is not safe for concurrent use; hosts serialize taps and
// frames on one goroutine.
type FrameDriver struct {
	// Delay is the minimum interval between ticks. Zero or negative means
	// every poll ticks.
	Delay time.Duration

	active bool
	next   time.Time
}

// NewFrameDriver creates an inactive driver with the given frame delay.
func NewFrameDriver(delay time.Duration) *FrameDriver {
	return &FrameDriver{Delay: delay}
}

// Start activates the driver; the first frame is due immediately.
func (d *FrameDriver) Start(now time.Time) {
	if d.active {
		return
	}
	d.active = true
	d.next = now
}

// Stop deactivates the driver.
func (d *FrameDriver) Stop() {
	if !d.active {
		return
	}
	d.active = false
}

// IsActive reports whether an animation cycle is in progress.
func (d *FrameDriver) IsActive() bool {
	return d.active
}

// NextFrame returns when the next tick is due. The value is meaningless
// while the driver is inactive.
func (d *FrameDriver) NextFrame() time.Time {
	return d.next
}

// RunFrame invokes onTick when the driver is active and a frame is due, then
// schedules the next frame. It reports whether onTick ran.
func (d *FrameDriver) RunFrame(now time.Time, onTick func()) bool {
	if !d.active || now.Before(d.next) {
		return false
	}
	if onTick != nil {
		onTick()
	}
	if d.Delay > 0 {
		d.next = now.Add(d.Delay)
	} else {
		d.next = now
	}
	return true
}
