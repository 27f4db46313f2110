package animation

import (
	"testing"
	"time"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestFrameDriver_InactiveNeverTicks(t *testing.T) {
	d := NewFrameDriver(DefaultFrameDelay)
	ticks := 0
	if d.RunFrame(epoch, func() { ticks++ }) {
		t.Error("RunFrame reported a tick while inactive")
	}
	if ticks != 0 {
		t.Errorf("ticks = %d, want 0", ticks)
	}
}

func TestFrameDriver_StartTicksImmediately(t *testing.T) {
	d := NewFrameDriver(DefaultFrameDelay)
	d.Start(epoch)
	if !d.IsActive() {
		t.Fatal("expected driver to be active after Start")
	}
	ticks := 0
	d.RunFrame(epoch, func() { ticks++ })
	if ticks != 1 {
		t.Errorf("ticks = %d, want 1", ticks)
	}
	if got, want := d.NextFrame(), epoch.Add(DefaultFrameDelay); !got.Equal(want) {
		t.Errorf("NextFrame() = %v, want %v", got, want)
	}
}

func TestFrameDriver_PacesByDelay(t *testing.T) {
	d := NewFrameDriver(20 * time.Millisecond)
	d.Start(epoch)
	ticks := 0
	tick := func() { ticks++ }

	d.RunFrame(epoch, tick)
	d.RunFrame(epoch.Add(5*time.Millisecond), tick)
	d.RunFrame(epoch.Add(19*time.Millisecond), tick)
	if ticks != 1 {
		t.Fatalf("ticks before delay elapsed = %d, want 1", ticks)
	}
	d.RunFrame(epoch.Add(20*time.Millisecond), tick)
	if ticks != 2 {
		t.Errorf("ticks after delay = %d, want 2", ticks)
	}
}

func TestFrameDriver_StopThenRunFrame(t *testing.T) {
	d := NewFrameDriver(DefaultFrameDelay)
	d.Start(epoch)
	d.Stop()
	if d.IsActive() {
		t.Fatal("expected driver to be inactive after Stop")
	}
	called := false
	if d.RunFrame(epoch.Add(time.Second), func() { called = true }) {
		t.Error("RunFrame reported a tick after Stop")
	}
	if called {
		t.Error("onTick invoked after Stop")
	}
}

func TestFrameDriver_StopInsideTick(t *testing.T) {
	d := NewFrameDriver(DefaultFrameDelay)
	d.Start(epoch)
	d.RunFrame(epoch, d.Stop)
	if d.IsActive() {
		t.Error("Stop from inside onTick should deactivate the driver")
	}
	if d.RunFrame(epoch.Add(time.Second), func() { t.Error("unexpected tick") }) {
		t.Error("RunFrame ticked after in-tick Stop")
	}
}

func TestFrameDriver_StartIsIdempotent(t *testing.T) {
	d := NewFrameDriver(DefaultFrameDelay)
	d.Start(epoch)
	d.RunFrame(epoch, nil)
	d.Start(epoch.Add(time.Millisecond))
	if got, want := d.NextFrame(), epoch.Add(DefaultFrameDelay); !got.Equal(want) {
		t.Errorf("second Start moved NextFrame to %v, want %v", got, want)
	}
}

type stepClock struct{ now time.Time }

func (c *stepClock) Now() time.Time { return c.now }

func TestSetClock(t *testing.T) {
	fake := &stepClock{now: epoch}
	prev := SetClock(fake)
	t.Cleanup(func() { SetClock(prev) })

	if !Now().Equal(epoch) {
		t.Errorf("Now() = %v, want %v", Now(), epoch)
	}
	fake.now = epoch.Add(time.Hour)
	if !Now().Equal(epoch.Add(time.Hour)) {
		t.Errorf("Now() did not follow injected clock")
	}

	SetClock(nil)
	if Now().Equal(epoch.Add(time.Hour)) {
		t.Error("SetClock(nil) should restore system time")
	}
}
