package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/hammer/pkg/graphics"
	"github.com/go-drift/hammer/pkg/hammer"
)

func TestNewViewTester_Defaults(t *testing.T) {
	tester := NewViewTesterWithT(t, hammer.DefaultConfig())

	size := tester.Canvas().Size()
	if size.Width != DefaultTestWidth || size.Height != DefaultTestHeight {
		t.Errorf("expected default size %dx%d, got %vx%v", DefaultTestWidth, DefaultTestHeight, size.Width, size.Height)
	}
	if tester.Frames() != 0 || len(tester.Crossings()) != 0 {
		t.Error("expected a fresh tester")
	}
}

func TestSetSize(t *testing.T) {
	tester := NewViewTesterWithT(t, hammer.DefaultConfig())
	tester.SetSize(graphics.Size{Width: 60, Height: 120})
	tester.Pump()

	// row 0 sits one gap (120/6) below the top
	for _, op := range tester.Canvas().Ops() {
		if op.Op == "translate" {
			if dy := op.Params["dy"]; dy != 20.0 {
				t.Errorf("first translate dy = %v, want 20", dy)
			}
			return
		}
	}
	t.Fatal("no translate recorded")
}

func TestPumpAndSettle_Idle(t *testing.T) {
	tester := NewViewTesterWithT(t, hammer.DefaultConfig())

	if err := tester.PumpAndSettle(time.Second); err != nil {
		t.Errorf("expected settle for idle view, got: %v", err)
	}
	if tester.Frames() != 1 {
		t.Errorf("frames = %d, want 1", tester.Frames())
	}
}

func TestTapAndSettle_RecordsCrossing(t *testing.T) {
	tester := NewViewTesterWithT(t, hammer.DefaultConfig())

	if err := tester.TapAndSettle(2 * time.Second); err != nil {
		t.Fatalf("TapAndSettle: %v", err)
	}
	crossings := tester.Crossings()
	if len(crossings) != 1 {
		t.Fatalf("crossings = %d, want 1", len(crossings))
	}
	if crossings[0] != (hammer.Crossing{Node: 0, Anchor: 1}) {
		t.Errorf("crossing = %+v, want node 0 anchor 1", crossings[0])
	}
	// the crossing frame already reports idle
	if tester.Frames() != 50 {
		t.Errorf("frames = %d, want 50", tester.Frames())
	}
}

func TestPumpAndSettle_Timeout(t *testing.T) {
	tester := NewViewTesterWithT(t, hammer.DefaultConfig())
	tester.Tap()

	err := tester.PumpAndSettle(100 * time.Millisecond)
	if !errors.Is(err, ErrSettleTimeout) {
		t.Errorf("err = %v, want ErrSettleTimeout", err)
	}
}
