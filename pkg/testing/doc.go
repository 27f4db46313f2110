// Package testing provides a frame-level test harness for hammer views.
//
// # Quick Start
//
// Create a tester, tap, and pump frames:
//
//	func TestFirstRow(t *testing.T) {
//	    tester := hammertest.NewViewTesterWithT(t, hammer.DefaultConfig())
//	    tester.Tap()
//	    if err := tester.PumpAndSettle(2 * time.Second); err != nil {
//	        t.Fatal(err)
//	    }
//	    if got := tester.View().Controller().Active(); got != 1 {
//	        t.Errorf("active row = %d, want 1", got)
//	    }
//	}
//
// # Draw Calls
//
// Every Pump replays the frame onto a RecordingCanvas:
//
//	tester.Pump()
//	if n := tester.Canvas().Count("drawRect"); n != 25 {
//	    t.Errorf("drawRect calls = %d, want 25", n)
//	}
//
// # Snapshots
//
// CaptureSnapshot records row states and paint operations without
// advancing the view. Compare against a golden file:
//
//	tester.CaptureSnapshot().MatchesFile(t, "testdata/first_row.snapshot.json")
//
// Run with HAMMER_UPDATE_SNAPSHOTS=1 to write or refresh golden files.
//
// # Time
//
// The tester installs a FakeClock as the animation clock; each PumpFrames
// step advances it by the view's frame delay.
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import hammertest "github.com/go-drift/hammer/pkg/testing"
package testing
