package graphics

import "testing"

// countingCanvas tallies calls so replay can be checked without pixels.
type countingCanvas struct {
	saves, restores, clears, rects, lines int
	dx, dy                                float64
}

func (c *countingCanvas) Save() { c.saves++ }
func (c *countingCanvas) Restore() { c.restores++ }
func (c *countingCanvas) Translate(dx, dy float64) {
	c.dx += dx
	c.dy += dy
}
func (c *countingCanvas) Clear(Color) { c.clears++ }
func (c *countingCanvas) DrawRect(Rect, Paint) { c.rects++ }
func (c *countingCanvas) DrawLine(_, _ Offset, _ Paint) { c.lines++ }
func (c *countingCanvas) Size() Size { return Size{} }

func TestPictureRecorder_Replay(t *testing.T) {
	var rec PictureRecorder
	canvas := rec.BeginRecording(Size{Width: 100, Height: 50})
	canvas.Clear(ColorBlack)
	canvas.Save()
	canvas.Translate(10, 20)
	canvas.DrawRect(RectFromLTWH(0, 0, 5, 5), DefaultPaint())
	canvas.DrawLine(Offset{}, Offset{X: 5}, DefaultPaint())
	canvas.Restore()
	dl := rec.EndRecording()

	if dl.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", dl.Len())
	}
	if got := dl.Size(); got.Width != 100 || got.Height != 50 {
		t.Errorf("Size() = %+v, want 100x50", got)
	}

	out := &countingCanvas{}
	dl.Paint(out)
	if out.saves != 1 || out.restores != 1 || out.clears != 1 || out.rects != 1 || out.lines != 1 {
		t.Errorf("unexpected replay counts: %+v", out)
	}
	if out.dx != 10 || out.dy != 20 {
		t.Errorf("translate = (%v, %v), want (10, 20)", out.dx, out.dy)
	}
}

func TestPictureRecorder_ReuseDoesNotLeak(t *testing.T) {
	var rec PictureRecorder
	c := rec.BeginRecording(Size{Width: 1, Height: 1})
	c.Clear(ColorBlack)
	first := rec.EndRecording()

	c = rec.BeginRecording(Size{Width: 1, Height: 1})
	c.Clear(ColorWhite)
	c.Clear(ColorWhite)
	second := rec.EndRecording()

	if first.Len() != 1 {
		t.Errorf("first.Len() = %d after reuse, want 1", first.Len())
	}
	if second.Len() != 2 {
		t.Errorf("second.Len() = %d, want 2", second.Len())
	}
}

func TestPictureRecorder_EndWithoutBegin(t *testing.T) {
	var rec PictureRecorder
	if dl := rec.EndRecording(); dl.Len() != 0 {
		t.Errorf("expected empty display list, got %d ops", dl.Len())
	}
}
