package testing

import (
	"fmt"
	"math"

	"github.com/go-drift/hammer/pkg/graphics"
)

// DisplayOp represents a serialized canvas drawing operation.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// RecordingCanvas implements graphics.Canvas and records every call as a
// DisplayOp. Coordinates are local (pre-transform) and rounded to two
// decimals so assertions stay stable.
type RecordingCanvas struct {
	ops  []DisplayOp
	size graphics.Size
}

// NewRecordingCanvas creates a recording canvas reporting the given size.
func NewRecordingCanvas(size graphics.Size) *RecordingCanvas {
	return &RecordingCanvas{size: size}
}

// Ops returns the recorded operations.
func (c *RecordingCanvas) Ops() []DisplayOp {
	return c.ops
}

// Reset discards recorded operations.
func (c *RecordingCanvas) Reset() {
	c.ops = c.ops[:0]
}

// Count returns how many recorded operations have the given name.
func (c *RecordingCanvas) Count(op string) int {
	n := 0
	for _, o := range c.ops {
		if o.Op == op {
			n++
		}
	}
	return n
}

func (c *RecordingCanvas) Save() {
	c.ops = append(c.ops, DisplayOp{Op: "save"})
}

func (c *RecordingCanvas) Restore() {
	c.ops = append(c.ops, DisplayOp{Op: "restore"})
}

func (c *RecordingCanvas) Translate(dx, dy float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "translate",
		Params: sortedMap("dx", round2(dx), "dy", round2(dy)),
	})
}

func (c *RecordingCanvas) Clear(color graphics.Color) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clear",
		Params: sortedMap("color", serializeColor(color)),
	})
}

func (c *RecordingCanvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "drawRect",
		Params: sortedMap("rect", serializeRect(rect), "color", serializeColor(paint.Color)),
	})
}

func (c *RecordingCanvas) DrawLine(start, end graphics.Offset, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawLine",
		Params: sortedMap(
			"x1", round2(start.X), "y1", round2(start.Y),
			"x2", round2(end.X), "y2", round2(end.Y),
			"color", serializeColor(paint.Color),
			"width", round2(paint.StrokeWidth),
			"cap", paint.StrokeCap.String(),
		),
	})
}

func (c *RecordingCanvas) Size() graphics.Size {
	return c.size
}

// SerializeDisplayList replays a DisplayList through a recording canvas.
func SerializeDisplayList(dl *graphics.DisplayList) []DisplayOp {
	canvas := NewRecordingCanvas(dl.Size())
	dl.Paint(canvas)
	return canvas.ops
}

// --- Serialization helpers ---

func serializeRect(r graphics.Rect) map[string]any {
	return sortedMap(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds a float64 to 2 decimal places. Negative zero becomes 0
// so golden files never contain -0.
func round2(f float64) float64 {
	r := math.Round(f*100) / 100
	if r == 0 {
		return 0
	}
	return r
}

// sortedMap creates a map from alternating key-value pairs.
func sortedMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}
