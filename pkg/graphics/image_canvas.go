package graphics

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// roundCapSegments is the number of polygon edges used to approximate a
// round stroke cap.
const roundCapSegments = 24

// ImageCanvas rasterizes drawing commands into an in-memory RGBA image.
//
// Shapes are anti-aliased with golang.org/x/image/vector. The transform stack
// only supports translation, which is all the hammer view needs.
type ImageCanvas struct {
	img    *image.RGBA
	z      *vector.Rasterizer
	origin Offset
	stack  []Offset
}

// NewImageCanvas creates a canvas backed by a width x height RGBA image.
func NewImageCanvas(width, height int) *ImageCanvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &ImageCanvas{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		z:   vector.NewRasterizer(width, height),
	}
}

// Image returns the backing image. It is reused across frames; copy it if
// the pixels must outlive the next draw.
func (c *ImageCanvas) Image() *image.RGBA {
	return c.img
}

// Save pushes the current origin.
func (c *ImageCanvas) Save() {
	c.stack = append(c.stack, c.origin)
}

// Restore pops the most recent origin. Unbalanced calls are ignored.
func (c *ImageCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.origin = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Translate moves the origin by the given offset.
func (c *ImageCanvas) Translate(dx, dy float64) {
	c.origin = c.origin.Translate(dx, dy)
}

// Clear fills the entire image with color, ignoring the transform.
func (c *ImageCanvas) Clear(color Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(color.NRGBA()), image.Point{}, draw.Src)
}

// DrawRect fills or strokes a rectangle.
func (c *ImageCanvas) DrawRect(rect Rect, paint Paint) {
	rect = rect.Translate(c.origin.X, c.origin.Y)
	if paint.Style == PaintStyleStroke {
		edge := paint
		edge.StrokeCap = CapSquare
		tl := Offset{X: rect.Left, Y: rect.Top}
		tr := Offset{X: rect.Right, Y: rect.Top}
		br := Offset{X: rect.Right, Y: rect.Bottom}
		bl := Offset{X: rect.Left, Y: rect.Bottom}
		c.strokeSegment(tl, tr, edge)
		c.strokeSegment(tr, br, edge)
		c.strokeSegment(br, bl, edge)
		c.strokeSegment(bl, tl, edge)
		return
	}
	if rect.IsEmpty() {
		return
	}
	c.fillPolygon(paint.Color,
		Offset{X: rect.Left, Y: rect.Top},
		Offset{X: rect.Right, Y: rect.Top},
		Offset{X: rect.Right, Y: rect.Bottom},
		Offset{X: rect.Left, Y: rect.Bottom},
	)
}

// DrawLine strokes a line segment using the paint's width and cap.
func (c *ImageCanvas) DrawLine(start, end Offset, paint Paint) {
	c.strokeSegment(
		start.Translate(c.origin.X, c.origin.Y),
		end.Translate(c.origin.X, c.origin.Y),
		paint,
	)
}

// Size returns the image dimensions.
func (c *ImageCanvas) Size() Size {
	b := c.img.Bounds()
	return Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// strokeSegment draws a stroked segment in device coordinates.
func (c *ImageCanvas) strokeSegment(start, end Offset, paint Paint) {
	half := paint.StrokeWidth / 2
	if half <= 0 {
		half = 0.5
	}
	dx, dy := end.X-start.X, end.Y-start.Y
	length := math.Hypot(dx, dy)
	if length < epsilon {
		if paint.StrokeCap == CapRound {
			c.fillCircle(paint.Color, start, half)
		}
		return
	}
	ux, uy := dx/length, dy/length
	if paint.StrokeCap == CapSquare {
		start = start.Translate(-ux*half, -uy*half)
		end = end.Translate(ux*half, uy*half)
	}
	nx, ny := -uy*half, ux*half
	c.fillPolygon(paint.Color,
		start.Translate(nx, ny),
		end.Translate(nx, ny),
		end.Translate(-nx, -ny),
		start.Translate(-nx, -ny),
	)
	if paint.StrokeCap == CapRound {
		c.fillCircle(paint.Color, start, half)
		c.fillCircle(paint.Color, end, half)
	}
}

func (c *ImageCanvas) fillCircle(color Color, center Offset, radius float64) {
	points := make([]Offset, roundCapSegments)
	for i := range points {
		a := 2 * math.Pi * float64(i) / roundCapSegments
		points[i] = Offset{
			X: center.X + radius*math.Cos(a),
			Y: center.Y + radius*math.Sin(a),
		}
	}
	c.fillPolygon(color, points...)
}

// fillPolygon rasterizes one closed polygon and composites it over the image.
// Each shape gets its own pass so overlapping shapes never cancel out.
func (c *ImageCanvas) fillPolygon(color Color, points ...Offset) {
	if len(points) < 3 {
		return
	}
	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	c.z.DrawOp = draw.Over
	c.z.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		c.z.LineTo(float32(p.X), float32(p.Y))
	}
	c.z.ClosePath()
	c.z.Draw(c.img, b, image.NewUniform(color.NRGBA()), image.Point{})
}
