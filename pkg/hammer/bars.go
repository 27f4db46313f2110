package hammer

import (
	"math"

	"github.com/go-drift/hammer/pkg/graphics"
)

// DrawHammerRow draws one row of hammers around the canvas origin.
//
// Each hammer sits centered in its rowWidth/Bars slot. Its head is a filled
// square of side rowSize/BarHeightFactor centered y pixels above the origin,
// and its shaft is a line from the origin up to the head, where
// y = (rowSize - head) * Sinify(DivideScale(scale, j, Bars)).
func DrawHammerRow(canvas graphics.Canvas, scale, rowSize, rowWidth float64, paint graphics.Paint, cfg Config) {
	slot := rowWidth / float64(cfg.Bars)
	barHeight := rowSize / cfg.BarHeightFactor
	head := paint
	head.Style = graphics.PaintStyleFill
	for j := 0; j < cfg.Bars; j++ {
		y := HammerOffset(scale, rowSize, j, cfg)
		cx := slot*float64(j) + slot/2
		canvas.DrawRect(graphics.RectFromCenter(graphics.Offset{X: cx, Y: -y}, barHeight, barHeight), head)
		canvas.DrawLine(graphics.Offset{X: cx, Y: 0}, graphics.Offset{X: cx, Y: -y}, paint)
	}
}

// DrawRow lays out node index in the vertical stack and draws its hammers.
// Rows are spaced Height/(NodeCount+1) apart, row 0 one gap below the top.
func DrawRow(canvas graphics.Canvas, index int, scale float64, paint graphics.Paint, cfg Config) {
	size := canvas.Size()
	gap := size.Height / float64(cfg.NodeCount+1)
	rowSize := gap / cfg.SizeFactor
	paint.StrokeWidth = math.Min(size.Width, size.Height) / cfg.StrokeFactor
	paint.StrokeCap = graphics.CapRound

	canvas.Save()
	canvas.Translate(0, float64(index+1)*gap)
	DrawHammerRow(canvas, scale, rowSize, size.Width, paint, cfg)
	canvas.Restore()
}

// HammerOffset returns how far hammer j of a row stands above the baseline
// for the given row progress. It is the displacement DrawHammerRow uses.
func HammerOffset(scale, rowSize float64, j int, cfg Config) float64 {
	barHeight := rowSize / cfg.BarHeightFactor
	return (rowSize - barHeight) * Sinify(DivideScale(scale, j, cfg.Bars))
}
