package testing

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/go-drift/hammer/pkg/graphics"
	"github.com/go-drift/hammer/pkg/hammer"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{1.234, 1.23},
		{-1.25, -1.25},
		{math.Copysign(0, -1), 0},
		{-0.001, 0},
	}
	for _, tt := range tests {
		got := round2(tt.in)
		if got != tt.want || math.Signbit(got) != math.Signbit(tt.want) {
			t.Errorf("round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIdleRowHasNoNegativeZero(t *testing.T) {
	canvas := NewRecordingCanvas(graphics.Size{Width: 90, Height: 180})
	hammer.NewView(hammer.DefaultConfig()).Paint(canvas)

	data, err := json.Marshal(canvas.Ops())
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "-0,") || strings.Contains(string(data), "-0}") {
		t.Errorf("serialized ops contain negative zero:\n%s", data)
	}
}
