package hammer

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestInverse(t *testing.T) {
	if got := Inverse(5); !approx(got, 0.2) {
		t.Errorf("Inverse(5) = %v, want 0.2", got)
	}
	if got := Inverse(1); got != 1 {
		t.Errorf("Inverse(1) = %v, want 1", got)
	}
}

func TestDivideScale(t *testing.T) {
	tests := []struct {
		global float64
		i, n   int
		want   float64
	}{
		{0, 0, 5, 0},
		{0.1, 0, 5, 0.5},
		{0.2, 0, 5, 1},
		{0.5, 0, 5, 1},
		{0.5, 2, 5, 0.5},
		{0.5, 3, 5, 0},
		{1, 4, 5, 1},
		{2, 4, 5, 1},
		{-1, 0, 5, 0},
	}
	for _, tt := range tests {
		if got := DivideScale(tt.global, tt.i, tt.n); !approx(got, tt.want) {
			t.Errorf("DivideScale(%v, %d, %d) = %v, want %v", tt.global, tt.i, tt.n, got, tt.want)
		}
	}
}

func TestDivideScale_BoundedAndMonotone(t *testing.T) {
	const n = 5
	for i := 0; i < n; i++ {
		prev := -1.0
		for k := 0; k <= 1000; k++ {
			g := float64(k) / 1000
			got := DivideScale(g, i, n)
			if got < 0 || got > 1+tolerance {
				t.Fatalf("DivideScale(%v, %d, %d) = %v, outside [0, 1]", g, i, n, got)
			}
			if got < prev-tolerance {
				t.Fatalf("DivideScale decreased at g=%v, i=%d: %v < %v", g, i, got, prev)
			}
			prev = got
		}
	}
}

func TestSinify(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{0.5, 1},
		{1, 0},
	}
	for _, tt := range tests {
		if got := Sinify(tt.in); !approx(got, tt.want) {
			t.Errorf("Sinify(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
