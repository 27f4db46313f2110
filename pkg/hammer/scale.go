package hammer

import "math"

// Inverse returns 1/n.
func Inverse(n int) float64 {
	return 1 / float64(n)
}

// DivideScale maps a global progress value onto the local progress of
// sub-element i out of n. Each sub-element owns a 1/n slice of the global
// sweep: elements ahead of the sweep yield 0, elements behind it yield 1.
func DivideScale(global float64, i, n int) float64 {
	slice := Inverse(n)
	return math.Min(slice, math.Max(0, global-float64(i)/float64(n))) * float64(n)
}

// Sinify turns a 0..1 ramp into a 0..1..0 arc.
func Sinify(x float64) float64 {
	return math.Sin(x * math.Pi)
}
