package grid

import "math"

// Easing reshapes a fractional offset in [0,1) before interpolation.
type Easing func(t float64) float64

// Linear leaves t unchanged.
func Linear(t float64) float64 { return t }

// Cosine is (1 - cos(tπ)) / 2.
func Cosine(t float64) float64 { return (1 - math.Cos(t*math.Pi)) / 2 }

// Quintic is 6t⁵ - 15t⁴ + 10t³.
func Quintic(t float64) float64 {
	a := float64(6 * Pow(t, 5))
	b := float64(15 * Pow(t, 4))
	c := float64(10 * Pow(t, 3))
	return float64(a-b) + c
}

// Lerp blends a and b by t. The products are rounded before the sum.
func Lerp(a, b, t float64) float64 {
	return float64(a*(1-t)) + float64(b*t)
}

// Interpolate collapses 2^axes corner values to one. At each level the two
// keys sharing a prefix are blended by the part of the stripped (last) axis;
// the final blend runs along axis 0. g is overwritten.
// Complexity: O(2^axes).
func Interpolate(g []float64, part []float64) float64 {
	for n := len(part); n > 1; n-- {
		half := 1 << (n - 1)
		t := part[n-1]
		for p := 0; p < half; p++ {
			g[p] = Lerp(g[2*p], g[2*p+1], t)
		}
	}
	return Lerp(g[0], g[1], part[0])
}
