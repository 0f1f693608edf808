package grid

import (
	"math"
	"math/big"
)

// FloorMod is the floored remainder: the result has the sign of b.
// It matches numpy's remainder for floats, including the -0 handling.
func FloorMod(a, b float64) float64 {
	mod := math.Mod(a, b)
	if mod != 0 {
		if (b < 0) != (mod < 0) {
			mod += b
		}
	} else {
		mod = math.Copysign(0, b)
	}
	return mod
}

// FloorDiv is floored division on floats, computed the way CPython's
// float // does (via fmod) so that results agree near integer boundaries.
func FloorDiv(a, b float64) float64 {
	mod := math.Mod(a, b)
	div := (a - mod) / b
	if mod != 0 && (b < 0) != (mod < 0) {
		div -= 1
	}
	if div == 0 {
		return math.Copysign(0, a/b)
	}
	fl := math.Floor(div)
	if div-fl > 0.5 {
		fl += 1
	}
	return fl
}

// CeilDiv returns ceil(n/unit) as -((-n) // unit).
func CeilDiv(n int, unit float64) int {
	return int(-FloorDiv(float64(-n), unit))
}

// powBits is enough precision to hold x^n exactly for the small exponents
// the easings use.
const powBits = 512

// Pow returns x^n for a small non-negative integer n, correctly rounded.
func Pow(x float64, n int) float64 {
	switch n {
	case 0:
		return 1
	case 1:
		return x
	}
	if x == 0 || math.IsInf(x, 0) || math.IsNaN(x) {
		return math.Pow(x, float64(n))
	}
	acc := new(big.Float).SetPrec(powBits).SetFloat64(x)
	base := new(big.Float).SetPrec(powBits).SetFloat64(x)
	for i := 1; i < n; i++ {
		acc.Mul(acc, base)
	}
	f, _ := acc.Float64()
	return f
}
