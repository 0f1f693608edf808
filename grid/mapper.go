package grid

import (
	"fmt"
	"math"
)

// Wrap is the modulus applied to every grid coordinate.
const Wrap = 255

// ValidateUnit returns ErrInvalidUnit unless every spacing is positive and
// finite.
func ValidateUnit(unit []float64) error {
	for a, u := range unit {
		if !(u > 0) || math.IsInf(u, 0) {
			return fmt.Errorf("%w: axis %d is %v", ErrInvalidUnit, a, u)
		}
	}
	return nil
}

// Lattice returns the number of cells covering size at the given unit on
// each axis, rounding up.
func Lattice(size []int, unit []float64) []int {
	out := make([]int, len(size))
	for a := range size {
		out[a] = CeilDiv(size[a], unit[a])
	}
	return out
}

// Mapper converts voxel indices to lattice coordinates for one fill.
type Mapper struct {
	Unit []float64
	Loc  []int
}

// Map writes the integer cell and fractional offset of idx on every axis:
// c = ((idx+loc)/unit) mod 255, whole = floor(c), part = c - whole.
func (m Mapper) Map(idx []int, whole []int, part []float64) {
	for a, i := range idx {
		c := float64(i+m.Loc[a]) / m.Unit[a]
		c = FloorMod(c, Wrap)
		w := math.Floor(c)
		whole[a] = int(w)
		part[a] = c - w
	}
}

// Bit returns the offset (0 or 1) corner key contributes on axis a out of
// axes. Keys enumerate corners in binary order with axis 0 most significant.
func Bit(key, a, axes int) int {
	return (key >> (axes - 1 - a)) & 1
}
