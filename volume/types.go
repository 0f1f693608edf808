package volume

import "fmt"

// Axis positions inside Shape, Loc and every per-axis slice in this module.
const (
	Z = 0 // depth
	Y = 1 // rows
	X = 2 // cols
)

// Shape is the extent of a volume along (depth, rows, cols).
type Shape struct {
	Depth, Rows, Cols int
}

// Size returns the number of voxels.
func (s Shape) Size() int { return s.Depth * s.Rows * s.Cols }

// Axes returns the extents as a slice in axis order.
func (s Shape) Axes() []int { return []int{s.Depth, s.Rows, s.Cols} }

// Valid reports whether every extent is non-negative.
func (s Shape) Valid() bool { return s.Depth >= 0 && s.Rows >= 0 && s.Cols >= 0 }

// String renders the shape as a tuple.
func (s Shape) String() string { return fmt.Sprintf("(%d, %d, %d)", s.Depth, s.Rows, s.Cols) }

// Loc is a signed offset along (depth, rows, cols).
type Loc struct {
	Z, Y, X int
}

// Origin is the zero location.
var Origin = Loc{}

// Axes returns the offsets as a slice in axis order.
func (l Loc) Axes() []int { return []int{l.Z, l.Y, l.X} }

// Abs returns the location with every offset made non-negative.
func (l Loc) Abs() Loc { return Loc{Z: abs(l.Z), Y: abs(l.Y), X: abs(l.X)} }

// String renders the location as a tuple.
func (l Loc) String() string { return fmt.Sprintf("(%d, %d, %d)", l.Z, l.Y, l.X) }

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
