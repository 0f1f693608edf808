package maze

import (
	"fmt"

	"github.com/katalvlaran/imggen/grid"
	"github.com/katalvlaran/imggen/volume"
)

// Lattice is the grid of hashed vertex values a path is carved through.
type Lattice struct {
	Dims   [3]int // depth, rows, cols
	values []int  // row-major, len == Dims[0]*Dims[1]*Dims[2]
}

// neighborOffsets lists the candidate steps in tie-break order.
var neighborOffsets = [4]Vertex{
	{0, 0, -1},
	{0, 0, 1},
	{0, -1, 0},
	{0, 1, 0},
}

// latticeDims is int(size/unit) + (0,1,1) - 2*inset per axis.
func latticeDims(size volume.Shape, unit, inset Spacing) [3]int {
	s := size.Axes()
	grow := [3]int{0, 1, 1}
	var d [3]int
	for a := range d {
		d[a] = s[a]/unit[a] + grow[a] - 2*inset[a]
	}
	return d
}

// newLattice hashes every vertex as
// table[((table[(table[x+locX] + y+locY) mod n] + locZ) & n) mod n].
// The depth coordinate enters only through locZ.
// Lookups past the table end return grid.ErrTableTooSmall.
func newLattice(t *grid.Table, dims [3]int, loc volume.Loc) (*Lattice, error) {
	l := &Lattice{Dims: dims}
	if dims[0] <= 0 || dims[1] <= 0 || dims[2] <= 0 {
		return l, nil
	}
	tbl := t.Values()
	n := len(tbl)
	l.values = make([]int, dims[0]*dims[1]*dims[2])
	i := 0
	for z := 0; z < dims[0]; z++ {
		for y := 0; y < dims[1]; y++ {
			for x := 0; x < dims[2]; x++ {
				v, err := take(tbl, x+loc.X)
				if err != nil {
					return nil, err
				}
				v = tbl[mod(v+y+loc.Y, n)]
				v = tbl[mod((v+loc.Z)&n, n)]
				l.values[i] = v
				i++
			}
		}
	}
	return l, nil
}

// take indexes t with negative indices counting from the end.
func take(t []int, i int) (int, error) {
	n := len(t)
	if i < -n || i >= n {
		return 0, fmt.Errorf("%w: index %d, table has %d", grid.ErrTableTooSmall, i, n)
	}
	if i < 0 {
		i += n
	}
	return t[i], nil
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

// InBounds reports whether v lies within the lattice.
// Complexity: O(1).
func (l *Lattice) InBounds(v Vertex) bool {
	return v.Z >= 0 && v.Z < l.Dims[0] &&
		v.Y >= 0 && v.Y < l.Dims[1] &&
		v.X >= 0 && v.X < l.Dims[2]
}

func (l *Lattice) index(v Vertex) int {
	return (v.Z*l.Dims[1]+v.Y)*l.Dims[2] + v.X
}

// Value returns the hashed value at v. v must be in bounds.
func (l *Lattice) Value(v Vertex) int { return l.values[l.index(v)] }

// Size returns the number of vertices.
func (l *Lattice) Size() int { return len(l.values) }
