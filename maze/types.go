package maze

import "fmt"

// Vertex is a lattice coordinate in (depth, row, col) order.
type Vertex struct {
	Z, Y, X int
}

// Add returns v shifted by o.
func (v Vertex) Add(o Vertex) Vertex { return Vertex{v.Z + o.Z, v.Y + o.Y, v.X + o.X} }

// Less orders vertices lexicographically by (Z, Y, X).
func (v Vertex) Less(o Vertex) bool {
	if v.Z != o.Z {
		return v.Z < o.Z
	}
	if v.Y != o.Y {
		return v.Y < o.Y
	}
	return v.X < o.X
}

func (v Vertex) String() string { return fmt.Sprintf("(%d, %d, %d)", v.Z, v.Y, v.X) }

// Edge is one step of a path.
type Edge struct {
	From, To Vertex
}

func (e Edge) String() string { return e.From.String() + "->" + e.To.String() }

// Path is an ordered list of edges.
type Path []Edge

// Spacing is a per-axis integer triple in (depth, row, col) order.
type Spacing [3]int

func (s Spacing) String() string { return fmt.Sprintf("(%d, %d, %d)", s[0], s[1], s[2]) }
