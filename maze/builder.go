package maze

import "sort"

// carver holds the mutable state of one carve.
type carver struct {
	lattice *Lattice
	visited []bool
	path    Path
}

type candidate struct {
	v     Vertex
	value int
}

// carve walks from origin, always stepping to the viable neighbor with the
// lowest lattice value (ties keep neighborOffsets order). With no viable
// neighbor it backs up one edge at a time; it stops when backing up passes
// the first edge. No vertex is entered twice.
// Complexity: O(V) steps, each O(1).
func carve(l *Lattice, origin Vertex) Path {
	c := &carver{lattice: l, visited: make([]bool, l.Size())}
	c.visited[l.index(origin)] = true

	cursor := origin
	index := 0
	opts := make([]candidate, 0, len(neighborOffsets))
	for {
		opts = c.viable(cursor, opts[:0])
		if len(opts) > 0 {
			sort.SliceStable(opts, func(i, j int) bool { return opts[i].value < opts[j].value })
			next := opts[0].v
			c.path = append(c.path, Edge{From: cursor, To: next})
			c.visited[l.index(next)] = true
			cursor = next
			index = len(c.path)
			continue
		}
		index--
		if index < 0 {
			return c.path
		}
		cursor = c.path[index].From
	}
}

// viable appends the in-bounds unvisited neighbors of v to dst.
func (c *carver) viable(v Vertex, dst []candidate) []candidate {
	for _, off := range neighborOffsets {
		n := v.Add(off)
		if c.lattice.InBounds(n) && !c.visited[c.lattice.index(n)] {
			dst = append(dst, candidate{v: n, value: c.lattice.Value(n)})
		}
	}
	return dst
}
