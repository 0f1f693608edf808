package maze

import (
	"fmt"
	"math"
	"sort"
)

// Solver selects how SolvedMaze finds its route.
type Solver int

const (
	// Branches is breadth-first search over every simple path from the
	// start, never stepping straight back. It gives up after rows·cols
	// rounds.
	Branches Solver = iota

	// Breadcrumbs walks toward the least-visited neighbor and restarts from
	// the start whenever the best move is straight back.
	Breadcrumbs
)

func (s Solver) String() string {
	if s == Breadcrumbs {
		return "breadcrumb"
	}
	return "branches"
}

// ParseSolver maps "branches" and "breadcrumb" to a Solver.
func ParseSolver(s string) (Solver, error) {
	switch s {
	case "branches":
		return Branches, nil
	case "breadcrumb":
		return Breadcrumbs, nil
	}
	return Branches, fmt.Errorf("maze: unknown solver %q", s)
}

// adjacency lists the vertices one step away along the path, both
// directions, each list sorted.
func adjacency(p Path) map[Vertex][]Vertex {
	adj := make(map[Vertex][]Vertex)
	link := func(a, b Vertex) {
		for _, n := range adj[a] {
			if n == b {
				return
			}
		}
		adj[a] = append(adj[a], b)
	}
	for _, e := range p {
		link(e.From, e.To)
		link(e.To, e.From)
	}
	for _, ns := range adj {
		sort.Slice(ns, func(i, j int) bool { return ns[i].Less(ns[j]) })
	}
	return adj
}

// solve dispatches to the selected solver.
func (s Solver) solve(p Path, dims [3]int, start, end Vertex) (Path, error) {
	if start == end {
		return Path{}, nil
	}
	adj := adjacency(p)
	if _, ok := adj[start]; !ok {
		return nil, fmt.Errorf("%w: start %s not on path", ErrNoSolution, start)
	}
	if _, ok := adj[end]; !ok {
		return nil, fmt.Errorf("%w: end %s not on path", ErrNoSolution, end)
	}
	if s == Breadcrumbs {
		return solveBreadcrumbs(adj, dims, start, end)
	}
	return solveBranches(adj, dims, start, end)
}

// solveBranches extends every partial route by one edge per round.
// Complexity: O(rows·cols · routes).
func solveBranches(adj map[Vertex][]Vertex, dims [3]int, start, end Vertex) (Path, error) {
	budget := dims[1] * dims[2]

	routes := make([]Path, 0, len(adj[start]))
	for _, n := range adj[start] {
		routes = append(routes, Path{{From: start, To: n}})
	}
	for round := 0; round <= budget && len(routes) > 0; round++ {
		next := make([]Path, 0, len(routes))
		for _, r := range routes {
			step := r[len(r)-1]
			if step.To == end {
				return r, nil
			}
			for _, n := range adj[step.To] {
				if n == step.From {
					continue
				}
				nr := make(Path, len(r), len(r)+1)
				copy(nr, r)
				next = append(next, append(nr, Edge{From: step.To, To: n}))
			}
		}
		routes = next
	}
	return nil, fmt.Errorf("%w: %s to %s within %d rounds", ErrNoSolution, start, end, budget)
}

// solveBreadcrumbs counts visits per vertex and always moves to the least
// visited neighbor (ties by vertex order). A best move back onto the
// previous vertex is a dead end: progress is dropped and the walk restarts.
// Restarts make the walk long on deep trees (millions of steps on a 31×31
// lattice), so the step budget is cubic in the vertex count.
func solveBreadcrumbs(adj map[Vertex][]Vertex, dims [3]int, start, end Vertex) (Path, error) {
	budget := math.MaxInt
	if v := dims[0] * dims[1] * dims[2]; v < 1<<20 {
		budget = v*v*v + 16
	}

	crumbs := make(map[Vertex]int, len(adj))
	var (
		route  Path
		last   Vertex
		inWalk bool // last is set
	)
	cursor := start
	for steps := 0; cursor != end; steps++ {
		if steps > budget {
			return nil, fmt.Errorf("%w: %s to %s after %d steps", ErrNoSolution, start, end, budget)
		}
		crumbs[cursor]++
		best := adj[cursor][0]
		for _, n := range adj[cursor][1:] {
			if crumbs[n] < crumbs[best] {
				best = n
			}
		}
		if inWalk && best == last {
			cursor, inWalk, route = start, false, nil
			continue
		}
		route = append(route, Edge{From: cursor, To: best})
		last, inWalk = cursor, true
		cursor = best
	}
	return route, nil
}
