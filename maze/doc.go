// Package maze carves maze-like paths through a lattice laid over a volume
// and draws them as image data.
//
// What:
//
//   - Maze: greedy depth-first carve. From the cursor, step to the in-bounds
//     unvisited row/col neighbor with the lowest hashed value; with none
//     left, back up along the path. The carve ends when backing up runs
//     past the first edge.
//   - AnimatedMaze: replays the carve frame by frame, walking every branch
//     that forks off an earlier vertex at the same time.
//   - SolvedMaze: draws only the route between two vertices, found by a
//     branching breadth-first search or a breadcrumb walk.
//
// Why:
//
//   - The carve never revisits a vertex, so the path is a spanning tree of
//     the reachable lattice and any two vertices on it have one route.
//
// Origins:
//
//   - OriginAt(v) is an explicit vertex; ParseOrigin accepts "z,y,x",
//     "top-left" style word pairs, two letters ("tl", "mr") and
//     "middle"/"m" for the centre. Descriptive origins resolve against the
//     lattice of each fill.
//
// Complexity:
//
//   - Carve: O(V) with V lattice vertices; draw: O(E·w²·D).
//   - Branch search: bounded by rows·cols rounds; breadcrumb walk by a
//     cubic step budget.
//
// Errors:
//
//   - ErrNoSolution: no route between start and end.
//   - ErrBranchNotFound: an animated replay lost track of a fork.
//   - ErrInvalidOrigin: an origin string could not be parsed or lies
//     outside the lattice.
//   - grid.ErrTableTooSmall: lattice lookups ran past the value table.
package maze
