package maze

import (
	"fmt"

	"github.com/katalvlaran/imggen/volume"
)

// branch is a run of edges replayed together; nil entries are waits.
type branch []*Edge

// findBranches splits a carved path wherever an edge leaves a vertex an
// earlier edge already left. The new branch is delayed so it starts one
// frame before the step that reached the fork was drawn in its own branch.
func findBranches(p Path) ([]branch, error) {
	if len(p) == 0 {
		return nil, nil
	}
	started := map[Vertex]bool{p[0].From: true}
	var branches []branch
	cur := branch{&p[0]}
	for i := 1; i < len(p); i++ {
		e := &p[i]
		if started[e.From] {
			branches = append(branches, cur)
			k, ok := forkIndex(branches, e.From)
			if !ok {
				return nil, fmt.Errorf("findBranches: edge %d %s: %w", i, e, ErrBranchNotFound)
			}
			cur = make(branch, max(0, k-1), len(p))
		}
		started[e.From] = true
		cur = append(cur, e)
	}
	branches = append(branches, cur)

	longest := 0
	for _, b := range branches {
		longest = max(longest, len(b))
	}
	for i, b := range branches {
		if len(b) < longest {
			branches[i] = append(b, nil)
		}
	}
	return branches, nil
}

// forkIndex finds the first branch with an edge leaving v and returns that
// edge's position in it.
func forkIndex(branches []branch, v Vertex) (int, bool) {
	for _, b := range branches {
		for k, e := range b {
			if e != nil && e.From == v {
				return k, true
			}
		}
	}
	return 0, false
}

// animate replays the path: frame 0 is blank, frame i+1 shows step i of
// every branch. Without trace each frame shows only its own steps.
func (p pen) animate(out *volume.Volume, path Path, trace bool) error {
	branches, err := findBranches(path)
	if err != nil {
		return err
	}
	s := out.Shape()
	frame := make([]float64, s.Rows*s.Cols)
	for i := 0; i < s.Depth-1; i++ {
		for _, b := range branches {
			if i < len(b) && b[i] != nil {
				p.stroke(frame, s.Rows, s.Cols, *b[i])
			}
		}
		copy(out.Frame(i+1), frame)
		if !trace {
			clear(frame)
		}
	}
	return nil
}
