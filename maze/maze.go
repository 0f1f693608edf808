// SPDX-License-Identifier: MIT

package maze

import (
	"fmt"

	"github.com/katalvlaran/imggen/grid"
	"github.com/katalvlaran/imggen/noise"
	"github.com/katalvlaran/imggen/rng"
	"github.com/katalvlaran/imggen/volume"
)

type variant int

const (
	still variant = iota
	animated
	solved
)

var variantNames = [...]string{"Maze", "AnimatedMaze", "SolvedMaze"}

// Maze draws a carved path as image data. The variant (still, animated or
// solved) is fixed at construction.
type Maze struct {
	kind variant
	unit Spacing
	cfg  config

	table *grid.Table
}

var _ noise.Source = (*Maze)(nil)

// New builds a maze that draws its whole carved path on every depth slice.
// Defaults: width 0.2, inset (0,1,1), origin "tl", range [0,255), repeats 1.
func New(unit Spacing, opts ...Option) (*Maze, error) {
	return newMaze(still, unit, opts)
}

// NewAnimated builds a maze that replays its carve one step per depth
// slice. Defaults as New plus delay 0, linger 0, trace on.
func NewAnimated(unit Spacing, opts ...Option) (*Maze, error) {
	return newMaze(animated, unit, opts)
}

// NewSolved builds a maze that draws only the route from start to end.
// Defaults as New plus start "tl", end "br", the Branches solver.
func NewSolved(unit Spacing, opts ...Option) (*Maze, error) {
	return newMaze(solved, unit, opts)
}

func newMaze(kind variant, unit Spacing, opts []Option) (*Maze, error) {
	name := variantNames[kind]
	if err := grid.ValidateUnit([]float64{float64(unit[0]), float64(unit[1]), float64(unit[2])}); err != nil {
		return nil, fmt.Errorf("New%s: %w", name, err)
	}
	cfg := defaultConfig()
	cfg.apply(opts)

	gen, err := rng.New(cfg.seed)
	if err != nil {
		return nil, fmt.Errorf("New%s: %w", name, err)
	}
	table, err := grid.NewTable(cfg.min, cfg.max, cfg.repeats, gen)
	if err != nil {
		return nil, fmt.Errorf("New%s: %w", name, err)
	}
	return &Maze{kind: kind, unit: unit, cfg: cfg, table: table}, nil
}

func (c *config) apply(opts []Option) {
	for _, o := range opts {
		o(c)
	}
}

// lattice hashes the vertices covering size at loc.
func (m *Maze) lattice(size volume.Shape, loc volume.Loc) (*Lattice, error) {
	if !size.Valid() {
		return nil, fmt.Errorf("%w: %s", volume.ErrInvalidShape, size)
	}
	return newLattice(m.table, latticeDims(size, m.unit, m.cfg.inset), loc)
}

// Path returns the carved path for a fill of size at loc. An empty lattice
// yields an empty path.
func (m *Maze) Path(size volume.Shape, loc volume.Loc) (Path, error) {
	l, err := m.lattice(size, loc)
	if err != nil {
		return nil, fmt.Errorf("%s.Path: %w", m.Name(), err)
	}
	p, err := m.carve(l)
	if err != nil {
		return nil, fmt.Errorf("%s.Path: %w", m.Name(), err)
	}
	return p, nil
}

func (m *Maze) carve(l *Lattice) (Path, error) {
	if l.Size() == 0 {
		return Path{}, nil
	}
	origin, err := m.cfg.origin.Resolve(l)
	if err != nil {
		return nil, err
	}
	return carve(l, origin), nil
}

// Route returns the route between the configured start and end on the
// path carved for size at loc. Returns ErrNoSolution (wrapped) when the
// solver finds none.
func (m *Maze) Route(size volume.Shape, loc volume.Loc) (Path, error) {
	l, err := m.lattice(size, loc)
	if err != nil {
		return nil, fmt.Errorf("%s.Route: %w", m.Name(), err)
	}
	r, err := m.route(l)
	if err != nil {
		return nil, fmt.Errorf("%s.Route: %w", m.Name(), err)
	}
	return r, nil
}

func (m *Maze) route(l *Lattice) (Path, error) {
	p, err := m.carve(l)
	if err != nil || len(p) == 0 {
		return p, err
	}
	start, err := m.cfg.start.Resolve(l)
	if err != nil {
		return nil, err
	}
	end, err := m.cfg.end.Resolve(l)
	if err != nil {
		return nil, err
	}
	return m.cfg.solver.solve(p, l.Dims, start, end)
}

// Fill draws the variant's path at full intensity on a zero background.
// An animated fill has delay+depth+linger frames.
// Complexity: O(V) carve plus O(E·w²) per painted frame.
func (m *Maze) Fill(size volume.Shape, loc volume.Loc) (*volume.Volume, error) {
	out, err := m.fill(size, loc)
	if err != nil {
		return nil, fmt.Errorf("%s.Fill: %w", m.Name(), err)
	}
	return out, nil
}

func (m *Maze) fill(size volume.Shape, loc volume.Loc) (*volume.Volume, error) {
	l, err := m.lattice(size, loc)
	if err != nil {
		return nil, err
	}
	out, err := volume.New(size)
	if err != nil {
		return nil, err
	}
	p := newPen(m.unit, m.cfg.inset, m.cfg.width)

	switch m.kind {
	case animated:
		path, err := m.carve(l)
		if err != nil {
			return nil, err
		}
		if err := p.animate(out, path, m.cfg.trace); err != nil {
			return nil, err
		}
		return out.PadFrames(m.cfg.delay, m.cfg.linger), nil
	case solved:
		r, err := m.route(l)
		if err != nil {
			return nil, err
		}
		p.draw(out, r)
	default:
		path, err := m.carve(l)
		if err != nil {
			return nil, err
		}
		p.draw(out, path)
	}
	return out, nil
}

// Name is "Maze", "AnimatedMaze" or "SolvedMaze".
func (m *Maze) Name() string { return variantNames[m.kind] }

// Params lists the constructor parameters of the variant.
func (m *Maze) Params() []noise.Param {
	c := m.cfg
	ps := []noise.Param{{Name: "unit", Value: m.unit}}
	switch m.kind {
	case animated:
		ps = append(ps,
			noise.Param{Name: "delay", Value: c.delay},
			noise.Param{Name: "linger", Value: c.linger},
			noise.Param{Name: "trace", Value: c.trace})
	case solved:
		ps = append(ps,
			noise.Param{Name: "start", Value: c.start.Value()},
			noise.Param{Name: "end", Value: c.end.Value()},
			noise.Param{Name: "algorithm", Value: c.solver.String()})
	}
	return append(ps,
		noise.Param{Name: "width", Value: c.width},
		noise.Param{Name: "inset", Value: c.inset},
		noise.Param{Name: "origin", Value: c.origin.Value()},
		noise.Param{Name: "min", Value: c.min},
		noise.Param{Name: "max", Value: c.max},
		noise.Param{Name: "repeats", Value: c.repeats},
		noise.Param{Name: "seed", Value: c.seed})
}

func (m *Maze) String() string { return noise.Describe(m.Name(), m.Params()) }

// Equal reports whether o is the same variant with equal parameters.
func (m *Maze) Equal(o noise.Source) bool { return noise.Equal(m, o) }
