// SPDX-License-Identifier: MIT

package noise

import (
	"fmt"

	"github.com/katalvlaran/imggen/grid"
	"github.com/katalvlaran/imggen/rng"
	"github.com/katalvlaran/imggen/volume"
)

// Unit is coherent noise on a unit grid. The variant (value, curtains,
// cosine curtains, Perlin) is fixed at construction.
type Unit struct {
	name   string
	axes   int // 3, or 2 for curtains over (depth, cols)
	kernel kernel

	unit              [3]float64
	min, max, repeats int
	seed              rng.Seed

	table *grid.Table
}

var _ Source = (*Unit)(nil)

// NewUnitNoise builds value noise: table values interpolated linearly
// between lattice vertices spaced unit apart. Defaults: range [0,255),
// repeats 0.
func NewUnitNoise(unit [3]float64, opts ...Option) (*Unit, error) {
	return newUnit("UnitNoise", 3, valueKernel{ease: grid.Linear}, DefaultRepeats, unit, opts)
}

// NewCurtains builds two-axis value noise over (depth, cols) tiled along
// rows. The kernel reads unit[0] for depth and unit[1] for cols.
func NewCurtains(unit [3]float64, opts ...Option) (*Unit, error) {
	return newUnit("Curtains", 2, valueKernel{ease: grid.Linear}, DefaultRepeats, unit, opts)
}

// NewCosineCurtains is NewCurtains with cosine easing between vertices.
func NewCosineCurtains(unit [3]float64, opts ...Option) (*Unit, error) {
	return newUnit("CosineCurtains", 2, valueKernel{ease: grid.Cosine}, DefaultRepeats, unit, opts)
}

// NewPerlin builds Perlin gradient noise. Defaults: range [0,255), repeats 1.
func NewPerlin(unit [3]float64, opts ...Option) (*Unit, error) {
	return newUnit("Perlin", 3, perlinKernel{}, DefaultPerlinRepeats, unit, opts)
}

func newUnit(name string, axes int, k kernel, repeats int, unit [3]float64, opts []Option) (*Unit, error) {
	if err := grid.ValidateUnit(unit[:axes]); err != nil {
		return nil, fmt.Errorf("New%s: %w", name, err)
	}
	cfg := defaultConfig()
	cfg.repeats = repeats
	cfg.apply(opts)

	gen, err := rng.New(cfg.seed)
	if err != nil {
		return nil, fmt.Errorf("New%s: %w", name, err)
	}
	table, err := grid.NewTable(cfg.min, cfg.max, cfg.repeats, gen)
	if err != nil {
		return nil, fmt.Errorf("New%s: %w", name, err)
	}
	return &Unit{
		name:    name,
		axes:    axes,
		kernel:  k,
		unit:    unit,
		min:     cfg.min,
		max:     cfg.max,
		repeats: cfg.repeats,
		seed:    cfg.seed,
		table:   table,
	}, nil
}

// Fill evaluates the kernel at every voxel. Returns ErrTableTooSmall
// (wrapped) when the lattice over size outgrows the value table.
// Complexity: O(size · 2^axes · axes).
func (u *Unit) Fill(size volume.Shape, loc volume.Loc) (*volume.Volume, error) {
	if !size.Valid() {
		return nil, fmt.Errorf("Unit.Fill: %w: %s", volume.ErrInvalidShape, size)
	}
	dims, offs := size.Axes(), loc.Axes()
	if u.axes == 2 {
		dims = []int{size.Depth, size.Cols}
		offs = []int{loc.Z, loc.X}
	}
	units := u.unit[:u.axes]

	h, err := u.kernel.hasher(u.table, grid.Lattice(dims, units))
	if err != nil {
		return nil, fmt.Errorf("Unit.Fill: %w", err)
	}
	m := grid.Mapper{Unit: units, Loc: offs}

	n := 1
	for _, d := range dims {
		n *= d
	}
	out := make([]float64, n)
	corners := 1 << u.axes
	var (
		idx    = make([]int, u.axes)
		whole  = make([]int, u.axes)
		part   = make([]float64, u.axes)
		eased  = make([]float64, u.axes)
		hashes = make([]int, corners)
		g      = make([]float64, corners)
	)
	for i := 0; i < n; i++ {
		m.Map(idx, whole, part)
		if err := h.Corners(whole, hashes); err != nil {
			return nil, fmt.Errorf("Unit.Fill: %w", err)
		}
		out[i] = u.kernel.voxel(u.table, hashes, part, eased, g)
		advance(idx, dims)
	}

	if u.axes == 2 {
		return volume.TileRows(out, size)
	}
	return volume.FromData(size, out)
}

// advance steps idx to the next position in row-major order.
func advance(idx, dims []int) {
	for a := len(idx) - 1; a >= 0; a-- {
		idx[a]++
		if idx[a] < dims[a] {
			return
		}
		idx[a] = 0
	}
}

// Name implements Source.
func (u *Unit) Name() string { return u.name }

// Params implements Source.
func (u *Unit) Params() []Param {
	return []Param{
		{"unit", u.unit},
		{"min", u.min},
		{"max", u.max},
		{"repeats", u.repeats},
		{"seed", u.seed},
	}
}

func (u *Unit) String() string { return Describe(u.name, u.Params()) }

// Equal reports parameter equality with another source.
func (u *Unit) Equal(o Source) bool { return Equal(u, o) }

// Table exposes the shuffled value table.
func (u *Unit) Table() []int { return u.table.Values() }
