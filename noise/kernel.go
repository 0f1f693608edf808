package noise

import (
	"github.com/katalvlaran/imggen/grid"
)

// kernel is the per-variant strategy of a unit-grid source: how lattice
// corners are hashed and how corner hashes become a voxel value.
type kernel interface {
	// hasher prepares corner hashing for one fill over the given lattice.
	hasher(t *grid.Table, lattice []int) (grid.Hasher, error)

	// voxel turns the corner hashes of one cell into an output value.
	// part is the raw fractional offset; g and eased are scratch.
	voxel(t *grid.Table, hashes []int, part, eased, g []float64) float64
}

// valueKernel interpolates raw table values and normalizes by the range.
type valueKernel struct {
	ease grid.Easing
}

func (k valueKernel) hasher(t *grid.Table, lattice []int) (grid.Hasher, error) {
	if err := t.Fits(lattice); err != nil {
		return nil, err
	}
	return grid.NewFoldHasher(t, lattice), nil
}

func (k valueKernel) voxel(t *grid.Table, hashes []int, part, eased, g []float64) float64 {
	for a, p := range part {
		eased[a] = k.ease(p)
	}
	for i, h := range hashes {
		g[i] = float64(h)
	}
	return grid.Interpolate(g, eased) / float64(t.Span())
}

// perlinKernel blends gradient contributions with quintic fades.
type perlinKernel struct{}

// The chained hash never folds over the lattice, so only the chained
// lookups themselves are bounds-checked.
func (perlinKernel) hasher(t *grid.Table, _ []int) (grid.Hasher, error) {
	return grid.NewChainHasher(t), nil
}

func (perlinKernel) voxel(_ *grid.Table, hashes []int, part, eased, g []float64) float64 {
	for a, p := range part {
		eased[a] = grid.Quintic(p)
	}
	for key, h := range hashes {
		z := part[0] - float64(grid.Bit(key, 0, 3))
		y := part[1] - float64(grid.Bit(key, 1, 3))
		x := part[2] - float64(grid.Bit(key, 2, 3))
		g[key] = gradient(h, z, y, x)
	}
	return (grid.Interpolate(g, eased) + 1) / 2
}

// gradient picks one of sixteen signed sums by the low four bits of h.
// Entry 0xd is -y+z rather than -y+x; the reference images depend on it.
func gradient(h int, z, y, x float64) float64 {
	switch h & 0xf {
	case 0x0:
		return x + y
	case 0x1:
		return -x + y
	case 0x2:
		return x - y
	case 0x3:
		return -x - y
	case 0x4:
		return x + z
	case 0x5:
		return -x + z
	case 0x6:
		return x - z
	case 0x7:
		return -x - z
	case 0x8:
		return y + z
	case 0x9:
		return -y + z
	case 0xa:
		return y - z
	case 0xb:
		return -y - z
	case 0xc:
		return y + x
	case 0xd:
		return -y + z
	case 0xe:
		return y - x
	default:
		return -y - z
	}
}
