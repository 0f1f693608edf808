package grid

import "fmt"

// Hasher maps the corners of a lattice cell to table values.
type Hasher interface {
	// Corners writes one value per corner key of the cell whose lowest
	// vertex is whole. len(dst) must be 1<<len(whole).
	Corners(whole []int, dst []int) error
}

// FoldHasher flattens a corner with row-major strides over the lattice
// shape, reducing modulo the table length after every axis.
type FoldHasher struct {
	table   *Table
	strides []int
}

var _ Hasher = (*FoldHasher)(nil)

// NewFoldHasher prepares strides for a lattice of the given shape.
func NewFoldHasher(t *Table, lattice []int) *FoldHasher {
	strides := make([]int, len(lattice))
	for a := range lattice {
		s := 1
		for _, n := range lattice[a+1:] {
			s *= n
		}
		strides[a] = s
	}
	return &FoldHasher{table: t, strides: strides}
}

// Corners implements Hasher.
func (h *FoldHasher) Corners(whole []int, dst []int) error {
	axes := len(whole)
	n := h.table.Len()
	for key := range dst {
		idx := 0
		for a := 0; a < axes; a++ {
			idx += (whole[a] + Bit(key, a, axes)) * h.strides[a]
			idx %= n
		}
		dst[key] = h.table.values[idx]
	}
	return nil
}

// ChainHasher hashes a corner by chained lookups: h = whole[0], then
// h = table[h] + whole[a] for each following axis. The final sum is returned
// without a last lookup.
type ChainHasher struct {
	table *Table
}

var _ Hasher = (*ChainHasher)(nil)

// NewChainHasher wraps t.
func NewChainHasher(t *Table) *ChainHasher { return &ChainHasher{table: t} }

// Corners implements Hasher. A lookup past the table end yields
// ErrTableTooSmall.
func (h *ChainHasher) Corners(whole []int, dst []int) error {
	axes := len(whole)
	vals := h.table.values
	for key := range dst {
		v := whole[0] + Bit(key, 0, axes)
		for a := 1; a < axes; a++ {
			if v < 0 || v >= len(vals) {
				return fmt.Errorf("%w: chained index %d, table has %d", ErrTableTooSmall, v, len(vals))
			}
			v = vals[v] + whole[a] + Bit(key, a, axes)
		}
		dst[key] = v
	}
	return nil
}
