// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"

	"github.com/katalvlaran/imggen/rng"
)

// Table is the shuffled permutation table kernels hash lattice vertices into.
// It is built once per noise instance and read-only afterwards.
type Table struct {
	values            []int
	min, max, repeats int
}

// NewTable lists min..max-1 repeats+1 times and shuffles the list once with
// gen. Returns ErrInvalidRange when max <= min or repeats < 0.
// Complexity: O((max-min)·(repeats+1)).
func NewTable(min, max, repeats int, gen *rng.Generator) (*Table, error) {
	if max <= min || repeats < 0 {
		return nil, fmt.Errorf("NewTable(%d,%d,%d): %w", min, max, repeats, ErrInvalidRange)
	}
	span := max - min
	values := make([]int, 0, span*(repeats+1))
	for r := 0; r <= repeats; r++ {
		for v := min; v < max; v++ {
			values = append(values, v)
		}
	}
	gen.ShuffleInts(values)
	return &Table{values: values, min: min, max: max, repeats: repeats}, nil
}

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.values) }

// Values exposes the shuffled entries. Callers must not modify them.
func (t *Table) Values() []int { return t.values }

// Span returns max - min, the divisor that normalizes interpolated values.
func (t *Table) Span() int { return t.max - t.min }

// Lookup returns the entry at i or ErrTableTooSmall.
func (t *Table) Lookup(i int) (int, error) {
	if i < 0 || i >= len(t.values) {
		return 0, fmt.Errorf("%w: index %d, table has %d", ErrTableTooSmall, i, len(t.values))
	}
	return t.values[i], nil
}

// Fits returns ErrTableTooSmall when a lattice of the given shape has more
// vertices than the table.
func (t *Table) Fits(lattice []int) error {
	need := 1
	for _, n := range lattice {
		need *= n
	}
	if need > len(t.values) {
		return fmt.Errorf("%w: need %d vertices, table has %d", ErrTableTooSmall, need, len(t.values))
	}
	return nil
}
