// SPDX-License-Identifier: MIT
// Package: imggen/grid
//
// errors.go — sentinel errors for the grid package.
//
// Callers branch with errors.Is; detection sites attach the numbers with %w.

package grid

import "errors"

// ErrTableTooSmall indicates that the lattice covering a fill needs more
// vertices than the value table holds, or that a chained lookup stepped past
// the end of the table.
var ErrTableTooSmall = errors.New("grid: value table too small for unit and size")

// ErrInvalidUnit indicates a unit spacing that is zero, negative or not finite.
var ErrInvalidUnit = errors.New("grid: unit must be positive")

// ErrInvalidRange indicates a table range with max <= min or negative repeats.
var ErrInvalidRange = errors.New("grid: invalid table range")
