// SPDX-License-Identifier: MIT
// Package volume: sentinel error set.
//
// Public accessors return these instead of panicking; callers match them
// with errors.Is.

package volume

import "errors"

var (
	// ErrInvalidShape is returned when an extent is negative.
	ErrInvalidShape = errors.New("volume: invalid shape")

	// ErrOutOfRange indicates an index outside the volume bounds.
	ErrOutOfRange = errors.New("volume: index out of range")

	// ErrShapeMismatch indicates two operands of different shape.
	ErrShapeMismatch = errors.New("volume: shape mismatch")
)
