// SPDX-License-Identifier: MIT

// Package volume - dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly flat buffer with the explicit index formula
//     (z*rows + y)*cols + x.
//   - Guarantee safety at the public surface: At/Set return errors instead of
//     panicking.
//   - Hand out no-copy frame views for renderers.

package volume

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
	ctxAdd = "AddScaled"
)

// volumeErrorf wraps err with the method tag and the offending coordinate.
func volumeErrorf(method string, z, y, x int, err error) error {
	return fmt.Errorf("Volume.%s(%d,%d,%d): %w", method, z, y, x, err)
}

// Volume is a dense (depth, rows, cols) float buffer.
type Volume struct {
	shape Shape
	data  []float64 // len == shape.Size(), row-major
}

var _ fmt.Stringer = (*Volume)(nil)

// New allocates a zero-filled volume. Zero extents are allowed.
// Returns ErrInvalidShape for negative extents.
// Complexity: O(d·r·c).
func New(shape Shape) (*Volume, error) {
	if !shape.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidShape, shape)
	}
	return &Volume{shape: shape, data: make([]float64, shape.Size())}, nil
}

// FromData wraps data without copying. Returns ErrShapeMismatch when
// len(data) disagrees with shape.
func FromData(shape Shape, data []float64) (*Volume, error) {
	if !shape.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidShape, shape)
	}
	if len(data) != shape.Size() {
		return nil, fmt.Errorf("%w: %d values for %s", ErrShapeMismatch, len(data), shape)
	}
	return &Volume{shape: shape, data: data}, nil
}

// Shape returns the extents.
func (v *Volume) Shape() Shape { return v.shape }

// Data returns the flat row-major buffer; writes are visible in v.
func (v *Volume) Data() []float64 { return v.data }

// Index computes the flat offset of (z,y,x) without bounds checks.
func (v *Volume) Index(z, y, x int) int {
	return (z*v.shape.Rows+y)*v.shape.Cols + x
}

func (v *Volume) inBounds(z, y, x int) bool {
	return z >= 0 && z < v.shape.Depth &&
		y >= 0 && y < v.shape.Rows &&
		x >= 0 && x < v.shape.Cols
}

// At returns the value at (z,y,x) or ErrOutOfRange.
// Complexity: O(1).
func (v *Volume) At(z, y, x int) (float64, error) {
	if !v.inBounds(z, y, x) {
		return 0, volumeErrorf(ctxAt, z, y, x, ErrOutOfRange)
	}
	return v.data[v.Index(z, y, x)], nil
}

// Set stores val at (z,y,x) or returns ErrOutOfRange.
// Complexity: O(1).
func (v *Volume) Set(z, y, x int, val float64) error {
	if !v.inBounds(z, y, x) {
		return volumeErrorf(ctxSet, z, y, x, ErrOutOfRange)
	}
	v.data[v.Index(z, y, x)] = val
	return nil
}

// Frame returns a no-copy view of depth slice z (rows*cols values).
// Panics if z is out of range, like slice indexing.
func (v *Volume) Frame(z int) []float64 {
	n := v.shape.Rows * v.shape.Cols
	return v.data[z*n : (z+1)*n : (z+1)*n]
}

// Clone returns a deep copy.
// Complexity: O(d·r·c).
func (v *Volume) Clone() *Volume {
	cp := make([]float64, len(v.data))
	copy(cp, v.data)
	return &Volume{shape: v.shape, data: cp}
}

// Bytes scales every value by 0xff and truncates to a byte, the way color
// channels are produced from normalized noise. Values outside [0,1]
// saturate.
func (v *Volume) Bytes() []uint8 {
	out := make([]uint8, len(v.data))
	for i, f := range v.data {
		s := f * 0xff
		switch {
		case s <= 0:
			out[i] = 0
		case s >= 0xff:
			out[i] = 0xff
		default:
			out[i] = uint8(s)
		}
	}
	return out
}

// Min returns the smallest value, or 0 for an empty volume.
func (v *Volume) Min() float64 {
	if len(v.data) == 0 {
		return 0
	}
	m := v.data[0]
	for _, f := range v.data[1:] {
		if f < m {
			m = f
		}
	}
	return m
}

// Max returns the largest value, or 0 for an empty volume.
func (v *Volume) Max() float64 {
	if len(v.data) == 0 {
		return 0
	}
	m := v.data[0]
	for _, f := range v.data[1:] {
		if f > m {
			m = f
		}
	}
	return m
}

// String dumps the volume frame by frame as hex bytes, the format used when
// comparing against reference arrays.
func (v *Volume) String() string {
	var sb strings.Builder
	b := v.Bytes()
	sb.WriteString("[\n")
	for z := 0; z < v.shape.Depth; z++ {
		sb.WriteString("    [\n")
		for y := 0; y < v.shape.Rows; y++ {
			sb.WriteString("        [")
			for x := 0; x < v.shape.Cols; x++ {
				if x > 0 {
					sb.WriteString(", ")
				}
				fmt.Fprintf(&sb, "0x%02x", b[v.Index(z, y, x)])
			}
			sb.WriteString("],\n")
		}
		sb.WriteString("    ],\n")
	}
	sb.WriteString("]")
	return sb.String()
}
