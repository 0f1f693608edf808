package volume

import "fmt"

// Divide divides every value by k in place and returns v.
func (v *Volume) Divide(k float64) *Volume {
	for i := range v.data {
		v.data[i] /= k
	}
	return v
}

// AddScaled accumulates o*k into v. The product is rounded before the sum
// so results do not depend on fused multiply-add.
// Returns ErrShapeMismatch when shapes differ.
func (v *Volume) AddScaled(o *Volume, k float64) error {
	if v.shape != o.shape {
		s := o.shape
		return volumeErrorf(ctxAdd, s.Depth, s.Rows, s.Cols, ErrShapeMismatch)
	}
	for i, f := range o.data {
		v.data[i] += float64(f * k)
	}
	return nil
}

// TileRows builds a (depth, rows, cols) volume from a (depth, cols) plane by
// repeating each depth's row across every row.
// Returns ErrShapeMismatch when len(plane) != depth*cols.
func TileRows(plane []float64, shape Shape) (*Volume, error) {
	if len(plane) != shape.Depth*shape.Cols {
		return nil, fmt.Errorf("%w: plane of %d for %s", ErrShapeMismatch, len(plane), shape)
	}
	out, err := New(shape)
	if err != nil {
		return nil, err
	}
	for z := 0; z < shape.Depth; z++ {
		row := plane[z*shape.Cols : (z+1)*shape.Cols]
		for y := 0; y < shape.Rows; y++ {
			copy(out.data[out.Index(z, y, 0):], row)
		}
	}
	return out, nil
}

// PadFrames returns a new volume with before blank frames in front and after
// copies of the last frame at the end.
func (v *Volume) PadFrames(before, after int) *Volume {
	n := v.shape.Rows * v.shape.Cols
	shape := v.shape
	shape.Depth += before + after
	out := &Volume{shape: shape, data: make([]float64, shape.Size())}
	copy(out.data[before*n:], v.data)
	if v.shape.Depth > 0 {
		last := v.Frame(v.shape.Depth - 1)
		for i := 0; i < after; i++ {
			copy(out.data[(before+v.shape.Depth+i)*n:], last)
		}
	}
	return out
}
