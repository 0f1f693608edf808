package noise

import (
	"github.com/katalvlaran/imggen/rng"
	"github.com/katalvlaran/imggen/volume"
)

// Uniform is white noise straight from the seeded stream.
type Uniform struct {
	seed rng.Seed
	gen  *rng.Generator
}

var _ Source = (*Uniform)(nil)

// NewUniform builds a Uniform source. Only WithSeed applies.
func NewUniform(opts ...Option) (*Uniform, error) {
	cfg := defaultConfig()
	cfg.apply(opts)
	gen, err := rng.New(cfg.seed)
	if err != nil {
		return nil, err
	}
	return &Uniform{seed: cfg.seed, gen: gen}, nil
}

// Fill draws size+|loc| values per axis in row-major order and drops the
// leading |loc| entries of each axis, so a fresh source sampled at loc sees
// the window of a larger field. The stream advances on every call.
func (u *Uniform) Fill(size volume.Shape, loc volume.Loc) (*volume.Volume, error) {
	out, err := volume.New(size)
	if err != nil {
		return nil, err
	}
	off := loc.Abs()
	ext := volume.Shape{
		Depth: size.Depth + off.Z,
		Rows:  size.Rows + off.Y,
		Cols:  size.Cols + off.X,
	}
	draw, err := volume.FromData(ext, u.gen.Floats(ext.Size()))
	if err != nil {
		return nil, err
	}
	data := out.Data()
	for z := 0; z < size.Depth; z++ {
		for y := 0; y < size.Rows; y++ {
			src := draw.Index(z+off.Z, y+off.Y, off.X)
			copy(data[out.Index(z, y, 0):out.Index(z, y, 0)+size.Cols], draw.Data()[src:])
		}
	}
	return out, nil
}

// Name implements Source.
func (u *Uniform) Name() string { return "Uniform" }

// Params implements Source.
func (u *Uniform) Params() []Param { return []Param{{"seed", u.seed}} }

func (u *Uniform) String() string { return Describe(u.Name(), u.Params()) }

// Equal reports parameter equality with another source.
func (u *Uniform) Equal(o Source) bool { return Equal(u, o) }
