package noise

import (
	"fmt"

	"github.com/aquilax/go-perlin"
	"github.com/katalvlaran/imggen/grid"
	"github.com/katalvlaran/imggen/rng"
	"github.com/katalvlaran/imggen/volume"
)

// Fractal is summed Perlin noise from go-perlin: n terms, each weighted by
// 1/alpha^i and scaled in frequency by beta^i. The raw [-1,1] output is
// mapped to [0,1] and clamped.
type Fractal struct {
	unit        [3]float64
	alpha, beta float64
	terms       int32
	seed        rng.Seed
	gen         *perlin.Perlin
}

var _ Source = (*Fractal)(nil)

// NewFractal builds a Fractal source. WithFractal sets alpha, beta and the
// term count (defaults 2, 2, 3).
func NewFractal(unit [3]float64, opts ...Option) (*Fractal, error) {
	if err := grid.ValidateUnit(unit[:]); err != nil {
		return nil, fmt.Errorf("NewFractal: %w", err)
	}
	cfg := defaultConfig()
	cfg.apply(opts)
	return &Fractal{
		unit:  unit,
		alpha: cfg.alpha,
		beta:  cfg.beta,
		terms: cfg.terms,
		seed:  cfg.seed,
		gen:   perlin.NewPerlin(cfg.alpha, cfg.beta, cfg.terms, cfg.seed.Int64()),
	}, nil
}

// FractalFactory adapts NewFractal for the octave compositor.
func FractalFactory(unit [3]float64, opts ...Option) (Source, error) {
	return NewFractal(unit, opts...)
}

// Fill implements Source.
func (f *Fractal) Fill(size volume.Shape, loc volume.Loc) (*volume.Volume, error) {
	out, err := volume.New(size)
	if err != nil {
		return nil, fmt.Errorf("Fractal.Fill: %w", err)
	}
	data := out.Data()
	i := 0
	for z := 0; z < size.Depth; z++ {
		fz := float64(z+loc.Z) / f.unit[volume.Z]
		for y := 0; y < size.Rows; y++ {
			fy := float64(y+loc.Y) / f.unit[volume.Y]
			for x := 0; x < size.Cols; x++ {
				fx := float64(x+loc.X) / f.unit[volume.X]
				data[i] = clamp01((f.gen.Noise3D(fx, fy, fz) + 1) / 2)
				i++
			}
		}
	}
	return out, nil
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// Name implements Source.
func (f *Fractal) Name() string { return "Fractal" }

// Params implements Source.
func (f *Fractal) Params() []Param {
	return []Param{
		{"unit", f.unit},
		{"alpha", f.alpha},
		{"beta", f.beta},
		{"terms", f.terms},
		{"seed", f.seed},
	}
}

func (f *Fractal) String() string { return Describe(f.Name(), f.Params()) }

// Equal reports parameter equality with another source.
func (f *Fractal) Equal(o Source) bool { return Equal(f, o) }
