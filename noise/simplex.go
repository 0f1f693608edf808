package noise

import (
	"fmt"

	"github.com/katalvlaran/imggen/grid"
	"github.com/katalvlaran/imggen/rng"
	"github.com/katalvlaran/imggen/volume"
	"github.com/ojrac/opensimplex-go"
)

// Simplex samples OpenSimplex noise at (index+loc)/unit on every axis.
// Output is clamped to [0,1].
type Simplex struct {
	unit  [3]float64
	seed  rng.Seed
	noise opensimplex.Noise
}

var _ Source = (*Simplex)(nil)

// NewSimplex builds an OpenSimplex source. The seed is reduced to 64 bits;
// an absent seed draws fresh entropy.
func NewSimplex(unit [3]float64, opts ...Option) (*Simplex, error) {
	if err := grid.ValidateUnit(unit[:]); err != nil {
		return nil, fmt.Errorf("NewSimplex: %w", err)
	}
	cfg := defaultConfig()
	cfg.apply(opts)
	return &Simplex{
		unit:  unit,
		seed:  cfg.seed,
		noise: opensimplex.NewNormalized(cfg.seed.Int64()),
	}, nil
}

// SimplexFactory adapts NewSimplex for the octave compositor.
func SimplexFactory(unit [3]float64, opts ...Option) (Source, error) {
	return NewSimplex(unit, opts...)
}

// Fill implements Source. Sampling is stateless: equal windows agree.
func (s *Simplex) Fill(size volume.Shape, loc volume.Loc) (*volume.Volume, error) {
	out, err := volume.New(size)
	if err != nil {
		return nil, fmt.Errorf("Simplex.Fill: %w", err)
	}
	data := out.Data()
	i := 0
	for z := 0; z < size.Depth; z++ {
		fz := float64(z+loc.Z) / s.unit[volume.Z]
		for y := 0; y < size.Rows; y++ {
			fy := float64(y+loc.Y) / s.unit[volume.Y]
			for x := 0; x < size.Cols; x++ {
				fx := float64(x+loc.X) / s.unit[volume.X]
				data[i] = clamp01(s.noise.Eval3(fx, fy, fz))
				i++
			}
		}
	}
	return out, nil
}

// Name implements Source.
func (s *Simplex) Name() string { return "Simplex" }

// Params implements Source.
func (s *Simplex) Params() []Param {
	return []Param{{"unit", s.unit}, {"seed", s.seed}}
}

func (s *Simplex) String() string { return Describe(s.Name(), s.Params()) }

// Equal reports parameter equality with another source.
func (s *Simplex) Equal(o Source) bool { return Equal(s, o) }
