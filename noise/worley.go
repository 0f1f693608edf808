package noise

import (
	"fmt"
	"math"

	"github.com/dgravesa/go-parallel/parallel"
	"github.com/katalvlaran/imggen/rng"
	"github.com/katalvlaran/imggen/volume"
)

// Worley is cellular noise: each voxel holds its distance to the nearest of
// a set of scattered feature points, normalized by the largest distance in
// the fill.
type Worley struct {
	points int
	volume *volume.Shape
	origin volume.Loc
	seed   rng.Seed
	gen    *rng.Generator
}

var _ Source = (*Worley)(nil)

// NewWorley scatters points feature points per fill. WithVolume bounds the
// scatter (default: the fill size); WithOrigin shifts it.
func NewWorley(points int, opts ...Option) (*Worley, error) {
	if points < 1 {
		return nil, fmt.Errorf("NewWorley(%d): %w", points, ErrNoPoints)
	}
	cfg := defaultConfig()
	cfg.apply(opts)
	gen, err := rng.New(cfg.seed)
	if err != nil {
		return nil, fmt.Errorf("NewWorley: %w", err)
	}
	return &Worley{points: points, volume: cfg.volume, origin: cfg.origin, seed: cfg.seed, gen: gen}, nil
}

// scatter draws the feature points for one fill, snapped to the nearest
// integer (ties to even) and shifted by the origin.
func (w *Worley) scatter(size volume.Shape) [][3]float64 {
	bound := size
	if w.volume != nil {
		bound = *w.volume
	}
	span := [3]float64{float64(bound.Depth - 1), float64(bound.Rows - 1), float64(bound.Cols - 1)}
	origin := [3]float64{float64(w.origin.Z), float64(w.origin.Y), float64(w.origin.X)}

	draws := w.gen.Floats(w.points * 3)
	pts := make([][3]float64, w.points)
	for i := range pts {
		for a := 0; a < 3; a++ {
			pts[i][a] = math.RoundToEven(float64(draws[i*3+a]*span[a])) + origin[a]
		}
	}
	return pts
}

// Fill computes the distance field. Distances are measured from the voxel
// index, so loc does not move the window relative to the points; use
// WithOrigin to shift the scatter instead. Depth slices are evaluated in
// parallel; each voxel's result does not depend on scheduling.
// Complexity: O(size · points).
func (w *Worley) Fill(size volume.Shape, _ volume.Loc) (*volume.Volume, error) {
	out, err := volume.New(size)
	if err != nil {
		return nil, fmt.Errorf("Worley.Fill: %w", err)
	}
	pts := w.scatter(size)
	if size.Size() == 0 {
		return out, nil
	}

	ceiling := math.Sqrt(float64(size.Depth*size.Depth + size.Rows*size.Rows + size.Cols*size.Cols))
	peaks := make([]float64, size.Depth)

	parallel.For(size.Depth, func(z, _ int) {
		frame := out.Frame(z)
		pz := float64(z)
		peak := 0.0
		for y := 0; y < size.Rows; y++ {
			py := float64(y)
			for x := 0; x < size.Cols; x++ {
				px := float64(x)
				best := ceiling
				for _, p := range pts {
					dz, dy, dx := p[0]-pz, p[1]-py, p[2]-px
					sum := float64(dz*dz) + float64(dy*dy)
					d := math.Sqrt(sum + float64(dx*dx))
					if d < best {
						best = d
					}
				}
				frame[y*size.Cols+x] = best
				if best > peak {
					peak = best
				}
			}
		}
		peaks[z] = peak
	})

	peak := 0.0
	for _, p := range peaks {
		peak = math.Max(peak, p)
	}
	if peak == 0 {
		// every voxel sits on a point
		return out, nil
	}
	return out.Divide(peak), nil
}

// Name implements Source.
func (w *Worley) Name() string { return "Worley" }

// Params implements Source.
func (w *Worley) Params() []Param {
	return []Param{
		{"points", w.points},
		{"volume", w.volume},
		{"origin", w.origin},
		{"seed", w.seed},
	}
}

func (w *Worley) String() string { return Describe(w.Name(), w.Params()) }

// Equal reports parameter equality with another source.
func (w *Worley) Equal(o Source) bool { return Equal(w, o) }
