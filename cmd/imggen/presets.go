package main

import (
	"fmt"
	"math/big"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/imggen/grid"
	"github.com/katalvlaran/imggen/maze"
	"github.com/katalvlaran/imggen/noise"
	"github.com/katalvlaran/imggen/rng"
)

// settings is the flag-level description of one source.
type settings struct {
	unit    [3]float64
	unitSet bool // -unit given; octave presets keep their base unit otherwise
	seed    rng.Seed
	points  int
	octaves int

	width  float64
	start  string
	end    string
	solver string
	delay  int
	linger int
	trace  bool
}

// preset builds a source from settings.
type preset func(s settings) (noise.Source, error)

func noiseOpts(s settings) []noise.Option {
	opts := []noise.Option{noise.WithSeed(s.seed)}
	if s.octaves > 0 {
		opts = append(opts, noise.WithOctaves(s.octaves))
	}
	return opts
}

func unitPreset(fn func([3]float64, ...noise.Option) (*noise.Unit, error)) preset {
	return func(s settings) (noise.Source, error) { return fn(s.unit, noiseOpts(s)...) }
}

// octaveOpts adds the base unit to noiseOpts when -unit was given.
func octaveOpts(s settings) ([]noise.Option, error) {
	opts := noiseOpts(s)
	if !s.unitSet {
		return opts, nil
	}
	if err := grid.ValidateUnit(s.unit[:]); err != nil {
		return nil, err
	}
	return append(opts, noise.WithUnit(s.unit)), nil
}

func octavePreset(fn func(...noise.Option) (*noise.Octave, error)) preset {
	return func(s settings) (noise.Source, error) {
		opts, err := octaveOpts(s)
		if err != nil {
			return nil, err
		}
		return fn(opts...)
	}
}

func octaveFactoryPreset(name string, factory noise.KernelFactory) preset {
	return octavePreset(func(opts ...noise.Option) (*noise.Octave, error) {
		return noise.NewOctave(name, factory, opts...)
	})
}

func mazeOpts(s settings) ([]maze.Option, error) {
	opts := []maze.Option{maze.WithSeed(s.seed), maze.WithWidth(s.width)}
	for _, o := range []struct {
		text string
		with func(maze.Origin) maze.Option
	}{{s.start, maze.WithStart}, {s.end, maze.WithEnd}} {
		if o.text == "" {
			continue
		}
		origin, err := maze.ParseOrigin(o.text)
		if err != nil {
			return nil, err
		}
		opts = append(opts, o.with(origin))
	}
	if s.solver != "" {
		sv, err := maze.ParseSolver(s.solver)
		if err != nil {
			return nil, err
		}
		opts = append(opts, maze.WithSolver(sv))
	}
	return append(opts, maze.WithDelay(s.delay), maze.WithLinger(s.linger), maze.WithTrace(s.trace)), nil
}

func mazePreset(fn func(maze.Spacing, ...maze.Option) (*maze.Maze, error)) preset {
	return func(s settings) (noise.Source, error) {
		opts, err := mazeOpts(s)
		if err != nil {
			return nil, err
		}
		return fn(maze.Spacing{int(s.unit[0]), int(s.unit[1]), int(s.unit[2])}, opts...)
	}
}

var presets = map[string]preset{
	"uniform": func(s settings) (noise.Source, error) { return noise.NewUniform(noise.WithSeed(s.seed)) },
	"worley": func(s settings) (noise.Source, error) {
		return noise.NewWorley(s.points, noise.WithSeed(s.seed))
	},
	"unitnoise":      unitPreset(noise.NewUnitNoise),
	"curtains":       unitPreset(noise.NewCurtains),
	"cosinecurtains": unitPreset(noise.NewCosineCurtains),
	"perlin":         unitPreset(noise.NewPerlin),
	"simplex": func(s settings) (noise.Source, error) {
		return noise.NewSimplex(s.unit, noiseOpts(s)...)
	},
	"fractal": func(s settings) (noise.Source, error) {
		return noise.NewFractal(s.unit, noiseOpts(s)...)
	},
	"octave-unitnoise":      octavePreset(noise.NewOctaveUnitNoise),
	"octave-curtains":       octavePreset(noise.NewOctaveCurtains),
	"octave-cosinecurtains": octavePreset(noise.NewOctaveCosineCurtains),
	"octave-perlin":         octavePreset(noise.NewOctavePerlin),
	"octave-simplex":        octaveFactoryPreset("OctaveSimplex", noise.SimplexFactory),
	"octave-fractal":        octaveFactoryPreset("OctaveFractal", noise.FractalFactory),
	"maze":         mazePreset(maze.New),
	"animatedmaze": mazePreset(maze.NewAnimated),
	"solvedmaze":   mazePreset(maze.NewSolved),
}

func presetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// parseTriple reads "a,b,c" into three integers.
func parseTriple(s string) ([3]int, error) {
	var out [3]int
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return out, fmt.Errorf("%q: want three comma-separated values", s)
	}
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return out, fmt.Errorf("%q: %w", s, err)
		}
		out[i] = n
	}
	return out, nil
}

// parseUnit reads "a,b,c" into three spacings.
func parseUnit(s string) ([3]float64, error) {
	var out [3]float64
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return out, fmt.Errorf("%q: want three comma-separated values", s)
	}
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return out, fmt.Errorf("%q: %w", s, err)
		}
		out[i] = f
	}
	return out, nil
}

// parseSeed treats decimal integers as integer seeds and anything else as
// text; the empty string is the absent seed.
func parseSeed(s string) rng.Seed {
	if s == "" {
		return rng.NoSeed()
	}
	if n, ok := new(big.Int).SetString(s, 10); ok {
		return rng.BigInt(n)
	}
	return rng.Text(s)
}
