// SPDX-License-Identifier: MIT
// Package: imggen/noise
//
// options.go — functional options shared by every noise constructor.
//
// Contract:
//   • Options are functional (type Option func(*config)) and apply in order;
//     the last one wins.
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Fill never panics on user input.
//   • Each constructor starts from its own defaults and ignores options
//     it has no parameter for.

package noise

import (
	"fmt"

	"github.com/katalvlaran/imggen/rng"
	"github.com/katalvlaran/imggen/volume"
)

// Table defaults.
const (
	DefaultMin           = 0x00
	DefaultMax           = 0xff
	DefaultRepeats       = 0 // value kernels
	DefaultPerlinRepeats = 1 // Perlin and every octave preset
)

// Octave defaults for the value-noise family.
const (
	DefaultOctaves     = 4
	DefaultPersistence = 8.0
	DefaultAmplitude   = 8.0
	DefaultFrequency   = 2.0
)

// Octave defaults for Perlin.
const (
	DefaultPerlinOctaves     = 6
	DefaultPerlinPersistence = -4.0
	DefaultPerlinAmplitude   = 24.0
	DefaultPerlinFrequency   = 4.0
)

// Fractal (go-perlin) defaults.
const (
	DefaultAlpha = 2.0
	DefaultBeta  = 2.0
	DefaultTerms = 3
)

// DefaultOctaveUnit is the base spacing the octave presets divide by frequency.
var DefaultOctaveUnit = [3]float64{1024, 1024, 1024}

// Option customizes a noise constructor.
type Option func(*config)

type config struct {
	seed rng.Seed

	min, max, repeats int

	octaves                           int
	persistence, amplitude, frequency float64
	unit                              [3]float64

	volume *volume.Shape
	origin volume.Loc

	alpha, beta float64
	terms       int32
}

// defaultConfig is the value-noise baseline; constructors adjust it before
// applying caller options.
func defaultConfig() config {
	return config{
		seed:        rng.NoSeed(),
		min:         DefaultMin,
		max:         DefaultMax,
		repeats:     DefaultRepeats,
		octaves:     DefaultOctaves,
		persistence: DefaultPersistence,
		amplitude:   DefaultAmplitude,
		frequency:   DefaultFrequency,
		unit:        DefaultOctaveUnit,
		alpha:       DefaultAlpha,
		beta:        DefaultBeta,
		terms:       DefaultTerms,
	}
}

func (c *config) apply(opts []Option) {
	for _, o := range opts {
		o(c)
	}
}

// WithSeed fixes the seed. The default is an absent seed (fresh entropy).
func WithSeed(s rng.Seed) Option {
	return func(c *config) { c.seed = s }
}

// WithRange sets the value-table range [min, max). Panics if max <= min.
func WithRange(min, max int) Option {
	if max <= min {
		panic(fmt.Sprintf("noise: WithRange(%d, %d): max must exceed min", min, max))
	}
	return func(c *config) { c.min, c.max = min, max }
}

// WithRepeats sets how many extra copies of the range the table holds.
// Panics on negative n.
func WithRepeats(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("noise: WithRepeats(%d): must be non-negative", n))
	}
	return func(c *config) { c.repeats = n }
}

// WithOctaves sets the octave count. Panics if n < 1.
func WithOctaves(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("noise: WithOctaves(%d): need at least one octave", n))
	}
	return func(c *config) { c.octaves = n }
}

// WithPersistence sets the per-octave amplitude increment.
func WithPersistence(p float64) Option {
	return func(c *config) { c.persistence = p }
}

// WithAmplitude sets the amplitude of octave 0.
func WithAmplitude(a float64) Option {
	return func(c *config) { c.amplitude = a }
}

// WithFrequency sets the frequency of octave 0. Panics if f <= 0.
func WithFrequency(f float64) Option {
	if !(f > 0) {
		panic(fmt.Sprintf("noise: WithFrequency(%v): must be positive", f))
	}
	return func(c *config) { c.frequency = f }
}

// WithUnit sets the base spacing an octave compositor divides by frequency.
// Panics on a non-positive spacing.
func WithUnit(unit [3]float64) Option {
	for _, u := range unit {
		if !(u > 0) {
			panic(fmt.Sprintf("noise: WithUnit(%v): spacing must be positive", unit))
		}
	}
	return func(c *config) { c.unit = unit }
}

// WithVolume bounds where Worley scatters its points. The default is the
// size of each fill. Panics on negative extents.
func WithVolume(s volume.Shape) Option {
	if !s.Valid() {
		panic(fmt.Sprintf("noise: WithVolume(%s): negative extent", s))
	}
	return func(c *config) { c.volume = &s }
}

// WithOrigin offsets the Worley point volume.
func WithOrigin(l volume.Loc) Option {
	return func(c *config) { c.origin = l }
}

// WithFractal sets the go-perlin weight (alpha), harmonic scaling (beta)
// and number of terms used by Fractal. Panics if n < 1.
func WithFractal(alpha, beta float64, n int32) Option {
	if n < 1 {
		panic(fmt.Sprintf("noise: WithFractal(%v, %v, %d): need at least one term", alpha, beta, n))
	}
	return func(c *config) { c.alpha, c.beta, c.terms = alpha, beta, n }
}
