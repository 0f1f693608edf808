// SPDX-License-Identifier: MIT

package noise

import (
	"fmt"
	"math"

	"github.com/dgravesa/go-parallel/parallel"
	"github.com/katalvlaran/imggen/rng"
	"github.com/katalvlaran/imggen/volume"
)

// KernelFactory builds the source for one octave from its scaled unit. The
// options carry the compositor's range, repeats and seed.
type KernelFactory func(unit [3]float64, opts ...Option) (Source, error)

// Octave layers one kernel at rising frequency. Octave i uses
// amplitude + persistence*i, frequency * 2^i and unit / frequency; the
// weighted sum is divided by the total amplitude.
type Octave struct {
	name    string
	factory KernelFactory

	octaves                           int
	persistence, amplitude, frequency float64
	unit                              [3]float64
	min, max, repeats                 int
	seed                              rng.Seed
}

var _ Source = (*Octave)(nil)

// NewOctave composes factory under the given type name. Defaults follow the
// value-noise family (4 octaves, persistence 8, amplitude 8, frequency 2,
// unit 1024³, range [0,255), repeats 1).
func NewOctave(name string, factory KernelFactory, opts ...Option) (*Octave, error) {
	if factory == nil {
		return nil, fmt.Errorf("NewOctave(%s): %w", name, ErrNilFactory)
	}
	cfg := defaultConfig()
	cfg.repeats = DefaultPerlinRepeats
	cfg.apply(opts)
	return newOctave(name, factory, cfg), nil
}

func newOctave(name string, factory KernelFactory, cfg config) *Octave {
	return &Octave{
		name:        name,
		factory:     factory,
		octaves:     cfg.octaves,
		persistence: cfg.persistence,
		amplitude:   cfg.amplitude,
		frequency:   cfg.frequency,
		unit:        cfg.unit,
		min:         cfg.min,
		max:         cfg.max,
		repeats:     cfg.repeats,
		seed:        cfg.seed,
	}
}

// NewOctaveUnitNoise layers NewUnitNoise.
func NewOctaveUnitNoise(opts ...Option) (*Octave, error) {
	return NewOctave("OctaveUnitNoise", asFactory(NewUnitNoise), opts...)
}

// NewOctaveCurtains layers NewCurtains.
func NewOctaveCurtains(opts ...Option) (*Octave, error) {
	return NewOctave("OctaveCurtains", asFactory(NewCurtains), opts...)
}

// NewOctaveCosineCurtains layers NewCosineCurtains.
func NewOctaveCosineCurtains(opts ...Option) (*Octave, error) {
	return NewOctave("OctaveCosineCurtains", asFactory(NewCosineCurtains), opts...)
}

// NewOctavePerlin layers NewPerlin with 6 octaves, persistence -4,
// amplitude 24 and frequency 4.
func NewOctavePerlin(opts ...Option) (*Octave, error) {
	cfg := defaultConfig()
	cfg.repeats = DefaultPerlinRepeats
	cfg.octaves = DefaultPerlinOctaves
	cfg.persistence = DefaultPerlinPersistence
	cfg.amplitude = DefaultPerlinAmplitude
	cfg.frequency = DefaultPerlinFrequency
	cfg.apply(opts)
	return newOctave("OctavePerlin", asFactory(NewPerlin), cfg), nil
}

func asFactory(fn func([3]float64, ...Option) (*Unit, error)) KernelFactory {
	return func(unit [3]float64, opts ...Option) (Source, error) {
		return fn(unit, opts...)
	}
}

// layer returns the amplitude and unit of octave i.
func (o *Octave) layer(i int) (amp float64, unit [3]float64) {
	amp = o.amplitude + float64(o.persistence*float64(i))
	freq := o.frequency * math.Pow(2, float64(i))
	for a := range unit {
		unit[a] = o.unit[a] / freq
	}
	return amp, unit
}

// Fill builds a fresh kernel per octave with the shared seed and fills them
// concurrently; the weighted sum is accumulated in octave order so output
// matches a serial run bit for bit.
func (o *Octave) Fill(size volume.Shape, loc volume.Loc) (*volume.Volume, error) {
	layers := make([]*volume.Volume, o.octaves)
	errs := make([]error, o.octaves)
	opts := []Option{WithRange(o.min, o.max), WithRepeats(o.repeats), WithSeed(o.seed)}

	parallel.For(o.octaves, func(i, _ int) {
		_, unit := o.layer(i)
		src, err := o.factory(unit, opts...)
		if err != nil {
			errs[i] = err
			return
		}
		layers[i], errs[i] = src.Fill(size, loc)
	})

	acc, err := volume.New(size)
	if err != nil {
		return nil, fmt.Errorf("Octave.Fill: %w", err)
	}
	total := 0.0
	for i, layer := range layers {
		if errs[i] != nil {
			return nil, fmt.Errorf("Octave.Fill: octave %d: %w", i, errs[i])
		}
		amp, _ := o.layer(i)
		if err := acc.AddScaled(layer, amp); err != nil {
			return nil, fmt.Errorf("Octave.Fill: octave %d: %w", i, err)
		}
		total += amp
	}
	return acc.Divide(total), nil
}

// Name implements Source.
func (o *Octave) Name() string { return o.name }

// Params implements Source.
func (o *Octave) Params() []Param {
	return []Param{
		{"octaves", o.octaves},
		{"persistence", o.persistence},
		{"amplitude", o.amplitude},
		{"frequency", o.frequency},
		{"unit", o.unit},
		{"min", o.min},
		{"max", o.max},
		{"repeats", o.repeats},
		{"seed", o.seed},
	}
}

func (o *Octave) String() string { return Describe(o.name, o.Params()) }

// Equal reports parameter equality with another source.
func (o *Octave) Equal(other Source) bool { return Equal(o, other) }
