package rng

import "math/bits"

// twoPow53Inv scales a 53-bit integer into [0,1).
const twoPow53Inv = 1.0 / 9007199254740992.0

// Generator is a seeded random stream. It is not safe for concurrent use;
// every draw advances shared state.
type Generator struct {
	src *PCG64
}

// New builds the generator for seed.
// Returns ErrNegativeSeed for negative integer seeds.
func New(seed Seed) (*Generator, error) {
	n, err := seed.Integer()
	if err != nil {
		return nil, err
	}
	if n == nil {
		n = freshEntropy()
	}
	st := newSeedSequence(n).state64(4)

	return &Generator{src: newPCG64(st[0], st[1], st[2], st[3])}, nil
}

// Source exposes the underlying bit generator, e.g. for math/rand/v2.New.
func (g *Generator) Source() *PCG64 { return g.src }

// Float64 returns a uniform value in [0,1) with 53 bits of precision.
func (g *Generator) Float64() float64 {
	return float64(g.src.Uint64()>>11) * twoPow53Inv
}

// Floats returns n consecutive Float64 draws.
func (g *Generator) Floats(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = g.Float64()
	}
	return out
}

// Interval returns a uniform integer in [0, bound] by masked rejection.
// Bounds that fit in 32 bits consume buffered 32-bit draws.
func (g *Generator) Interval(bound uint64) uint64 {
	if bound == 0 {
		return 0
	}
	// smallest all-ones mask covering bound
	mask := uint64(1)<<bits.Len64(bound) - 1
	if bound <= 0xffffffff {
		for {
			v := uint64(g.src.Uint32()) & mask
			if v <= bound {
				return v
			}
		}
	}
	for {
		v := g.src.Uint64() & mask
		if v <= bound {
			return v
		}
	}
}

// Shuffle permutes n elements in place, walking from the last index down
// and swapping each with a uniformly chosen index at or below it.
func (g *Generator) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := int(g.Interval(uint64(i)))
		swap(i, j)
	}
}

// ShuffleInts is Shuffle over an int slice.
func (g *Generator) ShuffleInts(xs []int) {
	g.Shuffle(len(xs), func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })
}
