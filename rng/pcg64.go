package rng

import (
	"math/bits"
	"math/rand/v2"
)

// 128-bit LCG multiplier, split into halves.
const (
	pcgMulHi = 2549297995355413924
	pcgMulLo = 4865540595714422341
)

// PCG64 is the 128-bit state, 64-bit output permuted congruential generator
// with the XSL-RR output function.
//
// It also buffers the unused upper half of a 64-bit draw for the next
// 32-bit request, which bounded integer generation relies on.
type PCG64 struct {
	hi, lo       uint64
	incHi, incLo uint64
	hasUint32    bool
	uinteger     uint32
}

var _ rand.Source = (*PCG64)(nil)

// newPCG64 seeds the generator from a 128-bit initial state and a 128-bit
// stream selector.
func newPCG64(initHi, initLo, seqHi, seqLo uint64) *PCG64 {
	p := &PCG64{
		incHi: seqHi<<1 | seqLo>>63,
		incLo: seqLo<<1 | 1,
	}
	p.step()
	var c uint64
	p.lo, c = bits.Add64(p.lo, initLo, 0)
	p.hi, _ = bits.Add64(p.hi, initHi, c)
	p.step()
	return p
}

// step advances the state: state = state*mul + inc (mod 2^128).
func (p *PCG64) step() {
	hi, lo := bits.Mul64(p.lo, pcgMulLo)
	hi += p.hi*pcgMulLo + p.lo*pcgMulHi
	var c uint64
	lo, c = bits.Add64(lo, p.incLo, 0)
	hi, _ = bits.Add64(hi, p.incHi, c)
	p.hi, p.lo = hi, lo
}

// Uint64 advances the state and returns the next 64 output bits.
func (p *PCG64) Uint64() uint64 {
	p.step()
	rot := int(p.hi >> 58)
	return bits.RotateLeft64(p.hi^p.lo, -rot)
}

// Uint32 returns the low half of a fresh 64-bit draw, or the buffered high
// half of the previous one.
func (p *PCG64) Uint32() uint32 {
	if p.hasUint32 {
		p.hasUint32 = false
		return p.uinteger
	}
	next := p.Uint64()
	p.hasUint32 = true
	p.uinteger = uint32(next >> 32)
	return uint32(next)
}
