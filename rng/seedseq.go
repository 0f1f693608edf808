package rng

import (
	"crypto/rand"
	"math/big"
)

// SeedSequence mixing constants.
const (
	poolSize = 4
	initA    = 0x43b0d7e5
	multA    = 0x931e8875
	initB    = 0x8b51f9dd
	multB    = 0x58f38ded
	mixMultL = 0xca01f9dd
	mixMultR = 0x4973f715
	xshift   = 16
)

// seedSequence spreads seed entropy over a small pool of 32-bit words and
// derives bit-generator state from it.
type seedSequence struct {
	pool [poolSize]uint32
}

// newSeedSequence mixes the entropy words of n into the pool.
func newSeedSequence(n *big.Int) seedSequence {
	var s seedSequence
	entropy := entropyWords(n)
	hashConst := uint32(initA)

	for i := range s.pool {
		var w uint32
		if i < len(entropy) {
			w = entropy[i]
		}
		s.pool[i] = hashmix(w, &hashConst)
	}
	// every pool word feeds every other one
	for src := range s.pool {
		for dst := range s.pool {
			if src != dst {
				s.pool[dst] = mix(s.pool[dst], hashmix(s.pool[src], &hashConst))
			}
		}
	}
	for src := poolSize; src < len(entropy); src++ {
		for dst := range s.pool {
			s.pool[dst] = mix(s.pool[dst], hashmix(entropy[src], &hashConst))
		}
	}

	return s
}

// state64 generates n 64-bit state words, each assembled little-endian from
// two consecutive 32-bit outputs.
func (s seedSequence) state64(n int) []uint64 {
	hashConst := uint32(initB)
	words := make([]uint32, 2*n)
	for i := range words {
		v := s.pool[i%poolSize]
		v ^= hashConst
		hashConst *= multB
		v *= hashConst
		v ^= v >> xshift
		words[i] = v
	}

	out := make([]uint64, n)
	for i := range out {
		out[i] = uint64(words[2*i]) | uint64(words[2*i+1])<<32
	}
	return out
}

func hashmix(v uint32, hashConst *uint32) uint32 {
	v ^= *hashConst
	*hashConst *= multA
	v *= *hashConst
	v ^= v >> xshift
	return v
}

func mix(x, y uint32) uint32 {
	r := mixMultL*x - mixMultR*y
	r ^= r >> xshift
	return r
}

// entropyWords splits n into 32-bit words, least significant first. Zero is
// a single zero word.
func entropyWords(n *big.Int) []uint32 {
	b := n.Bytes()
	words := make([]uint32, 0, (len(b)+3)/4+1)
	for end := len(b); end > 0; end -= 4 {
		start := max(end-4, 0)
		var w uint32
		for _, c := range b[start:end] {
			w = w<<8 | uint32(c)
		}
		words = append(words, w)
	}
	if len(words) == 0 {
		words = append(words, 0)
	}
	return words
}

// freshEntropy draws 128 bits from the operating system.
func freshEntropy() *big.Int {
	var buf [16]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic("rng: entropy source failed: " + err.Error())
	}
	return new(big.Int).SetBytes(buf[:])
}
