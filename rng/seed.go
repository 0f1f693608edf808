package rng

import (
	"bytes"
	"fmt"
	"math/big"
)

// seedKind tags which of the accepted seed forms a Seed holds.
type seedKind uint8

const (
	seedAbsent seedKind = iota
	seedInt
	seedText
	seedBytes
)

// Seed is the user-facing seed of a noise source. The zero value is the
// absent seed.
type Seed struct {
	kind seedKind
	num  *big.Int
	text string
	raw  []byte
}

// NoSeed returns the absent seed. Generators built from it are not
// reproducible.
func NoSeed() Seed { return Seed{} }

// Int returns an integer seed.
func Int(n int64) Seed { return Seed{kind: seedInt, num: big.NewInt(n)} }

// BigInt returns an integer seed of arbitrary size. A nil n is the absent seed.
func BigInt(n *big.Int) Seed {
	if n == nil {
		return NoSeed()
	}
	return Seed{kind: seedInt, num: new(big.Int).Set(n)}
}

// Text returns a text seed; it is UTF-8 encoded before conversion.
func Text(s string) Seed { return Seed{kind: seedText, text: s} }

// Bytes returns a byte seed; it is read as a little-endian unsigned integer.
func Bytes(b []byte) Seed {
	raw := make([]byte, len(b))
	copy(raw, b)
	return Seed{kind: seedBytes, raw: raw}
}

// Absent reports whether no seed was given.
func (s Seed) Absent() bool { return s.kind == seedAbsent }

// Integer returns the normalized integer form of the seed, or nil for the
// absent seed. Returns ErrNegativeSeed for negative integers.
func (s Seed) Integer() (*big.Int, error) {
	switch s.kind {
	case seedInt:
		if s.num.Sign() < 0 {
			return nil, fmt.Errorf("%w: %s", ErrNegativeSeed, s.num)
		}
		return new(big.Int).Set(s.num), nil
	case seedText:
		return littleEndian([]byte(s.text)), nil
	case seedBytes:
		return littleEndian(s.raw), nil
	default:
		return nil, nil
	}
}

// Int64 folds the seed into an int64 for libraries that take one. The low
// 64 bits of the normalized integer are used; the absent seed yields a
// fresh random value.
func (s Seed) Int64() int64 {
	n, err := s.Integer()
	switch {
	case err != nil:
		n = new(big.Int).Abs(s.num)
	case n == nil:
		n = freshEntropy()
	}
	mask := new(big.Int).SetUint64(^uint64(0))
	return int64(new(big.Int).And(n, mask).Uint64())
}

// Equal reports whether both seeds have the same form and value.
func (s Seed) Equal(o Seed) bool {
	if s.kind != o.kind {
		return false
	}
	switch s.kind {
	case seedInt:
		return s.num.Cmp(o.num) == 0
	case seedText:
		return s.text == o.text
	case seedBytes:
		return bytes.Equal(s.raw, o.raw)
	default:
		return true
	}
}

// String renders the seed the way it is shown in source representations:
// None, 42, 'spam' or b"spam".
func (s Seed) String() string {
	switch s.kind {
	case seedInt:
		return s.num.String()
	case seedText:
		return "'" + s.text + "'"
	case seedBytes:
		return fmt.Sprintf("b%q", s.raw)
	default:
		return "None"
	}
}

// littleEndian interprets b as a little-endian unsigned integer.
func littleEndian(b []byte) *big.Int {
	be := make([]byte, len(b))
	for i, c := range b {
		be[len(b)-1-i] = c
	}
	return new(big.Int).SetBytes(be)
}
