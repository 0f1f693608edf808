// Package rng normalizes noise seeds and produces the random stream every
// noise source draws from.
//
// What:
//
//   - Seed accepts nothing, an integer, text or raw bytes. Text is UTF-8
//     encoded and bytes are read as a little-endian unsigned integer.
//   - Generator expands the seed through a SeedSequence pool and drives a
//     PCG64 (XSL-RR 128/64) bit generator.
//   - The stream is bit-compatible with numpy's default_rng: Float64 matches
//     Generator.random and Shuffle matches Generator.shuffle, so reference
//     volumes rendered by other tooling can be reproduced exactly.
//
// Determinism:
//
//   - Identical seeds always produce identical streams, across processes
//     and platforms.
//   - An absent seed draws 128 bits from crypto/rand; such generators are
//     not reproducible.
//
// Errors:
//
//   - ErrNegativeSeed: integer seeds must be non-negative.
package rng
