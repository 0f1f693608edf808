// Package grid is the unit-grid machinery shared by every coherent noise
// kernel: a shuffled value table, the mapping from voxel indices to lattice
// cells, vertex hashing, and multilinear interpolation.
//
// What:
//
//   - Table: integers min..max-1 repeated repeats+1 times, shuffled once.
//   - Mapper: voxel index → (whole, part) per axis, wrapped modulo 255.
//   - FoldHasher / ChainHasher: lattice corner → table value.
//   - Interpolate: pairwise blend of the 2^axes corner values.
//   - Linear, Cosine, Quintic: easings applied to the fractional parts.
//
// Why:
//
//   - Value, curtain, cosine and gradient kernels differ only in the hasher,
//     the easing and the per-corner transform; the rest lives here once.
//
// Determinism:
//
//   - Arithmetic follows the float semantics of the reference arrays:
//     floored remainder for the 255 wrap, floored division for the lattice
//     shape, lerp products rounded before the sum.
//
// Complexity:
//
//   - NewTable: O(len) plus one shuffle; Map: O(axes);
//     Corners: O(2^axes · axes); Interpolate: O(2^axes).
//
// Errors:
//
//   - ErrInvalidRange: max <= min or repeats < 0.
//   - ErrInvalidUnit: a unit spacing is not a positive finite number.
//   - ErrTableTooSmall: the lattice needs more vertices than the table holds.
package grid
