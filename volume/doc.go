// Package volume holds the dense three-dimensional float buffers every
// noise source fills.
//
// What:
//
//   - Shape describes extents in axis order (depth, rows, cols).
//   - Loc is a signed offset into an implied infinite field, same axis order.
//   - Volume is a contiguous row-major []float64 with the index formula
//     (z*rows + y)*cols + x.
//
// Why:
//
//   - Noise kernels write the flat buffer directly; renderers read whole
//     frames (one depth slice) without copying.
//
// Complexity:
//
//   - New: O(d·r·c) zero-init; At/Set: O(1); Frame: O(1) view; Clone, Bytes,
//     TileRows: O(d·r·c).
//
// Errors:
//
//   - ErrInvalidShape: a negative extent was requested.
//   - ErrOutOfRange: an index fell outside the volume.
//   - ErrShapeMismatch: two volumes of different shape were combined.
package volume
