// Package noise provides the volume sources of imggen: white noise, unit-grid
// coherent noise (value, curtains, cosine curtains, Perlin), Worley cellular
// noise, an octave compositor over any of them, and two library-backed
// kernels (OpenSimplex and fractal Perlin).
//
// What:
//
//   - Source: Fill(size, loc) → *volume.Volume plus Name/Params/String.
//   - Uniform: seeded stream windowed by extend-then-slice.
//   - Unit: one struct, a closed set of kernel strategies.
//   - Worley: nearest-feature-point distance, normalized by its maximum.
//   - Octave: KernelFactory closure, fixed-order weighted sum.
//   - Simplex, Fractal: opensimplex-go and go-perlin samplers.
//
// Determinism:
//
//   - Seeded sources reproduce the reference byte arrays exactly.
//   - Octave and Worley run their independent parts on goroutines
//     (go-parallel) but combine results in a fixed order.
//
// Concurrency:
//
//   - Fill on one instance must be serialized by the caller.
//
// Errors:
//
//   - grid.ErrTableTooSmall, grid.ErrInvalidUnit, grid.ErrInvalidRange,
//     volume.ErrInvalidShape and rng.ErrNegativeSeed, wrapped with the
//     failing constructor or method.
//   - ErrNoPoints, ErrNilFactory for Worley and Octave misconfiguration.
package noise
