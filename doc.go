// Package imggen is a toolkit for procedural image data: seeded noise
// volumes and maze paths, rendered as still images or animations.
//
// 🚀 What is imggen?
//
//	A pure-Go library that fills dense (depth, rows, cols) float volumes:
//		• Uniform noise straight from the seeded stream
//		• Unit-grid noise: value, curtains, cosine curtains and Perlin
//		• Worley (cellular) noise around scattered feature points
//		• Octave compositing of any kernel at rising frequency
//		• OpenSimplex and fractal Perlin sources
//		• Mazes: carved, animated and solved paths
//
// ✨ Why imggen?
//
//   - Reproducible: a text, byte or integer seed drives a PCG64 stream that
//     matches NumPy's default generator draw for draw
//   - Strict: configuration problems (a value table too small for the
//     lattice, a bad unit, an unsolvable maze) come back as sentinel errors
//   - Parallel where it is free: octaves and Worley slices fan out, and the
//     result is identical to a serial run
//
// Under the hood, everything is organized into small packages:
//
//	rng/     — seeds, SeedSequence and PCG64
//	volume/  — Volume, Shape, Loc and byte scaling
//	grid/    — value tables, unit mapping, vertex hashing, interpolation
//	noise/   — the Source contract and every noise generator
//	maze/    — maze carving, solving and animation
//	render/  — PNG, GIF, BMP and TIFF output
//	cmd/imggen — command-line front end
//
// Quick example:
//
//	src, _ := noise.NewPerlin([3]float64{1, 32, 32}, noise.WithSeed(rng.Text("spam")))
//	v, _ := src.Fill(volume.Shape{Depth: 1, Rows: 256, Cols: 256}, volume.Origin)
//	_ = render.WriteFile("perlin.png", v)
//
//	go get github.com/katalvlaran/imggen
package imggen
