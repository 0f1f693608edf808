// SPDX-License-Identifier: MIT
// Package: imggen/noise
//
// errors.go — sentinel errors owned by the noise package. Table, unit and
// shape failures surface the grid, volume and rng sentinels unchanged.

package noise

import "errors"

// ErrNoPoints indicates a Worley source asked for fewer than one point.
var ErrNoPoints = errors.New("noise: worley needs at least one point")

// ErrNilFactory indicates an octave compositor without a kernel factory.
var ErrNilFactory = errors.New("noise: nil kernel factory")
