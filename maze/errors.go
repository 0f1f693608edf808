// SPDX-License-Identifier: MIT
// Package: imggen/maze
//
// errors.go — sentinel errors for the maze package.
//
// Callers branch with errors.Is. Detection sites wrap with the method tag
// and the offending vertex.

package maze

import "errors"

// ErrNoSolution indicates the solver exhausted its budget without reaching
// the end vertex, or an endpoint is not on the carved path.
var ErrNoSolution = errors.New("maze: no solution exists for path")

// ErrBranchNotFound indicates a fork vertex that matches no known branch
// while splitting a path for animation. It signals a broken invariant.
var ErrBranchNotFound = errors.New("maze: couldn't find branch with start")

// ErrInvalidOrigin indicates an unparseable origin string or an origin
// outside the lattice.
var ErrInvalidOrigin = errors.New("maze: invalid origin")
