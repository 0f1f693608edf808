package rng

import "errors"

// ErrNegativeSeed indicates an integer seed below zero.
var ErrNegativeSeed = errors.New("rng: seed must be non-negative")
