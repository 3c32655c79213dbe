// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// errors.go - sentinel errors for the builder package.
//
// Wrapping style:
//
//	return fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodPath, n, minPathStops, ErrTooFewLocations)
//
// Validation order when several checks fail: sizes first, then RNG presence,
// then construction.

package builder

import "errors"

// ErrTooFewLocations indicates a size parameter below the constructor minimum
// (rows/cols < 1, Path n < 2, Scatter n < 2, k < 0).
var ErrTooFewLocations = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates a stochastic constructor ran without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction that could not start, such as a
// nil constructor passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")
