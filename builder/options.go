// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Seeding is explicit: WithSeed or WithRand.

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/lvroute/geo"
)

// BuilderOption customizes constructors by mutating a builderConfig before
// construction begins.
type BuilderOption func(*builderConfig)

// WithOrigin sets the anchor coordinate: the north-west corner of a Grid, the
// first stop of a Path and the centre of a Scatter.
// Panics on an invalid coordinate.
func WithOrigin(c geo.Coordinate) BuilderOption {
	if err := c.Validate(); err != nil {
		panic(fmt.Sprintf("builder: WithOrigin(%v): %v", c, err))
	}

	return func(cfg *builderConfig) { cfg.origin = c }
}

// WithSpacing sets the distance in meters between adjacent Grid cells and Path stops.
// Panics unless meters is finite and > 0.
func WithSpacing(meters float64) BuilderOption {
	if !(meters > 0) || math.IsInf(meters, 0) {
		panic(fmt.Sprintf("builder: WithSpacing(%v)", meters))
	}

	return func(cfg *builderConfig) { cfg.spacing = meters }
}

// WithSpread sets the Scatter radius in meters.
// Panics unless meters is finite and > 0.
func WithSpread(meters float64) BuilderOption {
	if !(meters > 0) || math.IsInf(meters, 0) {
		panic(fmt.Sprintf("builder: WithSpread(%v)", meters))
	}

	return func(cfg *builderConfig) { cfg.spread = meters }
}

// WithUnit sets the unit of generated edge weights; the graph records it too.
func WithUnit(u geo.Unit) BuilderOption {
	return func(cfg *builderConfig) { cfg.unit = u }
}

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(cfg *builderConfig) { cfg.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(cfg *builderConfig) { cfg.rng = rand.New(rand.NewSource(seed)) }
}

// WithIDScheme sets the identifier generator: idx -> ID.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(cfg *builderConfig) { cfg.idFn = fn }
}

// WithNames sets the display-name generator: ID -> name.
// Panics on nil.
func WithNames(fn func(id string) string) BuilderOption {
	if fn == nil {
		panic("builder: WithNames(nil)")
	}

	return func(cfg *builderConfig) { cfg.nameFn = fn }
}

// WithImportantEvery marks every k-th generated location (indices 0, k, 2k, ...)
// as important. k == 0 marks none. Panics if k < 0.
func WithImportantEvery(k int) BuilderOption {
	if k < 0 {
		panic(fmt.Sprintf("builder: WithImportantEvery(%d)", k))
	}

	return func(cfg *builderConfig) { cfg.importantEvery = k }
}

// WithDetour sets the per-edge detour policy. Panics on nil.
func WithDetour(fn DetourFn) BuilderOption {
	if fn == nil {
		panic("builder: WithDetour(nil)")
	}

	return func(cfg *builderConfig) { cfg.detourFn = fn }
}
