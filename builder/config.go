// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • origin         = 40.7128,-74.0060
//   • spacing        = 500 m    (Grid, Path)
//   • spread         = 5000 m   (Scatter radius)
//   • unit           = geo.Meters
//   • rng            = nil      (Scatter requires WithSeed/WithRand)
//   • idFn           = DefaultIDFn ("0","1",...)
//   • nameFn         = "Location <id>"
//   • importantEvery = 1        (every location is a destination)
//   • detourFn       = ExactDetour

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvroute/geo"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	origin  geo.Coordinate
	spacing float64 // meters between grid or corridor neighbours
	spread  float64 // scatter radius in meters
	unit    geo.Unit

	rng      *rand.Rand
	idFn     IDFn
	nameFn   func(id string) string
	detourFn DetourFn

	// importantEvery marks location idx important when idx%importantEvery == 0;
	// 0 marks none.
	importantEvery int
}

const (
	defaultSpacing = 500.0
	defaultSpread  = 5000.0
	defaultEvery   = 1
	defaultNameFmt = "Location "
)

var defaultOrigin = geo.Coordinate{Lat: 40.7128, Lon: -74.0060}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		origin:         defaultOrigin,
		spacing:        defaultSpacing,
		spread:         defaultSpread,
		unit:           geo.Meters,
		idFn:           DefaultIDFn,
		nameFn:         defaultName,
		detourFn:       ExactDetour,
		importantEvery: defaultEvery,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func defaultName(id string) string { return defaultNameFmt + id }
