// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// api.go - public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates the core.Builder,
//     resolves cfg, runs cons in order, freezes.
//   - Factories are implemented in impl_*.go.
//   - Determinism: same options, seed and constructor order give identical graphs.
//   - Constructors never panic; they return wrapped sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

// Constructor adds locations and edges to b using the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters before touching b.
//   - Draw randomness only from cfg.rng, in a documented order.
//   - Wrap every error with their method name.
type Constructor func(b *core.Builder, cfg builderConfig) error

// BuildGraph resolves bopts, runs every constructor against one core.Builder
// configured with the resolved unit, and freezes the result.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor error, wrapped as "BuildGraph: %w".
//   - core.ErrEmptyGraph when no constructor added a location.
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	b := core.NewBuilder(core.WithUnit(cfg.unit))

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	g, err := b.Freeze()
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}
