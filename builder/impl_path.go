// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_path.go - Path(n): a corridor of n stops heading east from the origin.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewLocations).
//   • Stop i sits i*spacing east of the origin; edges i-(i+1) only.
//
// Complexity: O(n) locations, O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

const (
	methodPath   = "Path"
	minPathStops = 2
)

// Path returns a Constructor that lays out n stops along one corridor.
func Path(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minPathStops {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodPath, n, minPathStops, ErrTooFewLocations)
		}

		prev, err := place(b, cfg, methodPath, 0, cfg.origin)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			cur, err := place(b, cfg, methodPath, i, offset(cfg.origin, bearingEast, float64(i)*cfg.spacing))
			if err != nil {
				return err
			}
			if err = connect(b, cfg, methodPath, prev, cur); err != nil {
				return err
			}
			prev = cur
		}

		return nil
	}
}
