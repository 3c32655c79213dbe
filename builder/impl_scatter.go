// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_scatter.go - Scatter(n, k): n random locations joined into a connected
// k-nearest-neighbour network.
//
// Model:
//   • Location i is placed at a uniform bearing and a distance spread*sqrt(u)
//     from the origin, which is uniform over the disc.
//   • Spine: every i ≥ 1 connects to its nearest predecessor j < i. The spine is
//     a spanning tree, so the network is always connected.
//   • Mesh: every i connects to its k nearest locations overall. Pairs already
//     joined are skipped by core.Builder.
//
// Contract:
//   • n ≥ 2, k ≥ 0 (else ErrTooFewLocations); cfg.rng != nil (else ErrNeedRandSource).
//
// Determinism:
//   • RNG draws: 2n for positions, then one detour draw per AddEdge call
//     (spine first, mesh second).
//   • Distance ties break on the smaller index.
//
// Complexity: O(n² log n) time, O(n) extra space.

package builder

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/geo"
)

const (
	methodScatter   = "Scatter"
	minScatterNodes = 2
	fullCircle      = 360.0
)

// Scatter returns a Constructor that places n random locations and meshes
// each with its k nearest neighbours.
func Scatter(n, k int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		// 1) Validate sizes, then randomness.
		if n < minScatterNodes || k < 0 {
			return fmt.Errorf("%s: n=%d, k=%d (n must be ≥ %d, k ≥ 0): %w",
				methodScatter, n, k, minScatterNodes, ErrTooFewLocations)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodScatter, ErrNeedRandSource)
		}

		// 2) Place locations.
		locs := make([]core.Location, n)
		for i := 0; i < n; i++ {
			bearing := cfg.rng.Float64() * fullCircle
			dist := cfg.spread * math.Sqrt(cfg.rng.Float64())
			loc, err := place(b, cfg, methodScatter, i, offset(cfg.origin, bearing, dist))
			if err != nil {
				return err
			}
			locs[i] = loc
		}
		dist := func(i, j int) float64 { return geo.Distance(locs[i].Coordinate, locs[j].Coordinate) }

		// 3) Spine: nearest predecessor.
		for i := 1; i < n; i++ {
			best := 0
			for j := 1; j < i; j++ {
				if dist(i, j) < dist(i, best) {
					best = j
				}
			}
			if err := connect(b, cfg, methodScatter, locs[best], locs[i]); err != nil {
				return err
			}
		}

		// 4) Mesh: k nearest overall.
		if k == 0 {
			return nil
		}
		others := make([]int, 0, n-1)
		for i := 0; i < n; i++ {
			others = others[:0]
			for j := 0; j < n; j++ {
				if j != i {
					others = append(others, j)
				}
			}
			slices.SortFunc(others, func(a, c int) int {
				if d := cmp.Compare(dist(i, a), dist(i, c)); d != 0 {
					return d
				}

				return cmp.Compare(a, c)
			})
			for _, j := range others[:min(k, len(others))] {
				if err := connect(b, cfg, methodScatter, locs[i], locs[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
