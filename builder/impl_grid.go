// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_grid.go - Grid(rows, cols): a street grid of rows×cols intersections.
//
// Model:
//   • Cell (r,c) sits r*spacing south and c*spacing east of the origin.
//   • Index idx = r*cols + c names the location through cfg.idFn.
//   • 4-neighbourhood: each cell connects to its right and bottom neighbour.
//
// Determinism:
//   • Locations are added row-major; edges per cell Right then Bottom.
//   • One detour draw per edge, in emission order.
//
// Complexity: O(rows*cols) locations and edges; O(rows*cols) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that lays out a rows×cols street grid.
func Grid(rows, cols int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		// 1) Validate parameters before any mutation.
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewLocations)
		}

		// 2) Place every intersection row-major.
		cells := make([]core.Location, 0, rows*cols)
		for r := 0; r < rows; r++ {
			rowStart := offset(cfg.origin, bearingSouth, float64(r)*cfg.spacing)
			for c := 0; c < cols; c++ {
				loc, err := place(b, cfg, methodGrid, r*cols+c, offset(rowStart, bearingEast, float64(c)*cfg.spacing))
				if err != nil {
					return err
				}
				cells = append(cells, loc)
			}
		}

		// 3) Emit Right then Bottom for each cell.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := cells[r*cols+c]
				if c+1 < cols {
					if err := connect(b, cfg, methodGrid, u, cells[r*cols+c+1]); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := connect(b, cfg, methodGrid, u, cells[(r+1)*cols+c]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
