// SPDX-License-Identifier: MIT
// Package: shortestpath/builder
//
// impl_grid.go - Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood.
//   • Node keys use the fixed scheme "r,c" (row-major order); cfg.idFn is not used.
//   • For each (r,c) emit Right then Bottom, each as a pair of opposite arcs.
//     Each arc draws its own cost.
//
// Complexity:
//   • Time: O(rows*cols). Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortestpath/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early.
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		// 2) Add all nodes in row-major order.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				g.AddNode(fmt.Sprintf(gridIDFmt, r, c))
			}
		}

		// 3) Emit arcs to Right and Bottom neighbors, both directions.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := fmt.Sprintf(gridIDFmt, r, c)
				if c+1 < cols {
					v := fmt.Sprintf(gridIDFmt, r, c+1)
					addEdge(g, cfg, u, v)
					addEdge(g, cfg, v, u)
				}
				if r+1 < rows {
					v := fmt.Sprintf(gridIDFmt, r+1, c)
					addEdge(g, cfg, u, v)
					addEdge(g, cfg, v, u)
				}
			}
		}

		return nil
	}
}
