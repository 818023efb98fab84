// SPDX-License-Identifier: MIT
// Package: shortestpath/builder
//
// impl_path.go - Path(n) and Cycle(n) constructors.
//
// Contract:
//   • Path: n ≥ 2, edges v0→v1→…→v(n-1).
//   • Cycle: n ≥ 3, Path edges plus v(n-1)→v0.
//   • Nodes added in index order; edges emitted in index order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortestpath/core"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds the directed path P_n.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		chain(g, cfg, n)

		return nil
	}
}

// Cycle returns a Constructor that builds the directed cycle C_n.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		chain(g, cfg, n)
		addEdge(g, cfg, cfg.idFn(n-1), cfg.idFn(0))

		return nil
	}
}

// chain adds nodes 0..n-1 and the edges i→i+1.
func chain(g *core.Graph, cfg builderConfig, n int) {
	for i := 0; i < n; i++ {
		g.AddNode(cfg.idFn(i))
	}
	for i := 0; i+1 < n; i++ {
		addEdge(g, cfg, cfg.idFn(i), cfg.idFn(i+1))
	}
}
