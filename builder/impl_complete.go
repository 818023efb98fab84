// SPDX-License-Identifier: MIT
// Package: shortestpath/builder
//
// impl_complete.go - Complete(n) and RandomSparse(n, p) constructors.
//
// Both iterate ordered pairs (i,j), i≠j, i asc then j asc, so the edge order
// and (for RandomSparse) the sequence of Bernoulli trials are stable for a
// fixed seed. Self-loops are never emitted.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/shortestpath/core"
)

const (
	methodComplete          = "Complete"
	methodRandomSparse      = "RandomSparse"
	minCompleteNodes        = 1
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// Complete returns a Constructor that builds the complete digraph on n nodes.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		return pairs(g, cfg, n, func() bool { return true })
	}
}

// RandomSparse returns a Constructor that includes each ordered pair (i,j),
// i≠j, independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 and p is not NaN (else ErrInvalidProbability).
//   - an RNG is required when 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if math.IsNaN(p) || p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		return pairs(g, cfg, n, func() bool {
			switch p {
			case probMin:
				return false
			case probMax:
				return true
			default:
				return cfg.rng.Float64() < p
			}
		})
	}
}

// pairs adds nodes 0..n-1 and an edge for every ordered pair accepted by keep.
func pairs(g *core.Graph, cfg builderConfig, n int, keep func() bool) error {
	for i := 0; i < n; i++ {
		g.AddNode(cfg.idFn(i))
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			if keep() {
				addEdge(g, cfg, cfg.idFn(i), cfg.idFn(j))
			}
		}
	}

	return nil
}
