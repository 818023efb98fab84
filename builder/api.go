// SPDX-License-Identifier: MIT
// Package: shortestpath/builder
//
// api.go - public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (Option) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: constructors never panic; they return sentinel errors.

// Package builder generates deterministic core.Graph fixtures: paths, cycles,
// grids, complete digraphs and Erdős–Rényi-like random digraphs.
//
// Every edge is directed. Edge labels are "<from>-<to>", and costs come from
// the configured cost function (constant 1 by default, or uniform in a range
// drawn from a seeded RNG).
package builder

import (
	"fmt"

	"github.com/katalvlaran/shortestpath/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration
// from opts, and applies all constructors in order. Any constructor error is
// wrapped with "BuildGraph: %w" and returned immediately.
//
// Complexity: Σ cost of each constructor; wrapper overhead O(K).
func BuildGraph(opts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addEdge emits u→v with a cost drawn from cfg and the canonical label.
func addEdge(g *core.Graph, cfg builderConfig, u, v string) {
	g.Add(u, v, cfg.costFn(cfg.rng), u+"-"+v)
}
