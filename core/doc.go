// SPDX-License-Identifier: MIT

// Package core provides the weighted directed Graph consumed by the
// shortest-path finder.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Nodes are identified by a unique string key (GraphIndex).
//   - Every node owns an ordered list of outgoing edges, kept in insertion order.
//   - Parallel edges between the same pair and self-loops are stored as distinct
//     entries; nothing is collapsed, because the edge label is part of the output.
//   - Nodes are created lazily the first time they are referenced by Add.
//
// The Graph holds adjacency only. Per-query bookkeeping (distance labels,
// settled flags, predecessor links) lives in the query that needs it, so a
// Graph can be queried any number of times and from several goroutines.
//
// Core Methods:
//
//	// Construction
//	NewGraph() *Graph
//	Add(src, dst string, cost int64, name string) // O(1) amortized
//	AddNode(key string)                           // O(1), idempotent
//
//	// Query
//	HasNode(key string) bool  // O(1)
//	Nodes() []string          // O(V·log V), sorted
//	Edges(key string) []Edge  // O(deg(v)), insertion order
//	Order() int               // node count
//	Size() int                // edge count
//	MinCost() (int64, bool)   // O(E)
//
//	// Maintenance
//	Clone() *Graph            // O(V+E)
//	Clear()                   // O(1)
//
// Preconditions:
//
//	Edge costs are expected to be non-negative. Add does not check this; a
//	caller that cannot trust its input can inspect MinCost before querying.
//
// Concurrency:
//
//	All methods take a sync.RWMutex, so readers may run concurrently with each
//	other. Mutating a Graph while a query runs on it is not supported.
package core
