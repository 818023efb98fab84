// SPDX-License-Identifier: MIT
// File: methods.go
// Role: node/edge insertion and read-only queries.
//
// Determinism:
//   - Nodes() returns keys sorted lexicographically ascending.
//   - Edges(key) returns edges in insertion order.

package core

import "sort"

// Add inserts a directed edge src→dst with the given cost and label.
//
// Both endpoints are created if missing. Calling Add twice for the same
// (src, dst) pair produces two parallel edges; both are kept and considered
// independently by the shortest-path finder. Self-loops are kept as well.
//
// The cost is not validated. Negative costs violate the finder's precondition
// and lead to undefined paths; see MinCost.
// Complexity: O(1) amortized.
func (g *Graph) Add(src, dst string, cost int64, name string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	// Destination first, so a self-loop resolves to one record.
	g.ensureNode(dst)
	from := g.ensureNode(src)

	from.edges = append(from.edges, Edge{From: src, To: dst, Name: name, Cost: cost})
	g.edgeCount++
}

// AddNode inserts an isolated node. No-op if the key already exists.
// Complexity: O(1).
func (g *Graph) AddNode(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureNode(key)
}

// ensureNode returns the record for key, creating it if absent.
// Caller must hold the write lock.
func (g *Graph) ensureNode(key string) *node {
	n, ok := g.nodes[key]
	if !ok {
		n = &node{}
		g.nodes[key] = n
	}

	return n
}

// HasNode reports whether key is a node of the graph.
// Complexity: O(1).
func (g *Graph) HasNode(key string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[key]

	return ok
}

// Nodes returns all node keys sorted ascending.
// Complexity: O(V·log V).
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	keys := make([]string, 0, len(g.nodes))
	for k := range g.nodes {
		keys = append(keys, k)
	}
	g.mu.RUnlock()
	sort.Strings(keys)

	return keys
}

// Edges returns a copy of the outgoing edges of key in insertion order.
// Returns nil for an unknown key or a node without outgoing edges.
// Complexity: O(deg(key)).
func (g *Graph) Edges(key string) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[key]
	if !ok || len(n.edges) == 0 {
		return nil
	}
	out := make([]Edge, len(n.edges))
	copy(out, n.edges)

	return out
}

// Order returns the number of nodes.
func (g *Graph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// Size returns the number of edges, parallel edges and loops included.
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// MinCost returns the smallest edge cost in the graph.
// ok is false when the graph has no edges.
// Complexity: O(E).
func (g *Graph) MinCost() (lowest int64, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var (
		n *node
		e Edge
	)
	for _, n = range g.nodes {
		for _, e = range n.edges {
			if !ok || e.Cost < lowest {
				lowest, ok = e.Cost, true
			}
		}
	}

	return lowest, ok
}
