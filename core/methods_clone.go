// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: cloning and clearing graph instances.
// Concurrency:
//   - Clone takes the read lock; the source graph is never mutated.
//   - Clear takes the write lock.

package core

// Clone returns a deep copy of the Graph: every node and every edge, with
// edge order preserved per node.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		nodes:     make(map[GraphIndex]*node, len(g.nodes)),
		edgeCount: g.edgeCount,
	}
	var (
		key string
		n   *node
	)
	for key, n = range g.nodes {
		cp := &node{}
		if len(n.edges) > 0 {
			cp.edges = make([]Edge, len(n.edges))
			copy(cp.edges, n.edges)
		}
		clone.nodes[key] = cp
	}

	return clone
}

// Clear removes all nodes and edges.
// Complexity: O(1) for map reallocation.
func (g *Graph) Clear() {
	g.mu.Lock()
	g.nodes = make(map[GraphIndex]*node)
	g.edgeCount = 0
	g.mu.Unlock()
}
