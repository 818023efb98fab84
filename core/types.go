// SPDX-License-Identifier: MIT

package core

import "sync"

// GraphIndex is the unique key of a node within a Graph.
type GraphIndex = string

// Edge represents one directed connection owned by its source node.
//
// Edge values are copied out of the Graph; mutating a returned Edge never
// changes the Graph.
type Edge struct {
	// From is the key of the source node.
	From GraphIndex

	// To is the key of the destination node.
	To GraphIndex

	// Name is the edge label. It is informational and may repeat.
	Name string

	// Cost is the traversal weight. Expected to be non-negative.
	Cost int64
}

// node is the adjacency record for one key.
type node struct {
	edges []Edge // outgoing edges, insertion order
}

// Graph is the in-memory weighted directed graph.
//
// mu guards nodes and edgeCount. The zero value is not usable; call NewGraph.
type Graph struct {
	mu sync.RWMutex

	nodes     map[GraphIndex]*node // key → adjacency record
	edgeCount int                  // total number of edges across all nodes
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[GraphIndex]*node),
	}
}
