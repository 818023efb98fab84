// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"
	"strings"
)

// WayKind tags one element of a path.
type WayKind int

const (
	// WayNode marks a visited node; Way.Name is the node key.
	WayNode WayKind = iota
	// WayEdge marks a traversed edge; Way.Name is the edge label and
	// Way.Cost its cost.
	WayEdge
)

// String returns "node" or "edge".
func (k WayKind) String() string {
	if k == WayEdge {
		return "edge"
	}

	return "node"
}

// Way is one element of a reconstructed path.
type Way struct {
	Kind WayKind
	Name string
	Cost int64 // zero for nodes
}

// Result is the outcome of one ShortestPath call: the interleaved
// Node, Edge, Node, …, Node sequence from start to goal and its total cost.
//
// A Result is a snapshot; accessors return copies and never alias the
// internal path.
type Result struct {
	ways []Way
	cost int64
}

func unreachableResult() Result {
	return Result{cost: Unreachable}
}

// Cost returns the total path cost, or Unreachable (-1).
func (r Result) Cost() int64 { return r.cost }

// Found reports whether a path was found.
func (r Result) Found() bool { return r.cost >= 0 && len(r.ways) > 0 }

// Ways returns a copy of the interleaved path.
func (r Result) Ways() []Way {
	if len(r.ways) == 0 {
		return nil
	}
	out := make([]Way, len(r.ways))
	copy(out, r.ways)

	return out
}

// NodePath returns the node keys of the path in traversal order.
func (r Result) NodePath() []string {
	var nodes []string
	for _, w := range r.ways {
		if w.Kind == WayNode {
			nodes = append(nodes, w.Name)
		}
	}

	return nodes
}

// EdgePath returns only the edge elements of the path in traversal order.
func (r Result) EdgePath() []Way {
	var edges []Way
	for _, w := range r.ways {
		if w.Kind == WayEdge {
			edges = append(edges, w)
		}
	}

	return edges
}

// NodePathString joins the node keys with connector, e.g. "s->a->z".
func (r Result) NodePathString(connector string) string {
	return strings.Join(r.NodePath(), connector)
}

// NodeEdgePathString joins nodes and edges with connector, rendering each
// edge label as ((label)), e.g. "s->((e1))->a".
func (r Result) NodeEdgePathString(connector string) string {
	parts := make([]string, 0, len(r.ways))
	for _, w := range r.ways {
		if w.Kind == WayEdge {
			parts = append(parts, "(("+w.Name+"))")
			continue
		}
		parts = append(parts, w.Name)
	}

	return strings.Join(parts, connector)
}

// String renders the edge-annotated path and its cost.
func (r Result) String() string {
	if !r.Found() {
		return "unreachable"
	}

	return fmt.Sprintf("%s (cost %d)", r.NodeEdgePathString(" -> "), r.cost)
}
