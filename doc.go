// SPDX-License-Identifier: MIT

// Package shortestpath finds the cheapest path between two nodes of a
// labelled, weighted, directed graph, and reports both the nodes and the
// named edges it travels.
//
// What is inside?
//
//	• A small thread-safe graph: string keys, ordered outgoing edges,
//	  parallel edges and self-loops kept as distinct entries
//	• Label-setting Dijkstra with a linear-scan or a binary-heap selector,
//	  deterministic tie-breaking and per-query scratch state
//	• A result path that renders as "s->a->z" or "s->((e1))->a->((e2))->z"
//	• BFS reachability, seeded graph generators and a YAML graph format
//
// Packages:
//
//	core/      Graph, Edge and the thread-safe construction primitives
//	dijkstra/  ShortestPath, Result, Way and the selection strategies
//	bfs/       hop-count traversal and reachability
//	builder/   deterministic Path, Cycle, Grid, Complete and RandomSparse graphs
//	graphfile/ YAML documents to and from core.Graph
//	log/       Logger interface with a golog-backed implementation
//	cmd/shortestpath route, reach, nodes and generate commands
//
// Quick example:
//
//	s ──2── a ──2── b ──2── d ──2── z
//	 \______5______/
//
//	g := core.NewGraph()
//	g.Add("s", "a", 2, "edge1")
//	...
//	res := dijkstra.ShortestPath(g, "s", "z")
//	res.Cost()                  // 8
//	res.NodePathString("->")    // s->a->b->d->z
//
// Edge costs must be non-negative. A goal that cannot be reached yields
// an empty path and the cost dijkstra.Unreachable (-1).
//
//	go get github.com/katalvlaran/shortestpath
package shortestpath
