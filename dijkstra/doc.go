// SPDX-License-Identifier: MIT

// Package dijkstra finds the cheapest path between two nodes of a
// core.Graph with non-negative edge costs.
//
// Overview:
//
//   - ShortestPath runs a label-based Dijkstra from start, settling one node
//     per iteration (smallest tentative cost first) and relaxing its outgoing
//     edges, and stops as soon as goal is settled.
//   - The path is rebuilt by following predecessor links back from goal and
//     records which edge was taken at each step, so parallel edges between
//     the same pair stay distinguishable in the output.
//   - All bookkeeping lives in a scratch table created per call. The Graph is
//     never written, so repeated or concurrent queries give identical results.
//
// Determinism:
//
//   - Among nodes with equal tentative cost the lexicographically smallest key
//     is settled first. This pins the returned path when several shortest
//     paths exist.
//   - StrategyScan and StrategyHeap settle nodes in exactly the same order.
//
// Results:
//
//	res := dijkstra.ShortestPath(g, "s", "z")
//	res.Cost()                    // 8, or dijkstra.Unreachable (-1)
//	res.NodePathString("->")      // "s->a->b->d->z"
//	res.NodeEdgePathString("->")  // "s->((edge1))->a->…->z"
//
// Failure is reported through the result, not an error:
//
//   - unknown start      → cost -1, empty path
//   - unreachable goal   → cost -1, empty path
//   - start == goal      → cost 0, single node
//
// Negative costs, self-loops and parallel edges are accepted without checks.
// Negative costs break Dijkstra's invariant and the path is then unspecified;
// validate input at the boundary (graphfile rejects them, core.Graph.MinCost
// reports them).
//
// Options:
//
//	– WithStrategy(StrategyScan|StrategyHeap)
//	– WithLogger(log.Logger): debug trace of every settle/relax step.
//	– WithOnSettle / WithOnRelax: observation hooks.
package dijkstra
