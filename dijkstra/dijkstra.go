// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/shortestpath/core"
)

// ShortestPath computes the cheapest path from start to goal in g.
//
// Returns a Result with cost Unreachable and an empty path when g is nil,
// start is not a node of g, or goal cannot be reached from start.
// When start == goal the result has cost 0 and a single node.
//
// The graph is only read. All per-query state lives in a scratch label table
// built for this call, so repeated queries on the same Graph are independent
// and may run concurrently.
//
// Precondition: every edge cost is non-negative. Negative costs are not
// rejected; the resulting path is unspecified.
//
// Complexity:
//
//   - StrategyScan: O(V² + E)
//   - StrategyHeap: O((V + E) log V)
//   - Space: O(V + E)
func ShortestPath(g *core.Graph, start, goal string, opts ...Option) Result {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	if g == nil || !g.HasNode(start) {
		cfg.Logger.Debug("dijkstra: unknown start %q", start)
		return unreachableResult()
	}

	r := newRunner(g, cfg)
	r.init(start)
	r.process(goal)

	return r.reconstruct(start, goal)
}

// label is the scratch bookkeeping of one node for one query.
type label struct {
	cost    int64      // tentative or final cost from start; valid only if reached
	reached bool       // a path from start has been found
	done    bool       // cost is final
	prev    string     // predecessor on the best known path
	passage *core.Edge // edge used to arrive from prev
}

// runner holds the mutable state for a single execution.
type runner struct {
	g       *core.Graph
	options Options
	keys    []string          // sorted node keys; scan order
	labels  map[string]*label // key → label
	pq      labelPQ           // used by StrategyHeap only
}

func newRunner(g *core.Graph, cfg Options) *runner {
	keys := g.Nodes()
	labels := make(map[string]*label, len(keys))
	for _, k := range keys {
		labels[k] = &label{}
	}

	return &runner{
		g:       g,
		options: cfg,
		keys:    keys,
		labels:  labels,
	}
}

// init marks the start node reached at cost 0.
func (r *runner) init(start string) {
	l := r.labels[start]
	l.cost = 0
	l.reached = true

	if r.options.Strategy == StrategyHeap {
		r.pq = make(labelPQ, 0, len(r.keys))
		heap.Init(&r.pq)
		heap.Push(&r.pq, &pqItem{key: start, cost: 0})
	}
}

// process settles nodes until none is left or goal is settled.
func (r *runner) process(goal string) {
	for {
		// 1) Pick the reached, unsettled node with the smallest cost.
		u, ok := r.next()
		if !ok {
			return
		}
		lu := r.labels[u]

		// 2) Relax its outgoing edges, then settle it.
		r.relax(u, lu)
		lu.done = true
		r.options.Logger.Debug("dijkstra: settled %q at cost %d", u, lu.cost)
		r.options.OnSettle(u, lu.cost)

		// 3) The goal's cost is final once it is settled.
		if u == goal {
			return
		}
	}
}

// next returns the node to settle according to the configured strategy.
func (r *runner) next() (string, bool) {
	if r.options.Strategy == StrategyHeap {
		return r.nextHeap()
	}

	return r.nextScan()
}

// nextScan walks all labels in key order and keeps the first strictly
// smaller cost, so equal costs resolve to the smallest key.
func (r *runner) nextScan() (string, bool) {
	var (
		best  string
		found bool
		bestC int64
	)
	for _, k := range r.keys {
		l := r.labels[k]
		if l.done || !l.reached {
			continue
		}
		if !found || l.cost < bestC {
			best, bestC, found = k, l.cost, true
		}
	}

	return best, found
}

// nextHeap pops until it finds an entry that is neither settled nor stale.
func (r *runner) nextHeap() (string, bool) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*pqItem)
		l := r.labels[item.key]
		if l.done || item.cost != l.cost {
			continue
		}

		return item.key, true
	}

	return "", false
}

// relax offers every outgoing edge of u to its target. A target takes the
// new cost only if it was unreached or the new cost is strictly lower, so a
// tentative cost never increases.
func (r *runner) relax(u string, lu *label) {
	var (
		e       core.Edge
		lv      *label
		newCost int64
	)
	for _, e = range r.g.Edges(u) {
		lv = r.labels[e.To]
		// Nodes added after the query started are not part of it.
		if lv == nil || lv.done {
			continue
		}

		newCost = lu.cost + e.Cost
		if lv.reached && newCost >= lv.cost {
			continue
		}

		passage := e
		lv.cost = newCost
		lv.reached = true
		lv.prev = u
		lv.passage = &passage
		r.options.Logger.Debug("dijkstra: relaxed %q via %q (%s) to %d", e.To, u, e.Name, newCost)
		r.options.OnRelax(e.To, u, newCost)

		if r.options.Strategy == StrategyHeap {
			heap.Push(&r.pq, &pqItem{key: e.To, cost: newCost})
		}
	}
}

// reconstruct walks predecessor links from goal back to start and returns
// the path in start→goal order.
func (r *runner) reconstruct(start, goal string) Result {
	lg, ok := r.labels[goal]
	if !ok || !lg.reached {
		r.options.Logger.Debug("dijkstra: %q unreachable from %q", goal, start)
		return unreachableResult()
	}

	ways := make([]Way, 0, 8)
	cur := goal
	// A valid chain visits each node at most once; anything longer means a
	// negative cost rewired the predecessors into a cycle.
	for steps := 0; steps <= len(r.keys); steps++ {
		l := r.labels[cur]
		ways = append(ways, Way{Kind: WayNode, Name: cur})
		if cur == start {
			reverseWays(ways)
			return Result{ways: ways, cost: lg.cost}
		}
		if l.passage == nil {
			break
		}
		ways = append(ways, Way{Kind: WayEdge, Name: l.passage.Name, Cost: l.passage.Cost})
		cur = l.prev
	}

	r.options.Logger.Warn("dijkstra: broken predecessor chain from %q to %q", goal, start)

	return unreachableResult()
}

func reverseWays(ways []Way) {
	for i, j := 0, len(ways)-1; i < j; i, j = i+1, j-1 {
		ways[i], ways[j] = ways[j], ways[i]
	}
}

// pqItem is a (key, cost) snapshot stored in the heap.
type pqItem struct {
	key  string
	cost int64
}

// labelPQ is a min-heap ordered by cost, then key. Entries whose cost no
// longer matches the node's label are stale and skipped on pop.
type labelPQ []*pqItem

func (pq labelPQ) Len() int { return len(pq) }

func (pq labelPQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].key < pq[j].key
}

func (pq labelPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *labelPQ) Push(x any) { *pq = append(*pq, x.(*pqItem)) }

func (pq *labelPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
