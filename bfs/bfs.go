// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph,
// returning hop-count distances, parent links, and visit order.
//
// Edges are followed in their direction and costs are ignored. Neighbors
// are enqueued in the source node's edge insertion order, so the visit
// order is deterministic for a given graph.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/shortestpath/core"
)

// queueItem pairs a node key with its BFS depth.
type queueItem struct {
	key   string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// BFS runs breadth-first search on g from start.
// Returns ErrGraphNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any OnVisit error.
// Complexity: O(V + E).
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}

	n := g.Order()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	// Seed queue with start node (no parent)
	w.enqueue(start, 0, "", false)

	return w.res, w.loop()
}

// enqueue marks key visited at depth d and records its parent.
func (w *walker) enqueue(key string, d int, parent string, hasParent bool) {
	w.visited[key] = true
	w.res.Depth[key] = d
	if hasParent {
		w.res.Parent[key] = parent
	}
	w.queue = append(w.queue, queueItem{key: key, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.key)
		if err := w.opts.OnVisit(item.key, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.key, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors enqueues each unseen target of item's outgoing edges,
// respecting MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, e := range w.graph.Edges(item.key) {
		if !w.visited[e.To] {
			w.enqueue(e.To, next, item.key, true)
		}
	}
}
