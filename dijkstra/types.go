// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/shortestpath/log"
)

// Unreachable is the cost reported when the start node is unknown or the
// goal cannot be reached from it.
const Unreachable int64 = -1

// Sentinel errors returned by option parsing.
var (
	// ErrBadStrategy indicates an unknown selection strategy.
	ErrBadStrategy = errors.New("dijkstra: unknown strategy")
)

// Strategy controls how the next node to settle is selected.
//
// Both strategies settle nodes in the same order: smallest tentative cost
// first, ties broken by the lexicographically smallest key. They differ only
// in running time.
type Strategy int

const (
	// StrategyScan scans every node label per iteration. O(V²) overall;
	// the right choice for small graphs.
	StrategyScan Strategy = iota

	// StrategyHeap keeps reached nodes in a binary heap with lazy
	// decrease-key. O((V + E) log V).
	StrategyHeap
)

// String returns the lower-case strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyScan:
		return "scan"
	case StrategyHeap:
		return "heap"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy converts "scan" or "heap" into a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "scan":
		return StrategyScan, nil
	case "heap":
		return StrategyHeap, nil
	default:
		return StrategyScan, fmt.Errorf("%w: %q", ErrBadStrategy, name)
	}
}

// Options configures a ShortestPath run.
//
// Strategy – node selection strategy (default StrategyScan).
// Logger   – receives debug traces of settle/relax events (default no-op).
// OnSettle – called once per settled node with its final cost.
// OnRelax  – called whenever a node's tentative cost is set or lowered.
type Options struct {
	Strategy Strategy
	Logger   log.Logger
	OnSettle func(key string, cost int64)
	OnRelax  func(key, via string, cost int64)
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithStrategy selects the node selection strategy.
// Panics with ErrBadStrategy for values other than StrategyScan/StrategyHeap.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != StrategyScan && s != StrategyHeap {
			panic(ErrBadStrategy.Error())
		}
		o.Strategy = s
	}
}

// WithLogger routes debug traces to l. A nil l keeps the current logger.
func WithLogger(l log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnSettle registers a callback invoked when a node is settled.
func WithOnSettle(fn func(key string, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// WithOnRelax registers a callback invoked when key receives a new tentative
// cost through the node via.
func WithOnRelax(fn func(key, via string, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// DefaultOptions returns Options with the scan strategy, a no-op logger and
// no-op hooks.
func DefaultOptions() Options {
	return Options{
		Strategy: StrategyScan,
		Logger:   log.NoOpLogger{},
		OnSettle: func(string, int64) {},
		OnRelax:  func(string, string, int64) {},
	}
}
