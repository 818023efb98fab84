// SPDX-License-Identifier: MIT
// Package dijkstra_test provides examples demonstrating how to use ShortestPath.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/shortestpath/core"
	"github.com/katalvlaran/shortestpath/dijkstra"
)

// ExampleShortestPath runs the query on the six-node reference graph.
func ExampleShortestPath() {
	// 1) Build the directed graph; nodes are created on first use.
	g := core.NewGraph()
	g.Add("s", "a", 2, "edge1")
	g.Add("s", "b", 5, "edge2")
	g.Add("a", "b", 2, "edge3")
	g.Add("a", "c", 5, "edge4")
	g.Add("b", "c", 4, "edge5")
	g.Add("b", "d", 2, "edge6")
	g.Add("c", "z", 7, "edge7")
	g.Add("d", "c", 5, "edge8")
	g.Add("d", "z", 2, "edge9")

	// 2) Query s → z.
	res := dijkstra.ShortestPath(g, "s", "z")

	// 3) Render the result.
	fmt.Println(res.Cost())
	fmt.Println(res.NodePathString("->"))
	fmt.Println(res.NodeEdgePathString("->"))
	// Output:
	// 8
	// s->a->b->d->z
	// s->((edge1))->a->((edge3))->b->((edge6))->d->((edge9))->z
}

// ExampleShortestPath_unreachable shows the sentinel result.
func ExampleShortestPath_unreachable() {
	g := core.NewGraph()
	g.Add("a", "b", 1, "ab")
	g.AddNode("island")

	res := dijkstra.ShortestPath(g, "a", "island")
	fmt.Println(res.Cost(), res.Found(), len(res.Ways()))

	res = dijkstra.ShortestPath(g, "nowhere", "b")
	fmt.Println(res.Cost(), res.Found())
	// Output:
	// -1 false 0
	// -1 false
}

// ExampleShortestPath_heap selects the heap strategy for larger graphs.
func ExampleShortestPath_heap() {
	g := core.NewGraph()
	g.Add("home", "bridge", 4, "main-st")
	g.Add("home", "tunnel", 3, "ring-rd")
	g.Add("bridge", "office", 2, "river-rd")
	g.Add("tunnel", "office", 4, "under-rd")

	res := dijkstra.ShortestPath(g, "home", "office", dijkstra.WithStrategy(dijkstra.StrategyHeap))
	fmt.Println(res)
	// Output:
	// home -> ((main-st)) -> bridge -> ((river-rd)) -> office (cost 6)
}
