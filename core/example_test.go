// SPDX-License-Identifier: MIT
package core_test

import (
	"fmt"

	"github.com/katalvlaran/shortestpath/core"
)

// ExampleGraph demonstrates basic creation and queries.
func ExampleGraph() {
	// 1) Create an empty directed graph.
	g := core.NewGraph()

	// 2) Add edges (auto-adds nodes s, a, b).
	g.Add("s", "a", 2, "edge1")
	g.Add("s", "b", 5, "edge2")
	g.Add("a", "b", 2, "edge3")

	// 3) Inspect nodes and the outgoing edges of s.
	fmt.Println("Nodes:", g.Nodes())
	for _, e := range g.Edges("s") {
		fmt.Printf("%s -%s(%d)-> %s\n", e.From, e.Name, e.Cost, e.To)
	}

	// Output:
	// Nodes: [a b s]
	// s -edge1(2)-> a
	// s -edge2(5)-> b
}
