// SPDX-License-Identifier: MIT
package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/shortestpath/builder"
	"github.com/katalvlaran/shortestpath/dijkstra"
)

// benchGrid runs corner-to-corner queries on a rows×cols grid with random
// costs in [1,9].
func benchGrid(b *testing.B, rows, cols int, s dijkstra.Strategy) {
	g, err := builder.BuildGraph(
		[]builder.Option{builder.WithSeed(42), builder.WithCostRange(1, 9)},
		builder.Grid(rows, cols),
	)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dijkstra.ShortestPath(g, "0,0", "29,29", dijkstra.WithStrategy(s))
	}
}

func BenchmarkShortestPath_Grid30_Scan(b *testing.B) {
	benchGrid(b, 30, 30, dijkstra.StrategyScan)
}

func BenchmarkShortestPath_Grid30_Heap(b *testing.B) {
	benchGrid(b, 30, 30, dijkstra.StrategyHeap)
}
