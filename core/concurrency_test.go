// SPDX-License-Identifier: MIT
// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortestpath/core"
)

// TestConcurrentAdd ensures that concurrent Add calls are safe and that
// every edge lands in the source's list.
func TestConcurrentAdd(t *testing.T) {
	g := core.NewGraph()
	const num = 200 // number of concurrent adds
	var wg sync.WaitGroup
	wg.Add(num)

	// Launch num goroutines to add edges from X to V{i}
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			g.Add("X", fmt.Sprintf("V%d", id), int64(id), fmt.Sprintf("e%d", id))
		}(i)
	}
	wg.Wait()

	require.Len(t, g.Edges("X"), num)
	require.Equal(t, num+1, g.Order())
	require.Equal(t, num, g.Size())
}

// TestConcurrentReadsAndClone validates that concurrent reads and clones do
// not race with each other.
func TestConcurrentReadsAndClone(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 50; i++ {
		g.Add("A", "A", int64(i), "loop")
	}

	const readers = 50
	const cloners = 20
	var wg sync.WaitGroup
	wg.Add(readers + cloners)

	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			if got := len(g.Edges("A")); got != 50 {
				t.Errorf("Edges(A) = %d; want 50", got)
			}
		}()
	}
	for i := 0; i < cloners; i++ {
		go func() {
			defer wg.Done()
			_ = g.Clone()
		}()
	}

	wg.Wait()
}
