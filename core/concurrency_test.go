// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spbench/core"
)

// TestConcurrentAddArc ensures that concurrent AddArc calls are safe and
// all arcs appear.
func TestConcurrentAddArc(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			require.NoError(t, g.AddArc("X", fmt.Sprintf("V%d", id), float64(id)))
		}(i)
	}
	wg.Wait()

	require.Len(t, g.Neighbors("X"), num)
	require.Equal(t, num, g.ArcCount())
}

// TestConcurrentReaders validates that Neighbors, Nodes and Clone may run
// concurrently against the same graph.
func TestConcurrentReaders(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 50; i++ {
		require.NoError(t, g.AddArc("A", fmt.Sprintf("B%02d", i), float64(i)))
	}

	const readers = 50
	const cloners = 20
	var wg sync.WaitGroup
	wg.Add(readers + cloners)

	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			require.Len(t, g.Neighbors("A"), 50)
			require.Len(t, g.Nodes(), 51)
		}()
	}
	for i := 0; i < cloners; i++ {
		go func() {
			defer wg.Done()
			require.Equal(t, 50, g.Clone().ArcCount())
		}()
	}

	wg.Wait()
}
