package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eointolster/VoroniGalaxy/core"
)

// Common concurrency sizes used across core tests.
const (
	NConcurrentAdds = 200
	NReaders        = 50
)

// TestConcurrentAddEdgeUniqueIDs adds edges from many goroutines and checks
// that every edge received a distinct ID.
func TestConcurrentAddEdgeUniqueIDs(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())

	var wg sync.WaitGroup
	ids := make([]int64, NConcurrentAdds)
	errs := make([]error, NConcurrentAdds)
	for i := 0; i < NConcurrentAdds; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i], errs[i] = g.AddEdge(2*i, 2*i+1, float64(i))
		}(i)
	}
	wg.Wait()

	seen := make(map[int64]bool, NConcurrentAdds)
	for i := 0; i < NConcurrentAdds; i++ {
		require.NoError(t, errs[i])
		require.False(t, seen[ids[i]], "duplicate edge ID %d", ids[i])
		seen[ids[i]] = true
	}
	require.Equal(t, NConcurrentAdds, g.EdgeCount())
}

// TestConcurrentReadersWithWriter mixes readers with a single writer under -race.
func TestConcurrentReadersWithWriter(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge(0, 1, 1)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 2; i < NConcurrentAdds; i++ {
			_, _ = g.AddEdge(i-1, i, 1)
		}
	}()
	for r := 0; r < NReaders; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = g.Vertices()
			_ = g.Edges()
			_, _ = g.NeighborIDs(0)
			_, _ = g.Degree(0)
		}()
	}
	wg.Wait()

	require.Equal(t, NConcurrentAdds-1, g.EdgeCount())
}
