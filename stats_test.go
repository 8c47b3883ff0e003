package hnsw

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsEmptyIndex(t *testing.T) {
	idx := buildFloats(t, nil, 1)
	assert.Equal(t, Stats{}, idx.Stats())
}

func TestStatsReportsPerLayerCounts(t *testing.T) {
	items := make([]float64, 200)
	rng := rand.New(rand.NewSource(21))
	for i := range items {
		items[i] = rng.Float64() * 1000
	}

	idx := buildFloats(t, items, 21)
	stats := idx.Stats()

	require.Equal(t, len(items), stats.ItemCount)
	require.Equal(t, idx.entryPoint, stats.EntryPoint)
	require.Equal(t, idx.nodes[idx.entryPoint].maxLayer, stats.TopLayer)
	require.Len(t, stats.Levels, stats.TopLayer+1)

	// Layer 0 must contain every node.
	assert.Equal(t, len(items), stats.Levels[0].Nodes)

	for _, lvl := range stats.Levels {
		if lvl.Nodes > 0 {
			expected := float64(lvl.Connections) / float64(lvl.Nodes)
			assert.InDelta(t, expected, lvl.AverageConnections, 1e-9)
		}
	}

	// Higher layers never have more nodes than the one below.
	for l := 1; l <= stats.TopLayer; l++ {
		assert.LessOrEqual(t, stats.Levels[l].Nodes, stats.Levels[l-1].Nodes)
	}
}
