package hnsw_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelix/hnsw"
	"github.com/kestrelix/hnsw/resource"
)

func dist(a, b float64) float64 {
	d := a - b
	if d < 0 {
		return -d
	}
	return d
}

// TestParallelKNNViaQueryExecutor exercises spec.md §5's "queries...
// safe to run in parallel" sentence with the concrete bounded
// mechanism resource.QueryExecutor provides, against a real built
// Index rather than a synthetic workload.
func TestParallelKNNViaQueryExecutor(t *testing.T) {
	items := make([]float64, 500)
	rng := rand.New(rand.NewSource(99))
	for i := range items {
		items[i] = rng.Float64() * 1000
	}

	idx, err := hnsw.Build(items, rand.New(rand.NewSource(99)), dist)
	require.NoError(t, err)

	executor := resource.NewQueryExecutor(resource.Config{MaxConcurrentQueries: 8})

	queries := items[:100]
	results, err := resource.Run(context.Background(), executor, queries, func(_ context.Context, q float64) ([]hnsw.Result[float64, float64], error) {
		return idx.KNN(q, 1)
	})
	require.NoError(t, err)
	require.Len(t, results, len(queries))

	for i, r := range results {
		require.Len(t, r, 1)
		assert.Equal(t, queries[i], r[0].Item)
	}
}
