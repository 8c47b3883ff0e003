package hnsw

import (
	"fmt"
	"sort"
)

// KNN runs K-NN-SEARCH (spec.md §4.7): descend greedily from the entry
// point down to layer 1, then expand layer 0 with ef=k. The result is
// sorted by ascending distance as a convenience — the underlying
// SEARCH-LAYER contract is unordered (spec.md §4.7), but callers
// virtually always want a ranking, so KNN does the sort once instead
// of making every caller repeat it.
func (idx *Index[T, D]) KNN(query T, k int) ([]Result[T, D], error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: k must be positive, got %d", ErrInvalidParameters, k)
	}

	if idx == nil || idx.selector == nil {
		return nil, ErrNotBuilt
	}

	if len(idx.items) == 0 {
		return nil, nil
	}

	costs := newTravelingCosts(idx.items, idx.distFn, query, -1, idx.cache)

	ep := idx.entryPoint
	epNode := idx.nodes[ep]

	for layer := epNode.maxLayer; layer > 0; layer-- {
		candidates := layerSearch(idx, ep, costs, 1, layer)
		ep = closest(candidates, costs)
	}

	candidates := layerSearch(idx, ep, costs, k, 0)

	results := make([]Result[T, D], len(candidates))
	for i, id := range candidates {
		results[i] = Result[T, D]{ID: id, Item: idx.items[id], Distance: costs.from(id)}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Distance == results[j].Distance {
			return results[i].ID < results[j].ID
		}
		return results[i].Distance < results[j].Distance
	})

	if len(results) > k {
		results = results[:k]
	}

	idx.logger.LogSearch(k, len(results))

	return results, nil
}
