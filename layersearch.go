package hnsw

import (
	"cmp"

	"github.com/bits-and-blooms/bitset"
	"github.com/kestrelix/hnsw/queue"
)

// layerSearch implements SEARCH-LAYER (spec.md §4.5): a bounded
// best-first search on a single layer, starting at entry and returning
// up to ef ids — the ef nearest the pivot reachable on layer — as an
// unordered slice.
func layerSearch[T any, D cmp.Ordered](idx *Index[T, D], entry int, costs *travelingCosts[T, D], ef, layer int) []int {
	visited := bitset.New(uint(len(idx.nodes)))
	visited.Set(uint(entry))

	expand := queue.New[int](costs.Less)
	expand.PushID(entry)

	result := queue.New[int](costs.Greater)
	result.PushID(entry)

	for expand.Len() > 0 {
		c := expand.PopID()

		f := result.Peek()
		if costs.from(c) > costs.from(f) {
			break
		}

		if layer > idx.nodes[c].maxLayer {
			continue
		}

		for _, n := range idx.nodes[c].connections[layer].ids {
			if visited.Test(uint(n)) {
				continue
			}
			visited.Set(uint(n))

			f = result.Peek()
			if result.Len() < ef || costs.from(n) < costs.from(f) {
				expand.PushID(n)
				result.PushID(n)

				if result.Len() > ef {
					result.PopID()
				}
			}
		}
	}

	return result.Items()
}
