// Package hnsw implements the core of a Hierarchical Navigable Small
// World approximate-nearest-neighbor index: the layered graph, the
// greedy layer descent used by both construction and query, the
// bounded best-first SEARCH-LAYER routine, the two neighbor-selection
// heuristics, and the bidirectional connect/prune protocol used during
// insertion ("Efficient and robust approximate nearest neighbor search
// using HNSW", Malkov & Yashunin).
//
// The package is deliberately agnostic to what T is and how distance
// between two T values is computed: callers supply both (a distance
// oracle and an RNG) to Build, and the package never inspects T beyond
// passing it to that oracle.
package hnsw

import (
	"cmp"

	"github.com/kestrelix/hnsw/core"
)

// RNG is the random source Build samples node levels from. *rand.Rand
// satisfies this; callers that need reproducible builds should pass
// a *rand.Rand constructed from a fixed seed (spec.md §5).
type RNG interface {
	Float64() float64
}

// Result is one element of a KNN response: the original insertion
// index, the item stored at that index, and its distance to the query
// (spec.md §6).
type Result[T any, D cmp.Ordered] struct {
	ID       core.LocalID
	Item     T
	Distance D
}

// Index is a built HNSW graph over a fixed set of items. Its nodes are
// single-writer during Build and read-only afterward (spec.md §5); a
// built Index is safe to query concurrently from multiple goroutines.
type Index[T any, D cmp.Ordered] struct {
	items      []T
	nodes      []*node
	distFn     DistanceFunc[T, D]
	params     Params
	cache      distanceCache[D]
	selector   NeighborSelector[T, D]
	entryPoint core.LocalID
	logger     *Logger
}

// Build constructs an Index over items using distFn as the distance
// oracle and rng as the source of per-node level samples. With a fixed
// rng seed, a fixed distFn, and the simple selector, two Build calls
// over the same items produce byte-identical adjacency (spec.md §4.6,
// §8 property 5).
//
// items is borrowed for the life of the returned Index: KNN compares
// the query against these same T values via distFn, so the caller must
// not mutate items while the Index is in use.
func Build[T any, D cmp.Ordered](items []T, rng RNG, distFn DistanceFunc[T, D], opts ...Option) (*Index[T, D], error) {
	p := defaultParams()
	for _, opt := range opts {
		opt(&p)
	}

	if err := p.validate(); err != nil {
		return nil, err
	}

	idx := &Index[T, D]{
		items:  items,
		distFn: distFn,
		params: p,
		logger: p.logger,
	}
	idx.selector = newSelector[T, D](p)

	if len(items) == 0 {
		idx.logger.LogBuild(0, 0)
		return idx, nil
	}

	if p.enableDistanceCacheForConstruction {
		cache, err := newDistanceCache[D](len(items), p.cacheForm)
		if err != nil {
			return nil, err
		}
		idx.cache = cache
	}

	idx.nodes = make([]*node, len(items))
	for i := range items {
		idx.nodes[i] = newNode(core.LocalID(i), sampleLevel(rng, p.levelLambda), p.m)
	}
	idx.entryPoint = 0

	b := newBuilder(idx)
	b.run()

	idx.logger.LogBuild(len(items), idx.nodes[idx.entryPoint].maxLayer)

	return idx, nil
}

// newSelector realizes the NeighborSelector capability set as one of
// two concrete strategies, per spec.md §4.4 / §9 ("a tagged variant or
// a small trait, not inheritance").
func newSelector[T any, D cmp.Ordered](p Params) NeighborSelector[T, D] {
	if !p.heuristic {
		return simpleSelector[T, D]{}
	}

	return heuristicSelector[T, D]{
		expandBestSelection:   p.expandBestSelection,
		keepPrunedConnections: p.keepPrunedConnections,
	}
}

// mmax returns the hard neighbor-list cap at layer for this Index's M.
func (idx *Index[T, D]) mmax(layer int) int {
	return mmaxFor(layer, idx.params.m)
}

// distanceBetween computes d(items[i], items[j]), consulting and
// populating the construction-time distance cache when one is active.
func (idx *Index[T, D]) distanceBetween(i, j int) D {
	if idx.cache != nil {
		if v, ok := idx.cache.tryGet(i, j); ok {
			return v
		}
	}

	v := idx.distFn(idx.items[i], idx.items[j])

	if idx.cache != nil {
		idx.cache.set(i, j, v)
	}

	return v
}

// Len returns the number of items the Index was built over.
func (idx *Index[T, D]) Len() int { return len(idx.items) }
