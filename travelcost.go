package hnsw

import "cmp"

// DistanceFunc computes the distance between two items. It must be
// nonnegative and satisfy d(x, x) == 0; it should be symmetric, though
// asymmetry will not crash the package — it only voids recall
// guarantees (spec.md §6).
type DistanceFunc[T any, D cmp.Ordered] func(a, b T) D

// travelingCosts produces a total order on node ids by their distance
// to a fixed pivot item (spec.md §4.3). The pivot is always a plain T
// value: during construction it's the item being inserted, during a
// query it's the query item itself. There is no sentinel id threaded
// through the regular id space (spec.md §9, "Distance function as a
// first-class value") — a fresh travelingCosts is built per pivot
// instead.
type travelingCosts[T any, D cmp.Ordered] struct {
	items   []T
	dist    DistanceFunc[T, D]
	pivot   T
	pivotID int // id of the pivot in items, or -1 if the pivot is a query
	cache   distanceCache[D]
	memo    map[int]D
}

// newTravelingCosts builds a comparator for pivot. pivotID is the
// stored-node id of pivot (so the graph's distanceCache can be
// consulted and populated), or -1 when pivot is a query item with no
// corresponding node.
func newTravelingCosts[T any, D cmp.Ordered](items []T, dist DistanceFunc[T, D], pivot T, pivotID int, cache distanceCache[D]) *travelingCosts[T, D] {
	return &travelingCosts[T, D]{
		items:   items,
		dist:    dist,
		pivot:   pivot,
		pivotID: pivotID,
		cache:   cache,
		memo:    make(map[int]D),
	}
}

// from returns d(id, pivot), memoized for the lifetime of this
// travelingCosts (i.e. for one search), per spec.md §4.3.
func (c *travelingCosts[T, D]) from(id int) D {
	if v, ok := c.memo[id]; ok {
		return v
	}

	if c.cache != nil && c.pivotID >= 0 {
		if v, ok := c.cache.tryGet(id, c.pivotID); ok {
			c.memo[id] = v
			return v
		}
	}

	v := c.dist(c.items[id], c.pivot)

	if c.cache != nil && c.pivotID >= 0 {
		c.cache.set(id, c.pivotID, v)
	}

	c.memo[id] = v

	return v
}

// Less reports whether a is closer to the pivot than b — the
// "closer-first" order used by a min-heap.
func (c *travelingCosts[T, D]) Less(a, b int) bool {
	return c.from(a) < c.from(b)
}

// Greater is the reverse() view from spec.md §4.3: the "farther-first"
// order used by a max-heap.
func (c *travelingCosts[T, D]) Greater(a, b int) bool {
	return c.from(a) > c.from(b)
}
