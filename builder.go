package hnsw

import "cmp"

// builder runs INSERT for every item beyond the first (spec.md §4.6).
// It is the sole writer of node connection lists during Build; once
// run returns, the Index is frozen (spec.md §5).
type builder[T any, D cmp.Ordered] struct {
	idx *Index[T, D]
}

func newBuilder[T any, D cmp.Ordered](idx *Index[T, D]) *builder[T, D] {
	return &builder[T, D]{idx: idx}
}

// run executes INSERT for nodes 1..N-1 in order. Node 0 starts as the
// entry point (spec.md §4.6, step 1); run reassigns the entry point
// whenever a later node's level exceeds the current one's.
func (b *builder[T, D]) run() {
	idx := b.idx

	for i := 1; i < len(idx.items); i++ {
		b.insert(i)

		if idx.nodes[i].maxLayer > idx.nodes[idx.entryPoint].maxLayer {
			idx.entryPoint = i
		}
	}
}

// insert runs INSERT for a single node: zoom-in through the layers
// above its own level, then connect-and-prune at its own level and
// below (spec.md §4.6, steps 2a/2b).
func (b *builder[T, D]) insert(i int) {
	idx := b.idx
	target := idx.nodes[i]

	costs := newTravelingCosts(idx.items, idx.distFn, idx.items[i], i, idx.cache)

	ep := idx.entryPoint
	epNode := idx.nodes[ep]

	for layer := epNode.maxLayer; layer > target.maxLayer; layer-- {
		candidates := layerSearch(idx, ep, costs, 1, layer)
		ep = closest(candidates, costs)
	}

	top := min(epNode.maxLayer, target.maxLayer)
	for layer := top; layer >= 0; layer-- {
		candidates := layerSearch(idx, ep, costs, idx.params.efConstruction, layer)

		selected := idx.selector.Select(idx, candidates, costs, layer)
		target.connections[layer].replace(selected)

		for _, r := range selected {
			b.connect(r, i, layer, costs)

			if costs.from(r) < costs.from(ep) {
				ep = r
			}
		}
	}
}

// connect links i into r's neighbor list at layer and re-prunes r's
// list if it now exceeds Mmax(layer) (spec.md §4.6). This can, per
// spec.md §9's first Open Question, drop the edge just added here if
// r's re-selection doesn't keep i — a known transient-asymmetry
// property of HNSW that this package does not paper over.
func (b *builder[T, D]) connect(r, i, layer int, newCosts *travelingCosts[T, D]) {
	idx := b.idx
	rNode := idx.nodes[r]

	rNode.connections[layer].add(i)

	if rNode.connections[layer].len() <= idx.mmax(layer) {
		return
	}

	rCosts := newTravelingCosts(idx.items, idx.distFn, idx.items[r], r, idx.cache)
	reselected := idx.selector.Select(idx, rNode.connections[layer].snapshot(), rCosts, layer)
	rNode.connections[layer].replace(reselected)
}

// closest returns the id in candidates with the smallest distance to
// the pivot, per the zoom-in step's "argmin over LayerSearch(...)".
func closest[T any, D cmp.Ordered](candidates []int, costs *travelingCosts[T, D]) int {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if costs.from(c) < costs.from(best) {
			best = c
		}
	}

	return best
}
