package hnsw

import (
	"cmp"
	"sort"
)

// NeighborSelector chooses which of a candidate set become a node's
// neighbors at one layer (spec.md §4.4). The two implementations below
// are a closed set realized as a small interface rather than a class
// hierarchy, per spec.md §9 ("a tagged variant or a small trait, not
// inheritance").
type NeighborSelector[T any, D cmp.Ordered] interface {
	// Select returns at most mmax(layer) ids from candidates, the
	// members of the new connection set R.
	Select(g *Index[T, D], candidates []int, costs *travelingCosts[T, D], layer int) []int
}

// simpleSelector implements Algorithm 3: the M(layer) candidates
// closest to the pivot.
type simpleSelector[T any, D cmp.Ordered] struct{}

func (simpleSelector[T, D]) Select(g *Index[T, D], candidates []int, costs *travelingCosts[T, D], layer int) []int {
	ordered := sortByDistanceThenID(candidates, costs)

	m := g.mmax(layer)
	if len(ordered) > m {
		ordered = ordered[:m]
	}

	return ordered
}

// heuristicSelector implements Algorithm 4: scan candidates in
// increasing distance to the pivot and accept e into R only if e is
// closer to the pivot than to any neighbor already in R.
type heuristicSelector[T any, D cmp.Ordered] struct {
	expandBestSelection   bool
	keepPrunedConnections bool
}

func (h heuristicSelector[T, D]) Select(g *Index[T, D], candidates []int, costs *travelingCosts[T, D], layer int) []int {
	pool := candidates
	if h.expandBestSelection {
		pool = expandCandidates(g, candidates, layer)
	}

	ordered := sortByDistanceThenID(pool, costs)

	m := g.mmax(layer)
	result := make([]int, 0, m)

	var pruned []int

	for _, e := range ordered {
		if len(result) >= m {
			break
		}

		accepted := true

		for _, r := range result {
			// e is rejected unless it's strictly closer to the pivot
			// than to the already-chosen neighbor r.
			if g.distanceBetween(e, r) <= costs.from(e) {
				accepted = false
				break
			}
		}

		if accepted {
			result = append(result, e)
		} else if h.keepPrunedConnections {
			pruned = append(pruned, e)
		}
	}

	for len(result) < m && len(pruned) > 0 {
		result = append(result, pruned[0])
		pruned = pruned[1:]
	}

	return result
}

// sortByDistanceThenID returns ids sorted by ascending distance to the
// comparator's pivot, breaking ties by ascending id — the
// determinism rule spec.md §4.4 requires of the heuristic selector and
// that this package applies uniformly to the simple selector too.
func sortByDistanceThenID[T any, D cmp.Ordered](ids []int, costs *travelingCosts[T, D]) []int {
	out := make([]int, len(ids))
	copy(out, ids)

	sort.Slice(out, func(i, j int) bool {
		di, dj := costs.from(out[i]), costs.from(out[j])
		if di == dj {
			return out[i] < out[j]
		}
		return di < dj
	})

	return out
}

// expandCandidates augments candidates with the deduplicated union of
// each candidate's layer neighbors, per spec.md §4.4's
// expandBestSelection flag.
func expandCandidates[T any, D cmp.Ordered](g *Index[T, D], candidates []int, layer int) []int {
	seen := make(map[int]bool, len(candidates))
	out := make([]int, 0, len(candidates))

	add := func(id int) {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}

	for _, c := range candidates {
		add(c)

		if layer <= g.nodes[c].maxLayer {
			for _, n := range g.nodes[c].connections[layer].ids {
				add(n)
			}
		}
	}

	return out
}
