package hnsw

import "github.com/kestrelix/hnsw/core"

// mmaxFor returns the hard cap on neighbor-list size at layer for a
// given M (spec.md §3, Invariant 1): layer 0 gets double the budget of
// every layer above it.
func mmaxFor(layer, m int) int {
	if layer == 0 {
		return 2 * m
	}
	return m
}

// neighborList is a bounded, per-layer set of neighbor ids. Order is
// not semantically meaningful (spec.md §3) — callers must not depend
// on iteration order beyond "some permutation of the connected ids".
//
// It is backed by a single contiguous slice pre-sized to its layer's
// Mmax plus the +1 insertion slack (spec.md §9, "Neighbor-list
// storage"), rather than a growable container with its own capacity
// policy.
type neighborList struct {
	ids []int
}

func newNeighborList(capacity int) *neighborList {
	return &neighborList{ids: make([]int, 0, capacity)}
}

func (n *neighborList) add(id int) {
	n.ids = append(n.ids, id)
}

func (n *neighborList) contains(id int) bool {
	for _, x := range n.ids {
		if x == id {
			return true
		}
	}
	return false
}

// replace overwrites the list's contents with ids, reusing the
// backing array when it still has room.
func (n *neighborList) replace(ids []int) {
	n.ids = append(n.ids[:0], ids...)
}

func (n *neighborList) snapshot() []int {
	out := make([]int, len(n.ids))
	copy(out, n.ids)
	return out
}

func (n *neighborList) len() int { return len(n.ids) }

// node is a single vertex of the layered graph (spec.md §3). maxLayer
// is fixed at creation; connections[l] is meaningful only for
// l in [0, maxLayer] (Invariant 4).
type node struct {
	id          core.LocalID
	maxLayer    int
	connections []*neighborList
}

func newNode(id core.LocalID, maxLayer, m int) *node {
	conns := make([]*neighborList, maxLayer+1)
	for l := range conns {
		conns[l] = newNeighborList(mmaxFor(l, m) + 1)
	}

	return &node{id: id, maxLayer: maxLayer, connections: conns}
}
