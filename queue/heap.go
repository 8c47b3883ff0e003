// Package queue provides a binary heap over arbitrary ids, ordered by
// an externally supplied comparator rather than any ordering intrinsic
// to the id type itself.
package queue

import "container/heap"

// Less reports whether the element with id a should sort before the
// element with id b. A Heap's shape is entirely determined by Less;
// the same id type can be made to behave as a min-heap or a max-heap
// by supplying the opposite comparator.
type Less[ID any] func(a, b ID) bool

// Heap is a binary heap over an arbitrary id type. It implements
// container/heap.Interface internally; callers use PushID/PopID/Peek
// rather than the package-level heap functions directly.
//
// Mutating whatever state Less closes over (e.g. a search pivot) while
// any id is in the heap is undefined behavior — the heap has no way to
// detect that its ordering shifted out from under it.
type Heap[ID any] struct {
	items []ID
	less  Less[ID]
}

// New creates an empty Heap ordered by less.
func New[ID any](less Less[ID]) *Heap[ID] {
	return &Heap[ID]{less: less}
}

// Len implements heap.Interface.
func (h *Heap[ID]) Len() int { return len(h.items) }

// Less implements heap.Interface.
func (h *Heap[ID]) Less(i, j int) bool { return h.less(h.items[i], h.items[j]) }

// Swap implements heap.Interface.
func (h *Heap[ID]) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

// Push implements heap.Interface. Use PushID, not this method, to add
// elements — it exists only to satisfy container/heap.Interface.
func (h *Heap[ID]) Push(x any) {
	h.items = append(h.items, x.(ID))
}

// Pop implements heap.Interface. Use PopID, not this method.
func (h *Heap[ID]) Pop() any {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]
	return item
}

// PushID pushes id onto the heap, restoring the heap invariant.
func (h *Heap[ID]) PushID(id ID) {
	heap.Push(h, id)
}

// PopID removes and returns the root element.
func (h *Heap[ID]) PopID() ID {
	return heap.Pop(h).(ID)
}

// Peek returns the root element without removing it.
func (h *Heap[ID]) Peek() ID {
	return h.items[0]
}

// Items returns the heap's contents as an unordered slice — used by
// callers that want the heap's elements as a set, not a priority
// order (e.g. materializing a SEARCH-LAYER result).
func (h *Heap[ID]) Items() []ID {
	out := make([]ID, len(h.items))
	copy(out, h.items)
	return out
}
