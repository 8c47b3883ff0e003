package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// distances mirrors the fixture vecgo's own priority-queue tests used:
// an arbitrary, non-sorted set of float32 priorities keyed by index.
var distances = []float32{0.4, 9, 0.001, 0.0534, 0.234, 2.03, 2.042, 2.532, 1.0009, 0.329, 0.193, 0.999, 0.020391, 2.0991, 1.203, 10.03, 1.039, 1.0008, 5.029, 0.789}

func byDistanceAsc(a, b int) bool  { return distances[a] < distances[b] }
func byDistanceDesc(a, b int) bool { return distances[a] > distances[b] }

func TestHeapMaxOrder(t *testing.T) {
	h := New[int](byDistanceDesc)

	for i := range distances {
		h.PushID(i)
	}

	assert.Equal(t, len(distances), h.Len())
	assert.Equal(t, float32(10.03), distances[h.Peek()])

	for h.Len() > 10 {
		h.PopID()
	}
	assert.Equal(t, 10, h.Len())
	assert.Equal(t, float32(1.0008), distances[h.Peek()])

	for h.Len() > 1 {
		h.PopID()
	}
	assert.Equal(t, float32(0.001), distances[h.Peek()])

	for h.Len() > 0 {
		h.PopID()
	}
	assert.Equal(t, 0, h.Len())
}

func TestHeapMinOrder(t *testing.T) {
	h := New[int](byDistanceAsc)

	for i := range distances {
		h.PushID(i)
	}

	assert.Equal(t, float32(0.001), distances[h.Peek()])

	for h.Len() > 10 {
		h.PopID()
	}
	assert.Equal(t, float32(1.0009), distances[h.Peek()])

	for h.Len() > 1 {
		h.PopID()
	}
	assert.Equal(t, float32(10.03), distances[h.Peek()])
}

func TestItemsIsUnorderedSnapshot(t *testing.T) {
	h := New[int](byDistanceAsc)
	for i := 0; i < 5; i++ {
		h.PushID(i)
	}

	items := h.Items()
	assert.Len(t, items, 5)

	// Mutating the returned slice must not affect the heap.
	items[0] = -1
	assert.NotEqual(t, -1, h.Peek())
}
