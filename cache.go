package hnsw

import (
	"math"
	"math/bits"

	"github.com/bits-and-blooms/bitset"
)

// CacheForm selects a distanceCache's storage strategy (spec.md §4.1).
type CacheForm int

const (
	// CacheFormAuto picks the triangular-array form for N <= 65535 and
	// falls back to the map form above that, per spec.md §4.1.
	CacheFormAuto CacheForm = iota
	// CacheFormTriangular forces the triangular-array form.
	CacheFormTriangular
	// CacheFormMap forces the map form.
	CacheFormMap
)

// distanceCache maps an unordered pair {i,j} (including i==j) to a
// previously computed distance. The two concrete strategies below must
// yield identical observable behavior (spec.md §4.1).
type distanceCache[D any] interface {
	tryGet(i, j int) (D, bool)
	set(i, j int, v D)
}

// triangularCache is the preferred form for N <= 65535: presence lives
// in a bitset.BitSet — the same library the teacher's searchLayer uses
// directly for its visited set — and values in a flat slice addressed
// by the triangular-number key.
type triangularCache[D any] struct {
	present *bitset.BitSet
	values  []D
}

func triangularSize(n int) (int, error) {
	if n < 0 {
		return 0, ErrCapacityExceeded
	}

	hi, lo := bits.Mul64(uint64(n), uint64(n)+1)
	if hi != 0 || lo/2 > uint64(math.MaxInt) {
		return 0, ErrCapacityExceeded
	}

	return int(lo / 2), nil
}

func newTriangularCache[D any](n int) (*triangularCache[D], error) {
	size, err := triangularSize(n)
	if err != nil {
		return nil, err
	}

	return &triangularCache[D]{
		present: bitset.New(uint(size)),
		values:  make([]D, size),
	}, nil
}

// triangularKey maps the unordered pair {i,j} to
// max(i,j)*(max(i,j)+1)/2 + min(i,j), per spec.md §4.1.
func triangularKey(i, j int) int {
	a, b := i, j
	if a < b {
		a, b = b, a
	}

	return a*(a+1)/2 + b
}

func (c *triangularCache[D]) tryGet(i, j int) (D, bool) {
	key := triangularKey(i, j)
	if !c.present.Test(uint(key)) {
		var zero D
		return zero, false
	}

	return c.values[key], true
}

func (c *triangularCache[D]) set(i, j int, v D) {
	key := triangularKey(i, j)
	c.values[key] = v
	c.present.Set(uint(key))
}

// pairKey is the commutative key used by mapCache: {a,b} == {b,a}.
type pairKey struct{ lo, hi int }

func newPairKey(i, j int) pairKey {
	if i < j {
		return pairKey{lo: i, hi: j}
	}

	return pairKey{lo: j, hi: i}
}

// mapCache is the fallback form, used when N is too large for a dense
// triangular array to be worthwhile.
type mapCache[D any] struct {
	values map[pairKey]D
}

func newMapCache[D any]() *mapCache[D] {
	return &mapCache[D]{values: make(map[pairKey]D)}
}

func (c *mapCache[D]) tryGet(i, j int) (D, bool) {
	v, ok := c.values[newPairKey(i, j)]
	return v, ok
}

func (c *mapCache[D]) set(i, j int, v D) {
	c.values[newPairKey(i, j)] = v
}

// maxTriangularN is the largest N for which CacheFormAuto chooses the
// triangular array over the map (spec.md §4.1).
const maxTriangularN = 65535

func newDistanceCache[D any](n int, form CacheForm) (distanceCache[D], error) {
	switch form {
	case CacheFormMap:
		return newMapCache[D](), nil
	case CacheFormTriangular:
		return newTriangularCache[D](n)
	default:
		if n <= maxTriangularN {
			return newTriangularCache[D](n)
		}
		return newMapCache[D](), nil
	}
}
