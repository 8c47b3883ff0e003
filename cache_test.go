package hnsw

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriangularKeyIsCommutative(t *testing.T) {
	assert.Equal(t, triangularKey(3, 7), triangularKey(7, 3))
	assert.Equal(t, triangularKey(5, 5), triangularKey(5, 5))
}

func TestTriangularCacheRoundTrip(t *testing.T) {
	c, err := newTriangularCache[float64](10)
	require.NoError(t, err)

	_, hit := c.tryGet(2, 6)
	assert.False(t, hit)

	c.set(2, 6, 1.5)

	v, hit := c.tryGet(2, 6)
	require.True(t, hit)
	assert.Equal(t, 1.5, v)

	v, hit = c.tryGet(6, 2)
	require.True(t, hit)
	assert.Equal(t, 1.5, v)
}

func TestMapCacheRoundTrip(t *testing.T) {
	c := newMapCache[float64]()

	_, hit := c.tryGet(1, 2)
	assert.False(t, hit)

	c.set(1, 2, 9.0)

	v, hit := c.tryGet(2, 1)
	require.True(t, hit)
	assert.Equal(t, 9.0, v)
}

func TestNewDistanceCacheAutoSelectsByN(t *testing.T) {
	small, err := newDistanceCache[float64](100, CacheFormAuto)
	require.NoError(t, err)
	_, isTriangular := small.(*triangularCache[float64])
	assert.True(t, isTriangular)

	large, err := newDistanceCache[float64](maxTriangularN+1, CacheFormAuto)
	require.NoError(t, err)
	_, isMap := large.(*mapCache[float64])
	assert.True(t, isMap)
}

func TestNewDistanceCacheForcedForm(t *testing.T) {
	c, err := newDistanceCache[float64](100, CacheFormMap)
	require.NoError(t, err)
	_, isMap := c.(*mapCache[float64])
	assert.True(t, isMap)

	c, err = newDistanceCache[float64](100, CacheFormTriangular)
	require.NoError(t, err)
	_, isTriangular := c.(*triangularCache[float64])
	assert.True(t, isTriangular)
}

func TestTriangularSizeOverflowFailsFast(t *testing.T) {
	_, err := triangularSize(-1)
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	_, err = triangularSize(math.MaxInt)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}
