package hnsw

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kestrelix/hnsw/codec"
)

func TestSerializeRoundTripPreservesGraphShape(t *testing.T) {
	items := make([]float64, 300)
	rng := rand.New(rand.NewSource(11))
	for i := range items {
		items[i] = rng.Float64() * 1000
	}

	orig, err := Build(items, rand.New(rand.NewSource(11)), absDist)
	require.NoError(t, err)

	data, err := orig.Serialize(codec.None{})
	require.NoError(t, err)

	restored, err := Deserialize(items, absDist, data)
	require.NoError(t, err)

	assert.Equal(t, orig.entryPoint, restored.entryPoint)
	require.Equal(t, len(orig.nodes), len(restored.nodes))

	for i := range orig.nodes {
		require.Equal(t, orig.nodes[i].maxLayer, restored.nodes[i].maxLayer, "node %d maxLayer", i)

		for l := 0; l <= orig.nodes[i].maxLayer; l++ {
			assert.ElementsMatch(t, orig.nodes[i].connections[l].ids, restored.nodes[i].connections[l].ids, "node %d layer %d", i, l)
		}
	}
}

func TestSerializeRoundTripDefaultCompressor(t *testing.T) {
	items := make([]float64, 150)
	rng := rand.New(rand.NewSource(12))
	for i := range items {
		items[i] = rng.Float64() * 1000
	}

	orig, err := Build(items, rand.New(rand.NewSource(12)), absDist)
	require.NoError(t, err)

	data, err := orig.Serialize(nil)
	require.NoError(t, err)

	restored, err := Deserialize(items, absDist, data)
	require.NoError(t, err)

	for i := range orig.nodes {
		require.Equal(t, orig.nodes[i].maxLayer, restored.nodes[i].maxLayer)
		for l := 0; l <= orig.nodes[i].maxLayer; l++ {
			assert.ElementsMatch(t, orig.nodes[i].connections[l].ids, restored.nodes[i].connections[l].ids)
		}
	}
}

func TestSerializeRoundTripLZ4(t *testing.T) {
	items := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	orig, err := Build(items, rand.New(rand.NewSource(13)), absDist, WithM(2))
	require.NoError(t, err)

	data, err := orig.Serialize(codec.LZ4{})
	require.NoError(t, err)

	restored, err := Deserialize(items, absDist, data, WithM(2))
	require.NoError(t, err)

	assert.Equal(t, orig.entryPoint, restored.entryPoint)
}

func TestSerializeEmptyIndex(t *testing.T) {
	orig, err := Build[float64](nil, rand.New(rand.NewSource(1)), absDist)
	require.NoError(t, err)

	data, err := orig.Serialize(codec.None{})
	require.NoError(t, err)

	restored, err := Deserialize[float64](nil, absDist, data)
	require.NoError(t, err)
	assert.Empty(t, restored.nodes)
}

func TestDeserializeUnknownCompressor(t *testing.T) {
	items := []float64{1, 2, 3}

	orig, err := Build(items, rand.New(rand.NewSource(1)), absDist)
	require.NoError(t, err)

	data, err := orig.Serialize(codec.None{})
	require.NoError(t, err)

	// Corrupt the compressor name header (first 4 length bytes + "none").
	corrupted := append([]byte(nil), data...)
	copy(corrupted[4:8], []byte("bogu"))

	_, err = Deserialize(items, absDist, corrupted)
	assert.Error(t, err)
}
