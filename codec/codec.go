// Package codec compresses the byte frame produced by an index's
// Serialize method. It has nothing to do with the graph format itself
// (that lives alongside the index type) — it only wraps the resulting
// bytes, the same separation of concerns vecgo's segment compression
// keeps between "what the bytes mean" and "how they're packed".
package codec

import (
	"fmt"
)

// Compressor compresses and decompresses an opaque byte frame.
// Implementations must be safe for concurrent use.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
	Name() string
}

// ByName returns a built-in Compressor by its stable name. Serialized
// frames store this name in their header so Deserialize doesn't need
// to be told which compressor produced them.
func ByName(name string) (Compressor, bool) {
	switch name {
	case "none":
		return None{}, true
	case "zstd":
		return Zstd{}, true
	case "lz4":
		return LZ4{}, true
	default:
		return nil, false
	}
}

// None is the identity Compressor, useful for tests that want to
// inspect the raw adjacency frame.
type None struct{}

func (None) Compress(data []byte) ([]byte, error)   { return data, nil }
func (None) Decompress(data []byte) ([]byte, error) { return data, nil }
func (None) Name() string                           { return "none" }

// ErrUnknownCompressor builds the error a caller should return when a
// frame names a compressor this build doesn't recognize (e.g. written
// by a newer version of this package).
func ErrUnknownCompressor(name string) error {
	return fmt.Errorf("codec: unknown compressor %q", name)
}
