package hnsw

import (
	"bytes"
	"cmp"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/kestrelix/hnsw/codec"
)

// Serialize encodes idx's graph shape — the entry point, each node's
// max layer, and its per-layer adjacency, visited in BFS order from
// the entry point — then compresses the result with compressor
// (codec.Zstd{} if nil).
//
// Items are not persisted: Deserialize needs the same ordered items
// supplied again (spec.md §6). The reference HNSW source this package
// is modeled on serializes with a platform-specific binary formatter
// and has a deserialize loop that never executes for its intended
// range (spec.md §9); this format is a plain length-prefixed,
// layer-major adjacency list instead, with no such dead loop.
func (idx *Index[T, D]) Serialize(compressor codec.Compressor) ([]byte, error) {
	if compressor == nil {
		compressor = codec.Zstd{}
	}

	frame := idx.encodeFrame()

	compressed, err := compressor.Compress(frame)
	if err != nil {
		return nil, fmt.Errorf("hnsw: serialize: %w", err)
	}

	var out bytes.Buffer
	writeString(&out, compressor.Name())
	out.Write(compressed)

	return out.Bytes(), nil
}

// Deserialize reconstructs an Index from data produced by Serialize.
// items must be the same ordered sequence (length and meaning) used to
// build the original Index; oracle and opts configure the
// reconstructed Index exactly as Build's arguments would — the
// distance function and parameters are not part of the serialized
// frame, only the graph shape is.
func Deserialize[T any, D cmp.Ordered](items []T, oracle DistanceFunc[T, D], data []byte, opts ...Option) (*Index[T, D], error) {
	p := defaultParams()
	for _, opt := range opts {
		opt(&p)
	}

	if err := p.validate(); err != nil {
		return nil, err
	}

	r := bytes.NewReader(data)

	name, err := readString(r)
	if err != nil {
		return nil, fmt.Errorf("hnsw: deserialize: %w", err)
	}

	compressor, ok := codec.ByName(name)
	if !ok {
		return nil, codec.ErrUnknownCompressor(name)
	}

	rest := make([]byte, r.Len())
	if _, err := io.ReadFull(r, rest); err != nil {
		return nil, fmt.Errorf("hnsw: deserialize: %w", err)
	}

	frame, err := compressor.Decompress(rest)
	if err != nil {
		return nil, fmt.Errorf("hnsw: deserialize: %w", err)
	}

	idx := &Index[T, D]{
		items:  items,
		distFn: oracle,
		params: p,
		logger: p.logger,
	}
	idx.selector = newSelector[T, D](p)

	if err := idx.decodeFrame(frame); err != nil {
		return nil, fmt.Errorf("hnsw: deserialize: %w", err)
	}

	return idx, nil
}

func (idx *Index[T, D]) encodeFrame() []byte {
	var buf bytes.Buffer

	if len(idx.items) == 0 {
		writeUint32(&buf, 0)
		return buf.Bytes()
	}

	order := bfsOrderFromEntry(idx)

	writeUint32(&buf, uint32(len(idx.items)))
	writeUint32(&buf, uint32(idx.entryPoint))

	for _, id := range order {
		n := idx.nodes[id]

		writeUint32(&buf, uint32(n.id))
		writeUint32(&buf, uint32(n.maxLayer))

		for l := 0; l <= n.maxLayer; l++ {
			neighbors := n.connections[l].ids

			writeUint32(&buf, uint32(len(neighbors)))
			for _, nb := range neighbors {
				writeUint32(&buf, uint32(nb))
			}
		}
	}

	return buf.Bytes()
}

func (idx *Index[T, D]) decodeFrame(frame []byte) error {
	r := bytes.NewReader(frame)

	nodeCount, err := readUint32(r)
	if err != nil {
		return err
	}

	if nodeCount == 0 {
		idx.nodes = nil
		idx.entryPoint = 0
		return nil
	}

	entryPoint, err := readUint32(r)
	if err != nil {
		return err
	}

	nodes := make([]*node, nodeCount)

	for i := uint32(0); i < nodeCount; i++ {
		id, err := readUint32(r)
		if err != nil {
			return err
		}

		maxLayer, err := readUint32(r)
		if err != nil {
			return err
		}

		n := newNode(int(id), int(maxLayer), idx.params.m)

		for l := 0; l <= int(maxLayer); l++ {
			count, err := readUint32(r)
			if err != nil {
				return err
			}

			neighbors := make([]int, count)
			for k := range neighbors {
				v, err := readUint32(r)
				if err != nil {
					return err
				}
				neighbors[k] = int(v)
			}

			n.connections[l].replace(neighbors)
		}

		if int(id) >= len(nodes) {
			return fmt.Errorf("hnsw: decode: node id %d out of range for count %d", id, nodeCount)
		}

		nodes[id] = n
	}

	idx.nodes = nodes
	idx.entryPoint = int(entryPoint)

	return nil
}

// bfsOrderFromEntry visits every node reachable from the entry point
// via layer-0 adjacency, which spans the whole graph per spec.md §8's
// connectivity property. Any node the traversal somehow misses (it
// shouldn't, given that property) is appended afterward so Serialize
// never silently drops a node.
func bfsOrderFromEntry[T any, D cmp.Ordered](idx *Index[T, D]) []int {
	n := len(idx.nodes)
	visited := make([]bool, n)
	order := make([]int, 0, n)

	frontier := []int{idx.entryPoint}
	visited[idx.entryPoint] = true

	for len(frontier) > 0 {
		cur := frontier[0]
		frontier = frontier[1:]
		order = append(order, cur)

		for _, nb := range idx.nodes[cur].connections[0].ids {
			if !visited[nb] {
				visited[nb] = true
				frontier = append(frontier, nb)
			}
		}
	}

	for i := 0; i < n; i++ {
		if !visited[i] {
			order = append(order, i)
		}
	}

	return order
}

func writeUint32(buf *bytes.Buffer, v uint32) {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	buf.Write(tmp[:])
}

func readUint32(r *bytes.Reader) (uint32, error) {
	var tmp [4]byte
	if _, err := io.ReadFull(r, tmp[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(tmp[:]), nil
}

func writeString(buf *bytes.Buffer, s string) {
	writeUint32(buf, uint32(len(s)))
	buf.WriteString(s)
}

func readString(r *bytes.Reader) (string, error) {
	n, err := readUint32(r)
	if err != nil {
		return "", err
	}

	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return "", err
	}

	return string(b), nil
}
