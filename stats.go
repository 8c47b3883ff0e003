package hnsw

// LevelStats summarizes one layer of a built Index.
type LevelStats struct {
	Layer              int
	Nodes              int
	Connections        int
	AverageConnections float64
}

// Stats summarizes a built Index. Unlike the teacher's Stats method,
// which prints directly to stdout, this returns a value — formatting
// is the caller's concern, not the library's.
type Stats struct {
	ItemCount  int
	EntryPoint int
	TopLayer   int
	Levels     []LevelStats
}

// Stats computes a snapshot of idx's current shape.
func (idx *Index[T, D]) Stats() Stats {
	if len(idx.nodes) == 0 {
		return Stats{}
	}

	topLayer := idx.nodes[idx.entryPoint].maxLayer
	levels := make([]LevelStats, topLayer+1)

	for l := range levels {
		levels[l].Layer = l
	}

	for _, n := range idx.nodes {
		for l := 0; l <= n.maxLayer; l++ {
			levels[l].Nodes++
			levels[l].Connections += n.connections[l].len()
		}
	}

	for l := range levels {
		if levels[l].Nodes > 0 {
			levels[l].AverageConnections = float64(levels[l].Connections) / float64(levels[l].Nodes)
		}
	}

	return Stats{
		ItemCount:  len(idx.items),
		EntryPoint: idx.entryPoint,
		TopLayer:   topLayer,
		Levels:     levels,
	}
}
