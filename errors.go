package hnsw

import "errors"

// Sentinel and wrapped errors surfaced at the package boundary
// (spec.md §7). None of them are swallowed internally and the package
// never retries — a failure here is deterministic given its inputs.
var (
	// ErrCapacityExceeded is returned when the triangular distance
	// cache cannot address N*(N+1)/2 entries without overflowing int.
	ErrCapacityExceeded = errors.New("hnsw: distance cache capacity exceeded")

	// ErrInvalidParameters is the sentinel wrapped by Params.validate
	// when M, efConstruction, or levelLambda is out of range, and by KNN
	// when k is out of range.
	ErrInvalidParameters = errors.New("hnsw: invalid parameters")

	// ErrNotBuilt is returned by KNN when called on an Index that was
	// never produced by Build or Deserialize (e.g. a zero-value Index
	// used directly).
	ErrNotBuilt = errors.New("hnsw: index not built")
)
