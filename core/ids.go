// Package core holds the id type shared by the graph, the heap, and
// the public index surface, so none of them need to agree on it
// independently.
package core

// LocalID is the dense, zero-based identifier assigned to an item in
// insertion order. It is stable for the life of an index and never
// reused.
type LocalID = int

// NoID marks the absence of a node reference; no item is ever assigned
// it. An Index built over zero items keeps entry point 0, not NoID.
const NoID LocalID = -1
