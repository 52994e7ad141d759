// Package graph provides generic in-memory graph storage with two
// interchangeable backends behind a single capability contract.
//
// What:
//
//   - Graph[V, W] is the contract: vertex and edge mutation plus structural
//     queries, implemented by every backend.
//   - AdjacencyList[V, W] stores a per-vertex ordered sequence of
//     (neighbor, weight) entries; cheap mutation, linear edge lookup.
//   - UnweightedAdjacencyList[V] replaces the sequence with a neighbor set
//     when edges carry no payload: O(1) average edge checks plus batch
//     AddEdge/AddEdges helpers with all-or-nothing semantics.
//   - AdjacencyMatrix[V, W] stores a dense |V|×|V| cell matrix indexing into
//     an owned weight arena: O(1) edge lookup, O(|V|) neighbor enumeration.
//
// Why:
//
//   - Algorithms written against Graph[V, W] stay representation-agnostic;
//     callers pick list vs. matrix per workload density at construction time.
//   - Vertices are any comparable type (ints, strings, struct keys) and
//     weights any type at all; the unweighted list is an explicit variant,
//     not a bool-weight trick.
//
// Complexity (n = |V|, d = deg(v), m = |E|):
//
//   - List: SetEdgeWeight/HasEdge/RemoveEdge O(d); Parents O(m);
//     RemoveVertex O(m).
//   - Unweighted list: edge mutation and HasEdge O(1) average;
//     Parents O(m); RemoveVertex O(n + m).
//   - Matrix: SetEdgeWeight/HasEdge/RemoveEdge O(1); Children/Parents O(n);
//     AddVertex amortized O(n); RemoveVertex O(n²) (row+column compaction).
//
// Errors:
//
//   - ErrDuplicateVertex: insertion of a vertex already present.
//   - ErrVertexNotFound: operation referenced a vertex absent from the graph.
//   - ErrEdgeNotFound: RemoveEdge or EdgeWeight on a non-existent edge.
//   - ErrEdgeAlreadyExists: unweighted AddEdge on an existing edge.
//
// All failures are recoverable sentinels, matched with errors.Is. Queries
// that can legally answer "no" (HasVertex, HasEdge) never fail.
//
// Concurrency: none. A graph instance is exclusively owned by its caller and
// carries no internal locking; impose external synchronization if you must
// share one across goroutines.
package graph
