package graph

import "errors"

// Sentinel errors for graph storage operations. Every backend returns these
// same sentinels; match them with errors.Is. None of them is fatal — the
// graph's observable state is unchanged whenever an operation fails.
var (
	// ErrDuplicateVertex indicates insertion of a vertex (or a batch member)
	// already present in the graph.
	ErrDuplicateVertex = errors.New("graph: vertex already in graph")

	// ErrVertexNotFound indicates an operation referenced a vertex absent
	// from the graph where its presence is required.
	ErrVertexNotFound = errors.New("graph: vertex not in graph")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("graph: edge does not exist")

	// ErrEdgeAlreadyExists indicates AddEdge targeting an edge already present.
	ErrEdgeAlreadyExists = errors.New("graph: edge already exists")
)
