package graph

// Graph is the capability contract shared by every storage backend.
// V is the vertex identifier type; any comparable type works, and backends
// rely only on equality and map-key usability, never on ordering.
// W is the edge weight type. The unweighted list backend instantiates the
// contract with W = bool, where the weight means "edge present".
//
// Directedness is fixed at construction and never changes. Every edge
// endpoint is always a member of the vertex set: removing a vertex
// atomically removes all edges incident to it.
type Graph[V comparable, W any] interface {
	// Directed reports the orientation fixed at construction:
	// true → (u,v) and (v,u) are independent; false → always mirrored.
	Directed() bool

	// AddVertex inserts v with no incident edges.
	// Returns ErrDuplicateVertex if v is already present.
	AddVertex(v V) error

	// AddVertices inserts every vertex in vs, all-or-nothing: if any member
	// is already present, or appears twice within vs itself, nothing is
	// inserted and ErrDuplicateVertex is returned.
	AddVertices(vs ...V) error

	// RemoveVertex deletes v and every edge incident to it, in both
	// directions. Returns ErrVertexNotFound if v is absent.
	RemoveVertex(v V) error

	// HasVertex reports membership; it never fails.
	HasVertex(v V) bool

	// Vertices returns all vertices in insertion order.
	Vertices() []V

	// VertexCount returns the number of vertices. O(1).
	VertexCount() int

	// EdgeCount returns the number of edges. Mirrored undirected entries
	// count once. O(1).
	EdgeCount() int

	// SetEdgeWeight creates or overwrites the edge u→v with weight w,
	// mirroring to v→u when undirected.
	// Returns ErrVertexNotFound if either endpoint is absent.
	SetEdgeWeight(u, v V, w W) error

	// EdgeWeight returns the stored weight of u→v.
	// Returns ErrVertexNotFound if either endpoint is absent and
	// ErrEdgeNotFound if the edge does not exist.
	EdgeWeight(u, v V) (W, error)

	// RemoveEdge deletes u→v (and its mirror when undirected).
	// Returns ErrVertexNotFound if either endpoint is absent and
	// ErrEdgeNotFound if the edge does not exist.
	RemoveEdge(u, v V) error

	// HasEdge reports whether u→v exists. Unknown endpoints or a missing
	// edge answer false; HasEdge never fails.
	HasEdge(u, v V) bool

	// Children returns the set of vertices reachable from v by one outgoing
	// edge. Returns ErrVertexNotFound if v is absent. In an undirected graph
	// Children and Parents are equivalent and both return the neighbor set.
	Children(v V) ([]V, error)

	// Parents returns the set of vertices with one edge into v.
	// Returns ErrVertexNotFound if v is absent.
	Parents(v V) ([]V, error)
}

// Edge is an endpoint pair consumed by the unweighted batch operations.
type Edge[V comparable] struct {
	U, V V
}

// Compile-time contract checks for every backend.
var (
	_ Graph[string, int]  = (*AdjacencyList[string, int])(nil)
	_ Graph[string, bool] = (*UnweightedAdjacencyList[string])(nil)
	_ Graph[string, int]  = (*AdjacencyMatrix[string, int])(nil)
)
