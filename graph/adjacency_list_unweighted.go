package graph

// UnweightedAdjacencyList is the adjacency-list backend for graphs whose
// edges carry no payload: a mapping from vertex to a set of neighbors.
// Edge mutation and HasEdge drop from O(deg) to O(1) average, and the
// backend gains batch AddEdge/AddEdges helpers.
//
// It implements Graph[V, bool], where the "weight" means edge presence:
// SetEdgeWeight(u, v, true) creates the edge, SetEdgeWeight(u, v, false)
// removes it if present.
type UnweightedAdjacencyList[V comparable] struct {
	directed bool
	vertices *vertexSet[V]
	adj      map[V]map[V]struct{}
	edges    int
}

// NewUnweightedAdjacencyList creates an unweighted adjacency-list graph
// with the given orientation and initial vertices. Duplicate initial
// vertices collapse (set semantics).
func NewUnweightedAdjacencyList[V comparable](directed bool, vertices ...V) *UnweightedAdjacencyList[V] {
	g := &UnweightedAdjacencyList[V]{
		directed: directed,
		vertices: newVertexSet[V](vertices...),
		adj:      make(map[V]map[V]struct{}, len(vertices)),
	}
	for _, v := range g.vertices.order {
		g.adj[v] = make(map[V]struct{})
	}

	return g
}

// Directed reports the orientation fixed at construction.
func (g *UnweightedAdjacencyList[V]) Directed() bool { return g.directed }

// AddVertex inserts v with an empty neighbor set.
// Returns ErrDuplicateVertex if v is already present. O(1).
func (g *UnweightedAdjacencyList[V]) AddVertex(v V) error {
	if err := g.vertices.add(v); err != nil {
		return err
	}
	g.adj[v] = make(map[V]struct{})

	return nil
}

// AddVertices inserts every vertex in vs, all-or-nothing: a member already
// present, or repeated within vs, fails the whole batch with
// ErrDuplicateVertex and nothing is inserted.
func (g *UnweightedAdjacencyList[V]) AddVertices(vs ...V) error {
	if err := g.vertices.addAll(vs); err != nil {
		return err
	}
	for _, v := range vs {
		g.adj[v] = make(map[V]struct{})
	}

	return nil
}

// RemoveVertex deletes v, its neighbor set, and v's membership in every
// remaining neighbor set. Returns ErrVertexNotFound if v is absent.
// Complexity: O(|V|).
func (g *UnweightedAdjacencyList[V]) RemoveVertex(v V) error {
	if err := g.vertices.remove(v); err != nil {
		return err
	}

	out := len(g.adj[v])
	delete(g.adj, v)

	removed := 0
	for _, nbrs := range g.adj {
		if _, ok := nbrs[v]; ok {
			delete(nbrs, v)
			removed++
		}
	}

	if g.directed {
		g.edges -= out + removed
	} else {
		g.edges -= removed + (out - removed) // non-loop mirrors + the loop, if any
	}

	return nil
}

// HasVertex reports membership; it never fails. O(1).
func (g *UnweightedAdjacencyList[V]) HasVertex(v V) bool { return g.vertices.has(v) }

// Vertices returns all vertices in insertion order.
func (g *UnweightedAdjacencyList[V]) Vertices() []V { return g.vertices.list() }

// VertexCount returns the number of vertices. O(1).
func (g *UnweightedAdjacencyList[V]) VertexCount() int { return g.vertices.size() }

// EdgeCount returns the number of edges; mirrored entries count once. O(1).
func (g *UnweightedAdjacencyList[V]) EdgeCount() int { return g.edges }

// SetEdgeWeight treats the weight as edge presence: true creates u→v
// (idempotently), false removes it if present — removal of a non-existent
// edge is swallowed. Mirrors to v→u when undirected.
// Returns ErrVertexNotFound if either endpoint is absent. O(1) average.
func (g *UnweightedAdjacencyList[V]) SetEdgeWeight(u, v V, present bool) error {
	if !g.vertices.has(u) || !g.vertices.has(v) {
		return ErrVertexNotFound
	}

	if present {
		g.link(u, v)

		return nil
	}
	if _, ok := g.adj[u][v]; ok {
		delete(g.adj[u], v)
		if !g.directed {
			delete(g.adj[v], u)
		}
		g.edges--
	}

	return nil
}

// link inserts u→v (and the mirror when undirected), counting new edges.
func (g *UnweightedAdjacencyList[V]) link(u, v V) {
	if _, ok := g.adj[u][v]; ok {
		return
	}
	g.adj[u][v] = struct{}{}
	if !g.directed {
		g.adj[v][u] = struct{}{}
	}
	g.edges++
}

// EdgeWeight reports edge presence as the boolean weight. Unlike HasEdge it
// is strict about endpoints: ErrVertexNotFound when either is absent.
// A missing edge is a valid false answer, not an error. O(1) average.
func (g *UnweightedAdjacencyList[V]) EdgeWeight(u, v V) (bool, error) {
	if !g.vertices.has(u) || !g.vertices.has(v) {
		return false, ErrVertexNotFound
	}
	_, ok := g.adj[u][v]

	return ok, nil
}

// AddEdge creates the edge u→v (mirrored when undirected).
// Returns ErrVertexNotFound if either endpoint is absent and
// ErrEdgeAlreadyExists if the edge is already present. O(1) average.
func (g *UnweightedAdjacencyList[V]) AddEdge(u, v V) error {
	if !g.vertices.has(u) || !g.vertices.has(v) {
		return ErrVertexNotFound
	}
	if _, ok := g.adj[u][v]; ok {
		return ErrEdgeAlreadyExists
	}
	g.link(u, v)

	return nil
}

// AddEdges creates every edge in the batch, all-or-nothing: on the first
// failure every edge added earlier in this same call is rolled back before
// the error is surfaced, leaving the graph untouched.
func (g *UnweightedAdjacencyList[V]) AddEdges(edges ...Edge[V]) error {
	added := make([]Edge[V], 0, len(edges))
	for _, e := range edges {
		if err := g.AddEdge(e.U, e.V); err != nil {
			for i := len(added) - 1; i >= 0; i-- {
				// Rollback of an edge this call created cannot fail.
				_ = g.RemoveEdge(added[i].U, added[i].V)
			}

			return err
		}
		added = append(added, e)
	}

	return nil
}

// RemoveEdge deletes u→v and its mirror when undirected.
// Returns ErrVertexNotFound if either endpoint is absent, ErrEdgeNotFound if
// the edge does not exist. O(1) average.
func (g *UnweightedAdjacencyList[V]) RemoveEdge(u, v V) error {
	if !g.vertices.has(u) || !g.vertices.has(v) {
		return ErrVertexNotFound
	}
	if _, ok := g.adj[u][v]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.adj[u], v)
	if !g.directed {
		delete(g.adj[v], u)
	}
	g.edges--

	return nil
}

// HasEdge reports whether u→v exists. Unknown endpoints answer false;
// HasEdge never fails. O(1) average.
func (g *UnweightedAdjacencyList[V]) HasEdge(u, v V) bool {
	if !g.vertices.has(u) || !g.vertices.has(v) {
		return false
	}
	_, ok := g.adj[u][v]

	return ok
}

// Children returns the neighbor set reachable from v by one outgoing edge.
// Order is unspecified. Returns ErrVertexNotFound if v is absent.
func (g *UnweightedAdjacencyList[V]) Children(v V) ([]V, error) {
	if !g.vertices.has(v) {
		return nil, ErrVertexNotFound
	}
	nbrs := g.adj[v]
	out := make([]V, 0, len(nbrs))
	for u := range nbrs {
		out = append(out, u)
	}

	return out, nil
}

// Parents returns the vertices with one edge into v, in vertex insertion
// order. A self-loop makes v its own parent. Returns ErrVertexNotFound if v
// is absent. Complexity: O(|V|).
func (g *UnweightedAdjacencyList[V]) Parents(v V) ([]V, error) {
	if !g.vertices.has(v) {
		return nil, ErrVertexNotFound
	}
	out := make([]V, 0)
	for _, u := range g.vertices.order {
		if _, ok := g.adj[u][v]; ok {
			out = append(out, u)
		}
	}

	return out, nil
}
