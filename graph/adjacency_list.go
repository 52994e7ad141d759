package graph

// halfEdge is one (neighbor, weight) entry in a vertex's neighbor sequence.
type halfEdge[V comparable, W any] struct {
	to     V
	weight W
}

// AdjacencyList is the weighted adjacency-list backend: a mapping from
// vertex to an ordered sequence of (neighbor, weight) entries. Locating a
// specific neighbor is linear in that vertex's degree — a deliberate
// simplicity trade-off that suits sparse graphs. Parents is the expensive
// query: with no reverse index it scans every sequence, O(|E|).
type AdjacencyList[V comparable, W any] struct {
	directed bool
	vertices *vertexSet[V]
	adj      map[V][]halfEdge[V, W]
	edges    int
}

// NewAdjacencyList creates a weighted adjacency-list graph with the given
// orientation and initial vertices. Duplicate initial vertices collapse
// (set semantics).
func NewAdjacencyList[V comparable, W any](directed bool, vertices ...V) *AdjacencyList[V, W] {
	g := &AdjacencyList[V, W]{
		directed: directed,
		vertices: newVertexSet[V](vertices...),
		adj:      make(map[V][]halfEdge[V, W], len(vertices)),
	}
	for _, v := range g.vertices.order {
		g.adj[v] = nil
	}

	return g
}

// Directed reports the orientation fixed at construction.
func (g *AdjacencyList[V, W]) Directed() bool { return g.directed }

// AddVertex inserts v with an empty neighbor sequence.
// Returns ErrDuplicateVertex if v is already present. O(1).
func (g *AdjacencyList[V, W]) AddVertex(v V) error {
	if err := g.vertices.add(v); err != nil {
		return err
	}
	g.adj[v] = nil

	return nil
}

// AddVertices inserts every vertex in vs, all-or-nothing: a member already
// present, or repeated within vs, fails the whole batch with
// ErrDuplicateVertex and nothing is inserted.
func (g *AdjacencyList[V, W]) AddVertices(vs ...V) error {
	if err := g.vertices.addAll(vs); err != nil {
		return err
	}
	for _, v := range vs {
		g.adj[v] = nil
	}

	return nil
}

// RemoveVertex deletes v, its neighbor sequence, and every entry pointing at
// v in the remaining sequences. Returns ErrVertexNotFound if v is absent.
// Complexity: O(|E|) — every other sequence is scanned once.
func (g *AdjacencyList[V, W]) RemoveVertex(v V) error {
	if err := g.vertices.remove(v); err != nil {
		return err
	}

	// Outgoing entries. Undirected mirrors are stripped with the incoming
	// scan below, so only directed out-edges are counted here.
	out := len(g.adj[v])
	delete(g.adj, v)

	// Incoming entries: strip the single reference to v from each sequence.
	removed := 0
	for u, seq := range g.adj {
		for i, he := range seq {
			if he.to == v {
				g.adj[u] = append(seq[:i], seq[i+1:]...)
				removed++
				break
			}
		}
	}

	if g.directed {
		g.edges -= out + removed
	} else {
		// Each non-loop edge had two mirrored entries; the loop (if any) had
		// one, living in the deleted sequence itself.
		loops := out - removed
		g.edges -= removed + loops
	}

	return nil
}

// HasVertex reports membership; it never fails. O(1).
func (g *AdjacencyList[V, W]) HasVertex(v V) bool { return g.vertices.has(v) }

// Vertices returns all vertices in insertion order.
func (g *AdjacencyList[V, W]) Vertices() []V { return g.vertices.list() }

// VertexCount returns the number of vertices. O(1).
func (g *AdjacencyList[V, W]) VertexCount() int { return g.vertices.size() }

// EdgeCount returns the number of edges; mirrored entries count once. O(1).
func (g *AdjacencyList[V, W]) EdgeCount() int { return g.edges }

// upsert replaces the (to==v) entry in u's sequence with (v, w), appending
// it at the tail, and reports whether the entry already existed.
func (g *AdjacencyList[V, W]) upsert(u, v V, w W) bool {
	seq := g.adj[u]
	existed := false
	for i, he := range seq {
		if he.to == v {
			seq = append(seq[:i], seq[i+1:]...)
			existed = true
			break
		}
	}
	g.adj[u] = append(seq, halfEdge[V, W]{to: v, weight: w})

	return existed
}

// SetEdgeWeight creates or overwrites the edge u→v with weight w, mirroring
// to v→u when undirected. An overwritten entry moves to the tail of the
// sequence. Returns ErrVertexNotFound if either endpoint is absent.
// Complexity: O(deg(u)) (+O(deg(v)) undirected).
func (g *AdjacencyList[V, W]) SetEdgeWeight(u, v V, w W) error {
	if !g.vertices.has(u) || !g.vertices.has(v) {
		return ErrVertexNotFound
	}

	existed := g.upsert(u, v, w)
	if !g.directed && u != v {
		g.upsert(v, u, w)
	}
	if !existed {
		g.edges++
	}

	return nil
}

// EdgeWeight returns the stored weight of u→v. Returns ErrVertexNotFound if
// either endpoint is absent, ErrEdgeNotFound if the edge does not exist.
// Complexity: O(deg(u)).
func (g *AdjacencyList[V, W]) EdgeWeight(u, v V) (W, error) {
	var zero W
	if !g.vertices.has(u) || !g.vertices.has(v) {
		return zero, ErrVertexNotFound
	}
	for _, he := range g.adj[u] {
		if he.to == v {
			return he.weight, nil
		}
	}

	return zero, ErrEdgeNotFound
}

// RemoveEdge deletes u→v and its mirror when undirected.
// Returns ErrVertexNotFound if either endpoint is absent, ErrEdgeNotFound if
// the edge does not exist. Complexity: O(deg(u)) (+O(deg(v)) undirected).
func (g *AdjacencyList[V, W]) RemoveEdge(u, v V) error {
	if !g.vertices.has(u) || !g.vertices.has(v) {
		return ErrVertexNotFound
	}
	if !g.strip(u, v) {
		return ErrEdgeNotFound
	}
	if !g.directed && u != v {
		g.strip(v, u)
	}
	g.edges--

	return nil
}

// strip removes the (to==v) entry from u's sequence, reporting success.
func (g *AdjacencyList[V, W]) strip(u, v V) bool {
	for i, he := range g.adj[u] {
		if he.to == v {
			g.adj[u] = append(g.adj[u][:i], g.adj[u][i+1:]...)

			return true
		}
	}

	return false
}

// HasEdge reports whether u→v exists. Unknown endpoints answer false;
// HasEdge never fails. Complexity: O(deg(u)).
func (g *AdjacencyList[V, W]) HasEdge(u, v V) bool {
	if !g.vertices.has(u) || !g.vertices.has(v) {
		return false
	}
	for _, he := range g.adj[u] {
		if he.to == v {
			return true
		}
	}

	return false
}

// Children returns the vertices reachable from v by one outgoing edge, in
// sequence order. Returns ErrVertexNotFound if v is absent.
func (g *AdjacencyList[V, W]) Children(v V) ([]V, error) {
	if !g.vertices.has(v) {
		return nil, ErrVertexNotFound
	}
	seq := g.adj[v]
	out := make([]V, 0, len(seq))
	for _, he := range seq {
		out = append(out, he.to)
	}

	return out, nil
}

// Parents returns the vertices with one edge into v, in vertex insertion
// order. A self-loop makes v its own parent. Returns ErrVertexNotFound if v
// is absent. Complexity: O(|E|) — there is no reverse index.
func (g *AdjacencyList[V, W]) Parents(v V) ([]V, error) {
	if !g.vertices.has(v) {
		return nil, ErrVertexNotFound
	}
	out := make([]V, 0)
	for _, u := range g.vertices.order {
		for _, he := range g.adj[u] {
			if he.to == v {
				out = append(out, u)
				break
			}
		}
	}

	return out, nil
}
