package graph

// noEdge marks an empty matrix cell.
const noEdge = -1

// AdjacencyMatrix is the dense backend: a |V|×|V| matrix of cells, each
// either empty or holding a handle into an owned weight arena. The arena
// replaces raw weight references — a cell can never outlive its backing
// entry, and in an undirected graph the mirrored cells (i,j) and (j,i)
// share a single handle, so one stored value serves both orientations.
//
// Invariant: a cell is non-empty iff its handle addresses a live arena
// slot; freed slots are recycled through a free list.
//
// The cost profile is the inverse of the list backend: O(1) edge existence
// and weight lookup, O(|V|) neighbor enumeration, and vertex insertion that
// grows a full row and column — O(|V|²) total when building one vertex at a
// time from empty, a known backend cost rather than a defect.
type AdjacencyMatrix[V comparable, W any] struct {
	directed bool
	index    map[V]int // vertex → row/column index
	byIndex  []V       // row/column index → vertex
	cells    [][]int   // cells[i][j] = arena handle, or noEdge
	arena    []W       // weight storage addressed by handles
	free     []int     // recycled arena slots
}

// NewAdjacencyMatrix creates a dense adjacency-matrix graph with the given
// orientation and initial vertices, allocating the full matrix eagerly.
// Duplicate initial vertices collapse (set semantics).
func NewAdjacencyMatrix[V comparable, W any](directed bool, vertices ...V) *AdjacencyMatrix[V, W] {
	g := &AdjacencyMatrix[V, W]{
		directed: directed,
		index:    make(map[V]int, len(vertices)),
	}
	for _, v := range vertices {
		if _, ok := g.index[v]; ok {
			continue
		}
		g.index[v] = len(g.byIndex)
		g.byIndex = append(g.byIndex, v)
	}

	n := len(g.byIndex)
	g.cells = make([][]int, n)
	for i := range g.cells {
		g.cells[i] = emptyRow(n)
	}

	return g
}

// emptyRow allocates a row of n empty cells.
func emptyRow(n int) []int {
	row := make([]int, n)
	for j := range row {
		row[j] = noEdge
	}

	return row
}

// Directed reports the orientation fixed at construction.
func (g *AdjacencyMatrix[V, W]) Directed() bool { return g.directed }

// vertexIndex resolves v to its row/column index or ErrVertexNotFound.
func (g *AdjacencyMatrix[V, W]) vertexIndex(v V) (int, error) {
	i, ok := g.index[v]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return i, nil
}

// grow appends one empty row and column for a new vertex.
func (g *AdjacencyMatrix[V, W]) grow(v V) {
	n := len(g.byIndex)
	g.index[v] = n
	g.byIndex = append(g.byIndex, v)
	for i := range g.cells {
		g.cells[i] = append(g.cells[i], noEdge)
	}
	g.cells = append(g.cells, emptyRow(n+1))
}

// AddVertex inserts v, growing the matrix by one row and one column of
// empty cells. Returns ErrDuplicateVertex if v is already present.
// Complexity: amortized O(|V|).
func (g *AdjacencyMatrix[V, W]) AddVertex(v V) error {
	if _, ok := g.index[v]; ok {
		return ErrDuplicateVertex
	}
	g.grow(v)

	return nil
}

// AddVertices inserts every vertex in vs, all-or-nothing: a member already
// present, or repeated within vs, fails the whole batch with
// ErrDuplicateVertex before the matrix grows at all.
func (g *AdjacencyMatrix[V, W]) AddVertices(vs ...V) error {
	seen := make(map[V]struct{}, len(vs))
	for _, v := range vs {
		if _, ok := g.index[v]; ok {
			return ErrDuplicateVertex
		}
		if _, dup := seen[v]; dup {
			return ErrDuplicateVertex
		}
		seen[v] = struct{}{}
	}
	for _, v := range vs {
		g.grow(v)
	}

	return nil
}

// RemoveVertex deletes v and every incident edge: all arena slots referenced
// from v's row or column are freed (a mirrored pair shares one slot and is
// freed once), the row and column are physically removed, and the indices of
// every shifted vertex are reassigned. Returns ErrVertexNotFound if v is
// absent. Complexity: O(|V|²) for the column compaction.
func (g *AdjacencyMatrix[V, W]) RemoveVertex(v V) error {
	idx, err := g.vertexIndex(v)
	if err != nil {
		return err
	}

	// Free incident arena slots exactly once each.
	freed := make(map[int]struct{})
	release := func(h int) {
		if h == noEdge {
			return
		}
		if _, ok := freed[h]; ok {
			return
		}
		freed[h] = struct{}{}
		g.free = append(g.free, h)
	}
	n := len(g.byIndex)
	for j := 0; j < n; j++ {
		release(g.cells[idx][j])
		release(g.cells[j][idx])
	}

	// Remove the row, then the column from every remaining row.
	g.cells = append(g.cells[:idx], g.cells[idx+1:]...)
	for i := range g.cells {
		g.cells[i] = append(g.cells[i][:idx], g.cells[i][idx+1:]...)
	}

	// Compact the vertex catalog and reassign shifted indices.
	g.byIndex = append(g.byIndex[:idx], g.byIndex[idx+1:]...)
	delete(g.index, v)
	for i := idx; i < len(g.byIndex); i++ {
		g.index[g.byIndex[i]] = i
	}

	return nil
}

// HasVertex reports membership; it never fails. O(1).
func (g *AdjacencyMatrix[V, W]) HasVertex(v V) bool {
	_, ok := g.index[v]

	return ok
}

// Vertices returns all vertices in index (insertion) order.
func (g *AdjacencyMatrix[V, W]) Vertices() []V {
	out := make([]V, len(g.byIndex))
	copy(out, g.byIndex)

	return out
}

// VertexCount returns the number of vertices. O(1).
func (g *AdjacencyMatrix[V, W]) VertexCount() int { return len(g.byIndex) }

// EdgeCount returns the number of edges: live arena slots, so a mirrored
// undirected pair counts once. O(1).
func (g *AdjacencyMatrix[V, W]) EdgeCount() int { return len(g.arena) - len(g.free) }

// alloc stores w in a recycled or fresh arena slot and returns its handle.
func (g *AdjacencyMatrix[V, W]) alloc(w W) int {
	if k := len(g.free); k > 0 {
		h := g.free[k-1]
		g.free = g.free[:k-1]
		g.arena[h] = w

		return h
	}
	g.arena = append(g.arena, w)

	return len(g.arena) - 1
}

// SetEdgeWeight creates or overwrites the edge u→v with weight w. The arena
// slot is written first and the cell then points at it, so a cell never
// references a value missing from the store. When undirected, the mirror
// cell aliases the same slot. Returns ErrVertexNotFound if either endpoint
// is absent. O(1).
func (g *AdjacencyMatrix[V, W]) SetEdgeWeight(u, v V, w W) error {
	i, err := g.vertexIndex(u)
	if err != nil {
		return err
	}
	j, err := g.vertexIndex(v)
	if err != nil {
		return err
	}

	if h := g.cells[i][j]; h != noEdge {
		g.arena[h] = w // shared slot: the mirror observes the update too

		return nil
	}
	h := g.alloc(w)
	g.cells[i][j] = h
	if !g.directed {
		g.cells[j][i] = h
	}

	return nil
}

// EdgeWeight returns the stored weight of u→v. Returns ErrVertexNotFound if
// either endpoint is absent, ErrEdgeNotFound if the cell is empty. O(1).
func (g *AdjacencyMatrix[V, W]) EdgeWeight(u, v V) (W, error) {
	var zero W
	i, err := g.vertexIndex(u)
	if err != nil {
		return zero, err
	}
	j, err := g.vertexIndex(v)
	if err != nil {
		return zero, err
	}
	h := g.cells[i][j]
	if h == noEdge {
		return zero, ErrEdgeNotFound
	}

	return g.arena[h], nil
}

// RemoveEdge deletes u→v, freeing its arena slot and clearing the mirror
// cell when undirected. Returns ErrVertexNotFound if either endpoint is
// absent, ErrEdgeNotFound if the edge does not exist. O(1).
func (g *AdjacencyMatrix[V, W]) RemoveEdge(u, v V) error {
	i, err := g.vertexIndex(u)
	if err != nil {
		return err
	}
	j, err := g.vertexIndex(v)
	if err != nil {
		return err
	}
	h := g.cells[i][j]
	if h == noEdge {
		return ErrEdgeNotFound
	}
	g.free = append(g.free, h)
	g.cells[i][j] = noEdge
	if !g.directed {
		g.cells[j][i] = noEdge
	}

	return nil
}

// HasEdge reports whether u→v exists. Unknown endpoints answer false;
// HasEdge never fails. O(1).
func (g *AdjacencyMatrix[V, W]) HasEdge(u, v V) bool {
	i, ok := g.index[u]
	if !ok {
		return false
	}
	j, ok := g.index[v]
	if !ok {
		return false
	}

	return g.cells[i][j] != noEdge
}

// Children returns the vertices reachable from v by one outgoing edge,
// scanning v's full row in index order. Returns ErrVertexNotFound if v is
// absent. Complexity: O(|V|).
func (g *AdjacencyMatrix[V, W]) Children(v V) ([]V, error) {
	i, err := g.vertexIndex(v)
	if err != nil {
		return nil, err
	}
	out := make([]V, 0)
	for j, h := range g.cells[i] {
		if h != noEdge {
			out = append(out, g.byIndex[j])
		}
	}

	return out, nil
}

// Parents returns the vertices with one edge into v, scanning v's full
// column in index order. A self-loop makes v its own parent.
// Returns ErrVertexNotFound if v is absent. Complexity: O(|V|).
func (g *AdjacencyMatrix[V, W]) Parents(v V) ([]V, error) {
	j, err := g.vertexIndex(v)
	if err != nil {
		return nil, err
	}
	out := make([]V, 0)
	for i := range g.cells {
		if g.cells[i][j] != noEdge {
			out = append(out, g.byIndex[i])
		}
	}

	return out, nil
}
