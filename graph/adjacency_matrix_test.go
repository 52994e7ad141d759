package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/graphadt/gograph/graph"
)

type AdjacencyMatrixSuite struct {
	suite.Suite
	directed   *graph.AdjacencyMatrix[int, int]
	undirected *graph.AdjacencyMatrix[int, int]
}

func (s *AdjacencyMatrixSuite) SetupTest() {
	s.directed = graph.NewAdjacencyMatrix[int, int](true, -1, 0, 7)
	s.undirected = graph.NewAdjacencyMatrix[int, int](false, -1, 0, 7)
}

func (s *AdjacencyMatrixSuite) TestVertexLifecycle() {
	require := require.New(s.T())

	require.Equal([]int{-1, 0, 7}, s.directed.Vertices())
	require.NoError(s.directed.AddVertex(42))
	require.ErrorIs(s.directed.AddVertex(42), graph.ErrDuplicateVertex)
	require.Equal(4, s.directed.VertexCount())

	require.ErrorIs(s.directed.RemoveVertex(99), graph.ErrVertexNotFound)
}

func (s *AdjacencyMatrixSuite) TestGrowthPreservesEdges() {
	require := require.New(s.T())

	g := graph.NewAdjacencyMatrix[string, int](false)
	require.NoError(g.AddVertices("A", "B"))
	require.NoError(g.SetEdgeWeight("A", "B", 5))

	// Growing the matrix must not disturb existing cells.
	require.NoError(g.AddVertex("C"))
	require.True(g.HasEdge("A", "B"))
	w, err := g.EdgeWeight("B", "A")
	require.NoError(err)
	require.Equal(5, w)
	require.False(g.HasEdge("A", "C"), "fresh row and column start empty")
}

func (s *AdjacencyMatrixSuite) TestSetAndGetEdgeWeight() {
	require := require.New(s.T())

	require.NoError(s.directed.SetEdgeWeight(-1, 0, 0))
	require.NoError(s.directed.SetEdgeWeight(-1, 7, 200))
	require.NoError(s.directed.SetEdgeWeight(0, -1, -100))

	require.True(s.directed.HasEdge(-1, 0))
	w, err := s.directed.EdgeWeight(-1, 7)
	require.NoError(err)
	require.Equal(200, w)
	require.False(s.directed.HasEdge(7, -1), "directed edge must not mirror")

	_, err = s.directed.EdgeWeight(7, -1)
	require.ErrorIs(err, graph.ErrEdgeNotFound)
	_, err = s.directed.EdgeWeight(-1, 999)
	require.ErrorIs(err, graph.ErrVertexNotFound)
	require.ErrorIs(s.directed.SetEdgeWeight(999, 0, 1), graph.ErrVertexNotFound)
}

func (s *AdjacencyMatrixSuite) TestMirrorSharesOneSlot() {
	require := require.New(s.T())

	require.NoError(s.undirected.SetEdgeWeight(-1, 0, 3))
	require.Equal(1, s.undirected.EdgeCount(), "mirrored cells share a single stored weight")

	// Overwriting through either orientation updates both.
	require.NoError(s.undirected.SetEdgeWeight(0, -1, 9))
	w, err := s.undirected.EdgeWeight(-1, 0)
	require.NoError(err)
	require.Equal(9, w)
	require.Equal(1, s.undirected.EdgeCount())
}

func (s *AdjacencyMatrixSuite) TestRemoveEdge() {
	require := require.New(s.T())

	require.NoError(s.undirected.SetEdgeWeight(-1, 0, 4))
	require.NoError(s.undirected.RemoveEdge(0, -1))
	require.False(s.undirected.HasEdge(-1, 0), "mirror must clear too")
	require.Equal(0, s.undirected.EdgeCount())

	require.ErrorIs(s.undirected.RemoveEdge(-1, 0), graph.ErrEdgeNotFound)
	require.ErrorIs(s.undirected.RemoveEdge(-1, 999), graph.ErrVertexNotFound)
}

func (s *AdjacencyMatrixSuite) TestRemoveVertexCompaction() {
	require := require.New(s.T())

	g := graph.NewAdjacencyMatrix[string, int](false, "A", "B", "C", "D")
	require.NoError(g.SetEdgeWeight("A", "B", 1))
	require.NoError(g.SetEdgeWeight("C", "D", 2))
	require.NoError(g.SetEdgeWeight("B", "D", 3))

	require.NoError(g.RemoveVertex("B"))

	require.Equal([]string{"A", "C", "D"}, g.Vertices(), "indices compact in order")
	require.False(g.HasEdge("A", "B"))
	require.False(g.HasEdge("D", "B"))

	// Surviving edge kept its weight through the row/column shift.
	w, err := g.EdgeWeight("C", "D")
	require.NoError(err)
	require.Equal(2, w)
	require.Equal(1, g.EdgeCount(), "both incident edges freed, one survivor")
}

func (s *AdjacencyMatrixSuite) TestArenaSlotReuse() {
	require := require.New(s.T())

	require.NoError(s.directed.SetEdgeWeight(-1, 0, 10))
	require.NoError(s.directed.RemoveEdge(-1, 0))
	require.NoError(s.directed.SetEdgeWeight(0, 7, 20))

	require.Equal(1, s.directed.EdgeCount())
	w, err := s.directed.EdgeWeight(0, 7)
	require.NoError(err)
	require.Equal(20, w)
	require.False(s.directed.HasEdge(-1, 0), "recycled slot must not resurrect the old edge")
}

func (s *AdjacencyMatrixSuite) TestChildrenAndParents() {
	require := require.New(s.T())

	require.NoError(s.directed.SetEdgeWeight(-1, 0, 5))
	require.NoError(s.directed.SetEdgeWeight(-1, 7, 9))

	children, err := s.directed.Children(-1)
	require.NoError(err)
	require.ElementsMatch([]int{0, 7}, children)

	parents, err := s.directed.Parents(0)
	require.NoError(err)
	require.Equal([]int{-1}, parents)

	require.False(s.directed.HasEdge(7, -1))

	_, err = s.directed.Children(999)
	require.ErrorIs(err, graph.ErrVertexNotFound)
	_, err = s.directed.Parents(999)
	require.ErrorIs(err, graph.ErrVertexNotFound)
}

func (s *AdjacencyMatrixSuite) TestSelfLoop() {
	require := require.New(s.T())

	require.NoError(s.undirected.SetEdgeWeight(7, 7, 42))
	require.True(s.undirected.HasEdge(7, 7))
	require.Equal(1, s.undirected.EdgeCount())

	children, err := s.undirected.Children(7)
	require.NoError(err)
	require.Contains(children, 7)

	require.NoError(s.undirected.RemoveVertex(7))
	require.Equal(0, s.undirected.EdgeCount(), "loop slot must be freed exactly once")
}

func (s *AdjacencyMatrixSuite) TestBatchVertexAtomicity() {
	require := require.New(s.T())

	require.ErrorIs(s.directed.AddVertices(10, 0, 11), graph.ErrDuplicateVertex)
	require.False(s.directed.HasVertex(10))
	require.False(s.directed.HasVertex(11))

	require.ErrorIs(s.directed.AddVertices(12, 12), graph.ErrDuplicateVertex)
	require.False(s.directed.HasVertex(12))
	require.Equal(3, s.directed.VertexCount())
}

func TestAdjacencyMatrixSuite(t *testing.T) {
	suite.Run(t, new(AdjacencyMatrixSuite))
}
