// Package graph_test provides benchmarks contrasting the cost profiles of
// the two storage backends.
package graph_test

import (
	"testing"

	"github.com/graphadt/gograph/graph"
)

// denseList builds a directed list-backed graph where vertex 0 points at
// every other vertex, giving it a long neighbor sequence to scan.
func denseList(n int) *graph.AdjacencyList[int, int] {
	g := graph.NewAdjacencyList[int, int](true)
	for i := 0; i < n; i++ {
		_ = g.AddVertex(i)
	}
	for i := 1; i < n; i++ {
		_ = g.SetEdgeWeight(0, i, i)
	}

	return g
}

// denseMatrix builds the same star shape on the matrix backend.
func denseMatrix(n int) *graph.AdjacencyMatrix[int, int] {
	g := graph.NewAdjacencyMatrix[int, int](true)
	for i := 0; i < n; i++ {
		_ = g.AddVertex(i)
	}
	for i := 1; i < n; i++ {
		_ = g.SetEdgeWeight(0, i, i)
	}

	return g
}

// BenchmarkHasEdge_List measures the O(deg) linear neighbor scan.
func BenchmarkHasEdge_List(b *testing.B) {
	g := denseList(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.HasEdge(0, 999)
	}
}

// BenchmarkHasEdge_Matrix measures the O(1) cell lookup.
func BenchmarkHasEdge_Matrix(b *testing.B) {
	g := denseMatrix(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.HasEdge(0, 999)
	}
}

// BenchmarkParents_List measures the O(|E|) reverse scan (no reverse index).
func BenchmarkParents_List(b *testing.B) {
	g := denseList(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Parents(500)
	}
}

// BenchmarkParents_Matrix measures the O(|V|) column scan.
func BenchmarkParents_Matrix(b *testing.B) {
	g := denseMatrix(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Parents(500)
	}
}

// BenchmarkSetEdgeWeight_Unweighted measures set-based O(1) edge insertion.
func BenchmarkSetEdgeWeight_Unweighted(b *testing.B) {
	g := graph.NewUnweightedAdjacencyList[int](false)
	for i := 0; i < 1000; i++ {
		_ = g.AddVertex(i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.SetEdgeWeight(i%1000, (i+1)%1000, true)
	}
}

// BenchmarkAddVertex_Matrix measures the amortized O(|V|) row+column growth.
func BenchmarkAddVertex_Matrix(b *testing.B) {
	g := graph.NewAdjacencyMatrix[int, int](false)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddVertex(i)
	}
}
