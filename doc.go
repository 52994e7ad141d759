// Package gograph is a generic, in-memory graph storage library: build
// directed or undirected graphs over any comparable vertex type, attach
// arbitrary edge weights (or none at all), and swap storage strategies
// without touching the code that uses them.
//
// What is gograph?
//
//	A small, pure-Go library that brings together:
//		• One capability contract: graph.Graph[V, W]
//		• An adjacency-list backend, tuned for sparse graphs and cheap mutation
//		• An unweighted list variant with set-based O(1) edge checks and batch ops
//		• An adjacency-matrix backend, tuned for O(1) edge lookups on dense graphs
//
// Why choose gograph?
//
//   - Representation-agnostic — write against graph.Graph[V, W], pick the
//     backend at construction time
//   - Generic — vertices are any comparable type, weights are any type
//   - Predictable failures — a small sentinel error set matched via errors.Is
//   - Pure Go — no cgo, no hidden deps
//
// Everything lives under a single subpackage:
//
//	graph/ — the Graph contract, both storage backends, and the error set
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	represents a square with four vertices and four edges; either backend
//	stores it, and Children/Parents answer the same on both.
//
// Dive into the graph package docs for complexity tables and the
// trade-offs between the two representations.
//
//	go get github.com/graphadt/gograph/graph
package gograph
