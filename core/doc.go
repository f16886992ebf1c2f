// SPDX-License-Identifier: MIT

// Package core provides an in-memory undirected weighted graph whose nodes
// carry the bookkeeping a traversal needs: a distance, a visited flag and a
// predecessor reference.
//
// The Graph G = (V,E) is generic over its identifier type K, which may be any
// comparable value (string labels, integers, small structs):
//
//   - Nodes are created lazily, the first time an identifier is referenced as
//     a source or as the target of an edge, and are never removed.
//   - Every edge is stored on both endpoints with the same weight.
//     AddEdge(a,b,w) followed by AddEdge(b,a,w2) leaves one edge of weight w2.
//   - Iteration (All, NodeIDs, Connections) follows insertion order.
//
// Construction:
//
//	g := core.Build(core.Adjacency[string]{
//	    "A": {"B": 1, "C": 4},
//	    "B": {"C": 2},
//	})
//
// Build visits top-level keys in Go map order; use BuildSorted for ordered key
// types when the resulting iteration order must be reproducible.
//
// Traversal state:
//
//	Distance()  float64   // Infinity until SetDistance
//	Visited()   bool      // false until SetVisited; never reset
//	Previous()  *Node[K]  // nil until SetPrevious
//
// The graph also holds one scratch "previous" slot (Graph.SetPrevious /
// Graph.Previous) that traversal code may use as it sees fit.
//
// Concurrency:
//
//	A Graph is not safe for concurrent mutation. Finish construction before
//	sharing it, and let a single traversal own the per-node state at a time.
//
// Errors:
//
//	ErrNodeNotFound     - identifier was never registered
//	ErrNeighborNotFound - weight requested for a node that is not adjacent
//	ErrDuplicateNode    - AddNode on an existing identifier in strict mode
package core
