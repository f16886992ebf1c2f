// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Symmetric edge insertion and id-level weight queries.
//
// Policy:
//   - Every edge is mirrored on both endpoints with the same weight.
//   - Re-inserting an unordered pair overwrites the weight on both sides.

package core

import "fmt"

// DefaultWeight is the weight of an edge added without an explicit one.
const DefaultWeight float64 = 0.0

// AddEdge connects from and to with weight, creating either endpoint if it is
// not registered yet (each creation increments NumNodes).
//
// Implementation:
//   - Stage 1: Ensure both endpoints.
//   - Stage 2: from.AddNeighbor(to, w) and to.AddNeighbor(from, w).
//
// Behavior highlights:
//   - Idempotent on structure: repeating the pair in either orientation keeps a
//     single edge, with the last weight written.
//   - from == to stores a single self-adjacency entry.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph[K]) AddEdge(from, to K, weight float64) {
	u := g.Ensure(from)
	v := g.Ensure(to)

	u.AddNeighbor(v, weight)
	v.AddNeighbor(u, weight)
}

// AddUnweightedEdge is AddEdge with DefaultWeight.
func (g *Graph[K]) AddUnweightedEdge(from, to K) {
	g.AddEdge(from, to, DefaultWeight)
}

// HasEdge reports whether from and to are registered and adjacent.
func (g *Graph[K]) HasEdge(from, to K) bool {
	_, err := g.Weight(from, to)
	return err == nil
}

// Weight returns the weight of the edge between from and to.
//
// Errors:
//   - ErrNodeNotFound: either identifier is unknown.
//   - ErrNeighborNotFound: both exist but are not adjacent.
func (g *Graph[K]) Weight(from, to K) (float64, error) {
	u, ok := g.nodes.Get(from)
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrNodeNotFound, from)
	}
	v, ok := g.nodes.Get(to)
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrNodeNotFound, to)
	}

	return u.Weight(v)
}
