// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating snapshots of graph structure.

package core

// Adjacency returns a deep copy of the current structure as an Adjacency.
// Both orientations of every edge are present, isolated nodes map to an empty
// (non-nil) row, and traversal state is not included.
//
// Build(g.Adjacency()) reproduces the same nodes, edges and weights.
// Complexity: O(V+E).
func (g *Graph[K]) Adjacency() Adjacency[K] {
	out := make(Adjacency[K], g.nodes.Len())
	for n := range g.All() {
		row := make(map[K]float64, n.adjacent.Len())
		for p := n.adjacent.Oldest(); p != nil; p = p.Next() {
			row[p.Key.id] = p.Value
		}
		out[n.id] = row
	}

	return out
}

// EdgeCount returns the number of undirected edges. A self-loop counts as one edge.
// Complexity: O(V+E).
func (g *Graph[K]) EdgeCount() int {
	var degrees, loops int
	for n := range g.All() {
		degrees += n.adjacent.Len()
		if _, ok := n.adjacent.Get(n); ok {
			loops++
		}
	}
	// Non-loop edges appear on two rows, loops on one.
	return (degrees-loops)/2 + loops
}
