// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Constructors. Build and BuildSorted turn an Adjacency into a Graph in one pass.

package core

import (
	"cmp"
	"log/slog"
	"maps"
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// NewGraph creates an empty Graph configured by opts.
// Complexity: O(len(opts)).
func NewGraph[K comparable](opts ...GraphOption) *Graph[K] {
	cfg := newGraphConfig(opts...)
	return &Graph[K]{
		nodes:  orderedmap.New[K, *Node[K]](),
		strict: cfg.strict,
		log:    cfg.logger,
	}
}

// Build creates a Graph from adj.
//
// Implementation:
//   - Stage 1: For each top-level key, ensure its node exists (counted on creation only).
//   - Stage 2: For each neighbor entry of that key, AddEdge(key, neighbor, weight).
//
// Behavior highlights:
//   - Every identifier that appears as a key or a neighbor key ends up with exactly one node.
//   - Edges are symmetric; a pair declared from both sides keeps the weight written last.
//   - Top-level keys are visited in Go map order, so node insertion order is not
//     reproducible across runs. Use BuildSorted when it has to be.
//   - The same map order decides which weight wins when a pair is declared from
//     both sides with different weights (A:{B:1}, B:{A:5}). Use BuildSorted or
//     adjspec when last-write-wins must be deterministic.
//
// Complexity:
//   - Time O(V+E), Space O(V+E).
func Build[K comparable](adj Adjacency[K], opts ...GraphOption) *Graph[K] {
	g := NewGraph[K](opts...)
	for id, nbrs := range adj {
		g.Ensure(id)
		for to, w := range nbrs {
			g.AddEdge(id, to, w)
		}
	}
	g.logBuilt(len(adj))

	return g
}

// BuildSorted is Build with top-level keys and neighbor keys visited in
// ascending order, which makes node and neighbor insertion order deterministic.
//
// Complexity:
//   - Time O(V log V + E log d), Space O(V+E).
func BuildSorted[K cmp.Ordered](adj Adjacency[K], opts ...GraphOption) *Graph[K] {
	g := NewGraph[K](opts...)
	for _, id := range slices.Sorted(maps.Keys(adj)) {
		g.Ensure(id)
		nbrs := adj[id]
		for _, to := range slices.Sorted(maps.Keys(nbrs)) {
			g.AddEdge(id, to, nbrs[to])
		}
	}
	g.logBuilt(len(adj))

	return g
}

func (g *Graph[K]) logBuilt(keys int) {
	g.log.Debug("core: graph built",
		slog.Int("spec_keys", keys),
		slog.Int("num_nodes", g.numNodes),
	)
}
