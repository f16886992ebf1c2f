// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures and assertions for lvroute/core.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
)

// Common node IDs used across core tests.
const (
	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"
	NodeE = "E"
	NodeX = "X"
	NodeZ = "Z"
)

// Common weights used across core tests.
const (
	Weight0   = 0.0
	Weight1   = 1.0
	Weight2   = 2.0
	Weight4   = 4.0
	Weight2_5 = 2.5
)

// scenarioSpec is the three-node triangle used by the reference scenario.
func scenarioSpec() core.Adjacency[string] {
	return core.Adjacency[string]{
		NodeA: {NodeB: Weight1, NodeC: Weight4},
		NodeB: {NodeC: Weight2},
	}
}

// mustNode fetches id from g and fails the test when it is missing.
func mustNode[K comparable](t *testing.T, g *core.Graph[K], id K) *core.Node[K] {
	t.Helper()
	n, ok := g.Node(id)
	require.True(t, ok, "Node(%v) must exist", id)
	require.NotNil(t, n)

	return n
}

// connectionIDs maps a node's connections to their identifiers.
func connectionIDs[K comparable](n *core.Node[K]) []K {
	nbrs := n.Connections()
	out := make([]K, len(nbrs))
	for i, nb := range nbrs {
		out[i] = nb.ID()
	}
	return out
}

// collect drains g.All() into a slice of identifiers.
func collect[K comparable](g *core.Graph[K]) []K {
	var out []K
	for n := range g.All() {
		out = append(out, n.ID())
	}
	return out
}
