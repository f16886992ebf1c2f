// SPDX-License-Identifier: MIT
// Package core_test verifies Graph construction, lookups, edge symmetry and iteration.

package core_test

import (
	"bytes"
	"log/slog"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
)

func TestBuild_Scenario(t *testing.T) {
	g := core.Build(scenarioSpec())

	require.Equal(t, 3, g.NumNodes())
	require.ElementsMatch(t, []string{NodeA, NodeB, NodeC}, g.NodeIDs())

	for _, tc := range []struct {
		from, to string
		want     float64
	}{
		{NodeA, NodeB, Weight1},
		{NodeA, NodeC, Weight4},
		{NodeB, NodeC, Weight2},
	} {
		w, err := g.Weight(tc.from, tc.to)
		require.NoError(t, err, "Weight(%s,%s)", tc.from, tc.to)
		assert.Equal(t, tc.want, w, "Weight(%s,%s)", tc.from, tc.to)

		w, err = g.Weight(tc.to, tc.from)
		require.NoError(t, err, "Weight(%s,%s)", tc.to, tc.from)
		assert.Equal(t, tc.want, w, "Weight(%s,%s)", tc.to, tc.from)
	}

	n, ok := g.Node(NodeZ)
	require.False(t, ok, "Node(Z) must report not found")
	require.Nil(t, n)
}

func TestBuild_Empty(t *testing.T) {
	for name, adj := range map[string]core.Adjacency[string]{
		"empty": {},
		"nil":   nil,
	} {
		t.Run(name, func(t *testing.T) {
			g := core.Build(adj)
			require.Zero(t, g.NumNodes())
			require.Empty(t, g.NodeIDs())
			require.Empty(t, collect(g))
			require.Zero(t, g.EdgeCount())
		})
	}
}

func TestBuild_NodeCountCountsEachIDOnce(t *testing.T) {
	adj := core.Adjacency[string]{
		NodeA: {NodeB: Weight1, NodeC: Weight1},
		NodeD: {NodeB: Weight2, NodeC: Weight2},
		NodeB: {NodeA: Weight1},
		NodeE: nil,
	}
	g := core.Build(adj)

	require.Equal(t, 5, g.NumNodes())
	require.Len(t, g.NodeIDs(), g.NumNodes())
	require.ElementsMatch(t, []string{NodeA, NodeB, NodeC, NodeD, NodeE}, g.NodeIDs())
	require.Zero(t, mustNode(t, g, NodeE).Degree(), "nil row declares an isolated node")
}

func TestBuild_Symmetry(t *testing.T) {
	adj := core.Adjacency[int]{
		1: {2: 0.5, 3: 1.5},
		2: {4: 2.5},
		3: {4: -1},
		5: {1: 7},
	}
	g := core.Build(adj)

	for from, row := range adj {
		for to, want := range row {
			u, v := mustNode(t, g, from), mustNode(t, g, to)

			got, err := u.Weight(v)
			require.NoError(t, err)
			assert.Equal(t, want, got, "%d->%d", from, to)

			got, err = v.Weight(u)
			require.NoError(t, err)
			assert.Equal(t, want, got, "%d->%d mirror", to, from)
		}
	}
	require.Equal(t, 5, g.EdgeCount())
}

func TestBuildSorted_Order(t *testing.T) {
	g := core.BuildSorted(core.Adjacency[string]{
		NodeC: {NodeA: Weight1},
		NodeB: {NodeD: Weight1, NodeA: Weight2},
		NodeA: nil,
	})

	if diff := cmp.Diff([]string{NodeA, NodeB, NodeD, NodeC}, g.NodeIDs()); diff != "" {
		t.Fatalf("NodeIDs() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{NodeB, NodeC}, connectionIDs(mustNode(t, g, NodeA))); diff != "" {
		t.Fatalf("A connections mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildSorted_ConflictingWeightsLastKeyWins(t *testing.T) {
	adj := core.Adjacency[string]{
		NodeA: {NodeB: Weight1},
		NodeB: {NodeA: Weight4},
	}
	for i := 0; i < 20; i++ {
		g := core.BuildSorted(adj)
		w, err := g.Weight(NodeA, NodeB)
		require.NoError(t, err)
		require.Equal(t, Weight4, w, "B is visited after A, so B's declaration wins")
		w, err = g.Weight(NodeB, NodeA)
		require.NoError(t, err)
		require.Equal(t, Weight4, w)
	}
}

func TestAddEdge_Idempotent(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge(NodeA, NodeB, Weight1)
	g.AddEdge(NodeA, NodeB, Weight2)

	a, b := mustNode(t, g, NodeA), mustNode(t, g, NodeB)
	require.Equal(t, 1, a.Degree())
	require.Equal(t, 1, b.Degree())
	require.Equal(t, 1, g.EdgeCount())

	w, err := a.Weight(b)
	require.NoError(t, err)
	require.Equal(t, Weight2, w)
	w, err = b.Weight(a)
	require.NoError(t, err)
	require.Equal(t, Weight2, w)

	// The reversed orientation addresses the same edge.
	g.AddEdge(NodeB, NodeA, Weight4)
	w, err = g.Weight(NodeA, NodeB)
	require.NoError(t, err)
	require.Equal(t, Weight4, w)
	require.Equal(t, 2, g.NumNodes())
}

func TestAddEdge_CreatesEndpoints(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddUnweightedEdge(NodeA, NodeB)

	require.Equal(t, 2, g.NumNodes())
	require.True(t, g.HasNode(NodeA))
	require.True(t, g.HasEdge(NodeB, NodeA))

	w, err := g.Weight(NodeA, NodeB)
	require.NoError(t, err)
	require.Equal(t, core.DefaultWeight, w)
}

func TestAddEdge_SelfLoop(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge(NodeX, NodeX, Weight2)

	x := mustNode(t, g, NodeX)
	require.Equal(t, 1, g.NumNodes())
	require.Equal(t, 1, x.Degree())
	require.Equal(t, 1, g.EdgeCount())
	require.Equal(t, []string{NodeX}, connectionIDs(x))
}

func TestAddNode_Lenient(t *testing.T) {
	g := core.NewGraph[string]()
	first, err := g.AddNode(NodeX)
	require.NoError(t, err)
	require.Equal(t, 1, g.NumNodes())

	g.AddEdge(NodeX, NodeA, Weight1)

	second, err := g.AddNode(NodeX)
	require.NoError(t, err)
	require.Same(t, first, second, "duplicate AddNode must return the existing node")
	require.Equal(t, 2, g.NumNodes(), "duplicate AddNode must not count again")
	require.True(t, g.HasEdge(NodeX, NodeA), "existing adjacency must survive")
}

func TestAddNode_Strict(t *testing.T) {
	g := core.NewGraph[string](core.WithStrictNodes())
	first, err := g.AddNode(NodeX)
	require.NoError(t, err)

	second, err := g.AddNode(NodeX)
	require.ErrorIs(t, err, core.ErrDuplicateNode)
	require.Same(t, first, second)
	require.Equal(t, 1, g.NumNodes())

	// Ensure and AddEdge are unaffected by strict mode.
	require.Same(t, first, g.Ensure(NodeX))
	g.AddEdge(NodeX, NodeA, Weight1)
	require.Equal(t, 2, g.NumNodes())
}

func TestLookupSafety(t *testing.T) {
	g := core.Build(scenarioSpec())

	require.False(t, g.HasNode(NodeZ))
	require.False(t, g.HasEdge(NodeA, NodeZ))

	_, err := g.Weight(NodeZ, NodeA)
	require.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = g.Weight(NodeA, NodeZ)
	require.ErrorIs(t, err, core.ErrNodeNotFound)

	g.Ensure(NodeD)
	_, err = g.Weight(NodeA, NodeD)
	require.ErrorIs(t, err, core.ErrNeighborNotFound)
	require.NotErrorIs(t, err, core.ErrNodeNotFound)
}

func TestAll_RestartableAndStoppable(t *testing.T) {
	g := core.BuildSorted(scenarioSpec())
	want := []string{NodeA, NodeB, NodeC}

	require.Equal(t, want, collect(g))
	require.Equal(t, want, collect(g), "second range must start over")

	var seen []string
	for n := range g.All() {
		seen = append(seen, n.ID())
		if n.ID() == NodeB {
			break
		}
	}
	require.Equal(t, []string{NodeA, NodeB}, seen)
}

func TestGraph_PreviousSlot(t *testing.T) {
	g := core.Build(scenarioSpec())
	require.Nil(t, g.Previous())

	a, b := mustNode(t, g, NodeA), mustNode(t, g, NodeB)
	g.SetPrevious(a)
	require.Same(t, a, g.Previous())
	g.SetPrevious(b)
	require.Same(t, b, g.Previous(), "slot reflects the most recent value")

	// The slot is independent from per-node predecessors.
	require.Nil(t, a.Previous())
	require.Nil(t, b.Previous())

	g.SetPrevious(nil)
	require.Nil(t, g.Previous())
}

func TestAdjacency_RoundTrip(t *testing.T) {
	g := core.Build(scenarioSpec())
	g.Ensure(NodeE)

	want := core.Adjacency[string]{
		NodeA: {NodeB: Weight1, NodeC: Weight4},
		NodeB: {NodeA: Weight1, NodeC: Weight2},
		NodeC: {NodeA: Weight4, NodeB: Weight2},
		NodeE: {},
	}
	got := g.Adjacency()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Adjacency() mismatch (-want +got):\n%s", diff)
	}

	// The snapshot is detached from the graph.
	got[NodeA][NodeB] = 99
	w, err := g.Weight(NodeA, NodeB)
	require.NoError(t, err)
	require.Equal(t, Weight1, w)

	rebuilt := core.Build(want)
	if diff := cmp.Diff(want, rebuilt.Adjacency()); diff != "" {
		t.Fatalf("Build(Adjacency()) mismatch (-want +got):\n%s", diff)
	}
}

func TestWithLogger_DebugRecords(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	g := core.NewGraph[string](core.WithLogger(logger), core.WithStrictNodes())
	_, err := g.AddNode(NodeA)
	require.NoError(t, err)
	_, err = g.AddNode(NodeA)
	require.ErrorIs(t, err, core.ErrDuplicateNode)

	out := buf.String()
	require.Contains(t, out, `"msg":"core: node created"`)
	require.Contains(t, out, `"msg":"core: duplicate node rejected"`)
	require.Contains(t, out, `"id":"A"`)
}

func TestWithLogger_NilPanics(t *testing.T) {
	require.Panics(t, func() { core.WithLogger(nil) })
}

func TestNodeIDs_IsCopy(t *testing.T) {
	g := core.BuildSorted(scenarioSpec())
	ids := g.NodeIDs()
	slices.Reverse(ids)
	require.Equal(t, []string{NodeA, NodeB, NodeC}, g.NodeIDs())
}
