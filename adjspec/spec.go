// SPDX-License-Identifier: MIT

package adjspec

import "github.com/katalvlaran/lvroute/core"

// Neighbor is one "neighbor: weight" pair of an entry.
type Neighbor struct {
	ID     string
	Weight float64
	Line   int // 1-based source line of the neighbor key
}

// Entry is one top-level key of a document with its neighbors in document order.
type Entry struct {
	ID        string
	Neighbors []Neighbor
	Line      int // 1-based source line of the key
}

// Spec is a decoded adjacency document.
type Spec struct {
	entries []Entry
}

// Len returns the number of top-level entries.
func (s *Spec) Len() int { return len(s.entries) }

// Entries returns a copy of the entries in document order.
func (s *Spec) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	for i, e := range s.entries {
		out[i] = Entry{ID: e.ID, Line: e.Line, Neighbors: append([]Neighbor(nil), e.Neighbors...)}
	}
	return out
}

// Adjacency converts the document to a core.Adjacency. Entries without
// neighbors map to an empty row.
func (s *Spec) Adjacency() core.Adjacency[string] {
	adj := make(core.Adjacency[string], len(s.entries))
	for _, e := range s.entries {
		row := make(map[string]float64, len(e.Neighbors))
		for _, nb := range e.Neighbors {
			row[nb.ID] = nb.Weight
		}
		adj[e.ID] = row
	}
	return adj
}

// Graph builds a core graph in document order: each key is registered, then
// each of its neighbors is connected with AddEdge. A pair declared from both
// sides keeps the weight that appears later in the document.
func (s *Spec) Graph(opts ...core.GraphOption) *core.Graph[string] {
	g := core.NewGraph[string](opts...)
	for _, e := range s.entries {
		g.Ensure(e.ID)
		for _, nb := range e.Neighbors {
			g.AddEdge(e.ID, nb.ID, nb.Weight)
		}
	}
	return g
}
