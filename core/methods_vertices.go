// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Node catalog lifecycle, lookups and iteration.
//
// Determinism:
//   - NodeIDs() and All() follow insertion order (first registration).

package core

import (
	"fmt"
	"iter"
	"log/slog"
)

// AddNode registers an isolated node for id and returns it.
//
// Behavior highlights:
//   - New id: creates the node and increments NumNodes.
//   - Existing id, default mode: returns the existing node unchanged with a nil error.
//   - Existing id, WithStrictNodes: returns the existing node and ErrDuplicateNode.
//   - Never replaces a registered node, so adjacency already wired to it survives.
//
// Errors:
//   - ErrDuplicateNode (strict mode only).
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph[K]) AddNode(id K) (*Node[K], error) {
	if n, ok := g.nodes.Get(id); ok {
		if g.strict {
			g.log.Debug("core: duplicate node rejected", slog.Any("id", id))
			return n, fmt.Errorf("%w: %v", ErrDuplicateNode, id)
		}
		return n, nil
	}

	return g.insert(id), nil
}

// Ensure returns the node for id, creating and counting it if absent.
// Unlike AddNode it ignores strict mode; it is the create-on-first-reference
// path used by Build, AddEdge and document loaders.
func (g *Graph[K]) Ensure(id K) *Node[K] {
	if n, ok := g.nodes.Get(id); ok {
		return n
	}
	return g.insert(id)
}

// insert registers a fresh node; the caller has checked id is absent.
func (g *Graph[K]) insert(id K) *Node[K] {
	n := newNode(id)
	g.nodes.Set(id, n)
	g.numNodes++
	g.log.Debug("core: node created", slog.Any("id", id), slog.Int("num_nodes", g.numNodes))

	return n
}

// Node returns the node registered for id. The boolean is false, and the node
// nil, when id is unknown.
func (g *Graph[K]) Node(id K) (*Node[K], bool) {
	return g.nodes.Get(id)
}

// HasNode reports whether id is registered.
func (g *Graph[K]) HasNode(id K) bool {
	_, ok := g.nodes.Get(id)
	return ok
}

// NodeIDs returns every registered identifier in insertion order.
// Complexity: O(V).
func (g *Graph[K]) NodeIDs() []K {
	out := make([]K, 0, g.nodes.Len())
	for p := g.nodes.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key)
	}
	return out
}

// NumNodes returns the number of distinct registered identifiers.
func (g *Graph[K]) NumNodes() int { return g.numNodes }

// All returns a lazy sequence over the nodes in insertion order.
// Each range over the sequence starts from the first node again.
// Registering nodes while ranging is not supported.
func (g *Graph[K]) All() iter.Seq[*Node[K]] {
	return func(yield func(*Node[K]) bool) {
		for p := g.nodes.Oldest(); p != nil; p = p.Next() {
			if !yield(p.Value) {
				return
			}
		}
	}
}

// SetPrevious stores n in the graph-level scratch slot. nil clears it.
func (g *Graph[K]) SetPrevious(n *Node[K]) { g.previous = n }

// Previous returns the value last passed to SetPrevious, or nil.
func (g *Graph[K]) Previous() *Node[K] { return g.previous }
