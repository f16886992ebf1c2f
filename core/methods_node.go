// SPDX-License-Identifier: MIT
//
// File: methods_node.go
// Role: Node adjacency and traversal-state accessors.
//
// Determinism:
//   - Connections() and String() list neighbors in the order they were first added.

package core

import (
	"fmt"
)

// ID returns the node identifier.
func (n *Node[K]) ID() K { return n.id }

// AddNeighbor inserts nb with the given weight, overwriting any previous
// weight for nb (last write wins). A nil neighbor is ignored.
//
// AddNeighbor only touches this node; Graph.AddEdge keeps both sides in sync.
func (n *Node[K]) AddNeighbor(nb *Node[K], weight float64) {
	if nb == nil {
		return
	}
	n.adjacent.Set(nb, weight)
}

// Connections returns the adjacent nodes in insertion order.
// The slice is freshly allocated; the nodes themselves are shared.
// Complexity: O(d).
func (n *Node[K]) Connections() []*Node[K] {
	out := make([]*Node[K], 0, n.adjacent.Len())
	for p := n.adjacent.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key)
	}
	return out
}

// Weight returns the weight stored for nb.
//
// Errors:
//   - ErrNeighborNotFound: nb is nil or was never added to this node.
func (n *Node[K]) Weight(nb *Node[K]) (float64, error) {
	if nb != nil {
		if w, ok := n.adjacent.Get(nb); ok {
			return w, nil
		}
		return 0, fmt.Errorf("%w: %v -> %v", ErrNeighborNotFound, n.id, nb.id)
	}
	return 0, fmt.Errorf("%w: %v -> <nil>", ErrNeighborNotFound, n.id)
}

// Degree returns the number of distinct neighbors. A self-loop counts once.
func (n *Node[K]) Degree() int { return n.adjacent.Len() }

// SetDistance sets the tentative distance.
func (n *Node[K]) SetDistance(d float64) { n.distance = d }

// Distance returns the tentative distance; Infinity until set.
func (n *Node[K]) Distance() float64 { return n.distance }

// SetPrevious records p as this node's predecessor. p is not checked for
// membership in the same Graph; nil clears the predecessor.
func (n *Node[K]) SetPrevious(p *Node[K]) { n.previous = p }

// Previous returns the predecessor, or nil when none was set.
func (n *Node[K]) Previous() *Node[K] { return n.previous }

// SetVisited marks the node visited. There is no way to unmark it.
func (n *Node[K]) SetVisited() { n.visited = true }

// Visited reports whether SetVisited was called.
func (n *Node[K]) Visited() bool { return n.visited }

// String renders "<id> adjacent: [<neighbor ids>]" for debugging.
// The format is not meant to be parsed.
func (n *Node[K]) String() string {
	ids := make([]K, 0, n.adjacent.Len())
	for p := n.adjacent.Oldest(); p != nil; p = p.Next() {
		ids = append(ids, p.Key.id)
	}
	return fmt.Sprintf("%v adjacent: %v", n.id, ids)
}
