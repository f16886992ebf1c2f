// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Graph and Adjacency declarations, sentinel errors and GraphOption.
// Policy:
//   - Graph exclusively owns its nodes; nodes refer to neighbors and
//     predecessors by plain pointer without owning them.
//   - Ordered maps back both the node catalog and each adjacency so every
//     enumeration follows insertion order.

package core

import (
	"errors"
	"io"
	"log/slog"
	"math"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced an identifier that was never registered.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrNeighborNotFound indicates a weight was requested for a node that is not adjacent.
	ErrNeighborNotFound = errors.New("core: neighbor not found")

	// ErrDuplicateNode indicates AddNode was called for an existing identifier in strict mode.
	ErrDuplicateNode = errors.New("core: duplicate node")
)

// Infinity is the distance every node starts with.
var Infinity = math.Inf(1)

// Adjacency describes a graph as node identifier → neighbor identifier → weight.
// A nil or empty inner map declares an isolated node.
type Adjacency[K comparable] map[K]map[K]float64

// Node is a single vertex: its identifier, its weighted adjacency and the
// mutable traversal state used by external algorithms.
type Node[K comparable] struct {
	id K

	// neighbor → weight, in the order neighbors were first added.
	adjacent *orderedmap.OrderedMap[*Node[K], float64]

	// Traversal state.
	distance float64
	visited  bool
	previous *Node[K] // non-owning; nil when absent
}

// newNode allocates a node with the default traversal state.
func newNode[K comparable](id K) *Node[K] {
	return &Node[K]{
		id:       id,
		adjacent: orderedmap.New[*Node[K], float64](),
		distance: Infinity,
	}
}

// Graph owns a set of Nodes keyed by identifier.
//
// numNodes counts registrations and always equals the catalog size.
// previous is a scratch slot for traversal code; the graph never reads it.
type Graph[K comparable] struct {
	nodes    *orderedmap.OrderedMap[K, *Node[K]]
	numNodes int
	previous *Node[K]

	strict bool // AddNode on an existing id returns ErrDuplicateNode
	log    *slog.Logger
}

// GraphOption configures a Graph before creation.
type GraphOption func(*graphConfig)

// graphConfig is the resolved set of options for one Graph.
type graphConfig struct {
	strict bool
	logger *slog.Logger
}

// WithStrictNodes makes AddNode report ErrDuplicateNode for identifiers that
// already exist. Without it AddNode returns the existing node and a nil error.
func WithStrictNodes() GraphOption {
	return func(c *graphConfig) { c.strict = true }
}

// WithLogger sets the logger used for debug records on node creation and
// duplicate rejection. Panics on nil.
func WithLogger(l *slog.Logger) GraphOption {
	if l == nil {
		panic("core: WithLogger(nil)")
	}
	return func(c *graphConfig) { c.logger = l }
}

// newGraphConfig applies opts in order over a lenient, silent default.
func newGraphConfig(opts ...GraphOption) graphConfig {
	cfg := graphConfig{logger: discardLogger()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
