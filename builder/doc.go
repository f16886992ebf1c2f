// SPDX-License-Identifier: MIT

// Package builder provides deterministic, functional-options style topology
// generators for core graphs. They produce fixtures for traversal code: paths,
// rings, hubs, dense cliques, grids and seeded random graphs.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:   create a graph, resolve options, run constructors in order.
//     – Apply:        run constructors against an existing graph.
//   - Constructors (Constructor closures):
//     – Path, Cycle, Star, Wheel, Complete, Grid, RandomSparse.
//   - Vertex-ID schemes (IDFn):
//     – DefaultIDFn:     decimal strings ("0","1",…).
//     – SymbolIDFn:      single letters ("A".."Z").
//     – ExcelColumnIDFn: spreadsheet columns ("A","Z","AA",…).
//   - Edge-weight distributions (WeightFn):
//     – DefaultWeightFn:  constant DefaultEdgeWeight.
//     – ConstantWeightFn: fixed user-provided value.
//     – UniformWeightFn:  uniform on [min,max).
//
// Guarantees:
//
//   - Same constructors, options and seed ⇒ identical graphs, including
//     node insertion order.
//   - Constructors validate parameters before touching the graph and return
//     sentinel errors; option constructors panic on meaningless inputs.
//   - Re-running a constructor on the same graph adds no nodes or edges, only
//     rewrites weights (core edges are idempotent).
package builder
