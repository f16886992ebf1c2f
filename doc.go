// Package lvroute is an in-memory routing graph: undirected, weighted,
// keyed by any comparable identifier, with per-node traversal state that an
// external shortest-path routine can drive directly.
//
// What's inside:
//
//	core/     — Node and Graph: build from an adjacency map, lookups, symmetric
//	            edges, insertion-ordered iteration, distance/visited/previous slots
//	adjspec/  — decode YAML or JSON adjacency documents (document order, line
//	            numbers, strict validation) into a core.Graph
//	builder/  — deterministic topology constructors: Path, Cycle, Star, Wheel,
//	            Complete, Grid, RandomSparse
//	examples/ — runnable walkthroughs
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	g := core.BuildSorted(core.Adjacency[string]{
//		"A": {"B": 1, "C": 1},
//		"D": {"B": 1, "C": 1},
//	})
//
// represents a square with four nodes and four edges.
//
// No algorithms ship here; lvroute is the substrate they run on.
//
//	go get github.com/katalvlaran/lvroute
package lvroute
