// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// helpers.go — shared emission helpers for constructors.

package builder

import (
	"github.com/katalvlaran/lvroute/core"
)

// Fixed IDs and minima shared across constructors.
const (
	// CenterVertexID is the hub of Star and Wheel.
	CenterVertexID = "Center"

	minPathNodes   = 2
	minCycleNodes  = 3
	minStarNodes   = 2
	minWheelRim    = 3
	minCompleteN   = 1
	minGridDim     = 1
	minSparseNodes = 1
	probMin        = 0.0
	probMax        = 1.0
)

// addRange registers cfg.idFn(i) for i in [from,to) in ascending order and
// returns the IDs.
func addRange(g *core.Graph[string], cfg builderConfig, from, to int) []string {
	ids := make([]string, 0, to-from)
	for i := from; i < to; i++ {
		id := cfg.idFn(i)
		g.Ensure(id)
		ids = append(ids, id)
	}
	return ids
}

// connect emits one edge with the next configured weight.
func connect(g *core.Graph[string], cfg builderConfig, u, v string) {
	g.AddEdge(u, v, cfg.weight())
}
