// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_wheel.go — implementation of Wheel(n) constructor.
//
// Contract:
//   - n ≥ 3 rim vertices (else ErrTooFewVertices).
//   - Builds the rim exactly like Cycle(n) (IDs cfg.idFn(0..n-1)), then adds
//     the hub CenterVertexID and spokes Center—rim[i] in index order.
//
// Complexity:
//   - Time: O(n) vertices + O(2n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

const methodWheel = "Wheel"

// Wheel returns a Constructor that builds a ring of n vertices plus a hub
// connected to every rim vertex (n+1 vertices, 2n edges).
func Wheel(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minWheelRim {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelRim, ErrTooFewVertices)
		}

		if err := Cycle(n)(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodWheel, err)
		}
		g.Ensure(CenterVertexID)
		for i := 0; i < n; i++ {
			connect(g, cfg, CenterVertexID, cfg.idFn(i))
		}

		return nil
	}
}
