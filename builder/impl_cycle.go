// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges in stable order i—(i+1)%n for i=0..n-1.
//
// Complexity:
//   - Time: O(n) vertices + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

const methodCycle = "Cycle"

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		ids := addRange(g, cfg, 0, n)
		// i == n-1 closes the ring back to 0.
		for i := 0; i < n; i++ {
			connect(g, cfg, ids[i], ids[(i+1)%n])
		}

		return nil
	}
}
