// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds the hub with fixed ID CenterVertexID first.
//   - Adds leaves via cfg.idFn for i = 1..n-1 in ascending order.
//   - Emits spokes Center—leaf[i] in increasing leaf index.
//
// Complexity:
//   - Time: O(n) vertices + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

const methodStar = "Star"

// Star returns a Constructor that builds a star with n vertices in total:
// one hub "Center" and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		g.Ensure(CenterVertexID)
		for _, leaf := range addRange(g, cfg, 1, n) {
			connect(g, cfg, CenterVertexID, leaf)
		}

		return nil
	}
}
