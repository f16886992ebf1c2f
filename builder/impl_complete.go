// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices). K_1 is a single isolated vertex.
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits every unordered pair once, i<j, in lexicographic (i,j) order.
//
// Complexity:
//   - Time: O(n) vertices + O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

const methodComplete = "Complete"

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minCompleteN {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteN, ErrTooFewVertices)
		}

		ids := addRange(g, cfg, 0, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				connect(g, cfg, ids[i], ids[j])
			}
		}

		return nil
	}
}
