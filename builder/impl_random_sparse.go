// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); p ∈ [0,1] (else ErrInvalidProbability).
//   - cfg.rng is required when 0 < p < 1 (else ErrNeedRandSource);
//     p == 0 and p == 1 are deterministic without it.
//   - Trials run over unordered pairs i<j in lexicographic order; one draw
//     per pair, then one weight draw per accepted pair. No self-loops.
//
// Complexity:
//   - Time: O(n) vertices + O(n²) trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

const methodRandomSparse = "RandomSparse"

// RandomSparse returns a Constructor that samples an Erdős–Rényi G(n,p) graph.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minSparseNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minSparseNodes, ErrTooFewVertices)
		}
		// Written as a negated range so NaN is rejected too.
		if !(p >= probMin && p <= probMax) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids := addRange(g, cfg, 0, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if accept(cfg, p) {
					connect(g, cfg, ids[i], ids[j])
				}
			}
		}

		return nil
	}
}

// accept runs one Bernoulli trial. p of exactly 0 or 1 never consumes the RNG.
func accept(cfg builderConfig, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	}
	return cfg.rng.Float64() < p
}
