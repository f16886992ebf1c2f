// SPDX-License-Identifier: MIT

// Package adjspec decodes adjacency specifications written as YAML or JSON
// documents and turns them into core graphs.
//
// A document is a mapping from node identifier to a mapping of neighbor
// identifier to weight:
//
//	A: {B: 1, C: 4}
//	B: {C: 2}
//	D: ~          # isolated node
//	E: {F: ~}     # weight defaults to 0
//
// JSON documents are accepted as the YAML subset they are. Document order is
// preserved, so Spec.Graph registers nodes in the order they are first
// mentioned.
//
// Anything else (a sequence where a mapping is expected, a non-numeric or NaN
// weight, an empty or duplicate key) is rejected with ErrMalformed and the
// line and column of the offending node; no partial Spec is returned.
package adjspec
