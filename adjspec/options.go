// SPDX-License-Identifier: MIT
//
// options.go - functional options for Decode.
//
// Contract:
//   - Option constructors panic on meaningless inputs; Decode itself never panics.
//   - Options apply left to right, later ones win.

package adjspec

import (
	"io"
	"log/slog"
)

// Option customizes decoding.
type Option func(*config)

type config struct {
	logger   *slog.Logger
	maxNodes int // 0 means unlimited
}

// WithLogger sets the logger used for the debug summary of each decode.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("adjspec: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithMaxNodes bounds the number of distinct identifiers a document may
// mention. Decoding fails with ErrTooManyNodes past the limit.
// Panics if n < 1.
func WithMaxNodes(n int) Option {
	if n < 1 {
		panic("adjspec: WithMaxNodes(n<1)")
	}
	return func(c *config) { c.maxNodes = n }
}

func newConfig(opts ...Option) config {
	cfg := config{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
