// SPDX-License-Identifier: MIT
// Package: binlat/binomial
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   • maxDepth        = 32          (steps past the start before ErrDepthExceeded)
//   • memo            = false       (plain doubling recursion)
//   • approxThreshold = 0           (exact weights)
//   • memoryMode      = FullLattice
//   • logger          = zerolog.Nop()

package binomial

import "github.com/rs/zerolog"

// defaultMaxDepth bounds the unmemoized recursion at 2^32 leaf visits.
const defaultMaxDepth = 32

// config aggregates every knob of the package. Passed by value.
type config struct {
	maxDepth        int
	memo            bool
	approxThreshold int
	memoryMode      MemoryMode
	logger          zerolog.Logger
}

// newConfig applies opts in order over the defaults.
func newConfig(opts ...Option) config {
	c := config{
		maxDepth:   defaultMaxDepth,
		memoryMode: FullLattice,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
