// SPDX-License-Identifier: MIT
// Package: binlat/binomial
//
// options.go - functional options for expectation constructors and Sweep.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors validate and PANIC on meaningless inputs; the
//     algorithms themselves return errors and never panic.
//   • Later options override earlier ones.

package binomial

import "github.com/rs/zerolog"

// Option customizes an expectation or sweep by mutating a config before use.
type Option func(*config)

// WithMaxDepth bounds how many steps backward induction may walk beyond the
// starting depth before giving up with ErrDepthExceeded.
// Panics if d < 0.
func WithMaxDepth(d int) Option {
	if d < 0 {
		panic("binomial: WithMaxDepth(d<0)")
	}
	return func(c *config) {
		c.maxDepth = d
	}
}

// WithMemo caches node values for the duration of one evaluation, so shared
// subnodes of the recursion are computed once.
func WithMemo() Option {
	return func(c *config) {
		c.memo = true
	}
}

// WithApproxThreshold switches the fixed-horizon transition weights to the
// normal approximation once the remaining steps reach threshold.
// threshold = 0 keeps exact weights everywhere. Panics if threshold < 0.
func WithApproxThreshold(threshold int) Option {
	if threshold < 0 {
		panic("binomial: WithApproxThreshold(threshold<0)")
	}
	return func(c *config) {
		c.approxThreshold = threshold
	}
}

// WithMemoryMode selects how Sweep stores the lattice.
// Panics on an unknown mode.
func WithMemoryMode(m MemoryMode) Option {
	if m != FullLattice && m != TwoRows {
		panic("binomial: WithMemoryMode(unknown)")
	}
	return func(c *config) {
		c.memoryMode = m
	}
}

// WithLogger attaches a zerolog logger for engine diagnostics.
// The default logger discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}
