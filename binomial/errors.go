// SPDX-License-Identifier: MIT
// Package: binlat/binomial
//
// errors.go - sentinel errors for the binomial package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Operations attach context with binomialErrorf(op, err) → "op: <sentinel>".
//   • Invalid coordinates are reported, never clamped.
//   • Advancing an exhausted cursor or a saturated Node is not an error.

package binomial

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain indicates a coordinate outside the lattice (n < 0, k < 0,
	// k > n), a zero-depth normal approximation, or a start depth past the
	// fixed horizon.
	ErrDomain = errors.New("binomial: coordinate out of domain")

	// ErrDepthExceeded indicates backward induction walked past the configured
	// maximum depth without the stopping predicate firing.
	ErrDepthExceeded = errors.New("binomial: maximum induction depth exceeded")

	// ErrNilFunc indicates a nil payoff, stopping predicate or valuer.
	ErrNilFunc = errors.New("binomial: nil function")

	// ErrMemoryMode indicates a node lookup on a lattice swept in TwoRows mode.
	ErrMemoryMode = errors.New("binomial: node values require MemoryMode=FullLattice")

	// ErrNotFinite indicates a NaN or ±Inf value where a finite price is required.
	ErrNotFinite = errors.New("binomial: value is NaN or Inf")
)

// Operation names used as error context.
const (
	opMass        = "Mass"
	opExactMass   = "ExactMass"
	opWalkValue   = "WalkValue"
	opApproxMass  = "ApproxMass"
	opTotalMass   = "TotalMass"
	opConditional = "ConditionalExpectation"
	opExpectation = "Expectation"
	opSweep       = "Sweep"
	opLatticeAt   = "Lattice.At"
	opPrice       = "Price"
)

// binomialErrorf prefixes err with the operation name, keeping errors.Is intact.
func binomialErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
