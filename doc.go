// Package binlat is a small numeric toolkit for the symmetric binomial
// lattice: exact and approximate node probabilities, backward-induction
// expectations, and the lazy cursors used to express them without building
// intermediate slices.
//
// 🚀 What is inside?
//
//	A pure-Go, synchronous library in two subpackages:
//		• iterable/ - value-typed cursors (Pointer, Counted, Span, Take) and
//		  generic algorithms (Accumulate, Fold, Size, Drop, Collect, Seq)
//		• binomial/ - Mass, ExactMass, ApproxMass, WalkValue, level cursors,
//		  ConditionalExpectation, fixed-horizon Expectation, Sweep, Price
//
// ✨ Why?
//
//   - Exact masses by recurrence: no factorials, no overflow
//   - Stopping-time valuation with a bounded, optionally memoized recursion
//   - O(N²) backward sweep with full or two-row storage
//   - Explicit errors (errors.Is on package sentinels), no hidden globals
//
// Quick example:
//
//	E := binomial.Expectation(10, func(k int) float64 { return float64(2*k - 10) })
//	v, _ := E(5, 3) // 1: the walk is a martingale
//
//	go get github.com/katalvlaran/binlat
package binlat
