// SPDX-License-Identifier: MIT

// Package binomial values payoffs on the symmetric binomial lattice, the
// discrete-time, discrete-space model behind random-walk and option-style
// valuation.
//
// 🚀 The lattice
//
//	A node (n, k) is reached after n steps, k of them up. Each step goes up
//	or down with probability ½. The centered walk value is 2k − n.
//
//	        (2,2)
//	       /
//	   (1,1)
//	  /    \
//	(0,0)   (2,1)
//	  \    /
//	   (1,0)
//	       \
//	        (2,0)
//
// ✨ What is inside:
//   - Mass(n, k)        - exact C(n,k)/2^n by a multiplicative recurrence
//   - ExactMass(n, k)   - the same, exact, as a decimal
//   - ApproxMass(n, k)  - De Moivre–Laplace normal approximation
//   - WalkValue(n, k)   - 2k − n
//   - NewLevels(n)      - cursor over mass(n, 0..n) (see package iterable)
//   - ConditionalExpectation(tau, f) - backward induction to a stopping time
//   - Expectation(N, f) - fixed-horizon expectation as one weighted sum
//   - Sweep(N, f)       - iterative backward induction over every node
//   - Price(v, n, k, p) - decimal output for money-facing callers
//
// ⚙️ Usage:
//
//	// Probability the walk is back at 0 after 10 steps.
//	p, err := binomial.Mass(10, 5)
//
//	// Value of a call struck at 0 on the walk, stopped at depth 8.
//	call := binomial.ConditionalExpectation(
//		binomial.AtHorizon(8),
//		func(n, k int) float64 { return math.Max(float64(2*k-n), 0) },
//		binomial.WithMemo(),
//	)
//	v, err := call(0, 0)
//
// Errors: coordinates outside 0 <= k <= n return ErrDomain; a stopping time
// that does not fire within WithMaxDepth returns ErrDepthExceeded.
//
// Everything is synchronous and pure given pure payoffs and predicates.
package binomial
