// SPDX-License-Identifier: MIT
// Package: binlat/binomial
//
// expectation.go - backward induction driven by a stopping time.
//
// Algorithm:
//
//	value(n, k) = f(n, k)                                 if tau(n, k)
//	            = (value(n+1, k) + value(n+1, k+1)) / 2   otherwise
//
// Up and down moves are equally likely, so the continuation value is the
// plain average of the two successors.
//
// Termination is the caller's contract: tau must fire on every path within
// finite depth. The recursion is bounded by WithMaxDepth (default 32 steps
// past the start) and reports ErrDepthExceeded instead of running forever.
//
// Complexity:
//   - plain:     O(2^d) payoff/predicate calls for stopping depth d
//   - WithMemo:  O(d²) calls, O(d²) memory

package binomial

import "errors"

// ConditionalExpectation returns the Valuer (n, k) ↦ E[f(τ) | walk at (n, k)],
// where τ is the first node reached from (n, k) at which tau holds.
//
// Errors (from the Valuer):
//   - ErrNilFunc       - tau or f is nil.
//   - ErrDomain        - (n, k) is not a lattice node.
//   - ErrDepthExceeded - tau did not fire within the configured depth.
func ConditionalExpectation(tau StoppingTime, f Payoff, opts ...Option) Valuer {
	cfg := newConfig(opts...)

	return func(n, k int) (float64, error) {
		if tau == nil || f == nil {
			return 0, binomialErrorf(opConditional, ErrNilFunc)
		}
		start := Node{N: n, K: k}
		if err := start.Validate(); err != nil {
			return 0, binomialErrorf(opConditional, err)
		}

		in := inductor{tau: tau, f: f, limit: n + cfg.maxDepth}
		if cfg.memo {
			in.memo = make(map[Node]float64)
		}

		v, err := in.value(start)
		if err != nil {
			if errors.Is(err, ErrDepthExceeded) {
				cfg.logger.Warn().
					Stringer("start", start).
					Int("maxDepth", cfg.maxDepth).
					Msg("binomial: stopping time did not fire within maximum depth")
			}
			return 0, binomialErrorf(opConditional, err)
		}

		cfg.logger.Debug().
			Stringer("start", start).
			Int("visits", in.visits).
			Int("memo", len(in.memo)).
			Float64("value", v).
			Msg("binomial: backward induction done")

		return v, nil
	}
}

// inductor holds the state of one backward-induction evaluation.
type inductor struct {
	tau    StoppingTime
	f      Payoff
	limit  int              // deepest depth allowed to continue from
	memo   map[Node]float64 // nil unless WithMemo
	visits int
}

// value evaluates a node, recursing into both successors until tau fires.
func (in *inductor) value(nd Node) (float64, error) {
	in.visits++
	if in.tau(nd.N, nd.K) {
		return in.f(nd.N, nd.K), nil
	}
	if nd.N >= in.limit {
		return 0, ErrDepthExceeded
	}
	if in.memo != nil {
		if v, ok := in.memo[nd]; ok {
			return v, nil
		}
	}

	down, err := in.value(nd.Down())
	if err != nil {
		return 0, err
	}
	up, err := in.value(nd.Up())
	if err != nil {
		return 0, err
	}

	v := (down + up) / 2
	if in.memo != nil {
		in.memo[nd] = v
	}

	return v, nil
}
