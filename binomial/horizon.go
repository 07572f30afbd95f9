// SPDX-License-Identifier: MIT
// Package: binlat/binomial
//
// horizon.go - expectations at a fixed horizon N.
//
// When the stopping time is "depth equals N", the doubling recursion
// collapses into one weighted sum over the reachable terminal levels:
//
//	E[f(K_N) | (n, k)] = Σ_{j=0}^{N-n} f(k+j) · mass(N-n, j)
//
// Expectation evaluates that sum per node in O(N-n). Sweep instead runs the
// backward recursion iteratively from the horizon inward, once for every
// node, in the style of a DP table:
//
//	V[N][i] = f(i)
//	V[n][k] = (V[n+1][k] + V[n+1][k+1]) / 2
//
// Memory modes (see MemoryMode):
//   - FullLattice - all rows kept, O(N²) memory, Lattice.At for any node.
//   - TwoRows     - two rolling rows, O(N) memory, root value only.

package binomial

import (
	"fmt"

	"github.com/katalvlaran/binlat/iterable"
)

// Expectation returns the Valuer (n, k) ↦ E[f(K_N) | walk at (n, k)] for the
// fixed horizon N. With WithApproxThreshold, transition weights switch to
// ApproxMass once N−n reaches the threshold.
//
// Errors (from the Valuer):
//   - ErrNilFunc - f is nil.
//   - ErrDomain  - (n, k) is not a node, or n > N.
func Expectation(N int, f LevelPayoff, opts ...Option) Valuer {
	cfg := newConfig(opts...)

	return func(n, k int) (float64, error) {
		if f == nil {
			return 0, binomialErrorf(opExpectation, ErrNilFunc)
		}
		if err := (Node{N: n, K: k}).Validate(); err != nil {
			return 0, binomialErrorf(opExpectation, err)
		}
		if n > N {
			return 0, binomialErrorf(opExpectation, fmt.Errorf("%w: depth %d past horizon %d", ErrDomain, n, N))
		}

		steps := N - n
		if cfg.approxThreshold > 0 && steps >= cfg.approxThreshold {
			var e float64
			for j := 0; j <= steps; j++ {
				w, err := ApproxMass(steps, j)
				if err != nil {
					return 0, binomialErrorf(opExpectation, err)
				}
				e += f(k+j) * w
			}
			return e, nil
		}

		// Exact weights: walk the level cursor of the remaining sub-lattice.
		var e float64
		for lv := NewLevels(steps); lv.HasNext(); lv = lv.Advance() {
			e += f(k+lv.Node().K) * lv.Peek()
		}

		return e, nil
	}
}

// Lattice holds the result of Sweep.
type Lattice struct {
	horizon int
	mode    MemoryMode
	rows    [][]float64 // rows[n][k]; nil in TwoRows mode
	root    float64
}

// Sweep values every node of the lattice up to horizon N by backward
// induction from the terminal payoffs f(0..N).
//
// Errors:
//   - ErrNilFunc - f is nil.
//   - ErrDomain  - N < 0.
//
// Complexity: O(N²) time; O(N²) memory (FullLattice) or O(N) (TwoRows).
func Sweep(N int, f LevelPayoff, opts ...Option) (*Lattice, error) {
	if f == nil {
		return nil, binomialErrorf(opSweep, ErrNilFunc)
	}
	if N < 0 {
		return nil, binomialErrorf(opSweep, fmt.Errorf("%w: horizon %d", ErrDomain, N))
	}
	cfg := newConfig(opts...)

	terminal := make([]float64, N+1)
	for i := range terminal {
		terminal[i] = f(i)
	}

	lat := &Lattice{horizon: N, mode: cfg.memoryMode}
	if cfg.memoryMode == FullLattice {
		lat.rows = make([][]float64, N+1)
		lat.rows[N] = terminal
		for n := N - 1; n >= 0; n-- {
			lat.rows[n] = induceRow(lat.rows[n+1], make([]float64, n+1))
		}
		lat.root = lat.rows[0][0]
	} else {
		prev, curr := terminal, make([]float64, N+1)
		for n := N - 1; n >= 0; n-- {
			induceRow(prev, curr[:n+1])
			prev, curr = curr[:n+1], prev[:cap(prev)]
		}
		lat.root = prev[0]
	}

	cfg.logger.Debug().
		Int("horizon", N).
		Stringer("mode", cfg.memoryMode).
		Float64("root", lat.root).
		Msg("binomial: sweep done")

	return lat, nil
}

// induceRow fills dst[k] = (next[k] + next[k+1]) / 2 for every k in dst.
// len(next) must be len(dst)+1.
func induceRow(next, dst []float64) []float64 {
	for k := range dst {
		dst[k] = (next[k] + next[k+1]) / 2
	}

	return dst
}

// Horizon returns N.
func (l *Lattice) Horizon() int {
	return l.horizon
}

// Mode returns the memory mode the lattice was swept with.
func (l *Lattice) Mode() MemoryMode {
	return l.mode
}

// Root returns the value at (0, 0).
func (l *Lattice) Root() float64 {
	return l.root
}

// At returns the value at node (n, k).
//
// Errors:
//   - ErrMemoryMode - the lattice was swept in TwoRows mode.
//   - ErrDomain     - (n, k) is not a node or n > horizon.
func (l *Lattice) At(n, k int) (float64, error) {
	if l.mode != FullLattice {
		return 0, binomialErrorf(opLatticeAt, ErrMemoryMode)
	}
	if err := (Node{N: n, K: k}).Validate(); err != nil || n > l.horizon {
		return 0, binomialErrorf(opLatticeAt, fmt.Errorf("%w: (n=%d, k=%d) horizon %d", ErrDomain, n, k, l.horizon))
	}

	return l.rows[n][k], nil
}

// Row returns a cursor over the values at depth n, k = 0..n.
// The cursor views the lattice storage directly.
func (l *Lattice) Row(n int) (iterable.Counted[float64], error) {
	if l.mode != FullLattice {
		return iterable.Counted[float64]{}, binomialErrorf(opLatticeAt, ErrMemoryMode)
	}
	if n < 0 || n > l.horizon {
		return iterable.Counted[float64]{}, binomialErrorf(opLatticeAt, fmt.Errorf("%w: depth %d horizon %d", ErrDomain, n, l.horizon))
	}

	return iterable.FromSlice(l.rows[n]), nil
}

// Valuer exposes the lattice as a Valuer backed by At.
func (l *Lattice) Valuer() Valuer {
	return l.At
}
