// SPDX-License-Identifier: MIT
// Package: binlat/binomial
//
// mass.go - exact node probabilities of the symmetric lattice.
//
// The mass of (n, k) is C(n,k) / 2^n. It is always produced by chaining
// from k = 0:
//
//	m(n, 0) = 2^-n
//	m(n, k) = m(n, k-1) · (n-k+1) / k
//
// The chain carries its binary exponent separately (mantissa in [0.5, 1)),
// so neither C(n,k) nor 2^-n is ever formed on its own: no factorials, no
// overflow, and the 2^-n normalization is exact at the boundaries.

package binomial

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/binlat/iterable"
)

// chain is the running state of the multiplicative recurrence at level k.
// Its value is frac · 2^exp.
type chain struct {
	n, k int
	frac float64
	exp  int
}

// newChain starts the recurrence at (n, 0).
func newChain(n int) chain {
	return chain{n: n, frac: 1, exp: -n}
}

// step advances the recurrence from level k to k+1.
func (c *chain) step() {
	c.k++
	f, e := math.Frexp(c.frac * float64(c.n-c.k+1) / float64(c.k))
	c.frac = f
	c.exp += e
}

// value returns m(n, k).
func (c chain) value() float64 {
	return math.Ldexp(c.frac, c.exp)
}

// Mass returns the probability that a symmetric walk of n steps ends at
// level k: C(n,k) / 2^n.
//
// Errors: ErrDomain unless 0 <= k <= n.
// Complexity: O(k) time, O(1) space.
func Mass(n, k int) (float64, error) {
	if err := (Node{N: n, K: k}).Validate(); err != nil {
		return 0, binomialErrorf(opMass, err)
	}

	c := newChain(n)
	for c.k < k {
		c.step()
	}

	return c.value(), nil
}

// ExactMass returns C(n,k) / 2^n in exact decimal arithmetic. 2^-n = 5^n·10^-n
// is a finite decimal, so no rounding occurs.
//
// Errors: ErrDomain unless 0 <= k <= n.
// Complexity: O(n) big-number multiplications.
func ExactMass(n, k int) (decimal.Decimal, error) {
	if err := (Node{N: n, K: k}).Validate(); err != nil {
		return decimal.Zero, binomialErrorf(opExactMass, err)
	}

	// C(n,j) = C(n,j-1)·(n-j+1)/j is an integer at every step, so Div is exact.
	binom := decimal.NewFromInt(1)
	for j := 1; j <= k; j++ {
		binom = binom.Mul(decimal.NewFromInt(int64(n - j + 1))).Div(decimal.NewFromInt(int64(j)))
	}

	five := decimal.NewFromInt(5)
	scale := decimal.NewFromInt(1)
	for j := 0; j < n; j++ {
		scale = scale.Mul(five)
	}

	return binom.Mul(scale).Shift(-int32(n)), nil
}

// WalkValue maps (n, k) to the centered walk value 2k − n, an integer in
// [-n, n] with the parity of n.
//
// Errors: ErrDomain unless 0 <= k <= n.
func WalkValue(n, k int) (float64, error) {
	nd := Node{N: n, K: k}
	if err := nd.Validate(); err != nil {
		return 0, binomialErrorf(opWalkValue, err)
	}

	return float64(nd.Walk()), nil
}

// Levels is a cursor over mass(n, 0), mass(n, 1), ..., mass(n, n).
// Each step extends the recurrence by one factor.
type Levels struct {
	c    chain
	done bool
}

// NewLevels returns the level cursor for depth n. A negative n yields an
// exhausted cursor.
func NewLevels(n int) Levels {
	return Levels{c: newChain(n), done: n < 0}
}

// HasNext reports whether a level remains.
func (l Levels) HasNext() bool {
	return !l.done
}

// Peek returns the mass of the current level, or 0 once exhausted.
func (l Levels) Peek() float64 {
	if l.done {
		return 0
	}

	return l.c.value()
}

// Next moves to the next level; past k == n the cursor is exhausted.
func (l Levels) Next() iterable.Iterable[float64] {
	return l.Advance()
}

// Advance is Next with the concrete type preserved.
func (l Levels) Advance() Levels {
	switch {
	case l.done:
	case l.c.k == l.c.n:
		l.done = true
	default:
		l.c.step()
	}

	return l
}

// Node returns the current coordinate.
func (l Levels) Node() Node {
	return Node{N: l.c.n, K: l.c.k}
}

// TotalMass sums mass(n, k) over all levels. It equals 1 up to rounding and
// serves as the exactness check of the recurrence.
//
// Errors: ErrDomain if n < 0.
func TotalMass(n int) (float64, error) {
	if n < 0 {
		return 0, binomialErrorf(opTotalMass, (Node{N: n}).Validate())
	}

	return iterable.Accumulate[float64](NewLevels(n), 0), nil
}
