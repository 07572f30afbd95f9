// SPDX-License-Identifier: MIT

package binomial

import "math"

// ApproxMass approximates Mass(n, k) for large n by the De Moivre–Laplace
// limit of the standardized walk (2k − n)/√n:
//
//	x      = (2k − n) / √n
//	approx = exp(−x²/2) · 2 / √(2πn)
//
// The factor 2 is the lattice spacing in walk units. The result is a local
// density and is not renormalized: Σ_k ApproxMass(n, k) is only close to 1.
// Use Mass when exact normalization matters.
//
// Errors: ErrDomain if n == 0 or the coordinate is invalid.
// Complexity: O(1).
func ApproxMass(n, k int) (float64, error) {
	if err := (Node{N: n, K: k}).Validate(); err != nil {
		return 0, binomialErrorf(opApproxMass, err)
	}
	if n == 0 {
		return 0, binomialErrorf(opApproxMass, ErrDomain)
	}

	fn := float64(n)
	x := float64(2*k-n) / math.Sqrt(fn)

	return math.Exp(-x*x/2) * 2 / math.Sqrt(2*math.Pi*fn), nil
}

// MassOrApprox returns ApproxMass(n, k) once n >= threshold (threshold > 0)
// and Mass(n, k) otherwise.
func MassOrApprox(n, k, threshold int) (float64, error) {
	if threshold > 0 && n >= threshold {
		return ApproxMass(n, k)
	}

	return Mass(n, k)
}
