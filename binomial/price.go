// SPDX-License-Identifier: MIT

package binomial

import (
	"math"

	"github.com/shopspring/decimal"
)

// Price evaluates v at (n, k) and returns the value as a decimal rounded
// half away from zero to the given number of decimal places.
//
// Errors:
//   - ErrNilFunc   - v is nil.
//   - ErrNotFinite - v produced NaN or ±Inf.
//   - any error returned by v, wrapped.
func Price(v Valuer, n, k int, places int32) (decimal.Decimal, error) {
	if v == nil {
		return decimal.Zero, binomialErrorf(opPrice, ErrNilFunc)
	}

	x, err := v(n, k)
	if err != nil {
		return decimal.Zero, binomialErrorf(opPrice, err)
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return decimal.Zero, binomialErrorf(opPrice, ErrNotFinite)
	}

	return decimal.NewFromFloat(x).Round(places), nil
}
