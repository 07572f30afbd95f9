// SPDX-License-Identifier: MIT

package iterable

import "golang.org/x/exp/constraints"

// Iterable is the cursor contract shared by every sequence in this package.
//
//   - HasNext reports whether Peek is valid.
//   - Peek returns the current element without advancing. On an exhausted
//     cursor it returns the zero value of T.
//   - Next returns the successor position. On an exhausted cursor it returns
//     an equal exhausted cursor.
type Iterable[T any] interface {
	HasNext() bool
	Peek() T
	Next() Iterable[T]
}

// Number is the element contract for Accumulate: real-valued or integral,
// with deterministic addition.
type Number interface {
	constraints.Integer | constraints.Float
}

// sameBacking reports whether a and b view the same backing array from the
// same start. Two empty views are considered the same.
func sameBacking[T any](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}

	return &a[0] == &b[0]
}
