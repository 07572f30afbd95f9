// SPDX-License-Identifier: MIT

package iterable

import "fmt"

// Counted walks data from a position while a remaining count is positive.
// It is always safe given a count that does not exceed the backing data.
type Counted[T any] struct {
	data []T // backing storage, never copied
	pos  int // index of the current element
	n    int // elements remaining, including the current one
}

// NewCounted returns a cursor over the first n elements of data.
// Panics if n < 0 or n > len(data): the count is a programmer-supplied bound.
// Complexity: O(1).
func NewCounted[T any](data []T, n int) Counted[T] {
	if n < 0 || n > len(data) {
		panic(fmt.Sprintf("iterable: NewCounted(len=%d, n=%d)", len(data), n))
	}

	return Counted[T]{data: data, n: n}
}

// FromSlice returns a Counted cursor over all of data.
func FromSlice[T any](data []T) Counted[T] {
	return Counted[T]{data: data, n: len(data)}
}

// HasNext reports whether elements remain.
func (c Counted[T]) HasNext() bool {
	return c.n > 0
}

// Peek returns the current element, or the zero value once exhausted.
func (c Counted[T]) Peek() T {
	if c.n <= 0 {
		var zero T
		return zero
	}

	return c.data[c.pos]
}

// Next moves one element forward and decrements the remaining count.
func (c Counted[T]) Next() Iterable[T] {
	return c.Advance()
}

// Advance is Next with the concrete type preserved.
func (c Counted[T]) Advance() Counted[T] {
	if c.n > 0 {
		c.pos++
		c.n--
	}

	return c
}

// Remaining returns the number of elements left.
func (c Counted[T]) Remaining() int {
	return c.n
}

// Equal reports whether c and o share backing storage, position and count.
func (c Counted[T]) Equal(o Counted[T]) bool {
	return sameBacking(c.data, o.data) && c.pos == o.pos && c.n == o.n
}
