// SPDX-License-Identifier: MIT

package iterable

// Taken bounds another cursor by an independent remaining count.
// It never shortens or mutates the source, so any number of Taken views
// can share one source safely.
type Taken[T any] struct {
	src Iterable[T]
	n   int
}

// Take returns a view of at most n elements of s. n <= 0 yields an empty view.
// Complexity: O(1).
func Take[T any](n int, s Iterable[T]) Taken[T] {
	if n < 0 {
		n = 0
	}

	return Taken[T]{src: s, n: n}
}

// HasNext reports n > 0 && source.HasNext().
func (t Taken[T]) HasNext() bool {
	return t.n > 0 && t.src.HasNext()
}

// Peek returns the source's current element, or the zero value once the
// bound is reached.
func (t Taken[T]) Peek() T {
	if t.n <= 0 {
		var zero T
		return zero
	}

	return t.src.Peek()
}

// Next advances the source and decrements the bound.
func (t Taken[T]) Next() Iterable[T] {
	if !t.HasNext() {
		return t
	}

	return Taken[T]{src: t.src.Next(), n: t.n - 1}
}

// Remaining returns the bound still available to this view.
func (t Taken[T]) Remaining() int {
	return t.n
}
