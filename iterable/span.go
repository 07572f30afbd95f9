// SPDX-License-Identifier: MIT

package iterable

import "fmt"

// Span walks data[begin:end]. Equality of begin with end is the only
// termination condition, so a Span never overruns its bound.
type Span[T any] struct {
	data  []T
	begin int
	end   int
}

// NewSpan returns a cursor over data[begin:end].
// Panics unless 0 <= begin <= end <= len(data).
// Complexity: O(1).
func NewSpan[T any](data []T, begin, end int) Span[T] {
	if begin < 0 || begin > end || end > len(data) {
		panic(fmt.Sprintf("iterable: NewSpan(len=%d, begin=%d, end=%d)", len(data), begin, end))
	}

	return Span[T]{data: data, begin: begin, end: end}
}

// HasNext reports whether begin has not reached end.
func (s Span[T]) HasNext() bool {
	return s.begin != s.end
}

// Peek returns data[begin], or the zero value once exhausted.
func (s Span[T]) Peek() T {
	if s.begin == s.end {
		var zero T
		return zero
	}

	return s.data[s.begin]
}

// Next moves begin one step toward end.
func (s Span[T]) Next() Iterable[T] {
	return s.Advance()
}

// Advance is Next with the concrete type preserved.
func (s Span[T]) Advance() Span[T] {
	if s.begin != s.end {
		s.begin++
	}

	return s
}

// Bounds returns the current begin and end positions.
func (s Span[T]) Bounds() (begin, end int) {
	return s.begin, s.end
}

// Equal reports whether s and o share backing storage and both bounds.
func (s Span[T]) Equal(o Span[T]) bool {
	return sameBacking(s.data, o.data) && s.begin == o.begin && s.end == o.end
}
