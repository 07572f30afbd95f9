// SPDX-License-Identifier: MIT

package iterable

import "iter"

// Accumulate returns seed plus the sum of every element of s.
// An empty sequence returns seed unchanged.
//
// Complexity: O(len) time, O(1) extra space; runs as a loop, so sequence
// length never grows the call stack.
func Accumulate[T Number](s Iterable[T], seed T) T {
	for ; s.HasNext(); s = s.Next() {
		seed += s.Peek()
	}

	return seed
}

// Fold combines every element of s into acc from left to right.
func Fold[T, A any](s Iterable[T], acc A, fn func(A, T) A) A {
	for ; s.HasNext(); s = s.Next() {
		acc = fn(acc, s.Peek())
	}

	return acc
}

// Size returns the number of elements left in s.
func Size[T any](s Iterable[T]) int {
	n := 0
	for ; s.HasNext(); s = s.Next() {
		n++
	}

	return n
}

// Drop advances s at most n times, stopping early once s is exhausted.
// n <= 0 returns s unchanged.
func Drop[T any](n int, s Iterable[T]) Iterable[T] {
	for ; n > 0 && s.HasNext(); n-- {
		s = s.Next()
	}

	return s
}

// Collect materializes the remaining elements of s into a new slice.
// An empty sequence yields a nil slice.
func Collect[T any](s Iterable[T]) []T {
	var out []T
	for ; s.HasNext(); s = s.Next() {
		out = append(out, s.Peek())
	}

	return out
}

// Seq adapts s to iter.Seq so it can be ranged over. Every range loop
// restarts from s, since cursors are values.
func Seq[T any](s Iterable[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := s; c.HasNext(); c = c.Next() {
			if !yield(c.Peek()) {
				return
			}
		}
	}
}
