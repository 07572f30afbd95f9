// SPDX-License-Identifier: MIT

// Package iterable provides lazy, single-pass cursors with an explicit
// liveness test, plus the generic algorithms that run on any of them.
//
// 🚀 What is a cursor?
//
//	A cursor is a forward-only, non-owning view over caller storage that
//	answers three questions:
//	  • HasNext - is the current element valid?
//	  • Peek    - what is the current element? (no advance)
//	  • Next    - where is the successor position?
//
//	Cursors are values. Next returns the successor and leaves the receiver
//	untouched, so a cursor can be copied, replayed and wrapped freely.
//	Calling Next on an exhausted cursor returns an equal exhausted cursor;
//	saturation is never an error.
//
// ✨ Cursors:
//   - Pointer - walks a nil-terminated []*T until the terminator.
//   - Counted - position plus a remaining count.
//   - Span    - begin/end positions; stops exactly at end.
//   - Taken   - an independent count bound layered over any cursor (Take).
//
// ⚙️ Algorithms:
//
//	Accumulate(s, seed) - seed + Σ elements (loop, no call-depth growth)
//	Fold(s, seed, fn)   - general left fold
//	Size(s)             - number of elements
//	Drop(n, s)          - skip at most n elements
//	Take(n, s)          - view of at most n elements
//	Collect(s)          - materialize into a slice
//	Seq(s)              - adapt to iter.Seq for range-over-func
//
// Usage:
//
//	prices := []float64{101.5, 99.25, 100.75}
//	total := iterable.Accumulate(iterable.FromSlice(prices), 0.0) // 301.5
//	first2 := iterable.Collect(iterable.Take(2, iterable.FromSlice(prices)))
//
// Concurrency: cursors never copy backing storage. Mutating the storage
// while a cursor walks it is the caller's responsibility to exclude.
package iterable
