// SPDX-License-Identifier: MIT

package iterable

// Pointer walks a nil-terminated sequence of references. It consults no
// length: the caller guarantees a nil terminator follows the last element.
//
// Pointer is meant for raw, caller-controlled buffers only. If the
// terminator is missing, traversal stops at the end of refs rather than
// reading past it.
type Pointer[T any] struct {
	refs []*T
	pos  int
}

// NewPointer returns a cursor positioned at refs[0].
func NewPointer[T any](refs []*T) Pointer[T] {
	return Pointer[T]{refs: refs}
}

// Terminated builds a nil-terminated reference buffer over data, suitable
// for NewPointer. The references alias data; nothing is copied.
func Terminated[T any](data []T) []*T {
	refs := make([]*T, len(data)+1)
	for i := range data {
		refs[i] = &data[i]
	}

	return refs
}

// HasNext reports whether the current reference is non-nil.
func (p Pointer[T]) HasNext() bool {
	return p.pos < len(p.refs) && p.refs[p.pos] != nil
}

// Peek dereferences the current reference, or returns the zero value at the
// terminator.
func (p Pointer[T]) Peek() T {
	if !p.HasNext() {
		var zero T
		return zero
	}

	return *p.refs[p.pos]
}

// Next moves to the following reference. At the terminator it is a no-op.
func (p Pointer[T]) Next() Iterable[T] {
	return p.Advance()
}

// Advance is Next with the concrete type preserved.
func (p Pointer[T]) Advance() Pointer[T] {
	if p.HasNext() {
		p.pos++
	}

	return p
}

// Equal reports whether p and o refer to the same reference slot.
func (p Pointer[T]) Equal(o Pointer[T]) bool {
	return sameBacking(p.refs, o.refs) && p.pos == o.pos
}
