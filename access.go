// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nev

import "slices"

// Len returns the number of elements. Always >= 1.
func (n *NonEmpty[T]) Len() int {
	return len(n.elems)
}

// Cap returns the capacity of the backing storage.
func (n *NonEmpty[T]) Cap() int {
	return cap(n.elems)
}

// First returns the element at position 0.
// Total: the length invariant guarantees the element exists.
func (n *NonEmpty[T]) First() T {
	return n.elems[0]
}

// Last returns the element at position Len()-1.
// Total: the length invariant guarantees the element exists.
func (n *NonEmpty[T]) Last() T {
	return n.elems[len(n.elems)-1]
}

// At returns the element at position i.
// Panics if i is out of range, like slice indexing.
func (n *NonEmpty[T]) At(i int) T {
	return n.elems[i]
}

// SetAt replaces the element at position i.
// Panics if i is out of range, like slice indexing.
func (n *NonEmpty[T]) SetAt(i int, v T) {
	n.elems[i] = v
}

// Slice returns the backing slice.
//
// The result is the sequence's own storage: a single contiguous block
// with the same layout as an ordinary []T, suitable for passing to code
// that expects a plain slice. Writes through the result are visible to
// the sequence. The sequence's length cannot change through the view,
// so the invariant is preserved.
func (n *NonEmpty[T]) Slice() []T {
	return n.elems
}

// Clone returns a new sequence with a freshly allocated copy of the
// elements. The clone and the original are fully independent.
func (n *NonEmpty[T]) Clone() *NonEmpty[T] {
	return &NonEmpty[T]{elems: slices.Clone(n.elems)}
}
