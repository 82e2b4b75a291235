// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nev

import "slices"

// Push appends one element to the end of the sequence.
func (n *NonEmpty[T]) Push(v T) {
	n.elems = append(n.elems, v)
}

// Append appends zero or more elements to the end of the sequence.
func (n *NonEmpty[T]) Append(vs ...T) {
	n.elems = append(n.elems, vs...)
}

// Insert inserts v at position i, shifting the elements at i and above
// one position up. i may equal Len(), which appends.
// Panics if i < 0 or i > Len().
func (n *NonEmpty[T]) Insert(i int, v T) {
	n.elems = slices.Insert(n.elems, i, v)
}

// Pop removes and returns the last element.
//
// Returns (zero-value, ErrEmpty) if the sequence holds a single element:
// the final element cannot be removed. The vacated slot is cleared so
// referenced objects can be collected.
func (n *NonEmpty[T]) Pop() (T, error) {
	last := len(n.elems) - 1
	if last == 0 {
		var zero T
		return zero, ErrEmpty
	}
	elem := n.elems[last]
	var zero T
	n.elems[last] = zero
	n.elems = n.elems[:last]
	return elem, nil
}

// Remove removes and returns the element at position i, shifting the
// elements above it one position down.
//
// Returns (zero-value, ErrEmpty) if the sequence holds a single element.
// Panics if i is out of range, like slice indexing.
func (n *NonEmpty[T]) Remove(i int) (T, error) {
	elem := n.elems[i]
	if len(n.elems) == 1 {
		var zero T
		return zero, ErrEmpty
	}
	// slices.Delete clears the vacated tail slot.
	n.elems = slices.Delete(n.elems, i, i+1)
	return elem, nil
}

// Truncate discards all but the first size elements.
//
// Returns ErrEmpty if size < 1. Panics if size > Len(). The discarded
// slots are cleared so referenced objects can be collected.
func (n *NonEmpty[T]) Truncate(size int) error {
	if size < 1 {
		return ErrEmpty
	}
	if size > len(n.elems) {
		panic("nev: truncation beyond sequence length")
	}
	clear(n.elems[size:])
	n.elems = n.elems[:size]
	return nil
}
