// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nev

import (
	"iter"
	"slices"
)

// Values returns an iterator over the elements in positional order.
//
// Example:
//
//	for v := range ne.Values() {
//	    process(v)
//	}
func (n *NonEmpty[T]) Values() iter.Seq[T] {
	return slices.Values(n.elems)
}

// All returns an iterator over index-element pairs in positional order.
func (n *NonEmpty[T]) All() iter.Seq2[int, T] {
	return slices.All(n.elems)
}

// Backward returns an iterator over index-element pairs in reverse
// positional order, from Len()-1 down to 0.
func (n *NonEmpty[T]) Backward() iter.Seq2[int, T] {
	return slices.Backward(n.elems)
}
