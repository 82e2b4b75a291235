// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nev

// NonEmpty is a contiguous sequence guaranteed to hold at least one element.
//
// All elements, including the first, live in a single backing slice. The
// memory layout is identical to an ordinary []T, so the sequence keeps the
// cache behavior of a plain slice and its storage can be handed to low-level
// or foreign code via Slice.
//
// The length invariant is upheld by construction: New, Wrap and CopyOf are
// the only ways to obtain a valid value, and every shrinking operation
// refuses to remove the final element.
//
// The zero value of NonEmpty is not valid. Use a constructor.
type NonEmpty[T any] struct {
	elems []T
}

// New creates a sequence from one or more elements.
//
// The signature requires the first element, so New cannot fail and has
// no error return. The arguments are copied into a fresh backing slice.
//
// Example:
//
//	ne := nev.New(1, 2, 3)
func New[T any](first T, rest ...T) *NonEmpty[T] {
	elems := make([]T, 0, 1+len(rest))
	elems = append(elems, first)
	elems = append(elems, rest...)
	return &NonEmpty[T]{elems: elems}
}

// Wrap creates a sequence that adopts s as its backing storage.
//
// No elements are copied and no allocation occurs: the returned sequence
// owns the same allocation s refers to. The caller transfers ownership
// and must not read or write through s afterwards.
//
// Returns ErrEmpty if s holds no elements. The caller's slice is
// untouched in that case.
func Wrap[T any](s []T) (*NonEmpty[T], error) {
	if len(s) == 0 {
		return nil, ErrEmpty
	}
	return &NonEmpty[T]{elems: s}, nil
}

// CopyOf creates a sequence holding a copy of the elements of s.
//
// s is only read during the call. The returned sequence owns a newly
// allocated backing slice sized exactly len(s), with element i of s
// copied to position i. Later changes to s do not affect the result.
//
// Returns ErrEmpty if s holds no elements.
func CopyOf[T any](s []T) (*NonEmpty[T], error) {
	if len(s) == 0 {
		return nil, ErrEmpty
	}
	elems := make([]T, len(s))
	copy(elems, s)
	return &NonEmpty[T]{elems: elems}, nil
}
