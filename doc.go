// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package nev provides contiguous non-empty sequences.
//
// A [NonEmpty] holds at least one element at all times. Unlike the
// classic non-empty list representation that splits the first element
// from the rest (a head field plus a tail list), all elements live in a
// single backing slice. The layout is identical to an ordinary []T, so
// the sequence keeps slice-level cache behavior and its storage can be
// handed as-is to code that expects a plain contiguous block.
//
// # Quick Start
//
// Three constructors cover the common cases:
//
//	// At least one element required by the signature - cannot fail
//	ne := nev.New("a", "b", "c")
//
//	// Adopt an existing slice without copying
//	ne, err := nev.Wrap(items)
//	if nev.IsEmpty(err) {
//	    // items held no elements
//	}
//
//	// Copy elements out of a slice the caller keeps
//	ne, err := nev.CopyOf(view)
//
// # Ownership
//
// [Wrap] and [CopyOf] differ only in what happens to the input storage:
//
//	Wrap(s)   - adopts s; no copy, no allocation. The caller transfers
//	            ownership and must not use s afterwards.
//	CopyOf(s) - reads s during the call only; the result owns a fresh
//	            allocation and is independent of s.
//
// Each sequence exclusively owns its backing slice. Two sequences never
// share storage, and a sequence built by CopyOf shares nothing with its
// source.
//
// # Error Handling
//
// The package has exactly one failure condition: a sequence would be
// empty. Constructors report it for zero-length inputs, and shrinking
// operations (Pop, Remove, Truncate) report it instead of removing the
// final element. The condition is modeled as the sentinel [ErrEmpty],
// a recoverable control flow signal rather than a panic:
//
//	ne, err := nev.Wrap(batch)
//	if nev.IsEmpty(err) {
//	    return // nothing to do for an empty batch
//	}
//
// Out-of-range indices are caller bugs and panic, the same way slice
// indexing does.
//
// # Mutation
//
// Growing operations (Push, Append, Insert) never fail. Shrinking
// operations uphold the length invariant by refusing to remove the last
// remaining element:
//
//	ne := nev.New(1, 2)
//	v, err := ne.Pop()       // v == 2
//	v, err = ne.Pop()        // err == ErrEmpty, ne still holds 1
//
// # Iteration
//
// Values, All and Backward return standard iterators:
//
//	for i, v := range ne.All() {
//	    fmt.Println(i, v)
//	}
//
// # Memory Layout
//
// Slice returns the backing storage itself: one contiguous block in
// ordinary []T layout, with length equal to Len. Consumers may rely on
// this for interop with APIs that take plain slices. Writes through the
// returned slice are visible to the sequence; its length cannot change
// through the view, so the invariant holds.
//
// # Thread Safety
//
// NonEmpty is not safe for concurrent use. No operation blocks or
// performs I/O; every call completes in time proportional to the number
// of elements it touches.
//
// # Zero Value
//
// The zero value of NonEmpty is invalid - it holds no elements. Values
// must come from New, Wrap, CopyOf or Clone.
package nev
