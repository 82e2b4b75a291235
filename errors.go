// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nev

import "errors"

// ErrEmpty indicates a sequence would have no elements.
//
// For Wrap and CopyOf: the input holds zero elements, so there is no
// NonEmpty value that can represent it.
// For Pop, Remove and Truncate: completing the operation would leave
// the sequence empty.
//
// ErrEmpty is a control flow signal, not a failure. Whether an empty
// input is an application-level error is the caller's decision.
//
// Example:
//
//	ne, err := nev.Wrap(items)
//	if nev.IsEmpty(err) {
//	    // no items - fall back to defaults
//	}
var ErrEmpty = errors.New("nev: empty sequence")

// IsEmpty reports whether err indicates an empty sequence.
// Uses [errors.Is] for wrapped error support.
func IsEmpty(err error) bool {
	return errors.Is(err, ErrEmpty)
}
