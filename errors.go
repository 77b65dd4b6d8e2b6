// Copyright (c) 2022-present nxtlo. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the collections core.
//
// Expected failures ([ErrInvalidEncoding]) travel inside a [Result].
// Precondition violations ([ErrIndexOutOfBounds], [ErrInvalidArgument])
// indicate a caller bug and are raised as panics carrying these values,
// matchable with errors.Is after recover.
var (
	// ErrIndexOutOfBounds reports access or split beyond the valid range.
	ErrIndexOutOfBounds = errors.New("sain: index out of bounds")

	// ErrInvalidArgument reports a structurally invalid argument,
	// such as a zero chunk size.
	ErrInvalidArgument = errors.New("sain: invalid argument")

	// ErrInvalidEncoding reports a malformed byte sequence during
	// byte-to-text decoding.
	ErrInvalidEncoding = errors.New("sain: invalid utf-8 encoding")
)

// IndexError carries the offending index and the valid length of a failed
// bounds check. It wraps [ErrIndexOutOfBounds].
type IndexError struct {
	Index int
	Len   int
}

func (e IndexError) Error() string {
	return fmt.Sprintf("sain: index out of bounds: index %d, len %d", e.Index, e.Len)
}

func (e IndexError) Unwrap() error { return ErrIndexOutOfBounds }

// boundsCheck panics with an IndexError unless index < length.
func boundsCheck(index, length int) {
	if index < 0 || index >= length {
		panic(IndexError{Index: index, Len: length})
	}
}

// splitCheck panics with an IndexError unless mid <= length.
// Split points may equal the length, producing an empty right half.
func splitCheck(mid, length int) {
	if mid < 0 || mid > length {
		panic(IndexError{Index: mid, Len: length})
	}
}
