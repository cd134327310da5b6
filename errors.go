// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixreal

import "github.com/pkg/errors"

// Errors returned by this package. They are usually wrapped with additional
// context; use errors.Is to test for them.
var (
	// ErrInvalidWindow is returned when allocating a Real with max <= min.
	ErrInvalidWindow = errors.New("fixreal: invalid word window")
	// ErrWordCount is returned by Fill when the number of words does not
	// match the window size.
	ErrWordCount = errors.New("fixreal: word count does not match window")
	// ErrOutOfRange is returned when setting a word outside of a Real's window.
	ErrOutOfRange = errors.New("fixreal: word index out of range")
	// ErrCarryEscape is returned when a carry propagates past the most
	// significant word of a result. It indicates an under-allocated result
	// and should never happen.
	ErrCarryEscape = errors.New("fixreal: carry past the top of the result window")
	// ErrDivisionByZero is returned when dividing by a zero Word.
	ErrDivisionByZero = errors.New("fixreal: division by zero")
	// ErrSyntax is returned by Parse for malformed input.
	ErrSyntax = errors.New("fixreal: invalid syntax")
)
