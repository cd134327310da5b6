// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fixreal implements arbitrary-precision signed fixed-point numbers in
// base 2**64.
//
// A Real stores its magnitude in a contiguous window [min, max) of 64 bits
// words, together with a separate sign. Word 0 is the units word; positive word
// indices are integer words and negative ones fractional words:
//
//	x := fixreal.MustFill(fixreal.Positive, -1, 1, []fixreal.Word{1 << 63, 1}) // 1.5
//
// Words outside of the window read as zero, so operands with different windows
// can be combined directly. Writing outside of the window fails with
// ErrOutOfRange: windows never grow implicitly.
//
// Arithmetic functions never modify their operands and always return a newly
// allocated Real:
//
//	func Add(x, y *Real) *Real
//	func Sub(x, y *Real) *Real
//	func Mul(x, y *Real) (*Real, error)
//	func Div(x *Real, d Word, ext int) (*Real, error)
//
// Multiplication and division accept a significance floor: a word index below
// which contributions are discarded. MulWithSig and DivWithSig take an absolute
// floor, while MulWithRelSig and DivWithRelSig keep a given number of words
// below the most significant one. This bounds the cost of iterative algorithms
// where only a fixed number of significant words matter; see package
// github.com/db47h/fixreal/math for a Newton's method computation of π.
//
// Results are not normalized. TrimZeros and its one-sided variants discard
// redundant zero words, and turn any zero into the canonical zero: positive,
// with window [0, 1).
//
// Division is by a single Word only. Reals convert to and from decimal strings
// with Text and Parse.
package fixreal
