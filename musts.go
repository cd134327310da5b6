// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixreal

import "fmt"

// MustNew is like [New] but panics if the window is invalid.
func MustNew(sign Sign, min, max int) *Real {
	z, err := New(sign, min, max)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v, %d, %d) failed: %v", sign, min, max, err))
	}
	return z
}

// MustFill is like [Fill] but panics on error. It is meant for literals:
//
//	half := fixreal.MustFill(fixreal.Positive, -1, 0, []fixreal.Word{1 << 63})
func MustFill(sign Sign, min, max int, words []Word) *Real {
	z, err := Fill(sign, min, max, words)
	if err != nil {
		panic(fmt.Sprintf("MustFill(%v, %d, %d) failed: %v", sign, min, max, err))
	}
	return z
}

// MustParse is like [Parse] but panics if s cannot be parsed.
func MustParse(s string, fracWords int) *Real {
	z, err := Parse(s, fracWords)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return z
}

// MustMul is like [Mul] but panics on error.
func MustMul(x, y *Real) *Real {
	z, err := Mul(x, y)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%x, %x) failed: %v", x, y, err))
	}
	return z
}

// MustDiv is like [Div] but panics on error.
func MustDiv(x *Real, d Word, ext int) *Real {
	z, err := Div(x, d, ext)
	if err != nil {
		panic(fmt.Sprintf("MustDiv(%x, %d) failed: %v", x, d, err))
	}
	return z
}
