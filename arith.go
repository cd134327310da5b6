// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixreal

import (
	"math/bits"

	"github.com/pkg/errors"
)

//-----------------------------------------------------------------------------
// Arithmetic primitives
//
// Carries and borrows are threaded through the word loops as values returned
// by these helpers; they are always 0 or 1.

// s = x + y + c, with carry out.
func addWW(x, y, c Word) (s, cOut Word) {
	ss, cc := bits.Add64(uint64(x), uint64(y), uint64(c))
	return Word(ss), Word(cc)
}

// d = x - y - b, with borrow out.
func subWW(x, y, b Word) (d, bOut Word) {
	dd, bb := bits.Sub64(uint64(x), uint64(y), uint64(b))
	return Word(dd), Word(bb)
}

// mulHH returns the full double half-word product x*y. It cannot overflow.
func mulHH(x, y HalfWord) Word {
	return Word(x) * Word(y)
}

// divHW divides the two half-word chunk r<<32 + h by d and returns the
// half-word quotient and the new remainder. r must be < d, which guarantees
// that the quotient fits in a half-word.
func divHW(r Word, h HalfWord, d Word) (q HalfWord, rOut Word) {
	if debugReal && r >= d {
		panic("BUG: divHW remainder >= divisor")
	}
	// r<<32 + h may not fit in a Word if d > 2**32.
	qq, rr := bits.Div64(uint64(r>>_W2), uint64(r<<_W2|Word(h)), uint64(d))
	return HalfWord(qq), Word(rr)
}

// addAtHalf adds the double half-word w to z at half-word index h and
// propagates the carry upwards as far as needed. h must be at or above the
// first half-word of z's window.
//
// The pending value starts as w; at each position its low half is added and
// whatever does not fit moves up one half-word. It stays below 2**33.
func (z *Real) addAtHalf(h int, w Word) error {
	top := 2 * z.max
	for c := w; c != 0; h++ {
		if h >= top {
			return errors.Wrapf(ErrCarryEscape, "half-word %d, window [%d, %d)", h, z.min, z.max)
		}
		s := Word(z.HalfWord(h)) + c&_M2
		z.setHalfWord(h, HalfWord(s))
		c = c>>_W2 + s>>_W2
	}
	return nil
}
