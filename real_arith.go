// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixreal

import (
	"github.com/pkg/errors"
)

// Add returns a new Real set to x + y.
//
// The result of adding two positive values spans the union of both windows
// plus one word for the final carry. That word is trimmed when unused.
func Add(x, y *Real) *Real {
	switch {
	case x.sign == Negative:
		// x + y = y - |x|
		return Sub(y, x.neg())
	case y.sign == Negative:
		return Sub(x, y.neg())
	}

	z := alloc(Positive, min(x.min, y.min), max(x.max, y.max)+1)
	var c Word
	for i := range z.words {
		j := z.min + i
		z.words[i], c = addWW(x.Word(j), y.Word(j), c)
	}
	if debugReal && c != 0 {
		panic("BUG: carry out of reserved word in Add")
	}
	z.TrimMostSignificantZeros()
	return z
}

// Sub returns a new Real set to x - y.
//
// The word loop only ever subtracts a smaller or equal magnitude from a
// larger one; all other cases are reduced to it by sign manipulation, so the
// borrow never escapes the top of the window.
func Sub(x, y *Real) *Real {
	switch {
	case GreaterAbs(y, x):
		return Sub(y, x).Negate()
	case x.sign == Negative:
		// x - y = -(|x| - (-y))
		return Sub(x.neg(), y.neg()).Negate()
	case y.sign == Negative:
		return Add(x, y.neg())
	}

	z := alloc(Positive, min(x.min, y.min), max(x.max, y.max))
	var b Word
	for i := range z.words {
		j := z.min + i
		z.words[i], b = subWW(x.Word(j), y.Word(j), b)
	}
	if debugReal && b != 0 {
		panic("BUG: borrow out of Sub")
	}
	return z
}

// Neg returns a new Real set to -x.
func Neg(x *Real) *Real {
	return x.Copy().Negate()
}

// Mul returns a new Real set to the exact product x * y.
func Mul(x, y *Real) (*Real, error) {
	return MulWithSig(x, y, x.min+y.min)
}

// MulWithSig returns a new Real set to x * y, ignoring all partial products
// below word index minSig. The result window is [max(x.min+y.min, minSig),
// x.max+y.max). If minSig is at or above x.max+y.max, the result is zero.
//
// Since carries from the discarded partial products are lost, the words at
// and just above minSig may be slightly lower than those of the exact product.
func MulWithSig(x, y *Real, minSig int) (*Real, error) {
	sign := Positive
	if x.sign != y.sign {
		sign = Negative
	}
	hi, lo := x.max+y.max, max(x.min+y.min, minSig)
	if lo >= hi {
		return Zero(), nil
	}
	z := alloc(sign, lo, hi)

	// Schoolbook multiplication on half-words. For each half-word of x, the
	// inner loop starts at the first half-word of y whose product lands at or
	// above the cutoff.
	for i := 2 * x.min; i < 2*x.max; i++ {
		xi := x.HalfWord(i)
		if xi == 0 {
			continue
		}
		for j := max(2*y.min, 2*lo-i); j < 2*y.max; j++ {
			if err := z.addAtHalf(i+j, mulHH(xi, y.HalfWord(j))); err != nil {
				return nil, err
			}
		}
	}
	return z, nil
}

// MulWithRelSig returns a new Real set to x * y, keeping only n significant
// words. Trimmed copies of x and y are multiplied with a significance floor of
// x.max + y.max - n.
func MulWithRelSig(x, y *Real, n int) (*Real, error) {
	tx, ty := x.Copy(), y.Copy()
	tx.TrimZeros()
	ty.TrimZeros()
	return MulWithSig(tx, ty, tx.max+ty.max-n)
}

// Div returns a new Real set to x / d, computed down to ext words below x's
// least significant word.
func Div(x *Real, d Word, ext int) (*Real, error) {
	return DivWithSig(x, d, x.min-ext)
}

// DivWithSig returns a new Real set to x / d, truncated below word index
// minSig. The quotient window is [minSig, x.max) and its sign is the sign of x.
// If minSig >= x.max, the quotient is zero.
func DivWithSig(x *Real, d Word, minSig int) (*Real, error) {
	q, _, err := DivRem(x, d, minSig)
	return q, err
}

// DivWithRelSig returns a new Real set to x / d, keeping n words below the most
// significant non-zero word of x.
func DivWithRelSig(x *Real, d Word, n int) (*Real, error) {
	t := x.Copy()
	t.TrimMostSignificantZeros()
	return DivWithSig(t, d, t.max-n)
}

// DivRem is like DivWithSig but also returns the final remainder r. If minSig
// <= x.min, then x = q*d + r*2**(64*minSig). If minSig >= x.max, q and r are
// both zero.
func DivRem(x *Real, d Word, minSig int) (q *Real, r Word, err error) {
	if d == 0 {
		return nil, 0, errors.WithStack(ErrDivisionByZero)
	}
	if minSig >= x.max {
		return Zero(), 0, nil
	}
	// Long division on half-words, most significant first. The remainder of
	// each step becomes the high half of the next dividend chunk.
	q = alloc(x.sign, minSig, x.max)
	for h := 2*q.max - 1; h >= 2*q.min; h-- {
		var qh HalfWord
		qh, r = divHW(r, x.HalfWord(h), d)
		q.setHalfWord(h, qh)
	}
	return q, r, nil
}
