// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements decimal conversion of Reals. It is built on the
// public arithmetic functions only.

package fixreal

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var ten = FromWord(10)

// String returns the exact decimal representation of x. It is a shorthand for
// x.Text(-1).
func (x *Real) String() string {
	return x.Text(-1)
}

// Text returns the decimal representation of x with at most fracDigits
// fractional digits. Extra digits are truncated, not rounded. If fracDigits is
// negative, all the digits of x are produced; since x is a finite binary
// fraction, its decimal expansion always terminates.
func (x *Real) Text(fracDigits int) string {
	var b strings.Builder
	if x.sign == Negative && !x.IsZero() {
		b.WriteByte('-')
	}
	abs := x.Copy().SetSign(Positive)

	// dividing by 1 down to the units word drops the fraction.
	ip, err := DivWithSig(abs, 1, 0)
	if err != nil {
		panic(err)
	}
	b.WriteString(intDigits(ip))

	if fracDigits != 0 {
		fd := fracDigitsOf(Sub(abs, ip), fracDigits)
		if len(fd) > 0 {
			b.WriteByte('.')
			b.WriteString(fd)
		}
	}
	return b.String()
}

// intDigits returns the decimal digits of the positive integer x.
func intDigits(x *Real) string {
	var rev []byte
	for {
		q, err := DivWithSig(x, 10, 0)
		if err != nil {
			panic(err)
		}
		t, err := Mul(q, ten)
		if err != nil {
			panic(err)
		}
		rev = append(rev, byte('0'+Sub(x, t).Word(0)))
		x = q
		if x.IsZero() {
			break
		}
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return string(rev)
}

// fracDigitsOf returns up to n (all if n < 0) decimal digits of the positive
// fraction x. Each digit is the integer part of x*10.
func fracDigitsOf(x *Real, n int) string {
	var b strings.Builder
	x = x.Copy()
	for n < 0 || b.Len() < n {
		x.TrimZeros()
		if x.IsZero() {
			break
		}
		t, err := Mul(x, ten)
		if err != nil {
			panic(err)
		}
		x = t
		b.WriteByte(byte('0' + x.Word(0)))
		if x.Word(0) != 0 {
			_ = x.SetWord(0, 0)
		}
	}
	return b.String()
}

// Format implements fmt.Formatter. It accepts the verbs 's' and 'v' for
// decimal output, where the precision sets the number of fractional digits,
// and 'x' for the hexadecimal word dump returned by Hex.
func (x *Real) Format(s fmt.State, format rune) {
	switch format {
	case 's', 'v':
		prec, ok := s.Precision()
		if !ok {
			prec = -1
		}
		fmt.Fprint(s, x.Text(prec))
	case 'x':
		fmt.Fprint(s, x.Hex())
	default:
		fmt.Fprintf(s, "%%!%c(*fixreal.Real=%s)", format, x.Text(-1))
	}
}

var _ fmt.Formatter = (*Real)(nil)

// Parse parses the decimal number s of the form
//
//	number = [ "+" | "-" ] digits [ "." [ digits ] ] | [ "+" | "-" ] "." digits .
//
// and returns a Real with its fractional part truncated to fracWords words.
// The result is trimmed.
func Parse(s string, fracWords int) (*Real, error) {
	if fracWords < 0 {
		fracWords = 0
	}
	str := s
	sign := Positive
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = Negative
		}
		s = s[1:]
	}
	ip, fp := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		ip, fp = s[:i], s[i+1:]
	}
	if len(ip)+len(fp) == 0 {
		return nil, errors.Wrapf(ErrSyntax, "parsing %q", str)
	}
	for _, digits := range [...]string{ip, fp} {
		for i := 0; i < len(digits); i++ {
			if digits[i] < '0' || digits[i] > '9' {
				return nil, errors.Wrapf(ErrSyntax, "parsing %q: unexpected %q", str, digits[i])
			}
		}
	}

	z := Zero()
	for i := 0; i < len(ip); i++ {
		t, err := Mul(z, ten)
		if err != nil {
			return nil, err
		}
		z = Add(t, FromWord(Word(ip[i]-'0')))
	}

	// 0.d1d2...dn = (d1 + (d2 + ... (dn)/10 ...)/10)/10
	f := Zero()
	for i := len(fp) - 1; i >= 0; i-- {
		t, err := DivWithSig(Add(f, FromWord(Word(fp[i]-'0'))), 10, -fracWords)
		if err != nil {
			return nil, err
		}
		f = t
	}

	z = Add(z, f)
	z.TrimZeros()
	if !z.IsZero() {
		z.sign = sign
	}
	return z, nil
}
