// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixreal

import (
	"strings"

	"github.com/pkg/errors"
)

const debugReal = true

// A Word is a single digit of a Real in base 2**64.
type Word uint64

// A HalfWord is the lower or upper half of a Word. Half-words are only used
// to decompose products so that they fit in a single Word.
type HalfWord uint32

const (
	_W  = 64         // word size in bits
	_W2 = _W / 2     // half word size in bits
	_M2 = 1<<_W2 - 1 // half word mask
)

// Sign is the sign of a Real.
type Sign byte

// Supported signs. The zero value is Positive.
const (
	Positive Sign = iota
	Negative
)

func (s Sign) String() string {
	if s == Negative {
		return "-"
	}
	return "+"
}

// Real is a signed fixed-point number of the form
//
//	x = ±(w[max-1]*2**(64*(max-1)) + ... + w[0] + w[-1]*2**-64 + ... + w[min]*2**(64*min))
//
// stored in sign-magnitude form. Word index 0 is the units word, positive
// indices are integer words of increasing significance and negative indices
// are fractional words. Only the words in the window [min, max) are stored;
// words outside the window read as zero.
//
// A Real exclusively owns its words. Arithmetic functions never modify their
// operands and always return a newly allocated Real.
type Real struct {
	sign  Sign
	min   int // inclusive
	max   int // exclusive
	words []Word
}

// New returns a new zero-filled Real with the given sign and window [min, max).
// It fails with ErrInvalidWindow if max <= min.
func New(sign Sign, min, max int) (*Real, error) {
	if max <= min {
		return nil, errors.Wrapf(ErrInvalidWindow, "[%d, %d)", min, max)
	}
	return alloc(sign, min, max), nil
}

// Fill returns a new Real with the given sign and window, set to the given
// words, least significant first. len(words) must be max-min.
func Fill(sign Sign, min, max int, words []Word) (*Real, error) {
	z, err := New(sign, min, max)
	if err != nil {
		return nil, err
	}
	if len(words) != len(z.words) {
		return nil, errors.Wrapf(ErrWordCount, "got %d words for window [%d, %d)", len(words), min, max)
	}
	copy(z.words, words)
	return z, nil
}

// Zero returns a new canonical zero: positive, with window [0, 1).
func Zero() *Real {
	return alloc(Positive, 0, 1)
}

// FromWord returns a new positive integer Real with value w.
func FromWord(w Word) *Real {
	z := alloc(Positive, 0, 1)
	z.words[0] = w
	return z
}

// alloc is New without the window check. Callers must guarantee min < max.
func alloc(sign Sign, min, max int) *Real {
	if debugReal && max <= min {
		panic("BUG: alloc with empty window")
	}
	return &Real{sign: sign, min: min, max: max, words: make([]Word, max-min)}
}

// Copy returns a deep copy of x.
func (x *Real) Copy() *Real {
	z := alloc(x.sign, x.min, x.max)
	copy(z.words, x.words)
	return z
}

// Sign returns the sign of x. A zero Real may be Negative before it is trimmed.
func (x *Real) Sign() Sign {
	return x.sign
}

// SetSign sets the sign of z and returns z.
func (z *Real) SetSign(s Sign) *Real {
	z.sign = s
	return z
}

// Negate flips the sign of z in place and returns z.
func (z *Real) Negate() *Real {
	z.sign ^= 1
	return z
}

// MinIdx returns the index of the least significant stored word.
func (x *Real) MinIdx() int { return x.min }

// MaxIdx returns the index just above the most significant stored word.
func (x *Real) MaxIdx() int { return x.max }

// Len returns the number of stored words.
func (x *Real) Len() int { return x.max - x.min }

// Words returns a copy of the stored words, least significant first.
func (x *Real) Words() []Word {
	w := make([]Word, len(x.words))
	copy(w, x.words)
	return w
}

// Word returns the word at index i. Words outside the window are zero.
func (x *Real) Word(i int) Word {
	if i < x.min || i >= x.max {
		return 0
	}
	return x.words[i-x.min]
}

// SetWord sets the word at index i to w. It fails with ErrOutOfRange, leaving
// z unchanged, if i is outside of z's window.
func (z *Real) SetWord(i int, w Word) error {
	if i < z.min || i >= z.max {
		return errors.Wrapf(ErrOutOfRange, "word %d not in [%d, %d)", i, z.min, z.max)
	}
	z.words[i-z.min] = w
	return nil
}

// HalfWord returns the half-word at half-word index h. Index 2*i is the low
// half of word i and 2*i+1 its high half.
func (x *Real) HalfWord(h int) HalfWord {
	w := x.Word(h >> 1)
	if h&1 != 0 {
		return HalfWord(w >> _W2)
	}
	return HalfWord(w)
}

// SetHalfWord sets the half-word at half-word index h to v. The same bounds
// rules as SetWord apply.
func (z *Real) SetHalfWord(h int, v HalfWord) error {
	i := h >> 1
	w := z.Word(i)
	if h&1 != 0 {
		w = w&_M2 | Word(v)<<_W2
	} else {
		w = w&^_M2 | Word(v)
	}
	return z.SetWord(i, w)
}

// setHalfWord is SetHalfWord for indices already known to be in the window.
func (z *Real) setHalfWord(h int, v HalfWord) {
	p := &z.words[h>>1-z.min]
	if h&1 != 0 {
		*p = *p&_M2 | Word(v)<<_W2
	} else {
		*p = *p&^_M2 | Word(v)
	}
}

// neg returns a view of x with the opposite sign. The view shares x's words
// and must not be modified nor escape the calling function.
func (x *Real) neg() *Real {
	return &Real{sign: x.sign ^ 1, min: x.min, max: x.max, words: x.words}
}

// Hex returns the hexadecimal digits of x, most significant word first, with
// a radix point after the units word if x has fractional words.
func (x *Real) Hex() string {
	var b strings.Builder
	if x.sign == Negative {
		b.WriteByte('-')
	}
	hi, lo := max(0, x.max-1), min(0, x.min)
	for i := hi; i >= lo; i-- {
		w := uint64(x.Word(i))
		for s := _W - 4; s >= 0; s -= 4 {
			b.WriteByte(hexDigits[w>>uint(s)&0xf])
		}
		if i == 0 && x.min < 0 {
			b.WriteByte('.')
		}
	}
	return b.String()
}

const hexDigits = "0123456789abcdef"
