// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixreal

// Trimming reallocates z's words to the narrower window. z keeps its
// identity; any slice previously returned by Words is unaffected.

// TrimMostSignificantZeros lowers z's max index while the most significant
// word is zero. If z is zero, it becomes the canonical zero: positive, with
// window [0, 1).
func (z *Real) TrimMostSignificantZeros() {
	n := len(z.words)
	for n > 0 && z.words[n-1] == 0 {
		n--
	}
	switch {
	case n == 0:
		z.setCanonicalZero()
	case n < len(z.words):
		w := make([]Word, n)
		copy(w, z.words)
		z.words = w
		z.max = z.min + n
	}
}

// TrimLeastSignificantZeros raises z's min index while the least significant
// word is zero. If z is zero, it becomes the canonical zero.
func (z *Real) TrimLeastSignificantZeros() {
	i := 0
	for i < len(z.words) && z.words[i] == 0 {
		i++
	}
	switch {
	case i == len(z.words):
		z.setCanonicalZero()
	case i > 0:
		w := make([]Word, len(z.words)-i)
		copy(w, z.words[i:])
		z.words = w
		z.min += i
	}
}

// TrimZeros trims zero words at both ends of z's window.
func (z *Real) TrimZeros() {
	z.TrimMostSignificantZeros()
	z.TrimLeastSignificantZeros()
}

func (z *Real) setCanonicalZero() {
	z.sign = Positive
	if z.min == 0 && z.max == 1 {
		z.words[0] = 0
		return
	}
	z.min, z.max = 0, 1
	z.words = make([]Word, 1)
}
