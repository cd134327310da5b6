// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixreal

// GreaterAbs reports whether |x| > |y|. Words are compared from the most
// significant index present in either operand down to the least significant.
func GreaterAbs(x, y *Real) bool {
	for i := max(x.max, y.max) - 1; i >= min(x.min, y.min); i-- {
		xi, yi := x.Word(i), y.Word(i)
		if xi != yi {
			return xi > yi
		}
	}
	return false
}

// CmpAbs compares the absolute values of x and y and returns -1, 0 or +1.
func CmpAbs(x, y *Real) int {
	switch {
	case GreaterAbs(x, y):
		return 1
	case GreaterAbs(y, x):
		return -1
	}
	return 0
}

// IsZero reports whether all the words of x are zero, regardless of its sign.
func (x *Real) IsZero() bool {
	for _, w := range x.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether x and y represent the same number. Windows may
// differ; a zero equals any other zero regardless of sign.
func Equal(x, y *Real) bool {
	zero := true
	for i := min(x.min, y.min); i < max(x.max, y.max); i++ {
		xi := x.Word(i)
		if xi != y.Word(i) {
			return false
		}
		if xi != 0 {
			zero = false
		}
	}
	return zero || x.sign == y.sign
}
