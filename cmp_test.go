// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixreal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGreaterAbs(t *testing.T) {
	td := []struct {
		x, y *Real
		gt   bool
	}{
		{FromWord(2), FromWord(1), true},
		{FromWord(1), FromWord(2), false},
		{FromWord(1), FromWord(1), false},
		{Neg(FromWord(2)), FromWord(1), true},
		{FromWord(2), Neg(FromWord(3)), false},
		// only present in one operand
		{MustFill(Positive, 1, 2, []Word{1}), MustFill(Positive, -3, 1, []Word{9, 9, 9, ^Word(0)}), true},
		{MustFill(Positive, -3, -2, []Word{1}), MustFill(Positive, -2, 0, []Word{0, 0}), true},
		{MustFill(Positive, -1, 3, []Word{1, 0, 0, 0}), MustFill(Positive, -1, 0, []Word{1}), false},
		{Zero(), MustNew(Negative, -5, 5), false},
	}
	for i, d := range td {
		assert.Equal(t, d.gt, GreaterAbs(d.x, d.y), "#%d", i)
		want := 0
		switch {
		case d.gt:
			want = 1
		case GreaterAbs(d.y, d.x):
			want = -1
		}
		assert.Equal(t, want, CmpAbs(d.x, d.y), "#%d", i)
	}
}

func TestIsZero(t *testing.T) {
	assert.True(t, Zero().IsZero())
	assert.True(t, MustNew(Negative, -4, 2).IsZero())
	assert.False(t, MustFill(Negative, -2, 0, []Word{0, 1}).IsZero())
}

func TestEqual(t *testing.T) {
	td := []struct {
		x, y *Real
		eq   bool
	}{
		{FromWord(1), MustFill(Positive, -2, 3, []Word{0, 0, 1, 0, 0}), true},
		{FromWord(1), Neg(FromWord(1)), false},
		{MustNew(Negative, -2, 1), Zero(), true},
		{MustNew(Negative, 3, 4), MustNew(Positive, -3, -2), true},
		{MustFill(Positive, -1, 0, []Word{1}), MustFill(Positive, -2, 0, []Word{1, 0}), false},
	}
	for i, d := range td {
		assert.Equal(t, d.eq, Equal(d.x, d.y), "#%d", i)
		assert.Equal(t, d.eq, Equal(d.y, d.x), "#%d symmetric", i)
		assert.Equal(t, d.eq, Sub(d.x, d.y).IsZero(), "#%d Sub", i)
	}
}

func TestEqualAgreesWithSub(t *testing.T) {
	for i := 0; i < 1000; i++ {
		x := rndWindowReal()
		y := x.Copy()
		if rnd.Intn(2) == 0 {
			y = rndWindowReal()
		}
		if rnd.Intn(4) == 0 {
			y.Negate()
		}
		assert.Equal(t, Sub(x, y).IsZero(), Equal(x, y), "x = %x, y = %x", x, y)
	}
}
