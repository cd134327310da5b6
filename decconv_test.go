// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fixreal

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bigDecimal = "30111958256045056550262256846967767576." +
	"76271600169430058847757619092581866378082250145855637206374712502560758825364072187248838663453653907708940096199512481689453125"

func bigReal() *Real {
	return MustFill(Positive, -2, 2, []Word{
		17162673854044802117, 14069626884177783709, 10712362532993335832, 1632372527949843584})
}

func TestText(t *testing.T) {
	x := bigReal()
	td := []struct {
		x    *Real
		prec int
		want string
	}{
		{x, -1, bigDecimal},
		{x, 2, "30111958256045056550262256846967767576.76"},
		{x, 0, "30111958256045056550262256846967767576"},
		{Neg(x), 0, "-30111958256045056550262256846967767576"},
		{Zero(), -1, "0"},
		{MustNew(Negative, -3, 2), -1, "0"},
		{MustFill(Negative, -1, 1, []Word{1 << 62, 12}), -1, "-12.25"},
		{MustFill(Negative, -1, 1, []Word{1 << 62, 12}), 10, "-12.25"},
		{MustFill(Positive, -1, 0, []Word{0x1999999999999999}), 5, "0.09999"},
		{MustFill(Positive, -1, 0, []Word{0x1999999999999999}), -1,
			"0.0999999999999999999674739348254348669797764159739017486572265625"},
		{MustFill(Positive, -1, 1, []Word{0x243f6a8885a308d3, 3}), 20, "3.14159265358979323845"},
		{MustFill(Positive, 0, 2, []Word{0, 1}), -1, "18446744073709551616"},
		{MustFill(Positive, 2, 3, []Word{0}), -1, "0"},
	}
	for i, d := range td {
		assert.Equal(t, d.want, d.x.Text(d.prec), "#%d", i)
	}
	assert.Equal(t, bigDecimal, x.String())
}

func TestFormat(t *testing.T) {
	x := MustFill(Negative, -1, 1, []Word{1 << 62, 12})
	assert.Equal(t, "-12.25", fmt.Sprint(x))
	assert.Equal(t, "-12.2", fmt.Sprintf("%.1s", x))
	assert.Equal(t, "-12", fmt.Sprintf("%.0v", x))
	assert.Equal(t, "-000000000000000c.4000000000000000", fmt.Sprintf("%x", x))
	assert.Equal(t, "%!d(*fixreal.Real=-12.25)", fmt.Sprintf("%d", x))
}

func TestParse(t *testing.T) {
	td := []struct {
		s         string
		fracWords int
		sign      Sign
		min, max  int
		words     []Word
	}{
		{"0", 0, Positive, 0, 1, []Word{0}},
		{"-0.000", 2, Positive, 0, 1, []Word{0}},
		{"+7", 0, Positive, 0, 1, []Word{7}},
		{"18446744073709551616", 0, Positive, 1, 2, []Word{1}},
		{"0.1", 1, Positive, -1, 0, []Word{0x1999999999999999}},
		{"0.1", 2, Positive, -2, 0, []Word{0x9999999999999999, 0x1999999999999999}},
		{"-12.25", 3, Negative, -1, 1, []Word{1 << 62, 12}},
		{".5", 1, Positive, -1, 0, []Word{1 << 63}},
		{"5.", 1, Positive, 0, 1, []Word{5}},
		// fraction truncated
		{"0.5", 0, Positive, 0, 1, []Word{0}},
	}
	for _, d := range td {
		t.Run(d.s, func(t *testing.T) {
			z, err := Parse(d.s, d.fracWords)
			require.NoError(t, err)
			requireReal(t, z, d.sign, d.min, d.max, d.words...)
		})
	}

	z, err := Parse(bigDecimal, 2)
	require.NoError(t, err)
	x := bigReal()
	requireReal(t, z, Positive, -2, 2, x.Words()...)
}

func TestParseErrors(t *testing.T) {
	for _, s := range []string{"", "-", "+", ".", "-.", "1.2.3", "12a", " 1", "1e6", "0x10", "--1"} {
		_, err := Parse(s, 1)
		assert.True(t, errors.Is(err, ErrSyntax), "Parse(%q): %v", s, err)
	}
	assert.Panics(t, func() { MustParse("z", 0) })
}

func TestTextParseRoundTrip(t *testing.T) {
	for i := 0; i < 200; i++ {
		x := rndWindowReal()
		s := x.String()
		z, err := Parse(s, max(0, -x.MinIdx()))
		require.NoError(t, err)
		require.True(t, Equal(x, z), "%x -> %s -> %x", x, s, z)
	}
}

func BenchmarkText(b *testing.B) {
	x := bigReal()
	for i := 0; i < b.N; i++ {
		_ = x.Text(-1)
	}
}
