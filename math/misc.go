package math

import (
	"github.com/db47h/fixreal"
	"github.com/db47h/fixreal/context"
)

// constants
var (
	one = fixreal.FromWord(1)
	two = fixreal.FromWord(2)
	// 1.5, initial guess for π/2
	threeHalves = fixreal.MustFill(fixreal.Positive, -1, 1, []fixreal.Word{1 << 63, 1})
	// ~0.1, initial Newton correction
	tenth = fixreal.MustFill(fixreal.Positive, -1, 0, []fixreal.Word{0x1999999999999999})
)

// thresholdSig is the number of significant words used to compute the
// stopping threshold of the cosine series.
const thresholdSig = 3

// threshold returns c³/12 with thresholdSig significant words. Series terms
// below it are lost in the next Newton correction.
func threshold(c *fixreal.Real) (*fixreal.Real, error) {
	ctx := context.New(thresholdSig)
	t := ctx.DivRel(ctx.MulRel(c, ctx.MulRel(c, c)), 12)
	return t, ctx.Err()
}

// nextTerm returns the Taylor series term of index k given the previous one:
// -t·θ²/((2k-1)·2k), truncated below word index minSig.
func nextTerm(ctx *context.Context, t, theta2 *fixreal.Real, k int, minSig int) *fixreal.Real {
	z := ctx.MulSig(t, theta2, minSig)
	z = ctx.DivSig(z, fixreal.Word(2*k-1), minSig)
	z = ctx.DivSig(z, fixreal.Word(2*k), minSig)
	z.Negate()
	z.TrimMostSignificantZeros()
	return z
}
