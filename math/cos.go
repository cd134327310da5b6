package math

import (
	"github.com/db47h/fixreal"
	"github.com/db47h/fixreal/context"
)

// Cos returns an approximation of cos(θ) together with the number of series
// terms that were summed. All products and quotients are truncated below word
// index minSig.
//
// Summation stops as soon as a term is smaller in magnitude than c³/12, where c
// is the current estimate, or when a term truncates to zero. The result is
// thus only accurate to about |cos θ|³/12: Cos is meant for θ close to π/2,
// where it drives the Newton iteration in Newton.Step. Use CosN for a fixed
// number of terms.
func Cos(theta *fixreal.Real, minSig int) (*fixreal.Real, int, error) {
	ctx := context.New(thresholdSig)
	est := one.Copy()
	term := one.Copy()
	theta2 := ctx.MulSig(theta, theta, minSig)
	k := 1
	for ; ; k++ {
		term = nextTerm(ctx, term, theta2, k, minSig)
		thr, err := threshold(est)
		if err != nil {
			return nil, k, err
		}
		est = ctx.Add(est, term)
		if fixreal.GreaterAbs(thr, term) || term.IsZero() {
			break
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, k, err
	}
	return est, k, nil
}

// CosN returns cos(θ) computed with the first n terms of its Taylor series.
// Products are exact and each of the two divisions per term extends the
// result by ext fractional words.
func CosN(theta *fixreal.Real, n int, ext int) (*fixreal.Real, error) {
	ctx := context.New(thresholdSig)
	est := one.Copy()
	term := one.Copy()
	theta2 := ctx.Mul(theta, theta)
	for k := 1; k < n; k++ {
		term = ctx.Mul(term, theta2)
		term = ctx.Div(term, fixreal.Word(2*k-1), ext)
		term = ctx.Div(term, fixreal.Word(2*k), ext)
		term.Negate()
		term.TrimMostSignificantZeros()
		est = ctx.Add(est, term)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return est, nil
}
