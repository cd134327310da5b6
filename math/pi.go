package math

import (
	"github.com/db47h/fixreal"
	"github.com/pkg/errors"
)

// ErrConverged is returned by Newton.Step once the correction has become zero.
// Further steps would not change the estimate.
var ErrConverged = errors.New("math: Newton iteration converged")

// Newton computes π/2 as the root of cos in [1, 2] with Newton's method:
//
//	x[n+1] = x[n] + cos(x[n]) / sin(x[n]) ≈ x[n] + cos(x[n])
//
// since sin(x) ≈ 1 near π/2. Each step roughly triples the number of correct
// digits. The cosine of each step is computed with Cos, with a significance
// floor derived from the size of the previous correction.
//
// The zero value is not usable; use NewNewton.
type Newton struct {
	x *fixreal.Real
	d *fixreal.Real
	n int
}

// A Step describes the outcome of one Newton iteration.
type Step struct {
	N      int           // step index, starting at 0
	MinSig int           // significance floor used for the cosine
	Terms  int           // number of cosine series terms summed
	X      *fixreal.Real // new estimate of π/2
	Delta  *fixreal.Real // correction added to the previous estimate
	Pi     *fixreal.Real // 2·X
}

// NewNewton returns a new Newton iteration starting at x = 1.5 with an
// initial correction estimate of 0.1.
func NewNewton() *Newton {
	return &Newton{x: threeHalves.Copy(), d: tenth.Copy()}
}

// X returns the current estimate of π/2.
func (nt *Newton) X() *fixreal.Real {
	return nt.x.Copy()
}

// Step runs one iteration. The significance floor is 9·m - 5, where m is the
// index above the most significant word of the previous correction.
func (nt *Newton) Step() (Step, error) {
	nt.d.TrimMostSignificantZeros()
	if nt.d.IsZero() {
		return Step{}, errors.WithStack(ErrConverged)
	}
	minSig := 9*nt.d.MaxIdx() - 5
	d, terms, err := Cos(nt.x, minSig)
	if err != nil {
		return Step{}, errors.Wrapf(err, "step %d", nt.n)
	}
	x := fixreal.Add(nt.x, d)
	x.TrimMostSignificantZeros()
	p, err := fixreal.Mul(x, two)
	if err != nil {
		return Step{}, errors.Wrapf(err, "step %d", nt.n)
	}
	s := Step{N: nt.n, MinSig: minSig, Terms: terms, X: x.Copy(), Delta: d.Copy(), Pi: p}
	nt.x, nt.d = x, d
	nt.n++
	return s, nil
}

// Pi returns the approximation of π after the given number of Newton steps,
// or fewer if the iteration converges earlier.
func Pi(steps int) (*fixreal.Real, error) {
	nt := NewNewton()
	for i := 0; i < steps; i++ {
		if _, err := nt.Step(); err != nil {
			if errors.Is(err, ErrConverged) {
				break
			}
			return nil, err
		}
	}
	return fixreal.Mul(nt.X(), two)
}
