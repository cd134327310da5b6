// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package context provides error-accumulating contexts for fixreal arithmetic.
//
// Operators of the form
//
//	func (c *Context) Op(x, y *fixreal.Real) *fixreal.Real
//
// return the result of fixreal.Op(x, y). Operators that take a relative
// significance use c's significance: the number of words kept below the most
// significant word of the operands.
//
// A Context catches errors: once an operation fails, further operations with
// the context are no-ops that return a canonical zero until (*Context).Err is
// called to check for errors. This allows long formulas to be written without
// checking errors at every step.
package context

import (
	"github.com/db47h/fixreal"
)

// DefaultSig is the significance of a Context created with a zero or negative
// significance.
const DefaultSig = 4

// A Context wraps fixreal operations to manage relative significance and
// error handling.
type Context struct {
	sig int
	err error
}

// New creates a new context with the given relative significance in words. If
// sig <= 0, it is set to DefaultSig.
func New(sig int) *Context {
	return new(Context).SetSig(sig)
}

// Sig returns the relative significance of c in words.
func (c *Context) Sig() int {
	return c.sig
}

// SetSig sets c's relative significance to sig and returns c. If sig <= 0, it
// is set to DefaultSig.
func (c *Context) SetSig(sig int) *Context {
	if sig <= 0 {
		sig = DefaultSig
	}
	c.sig = sig
	return c
}

// Err returns the first error encountered since the last call to Err and clears
// the error state.
func (c *Context) Err() (err error) {
	err = c.err
	c.err = nil
	return
}

// check records err if it is the first error and returns the value to hand
// back to the caller.
func (c *Context) check(z *fixreal.Real, err error) *fixreal.Real {
	if err != nil {
		c.err = err
		return fixreal.Zero()
	}
	return z
}

// Add returns x + y.
func (c *Context) Add(x, y *fixreal.Real) *fixreal.Real {
	if c.err != nil {
		return fixreal.Zero()
	}
	return fixreal.Add(x, y)
}

// Sub returns x - y.
func (c *Context) Sub(x, y *fixreal.Real) *fixreal.Real {
	if c.err != nil {
		return fixreal.Zero()
	}
	return fixreal.Sub(x, y)
}

// Neg returns -x.
func (c *Context) Neg(x *fixreal.Real) *fixreal.Real {
	if c.err != nil {
		return fixreal.Zero()
	}
	return fixreal.Neg(x)
}

// Mul returns the exact product x×y.
func (c *Context) Mul(x, y *fixreal.Real) *fixreal.Real {
	if c.err != nil {
		return fixreal.Zero()
	}
	return c.check(fixreal.Mul(x, y))
}

// MulSig returns x×y truncated below word index minSig.
func (c *Context) MulSig(x, y *fixreal.Real, minSig int) *fixreal.Real {
	if c.err != nil {
		return fixreal.Zero()
	}
	return c.check(fixreal.MulWithSig(x, y, minSig))
}

// MulRel returns x×y with c's relative significance.
func (c *Context) MulRel(x, y *fixreal.Real) *fixreal.Real {
	if c.err != nil {
		return fixreal.Zero()
	}
	return c.check(fixreal.MulWithRelSig(x, y, c.sig))
}

// Div returns x/d computed down to ext words below x's least significant word.
func (c *Context) Div(x *fixreal.Real, d fixreal.Word, ext int) *fixreal.Real {
	if c.err != nil {
		return fixreal.Zero()
	}
	return c.check(fixreal.Div(x, d, ext))
}

// DivSig returns x/d truncated below word index minSig.
func (c *Context) DivSig(x *fixreal.Real, d fixreal.Word, minSig int) *fixreal.Real {
	if c.err != nil {
		return fixreal.Zero()
	}
	return c.check(fixreal.DivWithSig(x, d, minSig))
}

// DivRel returns x/d with c's relative significance.
func (c *Context) DivRel(x *fixreal.Real, d fixreal.Word) *fixreal.Real {
	if c.err != nil {
		return fixreal.Zero()
	}
	return c.check(fixreal.DivWithRelSig(x, d, c.sig))
}
