// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package command

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/db47h/fixreal"
)

// eval evaluates x op y. Products and quotients are truncated below word index
// -n; the divisor must be a single word integer.
func eval(x, op, y string, n int) (*fixreal.Real, error) {
	a, err := fixreal.Parse(x, n)
	if err != nil {
		return nil, err
	}
	if op == "/" {
		d, err := strconv.ParseUint(y, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(fixreal.ErrSyntax, "divisor %q is not a word", y)
		}
		return fixreal.DivWithSig(a, fixreal.Word(d), -n)
	}
	b, err := fixreal.Parse(y, n)
	if err != nil {
		return nil, err
	}
	switch op {
	case "+":
		return fixreal.Add(a, b), nil
	case "-":
		return fixreal.Sub(a, b), nil
	case "*", "x":
		return fixreal.MulWithSig(a, b, -n)
	}
	return nil, errors.Errorf("unknown operator %q", op)
}

func newEvalCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <x> <op> <y>",
		Short: "Evaluate a binary operation on decimal numbers.",
		Long: "Evaluate a binary operation on decimal numbers.\n\n" +
			"op is one of +, -, * (or x) and /. The divisor of / must be an unsigned 64 bits integer.",
		Example: "newtonpi eval 1 / 3 --words 2 --digits 30",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := words(v)
			if err != nil {
				return err
			}
			z, err := eval(args[0], args[1], args[2], n)
			if err != nil {
				return err
			}
			z.TrimZeros()
			printReal(v, cmd, z)
			return nil
		},
	}
}
