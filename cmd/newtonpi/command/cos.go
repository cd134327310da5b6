// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package command

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/db47h/fixreal"
	"github.com/db47h/fixreal/internal/log"
	"github.com/db47h/fixreal/math"
)

func newCosCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cos <theta>",
		Short: "Print the cosine of a decimal number.",
		Long: "Print the cosine of a decimal number.\n\n" +
			"With --terms, the given number of Taylor series terms are summed with --words extra\n" +
			"fractional words per division. Otherwise, summation stops once terms drop below c³/12\n" +
			"where c is the current estimate, which is only accurate near π/2.",
		Example: "newtonpi cos 0.5 --terms 20 --words 3 --digits 30",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := words(v)
			if err != nil {
				return err
			}
			theta, err := fixreal.Parse(args[0], n)
			if err != nil {
				return err
			}
			var c *fixreal.Real
			terms := v.GetInt(keyTerms)
			if terms > 0 {
				c, err = math.CosN(theta, terms, n)
			} else {
				c, terms, err = math.Cos(theta, -n)
			}
			if err != nil {
				return errors.Wrapf(err, "cos(%s)", args[0])
			}
			log.DebugS("cosine series", "terms", terms, "words", n)
			printReal(v, cmd, c)
			return nil
		},
	}
	cmd.Flags().Int(keyTerms, 0, "number of series terms, 0 to stop on the c³/12 threshold")
	return cmd
}
