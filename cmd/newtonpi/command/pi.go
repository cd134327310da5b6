// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package command

import (
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/db47h/fixreal"
	"github.com/db47h/fixreal/internal/log"
	"github.com/db47h/fixreal/math"
)

func newPiCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pi",
		Short: "Print π computed with a given number of Newton steps.",
		Example: "newtonpi pi --steps 5 --digits 60\n" +
			"NEWTONPI_STEPS=7 newtonpi pi",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			steps := v.GetInt(keySteps)
			if steps < 0 {
				return errors.Errorf("invalid step count %d", steps)
			}
			p, err := newtonPi(steps)
			if err != nil {
				return err
			}
			printReal(v, cmd, p)
			return nil
		},
	}
	cmd.Flags().Int(keySteps, 5, "number of Newton steps")
	return cmd
}

// newtonPi runs the Newton iteration and logs each step.
func newtonPi(steps int) (*fixreal.Real, error) {
	nt := math.NewNewton()
	for i := 0; i < steps; i++ {
		start := time.Now()
		s, err := nt.Step()
		if errors.Is(err, math.ErrConverged) {
			log.WarnS("newton iteration converged early", "step", i, "steps", steps)
			break
		}
		if err != nil {
			return nil, err
		}
		log.InfoS("newton step",
			"n", s.N,
			"floor", s.MinSig,
			"terms", s.Terms,
			"words", humanize.Comma(int64(s.X.Len())),
			"delta_words", humanize.Comma(int64(s.Delta.Len())),
			"elapsed", time.Since(start))
		if log.Enabled(slog.LevelDebug) {
			log.DebugS("newton correction", "n", s.N, "delta", s.Delta.Text(40))
		}
	}
	return fixreal.Mul(nt.X(), fixreal.FromWord(2))
}
