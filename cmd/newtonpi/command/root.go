// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package command implements the newtonpi command tree.
//
// Settings are read, in order of precedence, from command line flags,
// NEWTONPI_* environment variables (e.g. NEWTONPI_STEPS), and the config file
// given with --config (yaml, toml or json).
package command

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/db47h/fixreal"
	"github.com/db47h/fixreal/internal/log"
)

// Configuration keys.
const (
	keySteps  = "steps"
	keyDigits = "digits"
	keyWords  = "words"
	keyTerms  = "terms"
	keyHex    = "hex"
)

const envPrefix = "NEWTONPI"

// New returns a new root command.
func New() *cobra.Command {
	v := viper.New()
	var cfgFile string

	root := &cobra.Command{
		Use:   "newtonpi",
		Short: "newtonpi computes π with Newton's method on fixed-point reals.",
		Long: "`newtonpi` computes π/2 as the root of cos with Newton's method, using arbitrary-precision\n" +
			"fixed-point numbers in base 2**64. Each step roughly triples the number of correct digits.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := log.Init(cmd.Flags()); err != nil {
				return err
			}
			return loadConfig(v, cmd, cfgFile)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			log.Flush()
		},
	}

	fs := root.PersistentFlags()
	log.RegisterFlags(fs)
	fs.StringVar(&cfgFile, "config", "", "config file (yaml, toml or json)")
	fs.Int(keyDigits, -1, "number of fractional digits to print, -1 for all")
	fs.Int(keyWords, 4, "number of fractional words used to parse arguments and truncate results")
	fs.Bool(keyHex, false, "print results as hexadecimal words")

	root.AddCommand(newPiCmd(v), newCosCmd(v), newEvalCmd(v))
	return root
}

func loadConfig(v *viper.Viper, cmd *cobra.Command, file string) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "binding flags")
	}
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading config file %s", file)
		}
		log.Infof("using config file %s", v.ConfigFileUsed())
	}
	return nil
}

// words returns the configured number of fractional words.
func words(v *viper.Viper) (int, error) {
	n := v.GetInt(keyWords)
	if n < 0 {
		return 0, errors.Errorf("invalid word count %d", n)
	}
	return n, nil
}

// printReal writes x to cmd's output in the configured format. Leading zero
// words of x are trimmed first.
func printReal(v *viper.Viper, cmd *cobra.Command, x *fixreal.Real) {
	x.TrimMostSignificantZeros()
	if v.GetBool(keyHex) {
		fmt.Fprintf(cmd.OutOrStdout(), "%x\n", x)
		return
	}
	s := x.Text(v.GetInt(keyDigits))
	fmt.Fprintln(cmd.OutOrStdout(), s)
	log.InfoS("result", "words", humanize.Comma(int64(x.Len())), "chars", humanize.Comma(int64(len(s))))
}
