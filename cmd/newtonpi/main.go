// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// newtonpi computes π with Newton's method on arbitrary-precision fixed-point
// numbers, and evaluates cosines and basic arithmetic expressions.
package main

import (
	"os"

	"github.com/db47h/fixreal/cmd/newtonpi/command"
	"github.com/db47h/fixreal/internal/log"
)

func main() {
	if err := command.New().Execute(); err != nil {
		log.ErrorS("command failed", "err", err)
		log.Flush()
		os.Exit(1)
	}
}
