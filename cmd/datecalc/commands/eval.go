// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"errors"
	"fmt"

	"github.com/samber/oops"
	"github.com/spf13/cobra"
	"go.starlark.net/starlark"

	"gonih.org/instant/starlarkinstant"
)

func evalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "eval FILE",
		Short: "Run a Starlark script with the instant module predeclared",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			predeclared, err := starlarkinstant.LoadModule()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			thread := &starlark.Thread{
				Name: "datecalc",
				Print: func(_ *starlark.Thread, msg string) {
					fmt.Fprintln(out, msg)
				},
			}
			if _, err := starlark.ExecFile(thread, args[0], nil, predeclared); err != nil {
				var evalErr *starlark.EvalError
				if errors.As(err, &evalErr) {
					return oops.In("datecalc").With("script", args[0]).Errorf("%s", evalErr.Backtrace())
				}
				return oops.In("datecalc").With("script", args[0]).Wrapf(err, "running script")
			}
			return nil
		},
	}
}
