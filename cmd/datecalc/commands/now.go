// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/spf13/cobra"

	"gonih.org/instant"
)

func nowCmd(a *app) *cobra.Command {
	var micro bool
	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the current time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeLine(cmd.OutOrStdout(), instant.NowStamp(micro))
		},
	}
	cmd.Flags().BoolVar(&micro, "micro", false, "include microseconds")
	return cmd
}

func showCmd(a *app) *cobra.Command {
	var layout string
	cmd := &cobra.Command{
		Use:   "show [DATE]",
		Short: "Render a point in time (default now)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i := instant.Now()
			if len(args) == 1 {
				var err error
				if i, err = instantArg(args[0]); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("layout") {
				return writeLine(cmd.OutOrStdout(), a.render(i))
			}
			return writeLine(cmd.OutOrStdout(), i.FormatIn(layout, a.cfg.Names()))
		},
	}
	cmd.Flags().StringVarP(&layout, "layout", "l", "", "layout for this output only")
	return cmd
}

func sinceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "since DATE",
		Short: "Print the seconds between DATE and now",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := instantArg(args[0])
			if err != nil {
				return err
			}
			n, err := instant.SecondsSince(i)
			if err != nil {
				return err
			}
			return writeLine(cmd.OutOrStdout(), n)
		},
	}
}
