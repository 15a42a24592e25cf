// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"encoding/json"

	"github.com/samber/oops"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"gonih.org/instant"
)

func diffCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "diff A B",
		Short: "Break the span between two dates into calendar units",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := instantArg(args[0])
			if err != nil {
				return err
			}
			to, err := instantArg(args[1])
			if err != nil {
				return err
			}
			iv, err := from.Difference(to)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch output {
			case "text":
				return writeLine(out, iv)
			case "yaml":
				b, err := yaml.Marshal(iv)
				if err != nil {
					return oops.In("datecalc").Wrapf(err, "encoding yaml")
				}
				_, err = out.Write(b)
				return err
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(iv)
			}
			return oops.In("datecalc").With("output", output).Errorf("unknown output format %q, want text, yaml or json", output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, yaml or json")
	return cmd
}

func monthsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "months A B",
		Short: "Count the months from A to B, ignoring days",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := instant.MonthsBetween(sourceArg(args[0]), sourceArg(args[1]))
			if err != nil {
				return oops.In("datecalc").With("from", args[0]).With("to", args[1]).Wrapf(err, "invalid date")
			}
			return writeLine(cmd.OutOrStdout(), n)
		},
	}
}

func weekdaysCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "weekdays A B",
		Short: "Count the Monday to Friday days from A to B, both included",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := instantArg(args[0])
			if err != nil {
				return err
			}
			to, err := instantArg(args[1])
			if err != nil {
				return err
			}
			return writeLine(cmd.OutOrStdout(), from.WeekdayDifference(to))
		},
	}
}
