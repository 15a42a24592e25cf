// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"github.com/spf13/cobra"
)

func addCmd(a *app) *cobra.Command {
	var (
		years, months, days, hours, minutes, seconds int
		noClamp                                      bool
	)
	cmd := &cobra.Command{
		Use:   "add DATE",
		Short: "Add calendar and clock units to a date",
		Long: `Add calendar and clock units to a date. Negative amounts subtract.

Units are applied from years down to seconds. Month arithmetic clamps to
the end of shorter months (2024-03-31 plus one month is 2024-04-30) unless
--no-clamp is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := instantArg(args[0])
			if err != nil {
				return err
			}
			i.AddYears(years)
			if noClamp {
				i.AddMonthsOverflow(months)
			} else {
				i.AddMonths(months)
			}
			i.AddDays(days).AddHours(hours).AddMinutes(minutes).AddSeconds(seconds)
			return writeLine(cmd.OutOrStdout(), a.render(i))
		},
	}
	f := cmd.Flags()
	f.IntVarP(&years, "years", "y", 0, "years to add")
	f.IntVarP(&months, "months", "m", 0, "months to add")
	f.IntVarP(&days, "days", "d", 0, "days to add")
	f.IntVar(&hours, "hours", 0, "hours to add")
	f.IntVar(&minutes, "minutes", 0, "minutes to add")
	f.IntVar(&seconds, "seconds", 0, "seconds to add")
	f.BoolVar(&noClamp, "no-clamp", false, "let missing days of month overflow into the next month")
	return cmd
}
