// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"gonih.org/instant"
	"gonih.org/instant/locale/pl"
)

var weekendStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

func calCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cal [YYYY-MM]",
		Short: "Print a month calendar (default the current month)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var year int
			var month time.Month
			if len(args) == 1 {
				d, err := civil.ParseDate(args[0] + "-01")
				if err != nil {
					return oops.In("datecalc").With("month", args[0]).Wrapf(err, "want YYYY-MM")
				}
				year, month = d.Year, d.Month
			} else {
				year, month, _ = instant.Now().Date()
			}
			out := cmd.OutOrStdout()
			return writeMonth(out, year, month, a.cfg.Names(), isTerminal(out))
		},
	}
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// writeMonth prints a Monday first calendar of the given month. If color is
// set, weekends are highlighted.
func writeMonth(w io.Writer, year int, month time.Month, names instant.Names, color bool) error {
	first, err := instant.New(instant.CivilDate(civil.Date{Year: year, Month: month, Day: 1}))
	if err != nil {
		return err
	}
	_, _, days := first.Clone().AddMonths(1).SubDays(1).Date()

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %d\n", names.MonthName(month, false), year)

	row := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		wd := time.Weekday(pl.MondayZeroToSundayZero(i))
		row = append(row, fmt.Sprintf("%3s", names.DayName(wd, true)))
	}
	sb.WriteString(strings.Join(row, " ") + "\n")

	row = row[:0]
	offset := pl.SundayZeroToMondayZero(int(first.Weekday()))
	for i := 0; i < offset; i++ {
		row = append(row, "   ")
	}
	for day := 1; day <= days; day++ {
		cell := fmt.Sprintf("%3d", day)
		if color && len(row) >= 5 {
			cell = weekendStyle.Render(cell)
		}
		row = append(row, cell)
		if len(row) == 7 || day == days {
			sb.WriteString(strings.TrimRight(strings.Join(row, " "), " ") + "\n")
			row = row[:0]
		}
	}
	_, err = io.WriteString(w, sb.String())
	return err
}
