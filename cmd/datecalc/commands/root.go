// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/samber/oops"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"gonih.org/instant"
	"gonih.org/instant/internal/config"
	"gonih.org/instant/internal/logging"
)

var log = logging.GetLogger()

// app is the state shared by the subcommands of one run.
type app struct {
	cfgFile  string
	logLevel string
	cfg      *config.Config
}

// Execute runs the datecalc command line.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd returns the datecalc command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "datecalc",
		Short:        "Calendar arithmetic on the command line",
		SilenceUsage: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default ~/.datecalc/config.yaml)")
	pf.StringVar(&a.logLevel, "log-level", "", "log to stderr at this level (debug, info, warn, error)")
	pf.String("tz", "", "time zone, e.g. Europe/Warsaw")
	pf.String("format", "", "display layout in PHP date() syntax")
	pf.Bool("raw", false, "print raw Unix timestamps")
	pf.String("locale", "", "month and weekday names: en or pl")
	pf.Bool("ntp", false, "correct the clock with NTP")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return a.setup(cmd, root)
	}

	root.AddCommand(
		nowCmd(a),
		showCmd(a),
		addCmd(a),
		diffCmd(a),
		monthsCmd(a),
		sinceCmd(a),
		weekdaysCmd(a),
		calCmd(a),
		evalCmd(a),
	)
	return root
}

// setup loads the configuration and applies it to package instant.
func (a *app) setup(cmd, root *cobra.Command) error {
	if a.logLevel != "" {
		lvl, err := logrus.ParseLevel(a.logLevel)
		if err != nil {
			return oops.In("datecalc").With("level", a.logLevel).Wrapf(err, "invalid log level")
		}
		logging.SetOutput(cmd.ErrOrStderr(), lvl)
	}

	v := config.New(a.cfgFile)
	for key, flag := range map[string]string{
		config.KeyTimezone:   "tz",
		config.KeyFormat:     "format",
		config.KeyRaw:        "raw",
		config.KeyLocale:     "locale",
		config.KeyNTPEnabled: "ntp",
	} {
		if err := v.BindPFlag(key, root.PersistentFlags().Lookup(flag)); err != nil {
			return oops.In("datecalc").With("flag", flag).Wrapf(err, "binding flag")
		}
	}
	if err := config.Read(v); err != nil {
		return err
	}
	cfg, err := config.FromViper(v)
	if err != nil {
		return err
	}
	if err := cfg.Apply(cmd.Context()); err != nil {
		return err
	}
	a.cfg = cfg
	log.WithFields(logging.Fields{
		"timezone": cfg.Timezone,
		"layout":   cfg.Layout(),
		"locale":   cfg.Locale,
	}).Debug("configuration applied")
	return nil
}

// render formats i with the configured layout and names.
func (a *app) render(i *instant.Instant) string {
	return i.FormatIn(a.cfg.Layout(), a.cfg.Names())
}

// sourceArg interprets a command line argument. Integers are Unix
// timestamps, anything else is parsed as text.
func sourceArg(s string) instant.Source {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return instant.Timestamp(n)
	}
	return instant.Text(s)
}

// instantArg resolves a command line argument to an Instant.
func instantArg(s string) (*instant.Instant, error) {
	i, err := instant.New(sourceArg(s))
	if err != nil {
		return nil, oops.In("datecalc").With("argument", s).Wrapf(err, "invalid date")
	}
	return i, nil
}

func writeLine(w io.Writer, v any) error {
	_, err := fmt.Fprintln(w, v)
	return err
}
