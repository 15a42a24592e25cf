// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands defines the datecalc CLI.
//
// Commands
//
//   - now        Print the current time
//   - show       Render a point in time
//   - add        Add years, months, days and clock units
//   - diff       Break the span between two times into calendar units
//   - months     Count the months between two dates
//   - since      Print the seconds elapsed since a time
//   - weekdays   Count Monday to Friday days in a range
//   - cal        Print a month calendar
//   - eval       Run a Starlark script with the instant module
//
// Dates are given as Unix timestamps or as text understood by
// instant.Parse, such as "2024-03-31 10:00", "tomorrow" or "+2 weeks".
//
// # Implementation
//
// The root command loads the configuration (file, DATECALC_* environment,
// flags) before any subcommand runs and applies it to the process defaults
// of package instant, so subcommands render with the configured layout,
// time zone and clock.
package commands
