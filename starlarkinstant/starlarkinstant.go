// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package starlarkinstant exposes instant arithmetic to Starlark scripts as
// the module "instant".
//
// Points in time are passed as int Unix timestamps or as strings understood
// by instant.Parse. Functions returning a point in time return an int.
package starlarkinstant

import (
	"fmt"

	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"

	"gonih.org/instant"
)

// ModuleName is the name the module is predeclared as.
const ModuleName = "instant"

// Module is the Starlark module of instant functions.
var Module = &starlarkstruct.Module{
	Name: ModuleName,
	Members: starlark.StringDict{
		"now_stamp":          starlark.NewBuiltin("now_stamp", nowStamp),
		"now":                starlark.NewBuiltin("now", now),
		"months_between":     starlark.NewBuiltin("months_between", monthsBetween),
		"difference":         starlark.NewBuiltin("difference", difference),
		"seconds_since":      starlark.NewBuiltin("seconds_since", secondsSince),
		"format":             starlark.NewBuiltin("format", format),
		"add":                starlark.NewBuiltin("add", add),
		"is_weekend":         starlark.NewBuiltin("is_weekend", isWeekend),
		"weekday_difference": starlark.NewBuiltin("weekday_difference", weekdayDifference),
		"start_of_day":       starlark.NewBuiltin("start_of_day", startOfDay),
		"end_of_day":         starlark.NewBuiltin("end_of_day", endOfDay),

		"minute": starlark.MakeInt(instant.Minute),
		"hour":   starlark.MakeInt(instant.Hour),
		"day":    starlark.MakeInt(instant.Day),
		"month":  starlark.MakeInt(instant.Month),
	},
}

// LoadModule loads the instant module.
// It is concurrency-safe and idempotent.
func LoadModule() (starlark.StringDict, error) {
	return starlark.StringDict{
		ModuleName: Module,
	}, nil
}

// source unpacks an int or string argument into an instant.Source.
type source struct {
	instant.Source
}

var _ starlark.Unpacker = (*source)(nil)

func (s *source) Unpack(v starlark.Value) error {
	switch x := v.(type) {
	case starlark.Int:
		n, ok := x.Int64()
		if !ok {
			return fmt.Errorf("timestamp %v out of range", x)
		}
		s.Source = instant.Timestamp(n)
	case starlark.String:
		s.Source = instant.Text(string(x))
	case starlark.NoneType:
		s.Source = instant.Current{}
	default:
		return fmt.Errorf("got %s, want int or string", v.Type())
	}
	return nil
}

func (s *source) instant() (*instant.Instant, error) {
	return instant.New(s.Source)
}

func stamp(i *instant.Instant) starlark.Value {
	return starlark.MakeInt64(i.Unix())
}

func nowStamp(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var micro bool
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "micro?", &micro); err != nil {
		return nil, err
	}
	return starlark.String(instant.NowStamp(micro)), nil
}

func now(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}
	return stamp(instant.Now()), nil
}

func monthsBetween(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var from, to source
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &from, &to); err != nil {
		return nil, err
	}
	n, err := instant.MonthsBetween(from.Source, to.Source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	return starlark.MakeInt(n), nil
}

func difference(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var x, y source
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &x, &y); err != nil {
		return nil, err
	}
	iv, err := instant.Breakdown(x.Source, y.Source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	return starlarkstruct.FromStringDict(starlarkstruct.Default, starlark.StringDict{
		"years":   starlark.MakeInt(iv.Years),
		"months":  starlark.MakeInt(iv.Months),
		"days":    starlark.MakeInt(iv.Days),
		"hours":   starlark.MakeInt(iv.Hours),
		"minutes": starlark.MakeInt(iv.Minutes),
		"seconds": starlark.MakeInt(iv.Seconds),
	}), nil
}

func secondsSince(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var x source
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &x); err != nil {
		return nil, err
	}
	n, err := instant.SecondsSince(x.Source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	return starlark.MakeInt64(n), nil
}

func format(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var (
		x      source
		layout = instant.DefaultFormat()
	)
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "x", &x, "layout?", &layout); err != nil {
		return nil, err
	}
	i, err := x.instant()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	return starlark.String(i.Format(layout)), nil
}

func add(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var (
		x                                            source
		years, months, days, hours, minutes, seconds int
		clamp                                        = true
	)
	if err := starlark.UnpackArgs(b.Name(), args, kwargs,
		"x", &x,
		"years?", &years,
		"months?", &months,
		"days?", &days,
		"hours?", &hours,
		"minutes?", &minutes,
		"seconds?", &seconds,
		"clamp?", &clamp,
	); err != nil {
		return nil, err
	}
	i, err := x.instant()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	i.AddYears(years)
	if clamp {
		i.AddMonths(months)
	} else {
		i.AddMonthsOverflow(months)
	}
	i.AddDays(days).AddHours(hours).AddMinutes(minutes).AddSeconds(seconds)
	return stamp(i), nil
}

// unary unpacks the single point in time argument of b.
func unary(b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (*instant.Instant, error) {
	var x source
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &x); err != nil {
		return nil, err
	}
	i, err := x.instant()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	return i, nil
}

func isWeekend(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	i, err := unary(b, args, kwargs)
	if err != nil {
		return nil, err
	}
	return starlark.Bool(i.IsWeekend()), nil
}

func startOfDay(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	i, err := unary(b, args, kwargs)
	if err != nil {
		return nil, err
	}
	return stamp(i.StartOfDay()), nil
}

func endOfDay(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	i, err := unary(b, args, kwargs)
	if err != nil {
		return nil, err
	}
	return stamp(i.EndOfDay()), nil
}

func weekdayDifference(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var x, y source
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &x, &y); err != nil {
		return nil, err
	}
	i, err := x.instant()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	j, err := y.instant()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}
	return starlark.MakeInt(i.WeekdayDifference(j)), nil
}
