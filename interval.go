// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package instant

import (
	"fmt"
	"time"

	"gonih.org/instant/internal/calendar"
)

// An Interval is the calendar breakdown of the span between two Instants.
// All fields are non-negative; the direction of the span is not recorded.
type Interval struct {
	Years   int `json:"years" yaml:"years"`
	Months  int `json:"months" yaml:"months"`
	Days    int `json:"days" yaml:"days"`
	Hours   int `json:"hours" yaml:"hours"`
	Minutes int `json:"minutes" yaml:"minutes"`
	Seconds int `json:"seconds" yaml:"seconds"`
}

// String returns the interval in a compact form such as "8y 5m 2d 0h 7i 35s",
// using the letters of the corresponding layout characters.
func (iv Interval) String() string {
	return fmt.Sprintf("%dy %dm %dd %dh %di %ds", iv.Years, iv.Months, iv.Days, iv.Hours, iv.Minutes, iv.Seconds)
}

// IsZero reports whether iv is empty.
func (iv Interval) IsZero() bool {
	return iv == Interval{}
}

// Breakdown returns the calendar interval between a and b.
//
// Whole months are counted on the calendar: the difference of the year and
// month fields, less one if the later time's day of month and wall clock
// come before the earlier one's. So January 31 10:00 to February 28 12:00
// is 28 days and 2 hours, not a month. The remaining days are calendar days
// from the earlier time advanced by those months (clamped to the end of
// shorter months), and what is left after the last whole day is split into
// hours, minutes and seconds of elapsed time. Adding the result back with
// AddMonths, AddDays, AddHours, AddMinutes and AddSeconds reaches the later
// time exactly, also across daylight savings changes, where the rest after
// the last whole day may reach 24 hours. Both times are read in the
// location of a.
func Breakdown(a, b Source) (Interval, error) {
	loc := locationOf(a)
	sa, err := resolve(a, loc)
	if err != nil {
		return Interval{}, err
	}
	sb, err := resolve(b, loc)
	if err != nil {
		return Interval{}, err
	}
	if sa > sb {
		sa, sb = sb, sa
	}
	return breakdown(time.Unix(sa, 0).In(loc), time.Unix(sb, 0).In(loc)), nil
}

// breakdown computes the interval from from to to, which must not be before
// from.
func breakdown(from, to time.Time) Interval {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()

	months := (ty-fy)*12 + int(tm-fm)
	if td < fd || (td == fd && wallBefore(to, from)) {
		months--
	}
	if months < 0 {
		// Only within a repeated daylight savings hour.
		months = 0
	}

	for {
		anchor := addMonthsClamped(from, months)
		start := calendar.FromTime(anchor)
		days := int(calendar.FromTime(to) - start)
		at := func(days int) time.Time {
			if days == 0 {
				return anchor
			}
			return onDay(anchor, start+calendar.Day(days))
		}
		last := at(days)
		for days > 0 && last.After(to) {
			days--
			last = at(days)
		}
		if last.After(to) && months > 0 {
			// The anchor landed on a skipped wall clock time past to.
			months--
			continue
		}
		return split(months, days, to.Sub(last))
	}
}

// addMonthsClamped is t advanced by n >= 0 months like AddMonths.
func addMonthsClamped(t time.Time, n int) time.Time {
	if n == 0 {
		return t
	}
	y, m, d := t.Date()
	m += time.Month(n)
	if last := calendar.DaysIn(m, y); d > last {
		d = last
	}
	return onDay(t, calendar.Of(y, m, d))
}

// split builds an Interval from whole months and days and the elapsed rest.
func split(months, days int, rest time.Duration) Interval {
	secs := int(rest / time.Second)
	return Interval{
		Years:   months / 12,
		Months:  months % 12,
		Days:    days,
		Hours:   secs / 3600,
		Minutes: secs / 60 % 60,
		Seconds: secs % 60,
	}
}

// wallBefore reports whether the wall clock of a is before that of b.
func wallBefore(a, b time.Time) bool {
	ah, am, as := a.Clock()
	bh, bm, bs := b.Clock()
	return ah*3600+am*60+as < bh*3600+bm*60+bs
}

// MonthsBetween returns the signed number of months from from to to,
// counting only their years and months: MonthsBetween of January 31 and
// February 1 is 1. Both are read as calendar dates in the location of from.
// Text that does not parse yields a *ParseError.
func MonthsBetween(from, to Source) (int, error) {
	loc := locationOf(from)
	sf, err := resolve(from, loc)
	if err != nil {
		return 0, err
	}
	st, err := resolve(to, loc)
	if err != nil {
		return 0, err
	}
	df := calendar.FromTime(time.Unix(sf, 0).In(loc))
	dt := calendar.FromTime(time.Unix(st, 0).In(loc))
	return calendar.MonthsBetween(df, dt), nil
}

// SecondsSince returns the absolute number of seconds between now and src.
func SecondsSince(src Source) (int64, error) {
	sec, err := resolve(src, locationOf(src))
	if err != nil {
		return 0, err
	}
	d := now().Unix() - sec
	if d < 0 {
		d = -d
	}
	return d, nil
}

// NowStamp returns the current time in the default location as
// "2006-01-02 15:04:05", or with micro set as "2006-01-02 15:04:05.000000".
func NowStamp(micro bool) string {
	t := now().In(DefaultLocation())
	if micro {
		return formatTime(t, MicroLayout, English)
	}
	return formatTime(t, DefaultLayout, English)
}
