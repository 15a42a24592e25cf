// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package instant provides a mutable point in time with calendar arithmetic.
//
// An Instant is a Unix timestamp in whole seconds, paired with the location
// used to interpret it as a calendar date. Its methods mutate the receiver
// and return it, so calls can be chained:
//
//	d := instant.MustParse("2024-03-31").AddMonths(1).EndOfDay()
//	fmt.Println(d) // 2024-04-30 23:59:59
//
// Month arithmetic clamps to the end of the month by default: one month
// after March 31 is April 30, not May 1. Use AddMonthsOverflow for the
// normalizing behavior of [time.Time.AddDate].
//
// Instants are rendered with PHP date style layouts (see [DefaultLayout]).
// An Instant may carry its own layout; otherwise the process-wide layout set
// with [SetDefaultFormat] applies.
package instant

import (
	"encoding/binary"
	"errors"
	"time"

	"cloud.google.com/go/civil"

	"gonih.org/instant/internal/calendar"
	"gonih.org/instant/internal/logging"
)

// Fixed unit lengths, in seconds. Month is a 30 day month.
const (
	Minute = 60
	Hour   = 60 * Minute
	Day    = 24 * Hour
	Month  = 30 * Day
)

// An Instant is a point in time with second precision. The zero value is the
// Unix epoch in the default location.
//
// Instants are not safe for concurrent mutation.
type Instant struct {
	sec    int64
	loc    *time.Location
	layout *string
}

// New returns an Instant set from src.
func New(src Source) (*Instant, error) {
	i := &Instant{loc: locationOf(src)}
	if _, err := i.Set(src); err != nil {
		return nil, err
	}
	return i, nil
}

// Now returns the current Instant of the process clock.
func Now() *Instant {
	return &Instant{sec: now().Unix(), loc: DefaultLocation()}
}

// Unix returns the Instant of the given Unix seconds.
func Unix(sec int64) *Instant {
	return &Instant{sec: sec, loc: DefaultLocation()}
}

// FromTime returns the Instant of t, truncated to seconds, in t's location.
func FromTime(t time.Time) *Instant {
	return &Instant{sec: t.Unix(), loc: t.Location()}
}

// Parse returns the Instant described by s in the default location.
//
// Besides the many layouts recognized by github.com/araddon/dateparse, s may
// be one of the keywords now, today, midnight, tomorrow or yesterday, a Unix
// timestamp written as "@1700000000", or a sequence of relative offsets such
// as "+1 day -2 hours". The error is a *ParseError.
func Parse(s string) (*Instant, error) {
	return New(Text(s))
}

// MustParse is like Parse but panics if s cannot be parsed.
func MustParse(s string) *Instant {
	i, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return i
}

// Clone returns a copy of i, including its location and layout.
func (i *Instant) Clone() *Instant {
	c := *i
	return &c
}

// Set sets i from src. On error i is left unchanged.
func (i *Instant) Set(src Source) (*Instant, error) {
	sec, err := resolve(src, i.Location())
	if err != nil {
		return i, err
	}
	i.sec = sec
	return i, nil
}

// In sets the location used for calendar arithmetic and formatting. The
// point in time does not change.
func (i *Instant) In(loc *time.Location) *Instant {
	if loc == nil {
		loc = DefaultLocation()
	}
	i.loc = loc
	return i
}

// Location returns the location of i.
func (i *Instant) Location() *time.Location {
	if i.loc == nil {
		return DefaultLocation()
	}
	return i.loc
}

// Unix returns i as Unix seconds.
func (i *Instant) Unix() int64 {
	return i.sec
}

// Time returns i as a time.Time in its location.
func (i *Instant) Time() time.Time {
	return time.Unix(i.sec, 0).In(i.Location())
}

// setTime sets i to t, dropping sub-second precision.
func (i *Instant) setTime(t time.Time) *Instant {
	i.sec = t.Unix()
	return i
}

// Date returns the calendar date of i in its location.
func (i *Instant) Date() (year int, month time.Month, day int) {
	return i.Time().Date()
}

// Clock returns the wall clock time of i in its location.
func (i *Instant) Clock() (hour, min, sec int) {
	return i.Time().Clock()
}

// Weekday returns the day of the week of i in its location.
func (i *Instant) Weekday() time.Weekday {
	return i.Time().Weekday()
}

// Civil returns the wall clock date and time of i in its location.
func (i *Instant) Civil() civil.DateTime {
	return civil.DateTimeOf(i.Time())
}

// AddSeconds adds n seconds to i.
func (i *Instant) AddSeconds(n int) *Instant {
	i.sec += int64(n)
	return i
}

// AddMinutes adds n minutes to i.
func (i *Instant) AddMinutes(n int) *Instant {
	i.sec += int64(n) * Minute
	return i
}

// AddHours adds n hours to i.
func (i *Instant) AddHours(n int) *Instant {
	i.sec += int64(n) * Hour
	return i
}

// AddDays adds n calendar days to i, keeping the wall clock time.
func (i *Instant) AddDays(n int) *Instant {
	if n == 0 {
		return i
	}
	t := i.Time()
	return i.setTime(onDay(t, calendar.FromTime(t)+calendar.Day(n)))
}

// AddYears adds n years to i. February 29 plus one year is March 1.
func (i *Instant) AddYears(n int) *Instant {
	if n == 0 {
		return i
	}
	t := i.Time()
	return i.setTime(onDay(t, calendar.FromTime(t).AddDate(n, 0, 0)))
}

// AddMonths adds n calendar months to i. If the day of month does not exist
// in the target month, the result is the last day of that month at the same
// time of day: January 31 plus one month is February 28 or 29.
func (i *Instant) AddMonths(n int) *Instant {
	if n == 0 {
		return i
	}
	before := i.Time()
	from := calendar.FromTime(before)
	to := from.AddDate(0, n, 0)
	if calendar.MonthsBetween(from, to) <= n {
		return i.setTime(onDay(before, to))
	}
	y, m, _ := before.Date()
	after := onDay(before, calendar.LastOfMonth(y, m+time.Month(n)))
	log.WithFields(logging.Fields{
		"from":   before.Format(time.DateTime),
		"months": n,
		"to":     after.Format(time.DateTime),
	}).Debug("clamped month addition to end of month")
	return i.setTime(after)
}

// AddMonthsOverflow adds n calendar months to i, normalizing a missing day
// of month into the following month: March 31 plus one month is May 1.
func (i *Instant) AddMonthsOverflow(n int) *Instant {
	if n == 0 {
		return i
	}
	t := i.Time()
	return i.setTime(onDay(t, calendar.FromTime(t).AddDate(0, n, 0)))
}

// onDay returns the time on day d with the wall clock of t. A wall clock
// that does not exist on d is normalized as by time.Date.
func onDay(t time.Time, d calendar.Day) time.Time {
	y, m, dd := d.Date()
	h, mi, s := t.Clock()
	return time.Date(y, m, dd, h, mi, s, 0, t.Location())
}

// SubSeconds subtracts n seconds from i.
func (i *Instant) SubSeconds(n int) *Instant { return i.AddSeconds(-n) }

// SubMinutes subtracts n minutes from i.
func (i *Instant) SubMinutes(n int) *Instant { return i.AddMinutes(-n) }

// SubHours subtracts n hours from i.
func (i *Instant) SubHours(n int) *Instant { return i.AddHours(-n) }

// SubDays subtracts n calendar days from i.
func (i *Instant) SubDays(n int) *Instant { return i.AddDays(-n) }

// SubMonths subtracts n calendar months from i, clamping like AddMonths.
func (i *Instant) SubMonths(n int) *Instant { return i.AddMonths(-n) }

// SubMonthsOverflow subtracts n calendar months from i, normalizing like
// AddMonthsOverflow.
func (i *Instant) SubMonthsOverflow(n int) *Instant { return i.AddMonthsOverflow(-n) }

// SubYears subtracts n years from i.
func (i *Instant) SubYears(n int) *Instant { return i.AddYears(-n) }

// StartOfDay sets the wall clock time of i to 00:00:00.
func (i *Instant) StartOfDay() *Instant {
	return i.setTime(startOfDay(i.Time()))
}

// EndOfDay sets the wall clock time of i to 23:59:59.
func (i *Instant) EndOfDay() *Instant {
	t := i.Time()
	y, m, d := t.Date()
	return i.setTime(time.Date(y, m, d, 23, 59, 59, 0, t.Location()))
}

// IsWeekend reports whether i falls on a Saturday or Sunday.
func (i *Instant) IsWeekend() bool {
	wd := i.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsWeekday reports whether i falls on Monday through Friday.
func (i *Instant) IsWeekday() bool {
	return !i.IsWeekend()
}

// WeekdayDifference counts the weekdays between i and other, both included.
//
// It steps from the earlier Instant in increments of exactly 24 hours and
// checks the weekday of each step, so a range crossing a daylight savings
// transition may be off by one day.
func (i *Instant) WeekdayDifference(other *Instant) int {
	start, end := i.sec, other.sec
	if start > end {
		start, end = end, start
	}
	loc := i.Location()
	n := 0
	for t := start; t <= end; t += Day {
		switch time.Unix(t, 0).In(loc).Weekday() {
		case time.Saturday, time.Sunday:
		default:
			n++
		}
	}
	return n
}

// Compare returns -1 if i is before other, +1 if it is after and 0 if both
// are the same second.
func (i *Instant) Compare(other *Instant) int {
	switch {
	case i.sec < other.sec:
		return -1
	case i.sec > other.sec:
		return +1
	}
	return 0
}

// IsBefore reports whether i is strictly before other.
func (i *Instant) IsBefore(other *Instant) bool { return i.sec < other.sec }

// IsAfter reports whether i is strictly after other.
func (i *Instant) IsAfter(other *Instant) bool { return i.sec > other.sec }

// IsEqual reports whether i and other are the same second, regardless of
// their locations.
func (i *Instant) IsEqual(other *Instant) bool { return i.sec == other.sec }

// Difference returns the calendar interval between i and other, computed in
// i's location. See [Breakdown].
func (i *Instant) Difference(other Source) (Interval, error) {
	return Breakdown(i, other)
}

// WithFormat sets the layout used by Text and String for i only. Pass Raw
// to render the raw timestamp.
func (i *Instant) WithFormat(layout string) *Instant {
	i.layout = &layout
	return i
}

// InheritFormat drops the layout of i, so that the process-wide layout
// applies again.
func (i *Instant) InheritFormat() *Instant {
	i.layout = nil
	return i
}

// layoutOrDefault returns the layout for Text.
func (i *Instant) layoutOrDefault() string {
	if i.layout != nil {
		return *i.layout
	}
	return DefaultFormat()
}

// Format returns i rendered with layout. The Raw layout renders the decimal
// Unix timestamp.
func (i *Instant) Format(layout string) string {
	return formatTime(i.Time(), layout, English)
}

// FormatIn is like Format, but takes month and day names from names.
func (i *Instant) FormatIn(layout string, names Names) string {
	return formatTime(i.Time(), layout, names)
}

// AppendFormat is like Format but appends to b and returns the extended
// buffer.
func (i *Instant) AppendFormat(b []byte, layout string) []byte {
	return appendLayout(b, i.Time(), layout, English)
}

// Text renders i with its own layout or, if it has none, the process-wide
// layout.
func (i *Instant) Text() string {
	return i.Format(i.layoutOrDefault())
}

// String implements fmt.Stringer. It is the same as Text.
func (i *Instant) String() string {
	return i.Text()
}

// ISO8601 returns i formatted as ISO 8601 with a numeric zone offset.
func (i *Instant) ISO8601() string {
	return i.Format(ISO8601Layout)
}

// MarshalText implements encoding.TextMarshaler. The Instant is encoded in
// ISO 8601 format.
func (i *Instant) MarshalText() ([]byte, error) {
	return i.AppendFormat(nil, ISO8601Layout), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts everything
// Parse accepts.
func (i *Instant) UnmarshalText(b []byte) error {
	t, err := parseText(string(b), i.Location(), now())
	if err != nil {
		return err
	}
	if i.loc == nil {
		i.loc = t.Location()
	}
	i.sec = t.Unix()
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler. The Instant is encoded
// as a [binary.Varint] of its Unix seconds; the location is not preserved.
func (i *Instant) MarshalBinary() ([]byte, error) {
	b := make([]byte, binary.MaxVarintLen64)
	return b[:binary.PutVarint(b, i.sec)], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (i *Instant) UnmarshalBinary(b []byte) error {
	v, n := binary.Varint(b)
	switch {
	case n == 0:
		return errors.New("encoded instant truncated")
	case n < 0:
		return errors.New("encoded instant overflows int64")
	case n != len(b):
		return errors.New("extra data after instant")
	}
	i.sec = v
	return nil
}
