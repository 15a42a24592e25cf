// Copyright 2009 The Go Authors.
// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package calendar implements proleptic Gregorian day arithmetic.
//
// A Day counts days since 0001-01-01, so two Days can be subtracted to get an
// exact number of calendar days regardless of clock time, time zone or
// daylight savings time. The computations follow package time, which means
// they make the same assumptions and have the same edge cases.
package calendar

import (
	"time"
)

// See this comment for explanations of the algorithms:
// https://cs.opensource.google/go/go/+/refs/tags/go1.20.6:src/time/time.go;l=353

const (
	// The unsigned zero year for internal calculations.
	// Must be 1 mod 400, and times before it will not compute correctly.
	absoluteZeroYear = -292277022399

	// The year of Day(0).
	internalYear = 1

	absoluteToInternal = (absoluteZeroYear - internalYear) * 365.2425
	internalToAbsolute = -absoluteToInternal

	daysPer400Years = 146097
	daysPer100Years = 36524
	daysPer4Years   = 1461
)

// daysBefore[m] counts the days in a non-leap year before month m begins.
// daysBefore[12] is 365.
var daysBefore = [...]int{
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30 + 31,
}

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn returns the number of days in the given month. Months outside
// [January, December] are normalized first, so DaysIn(13, 2023) is the
// length of January 2024.
func DaysIn(month time.Month, year int) int {
	m := int(month) - 1
	year, m = norm(year, m, 12)
	month = time.Month(m) + 1
	if month == time.February && IsLeap(year) {
		return 29
	}
	return daysBefore[month] - daysBefore[month-1]
}

// norm returns nhi, nlo such that
//
//	hi * base + lo == nhi * base + nlo
//	0 <= nlo < base
func norm(hi, lo, base int) (nhi, nlo int) {
	if lo < 0 {
		n := (-lo-1)/base + 1
		hi -= n
		lo += n * base
	}
	if lo >= base {
		n := lo / base
		hi += n
		lo -= n * base
	}
	return hi, lo
}

// absDate computes the year and zero-based day of year of an absolute day
// and, when full is set, its month and day of month.
func absDate(abs uint64, full bool) (year int, month time.Month, day int, yday int) {
	d := abs

	n := d / daysPer400Years
	y := 400 * n
	d -= daysPer400Years * n

	// The last 100-year cycle has one extra leap year, so on its last day
	// d / daysPer100Years is 4 instead of 3.
	n = d / daysPer100Years
	n -= n >> 2
	y += 100 * n
	d -= daysPer100Years * n

	n = d / daysPer4Years
	y += 4 * n
	d -= daysPer4Years * n

	// Same correction for the leap year closing a 4-year cycle.
	n = d / 365
	n -= n >> 2
	y += n
	d -= 365 * n

	year = int(int64(y) + absoluteZeroYear)
	yday = int(d)

	if !full {
		return
	}

	day = yday
	if IsLeap(year) {
		switch {
		case day > 31+29-1:
			day--
		case day == 31+29-1:
			month = time.February
			day = 29
			return
		}
	}

	// Every month has at most 31 days, so the estimate is at most one
	// month too low.
	month = time.Month(day / 31)
	end := daysBefore[month+1]
	var begin int
	if day >= end {
		month++
		begin = end
	} else {
		begin = daysBefore[month]
	}

	month++
	day = day - begin + 1
	return year, month, day, yday
}

// daysSinceEpoch returns the number of days from the absolute epoch to the
// first of January of year.
func daysSinceEpoch(year int) int {
	y := year - absoluteZeroYear

	n := y / 400
	y -= 400 * n
	d := daysPer400Years * n

	n = y / 100
	y -= 100 * n
	d += daysPer100Years * n

	n = y / 4
	y -= 4 * n
	d += daysPer4Years * n

	d += 365 * y

	return d
}

// A Day is a calendar date, counted in days since 0001-01-01. The zero Day is
// the date of the zero time.Time. Days compare and subtract with Go's
// arithmetic operators.
type Day int

// Of returns the Day of the given date. Out of range months and days are
// normalized as by [time.Date], so October 32 is November 1.
func Of(year int, month time.Month, day int) Day {
	m := int(month) - 1
	year, m = norm(year, m, 12)
	month = time.Month(m) + 1

	d := daysSinceEpoch(year)
	d += daysBefore[month-1]
	if IsLeap(year) && month >= time.March {
		d++
	}
	d += day - 1

	return Day(d - internalToAbsolute)
}

// FromTime returns the Day of t's wall clock date in its own location.
func FromTime(t time.Time) Day {
	return Of(t.Date())
}

// LastOfMonth returns the last Day of the given month, normalizing month
// like Of does.
func LastOfMonth(year int, month time.Month) Day {
	return Of(year, month+1, 0)
}

func (d Day) abs() uint64 {
	return uint64(d + internalToAbsolute)
}

// AddDate adds years, months and days to d, normalizing the result like
// [time.Time.AddDate]: one month after October 31 is December 1.
func (d Day) AddDate(years, months, days int) Day {
	year, month, day := d.Date()
	return Of(year+years, month+time.Month(months), day+days)
}

// Date returns the year, month and day of d.
func (d Day) Date() (year int, month time.Month, day int) {
	year, month, day, _ = absDate(d.abs(), true)
	return year, month, day
}

// YearDay returns the day of the year of d, in [1,365] or [1,366] in leap
// years.
func (d Day) YearDay() int {
	_, _, _, yday := absDate(d.abs(), false)
	return yday + 1
}

// Weekday returns the day of the week of d.
func (d Day) Weekday() time.Weekday {
	return (time.Monday + time.Weekday(d.abs())) % 7 // 0001-01-01 was a Monday
}

// ISOWeek returns the ISO 8601 year and week of d. Jan 01 to Jan 03 may
// belong to the last week of the previous year and Dec 29 to Dec 31 to the
// first week of the next.
func (d Day) ISOWeek() (year, week int) {
	// Shift to the Thursday of the same ISO week.
	offset := time.Thursday - d.Weekday()
	if offset == 4 {
		offset = -3
	}
	d += Day(offset)
	year, _, _, yday := absDate(d.abs(), false)
	return year, yday/7 + 1
}

// MonthsBetween returns the signed number of calendar months from a to b,
// counting only year and month. The day of month is ignored, so
// MonthsBetween(Jan 31, Feb 1) is 1.
func MonthsBetween(a, b Day) int {
	ya, ma, _ := a.Date()
	yb, mb, _ := b.Date()
	return (yb-ya)*12 + int(mb-ma)
}
