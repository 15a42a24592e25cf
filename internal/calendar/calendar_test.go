// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"strconv"
	"testing"
	"time"
)

var tcs = []struct {
	year  int
	month time.Month
	day   int
	want  Day
}{
	{1, 1, 1, 0},
	{2, 1, 1, 365},
	{3, 1, 1, 730},
	{4, 1, 1, 1095},
	{5, 1, 1, 1461},

	{1, 3, 1, 59},
	{4, 3, 1, 1155},
	{5, 3, 1, 1520},

	{1, 1, 31, 30},
	{1, 1, 32, 31},
	{1, 1, 0, -1},
	{0, 12, 31, -1},
	{1964, 12, 104, 717408},
	{1970, 1, 1, 719162},
	{2023, 7, 14, 738714},
	{2024, 2, 29, 738944},
}

func TestOf(t *testing.T) {
	for i, tc := range tcs {
		tc := tc
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if got := Of(tc.year, tc.month, tc.day); got != tc.want {
				t.Errorf("Of(%d, %d, %d) = %d, want %d", tc.year, tc.month, tc.day, got, tc.want)
			}
			check(t, tc.year, int(tc.month), tc.day)
		})
	}
}

func FuzzOf(f *testing.F) {
	for _, tc := range tcs {
		f.Add(tc.year, int(tc.month), tc.day)
	}
	f.Fuzz(func(t *testing.T, year, month, day int) {
		// Keep within the range time.Time can represent.
		if year < -100000 || year > 100000 || month < -1200 || month > 1200 || day < -36500 || day > 36500 {
			return
		}
		check(t, year, month, day)
	})
}

func TestDaysIn(t *testing.T) {
	tcs := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2023, time.January, 31},
		{2023, time.February, 28},
		{2024, time.February, 29},
		{1900, time.February, 28},
		{2000, time.February, 29},
		{2024, time.April, 30},
		{2023, 13, 31},
		{2024, 0, 31},
		{2024, 14, 28},
	}
	for _, tc := range tcs {
		if got := DaysIn(tc.month, tc.year); got != tc.want {
			t.Errorf("DaysIn(%d, %d) = %d, want %d", tc.month, tc.year, got, tc.want)
		}
	}
}

func TestLastOfMonth(t *testing.T) {
	tcs := []struct {
		year  int
		month time.Month
		want  Day
	}{
		{2024, time.February, Of(2024, 2, 29)},
		{2023, time.February, Of(2023, 2, 28)},
		{2024, time.April, Of(2024, 4, 30)},
		{2024, time.December, Of(2024, 12, 31)},
		{2024, 13, Of(2025, 1, 31)},
	}
	for _, tc := range tcs {
		if got := LastOfMonth(tc.year, tc.month); got != tc.want {
			y, m, d := got.Date()
			t.Errorf("LastOfMonth(%d, %d) = %d-%02d-%02d, want %v", tc.year, tc.month, y, m, d, tc.want)
		}
	}
}

func TestMonthsBetween(t *testing.T) {
	tcs := []struct {
		a, b Day
		want int
	}{
		{Of(2020, 1, 1), Of(2020, 1, 1), 0},
		{Of(2020, 1, 1), Of(2020, 3, 1), 2},
		{Of(2020, 3, 1), Of(2020, 1, 1), -2},
		{Of(2020, 2, 1), Of(2021, 2, 1), 12},
		{Of(2024, 1, 31), Of(2024, 2, 1), 1},
		{Of(2024, 3, 31), Of(2024, 5, 1), 2},
		{Of(1969, 12, 31), Of(1970, 1, 1), 1},
	}
	for _, tc := range tcs {
		if got := MonthsBetween(tc.a, tc.b); got != tc.want {
			t.Errorf("MonthsBetween(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestAddDate(t *testing.T) {
	d := Of(2023, 10, 31)
	if got, want := d.AddDate(0, 1, 0), Of(2023, 12, 1); got != want {
		t.Errorf("AddDate(0, 1, 0) = %d, want %d", got, want)
	}
	if got, want := d.AddDate(-1, 2, 3), Of(2023, 1, 3); got != want {
		t.Errorf("AddDate(-1, 2, 3) = %d, want %d", got, want)
	}
	if got, want := d.AddDate(0, 0, 1), d+1; got != want {
		t.Errorf("AddDate(0, 0, 1) = %d, want %d", got, want)
	}
}

// check that the given year, month and day values produce the same date
// calculations as time.Time.
func check(t *testing.T, year, month, day int) {
	d := Of(year, time.Month(month), day)
	got := time.Date(1, 1, 1, 6, 0, 0, 0, time.UTC).AddDate(0, 0, int(d))
	want := time.Date(year, time.Month(month), day, 6, 0, 0, 0, time.UTC)
	if got != want {
		t.Errorf("Of(%d, %d, %d): %v != %v", year, month, day, got.Format(time.DateOnly), want.Format(time.DateOnly))
	}
	Y, M, D := d.Date()
	if wantY, wantM, wantD := want.Date(); Y != wantY || M != wantM || D != wantD {
		t.Errorf("Of(%d, %d, %d).Date() = %d, %d, %d, want %d, %d, %d", year, month, day, Y, M, D, wantY, wantM, wantD)
	}
	if d2 := Of(Y, M, D); d2 != d {
		t.Errorf("Of(%d, %d, %d) = %d, want %d", Y, M, D, d2, d)
	}
	if d2 := FromTime(want); d2 != d {
		t.Errorf("FromTime(%v) = %d, want %d", want, d2, d)
	}
	if gotYD, wantYD := d.YearDay(), want.YearDay(); gotYD != wantYD {
		t.Errorf("Of(%d, %d, %d).YearDay() = %d, want %d", year, month, day, gotYD, wantYD)
	}
	if gotWD, wantWD := d.Weekday(), want.Weekday(); gotWD != wantWD {
		t.Errorf("Of(%d, %d, %d).Weekday() = %v, want %v", year, month, day, gotWD, wantWD)
	}
	gotIY, gotIW := d.ISOWeek()
	wantIY, wantIW := want.ISOWeek()
	if gotIY != wantIY || gotIW != wantIW {
		t.Errorf("Of(%d, %d, %d).ISOWeek() = (%d, %d), want (%d, %d)", year, month, day, gotIY, gotIW, wantIY, wantIW)
	}
	if gotDI, wantDI := DaysIn(M, Y), time.Date(Y, M+1, 0, 0, 0, 0, 0, time.UTC).Day(); gotDI != wantDI {
		t.Errorf("DaysIn(%d, %d) = %d, want %d", M, Y, gotDI, wantDI)
	}
}
