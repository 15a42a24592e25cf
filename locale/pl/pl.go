// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pl contains Polish month and weekday names.
//
// Weekdays are numbered in two conventions: Sunday=0 like [time.Weekday]
// and PHP's date("w"), and Monday=0 as in most European calendars.
// Functions taking an index out of range return the empty string.
package pl

import "time"

var shortMonthNames = [...]string{
	"Sty",
	"Lut",
	"Mar",
	"Kwi",
	"Maj",
	"Cze",
	"Lip",
	"Sie",
	"Wrz",
	"Paź",
	"Lis",
	"Gru",
}

var longMonthNames = [...]string{
	"Styczeń",
	"Luty",
	"Marzec",
	"Kwiecień",
	"Maj",
	"Czerwiec",
	"Lipiec",
	"Sierpień",
	"Wrzesień",
	"Październik",
	"Listopad",
	"Grudzień",
}

// Monday=0.
var shortDayNames = [...]string{
	"Pon",
	"Wto",
	"Śro",
	"Czw",
	"Pią",
	"Sob",
	"Nie",
}

// Monday=0.
var longDayNames = [...]string{
	"Poniedziałek",
	"Wtorek",
	"Środa",
	"Czwartek",
	"Piątek",
	"Sobota",
	"Niedziela",
}

// MonthName returns the name of month 1 through 12.
func MonthName(month int, short bool) string {
	if month < 1 || month > 12 {
		return ""
	}
	if short {
		return shortMonthNames[month-1]
	}
	return longMonthNames[month-1]
}

// DayName returns the name of a weekday in the Sunday=0 convention.
func DayName(dayOfWeek int, short bool) string {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return ""
	}
	return DayNameMondayZero(SundayZeroToMondayZero(dayOfWeek), short)
}

// DayNameMondayZero returns the name of a weekday in the Monday=0
// convention.
func DayNameMondayZero(dayOfWeek int, short bool) string {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return ""
	}
	if short {
		return shortDayNames[dayOfWeek]
	}
	return longDayNames[dayOfWeek]
}

// SundayZeroToMondayZero converts a weekday index from the Sunday=0 to the
// Monday=0 convention.
func SundayZeroToMondayZero(dayOfWeek int) int {
	if dayOfWeek == 0 {
		return 6
	}
	return dayOfWeek - 1
}

// MondayZeroToSundayZero converts a weekday index from the Monday=0 to the
// Sunday=0 convention.
func MondayZeroToSundayZero(dayOfWeek int) int {
	if dayOfWeek == 6 {
		return 0
	}
	return dayOfWeek + 1
}

// Names renders Polish names in instant layouts.
type Names struct{}

// MonthName implements instant.Names.
func (Names) MonthName(m time.Month, short bool) string {
	return MonthName(int(m), short)
}

// DayName implements instant.Names.
func (Names) DayName(d time.Weekday, short bool) string {
	return DayName(int(d), short)
}
