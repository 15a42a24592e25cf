// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pl

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthName(t *testing.T) {
	assert.Equal(t, "Styczeń", MonthName(1, false))
	assert.Equal(t, "Sty", MonthName(1, true))
	assert.Equal(t, "Październik", MonthName(10, false))
	assert.Equal(t, "Paź", MonthName(10, true))
	assert.Equal(t, "Grudzień", MonthName(12, false))
	assert.Empty(t, MonthName(0, false))
	assert.Empty(t, MonthName(13, true))
}

// DayName counts from Sunday=0 like time.Weekday, so 0 is Niedziela and not
// Sobota.
func TestDayName(t *testing.T) {
	assert.Equal(t, "Niedziela", DayName(0, false))
	assert.Equal(t, "Nie", DayName(0, true))
	assert.Equal(t, "Poniedziałek", DayName(1, false))
	assert.Equal(t, "Sobota", DayName(6, false))
	assert.Empty(t, DayName(7, false))
	assert.Empty(t, DayName(-1, true))
}

func TestDayNameMondayZero(t *testing.T) {
	assert.Equal(t, "Poniedziałek", DayNameMondayZero(0, false))
	assert.Equal(t, "Pon", DayNameMondayZero(0, true))
	assert.Equal(t, "Środa", DayNameMondayZero(2, false))
	assert.Equal(t, "Niedziela", DayNameMondayZero(6, false))
	assert.Empty(t, DayNameMondayZero(7, false))
}

func TestConversions(t *testing.T) {
	for sun := 0; sun < 7; sun++ {
		mon := SundayZeroToMondayZero(sun)
		assert.GreaterOrEqual(t, mon, 0)
		assert.Less(t, mon, 7)
		assert.Equal(t, sun, MondayZeroToSundayZero(mon), "round trip of %d", sun)
		assert.Equal(t, DayName(sun, false), DayNameMondayZero(mon, false))
	}
	assert.Equal(t, 6, SundayZeroToMondayZero(0))
	assert.Equal(t, 0, MondayZeroToSundayZero(6))
}

func TestNames(t *testing.T) {
	var n Names
	assert.Equal(t, "Marzec", n.MonthName(time.March, false))
	assert.Equal(t, "Mar", n.MonthName(time.March, true))
	assert.Equal(t, "Piątek", n.DayName(time.Friday, false))
	assert.Equal(t, "Sob", n.DayName(time.Saturday, true))
}
