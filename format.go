// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package instant

import (
	"errors"
	"strconv"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"gonih.org/instant/internal/cache"
	"gonih.org/instant/internal/calendar"
)

// Layouts use the format characters of PHP's date function. Every ASCII
// letter listed below is replaced by the corresponding component, any other
// character is copied verbatim and a backslash escapes the next character.
//
//	Day:      d (01-31)  D (Mon)  j (1-31)  l (Monday)  N (1=Mon..7=Sun)
//	          S (st, nd, rd, th)  w (0=Sun..6=Sat)  z (0-365)
//	Week:     W (ISO 8601 week, 01-53)
//	Month:    F (January)  m (01-12)  M (Jan)  n (1-12)  t (28-31)
//	Year:     L (1 if leap)  o (ISO 8601 year)  Y (2006)  y (06)
//	Time:     a (am)  A (AM)  g (1-12)  G (0-23)  h (01-12)  H (00-23)
//	          i (00-59)  s (00-59)  u (microseconds)  v (milliseconds)
//	Zone:     e (Europe/Warsaw)  T (CET)  P (+01:00)  O (+0100)  Z (3600)
//	Full:     c (ISO 8601)  r (RFC 2822)  U (Unix seconds)
const (
	// DefaultLayout is the initial process-wide display layout.
	DefaultLayout = "Y-m-d H:i:s"

	// Raw is the layout rendering the decimal Unix timestamp instead of a
	// formatted date.
	Raw = ""

	DateLayout    = "Y-m-d"
	ISO8601Layout = "c"
	RFC2822Layout = "r"
	MicroLayout   = "Y-m-d H:i:s.u"
)

// defaultLayout is shared by every Instant without a layout of its own.
var defaultLayout atomic.Pointer[string]

// SetDefaultFormat changes the process-wide display layout used by Text and
// String for Instants without an instance layout. Pass Raw to render raw
// timestamps. The setting is global and never reset.
func SetDefaultFormat(layout string) {
	defaultLayout.Store(&layout)
	log.WithField("layout", layout).Debug("default display layout changed")
}

// DefaultFormat returns the process-wide display layout.
func DefaultFormat() string {
	if p := defaultLayout.Load(); p != nil {
		return *p
	}
	return DefaultLayout
}

// Names provides the month and weekday names used by the F, M, l and D
// layout characters.
type Names interface {
	MonthName(m time.Month, short bool) string
	DayName(d time.Weekday, short bool) string
}

// English is the default Names.
var English Names = english{}

type english struct{}

func (english) MonthName(m time.Month, short bool) string {
	if short {
		return m.String()[:3]
	}
	return m.String()
}

func (english) DayName(d time.Weekday, short bool) string {
	if short {
		return d.String()[:3]
	}
	return d.String()
}

// inst is a single component of a compiled layout, either a literal or a
// formatting operator.
type inst struct {
	op  fmtOp
	lit string
}

// fmtOp is a formatting operator.
type fmtOp int

const (
	opLiteral fmtOp = iota

	opDayZero
	opDayShort
	opDay
	opDayLong
	opISOWeekday
	opOrdinal
	opWeekday
	opYearDay
	opISOWeek
	opMonthLong
	opMonthZero
	opMonthShort
	opMonth
	opMonthDays
	opLeap
	opISOYear
	opLongYear
	opYear
	opAmPmLower
	opAmPmUpper
	opHour12
	opHour
	opHour12Zero
	opHourZero
	opMinuteZero
	opSecondZero
	opMicro
	opMilli
	opZoneName
	opZoneAbbr
	opOffsetColon
	opOffset
	opOffsetSeconds
	opISO8601
	opRFC2822
	opUnix

	opInvalid
)

// opChars maps each layout character to its operator. It is indexed by
// operator, so the table doubles as the String method's lookup.
var opChars = [...]byte{
	opDayZero:       'd',
	opDayShort:      'D',
	opDay:           'j',
	opDayLong:       'l',
	opISOWeekday:    'N',
	opOrdinal:       'S',
	opWeekday:       'w',
	opYearDay:       'z',
	opISOWeek:       'W',
	opMonthLong:     'F',
	opMonthZero:     'm',
	opMonthShort:    'M',
	opMonth:         'n',
	opMonthDays:     't',
	opLeap:          'L',
	opISOYear:       'o',
	opLongYear:      'Y',
	opYear:          'y',
	opAmPmLower:     'a',
	opAmPmUpper:     'A',
	opHour12:        'g',
	opHour:          'G',
	opHour12Zero:    'h',
	opHourZero:      'H',
	opMinuteZero:    'i',
	opSecondZero:    's',
	opMicro:         'u',
	opMilli:         'v',
	opZoneName:      'e',
	opZoneAbbr:      'T',
	opOffsetColon:   'P',
	opOffset:        'O',
	opOffsetSeconds: 'Z',
	opISO8601:       'c',
	opRFC2822:       'r',
	opUnix:          'U',
}

var opByChar = func() (m [128]fmtOp) {
	for op, c := range opChars {
		if c != 0 {
			m[c] = fmtOp(op)
		}
	}
	return m
}()

// String implements fmt.Stringer. Except for opLiteral, it returns the layout
// character of the operator.
func (op fmtOp) String() string {
	if op == opLiteral {
		return "<literal>"
	}
	if op <= 0 || op >= opInvalid {
		panic("invalid fmtOp")
	}
	return string(opChars[op])
}

// memo caches compiled layouts.
var memo cache.Cache[string, []inst]

// parseLayout compiles layout into formatting instructions. Runs of literal
// characters are merged into a single instruction.
func parseLayout(layout string) []inst {
	var (
		prog []inst
		lit  []byte
	)
	flush := func() {
		if len(lit) > 0 {
			prog = append(prog, inst{lit: string(lit)})
			lit = lit[:0]
		}
	}
	for i := 0; i < len(layout); i++ {
		c := layout[i]
		if c == '\\' {
			if i+1 < len(layout) {
				_, n := utf8.DecodeRuneInString(layout[i+1:])
				lit = append(lit, layout[i+1:i+1+n]...)
				i += n
			}
			continue
		}
		if c < utf8.RuneSelf && opByChar[c] != opLiteral {
			flush()
			prog = append(prog, inst{op: opByChar[c]})
			continue
		}
		lit = append(lit, c)
	}
	flush()
	return prog
}

func appendInt(b []byte, v int, width int) []byte {
	if v < 0 {
		b = append(b, '-')
		v = -v
	}
	s := strconv.Itoa(v)
	for i := len(s); i < width; i++ {
		b = append(b, '0')
	}
	return append(b, s...)
}

func ordinalSuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

func appendOffset(b []byte, offset int, colon bool) []byte {
	if offset < 0 {
		b = append(b, '-')
		offset = -offset
	} else {
		b = append(b, '+')
	}
	b = appendInt(b, offset/3600, 2)
	if colon {
		b = append(b, ':')
	}
	return appendInt(b, offset/60%60, 2)
}

// appendLayout appends t formatted according to layout to b.
func appendLayout(b []byte, t time.Time, layout string, names Names) []byte {
	if layout == Raw {
		return strconv.AppendInt(b, t.Unix(), 10)
	}
	if names == nil {
		names = English
	}
	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	cd := calendar.Of(year, month, day)

	for _, i := range memo.Get(layout, parseLayout) {
		switch i.op {
		case opLiteral:
			b = append(b, i.lit...)
		case opDayZero:
			b = appendInt(b, day, 2)
		case opDayShort:
			b = append(b, names.DayName(t.Weekday(), true)...)
		case opDay:
			b = appendInt(b, day, 1)
		case opDayLong:
			b = append(b, names.DayName(t.Weekday(), false)...)
		case opISOWeekday:
			wd := int(cd.Weekday())
			if wd == 0 {
				wd = 7
			}
			b = appendInt(b, wd, 1)
		case opOrdinal:
			b = append(b, ordinalSuffix(day)...)
		case opWeekday:
			b = appendInt(b, int(cd.Weekday()), 1)
		case opYearDay:
			b = appendInt(b, cd.YearDay()-1, 1)
		case opISOWeek:
			_, w := cd.ISOWeek()
			b = appendInt(b, w, 2)
		case opMonthLong:
			b = append(b, names.MonthName(month, false)...)
		case opMonthZero:
			b = appendInt(b, int(month), 2)
		case opMonthShort:
			b = append(b, names.MonthName(month, true)...)
		case opMonth:
			b = appendInt(b, int(month), 1)
		case opMonthDays:
			b = appendInt(b, calendar.DaysIn(month, year), 2)
		case opLeap:
			if calendar.IsLeap(year) {
				b = append(b, '1')
			} else {
				b = append(b, '0')
			}
		case opISOYear:
			y, _ := cd.ISOWeek()
			b = appendInt(b, y, 4)
		case opLongYear:
			b = appendInt(b, year, 4)
		case opYear:
			y := year % 100
			if y < 0 {
				y = -y
			}
			b = appendInt(b, y, 2)
		case opAmPmLower, opAmPmUpper:
			switch {
			case hour >= 12 && i.op == opAmPmLower:
				b = append(b, "pm"...)
			case hour >= 12:
				b = append(b, "PM"...)
			case i.op == opAmPmLower:
				b = append(b, "am"...)
			default:
				b = append(b, "AM"...)
			}
		case opHour12, opHour12Zero:
			h := hour % 12
			if h == 0 {
				h = 12
			}
			if i.op == opHour12Zero {
				b = appendInt(b, h, 2)
			} else {
				b = appendInt(b, h, 1)
			}
		case opHour:
			b = appendInt(b, hour, 1)
		case opHourZero:
			b = appendInt(b, hour, 2)
		case opMinuteZero:
			b = appendInt(b, min, 2)
		case opSecondZero:
			b = appendInt(b, sec, 2)
		case opMicro:
			b = appendInt(b, t.Nanosecond()/1e3, 6)
		case opMilli:
			b = appendInt(b, t.Nanosecond()/1e6, 3)
		case opZoneName:
			b = append(b, t.Location().String()...)
		case opZoneAbbr:
			name, _ := t.Zone()
			b = append(b, name...)
		case opOffsetColon, opOffset:
			_, offset := t.Zone()
			b = appendOffset(b, offset, i.op == opOffsetColon)
		case opOffsetSeconds:
			_, offset := t.Zone()
			b = strconv.AppendInt(b, int64(offset), 10)
		case opISO8601:
			b = appendLayout(b, t, "Y-m-d\\TH:i:sP", names)
		case opRFC2822:
			b = appendLayout(b, t, "D, d M Y H:i:s O", names)
		case opUnix:
			b = strconv.AppendInt(b, t.Unix(), 10)
		default:
			panic(errors.New("invalid inst " + i.op.String()))
		}
	}
	return b
}

// formatTime returns t formatted according to layout.
func formatTime(t time.Time, layout string, names Names) string {
	var buf [64]byte
	return string(appendLayout(buf[:0], t, layout, names))
}
