// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package instant

import (
	"strconv"
	"testing"
	"time"

	"gonih.org/instant/locale/pl"
)

// FuzzParseLayout checks that parseLayout and formatting do not panic.
func FuzzParseLayout(f *testing.F) {
	for _, l := range []string{DefaultLayout, DateLayout, ISO8601Layout, RFC2822Layout, MicroLayout, `\Y\\`, "ąęś Y", "\\"} {
		f.Add(l)
	}
	t := time.Date(2023, 10, 25, 8, 30, 0, 0, time.UTC)
	f.Fuzz(func(_ *testing.T, layout string) {
		parseLayout(layout)
		formatTime(t, layout, English)
	})
}

func TestParseLayout(t *testing.T) {
	tcs := []struct {
		layout string
		want   []inst
	}{
		{"", nil},
		{"Y", []inst{{op: opLongYear}}},
		{"Y-m", []inst{{op: opLongYear}, {lit: "-"}, {op: opMonthZero}}},
		{`\Y`, []inst{{lit: "Y"}}},
		{`\Y\m-d`, []inst{{lit: "Ym-"}, {op: opDayZero}}},
		{"ą d", []inst{{lit: "ą "}, {op: opDayZero}}},
		{`\ąd`, []inst{{lit: "ą"}, {op: opDayZero}}},
		{`d\`, []inst{{op: opDayZero}}},
	}
	for _, tc := range tcs {
		got := parseLayout(tc.layout)
		if len(got) != len(tc.want) {
			t.Errorf("parseLayout(%q) = %v, want %v", tc.layout, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("parseLayout(%q)[%d] = %#v, want %#v", tc.layout, i, got[i], tc.want[i])
			}
		}
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()
	ts := time.Date(2024, 3, 5, 14, 7, 9, 123456789, time.UTC)
	cet := time.FixedZone("CET", 3600)
	nst := time.FixedZone("NST", -(3*3600 + 30*60))

	tcs := []struct {
		t      time.Time
		layout string
		want   string
	}{
		{ts, DefaultLayout, "2024-03-05 14:07:09"},
		{ts, DateLayout, "2024-03-05"},
		{ts, "D, d M Y", "Tue, 05 Mar 2024"},
		{ts, `l jS \of F Y h:i:s A`, "Tuesday 5th of March 2024 02:07:09 PM"},
		{ts, "N w z t L", "2 2 64 31 1"},
		{ts, "W o", "10 2024"},
		{ts, "y n j G g a", "24 3 5 14 2 pm"},
		{ts, "u v", "123456 123"},
		{ts, "e T P O Z", "UTC UTC +00:00 +0000 0"},
		{ts, ISO8601Layout, "2024-03-05T14:07:09+00:00"},
		{ts, RFC2822Layout, "Tue, 05 Mar 2024 14:07:09 +0000"},
		{ts, MicroLayout, "2024-03-05 14:07:09.123456"},
		{ts, `\Y\-m`, "Y-03"},
		{ts, "H\\h i\\m", "14h 07m"},
		{ts.In(cet), "e T P O Z", "CET CET +01:00 +0100 3600"},
		{ts.In(nst), "P O Z", "-03:30 -0330 -12600"},
		{ts.In(cet), ISO8601Layout, "2024-03-05T15:07:09+01:00"},
		{time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), "W o N L z t", "52 2022 7 0 0 31"},
		{time.Date(2024, 12, 30, 0, 5, 0, 0, time.UTC), "W o g G h H a", "01 2025 12 0 12 00 am"},
		{time.Date(2023, 2, 14, 12, 0, 0, 0, time.UTC), "t g A", "28 12 PM"},
		{time.Date(7, 7, 7, 7, 7, 7, 0, time.UTC), "Y y", "0007 07"},
	}
	for _, tc := range tcs {
		if got := formatTime(tc.t, tc.layout, English); got != tc.want {
			t.Errorf("format(%v, %q) = %q, want %q", tc.t, tc.layout, got, tc.want)
		}
	}
}

func TestFormatOrdinal(t *testing.T) {
	t.Parallel()
	want := map[int]string{
		1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 10: "10th", 11: "11th", 12: "12th",
		13: "13th", 21: "21st", 22: "22nd", 23: "23rd", 24: "24th", 30: "30th", 31: "31st",
	}
	for day, w := range want {
		ts := time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC)
		if got := formatTime(ts, "jS", English); got != w {
			t.Errorf("format(%v, %q) = %q, want %q", ts, "jS", got, w)
		}
	}
}

func TestFormatRaw(t *testing.T) {
	t.Parallel()
	ts := time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)
	want := strconv.FormatInt(ts.Unix(), 10)
	if got := formatTime(ts, Raw, English); got != want {
		t.Errorf("format(%v, Raw) = %q, want %q", ts, got, want)
	}
	if got := formatTime(ts, "U", English); got != want {
		t.Errorf("format(%v, %q) = %q, want %q", ts, "U", got, want)
	}
	if got := string(Unix(ts.Unix()).AppendFormat([]byte("t="), "U")); got != "t="+want {
		t.Errorf("AppendFormat = %q, want %q", got, "t="+want)
	}
}

func TestFormatIn(t *testing.T) {
	t.Parallel()
	d := FromTime(time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC))
	tcs := []struct {
		layout string
		want   string
	}{
		{"l, j F Y", "Wtorek, 5 Marzec 2024"},
		{"D d M", "Wto 05 Mar"},
		{DefaultLayout, "2024-03-05 14:07:09"},
	}
	for _, tc := range tcs {
		if got := d.FormatIn(tc.layout, pl.Names{}); got != tc.want {
			t.Errorf("FormatIn(%q, pl.Names{}) = %q, want %q", tc.layout, got, tc.want)
		}
	}
	if got, want := d.FormatIn("l", nil), "Tuesday"; got != want {
		t.Errorf("FormatIn(%q, nil) = %q, want %q", "l", got, want)
	}
}

func TestFmtOpString(t *testing.T) {
	for op := opDayZero; op < opInvalid; op++ {
		s := op.String()
		if len(s) != 1 {
			t.Fatalf("%d.String() = %q, want a single character", op, s)
		}
		if got := opByChar[s[0]]; got != op {
			t.Errorf("opByChar[%q] = %d, want %d", s, got, op)
		}
	}
}
