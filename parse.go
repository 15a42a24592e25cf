// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package instant

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"gonih.org/instant/internal/logging"
)

// ParseError describes a date string that could not be resolved.
type ParseError struct {
	Value   string
	Message string
	Err     error
}

// Error returns the string representation of a ParseError.
func (e *ParseError) Error() string {
	switch {
	case e.Message != "":
		return fmt.Sprintf("parsing date %q: %s", e.Value, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("parsing date %q: %v", e.Value, e.Err)
	}
	return fmt.Sprintf("parsing date %q: unrecognized format", e.Value)
}

// Unwrap returns the underlying parser error, if any.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// relativeTerm matches one "+N unit" step of a relative date.
var relativeTerm = regexp.MustCompile(`^([+-]?)\s*(\d+)\s*(sec|second|min|minute|hour|day|week|fortnight|month|year)s?\b`)

// parseText resolves s in loc. Besides the formats understood by dateparse,
// it accepts the keywords now, today, midnight, tomorrow and yesterday,
// "@<unix seconds>" and relative offsets like "+1 day -2 hours", which are
// applied to ref.
func parseText(s string, loc *time.Location, ref time.Time) (time.Time, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return time.Time{}, &ParseError{Value: s, Message: "empty date"}
	}
	ref = ref.In(loc)
	lower := strings.ToLower(v)
	switch lower {
	case "now":
		return ref, nil
	case "today", "midnight":
		return startOfDay(ref), nil
	case "tomorrow":
		return startOfDay(ref).AddDate(0, 0, 1), nil
	case "yesterday":
		return startOfDay(ref).AddDate(0, 0, -1), nil
	}
	if rest, ok := strings.CutPrefix(lower, "@"); ok {
		n, err := strconv.ParseInt(rest, 10, 64)
		if err != nil {
			return time.Time{}, &ParseError{Value: s, Err: err}
		}
		return time.Unix(n, 0).In(loc), nil
	}
	if t, ok := parseRelative(lower, ref); ok {
		return t, nil
	}
	t, err := dateparse.ParseIn(v, loc)
	if err != nil {
		log.WithFields(logging.Fields{
			"value": s,
			"error": err,
		}).Debug("date string not recognized")
		return time.Time{}, &ParseError{Value: s, Err: err}
	}
	return t.In(loc), nil
}

// parseRelative applies a sequence of relative offsets to ref. It reports
// false unless all of s consists of such offsets.
func parseRelative(s string, ref time.Time) (time.Time, bool) {
	t := ref
	matched := false
	for s = strings.TrimSpace(s); s != ""; s = strings.TrimSpace(s) {
		m := relativeTerm.FindStringSubmatch(s)
		if m == nil {
			return time.Time{}, false
		}
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return time.Time{}, false
		}
		if m[1] == "-" {
			n = -n
		}
		t = advance(t, m[3], n)
		s = s[len(m[0]):]
		matched = true
	}
	return t, matched
}

// advance moves t by n units. Units of a day or longer follow the wall clock
// calendar, shorter ones are exact durations.
func advance(t time.Time, unit string, n int) time.Time {
	switch unit {
	case "sec", "second":
		return t.Add(time.Duration(n) * time.Second)
	case "min", "minute":
		return t.Add(time.Duration(n) * time.Minute)
	case "hour":
		return t.Add(time.Duration(n) * time.Hour)
	case "day":
		return t.AddDate(0, 0, n)
	case "week":
		return t.AddDate(0, 0, 7*n)
	case "fortnight":
		return t.AddDate(0, 0, 14*n)
	case "month":
		return t.AddDate(0, n, 0)
	case "year":
		return t.AddDate(n, 0, 0)
	}
	panic("unknown unit " + unit)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
