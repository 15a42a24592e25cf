// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package instant

import (
	"time"

	"cloud.google.com/go/civil"
)

// A Source is anything an Instant can be set from. The set of Sources is
// closed:
//
//   - Current: the current time of the process clock
//   - Timestamp: Unix seconds, used verbatim
//   - Text: a date string, parsed by [Parse]'s rules
//   - Native: a time.Time
//   - CivilDate: a civil.Date, at midnight in the target location
//   - *Instant: a copy of another Instant's timestamp
//
// A nil Source means Current.
type Source interface {
	resolve(loc *time.Location) (int64, error)
}

// Current resolves to the current time.
type Current struct{}

// Timestamp resolves to itself, in Unix seconds.
type Timestamp int64

// Text resolves by parsing.
type Text string

// Native resolves to the Unix time of a time.Time.
type Native time.Time

// CivilDate resolves to midnight of a calendar date.
type CivilDate civil.Date

func (Current) resolve(*time.Location) (int64, error) {
	return now().Unix(), nil
}

func (ts Timestamp) resolve(*time.Location) (int64, error) {
	return int64(ts), nil
}

func (s Text) resolve(loc *time.Location) (int64, error) {
	t, err := parseText(string(s), loc, now())
	if err != nil {
		return 0, err
	}
	return t.Unix(), nil
}

func (n Native) resolve(*time.Location) (int64, error) {
	return time.Time(n).Unix(), nil
}

func (d CivilDate) resolve(loc *time.Location) (int64, error) {
	cd := civil.Date(d)
	if !cd.IsValid() {
		return 0, &ParseError{Value: cd.String(), Message: "invalid calendar date"}
	}
	return cd.In(loc).Unix(), nil
}

func (i *Instant) resolve(*time.Location) (int64, error) {
	if i == nil {
		return now().Unix(), nil
	}
	return i.sec, nil
}

// resolve turns src into Unix seconds, using loc for calendar dependent
// Sources.
func resolve(src Source, loc *time.Location) (int64, error) {
	if src == nil {
		return now().Unix(), nil
	}
	return src.resolve(loc)
}

// locationOf returns the location src carries, or the default location.
func locationOf(src Source) *time.Location {
	switch s := src.(type) {
	case *Instant:
		if s != nil {
			return s.Location()
		}
	case Native:
		return time.Time(s).Location()
	}
	return DefaultLocation()
}
