// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package instant

import (
	"sync/atomic"
	"time"

	"gonih.org/instant/internal/logging"
)

var log = logging.GetLogger()

// A Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the host clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same time.
type FixedClock time.Time

// Now returns the fixed time.
func (c FixedClock) Now() time.Time { return time.Time(c) }

type clockBox struct{ Clock }

var (
	clock       atomic.Pointer[clockBox]
	defaultZone atomic.Pointer[time.Location]
)

// SetClock replaces the process-wide clock used for "now". A nil Clock
// restores SystemClock.
func SetClock(c Clock) {
	if c == nil {
		c = SystemClock{}
	}
	clock.Store(&clockBox{c})
}

// now returns the current time of the process-wide clock.
func now() time.Time {
	if b := clock.Load(); b != nil {
		return b.Now()
	}
	return time.Now()
}

// SetDefaultLocation sets the location new Instants use for calendar
// arithmetic and formatting. A nil location restores time.Local.
func SetDefaultLocation(loc *time.Location) {
	if loc == nil {
		loc = time.Local
	}
	defaultZone.Store(loc)
	log.WithField("location", loc.String()).Debug("default location changed")
}

// DefaultLocation returns the location new Instants use.
func DefaultLocation() *time.Location {
	if loc := defaultZone.Load(); loc != nil {
		return loc
	}
	return time.Local
}
