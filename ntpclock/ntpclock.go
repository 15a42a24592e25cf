// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ntpclock provides an instant.Clock corrected by an NTP server.
//
// The clock reports the local time plus the offset measured by the last
// successful Sync. Until then it is the plain system clock.
package ntpclock

import (
	"context"
	"sync"
	"time"

	"github.com/beevik/ntp"
	"github.com/samber/oops"

	"gonih.org/instant/internal/logging"
)

var log = logging.GetLogger()

// DefaultServer is queried if no server is given.
const DefaultServer = "pool.ntp.org"

// DefaultTimeout bounds a query if the context has no earlier deadline.
const DefaultTimeout = 5 * time.Second

// Offsets larger than this are rejected as implausible.
const maxOffset = 24 * time.Hour

// Querier performs a single NTP query. It is satisfied by [DefaultQuerier]
// and replaced by fakes in tests.
type Querier interface {
	QueryWithOptions(host string, opt ntp.QueryOptions) (*ntp.Response, error)
}

// DefaultQuerier queries the network with github.com/beevik/ntp.
type DefaultQuerier struct{}

// QueryWithOptions calls ntp.QueryWithOptions.
func (DefaultQuerier) QueryWithOptions(host string, opt ntp.QueryOptions) (*ntp.Response, error) {
	return ntp.QueryWithOptions(host, opt)
}

// Clock is a clock with an NTP measured offset. It is safe for concurrent
// use.
type Clock struct {
	Server  string
	Timeout time.Duration
	Querier Querier

	// now returns the uncorrected local time.
	now func() time.Time

	mu     sync.RWMutex
	offset time.Duration
	synced time.Time
}

// New returns a Clock querying server. An empty server means DefaultServer
// and a nil Querier means DefaultQuerier.
func New(server string, timeout time.Duration, q Querier) *Clock {
	if server == "" {
		server = DefaultServer
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if q == nil {
		q = DefaultQuerier{}
	}
	return &Clock{Server: server, Timeout: timeout, Querier: q, now: time.Now}
}

// Now returns the local time corrected by the last measured offset.
func (c *Clock) Now() time.Time {
	c.mu.RLock()
	off := c.offset
	c.mu.RUnlock()
	return c.local().Add(off)
}

func (c *Clock) local() time.Time {
	if c.now == nil {
		return time.Now()
	}
	return c.now()
}

// Offset returns the last measured offset and the local time it was
// measured at. The time is zero if Sync never succeeded.
func (c *Clock) Offset() (time.Duration, time.Time) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.offset, c.synced
}

// Sync queries the server and stores the measured offset. On error the
// previous offset is kept.
func (c *Clock) Sync(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return oops.In("ntpclock").With("server", c.Server).Wrapf(err, "sync aborted")
	}
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if dl, ok := ctx.Deadline(); ok {
		if left := time.Until(dl); left < timeout {
			timeout = left
		}
	}
	q := c.Querier
	if q == nil {
		q = DefaultQuerier{}
	}

	type result struct {
		resp *ntp.Response
		err  error
	}
	done := make(chan result, 1)
	go func() {
		resp, err := q.QueryWithOptions(c.Server, ntp.QueryOptions{Timeout: timeout})
		done <- result{resp, err}
	}()

	var r result
	select {
	case <-ctx.Done():
		return oops.In("ntpclock").With("server", c.Server).Wrapf(ctx.Err(), "sync aborted")
	case r = <-done:
	}
	if r.err != nil {
		log.WithError(r.err).WithField("server", c.Server).Warn("NTP query failed")
		return oops.In("ntpclock").With("server", c.Server).Wrapf(r.err, "querying NTP server")
	}
	if err := r.resp.Validate(); err != nil {
		log.WithError(err).WithField("server", c.Server).Warn("NTP response failed validation")
		return oops.In("ntpclock").With("server", c.Server).Wrapf(err, "invalid NTP response")
	}
	off := r.resp.ClockOffset
	if off > maxOffset || off < -maxOffset {
		return oops.In("ntpclock").With("server", c.Server).With("offset", off).Errorf("clock offset %v out of bounds", off)
	}

	c.mu.Lock()
	c.offset = off
	c.synced = c.local()
	c.mu.Unlock()
	log.WithField("server", c.Server).WithField("offset", off).Info("clock synchronized")
	return nil
}
