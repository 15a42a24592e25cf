// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cache memoizes compiled format layouts.
package cache

import (
	"sync"
)

// DefaultSize is the number of entries a Cache keeps when MaxSize is zero.
const DefaultSize = 1 << 8

// Cache maps keys to values computed on first use. When it grows past its
// limit, arbitrary entries are dropped.
//
// The zero value is ready to use and safe for concurrent use.
type Cache[K comparable, V any] struct {
	// MaxSize is the maximum number of entries. Zero means DefaultSize.
	// It must not be changed concurrently with Get.
	MaxSize int

	mu sync.RWMutex
	m  map[K]V
}

// Get returns the value stored for k, calling fill to compute it if it is
// missing. fill may run more than once for the same key when called
// concurrently; the first stored value wins.
func (c *Cache[K, V]) Get(k K, fill func(K) V) V {
	c.mu.RLock()
	v, ok := c.m[k]
	c.mu.RUnlock()
	if ok {
		return v
	}

	nv := fill(k)

	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.m[k]; ok {
		return v
	}
	if c.m == nil {
		c.m = make(map[K]V)
	}
	limit := c.MaxSize
	if limit <= 0 {
		limit = DefaultSize
	}
	for old := range c.m {
		if len(c.m) < limit {
			break
		}
		delete(c.m, old)
	}
	c.m[k] = nv
	return nv
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}

// Flush removes all entries.
func (c *Cache[K, V]) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.m)
}
