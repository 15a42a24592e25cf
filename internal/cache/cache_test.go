// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cache

import (
	"strconv"
	"sync"
	"testing"
)

func TestGetMemoizes(t *testing.T) {
	var c Cache[string, int]
	calls := 0
	fill := func(s string) int {
		calls++
		return len(s)
	}
	for i := 0; i < 3; i++ {
		if got := c.Get("Y-m-d", fill); got != 5 {
			t.Fatalf("Get(%q) = %d, want 5", "Y-m-d", got)
		}
	}
	if calls != 1 {
		t.Errorf("fill called %d times, want 1", calls)
	}
}

func TestMaxSize(t *testing.T) {
	c := Cache[int, string]{MaxSize: 4}
	for i := 0; i < 20; i++ {
		if got, want := c.Get(i, strconv.Itoa), strconv.Itoa(i); got != want {
			t.Fatalf("Get(%d) = %q, want %q", i, got, want)
		}
		if n := c.Len(); n > 4 {
			t.Fatalf("Len() = %d after %d inserts, want <= 4", n, i+1)
		}
	}
	c.Flush()
	if n := c.Len(); n != 0 {
		t.Errorf("Len() = %d after Flush, want 0", n)
	}
}

func TestConcurrentGet(t *testing.T) {
	var c Cache[int, int]
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				if got := c.Get(i%10, func(k int) int { return k * k }); got != (i%10)*(i%10) {
					t.Errorf("Get(%d) = %d", i%10, got)
				}
			}
		}()
	}
	wg.Wait()
}
