// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - counters shared between goroutines
package counter

import (
	"sync/atomic"
)

// Counter - a 64 bit unsigned count safe for concurrent update
//
// the zero value is ready to use
type Counter struct {
	value atomic.Uint64
}

// Increment - add 1, returns new value
func (c *Counter) Increment() uint64 {
	return c.value.Add(1)
}

// Decrement - subtract 1, returns new value
func (c *Counter) Decrement() uint64 {
	return c.value.Add(^uint64(0))
}

// Uint64 - current value
func (c *Counter) Uint64() uint64 {
	return c.value.Load()
}

// IsZero - check if zero
func (c *Counter) IsZero() bool {
	return 0 == c.value.Load()
}
