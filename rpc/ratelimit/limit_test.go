// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/mountbreed/fault"
	"github.com/bitmark-inc/mountbreed/rpc/ratelimit"
)

func TestLimit(t *testing.T) {
	limiter := rate.NewLimiter(rate.Inf, 1)
	assert.Nil(t, ratelimit.Limit(limiter), "wrong Limit")
}

func TestLimitWhenBurstIsZero(t *testing.T) {
	limiter := rate.NewLimiter(10, 0)
	assert.Equal(t, fault.ErrRateLimiting, ratelimit.Limit(limiter), "wrong error")
}

func TestLimitN(t *testing.T) {
	limiter := rate.NewLimiter(1000, 10)
	assert.Nil(t, ratelimit.LimitN(limiter, 5, 10), "wrong LimitN")
}

func TestLimitNWhenCountInvalid(t *testing.T) {
	limiter := rate.NewLimiter(1000, 10)
	assert.Equal(t, fault.ErrInvalidCount, ratelimit.LimitN(limiter, 0, 10), "zero count accepted")
	assert.Equal(t, fault.ErrInvalidCount, ratelimit.LimitN(limiter, 11, 10), "large count accepted")
}

func TestLimitNWhenCountExceedsBurst(t *testing.T) {
	limiter := rate.NewLimiter(1000, 2)
	assert.Equal(t, fault.ErrRateLimiting, ratelimit.LimitN(limiter, 5, 10), "wrong error")
}
