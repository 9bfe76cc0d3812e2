// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"math"
)

// SafeAdd - a+b, false on overflow
func SafeAdd(a uint64, b uint64) (uint64, bool) {
	if a > math.MaxUint64-b {
		return 0, false
	}
	return a + b, true
}

// SafeSub - a-b, false on underflow
func SafeSub(a uint64, b uint64) (uint64, bool) {
	if a < b {
		return 0, false
	}
	return a - b, true
}

// SafeMul - a*b, false on overflow
func SafeMul(a uint64, b uint64) (uint64, bool) {
	if 0 == a || 0 == b {
		return 0, true
	}
	if a > math.MaxUint64/b {
		return 0, false
	}
	return a * b, true
}

// ScaleDecimals - convert whole units to base units for a
// given number of decimal places
func ScaleDecimals(units uint64, decimals uint8) (uint64, bool) {
	result := units
	for i := uint8(0); i < decimals; i += 1 {
		var ok bool
		result, ok = SafeMul(result, 10)
		if !ok {
			return 0, false
		}
	}
	return result, true
}
