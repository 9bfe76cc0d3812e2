// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
//
// Every instance belongs to one class:
//
//   ExistsError   - the account or record already exists
//   InvalidError  - a constraint on the request failed
//   NotFoundError - an expected account or record is missing
//   ProcessError  - an internal failure unrelated to the request
//
// program errors additionally carry a stable numeric code, see Code
package fault
