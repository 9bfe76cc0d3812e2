// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package token - fungible and collectible token primitives
//
// mints and token accounts are ledger accounts owned by the token
// program; every change that moves value out of an account requires
// the signature of the account owner, or of the mint authority when
// creating supply
package token
