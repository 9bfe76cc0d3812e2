// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package program - the mount breed custody program
//
// Lifecycle:
//
//   Genesis     opens the vault and escrow, draining the depositor's
//               custom token account into the vault
//   Initialize  creates the asset data record of one mount
//   Redeem      exchanges proof of holding two trusted mounts and a
//               burned fee for one custom token from the vault
//   Cancel      returns the vault balance to the depositor and closes
//               both the vault and the escrow
//
// every operation runs inside one ledger state; any error leaves the
// caller to abort the whole storage transaction
package program
