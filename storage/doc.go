// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk ledger store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// All writes go through a Transaction: a single leveldb batch with a
// write-through overlay so that staged values are visible to reads
// inside the same transaction.  Only one transaction may be open at a
// time, so instructions are applied in a total order.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. address      = 32 byte ed25519 public key or program derived address
// 4. txId         = instruction digest as 32 byte SHA3-256(data)
//
// Accounts:
//
//   A ++ address               - ledger account
//                                data: CBOR [owner program, account data]
//
// Transactions:
//
//   T ++ txId                  - processed instructions
//                                data: execution time as big endian int64 (8 bytes)
package storage
