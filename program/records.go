// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program

import (
	"github.com/gagliardetto/solana-go"
)

// EscrowRecord - state of the open vault
type EscrowRecord struct {
	_               struct{}         `cbor:",toarray"`
	PaymentMint     solana.PublicKey `json:"paymentMint"`
	Depositor       solana.PublicKey `json:"depositor"`
	DepositorSource solana.PublicKey `json:"depositorSource"`
	CustomMint      solana.PublicKey `json:"customMint"`
	CreatorA        solana.PublicKey `json:"creatorA"`
	CreatorB        solana.PublicKey `json:"creatorB"`
	VaultBump       uint8            `json:"vaultBump"`
	AuthorityBump   uint8            `json:"authorityBump"`
	EscrowBump      uint8            `json:"escrowBump"`
}

// AssetDataRecord - redemption history of one mount
//
// Timestamp is Unix seconds, zero means never redeemed
type AssetDataRecord struct {
	_         struct{}         `cbor:",toarray"`
	Count     uint64           `json:"count"`
	Timestamp int64            `json:"timestamp"`
	Bump      uint8            `json:"bump"`
	Holder    solana.PublicKey `json:"holder"`
}

// Trusts - check a creator against the whitelist captured at genesis
func (e *EscrowRecord) Trusts(creator solana.PublicKey) bool {
	return creator.Equals(e.CreatorA) || creator.Equals(e.CreatorB)
}

// Ready - check whether the time lock has elapsed
func (r *AssetDataRecord) Ready(now int64, cooldown int64) bool {
	return 0 == r.Timestamp || now-r.Timestamp >= cooldown
}
