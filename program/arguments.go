// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program

import (
	"github.com/gagliardetto/solana-go"
)

// GenesisArguments - open the vault
type GenesisArguments struct {
	_               struct{}         `cbor:",toarray"`
	Depositor       solana.PublicKey `json:"depositor"`
	VaultBump       uint8            `json:"vaultBump"`
	EscrowBump      uint8            `json:"escrowBump"`
	CustomMint      solana.PublicKey `json:"customMint"`
	DepositorSource solana.PublicKey `json:"depositorSource"`
	PaymentMint     solana.PublicKey `json:"paymentMint"`
	CreatorA        solana.PublicKey `json:"creatorA"`
	CreatorB        solana.PublicKey `json:"creatorB"`
}

// InitializeArguments - create the asset data record of a mount
type InitializeArguments struct {
	_            struct{}         `cbor:",toarray"`
	Holder       solana.PublicKey `json:"holder"`
	Mint         solana.PublicKey `json:"mint"`
	Bump         uint8            `json:"bump"`
	TokenAccount solana.PublicKey `json:"tokenAccount"`
}

// Mount - the accounts presented for one mount in a redemption
type Mount struct {
	_            struct{}         `cbor:",toarray"`
	Mint         solana.PublicKey `json:"mint"`
	TokenAccount solana.PublicKey `json:"tokenAccount"`
	AssetData    solana.PublicKey `json:"assetData"`
	Metadata     solana.PublicKey `json:"metadata"`
}

// RedeemArguments - exchange two mounts and a fee for one custom token
type RedeemArguments struct {
	_              struct{}         `cbor:",toarray"`
	Redeemer       solana.PublicKey `json:"redeemer"`
	MountA         Mount            `json:"mountA"`
	MountB         Mount            `json:"mountB"`
	Destination    solana.PublicKey `json:"destination"`
	PaymentAccount solana.PublicKey `json:"paymentAccount"`
	Vault          solana.PublicKey `json:"vault"`
	Escrow         solana.PublicKey `json:"escrow"`
	PaymentMint    solana.PublicKey `json:"paymentMint"`
	VaultAuthority solana.PublicKey `json:"vaultAuthority"`
}

// CancelArguments - return the vault to the depositor
type CancelArguments struct {
	_               struct{}         `cbor:",toarray"`
	Depositor       solana.PublicKey `json:"depositor"`
	DepositorSource solana.PublicKey `json:"depositorSource"`
	Vault           solana.PublicKey `json:"vault"`
	VaultAuthority  solana.PublicKey `json:"vaultAuthority"`
	Escrow          solana.PublicKey `json:"escrow"`
}
