// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"github.com/gagliardetto/solana-go"
)

// CreateMintArguments - open a mint
type CreateMintArguments struct {
	_             struct{}         `cbor:",toarray"`
	Mint          solana.PublicKey `json:"mint"`
	MintAuthority solana.PublicKey `json:"mintAuthority"`
	Decimals      uint8            `json:"decimals"`
}

// CreateAccountArguments - open an associated token account
type CreateAccountArguments struct {
	_      struct{}         `cbor:",toarray"`
	Funder solana.PublicKey `json:"funder"`
	Owner  solana.PublicKey `json:"owner"`
	Mint   solana.PublicKey `json:"mint"`
}

// MintToArguments - create supply
type MintToArguments struct {
	_           struct{}         `cbor:",toarray"`
	Mint        solana.PublicKey `json:"mint"`
	Destination solana.PublicKey `json:"destination"`
	Amount      uint64           `json:"amount"`
}

// TransferArguments - move tokens
type TransferArguments struct {
	_           struct{}         `cbor:",toarray"`
	Source      solana.PublicKey `json:"source"`
	Destination solana.PublicKey `json:"destination"`
	Amount      uint64           `json:"amount"`
}
