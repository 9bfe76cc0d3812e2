// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"github.com/gagliardetto/solana-go"
)

// Mint - the state of a mint
type Mint struct {
	_             struct{}         `cbor:",toarray"`
	MintAuthority solana.PublicKey `json:"mintAuthority"`
	Supply        uint64           `json:"supply"`
	Decimals      uint8            `json:"decimals"`
}

// Account - the state of a token account
type Account struct {
	_      struct{}         `cbor:",toarray"`
	Mint   solana.PublicKey `json:"mint"`
	Owner  solana.PublicKey `json:"owner"`
	Amount uint64           `json:"amount"`
}
