// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program

import (
	"github.com/bitmark-inc/mountbreed/fault"
	"github.com/bitmark-inc/mountbreed/ledger"
	"github.com/bitmark-inc/mountbreed/token"
)

// Initialize - create the asset data record for a mount held by the signer
func (p *Program) Initialize(st *ledger.State, signers token.Authority, arguments *InitializeArguments) error {
	if !signers.Signed(arguments.Holder) {
		return fault.ErrMissingSignature
	}

	d, err := p.addresses.AssetData(arguments.Mint)
	if nil != err {
		return err
	}
	err = p.addresses.VerifyAssetData(arguments.Mint, d.Address, arguments.Bump)
	if nil != err {
		return err
	}
	if st.Exists(d.Address) {
		return fault.ErrAssetDataAlreadyExists
	}

	account, err := p.tokens.GetAccount(st, arguments.TokenAccount)
	if nil != err {
		return err
	}
	if !account.Owner.Equals(arguments.Holder) {
		return fault.ErrOwnerMismatch
	}
	if !account.Mint.Equals(arguments.Mint) {
		return fault.ErrMintMismatch
	}
	if 0 == account.Amount {
		return fault.ErrZeroBalance
	}

	return st.Create(d.Address, p.addresses.Program, &AssetDataRecord{
		Count:     0,
		Timestamp: 0,
		Bump:      d.Bump,
		Holder:    arguments.Holder,
	})
}
