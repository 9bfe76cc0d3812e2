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

// Cancel - return the remaining vault balance to the depositor, then
// close the vault and the escrow
//
// there is no time lock, the depositor may always reclaim
func (p *Program) Cancel(st *ledger.State, signers token.Authority, arguments *CancelArguments) error {
	if !signers.Signed(arguments.Depositor) {
		return fault.ErrMissingSignature
	}
	err := p.checkFixed(arguments.Vault, arguments.VaultAuthority, arguments.Escrow)
	if nil != err {
		return err
	}

	escrow, err := p.GetEscrow(st, arguments.Escrow)
	if nil != err {
		return err
	}
	if !arguments.Depositor.Equals(escrow.Depositor) {
		return fault.ErrDepositorMismatch
	}
	if !arguments.DepositorSource.Equals(escrow.DepositorSource) {
		return fault.ErrSourceMismatch
	}

	vault, err := p.getVault(st)
	if nil != err {
		return err
	}

	authority := p.asVault(signers)
	err = p.tokens.Transfer(st, authority, &token.TransferArguments{
		Source:      arguments.Vault,
		Destination: arguments.DepositorSource,
		Amount:      vault.Amount,
	})
	if nil != err {
		return err
	}
	err = p.tokens.CloseAccount(st, authority, arguments.Vault)
	if nil != err {
		return err
	}
	return st.Close(arguments.Escrow, p.addresses.Program)
}
