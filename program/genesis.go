// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program

import (
	"github.com/bitmark-inc/mountbreed/address"
	"github.com/bitmark-inc/mountbreed/fault"
	"github.com/bitmark-inc/mountbreed/ledger"
	"github.com/bitmark-inc/mountbreed/token"
)

// Genesis - open the vault and move the whole depositor balance into it
func (p *Program) Genesis(st *ledger.State, signers token.Authority, arguments *GenesisArguments) error {
	if !signers.Signed(arguments.Depositor) {
		return fault.ErrMissingSignature
	}

	a := p.addresses
	err := address.Verify(a.Program, a.Vault.Address, arguments.VaultBump, []byte(address.TokenSeed))
	if nil != err {
		return err
	}
	err = address.Verify(a.Program, a.Escrow.Address, arguments.EscrowBump, []byte(address.EscrowSeed))
	if nil != err {
		return err
	}
	if st.Exists(a.Vault.Address) {
		return fault.ErrVaultAlreadyExists
	}
	if st.Exists(a.Escrow.Address) {
		return fault.ErrEscrowAlreadyExists
	}

	if _, err := p.tokens.GetMint(st, arguments.CustomMint); nil != err {
		return err
	}
	if _, err := p.tokens.GetMint(st, arguments.PaymentMint); nil != err {
		return err
	}
	source, err := p.tokens.GetAccount(st, arguments.DepositorSource)
	if nil != err {
		return err
	}
	if !source.Mint.Equals(arguments.CustomMint) {
		return fault.ErrMintMismatch
	}
	if !source.Owner.Equals(arguments.Depositor) {
		return fault.ErrOwnerMismatch
	}

	// vault belongs to the derived authority, not to the depositor
	err = p.tokens.CreateAccount(st, a.Vault.Address, arguments.CustomMint, a.Authority.Address)
	if nil != err {
		return err
	}

	err = p.tokens.Transfer(st, signers, &token.TransferArguments{
		Source:      arguments.DepositorSource,
		Destination: a.Vault.Address,
		Amount:      source.Amount,
	})
	if nil != err {
		return err
	}

	return st.Create(a.Escrow.Address, a.Program, &EscrowRecord{
		PaymentMint:     arguments.PaymentMint,
		Depositor:       arguments.Depositor,
		DepositorSource: arguments.DepositorSource,
		CustomMint:      arguments.CustomMint,
		CreatorA:        arguments.CreatorA,
		CreatorB:        arguments.CreatorB,
		VaultBump:       a.Vault.Bump,
		AuthorityBump:   a.Authority.Bump,
		EscrowBump:      a.Escrow.Bump,
	})
}
