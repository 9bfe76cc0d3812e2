// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/mountbreed/fault"
	"github.com/bitmark-inc/mountbreed/ledger"
	"github.com/bitmark-inc/mountbreed/program"
	"github.com/bitmark-inc/mountbreed/token"
)

func (f *fixture) cancel(signers token.Authority, arguments *program.CancelArguments) error {
	return f.run(func(st *ledger.State) error {
		return f.program.Cancel(st, signers, arguments)
	})
}

func TestCancel(t *testing.T) {
	f := newOpenFixture(t, defaultConfiguration(), initialDeposit)
	defer f.close()

	a := f.program.Addresses()

	err := f.cancel(token.NewSigners(f.depositor), f.cancelArguments())
	assert.Nil(t, err, "wrong Cancel")

	assert.Equal(t, uint64(initialDeposit), f.balance(f.depositorSource), "source not restored")
	assert.False(t, f.view().Exists(a.Vault.Address), "vault still open")
	assert.False(t, f.view().Exists(a.Escrow.Address), "escrow still present")

	err = f.cancel(token.NewSigners(f.depositor), f.cancelArguments())
	assert.Equal(t, fault.ErrEscrowNotFound, err, "second cancel accepted")
	assert.True(t, fault.IsErrNotFound(err), "wrong class")

	// asset data records outlive the vault
	assert.True(t, f.view().Exists(f.mountA.data.Address), "asset data removed")
}

func TestCancelHasNoTimeLock(t *testing.T) {
	f := newOpenFixture(t, defaultConfiguration(), initialDeposit)
	defer f.close()

	err := f.redeem(f.redeemArguments())
	assert.Nil(t, err, "wrong Redeem")

	err = f.cancel(token.NewSigners(f.depositor), f.cancelArguments())
	assert.Nil(t, err, "cancel right after redeem rejected")
}

func TestCancelRejects(t *testing.T) {
	f := newOpenFixture(t, defaultConfiguration(), initialDeposit)
	defer f.close()

	a := f.program.Addresses()

	// intruder signs for themselves
	args := f.cancelArguments()
	args.Depositor = f.redeemer
	err := f.cancel(token.NewSigners(f.redeemer), args)
	assert.Equal(t, fault.ErrDepositorMismatch, err, "non depositor cancel accepted")

	// intruder names the depositor without a signature
	err = f.cancel(token.NewSigners(f.redeemer), f.cancelArguments())
	assert.Equal(t, fault.ErrMissingSignature, err, "unsigned cancel accepted")

	args = f.cancelArguments()
	args.DepositorSource = f.redeemerCustom
	err = f.cancel(token.NewSigners(f.depositor), args)
	assert.Equal(t, fault.ErrSourceMismatch, err, "refund to another account accepted")

	args = f.cancelArguments()
	args.VaultAuthority = f.depositor
	err = f.cancel(token.NewSigners(f.depositor), args)
	assert.Equal(t, fault.ErrAddressMismatch, err, "foreign authority accepted")

	args = f.cancelArguments()
	args.Escrow = f.mountA.data.Address
	err = f.cancel(token.NewSigners(f.depositor), args)
	assert.Equal(t, fault.ErrAddressMismatch, err, "foreign escrow accepted")

	assert.Equal(t, uint64(initialDeposit), f.balance(a.Vault.Address), "vault changed by failures")
	assert.Equal(t, uint64(0), f.balance(f.depositorSource), "source changed by failures")
}

func TestVaultAuthorityIsNotASigner(t *testing.T) {
	f := newOpenFixture(t, defaultConfiguration(), initialDeposit)
	defer f.close()

	a := f.program.Addresses()

	// a caller claiming the derived authority still cannot move the vault
	err := f.run(func(st *ledger.State) error {
		return f.tokens.Transfer(st, token.NewSigners(f.redeemer), &token.TransferArguments{
			Source:      a.Vault.Address,
			Destination: f.redeemerCustom,
			Amount:      1,
		})
	})
	assert.Equal(t, fault.ErrMissingSignature, err, "vault moved without the program")
	assert.Equal(t, uint64(initialDeposit), f.balance(a.Vault.Address), "vault changed")
}
