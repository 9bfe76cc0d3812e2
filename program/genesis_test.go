// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program_test

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/mountbreed/address"
	"github.com/bitmark-inc/mountbreed/fault"
	"github.com/bitmark-inc/mountbreed/ledger"
	"github.com/bitmark-inc/mountbreed/program"
	"github.com/bitmark-inc/mountbreed/token"
)

func (f *fixture) genesis(signers token.Authority, arguments *program.GenesisArguments) error {
	return f.run(func(st *ledger.State) error {
		return f.program.Genesis(st, signers, arguments)
	})
}

func TestGenesisDrainsSource(t *testing.T) {
	f := newFixture(t, defaultConfiguration(), initialDeposit)
	defer f.close()

	err := f.genesis(token.NewSigners(f.depositor), f.genesisArguments())
	assert.Nil(t, err, "wrong Genesis")

	a := f.program.Addresses()
	assert.Equal(t, uint64(0), f.balance(f.depositorSource), "source not drained")
	assert.Equal(t, uint64(initialDeposit), f.balance(a.Vault.Address), "wrong vault balance")

	vault, err := f.tokens.GetAccount(f.view(), a.Vault.Address)
	assert.Nil(t, err, "wrong vault")
	assert.Equal(t, a.Authority.Address, vault.Owner, "vault not owned by derived authority")
	assert.Equal(t, f.customMint, vault.Mint, "wrong vault mint")

	escrow, err := f.program.GetEscrow(f.view(), a.Escrow.Address)
	assert.Nil(t, err, "wrong escrow")
	assert.Equal(t, f.paymentMint, escrow.PaymentMint, "wrong payment mint")
	assert.Equal(t, f.depositor, escrow.Depositor, "wrong depositor")
	assert.Equal(t, f.depositorSource, escrow.DepositorSource, "wrong depositor source")
	assert.Equal(t, f.creatorA, escrow.CreatorA, "wrong creator A")
	assert.Equal(t, f.creatorB, escrow.CreatorB, "wrong creator B")
	assert.Equal(t, a.Authority.Bump, escrow.AuthorityBump, "wrong authority bump")
}

func TestGenesisZeroBalance(t *testing.T) {
	f := newFixture(t, defaultConfiguration(), 0)
	defer f.close()

	err := f.genesis(token.NewSigners(f.depositor), f.genesisArguments())
	assert.Nil(t, err, "zero balance genesis rejected")
	assert.Equal(t, uint64(0), f.balance(f.program.Addresses().Vault.Address), "wrong vault balance")
}

func TestGenesisOnlyOnce(t *testing.T) {
	f := newFixture(t, defaultConfiguration(), initialDeposit)
	defer f.close()

	err := f.genesis(token.NewSigners(f.depositor), f.genesisArguments())
	assert.Nil(t, err, "wrong Genesis")

	err = f.genesis(token.NewSigners(f.depositor), f.genesisArguments())
	assert.Equal(t, fault.ErrVaultAlreadyExists, err, "second genesis accepted")
	assert.True(t, fault.IsErrExists(err), "wrong class")
}

func TestGenesisRejects(t *testing.T) {
	f := newFixture(t, defaultConfiguration(), initialDeposit)
	defer f.close()

	signers := token.NewSigners(f.depositor)

	err := f.genesis(token.NewSigners(f.redeemer), f.genesisArguments())
	assert.Equal(t, fault.ErrMissingSignature, err, "unsigned genesis accepted")

	args := f.genesisArguments()
	args.VaultBump += 1
	err = f.genesis(signers, args)
	assert.Equal(t, fault.ErrInvalidBump, err, "wrong vault bump accepted")

	args = f.genesisArguments()
	args.EscrowBump -= 1
	err = f.genesis(signers, args)
	assert.Equal(t, fault.ErrInvalidBump, err, "wrong escrow bump accepted")

	args = f.genesisArguments()
	args.CustomMint = f.paymentMint
	err = f.genesis(signers, args)
	assert.Equal(t, fault.ErrMintMismatch, err, "source of other mint accepted")

	args = f.genesisArguments()
	args.DepositorSource = f.redeemerCustom
	err = f.genesis(signers, args)
	assert.Equal(t, fault.ErrOwnerMismatch, err, "foreign source accepted")

	args = f.genesisArguments()
	args.DepositorSource = solana.NewWallet().PublicKey()
	err = f.genesis(signers, args)
	assert.Equal(t, fault.ErrTokenAccountNotFound, err, "missing source accepted")
	assert.True(t, fault.IsErrNotFound(err), "wrong class")

	args = f.genesisArguments()
	args.CustomMint = solana.NewWallet().PublicKey()
	err = f.genesis(signers, args)
	assert.Equal(t, fault.ErrMintNotFound, err, "missing mint accepted")

	// nothing was left behind by the failures
	a := f.program.Addresses()
	assert.False(t, f.view().Exists(a.Vault.Address), "vault exists after failures")
	assert.False(t, f.view().Exists(a.Escrow.Address), "escrow exists after failures")
	assert.Equal(t, uint64(initialDeposit), f.balance(f.depositorSource), "source changed by failures")
}

func TestGenesisOtherProgram(t *testing.T) {
	configuration := defaultConfiguration()
	configuration.ProgramID = solana.NewWallet().PublicKey()

	f := newFixture(t, configuration, initialDeposit)
	defer f.close()

	err := f.genesis(token.NewSigners(f.depositor), f.genesisArguments())
	assert.Nil(t, err, "wrong Genesis")

	standard, err := address.New(address.DefaultProgramID)
	assert.Nil(t, err, "wrong address New")
	assert.False(t, f.view().Exists(standard.Vault.Address), "vault opened at another program's address")
}

func TestNewRejectsNegativeCooldown(t *testing.T) {
	configuration := defaultConfiguration()
	configuration.Cooldown = -1

	_, err := program.New(configuration, nil, nil, nil)
	assert.Equal(t, fault.ErrInvalidCooldown, err, "negative cooldown accepted")
}
