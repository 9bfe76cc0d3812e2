// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program_test

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/gagliardetto/solana-go"

	"github.com/bitmark-inc/mountbreed/address"
	"github.com/bitmark-inc/mountbreed/ledger"
	"github.com/bitmark-inc/mountbreed/metadata"
	"github.com/bitmark-inc/mountbreed/program"
	"github.com/bitmark-inc/mountbreed/storage"
	"github.com/bitmark-inc/mountbreed/token"
)

const (
	paymentDecimals = 9
	paymentUnit     = 1000000000
	initialDeposit  = 2202
	initialPayment  = 1000 * paymentUnit
	scaledFee       = 200 * paymentUnit
)

var startTime = time.Date(2022, time.March, 1, 12, 0, 0, 0, time.UTC)

type mountInfo struct {
	mint     solana.PublicKey
	account  solana.PublicKey
	data     address.Derived
	metadata solana.PublicKey
}

type fixture struct {
	t        *testing.T
	store    *storage.Store
	clock    *clock.Mock
	tokens   *token.Token
	registry *metadata.Registry
	program  *program.Program

	mintAuthority solana.PublicKey
	depositor     solana.PublicKey
	redeemer      solana.PublicKey
	creatorA      solana.PublicKey
	creatorB      solana.PublicKey

	customMint  solana.PublicKey
	paymentMint solana.PublicKey

	depositorSource solana.PublicKey
	redeemerCustom  solana.PublicKey
	redeemerPayment solana.PublicKey

	mountA mountInfo
	mountB mountInfo
}

func defaultConfiguration() program.Configuration {
	return program.Configuration{
		ProgramID:          address.DefaultProgramID,
		Fee:                program.DefaultFee,
		Cooldown:           program.DefaultCooldown,
		MaximumRedemptions: program.DefaultMaximumRedemptions,
	}
}

// accounts and mints ready for genesis, nothing of the program yet
func newFixture(t *testing.T, configuration program.Configuration, deposit uint64) *fixture {
	store, err := storage.OpenInMemory()
	if nil != err {
		t.Fatalf("open error: %s", err)
	}

	mock := clock.NewMock()
	mock.Set(startTime)

	tokens := token.New(address.TokenProgramID)
	registry := metadata.New(address.MetadataProgramID, tokens)
	p, err := program.New(configuration, mock, tokens, registry)
	if nil != err {
		t.Fatalf("program error: %s", err)
	}

	f := &fixture{
		t:             t,
		store:         store,
		clock:         mock,
		tokens:        tokens,
		registry:      registry,
		program:       p,
		mintAuthority: solana.NewWallet().PublicKey(),
		depositor:     solana.NewWallet().PublicKey(),
		redeemer:      solana.NewWallet().PublicKey(),
		creatorA:      solana.NewWallet().PublicKey(),
		creatorB:      solana.NewWallet().PublicKey(),
	}

	f.mustRun("setup", func(st *ledger.State) error {
		f.customMint = f.createMint(st, 0)
		f.paymentMint = f.createMint(st, paymentDecimals)

		f.depositorSource = f.createAccount(st, f.depositor, f.customMint, deposit)
		f.redeemerCustom = f.createAccount(st, f.redeemer, f.customMint, 0)
		f.redeemerPayment = f.createAccount(st, f.redeemer, f.paymentMint, initialPayment)

		f.mountA = f.createMount(st, f.redeemer, f.creatorA)
		f.mountB = f.createMount(st, f.redeemer, f.creatorB)
		return nil
	})
	return f
}

// a fixture with the vault open and both mounts initialised
func newOpenFixture(t *testing.T, configuration program.Configuration, deposit uint64) *fixture {
	f := newFixture(t, configuration, deposit)
	f.mustRun("genesis", func(st *ledger.State) error {
		return f.program.Genesis(st, token.NewSigners(f.depositor), f.genesisArguments())
	})
	for _, m := range []mountInfo{f.mountA, f.mountB} {
		m := m
		f.mustRun("initialize", func(st *ledger.State) error {
			return f.program.Initialize(st, token.NewSigners(f.redeemer), &program.InitializeArguments{
				Holder:       f.redeemer,
				Mint:         m.mint,
				Bump:         m.data.Bump,
				TokenAccount: m.account,
			})
		})
	}
	return f
}

func (f *fixture) close() {
	f.store.Close()
}

// run one operation as a single storage transaction
func (f *fixture) run(operation func(*ledger.State) error) error {
	trx, err := f.store.Begin()
	if nil != err {
		f.t.Fatalf("begin error: %s", err)
	}
	err = operation(ledger.NewState(trx, f.store.Pools.Accounts))
	if nil != err {
		trx.Abort()
		return err
	}
	return trx.Commit()
}

func (f *fixture) mustRun(title string, operation func(*ledger.State) error) {
	if err := f.run(operation); nil != err {
		f.t.Fatalf("%s error: %s", title, err)
	}
}

func (f *fixture) createMint(st *ledger.State, decimals uint8) solana.PublicKey {
	mint := solana.NewWallet().PublicKey()
	err := f.tokens.CreateMint(st, token.NewSigners(mint), &token.CreateMintArguments{
		Mint:          mint,
		MintAuthority: f.mintAuthority,
		Decimals:      decimals,
	})
	if nil != err {
		f.t.Fatalf("create mint error: %s", err)
	}
	return mint
}

func (f *fixture) createAccount(st *ledger.State, owner solana.PublicKey, mint solana.PublicKey, amount uint64) solana.PublicKey {
	a, err := f.tokens.CreateAssociatedAccount(st, token.NewSigners(owner), &token.CreateAccountArguments{
		Funder: owner,
		Owner:  owner,
		Mint:   mint,
	})
	if nil != err {
		f.t.Fatalf("create account error: %s", err)
	}
	if 0 == amount {
		return a
	}
	err = f.tokens.MintTo(st, token.NewSigners(f.mintAuthority), &token.MintToArguments{
		Mint:        mint,
		Destination: a,
		Amount:      amount,
	})
	if nil != err {
		f.t.Fatalf("mint to error: %s", err)
	}
	return a
}

// a collectible with one verified creator
func (f *fixture) createMount(st *ledger.State, holder solana.PublicKey, creator solana.PublicKey) mountInfo {
	mint := f.createMint(st, 0)
	account := f.createAccount(st, holder, mint, 1)
	md, err := f.registry.Create(st, token.NewSigners(f.mintAuthority, creator), &metadata.CreateArguments{
		Mint:            mint,
		UpdateAuthority: f.mintAuthority,
		Name:            "Mount",
		Symbol:          "MNT",
		URI:             "https://example.com/mount.json",
		Creators:        []solana.PublicKey{creator},
		Shares:          []uint8{100},
	})
	if nil != err {
		f.t.Fatalf("create metadata error: %s", err)
	}
	d, err := f.program.Addresses().AssetData(mint)
	if nil != err {
		f.t.Fatalf("asset data address error: %s", err)
	}
	return mountInfo{
		mint:     mint,
		account:  account,
		data:     d,
		metadata: md,
	}
}

func (f *fixture) genesisArguments() *program.GenesisArguments {
	a := f.program.Addresses()
	return &program.GenesisArguments{
		Depositor:       f.depositor,
		VaultBump:       a.Vault.Bump,
		EscrowBump:      a.Escrow.Bump,
		CustomMint:      f.customMint,
		DepositorSource: f.depositorSource,
		PaymentMint:     f.paymentMint,
		CreatorA:        f.creatorA,
		CreatorB:        f.creatorB,
	}
}

func (m mountInfo) arguments() program.Mount {
	return program.Mount{
		Mint:         m.mint,
		TokenAccount: m.account,
		AssetData:    m.data.Address,
		Metadata:     m.metadata,
	}
}

func (f *fixture) redeemArguments() *program.RedeemArguments {
	a := f.program.Addresses()
	return &program.RedeemArguments{
		Redeemer:       f.redeemer,
		MountA:         f.mountA.arguments(),
		MountB:         f.mountB.arguments(),
		Destination:    f.redeemerCustom,
		PaymentAccount: f.redeemerPayment,
		Vault:          a.Vault.Address,
		Escrow:         a.Escrow.Address,
		PaymentMint:    f.paymentMint,
		VaultAuthority: a.Authority.Address,
	}
}

func (f *fixture) cancelArguments() *program.CancelArguments {
	a := f.program.Addresses()
	return &program.CancelArguments{
		Depositor:       f.depositor,
		DepositorSource: f.depositorSource,
		Vault:           a.Vault.Address,
		VaultAuthority:  a.Authority.Address,
		Escrow:          a.Escrow.Address,
	}
}

func (f *fixture) redeem(arguments *program.RedeemArguments) error {
	return f.run(func(st *ledger.State) error {
		return f.program.Redeem(st, token.NewSigners(f.redeemer), arguments)
	})
}

func (f *fixture) view() *ledger.View {
	return ledger.NewView(f.store.Pools.Accounts)
}

func (f *fixture) balance(a solana.PublicKey) uint64 {
	account, err := f.tokens.GetAccount(f.view(), a)
	if nil != err {
		f.t.Fatalf("get account error: %s", err)
	}
	return account.Amount
}

func (f *fixture) assetData(m mountInfo) *program.AssetDataRecord {
	record, err := f.program.GetAssetData(f.view(), m.data.Address)
	if nil != err {
		f.t.Fatalf("get asset data error: %s", err)
	}
	return record
}
