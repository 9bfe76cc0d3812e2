// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package query_test

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/mountbreed/address"
	"github.com/bitmark-inc/mountbreed/fault"
	"github.com/bitmark-inc/mountbreed/metadata"
	"github.com/bitmark-inc/mountbreed/program"
	"github.com/bitmark-inc/mountbreed/rpc/fixtures"
	"github.com/bitmark-inc/mountbreed/rpc/mocks"
	"github.com/bitmark-inc/mountbreed/rpc/query"
	"github.com/bitmark-inc/mountbreed/token"
)

func addresses(t *testing.T) *address.Addresses {
	a, err := address.New(address.DefaultProgramID)
	if nil != err {
		t.Fatalf("address error: %s", err)
	}
	return a
}

func TestEscrow(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := addresses(t)
	record := &program.EscrowRecord{
		Depositor: solana.NewWallet().PublicKey(),
	}

	r := mocks.NewMockReader(ctl)
	r.EXPECT().Addresses().Return(a).Times(1)
	r.EXPECT().Escrow(a.Escrow.Address).Return(record, nil).Times(1)
	r.EXPECT().TokenAccount(a.Vault.Address).Return(&token.Account{Amount: 42}, nil).Times(1)

	q := query.New(logger.New(fixtures.LogCategory), r)

	var reply query.EscrowReply
	err := q.Escrow(&query.EscrowArguments{}, &reply)
	assert.Nil(t, err, "wrong Escrow")
	assert.Equal(t, a.Escrow.Address, reply.Escrow, "wrong escrow address")
	assert.Equal(t, a.Vault.Address, reply.Vault, "wrong vault address")
	assert.Equal(t, record, reply.Record, "wrong record")
	assert.Equal(t, uint64(42), reply.VaultBalance, "wrong vault balance")
}

func TestEscrowWhenCancelled(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := addresses(t)

	r := mocks.NewMockReader(ctl)
	r.EXPECT().Addresses().Return(a).Times(1)
	r.EXPECT().Escrow(a.Escrow.Address).Return(nil, fault.ErrEscrowNotFound).Times(1)

	q := query.New(logger.New(fixtures.LogCategory), r)

	var reply query.EscrowReply
	err := q.Escrow(&query.EscrowArguments{}, &reply)
	assert.Equal(t, fault.ErrEscrowNotFound, err, "wrong error")
}

func TestAsset(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := addresses(t)
	mint := solana.NewWallet().PublicKey()
	d, _ := a.AssetData(mint)
	metadataProgram := solana.NewWallet().PublicKey()
	m, _ := address.Metadata(metadataProgram, mint)

	record := &program.AssetDataRecord{Count: 3, Timestamp: 1646092800}
	md := &metadata.Metadata{Mint: mint, Name: "Mount"}

	r := mocks.NewMockReader(ctl)
	r.EXPECT().Addresses().Return(a).Times(1)
	r.EXPECT().AssetData(d.Address).Return(record, nil).Times(1)
	r.EXPECT().MetadataAddress(mint).Return(m, nil).Times(1)
	r.EXPECT().Metadata(m.Address).Return(md, nil).Times(1)

	q := query.New(logger.New(fixtures.LogCategory), r)

	var reply query.AssetReply
	err := q.Asset(&query.AssetArguments{Mint: mint}, &reply)
	assert.Nil(t, err, "wrong Asset")
	assert.Equal(t, d.Address, reply.AssetData, "wrong asset data address")
	assert.Equal(t, record, reply.Record, "wrong record")
	assert.Equal(t, md, reply.Metadata, "wrong metadata")
}

func TestAssetWithoutMetadata(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := addresses(t)
	mint := solana.NewWallet().PublicKey()

	r := mocks.NewMockReader(ctl)
	r.EXPECT().Addresses().Return(a).Times(1)
	r.EXPECT().AssetData(gomock.Any()).Return(&program.AssetDataRecord{}, nil).Times(1)
	r.EXPECT().MetadataAddress(mint).Return(address.Derived{}, nil).Times(1)
	r.EXPECT().Metadata(gomock.Any()).Return(nil, fault.ErrMetadataNotFound).Times(1)

	q := query.New(logger.New(fixtures.LogCategory), r)

	var reply query.AssetReply
	err := q.Asset(&query.AssetArguments{Mint: mint}, &reply)
	assert.Nil(t, err, "wrong Asset")
	assert.Nil(t, reply.Metadata, "unexpected metadata")
}

func TestAccountAndMint(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	accountAddress := solana.NewWallet().PublicKey()
	mintAddress := solana.NewWallet().PublicKey()
	account := &token.Account{Mint: mintAddress, Amount: 5}
	mint := &token.Mint{Supply: 5, Decimals: 9}

	r := mocks.NewMockReader(ctl)
	r.EXPECT().TokenAccount(accountAddress).Return(account, nil).Times(1)
	r.EXPECT().Mint(mintAddress).Return(mint, nil).Times(1)
	r.EXPECT().Mint(accountAddress).Return(nil, fault.ErrMintNotFound).Times(1)

	q := query.New(logger.New(fixtures.LogCategory), r)

	var accountReply query.AccountReply
	err := q.Account(&query.AddressArguments{Address: accountAddress}, &accountReply)
	assert.Nil(t, err, "wrong Account")
	assert.Equal(t, account, accountReply.Account, "wrong account")

	var mintReply query.MintReply
	err = q.Mint(&query.AddressArguments{Address: mintAddress}, &mintReply)
	assert.Nil(t, err, "wrong Mint")
	assert.Equal(t, mint, mintReply.Mint, "wrong mint")

	err = q.Mint(&query.AddressArguments{Address: accountAddress}, &mintReply)
	assert.Equal(t, fault.ErrMintNotFound, err, "wrong error")
}

func TestAccounts(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	present := solana.NewWallet().PublicKey()
	absent := solana.NewWallet().PublicKey()
	account := &token.Account{Amount: 1}

	r := mocks.NewMockReader(ctl)
	r.EXPECT().TokenAccount(present).Return(account, nil).Times(1)
	r.EXPECT().TokenAccount(absent).Return(nil, fault.ErrTokenAccountNotFound).Times(1)

	q := query.New(logger.New(fixtures.LogCategory), r)

	var reply query.AccountsReply
	err := q.Accounts(&query.AccountsArguments{
		Addresses: []solana.PublicKey{present, absent},
	}, &reply)
	assert.Nil(t, err, "wrong Accounts")
	assert.Equal(t, 2, len(reply.Accounts), "wrong result count")
	assert.Equal(t, account, reply.Accounts[0].Account, "wrong present account")
	assert.Equal(t, absent, reply.Accounts[1].Address, "wrong order")
	assert.Nil(t, reply.Accounts[1].Account, "absent account returned")
}

func TestAccountsWhenCountInvalid(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	q := query.New(logger.New(fixtures.LogCategory), mocks.NewMockReader(ctl))

	var reply query.AccountsReply
	err := q.Accounts(&query.AccountsArguments{}, &reply)
	assert.Equal(t, fault.ErrInvalidCount, err, "wrong error")
}
