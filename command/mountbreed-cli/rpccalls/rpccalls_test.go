// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"io/ioutil"
	"net"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/benbjohnson/clock"
	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/mountbreed/address"
	"github.com/bitmark-inc/mountbreed/counter"
	"github.com/bitmark-inc/mountbreed/executor"
	"github.com/bitmark-inc/mountbreed/fault"
	"github.com/bitmark-inc/mountbreed/metadata"
	"github.com/bitmark-inc/mountbreed/program"
	"github.com/bitmark-inc/mountbreed/rpc/fixtures"
	"github.com/bitmark-inc/mountbreed/rpc/server"
	"github.com/bitmark-inc/mountbreed/rpc/transaction"
	"github.com/bitmark-inc/mountbreed/storage"
	"github.com/bitmark-inc/mountbreed/token"
)

// a client joined by a pipe to a server backed by an in memory store
func newTestClient(t *testing.T) (*Client, func()) {
	fixtures.SetupTestLogger()

	store, err := storage.OpenInMemory()
	if nil != err {
		t.Fatalf("open error: %s", err)
	}

	tokens := token.New(address.TokenProgramID)
	registry := metadata.New(address.MetadataProgramID, tokens)
	p, err := program.New(program.Configuration{
		ProgramID: address.DefaultProgramID,
		Fee:       program.DefaultFee,
		Cooldown:  program.DefaultCooldown,
	}, clock.New(), tokens, registry)
	if nil != err {
		t.Fatalf("program error: %s", err)
	}

	log := logger.New(fixtures.LogCategory)
	e := executor.New(log, store, clock.New(), tokens, registry, p)

	var c counter.Counter
	r := server.Create(log, "test", e, &c)

	serverConn, clientConn := net.Pipe()
	go r.ServeCodec(jsonrpc.NewServerCodec(serverConn))

	client, err := newClient(clientConn, address.DefaultProgramID, address.MetadataProgramID, false, ioutil.Discard)
	if nil != err {
		t.Fatalf("client error: %s", err)
	}

	nonce := uint64(0)
	client.nonce = func() uint64 {
		nonce += 1
		return nonce
	}

	return client, func() {
		client.Close()
		store.Close()
		fixtures.TeardownTestLogger()
	}
}

// mustAccept - a check that fails the test unless a submission was
// accepted; it takes a submit call's results directly
func mustAccept(t *testing.T) func(*SubmitReply, error) *SubmitReply {
	return func(reply *SubmitReply, err error) *SubmitReply {
		t.Helper()
		if nil != err {
			t.Fatalf("submit error: %s", err)
		}
		if !reply.Accepted {
			t.Fatalf("rejected: %s", reply.Message)
		}
		return reply
	}
}

func TestGetInfo(t *testing.T) {
	client, done := newTestClient(t)
	defer done()

	reply, err := client.GetInfo()
	assert.Nil(t, err, "wrong GetInfo")
	assert.Equal(t, "test", reply.Version, "wrong version")
	assert.Equal(t, address.DefaultProgramID.String(), reply.Program, "wrong program")
}

func TestRejectionIsReported(t *testing.T) {
	client, done := newTestClient(t)
	defer done()
	accepted := mustAccept(t)

	// no escrow exists yet, so cancel cannot even be built
	_, err := client.Cancel(&CancelData{
		Depositor: solana.NewWallet().PrivateKey,
	})
	assert.NotNil(t, err, "cancel without escrow")
	assert.Equal(t, fault.ErrEscrowNotFound.Error(), err.Error(), "wrong error")

	// minting without the authority is rejected, not an error
	authority := solana.NewWallet().PrivateKey
	mint := accepted(client.CreateMint(&CreateMintData{Authority: authority})).Addresses["mint"]
	owner := solana.NewWallet().PrivateKey
	accepted(client.CreateAccount(&CreateAccountData{Funder: owner, Owner: owner.PublicKey(), Mint: mint}))

	reply, err := client.MintTo(&MintToData{
		Authority: solana.NewWallet().PrivateKey,
		Mint:      mint,
		Owner:     owner.PublicKey(),
		Amount:    1,
	})
	assert.Nil(t, err, "wrong MintTo")
	assert.False(t, reply.Accepted, "mint by stranger accepted")
	assert.Equal(t, fault.Class(fault.ErrMissingSignature), reply.Class, "wrong class")
}

func TestLifecycleThroughClient(t *testing.T) {
	client, done := newTestClient(t)
	defer done()
	accepted := mustAccept(t)

	authority := solana.NewWallet().PrivateKey
	depositor := solana.NewWallet().PrivateKey
	redeemer := solana.NewWallet().PrivateKey
	creator := solana.NewWallet().PrivateKey

	customMint := accepted(client.CreateMint(&CreateMintData{Authority: authority})).Addresses["mint"]
	paymentMint := accepted(client.CreateMint(&CreateMintData{Authority: authority, Decimals: 2})).Addresses["mint"]

	fund := func(owner solana.PrivateKey, mint solana.PublicKey, amount uint64) solana.PublicKey {
		a := accepted(client.CreateAccount(&CreateAccountData{
			Funder: owner,
			Owner:  owner.PublicKey(),
			Mint:   mint,
		})).Addresses["account"]
		if amount > 0 {
			accepted(client.MintTo(&MintToData{
				Authority: authority,
				Mint:      mint,
				Owner:     owner.PublicKey(),
				Amount:    amount,
			}))
		}
		return a
	}

	source := fund(depositor, customMint, 10)
	destination := fund(redeemer, customMint, 0)
	payment := fund(redeemer, paymentMint, 500*100)

	mounts := make([]solana.PublicKey, 2)
	for i := range mounts {
		mint := accepted(client.CreateMint(&CreateMintData{Authority: authority})).Addresses["mint"]
		fund(redeemer, mint, 1)
		accepted(client.CreateMetadata(&CreateMetadataData{
			Authority:   authority,
			CreatorKeys: []solana.PrivateKey{creator},
			Mint:        mint,
			Name:        "Mount",
			Symbol:      "MNT",
			Creators:    []solana.PublicKey{creator.PublicKey()},
			Shares:      []uint8{100},
		}))
		accepted(client.Initialize(&InitializeData{
			Holder: redeemer,
			Mint:   mint,
		}))
		mounts[i] = mint
	}

	asset, err := client.GetAsset(mounts[0])
	assert.Nil(t, err, "wrong GetAsset")
	assert.Equal(t, uint64(0), asset.Record.Count, "wrong initial count")

	genesis := accepted(client.Genesis(&GenesisData{
		Depositor:   depositor,
		CustomMint:  customMint,
		PaymentMint: paymentMint,
		CreatorA:    creator.PublicKey(),
		CreatorB:    solana.NewWallet().PublicKey(),
	}))
	assert.Equal(t, source, genesis.Addresses["source"], "wrong source")

	escrow, err := client.GetEscrow()
	assert.Nil(t, err, "wrong GetEscrow")
	assert.Equal(t, uint64(10), escrow.VaultBalance, "wrong vault balance")
	assert.Equal(t, customMint, escrow.Record.CustomMint, "wrong custom mint")

	redeem := accepted(client.Redeem(&RedeemData{
		Redeemer: redeemer,
		MintA:    mounts[0],
		MintB:    mounts[1],
	}))
	assert.Equal(t, destination, redeem.Addresses["destination"], "wrong destination")
	assert.Equal(t, payment, redeem.Addresses["payment"], "wrong payment")

	accounts, err := client.GetAccounts([]solana.PublicKey{destination, payment})
	assert.Nil(t, err, "wrong GetAccounts")
	assert.Equal(t, 2, len(accounts.Accounts), "wrong account count")
	assert.Equal(t, uint64(1), accounts.Accounts[0].Account.Amount, "wrong custom balance")
	assert.Equal(t, uint64(300*100), accounts.Accounts[1].Account.Amount, "wrong payment balance")

	asset, err = client.GetAsset(mounts[0])
	assert.Nil(t, err, "wrong GetAsset")
	assert.Equal(t, uint64(1), asset.Record.Count, "wrong count")

	// the same mounts are inside their time lock
	again, err := client.Redeem(&RedeemData{
		Redeemer: redeemer,
		MintA:    mounts[0],
		MintB:    mounts[1],
	})
	assert.Nil(t, err, "wrong Redeem")
	assert.False(t, again.Accepted, "redeem inside time lock accepted")
	assert.Equal(t, fault.Code(fault.ErrRedemptionTooEarly), again.Code, "wrong code")

	cancel := accepted(client.Cancel(&CancelData{
		Depositor: depositor,
	}))

	status, err := client.GetTransactionStatus(&TransactionStatusData{TxId: cancel.TxId.String()})
	assert.Nil(t, err, "wrong GetTransactionStatus")
	assert.Equal(t, transaction.StatusAccepted, status.Status, "wrong status")
	assert.Equal(t, "Cancel", status.Tag, "wrong tag")

	refund, err := client.GetAccount(source)
	assert.Nil(t, err, "wrong GetAccount")
	assert.Equal(t, uint64(9), refund.Account.Amount, "source not refunded")

	mint, err := client.GetMint(customMint)
	assert.Nil(t, err, "wrong GetMint")
	assert.Equal(t, uint64(10), mint.Mint.Supply, "wrong supply")

	_, err = client.GetEscrow()
	assert.NotNil(t, err, "escrow remains")
}
