// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package executor - apply signed transactions to the ledger
//
// each transaction is verified, checked against the processed pool
// and dispatched inside one storage transaction; the whole batch is
// written only when the operation succeeds
package executor

import (
	"github.com/benbjohnson/clock"
	"github.com/gagliardetto/solana-go"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/mountbreed/address"
	"github.com/bitmark-inc/mountbreed/codec"
	"github.com/bitmark-inc/mountbreed/counter"
	"github.com/bitmark-inc/mountbreed/fault"
	"github.com/bitmark-inc/mountbreed/instruction"
	"github.com/bitmark-inc/mountbreed/ledger"
	"github.com/bitmark-inc/mountbreed/metadata"
	"github.com/bitmark-inc/mountbreed/program"
	"github.com/bitmark-inc/mountbreed/storage"
	"github.com/bitmark-inc/mountbreed/token"
)

// Processed - the stored record of an accepted transaction
type Processed struct {
	_         struct{}           `cbor:",toarray"`
	Timestamp int64              `json:"timestamp"`
	Tag       instruction.Tag    `json:"tag"`
	Packed    instruction.Packed `cbor:"packed" json:"-"`
}

// Executor - applies transactions in a total order
type Executor struct {
	log      *logger.L
	store    *storage.Store
	clock    clock.Clock
	tokens   *token.Token
	registry *metadata.Registry
	program  *program.Program
	accepted counter.Counter
	rejected counter.Counter
}

// New - create an executor
func New(log *logger.L, store *storage.Store, clk clock.Clock, tokens *token.Token, registry *metadata.Registry, p *program.Program) *Executor {
	return &Executor{
		log:      log,
		store:    store,
		clock:    clk,
		tokens:   tokens,
		registry: registry,
		program:  p,
	}
}

// Submit - verify and apply one packed transaction
func (e *Executor) Submit(packed instruction.Packed) (instruction.TxID, error) {
	tx, err := packed.Unpack()
	if nil != err {
		e.rejected.Increment()
		return instruction.TxID{}, err
	}

	id, err := tx.ID()
	if nil != err {
		e.rejected.Increment()
		return instruction.TxID{}, err
	}

	err = e.apply(id, tx, packed)
	if nil != err {
		e.rejected.Increment()
		e.log.Warnf("rejected: %s  tag: %s  error: %s", id, tx.Tag, err)
		return id, err
	}

	e.accepted.Increment()
	e.log.Infof("accepted: %s  tag: %s", id, tx.Tag)
	return id, nil
}

func (e *Executor) apply(id instruction.TxID, tx *instruction.Transaction, packed instruction.Packed) error {
	signers, err := tx.Verify()
	if nil != err {
		return err
	}
	arguments, err := tx.Arguments()
	if nil != err {
		return err
	}

	trx, err := e.store.Begin()
	if nil != err {
		return err
	}

	if trx.Has(e.store.Pools.Transactions, id[:]) {
		trx.Abort()
		return fault.ErrTransactionProcessed
	}

	st := ledger.NewState(trx, e.store.Pools.Accounts)
	err = e.dispatch(st, signers, arguments)
	if nil != err {
		trx.Abort()
		return err
	}

	record, err := codec.Marshal(&Processed{
		Timestamp: e.clock.Now().Unix(),
		Tag:       tx.Tag,
		Packed:    packed,
	})
	if nil != err {
		trx.Abort()
		return err
	}
	trx.Put(e.store.Pools.Transactions, id[:], record)

	e.log.Debugf("commit: %s  packed: %s", id, packed.Hex())
	return trx.Commit()
}

func (e *Executor) dispatch(st *ledger.State, signers token.Authority, arguments interface{}) error {
	switch arguments := arguments.(type) {
	case *token.CreateMintArguments:
		return e.tokens.CreateMint(st, signers, arguments)
	case *token.CreateAccountArguments:
		_, err := e.tokens.CreateAssociatedAccount(st, signers, arguments)
		return err
	case *token.MintToArguments:
		return e.tokens.MintTo(st, signers, arguments)
	case *token.TransferArguments:
		return e.tokens.Transfer(st, signers, arguments)
	case *metadata.CreateArguments:
		_, err := e.registry.Create(st, signers, arguments)
		return err
	case *program.GenesisArguments:
		return e.program.Genesis(st, signers, arguments)
	case *program.InitializeArguments:
		return e.program.Initialize(st, signers, arguments)
	case *program.RedeemArguments:
		return e.program.Redeem(st, signers, arguments)
	case *program.CancelArguments:
		return e.program.Cancel(st, signers, arguments)
	default:
		return fault.ErrUnknownInstruction
	}
}

// View - the committed ledger
func (e *Executor) View() *ledger.View {
	return ledger.NewView(e.store.Pools.Accounts)
}

// Transaction - a previously accepted transaction
func (e *Executor) Transaction(id instruction.TxID) (*Processed, error) {
	record := e.store.Pools.Transactions.Get(id[:])
	if nil == record {
		return nil, fault.ErrTransactionNotFound
	}
	p := &Processed{}
	if err := codec.Unmarshal(record, p); nil != err {
		return nil, err
	}
	return p, nil
}

// Addresses - the derived addresses of the program
func (e *Executor) Addresses() *address.Addresses {
	return e.program.Addresses()
}

// Escrow - committed escrow record at an address
func (e *Executor) Escrow(a solana.PublicKey) (*program.EscrowRecord, error) {
	return e.program.GetEscrow(e.View(), a)
}

// AssetData - committed asset data record at an address
func (e *Executor) AssetData(a solana.PublicKey) (*program.AssetDataRecord, error) {
	return e.program.GetAssetData(e.View(), a)
}

// TokenAccount - committed token account at an address
func (e *Executor) TokenAccount(a solana.PublicKey) (*token.Account, error) {
	return e.tokens.GetAccount(e.View(), a)
}

// Mint - committed mint at an address
func (e *Executor) Mint(a solana.PublicKey) (*token.Mint, error) {
	return e.tokens.GetMint(e.View(), a)
}

// MetadataAddress - where the configured metadata program keeps the
// record of a mint
func (e *Executor) MetadataAddress(mint solana.PublicKey) (address.Derived, error) {
	return e.registry.Address(mint)
}

// Metadata - committed metadata record at an address
func (e *Executor) Metadata(a solana.PublicKey) (*metadata.Metadata, error) {
	return e.registry.Get(e.View(), a)
}

// Counts - accepted and rejected totals since start
func (e *Executor) Counts() (uint64, uint64) {
	return e.accepted.Uint64(), e.rejected.Uint64()
}

