// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - typed access to ledger accounts
//
// every account is stored under its address as an envelope holding the
// identity of the program that owns it and the encoded record; only the
// owning program's code may decode or change the record
package ledger

import (
	"github.com/gagliardetto/solana-go"

	"github.com/bitmark-inc/mountbreed/codec"
	"github.com/bitmark-inc/mountbreed/fault"
	"github.com/bitmark-inc/mountbreed/storage"
)

// Account - the stored envelope
type Account struct {
	_     struct{}         `cbor:",toarray"`
	Owner solana.PublicKey `json:"owner"`
	Data  codec.RawMessage `cbor:"data" json:"-"`
}

// Loader - read access to accounts
type Loader interface {
	Exists(solana.PublicKey) bool
	Owner(solana.PublicKey) (solana.PublicKey, error)
	Load(address solana.PublicKey, owner solana.PublicKey, record interface{}) error
}

// State - the accounts as seen from inside one storage transaction
type State struct {
	trx  storage.Transaction
	pool *storage.PoolHandle
}

// View - the committed accounts, for queries
type View struct {
	pool *storage.PoolHandle
}

var (
	_ Loader = (*State)(nil)
	_ Loader = (*View)(nil)
)

// NewState - accounts inside a transaction
func NewState(trx storage.Transaction, pool *storage.PoolHandle) *State {
	return &State{
		trx:  trx,
		pool: pool,
	}
}

// NewView - committed accounts
func NewView(pool *storage.PoolHandle) *View {
	return &View{
		pool: pool,
	}
}

// Exists - check if an account is open
func (s *State) Exists(address solana.PublicKey) bool {
	return s.trx.Has(s.pool, address.Bytes())
}

// Owner - the program owning an account
func (s *State) Owner(address solana.PublicKey) (solana.PublicKey, error) {
	return ownerOf(s.trx.Get(s.pool, address.Bytes()))
}

// Load - decode the record of an account owned by a given program
func (s *State) Load(address solana.PublicKey, owner solana.PublicKey, record interface{}) error {
	return decode(s.trx.Get(s.pool, address.Bytes()), owner, record)
}

// Create - open a new account
func (s *State) Create(address solana.PublicKey, owner solana.PublicKey, record interface{}) error {
	if s.Exists(address) {
		return fault.ErrAccountAlreadyExists
	}
	return s.put(address, owner, record)
}

// Update - replace the record of an existing account
func (s *State) Update(address solana.PublicKey, owner solana.PublicKey, record interface{}) error {
	current, err := s.Owner(address)
	if nil != err {
		return err
	}
	if !current.Equals(owner) {
		return fault.ErrAccountOwner
	}
	return s.put(address, owner, record)
}

// Close - remove an account
func (s *State) Close(address solana.PublicKey, owner solana.PublicKey) error {
	current, err := s.Owner(address)
	if nil != err {
		return err
	}
	if !current.Equals(owner) {
		return fault.ErrAccountOwner
	}
	s.trx.Delete(s.pool, address.Bytes())
	return nil
}

func (s *State) put(address solana.PublicKey, owner solana.PublicKey, record interface{}) error {
	data, err := codec.Marshal(record)
	if nil != err {
		return err
	}
	packed, err := codec.Marshal(&Account{
		Owner: owner,
		Data:  data,
	})
	if nil != err {
		return err
	}
	s.trx.Put(s.pool, address.Bytes(), packed)
	return nil
}

// Exists - check if an account is open
func (v *View) Exists(address solana.PublicKey) bool {
	return v.pool.Has(address.Bytes())
}

// Owner - the program owning an account
func (v *View) Owner(address solana.PublicKey) (solana.PublicKey, error) {
	return ownerOf(v.pool.Get(address.Bytes()))
}

// Load - decode the record of an account owned by a given program
func (v *View) Load(address solana.PublicKey, owner solana.PublicKey, record interface{}) error {
	return decode(v.pool.Get(address.Bytes()), owner, record)
}

func unpack(packed []byte) (*Account, error) {
	if nil == packed {
		return nil, fault.ErrAccountNotFound
	}
	account := &Account{}
	if err := codec.Unmarshal(packed, account); nil != err {
		return nil, err
	}
	return account, nil
}

func ownerOf(packed []byte) (solana.PublicKey, error) {
	account, err := unpack(packed)
	if nil != err {
		return solana.PublicKey{}, err
	}
	return account.Owner, nil
}

func decode(packed []byte, owner solana.PublicKey, record interface{}) error {
	account, err := unpack(packed)
	if nil != err {
		return err
	}
	if !account.Owner.Equals(owner) {
		return fault.ErrAccountOwner
	}
	return codec.Unmarshal(account.Data, record)
}
