// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/mountbreed/fault"
)

// Transaction - staged access to the pools
//
// nothing is written until Commit, Abort discards everything
type Transaction interface {
	Get(*PoolHandle, []byte) []byte
	Has(*PoolHandle, []byte) bool
	Put(*PoolHandle, []byte, []byte)
	Delete(*PoolHandle, []byte)
	Commit() error
	Abort()
}

type transaction struct {
	store *Store
	batch *leveldb.Batch
	cache Cache
	done  bool
}

// Begin - start a transaction
//
// blocks until any other open transaction has finished
func (s *Store) Begin() (Transaction, error) {
	s.Lock()
	if nil == s.db || s.readOnly {
		s.Unlock()
		return nil, fault.ErrDatabaseIsNotSet
	}
	return newTransaction(s, newCache()), nil
}

func newTransaction(s *Store, c Cache) *transaction {
	return &transaction{
		store: s,
		batch: new(leveldb.Batch),
		cache: c,
	}
}

func (t *transaction) Get(p *PoolHandle, key []byte) []byte {
	k := p.prefixKey(key)
	value, op, found := t.cache.Get(string(k))
	if found {
		if dbDelete == op {
			return nil
		}
		return value
	}
	value, err := t.store.db.Get(k, nil)
	if leveldb.ErrNotFound == err {
		return nil
	}
	logger.PanicIfError("transaction.Get", err)
	return value
}

func (t *transaction) Has(p *PoolHandle, key []byte) bool {
	k := p.prefixKey(key)
	_, op, found := t.cache.Get(string(k))
	if found {
		return dbPut == op
	}
	value, err := t.store.db.Has(k, nil)
	logger.PanicIfError("transaction.Has", err)
	return value
}

func (t *transaction) Put(p *PoolHandle, key []byte, value []byte) {
	k := p.prefixKey(key)
	t.cache.Set(dbPut, string(k), value)
	t.batch.Put(k, value)
}

func (t *transaction) Delete(p *PoolHandle, key []byte) {
	k := p.prefixKey(key)
	t.cache.Set(dbDelete, string(k), nil)
	t.batch.Delete(k)
}

// Commit - write the whole batch atomically and release the store
func (t *transaction) Commit() error {
	if t.done {
		return fault.ErrTransactionClosed
	}
	err := t.store.db.Write(t.batch, nil)
	t.finish()
	return err
}

// Abort - discard the batch and release the store
func (t *transaction) Abort() {
	if t.done {
		return
	}
	t.finish()
}

func (t *transaction) finish() {
	t.batch.Reset()
	t.cache.Clear()
	t.done = true
	t.store.Unlock()
}
