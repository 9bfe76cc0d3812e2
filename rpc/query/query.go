// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package query

import (
	"github.com/gagliardetto/solana-go"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/mountbreed/address"
	"github.com/bitmark-inc/mountbreed/fault"
	"github.com/bitmark-inc/mountbreed/metadata"
	"github.com/bitmark-inc/mountbreed/program"
	"github.com/bitmark-inc/mountbreed/rpc/ratelimit"
	"github.com/bitmark-inc/mountbreed/token"
)

const (
	rateLimitQuery = 200
	rateBurstQuery = 100

	maximumAccounts = 100
)

// Reader - committed ledger lookups
type Reader interface {
	Addresses() *address.Addresses
	Escrow(solana.PublicKey) (*program.EscrowRecord, error)
	AssetData(solana.PublicKey) (*program.AssetDataRecord, error)
	TokenAccount(solana.PublicKey) (*token.Account, error)
	Mint(solana.PublicKey) (*token.Mint, error)
	MetadataAddress(solana.PublicKey) (address.Derived, error)
	Metadata(solana.PublicKey) (*metadata.Metadata, error)
}

// Query - an RPC entry for ledger lookups
type Query struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Reader  Reader
}

// New - create the query service
func New(log *logger.L, reader Reader) *Query {
	return &Query{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitQuery, rateBurstQuery),
		Reader:  reader,
	}
}

// ---

// EscrowArguments - empty, the escrow address is fixed
type EscrowArguments struct{}

// EscrowReply - the escrow state and the vault balance
type EscrowReply struct {
	Escrow       solana.PublicKey      `json:"escrow"`
	Vault        solana.PublicKey      `json:"vault"`
	Record       *program.EscrowRecord `json:"record"`
	VaultBalance uint64                `json:"vaultBalance"`
}

// Escrow - the current escrow of the program
func (q *Query) Escrow(_ *EscrowArguments, reply *EscrowReply) error {

	if err := ratelimit.Limit(q.Limiter); nil != err {
		return err
	}

	a := q.Reader.Addresses()
	record, err := q.Reader.Escrow(a.Escrow.Address)
	if nil != err {
		return err
	}
	vault, err := q.Reader.TokenAccount(a.Vault.Address)
	if nil != err {
		return err
	}

	reply.Escrow = a.Escrow.Address
	reply.Vault = a.Vault.Address
	reply.Record = record
	reply.VaultBalance = vault.Amount
	return nil
}

// ---

// AssetArguments - the mint of a mount asset
type AssetArguments struct {
	Mint solana.PublicKey `json:"mint"`
}

// AssetReply - redemption state and metadata of a mount asset
type AssetReply struct {
	AssetData solana.PublicKey         `json:"assetData"`
	Record    *program.AssetDataRecord `json:"record"`
	Metadata  *metadata.Metadata       `json:"metadata,omitempty"`
}

// Asset - the asset data record for a mint, with metadata when present
func (q *Query) Asset(arguments *AssetArguments, reply *AssetReply) error {

	if err := ratelimit.Limit(q.Limiter); nil != err {
		return err
	}

	d, err := q.Reader.Addresses().AssetData(arguments.Mint)
	if nil != err {
		return err
	}
	record, err := q.Reader.AssetData(d.Address)
	if nil != err {
		return err
	}

	m, err := q.Reader.MetadataAddress(arguments.Mint)
	if nil != err {
		return err
	}
	md, err := q.Reader.Metadata(m.Address)
	if nil != err && fault.ErrMetadataNotFound != err {
		return err
	}

	reply.AssetData = d.Address
	reply.Record = record
	reply.Metadata = md
	return nil
}

// ---

// AddressArguments - a single account address
type AddressArguments struct {
	Address solana.PublicKey `json:"address"`
}

// AccountReply - a token account
type AccountReply struct {
	Account *token.Account `json:"account"`
}

// Account - the token account at an address
func (q *Query) Account(arguments *AddressArguments, reply *AccountReply) error {

	if err := ratelimit.Limit(q.Limiter); nil != err {
		return err
	}

	account, err := q.Reader.TokenAccount(arguments.Address)
	if nil != err {
		return err
	}
	reply.Account = account
	return nil
}

// MintReply - a mint
type MintReply struct {
	Mint *token.Mint `json:"mint"`
}

// Mint - the mint at an address
func (q *Query) Mint(arguments *AddressArguments, reply *MintReply) error {

	if err := ratelimit.Limit(q.Limiter); nil != err {
		return err
	}

	mint, err := q.Reader.Mint(arguments.Address)
	if nil != err {
		return err
	}
	reply.Mint = mint
	return nil
}

// ---

// AccountsArguments - a batch of token account addresses
type AccountsArguments struct {
	Addresses []solana.PublicKey `json:"addresses"`
}

// AccountEntry - one result of a batch, Account is nil when absent
type AccountEntry struct {
	Address solana.PublicKey `json:"address"`
	Account *token.Account   `json:"account"`
}

// AccountsReply - results in request order
type AccountsReply struct {
	Accounts []AccountEntry `json:"accounts"`
}

// Accounts - several token accounts in one request
func (q *Query) Accounts(arguments *AccountsArguments, reply *AccountsReply) error {

	if err := ratelimit.LimitN(q.Limiter, len(arguments.Addresses), maximumAccounts); nil != err {
		return err
	}

	reply.Accounts = make([]AccountEntry, len(arguments.Addresses))
	for i, a := range arguments.Addresses {
		account, err := q.Reader.TokenAccount(a)
		if nil != err && fault.ErrTokenAccountNotFound != err {
			return err
		}
		reply.Accounts[i] = AccountEntry{
			Address: a,
			Account: account,
		}
	}
	return nil
}
