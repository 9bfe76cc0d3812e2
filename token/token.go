// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"github.com/gagliardetto/solana-go"

	"github.com/bitmark-inc/mountbreed/fault"
	"github.com/bitmark-inc/mountbreed/ledger"
	"github.com/bitmark-inc/mountbreed/util"
)

// Token - the token program
type Token struct {
	id solana.PublicKey
}

// New - token program with the given identity
func New(id solana.PublicKey) *Token {
	return &Token{
		id: id,
	}
}

// ID - the program identity that owns mints and token accounts
func (t *Token) ID() solana.PublicKey {
	return t.id
}

// GetMint - read a mint
func (t *Token) GetMint(loader ledger.Loader, address solana.PublicKey) (*Mint, error) {
	mint := &Mint{}
	err := loader.Load(address, t.id, mint)
	if fault.ErrAccountNotFound == err {
		return nil, fault.ErrMintNotFound
	}
	if nil != err {
		return nil, err
	}
	return mint, nil
}

// GetAccount - read a token account
func (t *Token) GetAccount(loader ledger.Loader, address solana.PublicKey) (*Account, error) {
	account := &Account{}
	err := loader.Load(address, t.id, account)
	if fault.ErrAccountNotFound == err {
		return nil, fault.ErrTokenAccountNotFound
	}
	if nil != err {
		return nil, err
	}
	return account, nil
}

// CreateMint - open a new mint, the mint key must sign
func (t *Token) CreateMint(st *ledger.State, signers Authority, arguments *CreateMintArguments) error {
	if !signers.Signed(arguments.Mint) {
		return fault.ErrMissingSignature
	}
	return st.Create(arguments.Mint, t.id, &Mint{
		MintAuthority: arguments.MintAuthority,
		Supply:        0,
		Decimals:      arguments.Decimals,
	})
}

// CreateAccount - open an empty token account at a given address
//
// no signature is checked, callers must establish their right to the
// address; program derived vaults use this
func (t *Token) CreateAccount(st *ledger.State, address solana.PublicKey, mint solana.PublicKey, owner solana.PublicKey) error {
	if _, err := t.GetMint(st, mint); nil != err {
		return err
	}
	return st.Create(address, t.id, &Account{
		Mint:   mint,
		Owner:  owner,
		Amount: 0,
	})
}

// AssociatedAddress - the canonical token account of an owner for a mint
func AssociatedAddress(owner solana.PublicKey, mint solana.PublicKey) (solana.PublicKey, error) {
	a, _, err := solana.FindAssociatedTokenAddress(owner, mint)
	return a, err
}

// CreateAssociatedAccount - open the canonical token account for an
// owner, paid for by a signing funder
func (t *Token) CreateAssociatedAccount(st *ledger.State, signers Authority, arguments *CreateAccountArguments) (solana.PublicKey, error) {
	if !signers.Signed(arguments.Funder) {
		return solana.PublicKey{}, fault.ErrMissingSignature
	}
	a, err := AssociatedAddress(arguments.Owner, arguments.Mint)
	if nil != err {
		return solana.PublicKey{}, err
	}
	err = t.CreateAccount(st, a, arguments.Mint, arguments.Owner)
	if nil != err {
		return solana.PublicKey{}, err
	}
	return a, nil
}

// MintTo - create new supply into a token account
func (t *Token) MintTo(st *ledger.State, signers Authority, arguments *MintToArguments) error {
	mint, err := t.GetMint(st, arguments.Mint)
	if nil != err {
		return err
	}
	if !signers.Signed(mint.MintAuthority) {
		return fault.ErrMissingSignature
	}
	destination, err := t.GetAccount(st, arguments.Destination)
	if nil != err {
		return err
	}
	if !destination.Mint.Equals(arguments.Mint) {
		return fault.ErrMintMismatch
	}

	supply, ok := util.SafeAdd(mint.Supply, arguments.Amount)
	if !ok {
		return fault.ErrAmountOverflow
	}
	amount, ok := util.SafeAdd(destination.Amount, arguments.Amount)
	if !ok {
		return fault.ErrAmountOverflow
	}
	mint.Supply = supply
	destination.Amount = amount

	if err := st.Update(arguments.Mint, t.id, mint); nil != err {
		return err
	}
	return st.Update(arguments.Destination, t.id, destination)
}

// Transfer - move tokens between two accounts of the same mint
func (t *Token) Transfer(st *ledger.State, signers Authority, arguments *TransferArguments) error {
	source, err := t.GetAccount(st, arguments.Source)
	if nil != err {
		return err
	}
	if !signers.Signed(source.Owner) {
		return fault.ErrMissingSignature
	}
	destination, err := t.GetAccount(st, arguments.Destination)
	if nil != err {
		return err
	}
	if !source.Mint.Equals(destination.Mint) {
		return fault.ErrMintMismatch
	}

	remaining, ok := util.SafeSub(source.Amount, arguments.Amount)
	if !ok {
		return fault.ErrInsufficientFunds
	}
	if arguments.Source.Equals(arguments.Destination) {
		return nil
	}
	received, ok := util.SafeAdd(destination.Amount, arguments.Amount)
	if !ok {
		return fault.ErrAmountOverflow
	}
	source.Amount = remaining
	destination.Amount = received

	if err := st.Update(arguments.Source, t.id, source); nil != err {
		return err
	}
	return st.Update(arguments.Destination, t.id, destination)
}

// Burn - destroy tokens held by an account, reducing supply
func (t *Token) Burn(st *ledger.State, signers Authority, address solana.PublicKey, amount uint64) error {
	account, err := t.GetAccount(st, address)
	if nil != err {
		return err
	}
	if !signers.Signed(account.Owner) {
		return fault.ErrMissingSignature
	}
	mint, err := t.GetMint(st, account.Mint)
	if nil != err {
		return err
	}

	remaining, ok := util.SafeSub(account.Amount, amount)
	if !ok {
		return fault.ErrInsufficientFunds
	}
	supply, ok := util.SafeSub(mint.Supply, amount)
	if !ok {
		return fault.ErrInsufficientFunds
	}
	account.Amount = remaining
	mint.Supply = supply

	if err := st.Update(address, t.id, account); nil != err {
		return err
	}
	return st.Update(account.Mint, t.id, mint)
}

// CloseAccount - remove an empty token account
func (t *Token) CloseAccount(st *ledger.State, signers Authority, address solana.PublicKey) error {
	account, err := t.GetAccount(st, address)
	if nil != err {
		return err
	}
	if !signers.Signed(account.Owner) {
		return fault.ErrMissingSignature
	}
	if 0 != account.Amount {
		return fault.ErrNonZeroBalance
	}
	return st.Close(address, t.id)
}
