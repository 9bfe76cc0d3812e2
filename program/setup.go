// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package program

import (
	"time"

	"github.com/benbjohnson/clock"
	"github.com/gagliardetto/solana-go"

	"github.com/bitmark-inc/mountbreed/address"
	"github.com/bitmark-inc/mountbreed/fault"
	"github.com/bitmark-inc/mountbreed/ledger"
	"github.com/bitmark-inc/mountbreed/metadata"
	"github.com/bitmark-inc/mountbreed/token"
)

// defaults
const (
	DefaultFee                = 200
	DefaultCooldown           = 7 * 24 * time.Hour
	DefaultMaximumRedemptions = 0
)

// Configuration - per deployment settings
type Configuration struct {
	ProgramID          solana.PublicKey
	Fee                uint64        // whole payment tokens burned per redemption
	Cooldown           time.Duration // minimum time between redemptions of a mount
	MaximumRedemptions uint64        // per mount, zero is unlimited
}

// Reader - read access to program records
type Reader interface {
	Addresses() *address.Addresses
	GetEscrow(ledger.Loader, solana.PublicKey) (*EscrowRecord, error)
	GetAssetData(ledger.Loader, solana.PublicKey) (*AssetDataRecord, error)
}

// Program - one deployment of the program
type Program struct {
	configuration Configuration
	addresses     *address.Addresses
	clock         clock.Clock
	tokens        *token.Token
	provenance    metadata.Lookup
}

var _ Reader = (*Program)(nil)

// New - create a program
func New(configuration Configuration, clk clock.Clock, tokens *token.Token, provenance metadata.Lookup) (*Program, error) {
	if configuration.Cooldown < 0 {
		return nil, fault.ErrInvalidCooldown
	}
	addresses, err := address.New(configuration.ProgramID)
	if nil != err {
		return nil, err
	}
	return &Program{
		configuration: configuration,
		addresses:     addresses,
		clock:         clk,
		tokens:        tokens,
		provenance:    provenance,
	}, nil
}

// Addresses - the fixed derived addresses of this program
func (p *Program) Addresses() *address.Addresses {
	return p.addresses
}

// Configuration - the settings in force
func (p *Program) Configuration() Configuration {
	return p.configuration
}

// GetEscrow - read the escrow record at an address
func (p *Program) GetEscrow(loader ledger.Loader, a solana.PublicKey) (*EscrowRecord, error) {
	escrow := &EscrowRecord{}
	err := loader.Load(a, p.addresses.Program, escrow)
	if fault.ErrAccountNotFound == err {
		return nil, fault.ErrEscrowNotFound
	}
	if nil != err {
		return nil, err
	}
	return escrow, nil
}

// GetAssetData - read the asset data record at an address
func (p *Program) GetAssetData(loader ledger.Loader, a solana.PublicKey) (*AssetDataRecord, error) {
	record := &AssetDataRecord{}
	err := loader.Load(a, p.addresses.Program, record)
	if fault.ErrAccountNotFound == err {
		return nil, fault.ErrAssetDataNotFound
	}
	if nil != err {
		return nil, err
	}
	return record, nil
}

// vaultAuthority - the only way to act for the derived vault authority
//
// never handed outside this package
type vaultAuthority struct {
	signers   token.Authority
	authority solana.PublicKey
}

func (v vaultAuthority) Signed(key solana.PublicKey) bool {
	return key.Equals(v.authority) || v.signers.Signed(key)
}

func (p *Program) asVault(signers token.Authority) token.Authority {
	return vaultAuthority{
		signers:   signers,
		authority: p.addresses.Authority.Address,
	}
}

func (p *Program) getVault(loader ledger.Loader) (*token.Account, error) {
	vault, err := p.tokens.GetAccount(loader, p.addresses.Vault.Address)
	if fault.ErrTokenAccountNotFound == err {
		return nil, fault.ErrVaultNotFound
	}
	return vault, err
}

// check the fixed addresses supplied by a caller
func (p *Program) checkFixed(vault solana.PublicKey, authority solana.PublicKey, escrow solana.PublicKey) error {
	if !vault.Equals(p.addresses.Vault.Address) ||
		!authority.Equals(p.addresses.Authority.Address) ||
		!escrow.Equals(p.addresses.Escrow.Address) {
		return fault.ErrAddressMismatch
	}
	return nil
}
