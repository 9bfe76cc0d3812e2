// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"github.com/gagliardetto/solana-go"

	"github.com/bitmark-inc/mountbreed/fault"
)

// namespace seeds
const (
	TokenSeed     = "token-seed"
	AuthoritySeed = "authority-seed"
	EscrowSeed    = "escrow-seed"
	MetadataSeed  = "metadata"
)

// well known program identities
var (
	DefaultProgramID  = solana.MustPublicKeyFromBase58("39JMEP5Ss4uEXJfqiJdL6M2nrwPfJ9W632iR2h1hZUnf")
	MetadataProgramID = solana.TokenMetadataProgramID
	TokenProgramID    = solana.TokenProgramID
)

// Derived - an address and the bump that moved it off the curve
type Derived struct {
	Address solana.PublicKey `json:"address"`
	Bump    uint8            `json:"bump"`
}

// Derive - compute the canonical program address for a set of seeds
func Derive(programID solana.PublicKey, seeds ...[]byte) (Derived, error) {
	a, bump, err := solana.FindProgramAddress(seeds, programID)
	if nil != err {
		return Derived{}, err
	}
	return Derived{Address: a, Bump: bump}, nil
}

// Verify - check that an address and bump are the canonical
// derivation of the seeds
func Verify(programID solana.PublicKey, expected solana.PublicKey, bump uint8, seeds ...[]byte) error {
	d, err := Derive(programID, seeds...)
	if nil != err {
		return err
	}
	return d.Check(expected, bump)
}

// Check - compare a supplied address and bump with a derivation
func (d Derived) Check(expected solana.PublicKey, bump uint8) error {
	if !d.Address.Equals(expected) {
		return fault.ErrAddressMismatch
	}
	if d.Bump != bump {
		return fault.ErrInvalidBump
	}
	return nil
}

// Metadata - address of the metadata record for a mint
func Metadata(metadataProgramID solana.PublicKey, mint solana.PublicKey) (Derived, error) {
	return Derive(metadataProgramID, []byte(MetadataSeed), metadataProgramID.Bytes(), mint.Bytes())
}

// Addresses - the fixed addresses of one program
type Addresses struct {
	Program   solana.PublicKey `json:"program"`
	Vault     Derived          `json:"vault"`
	Authority Derived          `json:"authority"`
	Escrow    Derived          `json:"escrow"`
}

// New - derive all fixed addresses for a program
func New(programID solana.PublicKey) (*Addresses, error) {
	vault, err := Derive(programID, []byte(TokenSeed))
	if nil != err {
		return nil, err
	}
	authority, err := Derive(programID, []byte(AuthoritySeed))
	if nil != err {
		return nil, err
	}
	escrow, err := Derive(programID, []byte(EscrowSeed))
	if nil != err {
		return nil, err
	}
	return &Addresses{
		Program:   programID,
		Vault:     vault,
		Authority: authority,
		Escrow:    escrow,
	}, nil
}

// AssetData - address of the per asset record for a mint
func (a *Addresses) AssetData(mint solana.PublicKey) (Derived, error) {
	return Derive(a.Program, mint.Bytes())
}

// VerifyAssetData - check a supplied asset data address and bump for a mint
func (a *Addresses) VerifyAssetData(mint solana.PublicKey, expected solana.PublicKey, bump uint8) error {
	return Verify(a.Program, expected, bump, mint.Bytes())
}
