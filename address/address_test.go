// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address_test

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/mountbreed/address"
	"github.com/bitmark-inc/mountbreed/fault"
)

func TestDeriveIsDeterministic(t *testing.T) {
	first, err := address.Derive(address.DefaultProgramID, []byte(address.TokenSeed))
	assert.Nil(t, err, "wrong derive")

	second, err := address.Derive(address.DefaultProgramID, []byte(address.TokenSeed))
	assert.Nil(t, err, "wrong derive")

	assert.Equal(t, first, second, "derivation changed between calls")

	recreated, err := solana.CreateProgramAddress([][]byte{[]byte(address.TokenSeed), {first.Bump}}, address.DefaultProgramID)
	assert.Nil(t, err, "wrong create program address")
	assert.Equal(t, first.Address, recreated, "bump does not recreate address")
}

func TestDistinctSeeds(t *testing.T) {
	a, err := address.New(address.DefaultProgramID)
	assert.Nil(t, err, "wrong new")

	assert.NotEqual(t, a.Vault.Address, a.Authority.Address, "vault and authority collide")
	assert.NotEqual(t, a.Vault.Address, a.Escrow.Address, "vault and escrow collide")
	assert.NotEqual(t, a.Authority.Address, a.Escrow.Address, "authority and escrow collide")
	assert.Equal(t, address.DefaultProgramID, a.Program, "wrong program")
}

func TestDistinctPrograms(t *testing.T) {
	other := solana.NewWallet().PublicKey()

	a, err := address.New(address.DefaultProgramID)
	assert.Nil(t, err, "wrong new")
	b, err := address.New(other)
	assert.Nil(t, err, "wrong new")

	assert.NotEqual(t, a.Vault.Address, b.Vault.Address, "programs share a vault address")
}

func TestAssetData(t *testing.T) {
	a, err := address.New(address.DefaultProgramID)
	assert.Nil(t, err, "wrong new")

	mintOne := solana.NewWallet().PublicKey()
	mintTwo := solana.NewWallet().PublicKey()

	one, err := a.AssetData(mintOne)
	assert.Nil(t, err, "wrong asset data")
	two, err := a.AssetData(mintTwo)
	assert.Nil(t, err, "wrong asset data")
	again, err := a.AssetData(mintOne)
	assert.Nil(t, err, "wrong asset data")

	assert.NotEqual(t, one.Address, two.Address, "mints share an address")
	assert.Equal(t, one, again, "derivation changed between calls")
}

func TestVerify(t *testing.T) {
	seed := []byte(address.EscrowSeed)
	d, err := address.Derive(address.DefaultProgramID, seed)
	assert.Nil(t, err, "wrong derive")

	err = address.Verify(address.DefaultProgramID, d.Address, d.Bump, seed)
	assert.Nil(t, err, "canonical derivation rejected")

	err = address.Verify(address.DefaultProgramID, d.Address, d.Bump-1, seed)
	assert.Equal(t, fault.ErrInvalidBump, err, "wrong bump accepted")

	err = address.Verify(address.DefaultProgramID, solana.NewWallet().PublicKey(), d.Bump, seed)
	assert.Equal(t, fault.ErrAddressMismatch, err, "wrong address accepted")
}

func TestMetadata(t *testing.T) {
	mint := solana.NewWallet().PublicKey()

	d, err := address.Metadata(address.MetadataProgramID, mint)
	assert.Nil(t, err, "wrong metadata")

	expected, bump, err := solana.FindTokenMetadataAddress(mint)
	assert.Nil(t, err, "wrong token metadata address")
	assert.Equal(t, expected, d.Address, "wrong metadata address")
	assert.Equal(t, bump, d.Bump, "wrong metadata bump")
}

func TestCheck(t *testing.T) {
	d, err := address.Derive(address.DefaultProgramID, []byte(address.AuthoritySeed))
	assert.Nil(t, err, "wrong derive")

	assert.Nil(t, d.Check(d.Address, d.Bump), "own derivation rejected")
	assert.Equal(t, fault.ErrInvalidBump, d.Check(d.Address, d.Bump+1), "wrong bump accepted")
	assert.Equal(t, fault.ErrAddressMismatch, d.Check(solana.NewWallet().PublicKey(), d.Bump), "wrong address accepted")
}

func TestVerifyAssetData(t *testing.T) {
	a, err := address.New(address.DefaultProgramID)
	assert.Nil(t, err, "wrong new")

	mint := solana.NewWallet().PublicKey()
	d, err := a.AssetData(mint)
	assert.Nil(t, err, "wrong asset data")

	err = a.VerifyAssetData(mint, d.Address, d.Bump)
	assert.Nil(t, err, "canonical asset data rejected")

	other, err := a.AssetData(solana.NewWallet().PublicKey())
	assert.Nil(t, err, "wrong asset data")
	err = a.VerifyAssetData(mint, other.Address, other.Bump)
	assert.Equal(t, fault.ErrAddressMismatch, err, "asset data of another mint accepted")
}
