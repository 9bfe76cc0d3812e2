// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package metadata - provenance records for collectible mints
//
// each mint may have one metadata record at the address derived from
// the mint under the metadata program; the record lists the creators
// and marks the ones that signed its creation as verified
package metadata

import (
	"github.com/gagliardetto/solana-go"

	"github.com/bitmark-inc/mountbreed/address"
	"github.com/bitmark-inc/mountbreed/fault"
	"github.com/bitmark-inc/mountbreed/ledger"
	"github.com/bitmark-inc/mountbreed/token"
)

// field limits
const (
	MaxNameLength   = 32
	MaxSymbolLength = 10
	MaxURILength    = 200
	MaxCreators     = 5
	TotalShares     = 100
)

// Creator - one entry of the creator list
type Creator struct {
	_        struct{}         `cbor:",toarray"`
	Address  solana.PublicKey `json:"address"`
	Verified bool             `json:"verified"`
	Share    uint8            `json:"share"`
}

// Metadata - the stored record
type Metadata struct {
	_               struct{}         `cbor:",toarray"`
	UpdateAuthority solana.PublicKey `json:"updateAuthority"`
	Mint            solana.PublicKey `json:"mint"`
	Name            string           `json:"name"`
	Symbol          string           `json:"symbol"`
	URI             string           `json:"uri"`
	Creators        []Creator        `json:"creators"`
}

// CreateArguments - describe a new metadata record
type CreateArguments struct {
	_               struct{}           `cbor:",toarray"`
	Mint            solana.PublicKey   `json:"mint"`
	UpdateAuthority solana.PublicKey   `json:"updateAuthority"`
	Name            string             `json:"name"`
	Symbol          string             `json:"symbol"`
	URI             string             `json:"uri"`
	Creators        []solana.PublicKey `json:"creators"`
	Shares          []uint8            `json:"shares"`
}

// Lookup - provenance of a mint as needed by redemption
type Lookup interface {
	Creators(loader ledger.Loader, metadataAddress solana.PublicKey, mint solana.PublicKey) ([]Creator, error)
}

// Registry - the metadata program
type Registry struct {
	id     solana.PublicKey
	tokens *token.Token
}

var _ Lookup = (*Registry)(nil)

// New - metadata program with the given identity
func New(id solana.PublicKey, tokens *token.Token) *Registry {
	return &Registry{
		id:     id,
		tokens: tokens,
	}
}

// ID - the program identity that owns metadata records
func (r *Registry) ID() solana.PublicKey {
	return r.id
}

// Address - where the metadata of a mint lives
func (r *Registry) Address(mint solana.PublicKey) (address.Derived, error) {
	return address.Metadata(r.id, mint)
}

// Create - write the metadata record of a mint
//
// the mint authority must sign; a creator is verified only when it
// also signed
func (r *Registry) Create(st *ledger.State, signers token.Authority, arguments *CreateArguments) (solana.PublicKey, error) {
	mint, err := r.tokens.GetMint(st, arguments.Mint)
	if nil != err {
		return solana.PublicKey{}, err
	}
	if !signers.Signed(mint.MintAuthority) {
		return solana.PublicKey{}, fault.ErrMissingSignature
	}

	if len(arguments.Name) > MaxNameLength ||
		len(arguments.Symbol) > MaxSymbolLength ||
		len(arguments.URI) > MaxURILength {
		return solana.PublicKey{}, fault.ErrMetadataFieldTooLong
	}

	creators, err := makeCreators(signers, arguments.Creators, arguments.Shares)
	if nil != err {
		return solana.PublicKey{}, err
	}

	d, err := r.Address(arguments.Mint)
	if nil != err {
		return solana.PublicKey{}, err
	}

	err = st.Create(d.Address, r.id, &Metadata{
		UpdateAuthority: arguments.UpdateAuthority,
		Mint:            arguments.Mint,
		Name:            arguments.Name,
		Symbol:          arguments.Symbol,
		URI:             arguments.URI,
		Creators:        creators,
	})
	if nil != err {
		return solana.PublicKey{}, err
	}
	return d.Address, nil
}

func makeCreators(signers token.Authority, addresses []solana.PublicKey, shares []uint8) ([]Creator, error) {
	if 0 == len(addresses) || len(addresses) > MaxCreators || len(addresses) != len(shares) {
		return nil, fault.ErrInvalidCreators
	}

	seen := make(map[solana.PublicKey]struct{}, len(addresses))
	total := 0
	creators := make([]Creator, 0, len(addresses))
	for i, a := range addresses {
		if _, ok := seen[a]; ok {
			return nil, fault.ErrInvalidCreators
		}
		seen[a] = struct{}{}
		total += int(shares[i])

		creators = append(creators, Creator{
			Address:  a,
			Verified: signers.Signed(a),
			Share:    shares[i],
		})
	}
	if TotalShares != total {
		return nil, fault.ErrInvalidCreators
	}
	return creators, nil
}

// Get - read a metadata record
func (r *Registry) Get(loader ledger.Loader, metadataAddress solana.PublicKey) (*Metadata, error) {
	md := &Metadata{}
	err := loader.Load(metadataAddress, r.id, md)
	if fault.ErrAccountNotFound == err {
		return nil, fault.ErrMetadataNotFound
	}
	if nil != err {
		return nil, err
	}
	return md, nil
}

// Creators - the creator list of a mint, after checking that the
// supplied address really is that mint's metadata
func (r *Registry) Creators(loader ledger.Loader, metadataAddress solana.PublicKey, mint solana.PublicKey) ([]Creator, error) {
	d, err := r.Address(mint)
	if nil != err {
		return nil, err
	}
	if !d.Address.Equals(metadataAddress) {
		return nil, fault.ErrMetadataMismatch
	}
	md, err := r.Get(loader, metadataAddress)
	if nil != err {
		return nil, err
	}
	if !md.Mint.Equals(mint) {
		return nil, fault.ErrMetadataMismatch
	}
	return md.Creators, nil
}
