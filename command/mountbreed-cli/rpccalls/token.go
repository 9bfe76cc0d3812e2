// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/gagliardetto/solana-go"

	"github.com/bitmark-inc/mountbreed/metadata"
	"github.com/bitmark-inc/mountbreed/token"
)

// CreateMintData - request data for a new mint
type CreateMintData struct {
	Authority solana.PrivateKey
	Decimals  uint8
}

// CreateMint - open a mint under a fresh key
func (client *Client) CreateMint(data *CreateMintData) (*SubmitReply, error) {
	mint := solana.NewWallet().PrivateKey

	args := &token.CreateMintArguments{
		Mint:          mint.PublicKey(),
		MintAuthority: data.Authority.PublicKey(),
		Decimals:      data.Decimals,
	}

	reply, err := client.submit(args, mint)
	if nil != err {
		return nil, err
	}

	return &SubmitReply{
		SubmitReply: *reply,
		Addresses: map[string]solana.PublicKey{
			"mint": args.Mint,
		},
	}, nil
}

// CreateAccountData - request data for an associated token account
type CreateAccountData struct {
	Funder solana.PrivateKey
	Owner  solana.PublicKey
	Mint   solana.PublicKey
}

// CreateAccount - open the associated account of an owner for a mint
func (client *Client) CreateAccount(data *CreateAccountData) (*SubmitReply, error) {
	args := &token.CreateAccountArguments{
		Funder: data.Funder.PublicKey(),
		Owner:  data.Owner,
		Mint:   data.Mint,
	}

	account, err := token.AssociatedAddress(data.Owner, data.Mint)
	if nil != err {
		return nil, err
	}

	reply, err := client.submit(args, data.Funder)
	if nil != err {
		return nil, err
	}

	return &SubmitReply{
		SubmitReply: *reply,
		Addresses: map[string]solana.PublicKey{
			"account": account,
		},
	}, nil
}

// MintToData - request data for new supply
type MintToData struct {
	Authority solana.PrivateKey
	Mint      solana.PublicKey
	Owner     solana.PublicKey
	Amount    uint64
}

// MintTo - mint into the associated account of an owner
func (client *Client) MintTo(data *MintToData) (*SubmitReply, error) {
	destination, err := token.AssociatedAddress(data.Owner, data.Mint)
	if nil != err {
		return nil, err
	}

	args := &token.MintToArguments{
		Mint:        data.Mint,
		Destination: destination,
		Amount:      data.Amount,
	}

	reply, err := client.submit(args, data.Authority)
	if nil != err {
		return nil, err
	}

	return &SubmitReply{
		SubmitReply: *reply,
		Addresses: map[string]solana.PublicKey{
			"destination": destination,
		},
	}, nil
}

// CreateMetadataData - request data for a metadata record
//
// the mint authority signs and becomes the update authority, a
// creator is verified only if its key is one of the signers
type CreateMetadataData struct {
	Authority   solana.PrivateKey
	CreatorKeys []solana.PrivateKey
	Mint        solana.PublicKey
	Name        string
	Symbol      string
	URI         string
	Creators    []solana.PublicKey
	Shares      []uint8
}

// CreateMetadata - describe a mint
func (client *Client) CreateMetadata(data *CreateMetadataData) (*SubmitReply, error) {
	args := &metadata.CreateArguments{
		Mint:            data.Mint,
		UpdateAuthority: data.Authority.PublicKey(),
		Name:            data.Name,
		Symbol:          data.Symbol,
		URI:             data.URI,
		Creators:        data.Creators,
		Shares:          data.Shares,
	}

	d, err := client.metadataAddress(data.Mint)
	if nil != err {
		return nil, err
	}

	keys := append([]solana.PrivateKey{data.Authority}, data.CreatorKeys...)
	reply, err := client.submit(args, keys...)
	if nil != err {
		return nil, err
	}

	return &SubmitReply{
		SubmitReply: *reply,
		Addresses: map[string]solana.PublicKey{
			"metadata": d,
		},
	}, nil
}
