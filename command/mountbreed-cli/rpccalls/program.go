// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/gagliardetto/solana-go"

	"github.com/bitmark-inc/mountbreed/address"
	"github.com/bitmark-inc/mountbreed/program"
	"github.com/bitmark-inc/mountbreed/token"
)

// GenesisData - request data to open the vault
type GenesisData struct {
	Depositor   solana.PrivateKey
	CustomMint  solana.PublicKey
	PaymentMint solana.PublicKey
	CreatorA    solana.PublicKey
	CreatorB    solana.PublicKey
}

// Genesis - move the depositor's custom tokens into the vault
func (client *Client) Genesis(data *GenesisData) (*SubmitReply, error) {
	depositor := data.Depositor.PublicKey()

	source, err := token.AssociatedAddress(depositor, data.CustomMint)
	if nil != err {
		return nil, err
	}

	a := client.addresses
	args := &program.GenesisArguments{
		Depositor:       depositor,
		VaultBump:       a.Vault.Bump,
		EscrowBump:      a.Escrow.Bump,
		CustomMint:      data.CustomMint,
		DepositorSource: source,
		PaymentMint:     data.PaymentMint,
		CreatorA:        data.CreatorA,
		CreatorB:        data.CreatorB,
	}

	reply, err := client.submit(args, data.Depositor)
	if nil != err {
		return nil, err
	}

	return &SubmitReply{
		SubmitReply: *reply,
		Addresses: map[string]solana.PublicKey{
			"vault":  a.Vault.Address,
			"escrow": a.Escrow.Address,
			"source": source,
		},
	}, nil
}

// InitializeData - request data to register a mount
type InitializeData struct {
	Holder solana.PrivateKey
	Mint   solana.PublicKey
}

// Initialize - create the asset data record of a held mount
func (client *Client) Initialize(data *InitializeData) (*SubmitReply, error) {
	holder := data.Holder.PublicKey()

	account, err := token.AssociatedAddress(holder, data.Mint)
	if nil != err {
		return nil, err
	}

	d, err := client.addresses.AssetData(data.Mint)
	if nil != err {
		return nil, err
	}

	args := &program.InitializeArguments{
		Holder:       holder,
		Mint:         data.Mint,
		Bump:         d.Bump,
		TokenAccount: account,
	}

	reply, err := client.submit(args, data.Holder)
	if nil != err {
		return nil, err
	}

	return &SubmitReply{
		SubmitReply: *reply,
		Addresses: map[string]solana.PublicKey{
			"assetData": d.Address,
		},
	}, nil
}

// RedeemData - request data to redeem two mounts
type RedeemData struct {
	Redeemer solana.PrivateKey
	MintA    solana.PublicKey
	MintB    solana.PublicKey
}

// Redeem - burn the fee and receive one custom token
//
// the custom and payment mints are read from the escrow, all
// accounts are the redeemer's associated accounts
func (client *Client) Redeem(data *RedeemData) (*SubmitReply, error) {
	escrow, err := client.GetEscrow()
	if nil != err {
		return nil, err
	}

	redeemer := data.Redeemer.PublicKey()

	mountA, err := client.mount(redeemer, data.MintA)
	if nil != err {
		return nil, err
	}
	mountB, err := client.mount(redeemer, data.MintB)
	if nil != err {
		return nil, err
	}

	destination, err := token.AssociatedAddress(redeemer, escrow.Record.CustomMint)
	if nil != err {
		return nil, err
	}
	payment, err := token.AssociatedAddress(redeemer, escrow.Record.PaymentMint)
	if nil != err {
		return nil, err
	}

	a := client.addresses
	args := &program.RedeemArguments{
		Redeemer:       redeemer,
		MountA:         *mountA,
		MountB:         *mountB,
		Destination:    destination,
		PaymentAccount: payment,
		Vault:          a.Vault.Address,
		Escrow:         a.Escrow.Address,
		PaymentMint:    escrow.Record.PaymentMint,
		VaultAuthority: a.Authority.Address,
	}

	reply, err := client.submit(args, data.Redeemer)
	if nil != err {
		return nil, err
	}

	return &SubmitReply{
		SubmitReply: *reply,
		Addresses: map[string]solana.PublicKey{
			"destination": destination,
			"payment":     payment,
		},
	}, nil
}

// CancelData - request data to close the vault
type CancelData struct {
	Depositor solana.PrivateKey
}

// Cancel - return the vault balance to the depositor's source
func (client *Client) Cancel(data *CancelData) (*SubmitReply, error) {
	escrow, err := client.GetEscrow()
	if nil != err {
		return nil, err
	}

	a := client.addresses
	args := &program.CancelArguments{
		Depositor:       data.Depositor.PublicKey(),
		DepositorSource: escrow.Record.DepositorSource,
		Vault:           a.Vault.Address,
		VaultAuthority:  a.Authority.Address,
		Escrow:          a.Escrow.Address,
	}

	reply, err := client.submit(args, data.Depositor)
	if nil != err {
		return nil, err
	}

	return &SubmitReply{
		SubmitReply: *reply,
		Addresses: map[string]solana.PublicKey{
			"source": escrow.Record.DepositorSource,
		},
	}, nil
}

// the accounts presenting one mount held by its owner
func (client *Client) mount(owner solana.PublicKey, mint solana.PublicKey) (*program.Mount, error) {
	account, err := token.AssociatedAddress(owner, mint)
	if nil != err {
		return nil, err
	}
	d, err := client.addresses.AssetData(mint)
	if nil != err {
		return nil, err
	}
	md, err := client.metadataAddress(mint)
	if nil != err {
		return nil, err
	}
	return &program.Mount{
		Mint:         mint,
		TokenAccount: account,
		AssetData:    d.Address,
		Metadata:     md,
	}, nil
}

func (client *Client) metadataAddress(mint solana.PublicKey) (solana.PublicKey, error) {
	d, err := address.Metadata(client.metadata, mint)
	if nil != err {
		return solana.PublicKey{}, err
	}
	return d.Address, nil
}
