// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/gagliardetto/solana-go"

	"github.com/bitmark-inc/mountbreed/rpc/query"
)

// GetEscrow - the escrow record and vault balance
func (client *Client) GetEscrow() (*query.EscrowReply, error) {
	var reply query.EscrowReply
	if err := client.client.Call("Query.Escrow", query.EscrowArguments{}, &reply); err != nil {
		return nil, err
	}

	client.printJson("Escrow Reply", reply)

	return &reply, nil
}

// GetAsset - the asset data record of a mint
func (client *Client) GetAsset(mint solana.PublicKey) (*query.AssetReply, error) {
	args := query.AssetArguments{
		Mint: mint,
	}

	client.printJson("Asset Request", args)

	var reply query.AssetReply
	if err := client.client.Call("Query.Asset", args, &reply); err != nil {
		return nil, err
	}

	client.printJson("Asset Reply", reply)

	return &reply, nil
}

// GetAccount - a token account
func (client *Client) GetAccount(a solana.PublicKey) (*query.AccountReply, error) {
	args := query.AddressArguments{
		Address: a,
	}

	client.printJson("Account Request", args)

	var reply query.AccountReply
	if err := client.client.Call("Query.Account", args, &reply); err != nil {
		return nil, err
	}

	client.printJson("Account Reply", reply)

	return &reply, nil
}

// GetMint - a token mint
func (client *Client) GetMint(a solana.PublicKey) (*query.MintReply, error) {
	args := query.AddressArguments{
		Address: a,
	}

	client.printJson("Mint Request", args)

	var reply query.MintReply
	if err := client.client.Call("Query.Mint", args, &reply); err != nil {
		return nil, err
	}

	client.printJson("Mint Reply", reply)

	return &reply, nil
}

// GetAccounts - several token accounts in one call
func (client *Client) GetAccounts(addresses []solana.PublicKey) (*query.AccountsReply, error) {
	args := query.AccountsArguments{
		Addresses: addresses,
	}

	client.printJson("Accounts Request", args)

	var reply query.AccountsReply
	if err := client.client.Call("Query.Accounts", args, &reply); err != nil {
		return nil, err
	}

	client.printJson("Accounts Reply", reply)

	return &reply, nil
}
