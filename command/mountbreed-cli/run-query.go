// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/gagliardetto/solana-go"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/mountbreed/command/mountbreed-cli/rpccalls"
	"github.com/bitmark-inc/mountbreed/token"
)

func runEscrow(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetEscrow()
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runAsset(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	mint, err := checkMint(c.String("mint"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetAsset(mint)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runAccount(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	addresses := []solana.PublicKey{}
	for _, s := range c.StringSlice("address") {
		a, err := checkAccount(s, nil)
		if nil != err {
			return err
		}
		addresses = append(addresses, a)
	}

	if "" != c.String("mint") {
		mint, err := checkMint(c.String("mint"))
		if nil != err {
			return err
		}
		owner, err := checkOwner(c.String("owner"), c.GlobalString("identity"), m.config)
		if nil != err {
			return err
		}
		a, err := token.AssociatedAddress(owner, mint)
		if nil != err {
			return err
		}
		addresses = append(addresses, a)
	}

	if 0 == len(addresses) {
		return ErrRequiredPublicKey
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	if 1 == len(addresses) {
		reply, err := client.GetAccount(addresses[0])
		if nil != err {
			return err
		}
		return printJson(m.w, reply)
	}

	reply, err := client.GetAccounts(addresses)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runMint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	mint, err := checkMint(c.String("mint"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetMint(mint)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetInfo()
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runTransactionStatus(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	txId, err := checkTxId(c.String("txid"))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetTransactionStatus(&rpccalls.TransactionStatusData{
		TxId: txId,
	})
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}
