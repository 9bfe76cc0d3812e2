// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/mountbreed/command/mountbreed-cli/rpccalls"
)

func runGenesis(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	customMint, err := checkMint(c.String("custom-mint"))
	if nil != err {
		return err
	}

	paymentMint, err := checkMint(c.String("payment-mint"))
	if nil != err {
		return err
	}

	creatorA, err := checkAccount(c.String("creator-a"), m.config)
	if nil != err {
		return err
	}

	creatorB, err := checkAccount(c.String("creator-b"), m.config)
	if nil != err {
		return err
	}

	name, err := checkIdentity(c.GlobalString("identity"), m.config)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "custom mint: %s\n", customMint)
		fmt.Fprintf(m.e, "payment mint: %s\n", paymentMint)
		fmt.Fprintf(m.e, "creators: %s, %s\n", creatorA, creatorB)
		fmt.Fprintf(m.e, "depositor: %s\n", name)
	}

	depositor, err := getPrivate(c, m.config, name, "Deposit Into Vault")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Genesis(&rpccalls.GenesisData{
		Depositor:   depositor.PrivateKey,
		CustomMint:  customMint,
		PaymentMint: paymentMint,
		CreatorA:    creatorA,
		CreatorB:    creatorB,
	})
	if nil != err {
		return err
	}
	return submitted(m, reply)
}

func runInitialize(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	mint, err := checkMint(c.String("mint"))
	if nil != err {
		return err
	}

	name, err := checkIdentity(c.GlobalString("identity"), m.config)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "mint: %s\n", mint)
		fmt.Fprintf(m.e, "holder: %s\n", name)
	}

	holder, err := getPrivate(c, m.config, name, "Register Mount")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Initialize(&rpccalls.InitializeData{
		Holder: holder.PrivateKey,
		Mint:   mint,
	})
	if nil != err {
		return err
	}
	return submitted(m, reply)
}

func runRedeem(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	mintA, err := checkMint(c.String("mint-a"))
	if nil != err {
		return err
	}

	mintB, err := checkMint(c.String("mint-b"))
	if nil != err {
		return err
	}

	if mintA.Equals(mintB) {
		return ErrSameMints
	}

	name, err := checkIdentity(c.GlobalString("identity"), m.config)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "mounts: %s, %s\n", mintA, mintB)
		fmt.Fprintf(m.e, "redeemer: %s\n", name)
	}

	redeemer, err := getPrivate(c, m.config, name, "Redeem Mounts")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Redeem(&rpccalls.RedeemData{
		Redeemer: redeemer.PrivateKey,
		MintA:    mintA,
		MintB:    mintB,
	})
	if nil != err {
		return err
	}
	return submitted(m, reply)
}

func runCancel(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkIdentity(c.GlobalString("identity"), m.config)
	if nil != err {
		return err
	}

	depositor, err := getPrivate(c, m.config, name, "Close Vault")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Cancel(&rpccalls.CancelData{
		Depositor: depositor.PrivateKey,
	})
	if nil != err {
		return err
	}
	return submitted(m, reply)
}
