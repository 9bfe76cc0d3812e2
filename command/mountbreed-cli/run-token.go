// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"

	"github.com/gagliardetto/solana-go"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/mountbreed/command/mountbreed-cli/rpccalls"
)

func runCreateMint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	decimals := c.Uint("decimals")
	if decimals > math.MaxUint8 {
		return fmt.Errorf("invalid decimals: %d", decimals)
	}

	name, err := checkIdentity(c.GlobalString("identity"), m.config)
	if nil != err {
		return err
	}

	authority, err := getPrivate(c, m.config, name, "Create Mint")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.CreateMint(&rpccalls.CreateMintData{
		Authority: authority.PrivateKey,
		Decimals:  uint8(decimals),
	})
	if nil != err {
		return err
	}
	return submitted(m, reply)
}

func runCreateAccount(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	mint, err := checkMint(c.String("mint"))
	if nil != err {
		return err
	}

	owner, err := checkOwner(c.String("owner"), c.GlobalString("identity"), m.config)
	if nil != err {
		return err
	}

	name, err := checkIdentity(c.GlobalString("identity"), m.config)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "mint: %s\n", mint)
		fmt.Fprintf(m.e, "owner: %s\n", owner)
		fmt.Fprintf(m.e, "funder: %s\n", name)
	}

	funder, err := getPrivate(c, m.config, name, "Create Token Account")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.CreateAccount(&rpccalls.CreateAccountData{
		Funder: funder.PrivateKey,
		Owner:  owner,
		Mint:   mint,
	})
	if nil != err {
		return err
	}
	return submitted(m, reply)
}

func runMintTo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	mint, err := checkMint(c.String("mint"))
	if nil != err {
		return err
	}

	owner, err := checkOwner(c.String("owner"), c.GlobalString("identity"), m.config)
	if nil != err {
		return err
	}

	amount := c.Uint64("amount")
	if 0 == amount {
		return ErrRequiredAmount
	}

	name, err := checkIdentity(c.GlobalString("identity"), m.config)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "mint: %s\n", mint)
		fmt.Fprintf(m.e, "owner: %s\n", owner)
		fmt.Fprintf(m.e, "amount: %d\n", amount)
	}

	authority, err := getPrivate(c, m.config, name, "Mint Tokens")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.MintTo(&rpccalls.MintToData{
		Authority: authority.PrivateKey,
		Mint:      mint,
		Owner:     owner,
		Amount:    amount,
	})
	if nil != err {
		return err
	}
	return submitted(m, reply)
}

func runCreateMetadata(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	mint, err := checkMint(c.String("mint"))
	if nil != err {
		return err
	}

	assetName := c.String("name")
	if "" == assetName {
		return ErrRequiredName
	}

	name, err := checkIdentity(c.GlobalString("identity"), m.config)
	if nil != err {
		return err
	}

	creatorNames := c.StringSlice("creator")
	creators := make([]solana.PublicKey, len(creatorNames))
	for i, creator := range creatorNames {
		creators[i], err = checkAccount(creator, m.config)
		if nil != err {
			return err
		}
	}

	shares, err := checkShares(c.String("shares"), len(creators))
	if nil != err {
		return err
	}

	authority, err := getPrivate(c, m.config, name, "Create Metadata")
	if nil != err {
		return err
	}

	// creators held as local identities sign to become verified
	creatorKeys := []solana.PrivateKey{}
	for _, creator := range creatorNames {
		id, err := m.config.Identity(creator)
		if nil != err || "" == id.Data || creator == name {
			continue
		}
		private, err := getPrivate(c, m.config, creator, "Verify Creator")
		if nil != err {
			return err
		}
		creatorKeys = append(creatorKeys, private.PrivateKey)
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.CreateMetadata(&rpccalls.CreateMetadataData{
		Authority:   authority.PrivateKey,
		CreatorKeys: creatorKeys,
		Mint:        mint,
		Name:        assetName,
		Symbol:      c.String("symbol"),
		URI:         c.String("uri"),
		Creators:    creators,
		Shares:      shares,
	})
	if nil != err {
		return err
	}
	return submitted(m, reply)
}
