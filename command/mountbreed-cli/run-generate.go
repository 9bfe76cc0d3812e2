// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/mountbreed/command/mountbreed-cli/configuration"
)

type keyPairDisplay struct {
	Seed       string `json:"seed"`
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key"`
}

func runGenerate(c *cli.Context) error {

	seed, err := configuration.NewSeed()
	if nil != err {
		return err
	}

	privateKey, err := configuration.PrivateKeyFromSeed(seed)
	if nil != err {
		return err
	}

	output := keyPairDisplay{
		Seed:       "SEED:" + seed,
		PublicKey:  privateKey.PublicKey().String(),
		PrivateKey: privateKey.String(),
	}

	return printJson(c.App.Writer, output)
}
