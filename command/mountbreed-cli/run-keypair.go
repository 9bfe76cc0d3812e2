// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runKeyPair(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkIdentity(c.GlobalString("identity"), m.config)
	if nil != err {
		return err
	}

	private, err := getPrivate(c, m.config, name, "Display Key Pair")
	if nil != err {
		return err
	}

	output := keyPairDisplay{
		Seed:       "SEED:" + private.Seed,
		PublicKey:  private.PrivateKey.PublicKey().String(),
		PrivateKey: private.PrivateKey.String(),
	}
	return printJson(m.w, output)
}
