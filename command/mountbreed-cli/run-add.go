// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runAdd(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("identity"))
	if nil != err {
		return err
	}

	description, err := checkDescription(c.String("description"))
	if nil != err {
		return err
	}

	publicKey := c.String("public-key")
	seedGiven := "" != c.String("seed") || c.Bool("new")

	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s\n", name)
		fmt.Fprintf(m.e, "description: %s\n", description)
	}

	switch {
	case "" != publicKey && seedGiven:
		return ErrTooManyKeyOptions

	case "" != publicKey:
		err = m.config.AddReceiveOnlyIdentity(name, description, publicKey)
		if nil != err {
			return err
		}

	default:
		seed, err := checkSeed(c.String("seed"), c.Bool("new"))
		if nil != err {
			return err
		}

		password := c.GlobalString("password")
		if "" == password {
			password, err = promptNewPassword()
			if nil != err {
				return err
			}
		}

		err = m.config.AddIdentity(name, description, seed, password)
		if nil != err {
			return err
		}
	}

	if c.Bool("default") {
		m.config.DefaultIdentity = name
	}

	m.save = true
	return nil
}
