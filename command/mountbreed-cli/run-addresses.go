// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/mountbreed/address"
)

func runAddresses(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	programID, _, err := programIDs(m.config)
	if nil != err {
		return err
	}

	a, err := address.New(programID)
	if nil != err {
		return err
	}

	return printJson(m.w, a)
}
