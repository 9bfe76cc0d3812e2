// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runChangePassword(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkIdentity(c.GlobalString("identity"), m.config)
	if nil != err {
		return err
	}

	oldPassword, err := getPassword(c, name, "Change Password")
	if nil != err {
		return err
	}

	// check before asking for the new one
	if _, err := m.config.Private(oldPassword, name); nil != err {
		return err
	}

	newPassword, err := promptNewPassword()
	if nil != err {
		return err
	}

	err = m.config.ChangePassword(name, oldPassword, newPassword)
	if nil != err {
		return err
	}

	m.save = true
	return nil
}
