// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/mountbreed/address"
	"github.com/bitmark-inc/mountbreed/fault"
	"github.com/bitmark-inc/mountbreed/program"
)

const minimalLua = `
local M = {}
M.data_directory = "."
M.client_rpc = {
    listen = { "127.0.0.1:2140" },
}
return M
`

const programLua = `
local M = {}
M.data_directory = "."
M.pidfile = "mountbreedd.pid"
M.program = {
    fee = 150,
    cooldown = "72h",
    maximum_redemptions = 5,
}
M.database = {
    name = "test.leveldb",
}
return M
`

func writeConfiguration(t *testing.T, text string, withCertificate bool) (string, string) {
	dir := t.TempDir()

	if withCertificate {
		err := makeSelfSignedCertificate("test", filepath.Join(dir, rpcCertificateKeyFilename), filepath.Join(dir, rpcPrivateKeyFilename), false, nil)
		if nil != err {
			t.Fatalf("make certificate error: %s", err)
		}
	}

	fileName := filepath.Join(dir, "mountbreedd.conf")
	err := os.WriteFile(fileName, []byte(text), 0600)
	if nil != err {
		t.Fatalf("write configuration error: %s", err)
	}
	return dir, fileName
}

func TestGetConfigurationDefaults(t *testing.T) {
	dir, fileName := writeConfiguration(t, minimalLua, true)

	c, err := getConfiguration(fileName)
	assert.Nil(t, err, "wrong configuration")

	assert.Equal(t, filepath.Clean(dir), c.DataDirectory, "wrong data directory")
	assert.Equal(t, filepath.Join(dir, "data", defaultDatabase), c.Database.Name, "wrong database")
	assert.Equal(t, filepath.Join(dir, defaultLogDirectory), c.Logging.Directory, "wrong log directory")
	assert.Equal(t, "", c.PidFile, "pid file should be optional")
	assert.Equal(t, []string{"127.0.0.1:2140"}, c.ClientRPC.Listen, "wrong listen")
	assert.Equal(t, uint64(defaultRPCClients), c.ClientRPC.MaximumConnections, "wrong maximum connections")

	assert.True(t, strings.HasPrefix(c.ClientRPC.Certificate, pemPrefix), "certificate not loaded")
	assert.True(t, strings.HasPrefix(c.ClientRPC.PrivateKey, pemPrefix), "private key not loaded")

	_, err = os.Stat(c.Logging.Directory)
	assert.Nil(t, err, "log directory not created")

	s, err := c.settings()
	assert.Nil(t, err, "wrong settings")
	assert.Equal(t, address.DefaultProgramID, s.Program.ProgramID, "wrong program id")
	assert.Equal(t, address.MetadataProgramID, s.Metadata, "wrong metadata program id")
	assert.Equal(t, address.TokenProgramID, s.Token, "wrong token program id")
	assert.Equal(t, uint64(program.DefaultFee), s.Program.Fee, "wrong fee")
	assert.Equal(t, program.DefaultCooldown, s.Program.Cooldown, "wrong cooldown")
	assert.Equal(t, uint64(0), s.Program.MaximumRedemptions, "wrong maximum redemptions")
}

func TestGetConfigurationProgram(t *testing.T) {
	dir, fileName := writeConfiguration(t, programLua, true)

	c, err := getConfiguration(fileName)
	assert.Nil(t, err, "wrong configuration")

	assert.Equal(t, filepath.Join(dir, "mountbreedd.pid"), c.PidFile, "wrong pid file")
	assert.Equal(t, filepath.Join(dir, "data", "test.leveldb"), c.Database.Name, "wrong database")

	s, err := c.settings()
	assert.Nil(t, err, "wrong settings")
	assert.Equal(t, uint64(150), s.Program.Fee, "wrong fee")
	assert.Equal(t, 72*time.Hour, s.Program.Cooldown, "wrong cooldown")
	assert.Equal(t, uint64(5), s.Program.MaximumRedemptions, "wrong maximum redemptions")
}

func TestGetConfigurationErrors(t *testing.T) {
	_, fileName := writeConfiguration(t, minimalLua, false)
	_, err := getConfiguration(fileName)
	assert.True(t, os.IsNotExist(err), "missing certificate accepted: %v", err)

	invalid := []string{
		`return { data_directory = "", }`,
		`return { data_directory = ".", program = { program_id = "not-base58-0OIl" } }`,
		`return { data_directory = ".", program = { cooldown = "soon" } }`,
		`return { data_directory = ".", program = { cooldown = "-1h" } }`,
		`return { data_directory = ".", database = { name = "sub/test.leveldb" } }`,
	}
	for i, text := range invalid {
		_, fileName := writeConfiguration(t, text, true)
		_, err := getConfiguration(fileName)
		assert.NotNil(t, err, "%d: invalid configuration accepted", i)
	}

	_, fileName = writeConfiguration(t, `return "text"`, true)
	_, err = getConfiguration(fileName)
	assert.Equal(t, fault.ErrConfigurationNotTable, err, "wrong error")
}

func TestMakeSelfSignedCertificate(t *testing.T) {
	dir := t.TempDir()
	certificateFileName := filepath.Join(dir, rpcCertificateKeyFilename)
	keyFileName := filepath.Join(dir, rpcPrivateKeyFilename)

	err := makeSelfSignedCertificate("test", certificateFileName, keyFileName, true, []string{"127.0.0.1"})
	assert.Nil(t, err, "wrong make certificate")

	info, err := os.Stat(keyFileName)
	assert.Nil(t, err, "key not written")
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm(), "wrong key permissions")

	err = makeSelfSignedCertificate("test", certificateFileName, keyFileName, false, nil)
	assert.Equal(t, fault.ErrCertificateFileAlreadyExists, err, "certificate overwritten")

	os.Remove(certificateFileName)
	err = makeSelfSignedCertificate("test", certificateFileName, keyFileName, false, nil)
	assert.Equal(t, fault.ErrKeyFileAlreadyExists, err, "key overwritten")
}
