// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gagliardetto/solana-go"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/mountbreed/address"
	"github.com/bitmark-inc/mountbreed/configuration"
	"github.com/bitmark-inc/mountbreed/program"
	"github.com/bitmark-inc/mountbreed/rpc/listeners"
	"github.com/bitmark-inc/mountbreed/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultKeyFile         = "rpc.key"
	defaultCertificateFile = "rpc.crt"

	defaultLevelDBDirectory = "data"
	defaultDatabase         = "mountbreed.leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "mountbreedd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients = 10
	defaultBandwidth  = 25000000

	pemPrefix = "-----BEGIN "
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// ProgramType - text form of the program settings
type ProgramType struct {
	ProgramID          string `gluamapper:"program_id" json:"program_id"`
	MetadataProgramID  string `gluamapper:"metadata_program_id" json:"metadata_program_id"`
	TokenProgramID     string `gluamapper:"token_program_id" json:"token_program_id"`
	Fee                uint64 `gluamapper:"fee" json:"fee"`
	Cooldown           string `gluamapper:"cooldown" json:"cooldown"`
	MaximumRedemptions uint64 `gluamapper:"maximum_redemptions" json:"maximum_redemptions"`
}

type Configuration struct {
	DataDirectory string       `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string       `gluamapper:"pidfile" json:"pidfile"`
	Database      DatabaseType `gluamapper:"database" json:"database"`
	Program       ProgramType  `gluamapper:"program" json:"program"`

	ClientRPC listeners.RPCConfiguration   `gluamapper:"client_rpc" json:"client_rpc"`
	HttpsRPC  listeners.HTTPSConfiguration `gluamapper:"https_rpc" json:"https_rpc"`
	Logging   logger.Configuration         `gluamapper:"logging" json:"logging"`
}

// the decoded program settings
type programSettings struct {
	Program  program.Configuration
	Metadata solana.PublicKey
	Token    solana.PublicKey
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabase,
		},

		Program: ProgramType{
			ProgramID:          address.DefaultProgramID.String(),
			MetadataProgramID:  address.MetadataProgramID.String(),
			TokenProgramID:     address.TokenProgramID.String(),
			Fee:                program.DefaultFee,
			Cooldown:           program.DefaultCooldown.String(),
			MaximumRedemptions: program.DefaultMaximumRedemptions,
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Bandwidth:          defaultBandwidth,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		// default: share config with normal RPC
		HttpsRPC: listeners.HTTPSConfiguration{
			MaximumConnections: defaultRPCClients,
			Certificate:        defaultCertificateFile,
			PrivateKey:         defaultKeyFile,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// check the identities early so config-test reports them
	if _, err := options.settings(); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.PidFile,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = util.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// certificates and keys are either inline PEM or a file
	// name relative to the data directory
	pemItems := []*string{
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
	}
	if 0 != len(options.HttpsRPC.Listen) {
		pemItems = append(pemItems, &options.HttpsRPC.Certificate, &options.HttpsRPC.PrivateKey)
	}
	for _, f := range pemItems {
		if err := loadPEM(options.DataDirectory, f); nil != err {
			return nil, err
		}
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[1] = util.EnsureAbsolute(options.DataDirectory, *f[1])
				*f[0] = util.EnsureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("Files: %q is not plain name", *f[0])
		}
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

// decode the text form program settings
func (c *Configuration) settings() (*programSettings, error) {
	p := c.Program

	programID, err := solana.PublicKeyFromBase58(p.ProgramID)
	if nil != err {
		return nil, fmt.Errorf("program_id: %q  error: %s", p.ProgramID, err)
	}
	metadataID, err := solana.PublicKeyFromBase58(p.MetadataProgramID)
	if nil != err {
		return nil, fmt.Errorf("metadata_program_id: %q  error: %s", p.MetadataProgramID, err)
	}
	tokenID, err := solana.PublicKeyFromBase58(p.TokenProgramID)
	if nil != err {
		return nil, fmt.Errorf("token_program_id: %q  error: %s", p.TokenProgramID, err)
	}
	cooldown, err := time.ParseDuration(p.Cooldown)
	if nil != err {
		return nil, fmt.Errorf("cooldown: %q  error: %s", p.Cooldown, err)
	}
	if cooldown < 0 {
		return nil, fmt.Errorf("cooldown: %q is negative", p.Cooldown)
	}

	return &programSettings{
		Program: program.Configuration{
			ProgramID:          programID,
			Fee:                p.Fee,
			Cooldown:           cooldown,
			MaximumRedemptions: p.MaximumRedemptions,
		},
		Metadata: metadataID,
		Token:    tokenID,
	}, nil
}

// replace a file name by its PEM contents, blank is left alone
func loadPEM(directory string, item *string) error {
	if "" == *item || strings.HasPrefix(strings.TrimSpace(*item), pemPrefix) {
		return nil
	}
	fileName := util.EnsureAbsolute(directory, *item)
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return err
	}
	*item = string(data)
	return nil
}
