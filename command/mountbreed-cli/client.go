// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/bitmark-inc/mountbreed/address"
	"github.com/bitmark-inc/mountbreed/command/mountbreed-cli/configuration"
	"github.com/bitmark-inc/mountbreed/command/mountbreed-cli/rpccalls"
	"github.com/bitmark-inc/mountbreed/fault"
)

// the configured programs, blank means the well known defaults
func programIDs(config *configuration.Configuration) (solana.PublicKey, solana.PublicKey, error) {
	programID := address.DefaultProgramID
	metadataProgramID := address.MetadataProgramID

	if "" != config.ProgramID {
		id, err := solana.PublicKeyFromBase58(config.ProgramID)
		if nil != err {
			return solana.PublicKey{}, solana.PublicKey{}, fmt.Errorf("program id: %s", err)
		}
		programID = id
	}
	if "" != config.MetadataProgramID {
		id, err := solana.PublicKeyFromBase58(config.MetadataProgramID)
		if nil != err {
			return solana.PublicKey{}, solana.PublicKey{}, fmt.Errorf("metadata program id: %s", err)
		}
		metadataProgramID = id
	}
	return programID, metadataProgramID, nil
}

// connect to the first configured mountbreedd
func connect(m *metadata) (*rpccalls.Client, error) {
	if 0 == len(m.config.Connections) {
		return nil, ErrRequiredConnect
	}

	programID, metadataProgramID, err := programIDs(m.config)
	if nil != err {
		return nil, err
	}

	return rpccalls.NewClient(programID, metadataProgramID, m.config.Connections[0], m.verbose, m.e)
}

// print a submission and turn a rejection into an error
func submitted(m *metadata, reply *rpccalls.SubmitReply) error {
	printJson(m.w, reply)
	if !reply.Accepted {
		return fault.ProcessError(fmt.Sprintf("rejected: %s (%s %d)", reply.Message, reply.Class, reply.Code))
	}
	return nil
}
