// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"github.com/bitmark-inc/mountbreed/metadata"
	"github.com/bitmark-inc/mountbreed/program"
	"github.com/bitmark-inc/mountbreed/token"
)

// Tag - identifies the operation carried by a transaction
type Tag uint8

// tags must never be renumbered
const (
	NullTag       Tag = iota
	CreateMintTag     // token: open a mint
	CreateAccountTag  // token: open an associated account
	MintToTag         // token: create supply
	TransferTag       // token: move tokens
	CreateMetadataTag // metadata: describe a mint
	GenesisTag        // program: open the vault
	InitializeTag     // program: create asset data
	RedeemTag         // program: redeem two mounts
	CancelTag         // program: close the vault
	InvalidTag        // keep last
)

var tagNames = map[Tag]string{
	CreateMintTag:     "CreateMint",
	CreateAccountTag:  "CreateAccount",
	MintToTag:         "MintTo",
	TransferTag:       "Transfer",
	CreateMetadataTag: "CreateMetadata",
	GenesisTag:        "Genesis",
	InitializeTag:     "Initialize",
	RedeemTag:         "Redeem",
	CancelTag:         "Cancel",
}

// String - name of a tag
func (t Tag) String() string {
	if s, ok := tagNames[t]; ok {
		return s
	}
	return "Invalid"
}

// empty arguments record for a tag
func (t Tag) arguments() (interface{}, bool) {
	switch t {
	case CreateMintTag:
		return &token.CreateMintArguments{}, true
	case CreateAccountTag:
		return &token.CreateAccountArguments{}, true
	case MintToTag:
		return &token.MintToArguments{}, true
	case TransferTag:
		return &token.TransferArguments{}, true
	case CreateMetadataTag:
		return &metadata.CreateArguments{}, true
	case GenesisTag:
		return &program.GenesisArguments{}, true
	case InitializeTag:
		return &program.InitializeArguments{}, true
	case RedeemTag:
		return &program.RedeemArguments{}, true
	case CancelTag:
		return &program.CancelArguments{}, true
	default:
		return nil, false
	}
}

// TagOf - the tag for an arguments record
func TagOf(arguments interface{}) Tag {
	switch arguments.(type) {
	case *token.CreateMintArguments:
		return CreateMintTag
	case *token.CreateAccountArguments:
		return CreateAccountTag
	case *token.MintToArguments:
		return MintToTag
	case *token.TransferArguments:
		return TransferTag
	case *metadata.CreateArguments:
		return CreateMetadataTag
	case *program.GenesisArguments:
		return GenesisTag
	case *program.InitializeArguments:
		return InitializeTag
	case *program.RedeemArguments:
		return RedeemTag
	case *program.CancelArguments:
		return CancelTag
	default:
		return NullTag
	}
}
