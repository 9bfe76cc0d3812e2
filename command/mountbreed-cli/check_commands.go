// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/gagliardetto/solana-go"

	"github.com/bitmark-inc/mountbreed/command/mountbreed-cli/configuration"
	"github.com/bitmark-inc/mountbreed/fault"
)

var (
	ErrRequiredAmount      = fault.InvalidError("amount is required")
	ErrRequiredConnect     = fault.InvalidError("connect is required")
	ErrRequiredDescription = fault.InvalidError("description is required")
	ErrRequiredIdentity    = fault.InvalidError("identity is required")
	ErrRequiredMint        = fault.InvalidError("mint is required")
	ErrRequiredName        = fault.InvalidError("asset name is required")
	ErrRequiredPublicKey   = fault.InvalidError("public key is required")
	ErrRequiredSeed        = fault.InvalidError("one of seed, new or public key is required")
	ErrRequiredTxId        = fault.InvalidError("transaction id is required")
	ErrSameMints           = fault.InvalidError("both mounts have the same mint")
	ErrSharesCount         = fault.InvalidError("shares do not match creators")
	ErrTooManyKeyOptions   = fault.InvalidError("only one of seed, new or public key is allowed")
)

// identity is required, but not checked against the config file
func checkName(name string) (string, error) {
	if "" == name {
		return "", ErrRequiredIdentity
	}

	return name, nil
}

// connect is required.
func checkConnect(connect string) (string, error) {
	if "" == connect {
		return "", ErrRequiredConnect
	}

	return connect, nil
}

// description is required
func checkDescription(description string) (string, error) {
	if "" == description {
		return "", ErrRequiredDescription
	}

	return description, nil
}

// exactly one of: existing seed/key, a new seed
func checkSeed(seed string, generate bool) (string, error) {
	switch {
	case "" != seed && generate:
		return "", ErrTooManyKeyOptions
	case generate:
		return configuration.NewSeed()
	case "" == seed:
		return "", ErrRequiredSeed
	default:
		return configuration.SeedFromKey(seed)
	}
}

// identity name or default identity
func checkIdentity(name string, config *configuration.Configuration) (string, error) {
	if "" == name {
		name = config.DefaultIdentity
	}
	if "" == name {
		return "", ErrRequiredIdentity
	}
	if _, err := config.Identity(name); nil != err {
		return "", err
	}
	return name, nil
}

// an account is either an identity name or a base58 public key
func checkAccount(account string, config *configuration.Configuration) (solana.PublicKey, error) {
	if "" == account {
		return solana.PublicKey{}, ErrRequiredPublicKey
	}
	if nil != config {
		if _, ok := config.Identities[account]; ok {
			return config.PublicKey(account)
		}
	}
	key, err := solana.PublicKeyFromBase58(account)
	if nil != err {
		return solana.PublicKey{}, fault.ErrInvalidPublicKey
	}
	return key, nil
}

// owner defaults to the selected identity
func checkOwner(owner string, identity string, config *configuration.Configuration) (solana.PublicKey, error) {
	if "" == owner {
		name, err := checkIdentity(identity, config)
		if nil != err {
			return solana.PublicKey{}, err
		}
		return config.PublicKey(name)
	}
	return checkAccount(owner, config)
}

// mint is required and must be a public key
func checkMint(mint string) (solana.PublicKey, error) {
	if "" == mint {
		return solana.PublicKey{}, ErrRequiredMint
	}
	key, err := solana.PublicKeyFromBase58(mint)
	if nil != err {
		return solana.PublicKey{}, fault.ErrInvalidPublicKey
	}
	return key, nil
}

// comma separated shares, blank splits evenly with the remainder to
// the first creator
func checkShares(shares string, count int) ([]uint8, error) {
	if 0 == count {
		if "" != shares {
			return nil, ErrSharesCount
		}
		return nil, nil
	}

	result := make([]uint8, count)

	if "" == shares {
		each := 100 / count
		for i := range result {
			result[i] = uint8(each)
		}
		result[0] += uint8(100 - each*count)
		return result, nil
	}

	s := strings.Split(shares, ",")
	if len(s) != count {
		return nil, ErrSharesCount
	}
	for i, v := range s {
		n, err := strconv.ParseUint(strings.TrimSpace(v), 10, 8)
		if nil != err {
			return nil, err
		}
		result[i] = uint8(n)
	}
	return result, nil
}

// transaction id is required
func checkTxId(txId string) (string, error) {
	if "" == txId {
		return "", ErrRequiredTxId
	}

	return txId, nil
}

// check if file exists
func checkFileExists(name string) (bool, error) {
	s, err := os.Stat(name)
	if nil != err {
		return false, err
	}
	return s.IsDir(), nil
}
