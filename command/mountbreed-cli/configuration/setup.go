// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - the client's connection and identity file
//
// identities hold a base58 key seed encrypted with a password derived
// key, receive only identities hold just the public key
package configuration

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/gagliardetto/solana-go"

	"github.com/bitmark-inc/mountbreed/fault"
)

// Configuration - the whole client file
type Configuration struct {
	DefaultIdentity   string              `json:"default_identity"`
	Connections       []string            `json:"connections"`
	ProgramID         string              `json:"program_id"`
	MetadataProgramID string              `json:"metadata_program_id"`
	Identities        map[string]Identity `json:"identities"`
}

// Identity - one named key
type Identity struct {
	Description string `json:"description"`
	PublicKey   string `json:"public_key"`
	Data        string `json:"data"`
	Salt        string `json:"salt"`
}

// Load - read a configuration file
func Load(filename string) (*Configuration, error) {

	options := &Configuration{}

	err := readConfiguration(filename, options)
	if nil != err {
		return nil, err
	}
	if nil == options.Identities {
		options.Identities = make(map[string]Identity)
	}
	return options, nil
}

func readConfiguration(filename string, options interface{}) error {

	filename, err := filepath.Abs(filepath.Clean(filename))
	if nil != err {
		return err
	}

	f, err := os.Open(filename)
	if nil != err {
		return err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	err = dec.Decode(options)
	if nil != err {
		return err
	}

	return nil
}

// Identity - find an identity by name
func (config *Configuration) Identity(name string) (*Identity, error) {
	id, ok := config.Identities[name]
	if !ok {
		return nil, fault.ErrIdentityNameNotFound
	}

	return &id, nil
}

// PublicKey - the public key of a named identity
func (config *Configuration) PublicKey(name string) (solana.PublicKey, error) {
	id, err := config.Identity(name)
	if nil != err {
		return solana.PublicKey{}, err
	}

	return solana.PublicKeyFromBase58(id.PublicKey)
}

// Private - decrypt the key of a named identity
func (config *Configuration) Private(password string, name string) (*Private, error) {
	id, err := config.Identity(name)
	if nil != err {
		return nil, err
	}

	return decryptIdentity(password, id)
}

// AddIdentity - encrypt a seed and store it under a new name
func (config *Configuration) AddIdentity(name string, description string, seed string, password string) error {

	if _, ok := config.Identities[name]; ok {
		return fault.ErrIdentityNameAlreadyExists
	}

	private, err := PrivateKeyFromSeed(seed)
	if nil != err {
		return err
	}

	salt, secretKey, err := hashPassword(password)
	if nil != err {
		return err
	}

	encrypted, err := encryptData(seed, secretKey)
	if nil != err {
		return err
	}

	config.Identities[name] = Identity{
		Description: description,
		PublicKey:   private.PublicKey().String(),
		Data:        encrypted,
		Salt:        salt.String(),
	}

	return nil
}

// AddReceiveOnlyIdentity - store a public key under a new name
func (config *Configuration) AddReceiveOnlyIdentity(name string, description string, publicKey string) error {

	if _, ok := config.Identities[name]; ok {
		return fault.ErrIdentityNameAlreadyExists
	}

	_, err := solana.PublicKeyFromBase58(publicKey)
	if nil != err {
		return fault.ErrInvalidPublicKey
	}

	config.Identities[name] = Identity{
		Description: description,
		PublicKey:   publicKey,
		Data:        "",
		Salt:        "",
	}

	return nil
}

// ChangePassword - re-encrypt an identity under a new password
func (config *Configuration) ChangePassword(name string, oldPassword string, newPassword string) error {
	private, err := config.Private(oldPassword, name)
	if nil != err {
		return err
	}

	id := config.Identities[name]

	salt, secretKey, err := hashPassword(newPassword)
	if nil != err {
		return err
	}

	encrypted, err := encryptData(private.Seed, secretKey)
	if nil != err {
		return err
	}

	id.Data = encrypted
	id.Salt = salt.String()
	config.Identities[name] = id

	return nil
}
