// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/nacl/secretbox"

	"github.com/bitmark-inc/go-argon2"
	"github.com/bitmark-inc/mountbreed/fault"
)

const (
	seedPrefix = "SEED:"
	seedSize   = ed25519.SeedSize
)

// Private - the decrypted part of an identity
type Private struct {
	PrivateKey  solana.PrivateKey `json:"privateKey"`
	Seed        string            `json:"seed"`
	Description string            `json:"description"`
}

// NewSeed - a random base58 encoded key seed
func NewSeed() (string, error) {
	seed := make([]byte, seedSize)
	if _, err := rand.Read(seed); nil != err {
		return "", err
	}
	return base58.Encode(seed), nil
}

// SeedFromKey - normalise the forms a key can be given in
//
// accepted forms are "SEED:<base58 seed>", a bare base58 seed or a
// base58 solana private key
func SeedFromKey(key string) (string, error) {
	key = strings.TrimPrefix(strings.TrimSpace(key), seedPrefix)

	b, err := base58.Decode(key)
	if nil != err {
		return "", fault.ErrNotPrivateKey
	}

	switch len(b) {
	case seedSize:
		return key, nil
	case ed25519.PrivateKeySize:
		expanded := ed25519.NewKeyFromSeed(b[:seedSize])
		if !bytes.Equal(expanded, b) {
			return "", fault.ErrNotPrivateKey
		}
		return base58.Encode(b[:seedSize]), nil
	default:
		return "", fault.ErrNotPrivateKey
	}
}

// PrivateKeyFromSeed - expand a base58 seed to a signing key
func PrivateKeyFromSeed(seed string) (solana.PrivateKey, error) {
	b, err := base58.Decode(seed)
	if nil != err || seedSize != len(b) {
		return nil, fault.ErrNotPrivateKey
	}
	return solana.PrivateKey(ed25519.NewKeyFromSeed(b)), nil
}

func decryptIdentity(password string, identity *Identity) (*Private, error) {

	salt := new(Salt)
	err := salt.UnmarshalText([]byte(identity.Salt))
	if err != nil || identity.Data == "" {
		return nil, fault.ErrNotPrivateKey
	}

	key, err := generateKey(password, salt)
	if err != nil {
		return nil, err
	}

	seed, err := decryptData(identity.Data, key)
	if err != nil {
		return nil, fault.ErrWrongPassword
	}

	privateKey, err := PrivateKeyFromSeed(seed)
	if err != nil {
		return nil, err
	}

	if privateKey.PublicKey().String() != identity.PublicKey {
		return nil, fault.ErrWrongPassword
	}

	r := Private{
		PrivateKey:  privateKey,
		Seed:        seed,
		Description: identity.Description,
	}
	return &r, nil
}

func hashPassword(password string) (*Salt, *[32]byte, error) {
	salt, err := MakeSalt()
	if err != nil {
		return nil, nil, err
	}

	cipher, err := generateKey(password, salt)
	if err != nil {
		return nil, nil, err
	}

	return salt, cipher, nil
}

func generateKey(password string, salt *Salt) (*[32]byte, error) {

	saltBytes := salt.Bytes()

	ctx := &argon2.Context{
		Iterations:  5,
		Memory:      1 << 16,
		Parallelism: 4,
		HashLen:     32,
		Mode:        argon2.ModeArgon2i,
		Version:     argon2.Version13,
	}

	hash, err := argon2.Hash(ctx, []byte(password), saltBytes)
	if err != nil {
		return nil, err
	}

	var secretKey [32]byte
	copy(secretKey[:], hash)

	return &secretKey, nil
}

func encryptData(data string, secretKey *[32]byte) (string, error) {

	// ensure data not too small or too large
	l := len(data)
	if l < 32 || l >= 16384 {
		return "", fault.ErrCryptoFailed
	}

	// random nonce per message, stored in front of the ciphertext
	var nonce [24]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", fault.ErrCryptoFailed
	}

	// encrypt
	ciphertext := secretbox.Seal(nonce[:], []byte(data), &nonce, secretKey)

	// return as hex string
	return hex.EncodeToString(ciphertext), nil
}

func decryptData(ciphertext string, secretKey *[32]byte) (string, error) {

	if ciphertext == "" {
		return "", fault.ErrCryptoFailed
	}

	encrypted, err := hex.DecodeString(ciphertext)
	if err != nil {
		return "", err
	}
	if len(encrypted) <= 24 {
		return "", fault.ErrCryptoFailed
	}

	var nonce [24]byte
	copy(nonce[:], encrypted[:24])

	decrypted, ok := secretbox.Open(nil, encrypted[24:], &nonce, secretKey)
	if !ok {
		return "", fault.ErrCryptoFailed
	}

	return string(decrypted), nil
}
