// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package instruction - signed transactions carrying one operation
//
// the signed message is the CBOR encoding of everything except the
// signatures; each listed signer contributes one ed25519 signature in
// the same position
package instruction

import (
	"encoding/hex"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/mountbreed/codec"
	"github.com/bitmark-inc/mountbreed/fault"
	"github.com/bitmark-inc/mountbreed/token"
)

// limits
const (
	MaxSigners = 8
)

// Packed - a transaction as sent over the wire
type Packed []byte

// TxID - identifier of a transaction
type TxID [32]byte

// Transaction - one signed operation
type Transaction struct {
	_          struct{}           `cbor:",toarray"`
	Tag        Tag                `json:"tag"`
	Nonce      uint64             `json:"nonce"`
	Payload    codec.RawMessage   `json:"payload"`
	Signers    []solana.PublicKey `json:"signers"`
	Signatures []solana.Signature `json:"signatures"`
}

// the part covered by signatures
type message struct {
	_       struct{}           `cbor:",toarray"`
	Tag     Tag                `json:"tag"`
	Nonce   uint64             `json:"nonce"`
	Payload codec.RawMessage   `json:"payload"`
	Signers []solana.PublicKey `json:"signers"`
}

// New - an unsigned transaction for an arguments record
//
// the nonce distinguishes otherwise identical operations
func New(arguments interface{}, nonce uint64, signers ...solana.PublicKey) (*Transaction, error) {
	tag := TagOf(arguments)
	if NullTag == tag {
		return nil, fault.ErrUnknownInstruction
	}
	if 0 == len(signers) || len(signers) > MaxSigners {
		return nil, fault.ErrSignatureCount
	}
	payload, err := codec.Marshal(arguments)
	if nil != err {
		return nil, err
	}
	return &Transaction{
		Tag:     tag,
		Nonce:   nonce,
		Payload: payload,
		Signers: signers,
	}, nil
}

// Message - the bytes that are signed
func (t *Transaction) Message() ([]byte, error) {
	return codec.Marshal(&message{
		Tag:     t.Tag,
		Nonce:   t.Nonce,
		Payload: t.Payload,
		Signers: t.Signers,
	})
}

// ID - the transaction identifier, independent of signatures
func (t *Transaction) ID() (TxID, error) {
	m, err := t.Message()
	if nil != err {
		return TxID{}, err
	}
	return sha3.Sum256(m), nil
}

// Sign - add the signatures of the given keys at their signer positions
func (t *Transaction) Sign(keys ...solana.PrivateKey) error {
	m, err := t.Message()
	if nil != err {
		return err
	}
	if len(t.Signatures) != len(t.Signers) {
		t.Signatures = make([]solana.Signature, len(t.Signers))
	}
	for _, key := range keys {
		public := key.PublicKey()
		found := false
		for i, signer := range t.Signers {
			if !signer.Equals(public) {
				continue
			}
			signature, err := key.Sign(m)
			if nil != err {
				return err
			}
			t.Signatures[i] = signature
			found = true
		}
		if !found {
			return fault.ErrInvalidPublicKey
		}
	}
	return nil
}

// Verify - check every signature and return the set of signers
func (t *Transaction) Verify() (token.Signers, error) {
	if 0 == len(t.Signers) || len(t.Signers) > MaxSigners || len(t.Signatures) != len(t.Signers) {
		return nil, fault.ErrSignatureCount
	}
	m, err := t.Message()
	if nil != err {
		return nil, err
	}
	for i, signer := range t.Signers {
		if !t.Signatures[i].Verify(signer, m) {
			return nil, fault.ErrInvalidSignature
		}
	}
	return token.NewSigners(t.Signers...), nil
}

// Arguments - decode the payload into the record for the tag
func (t *Transaction) Arguments() (interface{}, error) {
	arguments, ok := t.Tag.arguments()
	if !ok {
		return nil, fault.ErrUnknownInstruction
	}
	if err := codec.Unmarshal(t.Payload, arguments); nil != err {
		return nil, err
	}
	return arguments, nil
}

// Pack - encode for the wire
func (t *Transaction) Pack() (Packed, error) {
	return codec.Marshal(t)
}

// Unpack - decode from the wire
func (p Packed) Unpack() (*Transaction, error) {
	t := &Transaction{}
	if err := codec.Unmarshal(p, t); nil != err {
		return nil, err
	}
	return t, nil
}

// String - base58 text of an id
func (id TxID) String() string {
	return base58.Encode(id[:])
}

// MarshalText - for JSON
func (id TxID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - from JSON
func (id *TxID) UnmarshalText(s []byte) error {
	b, err := base58.Decode(string(s))
	if nil != err || len(b) != len(id) {
		return fault.ErrDecodeFailed
	}
	copy(id[:], b)
	return nil
}

// Hex - hex text of packed bytes, for logging
func (p Packed) Hex() string {
	return hex.EncodeToString(p)
}

// MarshalText - packed bytes as hex for JSON
func (p Packed) MarshalText() ([]byte, error) {
	return []byte(p.Hex()), nil
}

// UnmarshalText - packed bytes from hex
func (p *Packed) UnmarshalText(s []byte) error {
	b, err := hex.DecodeString(string(s))
	if nil != err {
		return fault.ErrDecodeFailed
	}
	*p = b
	return nil
}
