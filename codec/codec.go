// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package codec - the persisted record contract
//
// every stored record and every instruction payload is encoded as
// deterministic CBOR so that the same value always packs to the same
// bytes and so hashes to the same digest
package codec

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/bitmark-inc/mountbreed/fault"
)

// RawMessage - an encoded value whose decoding is deferred
type RawMessage = cbor.RawMessage

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error

	// Core Deterministic Encoding, RFC 8949 section 4.2.1
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if nil != err {
		panic(err)
	}

	decMode, err = cbor.DecOptions{
		DupMapKey:        cbor.DupMapKeyEnforcedAPF,
		MaxArrayElements: 4096,
	}.DecMode()
	if nil != err {
		panic(err)
	}
}

// Marshal - pack a value
func Marshal(v interface{}) ([]byte, error) {
	data, err := encMode.Marshal(v)
	if nil != err {
		return nil, fault.ErrEncodeFailed
	}
	return data, nil
}

// Unmarshal - unpack a value, trailing bytes are rejected
func Unmarshal(data []byte, v interface{}) error {
	if err := decMode.Unmarshal(data, v); nil != err {
		return fault.ErrDecodeFailed
	}
	return nil
}
