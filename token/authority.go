// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"github.com/gagliardetto/solana-go"
)

// Authority - answers whether a key has authorised the current instruction
type Authority interface {
	Signed(solana.PublicKey) bool
}

// Signers - the set of keys whose signatures were verified
type Signers map[solana.PublicKey]struct{}

// NewSigners - make a signer set
func NewSigners(keys ...solana.PublicKey) Signers {
	s := make(Signers, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Signed - check membership
func (s Signers) Signed(key solana.PublicKey) bool {
	_, ok := s[key]
	return ok
}
