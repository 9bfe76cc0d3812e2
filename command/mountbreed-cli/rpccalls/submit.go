// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/gagliardetto/solana-go"

	"github.com/bitmark-inc/mountbreed/instruction"
	"github.com/bitmark-inc/mountbreed/rpc/transaction"
)

// SubmitReply - outcome of a submission with the operation's addresses
type SubmitReply struct {
	transaction.SubmitReply
	Addresses map[string]solana.PublicKey `json:"addresses,omitempty"`
}

// build, sign and pack a transaction, the first key pays the nonce
func (client *Client) pack(arguments interface{}, keys ...solana.PrivateKey) (instruction.Packed, error) {
	signers := make([]solana.PublicKey, len(keys))
	for i, k := range keys {
		signers[i] = k.PublicKey()
	}

	tx, err := instruction.New(arguments, client.nonce(), signers...)
	if nil != err {
		return nil, err
	}

	client.printJson(tx.Tag.String()+" Arguments", arguments)

	if err := tx.Sign(keys...); nil != err {
		return nil, err
	}
	return tx.Pack()
}

func (client *Client) submit(arguments interface{}, keys ...solana.PrivateKey) (*transaction.SubmitReply, error) {
	packed, err := client.pack(arguments, keys...)
	if nil != err {
		return nil, err
	}

	args := transaction.SubmitArguments{
		Packed: packed,
	}

	client.printJson("Submit Request", args)

	var reply transaction.SubmitReply
	if err := client.client.Call("Transaction.Submit", args, &reply); err != nil {
		return nil, err
	}

	client.printJson("Submit Reply", reply)

	return &reply, nil
}
