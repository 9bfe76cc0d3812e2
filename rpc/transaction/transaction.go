// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/mountbreed/executor"
	"github.com/bitmark-inc/mountbreed/fault"
	"github.com/bitmark-inc/mountbreed/instruction"
	"github.com/bitmark-inc/mountbreed/rpc/ratelimit"
)

const (
	rateLimitTransaction = 200
	rateBurstTransaction = 100
)

// transaction states reported by Status
const (
	StatusAccepted = "Accepted"
	StatusUnknown  = "Unknown"
)

// Submitter - accepts packed transactions and reports on them
type Submitter interface {
	Submit(instruction.Packed) (instruction.TxID, error)
	Transaction(instruction.TxID) (*executor.Processed, error)
}

// Transaction - an RPC entry for transaction related functions
type Transaction struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Start     time.Time
	Submitter Submitter
}

// New - create the transaction service
func New(log *logger.L, start time.Time, submitter Submitter) *Transaction {
	return &Transaction{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitTransaction, rateBurstTransaction),
		Start:     start,
		Submitter: submitter,
	}
}

// ---

// SubmitArguments - a signed transaction in hex
type SubmitArguments struct {
	Packed instruction.Packed `json:"packed"`
}

// SubmitReply - outcome of a submission
//
// a rejected transaction is not an RPC error, the reason is
// carried as the program code, class and message
type SubmitReply struct {
	TxId     instruction.TxID `json:"txId"`
	Accepted bool             `json:"accepted"`
	Code     uint32           `json:"code,omitempty"`
	Class    string           `json:"class,omitempty"`
	Message  string           `json:"message,omitempty"`
}

// Submit - apply a signed transaction
func (t *Transaction) Submit(arguments *SubmitArguments, reply *SubmitReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	if 0 == len(arguments.Packed) {
		return fault.ErrMissingParameters
	}

	id, err := t.Submitter.Submit(arguments.Packed)
	reply.TxId = id
	if nil != err {
		t.Log.Debugf("submit: %s  error: %s", id, err)
		reply.Accepted = false
		reply.Code = fault.Code(err)
		reply.Class = fault.Class(err)
		reply.Message = err.Error()
		return nil
	}

	reply.Accepted = true
	return nil
}

// ---

// StatusArguments - arguments for status RPC request
type StatusArguments struct {
	TxId instruction.TxID `json:"txId"`
}

// StatusReply - results from status RPC
type StatusReply struct {
	Status    string `json:"status"`
	Tag       string `json:"tag,omitempty"`
	Timestamp int64  `json:"timestamp,omitempty"`
}

// Status - query transaction status
func (t *Transaction) Status(arguments *StatusArguments, reply *StatusReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	processed, err := t.Submitter.Transaction(arguments.TxId)
	if fault.ErrTransactionNotFound == err {
		reply.Status = StatusUnknown
		return nil
	}
	if nil != err {
		return err
	}

	reply.Status = StatusAccepted
	reply.Tag = processed.Tag.String()
	reply.Timestamp = processed.Timestamp
	return nil
}
