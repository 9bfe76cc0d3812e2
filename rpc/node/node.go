// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/mountbreed/address"
	"github.com/bitmark-inc/mountbreed/counter"
	"github.com/bitmark-inc/mountbreed/fault"
	"github.com/bitmark-inc/mountbreed/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Status - the parts of the executor reported by Info
type Status interface {
	Addresses() *address.Addresses
	Counts() (uint64, uint64)
}

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Status  Status
	counter *counter.Counter
}

// New - create the node service
func New(log *logger.L, start time.Time, version string, status Status, counter *counter.Counter) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Status:  status,
		counter: counter,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Program             string   `json:"program"`
	Vault               string   `json:"vault"`
	Authority           string   `json:"authority"`
	Escrow              string   `json:"escrow"`
	RPCs                uint64   `json:"rpcs"`
	TransactionCounters Counters `json:"transactionCounters"`
	Version             string   `json:"version"`
	Uptime              string   `json:"uptime"`
}

// Counters - transaction counters
type Counters struct {
	Accepted uint64 `json:"accepted"`
	Rejected uint64 `json:"rejected"`
}

// Info - return some information about this node
// only enough for clients to find the program accounts
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if nil == node.Status {
		return fault.ErrDatabaseIsNotSet
	}

	a := node.Status.Addresses()
	reply.Program = a.Program.String()
	reply.Vault = a.Vault.Address.String()
	reply.Authority = a.Authority.Address.String()
	reply.Escrow = a.Escrow.Address.String()
	reply.RPCs = node.counter.Uint64()
	reply.TransactionCounters.Accepted, reply.TransactionCounters.Rejected = node.Status.Counts()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}
