// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/mountbreed/counter"
	"github.com/bitmark-inc/mountbreed/rpc/node"
	"github.com/bitmark-inc/mountbreed/rpc/query"
	"github.com/bitmark-inc/mountbreed/rpc/transaction"
)

// Backend - everything the RPC services need from the executor
type Backend interface {
	node.Status
	query.Reader
	transaction.Submitter
}

// Create - an RPC server with all services registered
func Create(log *logger.L, version string, backend Backend, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(node.New(log, start, version, backend, rpcCount))
	_ = server.Register(query.New(log, backend))
	_ = server.Register(transaction.New(log, start, backend))

	return server
}
