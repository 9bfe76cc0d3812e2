// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"crypto/tls"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"github.com/gagliardetto/solana-go"

	"github.com/bitmark-inc/mountbreed/address"
)

// Client - to hold RPC connections streams
type Client struct {
	conn      net.Conn
	client    *rpc.Client
	addresses *address.Addresses
	metadata  solana.PublicKey
	verbose   bool
	handle    io.Writer // if verbose is set output items here
	nonce     func() uint64
}

// NewClient - create a RPC connection to a mountbreedd
func NewClient(programID solana.PublicKey, metadataProgramID solana.PublicKey, connect string, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if err != nil {
		return nil, err
	}

	return newClient(conn, programID, metadataProgramID, verbose, handle)
}

func newClient(conn net.Conn, programID solana.PublicKey, metadataProgramID solana.PublicKey, verbose bool, handle io.Writer) (*Client, error) {
	addresses, err := address.New(programID)
	if nil != err {
		conn.Close()
		return nil, err
	}

	r := &Client{
		conn:      conn,
		client:    jsonrpc.NewClient(conn),
		addresses: addresses,
		metadata:  metadataProgramID,
		verbose:   verbose,
		handle:    handle,
		nonce: func() uint64 {
			return uint64(time.Now().UnixNano())
		},
	}
	return r, nil
}

// Close - shutdown the mountbreedd connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}

// Addresses - the derived addresses of the connected program
func (c *Client) Addresses() *address.Addresses {
	return c.addresses
}
