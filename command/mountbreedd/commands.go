// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gagliardetto/solana-go"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/mountbreed/address"
	"github.com/bitmark-inc/mountbreed/codec"
	"github.com/bitmark-inc/mountbreed/ledger"
	"github.com/bitmark-inc/mountbreed/rpc/certificate"
	"github.com/bitmark-inc/mountbreed/storage"
)

const (
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"
	defaultDumpCount          = 100
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := makeSelfSignedCertificate("rpc", certificateFilename, privateKeyFilename, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "start", "run":
		return false // continue processing

	case "config-test", "cfg", "addresses", "addr", "fingerprint", "fp", "dump":
		return false // defer processing until configuration is read

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR]         (rpc)    - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...]         - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  addresses                  (addr)   - display the derived program addresses\n")
		fmt.Printf("\n")

		fmt.Printf("  fingerprint                (fp)     - display the RPC certificate fingerprint\n")
		fmt.Printf("\n")

		fmt.Printf("  dump [COUNT]                        - list the first COUNT ledger accounts [%d]\n", defaultDumpCount)
		fmt.Printf("                                        the daemon must not be running\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		printJSON(options)

	case "addresses", "addr":
		s, err := options.settings()
		if nil != err {
			exitwithstatus.Message("error: %s", err)
		}
		a, err := address.New(s.Program.ProgramID)
		if nil != err {
			exitwithstatus.Message("error: %s", err)
		}
		printJSON(a)

	case "fingerprint", "fp":
		rpc := options.ClientRPC
		keypair, err := tls.X509KeyPair([]byte(rpc.Certificate), []byte(rpc.PrivateKey))
		if nil != err {
			exitwithstatus.Message("error: cannot decode certificate  error: %s", err)
		}
		fmt.Printf("rpc fingerprint: %x\n", certificate.Fingerprint(keypair.Certificate[0]))

	case "dump":
		count := defaultDumpCount
		if len(arguments) > 1 {
			n, err := strconv.Atoi(arguments[1])
			if nil != err || n <= 0 {
				exitwithstatus.Message("error: invalid count: %q", arguments[1])
			}
			count = n
		}
		d, err := dumpLedger(options.Database.Name, count)
		if nil != err {
			exitwithstatus.Message("error: %s", err)
		}
		printJSON(d)

	default: // unknown commands fall through to start
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

func printJSON(item interface{}) {
	b, err := json.Marshal(item)
	if err != nil {
		exitwithstatus.Message("error: %s", err)
	}
	var out bytes.Buffer
	json.Indent(&out, b, "", "  ")
	out.WriteTo(os.Stdout)
	os.Stdout.WriteString("\n")
}

// get the working directory; if not set in the arguments
// it's set to the current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}

type dumpEntry struct {
	Address solana.PublicKey `json:"address"`
	Owner   solana.PublicKey `json:"owner"`
	Size    int              `json:"size"`
}

type dumpReply struct {
	Accounts     int         `json:"accounts"`
	Transactions int         `json:"transactions"`
	Entries      []dumpEntry `json:"entries"`
}

// list ledger accounts from a database that is not in use
func dumpLedger(database string, count int) (*dumpReply, error) {
	store, err := storage.Open(database, storage.ReadOnly)
	if nil != err {
		return nil, err
	}
	defer store.Close()

	reply := &dumpReply{
		Accounts:     store.Pools.Accounts.Count(),
		Transactions: store.Pools.Transactions.Count(),
		Entries:      []dumpEntry{},
	}

	for _, e := range store.Pools.Accounts.Elements(count) {
		var account ledger.Account
		if err := codec.Unmarshal(e.Value, &account); nil != err {
			return nil, err
		}
		reply.Entries = append(reply.Entries, dumpEntry{
			Address: solana.PublicKeyFromBytes(e.Key),
			Owner:   account.Owner,
			Size:    len(account.Data),
		})
	}
	return reply, nil
}
