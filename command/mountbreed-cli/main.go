// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/mountbreed/command/mountbreed-cli/configuration"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	save    bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "mountbreed-cli"
	app.Usage = "manage identities and submit mount breed transactions"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "identity, i",
			Value: "",
			Usage: " identity `NAME` [default identity]",
		},
		cli.StringFlag{
			Name:  "password, p",
			Value: "",
			Usage: " identity `PASSWORD`",
		},
		cli.StringFlag{
			Name:  "use-agent, u",
			Value: "",
			Usage: " executable program that returns the password `EXE`",
		},
		cli.BoolFlag{
			Name:  "zero-agent-cache, z",
			Usage: " force re-entry of agent password",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a key seed, will not store in config file",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "setup",
			Usage:     "Initialise mountbreed-cli configuration",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "connect, c",
					Value: "",
					Usage: "*mountbreedd host/IP and port, `HOST:PORT`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: "+existing seed or private `KEY`",
				},
				cli.BoolFlag{
					Name:  "new, n",
					Usage: "+generate a new seed",
				},
				cli.StringFlag{
					Name:  "program, P",
					Value: "",
					Usage: " program `ID` [default program]",
				},
				cli.StringFlag{
					Name:  "metadata-program, M",
					Value: "",
					Usage: " metadata program `ID` [default metadata program]",
				},
			},
			Action: runSetup,
		},
		{
			Name:      "add",
			Usage:     "add a new identity to config file",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*identity description `STRING`",
				},
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: "+existing seed or private `KEY`",
				},
				cli.BoolFlag{
					Name:  "new, n",
					Usage: "+generate a new seed",
				},
				cli.StringFlag{
					Name:  "public-key, k",
					Value: "",
					Usage: "+receive only public `KEY`",
				},
				cli.BoolFlag{
					Name:  "default, D",
					Usage: " make the new identity the default",
				},
			},
			Action: runAdd,
		},
		{
			Name:   "list",
			Usage:  "list identities and connections",
			Action: runList,
		},
		{
			Name:   "keypair",
			Usage:  "display the identity's raw key pair",
			Action: runKeyPair,
		},
		{
			Name:   "password",
			Usage:  "change the identity's password",
			Action: runChangePassword,
		},
		{
			Name:   "addresses",
			Usage:  "display the program's derived addresses",
			Action: runAddresses,
		},
		{
			Name:      "create-mint",
			Usage:     "create a mint with the identity as authority",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.UintFlag{
					Name:  "decimals, d",
					Value: 0,
					Usage: " number of `DECIMALS`",
				},
			},
			Action: runCreateMint,
		},
		{
			Name:      "create-account",
			Usage:     "create the associated token account of an owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "mint, m",
					Value: "",
					Usage: "*token `MINT`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name or public key `ACCOUNT` default is global identity",
				},
			},
			Action: runCreateAccount,
		},
		{
			Name:      "mint-to",
			Usage:     "mint tokens to the associated account of an owner",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "mint, m",
					Value: "",
					Usage: "*token `MINT`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name or public key `ACCOUNT` default is global identity",
				},
				cli.Uint64Flag{
					Name:  "amount, a",
					Value: 0,
					Usage: "*base units to mint `AMOUNT`",
				},
			},
			Action: runMintTo,
		},
		{
			Name:      "create-metadata",
			Usage:     "describe a mint, the identity must be its mint authority",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "mint, m",
					Value: "",
					Usage: "*token `MINT`",
				},
				cli.StringFlag{
					Name:  "name, N",
					Value: "",
					Usage: "*asset `NAME`",
				},
				cli.StringFlag{
					Name:  "symbol, s",
					Value: "",
					Usage: " asset `SYMBOL`",
				},
				cli.StringFlag{
					Name:  "uri, U",
					Value: "",
					Usage: " asset `URI`",
				},
				cli.StringSliceFlag{
					Name:  "creator, c",
					Usage: " creator `ACCOUNT`, identities are asked to sign (repeatable)",
				},
				cli.StringFlag{
					Name:  "shares, S",
					Value: "",
					Usage: " comma separated creator `SHARES` [equal split]",
				},
			},
			Action: runCreateMetadata,
		},
		{
			Name:      "genesis",
			Usage:     "deposit custom tokens into the vault",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "custom-mint, m",
					Value: "",
					Usage: "*custody token `MINT`",
				},
				cli.StringFlag{
					Name:  "payment-mint, f",
					Value: "",
					Usage: "*fee token `MINT`",
				},
				cli.StringFlag{
					Name:  "creator-a, a",
					Value: "",
					Usage: "*first trusted creator `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "creator-b, b",
					Value: "",
					Usage: "*second trusted creator `ACCOUNT`",
				},
			},
			Action: runGenesis,
		},
		{
			Name:      "initialize",
			Usage:     "register a held mount",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "mint, m",
					Value: "",
					Usage: "*mount `MINT`",
				},
			},
			Action: runInitialize,
		},
		{
			Name:      "redeem",
			Usage:     "present two mounts and receive one custody token",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "mint-a, a",
					Value: "",
					Usage: "*first mount `MINT`",
				},
				cli.StringFlag{
					Name:  "mint-b, b",
					Value: "",
					Usage: "*second mount `MINT`",
				},
			},
			Action: runRedeem,
		},
		{
			Name:   "cancel",
			Usage:  "return the vault balance to the depositor",
			Action: runCancel,
		},
		{
			Name:   "escrow",
			Usage:  "display the escrow record and vault balance",
			Action: runEscrow,
		},
		{
			Name:      "asset",
			Usage:     "display the asset data of a mount",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "mint, m",
					Value: "",
					Usage: "*mount `MINT`",
				},
			},
			Action: runAsset,
		},
		{
			Name:      "account",
			Usage:     "display token accounts",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "address, A",
					Usage: "+token account `ADDRESS` (repeatable)",
				},
				cli.StringFlag{
					Name:  "mint, m",
					Value: "",
					Usage: "+associated account for `MINT`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " identity name or public key `ACCOUNT` default is global identity",
				},
			},
			Action: runAccount,
		},
		{
			Name:      "mint",
			Usage:     "display a token mint",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "mint, m",
					Value: "",
					Usage: "*token `MINT`",
				},
			},
			Action: runMint,
		},
		{
			Name:   "info",
			Usage:  "display mountbreedd status",
			Action: runInfo,
		},
		{
			Name:      "status",
			Usage:     "display the status of a transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "txid, t",
					Value: "",
					Usage: "*transaction id to check status `TXID`",
				},
			},
			Action: runTransactionStatus,
		},
		{
			Name:  "version",
			Usage: "display mountbreed-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		switch command {
		case "", "version", "help", "h", "generate":
			return nil
		}

		p := os.Getenv("XDG_CONFIG_HOME")
		if "" == p {
			return fmt.Errorf("XDG_CONFIG_HOME environment is not set")
		}
		dir, err := checkFileExists(p)
		if nil != err {
			return err
		}
		if !dir {
			return fmt.Errorf("not a directory: %q", p)
		}
		file := path.Join(p, app.Name, app.Name+".json")

		if verbose {
			fmt.Fprintf(e, "file: %q\n", file)
		}

		if "setup" == command {
			// do not run setup if there is an existing configuration
			if _, err := checkFileExists(file); nil == err {
				return fmt.Errorf("not overwriting existing configuration: %q", file)
			}

			c.App.Metadata["config"] = &metadata{
				file:    file,
				save:    false,
				verbose: verbose,
				e:       e,
				w:       w,
			}

		} else {

			if verbose {
				fmt.Fprintf(e, "reading config file: %s\n", file)
			}

			configuration, err := configuration.Load(file)
			if nil != err {
				return err
			}

			c.App.Metadata["config"] = &metadata{
				file:    file,
				config:  configuration,
				save:    false,
				verbose: verbose,
				e:       e,
				w:       w,
			}
		}

		return nil
	}

	// update the configuration if required
	app.After = func(c *cli.Context) error {
		e := c.App.ErrWriter
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		if m.save {
			if c.GlobalBool("verbose") {
				fmt.Fprintf(e, "updating config file: %s\n", m.file)
			}
			err := configuration.Save(m.file, m.config)
			if nil != err {
				return err
			}
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
