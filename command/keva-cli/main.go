// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	connect string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const defaultConnect = "127.0.0.1:9781"

func main() {
	app := newApp()
	if err := app.Run(os.Args); nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "keva-cli"
	app.Usage = "query and feed a kevad node"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	queryFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "regexp, r",
			Value: "",
			Usage: " only keys matching `REGEXP`",
		},
		cli.IntFlag{
			Name:  "maxage, a",
			Usage: " only records updated within `BLOCKS`, 0 = no limit",
		},
		cli.IntFlag{
			Name:  "from, f",
			Usage: " skip the first `N` results",
		},
		cli.IntFlag{
			Name:  "nb, c",
			Usage: " return at most `N` results, 0 = all",
		},
		cli.BoolFlag{
			Name:  "stat, s",
			Usage: " only count the results",
		},
	}

	namespaceFlag := cli.StringFlag{
		Name:  "namespace, n",
		Value: "",
		Usage: "*namespace `ID`",
	}
	keyFlag := cli.StringFlag{
		Name:  "key, k",
		Value: "",
		Usage: "*`KEY` to read",
	}
	initiatorFlag := cli.StringFlag{
		Name:  "initiator, i",
		Value: "all",
		Usage: " which associations to follow `all|self|other`",
	}

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, C",
			Value:  defaultConnect,
			Usage:  " kevad RPC `HOST:PORT`",
			EnvVar: "KEVA_CONNECT",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "info",
			Usage:  "display kevad status",
			Action: runInfo,
		},
		{
			Name:      "get",
			Usage:     "value of a key, pending writes win",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{namespaceFlag, keyFlag},
			Action:    runGet,
		},
		{
			Name:      "filter",
			Usage:     "list the keys of a namespace",
			ArgsUsage: "\n   (* = required)",
			Flags:     append([]cli.Flag{namespaceFlag}, queryFlags...),
			Action:    runFilter,
		},
		{
			Name:      "group-get",
			Usage:     "value of a key across a namespace group",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{namespaceFlag, keyFlag, initiatorFlag},
			Action:    runGroupGet,
		},
		{
			Name:      "group-filter",
			Usage:     "list the keys of a namespace group",
			ArgsUsage: "\n   (* = required)",
			Flags:     append([]cli.Flag{namespaceFlag, initiatorFlag}, queryFlags...),
			Action:    runGroupFilter,
		},
		{
			Name:      "group-show",
			Usage:     "list the namespaces associated with a namespace",
			ArgsUsage: "\n   (* = required)",
			Flags:     append([]cli.Flag{namespaceFlag}, queryFlags[1:]...),
			Action:    runGroupShow,
		},
		{
			Name:      "pending",
			Usage:     "list unconfirmed keva operations",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "namespace, n",
					Value: "",
					Usage: " only this namespace `ID`",
				},
			},
			Action: runPending,
		},
		{
			Name:      "submit",
			Usage:     "add a transaction to the pool",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "transaction, t",
					Value: "",
					Usage: "*hex packed `TX`",
				},
			},
			Action: runSubmit,
		},
		{
			Name:      "status",
			Usage:     "whether a transaction is pooled",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "txid, t",
					Value: "",
					Usage: "*transaction `ID`",
				},
			},
			Action: runStatus,
		},
		{
			Name:      "connect-block",
			Usage:     "connect a block on top of the tip",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "block, b",
					Value: "",
					Usage: "*hex packed `BLOCK`",
				},
			},
			Action: runConnectBlock,
		},
		{
			Name:   "disconnect-block",
			Usage:  "remove the tip block",
			Action: runDisconnectBlock,
		},
		{
			Name:      "block",
			Usage:     "fetch a stored block",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "height, H",
					Usage: "*block `HEIGHT`",
				},
			},
			Action: runBlock,
		},
		{
			Name:  "version",
			Usage: "display keva-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			connect: c.GlobalString("connect"),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}
