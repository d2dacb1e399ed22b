// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/kevad/command/keva-cli/rpccalls"
	"github.com/bitmark-inc/kevad/merkle"
	"github.com/bitmark-inc/kevad/rpc/keva"
)

const statSelector = "stat"

// connect, run f and close
func withClient(c *cli.Context, f func(m *metadata, client *rpccalls.Client) (interface{}, error)) error {
	m := c.App.Metadata["config"].(*metadata)

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := f(m, client)
	if nil != err {
		return err
	}

	return printJson(m.w, response)
}

func checkRequired(c *cli.Context, names ...string) error {
	for _, name := range names {
		if "" == c.String(name) {
			return fmt.Errorf("%s is required", name)
		}
	}
	return nil
}

// maxage is only sent when given so the node default applies
func maxAge(c *cli.Context) *int {
	if !c.IsSet("maxage") {
		return nil
	}
	n := c.Int("maxage")
	return &n
}

func stat(c *cli.Context) string {
	if c.Bool("stat") {
		return statSelector
	}
	return ""
}

func runInfo(c *cli.Context) error {
	return withClient(c, func(m *metadata, client *rpccalls.Client) (interface{}, error) {
		return client.GetKevadInfo()
	})
}

func runGet(c *cli.Context) error {
	if err := checkRequired(c, "namespace", "key"); nil != err {
		return err
	}
	return withClient(c, func(m *metadata, client *rpccalls.Client) (interface{}, error) {
		return client.Get(c.String("namespace"), c.String("key"))
	})
}

func runFilter(c *cli.Context) error {
	if err := checkRequired(c, "namespace"); nil != err {
		return err
	}
	arguments := &keva.FilterArguments{
		Namespace: c.String("namespace"),
		Regexp:    c.String("regexp"),
		MaxAge:    maxAge(c),
		From:      c.Int("from"),
		Count:     c.Int("nb"),
		Stat:      stat(c),
	}
	return withClient(c, func(m *metadata, client *rpccalls.Client) (interface{}, error) {
		return client.Filter(arguments)
	})
}

func runGroupGet(c *cli.Context) error {
	if err := checkRequired(c, "namespace", "key"); nil != err {
		return err
	}
	return withClient(c, func(m *metadata, client *rpccalls.Client) (interface{}, error) {
		return client.GroupGet(c.String("namespace"), c.String("key"), c.String("initiator"))
	})
}

func runGroupFilter(c *cli.Context) error {
	if err := checkRequired(c, "namespace"); nil != err {
		return err
	}
	arguments := &keva.GroupFilterArguments{
		Namespace: c.String("namespace"),
		Initiator: c.String("initiator"),
		Regexp:    c.String("regexp"),
		MaxAge:    maxAge(c),
		From:      c.Int("from"),
		Count:     c.Int("nb"),
		Stat:      stat(c),
	}
	return withClient(c, func(m *metadata, client *rpccalls.Client) (interface{}, error) {
		return client.GroupFilter(arguments)
	})
}

func runGroupShow(c *cli.Context) error {
	if err := checkRequired(c, "namespace"); nil != err {
		return err
	}
	arguments := &keva.GroupShowArguments{
		Namespace: c.String("namespace"),
		MaxAge:    maxAge(c),
		From:      c.Int("from"),
		Count:     c.Int("nb"),
		Stat:      stat(c),
	}
	return withClient(c, func(m *metadata, client *rpccalls.Client) (interface{}, error) {
		return client.GroupShow(arguments)
	})
}

func runPending(c *cli.Context) error {
	return withClient(c, func(m *metadata, client *rpccalls.Client) (interface{}, error) {
		return client.Pending(c.String("namespace"))
	})
}

func runSubmit(c *cli.Context) error {
	if err := checkRequired(c, "transaction"); nil != err {
		return err
	}
	return withClient(c, func(m *metadata, client *rpccalls.Client) (interface{}, error) {
		return client.SubmitTransaction(c.String("transaction"))
	})
}

func runStatus(c *cli.Context) error {
	if err := checkRequired(c, "txid"); nil != err {
		return err
	}
	var txId merkle.Digest
	if err := txId.UnmarshalText([]byte(c.String("txid"))); nil != err {
		return err
	}
	return withClient(c, func(m *metadata, client *rpccalls.Client) (interface{}, error) {
		return client.TransactionStatus(txId)
	})
}

func runConnectBlock(c *cli.Context) error {
	if err := checkRequired(c, "block"); nil != err {
		return err
	}
	return withClient(c, func(m *metadata, client *rpccalls.Client) (interface{}, error) {
		return client.SubmitBlock(c.String("block"))
	})
}

func runDisconnectBlock(c *cli.Context) error {
	return withClient(c, func(m *metadata, client *rpccalls.Client) (interface{}, error) {
		return client.DisconnectBlock()
	})
}

func runBlock(c *cli.Context) error {
	if !c.IsSet("height") {
		return fmt.Errorf("height is required")
	}
	return withClient(c, func(m *metadata, client *rpccalls.Client) (interface{}, error) {
		return client.GetBlock(c.Uint64("height"))
	})
}
