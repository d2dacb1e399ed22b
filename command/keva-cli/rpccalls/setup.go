// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a kevad
func NewClient(connect string, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if err != nil {
		return nil, err
	}

	return newClient(conn, verbose, handle), nil
}

func newClient(conn net.Conn, verbose bool, handle io.Writer) *Client {
	return &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		verbose: verbose,
		handle:  handle,
	}
}

// Close - shutdown the kevad connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}

// make a call, showing the arguments and reply when verbose
func (c *Client) call(method string, arguments interface{}, reply interface{}) error {
	c.trace(method, "request", arguments)

	if err := c.client.Call(method, arguments, reply); nil != err {
		return err
	}

	c.trace(method, "reply", reply)
	return nil
}

func (c *Client) trace(method string, direction string, item interface{}) {
	if !c.verbose {
		return
	}
	b, err := json.MarshalIndent(item, "", "  ")
	if nil != err {
		fmt.Fprintf(c.handle, "%s %s: %s\n", method, direction, err)
		return
	}
	fmt.Fprintf(c.handle, "%s %s:\n%s\n", method, direction, b)
}
