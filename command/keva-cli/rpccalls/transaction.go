// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	blockchain "github.com/bitmark-inc/kevad/block"
	"github.com/bitmark-inc/kevad/merkle"
	"github.com/bitmark-inc/kevad/rpc/block"
	"github.com/bitmark-inc/kevad/rpc/transaction"
)

// SubmitTransaction - send a hex packed transaction to the pool
func (client *Client) SubmitTransaction(hexTransaction string) (*transaction.SubmitReply, error) {
	arguments := transaction.SubmitArguments{
		Transaction: hexTransaction,
	}
	var reply transaction.SubmitReply
	if err := client.call("Transaction.Submit", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// TransactionStatus - whether a transaction is pooled
func (client *Client) TransactionStatus(txId merkle.Digest) (*transaction.StatusReply, error) {
	arguments := transaction.Arguments{
		TxId: txId,
	}
	var reply transaction.StatusReply
	if err := client.call("Transaction.Status", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// SubmitBlock - connect a hex packed block
func (client *Client) SubmitBlock(hexBlock string) (*blockchain.Connected, error) {
	arguments := block.SubmitArguments{
		Block: hexBlock,
	}
	var reply blockchain.Connected
	if err := client.call("Block.Submit", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// DisconnectBlock - remove the tip block
func (client *Client) DisconnectBlock() (*block.DisconnectReply, error) {
	var reply block.DisconnectReply
	if err := client.call("Block.Disconnect", &block.DisconnectArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetBlock - a hex packed block
func (client *Client) GetBlock(height uint64) (*block.GetReply, error) {
	arguments := block.GetArguments{
		Height: height,
	}
	var reply block.GetReply
	if err := client.call("Block.Get", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
