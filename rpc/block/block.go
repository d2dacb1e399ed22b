// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package block

import (
	"encoding/hex"

	"golang.org/x/time/rate"

	blockchain "github.com/bitmark-inc/kevad/block"
	"github.com/bitmark-inc/kevad/blockrecord"
	"github.com/bitmark-inc/kevad/fault"
	"github.com/bitmark-inc/kevad/merkle"
	"github.com/bitmark-inc/kevad/rpc/ratelimit"
	"github.com/bitmark-inc/kevad/transactionrecord"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitBlock = 20
	rateBurstBlock = 10
)

//go:generate mockgen -source=block.go -destination=../mocks/block.go -package=mocks

// Blockchain - the block operations offered over RPC
type Blockchain interface {
	ConnectBlock(packed blockrecord.PackedBlock) (*blockchain.Connected, error)
	DisconnectTip() ([]*transactionrecord.Tx, error)
	Get(height uint64) (blockrecord.PackedBlock, error)
}

// Block - type for RPC calls
type Block struct {
	Log     *logger.L
	Limiter *rate.Limiter
	chain   Blockchain
}

// New - create the block RPC service
func New(log *logger.L, chain Blockchain) *Block {
	return &Block{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitBlock, rateBurstBlock),
		chain:   chain,
	}
}

// ---

// SubmitArguments - a hex encoded packed block
type SubmitArguments struct {
	Block string `json:"block"`
}

// Submit - connect a block on top of the tip
//
// the reply lists the pooled transactions the block invalidated
func (b *Block) Submit(arguments *SubmitArguments, reply *blockchain.Connected) error {

	if err := ratelimit.Limit(b.Limiter); nil != err {
		return err
	}

	packed, err := hex.DecodeString(arguments.Block)
	if nil != err {
		return fault.InvalidHexString
	}

	connected, err := b.chain.ConnectBlock(packed)
	if nil != err {
		b.Log.Warnf("Block.Submit: rejected: %s", err)
		return err
	}

	b.Log.Infof("Block.Submit: height: %d  digest: %s  conflicts: %d", connected.Height, connected.Digest, len(connected.Conflicts))

	*reply = *connected
	return nil
}

// ---

// DisconnectArguments - empty arguments for disconnect request
type DisconnectArguments struct{}

// DisconnectReply - the transactions of the removed block
//
// they are offered back to the pool
type DisconnectReply struct {
	TxIds []merkle.Digest `json:"txIds"`
}

// Disconnect - remove the tip block
func (b *Block) Disconnect(_ *DisconnectArguments, reply *DisconnectReply) error {

	if err := ratelimit.Limit(b.Limiter); nil != err {
		return err
	}

	txs, err := b.chain.DisconnectTip()
	if nil != err {
		return err
	}

	reply.TxIds = make([]merkle.Digest, 0, len(txs))
	for _, tx := range txs {
		txId, err := tx.TxId()
		if nil != err {
			return err
		}
		reply.TxIds = append(reply.TxIds, txId)
	}

	b.Log.Infof("Block.Disconnect: transactions: %d", len(txs))

	return nil
}

// ---

// GetArguments - block height
type GetArguments struct {
	Height uint64 `json:"height,string"`
}

// GetReply - a hex encoded packed block
type GetReply struct {
	Block string `json:"block"`
}

// Get - fetch a stored block
func (b *Block) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(b.Limiter); nil != err {
		return err
	}

	packed, err := b.chain.Get(arguments.Height)
	if nil != err {
		return err
	}

	reply.Block = hex.EncodeToString(packed)
	return nil
}
