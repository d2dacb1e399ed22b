// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package block

import (
	"github.com/bitmark-inc/kevad/blockrecord"
	"github.com/bitmark-inc/kevad/fault"
	"github.com/bitmark-inc/kevad/keva"
	"github.com/bitmark-inc/kevad/merkle"
	"github.com/bitmark-inc/kevad/reservoir"
	"github.com/bitmark-inc/kevad/transactionrecord"
)

// Connected - the outcome of connecting a block
type Connected struct {
	Height    uint64          `json:"height,string"`
	Digest    merkle.Digest   `json:"digest"`
	Conflicts []merkle.Digest `json:"conflicts"`
}

// ConnectBlock - validate a block and apply it on top of the tip
//
// the block is applied atomically: on any error nothing is written;
// afterwards the pool drops the confirmed transactions and any
// pending registration of a namespace the block created
func (c *Chain) ConnectBlock(packed blockrecord.PackedBlock) (*Connected, error) {
	block, err := packed.Unpack()
	if nil != err {
		return nil, err
	}

	c.Lock()
	err = c.connect(block, packed)
	pool := c.pool
	c.Unlock()

	if nil != err {
		c.metrics.ObserveRejected(err.Error())
		return nil, err
	}

	result := &Connected{
		Height:    block.Header.Number,
		Digest:    block.Digest,
		Conflicts: []merkle.Digest{},
	}

	// only the pool lock is needed from here
	if nil != pool {
		tracker := reservoir.NewConflictTracker(pool)
		defer tracker.Close()

		pool.RemoveForBlock(block.Transactions)

		_, conflicts := tracker.Conflicts()
		result.Conflicts = append(result.Conflicts, conflicts...)
		for _, txId := range conflicts {
			c.log.Infof("name conflict: %v  removed by block: %d", txId, result.Height)
		}
	}

	return result, nil
}

// must hold the chain lock for writing
func (c *Chain) connect(block *blockrecord.Block, packed blockrecord.PackedBlock) error {
	log := c.log
	header := block.Header

	expected := uint64(blockrecord.MinimumBlockNumber)
	previous := merkle.Digest{}
	if height, digest, ok := c.db.Tip(); ok {
		expected = height + 1
		previous = digest
	}
	if expected != header.Number {
		log.Warnf("block: %d  rejected, expected: %d", header.Number, expected)
		return fault.BlockHeightMismatch
	}
	if previous != header.PreviousBlock {
		log.Warnf("block: %d  previous: %v  does not match tip: %v", header.Number, header.PreviousBlock, previous)
		return fault.PreviousBlockDigestDoesNotMatch
	}

	height := header.Number
	undo := &blockUndo{}

	for i, tx := range block.Transactions {
		txId := block.TxIds[i]

		err := keva.CheckTransaction(tx, height, c.parameters, c.db)
		if nil != err {
			log.Warnf("block: %d  tx: %v  rejected: %s", height, txId, err)
			c.abort()
			return err
		}

		for _, in := range tx.TxIn {
			coin, ok := c.db.GetCoin(in.PreviousOutPoint)
			if !ok {
				log.Warnf("block: %d  tx: %v  missing input: %v:%d", height, txId, in.PreviousOutPoint.TxId, in.PreviousOutPoint.Index)
				c.abort()
				return fault.InputCoinNotFound
			}
			undo.spent = append(undo.spent, spentCoin{
				outPoint: in.PreviousOutPoint,
				coin:     coin,
			})
			c.db.SpendCoin(in.PreviousOutPoint)
		}

		err = c.applier.Apply(tx, height, &undo.keva)
		if nil != err {
			log.Errorf("block: %d  tx: %v  apply error: %s", height, txId, err)
			c.abort()
			return err
		}

		for j, out := range tx.TxOut {
			o := transactionrecord.OutPoint{
				TxId:  txId,
				Index: uint32(j),
			}
			c.db.PutCoin(o, &transactionrecord.Coin{
				Out:    out,
				Height: height,
			})
		}
	}

	c.db.PutUndo(height, undo.pack())
	c.db.PutBlock(height, packed)
	c.db.SetTip(height, block.Digest)

	err := c.db.Flush()
	if nil != err {
		log.Criticalf("block: %d  flush error: %s", height, err)
		c.abort()
		return err
	}
	c.notifications.release()

	keys := c.db.KeyCount()
	log.Infof("connected block: %d  digest: %v  transactions: %d  keva writes: %d  keys: %d", height, block.Digest, len(block.Transactions), len(undo.keva), keys)
	c.metrics.ObserveBlockConnected(height, keys)

	keva.CheckKevaDB(log, height, c.checkKevaDB, c.parameters, c.db)

	return nil
}

func (c *Chain) abort() {
	c.db.Abort()
	c.notifications.discard()
}
