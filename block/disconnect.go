// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package block

import (
	"github.com/bitmark-inc/kevad/blockrecord"
	"github.com/bitmark-inc/kevad/fault"
	"github.com/bitmark-inc/kevad/transactionrecord"
	"github.com/bitmark-inc/logger"
)

// DisconnectTip - remove the last block and restore the state before it
//
// the transactions of the block are offered back to the pool, those
// no longer acceptable are dropped
func (c *Chain) DisconnectTip() ([]*transactionrecord.Tx, error) {
	c.Lock()
	block, err := c.disconnect()
	pool := c.pool
	c.Unlock()

	if nil != err {
		return nil, err
	}

	if nil != pool {
		for i, tx := range block.Transactions {
			if _, err := pool.Add(tx); nil != err {
				c.log.Debugf("disconnected tx: %v  not returned to pool: %s", block.TxIds[i], err)
			}
		}
	}

	return block.Transactions, nil
}

// must hold the chain lock for writing
func (c *Chain) disconnect() (*blockrecord.Block, error) {
	log := c.log

	height, _, ok := c.db.Tip()
	if !ok {
		return nil, fault.ChainIsEmpty
	}

	packed := c.db.GetBlock(height)
	if nil == packed {
		log.Criticalf("block: %d  missing from database", height)
		return nil, fault.BlockNotFound
	}
	block, err := blockrecord.PackedBlock(packed).Unpack()
	if nil != err {
		log.Criticalf("block: %d  unpack error: %s", height, err)
		return nil, err
	}

	packedUndo := c.db.GetUndo(height)
	if nil == packedUndo {
		log.Criticalf("block: %d  has no undo record", height)
		return nil, fault.UndoRecordNotFound
	}
	undo, err := unpackBlockUndo(packedUndo)
	if nil != err {
		log.Criticalf("block: %d  undo error: %s", height, err)
		return nil, err
	}

	c.applier.Disconnect(undo.keva)

	// restore spent outputs first: an output created and spent in
	// this block is then removed again below
	for i := len(undo.spent) - 1; i >= 0; i -= 1 {
		c.db.PutCoin(undo.spent[i].outPoint, undo.spent[i].coin)
	}
	for i, tx := range block.Transactions {
		for j := range tx.TxOut {
			c.db.SpendCoin(transactionrecord.OutPoint{
				TxId:  block.TxIds[i],
				Index: uint32(j),
			})
		}
	}

	c.db.DeleteUndo(height)
	c.db.DeleteBlock(height)
	if height > blockrecord.MinimumBlockNumber {
		c.db.SetTip(height-1, block.Header.PreviousBlock)
	} else {
		c.db.ClearTip()
	}

	err = c.db.Flush()
	if nil != err {
		c.abort()
		logger.Panicf("block: %d  disconnect flush error: %s", height, err)
	}

	keys := c.db.KeyCount()
	log.Infof("disconnected block: %d  keva writes undone: %d  keys: %d", height, len(undo.keva), keys)
	c.metrics.ObserveBlockDisconnected(height, keys)

	return block, nil
}
