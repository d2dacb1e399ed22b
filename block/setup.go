// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package block

import (
	"sync"

	"github.com/bitmark-inc/kevad/chain"
	"github.com/bitmark-inc/kevad/fault"
	"github.com/bitmark-inc/kevad/keva"
	"github.com/bitmark-inc/kevad/merkle"
	"github.com/bitmark-inc/kevad/metrics"
	"github.com/bitmark-inc/kevad/reservoir"
	"github.com/bitmark-inc/kevad/storage"
	"github.com/bitmark-inc/kevad/transactionrecord"
	"github.com/bitmark-inc/logger"
)

// Pool - the unconfirmed transactions that must follow the chain
type Pool interface {
	reservoir.Subscriber
	Add(tx *transactionrecord.Tx) (merkle.Digest, error)
	RemoveForBlock(txs []*transactionrecord.Tx)
}

// Chain - the confirmed chain state
//
// the embedded lock is the chain state lock, it is always taken
// before the pool lock
type Chain struct {
	sync.RWMutex

	log         *logger.L
	db          *storage.DB
	parameters  *chain.Parameters
	checkKevaDB int

	notifications *notifyQueue
	applier       *keva.Applier
	metrics       *metrics.KevaMetrics

	pool Pool
}

// New - create the chain state on an open database
//
// notifier may be nil
func New(db *storage.DB, parameters *chain.Parameters, checkKevaDB int, notifier keva.Notifier) (*Chain, error) {
	log := logger.New("block")
	if nil == log {
		return nil, fault.InvalidLoggerChannel
	}

	if nil == db {
		return nil, fault.DatabaseIsNotSet
	}

	queue := &notifyQueue{
		target: notifier,
	}

	c := &Chain{
		log:           log,
		db:            db,
		parameters:    parameters,
		checkKevaDB:   checkKevaDB,
		notifications: queue,
		applier:       keva.NewApplier(log, db, queue),
		metrics:       metrics.Keva(),
	}

	if height, digest, ok := db.Tip(); ok {
		log.Infof("chain: %s  tip: %d  digest: %v  keys: %d", parameters.Name, height, digest, db.KeyCount())
	} else {
		log.Infof("chain: %s  empty", parameters.Name)
	}

	return c, nil
}

// SetPool - attach the pool that is cleaned on every block
func (c *Chain) SetPool(pool Pool) {
	c.Lock()
	defer c.Unlock()

	c.pool = pool
}

// SetCheckKevaDB - change the consistency check interval
func (c *Chain) SetCheckKevaDB(interval int) {
	c.Lock()
	defer c.Unlock()

	c.checkKevaDB = interval
}

// Tip - height and digest of the last block
//
// ok is false for an empty chain
func (c *Chain) Tip() (uint64, merkle.Digest, bool) {
	c.RLock()
	defer c.RUnlock()

	return c.db.Tip()
}

// ReadState - run f with a consistent view of the unspent outputs
func (c *Chain) ReadState(f func(height uint64, view keva.CoinView)) {
	c.RLock()
	defer c.RUnlock()

	height, _, _ := c.db.Tip()
	f(height, c.db)
}

// ReadStore - run f with a consistent view of the key/value records
func (c *Chain) ReadStore(f func(height uint64, store storage.Reader)) {
	c.RLock()
	defer c.RUnlock()

	height, _, _ := c.db.Tip()
	f(height, c.db)
}
