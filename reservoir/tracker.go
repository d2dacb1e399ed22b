// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"sync"

	"github.com/bitmark-inc/kevad/merkle"
	"github.com/bitmark-inc/kevad/transactionrecord"
)

// Subscriber - the listener registry of a pool
type Subscriber interface {
	Subscribe(RemovalListener) int
	Unsubscribe(int)
}

// ConflictTracker - collects the name conflict removals of one
// scope, usually a block connection
//
// always pair with a deferred Close:
//
//   tracker := reservoir.NewConflictTracker(pool)
//   defer tracker.Close()
type ConflictTracker struct {
	sync.Mutex
	source    Subscriber
	id        int
	once      sync.Once
	conflicts []*transactionrecord.Tx
	txIds     []merkle.Digest
}

// NewConflictTracker - subscribe to the removals of source
func NewConflictTracker(source Subscriber) *ConflictTracker {
	tracker := &ConflictTracker{
		source: source,
	}
	tracker.id = source.Subscribe(tracker.removed)
	return tracker
}

func (tracker *ConflictTracker) removed(tx *transactionrecord.Tx, txId merkle.Digest, reason RemovalReason) {
	if ReasonKevaConflict != reason {
		return
	}
	tracker.Lock()
	defer tracker.Unlock()

	tracker.conflicts = append(tracker.conflicts, tx)
	tracker.txIds = append(tracker.txIds, txId)
}

// Close - unsubscribe, safe to call more than once
func (tracker *ConflictTracker) Close() {
	tracker.once.Do(func() {
		tracker.source.Unsubscribe(tracker.id)
	})
}

// Conflicts - the transactions removed as name conflicts so far
func (tracker *ConflictTracker) Conflicts() ([]*transactionrecord.Tx, []merkle.Digest) {
	tracker.Lock()
	defer tracker.Unlock()

	txs := make([]*transactionrecord.Tx, len(tracker.conflicts))
	copy(txs, tracker.conflicts)
	txIds := make([]merkle.Digest, len(tracker.txIds))
	copy(txIds, tracker.txIds)
	return txs, txIds
}
