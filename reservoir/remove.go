// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"time"

	"github.com/bitmark-inc/kevad/fault"
	"github.com/bitmark-inc/kevad/merkle"
	"github.com/bitmark-inc/kevad/transactionrecord"
)

// RemovalReason - why a transaction left the pool
type RemovalReason int

// enumerate the removal reasons
const (
	ReasonRequest      RemovalReason = iota // explicit removal
	ReasonBlock                             // confirmed in a block
	ReasonConflict                          // an input was spent by a block
	ReasonKevaConflict                      // namespace registered by a block
	ReasonExpiry                            // too long in the pool
)

// String - name of a reason for logging and metrics
func (reason RemovalReason) String() string {
	switch reason {
	case ReasonRequest:
		return "request"
	case ReasonBlock:
		return "block"
	case ReasonConflict:
		return "conflict"
	case ReasonKevaConflict:
		return "keva-conflict"
	case ReasonExpiry:
		return "expiry"
	default:
		return "unknown"
	}
}

// Remove - remove a transaction and everything that spends its outputs
func (p *Pool) Remove(txId merkle.Digest, reason RemovalReason) error {
	p.Lock()
	defer p.Unlock()

	if _, ok := p.entries[txId]; !ok {
		return fault.PoolEntryNotFound
	}
	p.remove(txId, reason)
	return nil
}

// RemoveForBlock - drop the transactions of a newly connected block
// and all pooled transactions that conflict with them
func (p *Pool) RemoveForBlock(txs []*transactionrecord.Tx) {
	p.Lock()
	defer p.Unlock()

	for _, tx := range txs {
		txId, err := tx.TxId()
		if nil != err {
			continue
		}

		if _, ok := p.entries[txId]; ok {
			p.remove(txId, ReasonBlock)
			continue
		}

		for _, in := range tx.TxIn {
			if other, ok := p.spent[in.PreviousOutPoint]; ok {
				p.remove(other, ReasonConflict)
			}
		}

		op := kevaOperation(tx)
		if op.IsNamespaceRegistration() {
			if other, ok := p.registered[string(op.Namespace())]; ok {
				p.remove(other, ReasonKevaConflict)
			}
		}
	}
}

// Expire - drop transactions pooled for longer than the expiry
func (p *Pool) Expire(now time.Time) {
	p.Lock()
	defer p.Unlock()

	expired := make([]merkle.Digest, 0)
	for txId, e := range p.entries {
		if now.Sub(e.added) > p.expiry {
			expired = append(expired, txId)
		}
	}
	for _, txId := range expired {
		// may already be gone as a descendant
		if _, ok := p.entries[txId]; ok {
			p.log.Infof("expired: %v", txId)
			p.remove(txId, ReasonExpiry)
		}
	}
}

// must hold the pool lock
func (p *Pool) remove(txId merkle.Digest, reason RemovalReason) {
	e, ok := p.entries[txId]
	if !ok {
		return
	}
	delete(p.entries, txId)

	for _, in := range e.tx.TxIn {
		if txId == p.spent[in.PreviousOutPoint] {
			delete(p.spent, in.PreviousOutPoint)
		}
	}
	if e.op.IsNamespaceRegistration() {
		ns := string(e.op.Namespace())
		if txId == p.registered[ns] {
			delete(p.registered, ns)
		}
	}
	p.overlay.Remove(txId)
	p.metrics.SetPending(p.overlay.Counts())
	p.metrics.ObserveRemoved(reason.String())

	p.log.Debugf("removed tx: %v  reason: %s", txId, reason)

	for _, listener := range p.listeners {
		listener(e.tx, txId, reason)
	}

	// outputs of a confirmed transaction remain spendable
	if ReasonBlock == reason {
		return
	}
	for i := range e.tx.TxOut {
		o := transactionrecord.OutPoint{
			TxId:  txId,
			Index: uint32(i),
		}
		if child, ok := p.spent[o]; ok {
			p.remove(child, reason)
		}
	}
}
