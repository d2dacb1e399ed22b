// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"bytes"
	"time"

	"github.com/bitmark-inc/kevad/fault"
	"github.com/bitmark-inc/kevad/keva"
	"github.com/bitmark-inc/kevad/kevascript"
	"github.com/bitmark-inc/kevad/merkle"
	"github.com/bitmark-inc/kevad/namespace"
	"github.com/bitmark-inc/kevad/transactionrecord"
)

// Add - validate and admit a transaction
func (p *Pool) Add(tx *transactionrecord.Tx) (merkle.Digest, error) {
	txId, err := tx.TxId()
	if nil != err {
		return merkle.Digest{}, fault.InvalidTransaction
	}

	p.state.ReadState(func(height uint64, view keva.CoinView) {
		p.Lock()
		defer p.Unlock()

		var op kevascript.Operation
		op, err = p.checkAcceptability(tx, txId, height, view)
		if nil != err {
			return
		}
		p.insert(tx, txId, op)
	})

	if nil != err {
		p.log.Debugf("rejected tx: %v  error: %s", txId, err)
		p.metrics.ObserveRejected(err.Error())
		return txId, err
	}

	p.log.Infof("admitted tx: %v", txId)
	return txId, nil
}

// CheckAcceptability - the checks run by Add, without admitting
func (p *Pool) CheckAcceptability(tx *transactionrecord.Tx) error {
	txId, err := tx.TxId()
	if nil != err {
		return fault.InvalidTransaction
	}

	p.state.ReadState(func(height uint64, view keva.CoinView) {
		p.Lock()
		defer p.Unlock()

		_, err = p.checkAcceptability(tx, txId, height, view)
	})
	return err
}

// must hold the pool lock
func (p *Pool) checkAcceptability(tx *transactionrecord.Tx, txId merkle.Digest, height uint64, view keva.CoinView) (kevascript.Operation, error) {
	if _, ok := p.entries[txId]; ok {
		return kevascript.Operation{}, fault.TransactionAlreadyExists
	}

	for _, in := range tx.TxIn {
		if _, ok := p.spent[in.PreviousOutPoint]; ok {
			return kevascript.Operation{}, fault.OutPointAlreadySpentInPool
		}
	}

	v := &poolView{
		pool:   p,
		view:   view,
		height: height + 1,
	}
	err := keva.CheckTransaction(tx, height+1, p.parameters, v)
	if nil != err {
		return kevascript.Operation{}, err
	}

	op := kevaOperation(tx)
	if !op.IsNamespaceRegistration() {
		return op, nil
	}

	if 0 == len(tx.TxIn) {
		return kevascript.Operation{}, fault.TransactionHasNoInputs
	}

	// the rule the next block enforces, as the validator above
	strategy := namespace.ForHeight(p.parameters, height+1)
	expected := strategy.Derive(tx.TxIn[0].PreviousOutPoint, p.parameters.NamespaceVersion)
	if !bytes.Equal(expected, op.Namespace()) {
		return kevascript.Operation{}, fault.NamespaceNotDerived
	}

	if _, ok := p.registered[string(op.Namespace())]; ok {
		return kevascript.Operation{}, fault.NamespaceConflict
	}
	return op, nil
}

// must hold the pool lock
func (p *Pool) insert(tx *transactionrecord.Tx, txId merkle.Digest, op kevascript.Operation) {
	p.entries[txId] = &entry{
		tx:    tx,
		txId:  txId,
		op:    op,
		added: time.Now(),
	}
	for _, in := range tx.TxIn {
		p.spent[in.PreviousOutPoint] = txId
	}
	if op.IsNamespaceRegistration() {
		p.registered[string(op.Namespace())] = txId
	}
	p.overlay.Admit(txId, op)
	p.metrics.SetPending(p.overlay.Counts())
}

// the first keva operation of the outputs
func kevaOperation(tx *transactionrecord.Tx) kevascript.Operation {
	if !tx.IsKeva() {
		return kevascript.Operation{}
	}
	for _, out := range tx.TxOut {
		op := kevascript.Decode(out.Script)
		if op.IsKevaOp() {
			return op
		}
	}
	return kevascript.Operation{}
}

// confirmed coins plus the outputs of pooled transactions
type poolView struct {
	pool   *Pool
	view   keva.CoinView
	height uint64
}

func (v *poolView) GetCoin(outPoint transactionrecord.OutPoint) (*transactionrecord.Coin, bool) {
	if e, ok := v.pool.entries[outPoint.TxId]; ok {
		if int(outPoint.Index) >= len(e.tx.TxOut) {
			return nil, false
		}
		return &transactionrecord.Coin{
			Out:    e.tx.TxOut[outPoint.Index],
			Height: v.height,
		}, true
	}
	return v.view.GetCoin(outPoint)
}
