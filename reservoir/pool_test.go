// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kevad/chain"
	"github.com/bitmark-inc/kevad/fault"
	"github.com/bitmark-inc/kevad/kevascript"
	"github.com/bitmark-inc/kevad/merkle"
	"github.com/bitmark-inc/kevad/namespace"
	"github.com/bitmark-inc/kevad/reservoir"
	"github.com/bitmark-inc/kevad/transactionrecord"
)

func TestAddChain(t *testing.T) {
	pool, state := newPool(t)

	reg, ns := registration(state.fund("a"), "name")
	regId, err := pool.Add(reg)
	assert.Nil(t, err, "registration rejected")

	_, err = pool.Add(reg)
	assert.Equal(t, fault.TransactionAlreadyExists, err, "duplicate accepted")

	// an update spending the pooled registration
	put := update(firstOutput(regId), kevascript.PutScript(ns, []byte("k"), []byte("v"), address))
	putId, err := pool.Add(put)
	assert.Nil(t, err, "chained update rejected")

	// a second spend of the same output
	again := update(firstOutput(regId), kevascript.PutScript(ns, []byte("k"), []byte("w"), address))
	_, err = pool.Add(again)
	assert.Equal(t, fault.OutPointAlreadySpentInPool, err, "double spend accepted")

	pool.ReadOverlay(func(o *reservoir.Overlay) {
		w, found := o.Lookup(ns, []byte("k"))
		assert.True(t, found, "pending write missing")
		assert.Equal(t, []byte("v"), w.Value, "wrong pending value")
		assert.Equal(t, putId, w.TxId, "wrong pending txid")
	})
	assert.Equal(t, 2, pool.Size(), "wrong pool size")

	// removing the parent removes the child
	assert.Nil(t, pool.Remove(regId, reservoir.ReasonRequest), "remove error")
	assert.Equal(t, 0, pool.Size(), "descendant not removed")
	assert.Equal(t, fault.PoolEntryNotFound, pool.Remove(regId, reservoir.ReasonRequest), "second remove succeeded")
}

func TestAddRejectsNamespace(t *testing.T) {
	pool, state := newPool(t)

	funding := state.fund("b")
	reg, _ := registration(funding, "name")

	// derived with the wrong rule for the tip
	legacy := namespace.Legacy.Derive(funding, chain.NamespaceVersionByte)
	reg.TxOut[0].Script = kevascript.NamespaceScript(legacy, []byte("name"), address)
	_, err := pool.Add(reg)
	assert.Equal(t, fault.NamespaceNotDerived, err, "wrong namespace accepted")
	assert.NotNil(t, pool.CheckAcceptability(reg), "acceptability passed")

	// before the fix the pool still insists on the legacy rule
	state.height = 100
	_, err = pool.Add(reg)
	assert.Nil(t, err, "legacy namespace rejected before fix")
}

func TestAddAtFixBoundary(t *testing.T) {
	pool, state := newPool(t)
	parameters, _ := chain.ParametersFor(chain.Regtest)

	legacyRegistration := func(seed string) *transactionrecord.Tx {
		funding := state.fund(seed)
		reg, _ := registration(funding, "name")
		legacy := namespace.Legacy.Derive(funding, chain.NamespaceVersionByte)
		reg.TxOut[0].Script = kevascript.NamespaceScript(legacy, []byte("name"), address)
		return reg
	}

	// the next block is the first under the fix
	state.height = parameters.NsFixHeight - 1
	fixed, _ := registration(state.fund("fixed at boundary"), "name")
	_, err := pool.Add(fixed)
	assert.Nil(t, err, "fixed registration rejected for the first fixed block")

	_, err = pool.Add(legacyRegistration("legacy at boundary"))
	assert.Equal(t, fault.NamespaceNotDerived, err, "legacy registration accepted for the first fixed block")

	// the next block is the last before the fix
	state.height = parameters.NsFixHeight - 2
	_, err = pool.Add(legacyRegistration("legacy before boundary"))
	assert.Nil(t, err, "legacy registration rejected for the last legacy block")

	early, _ := registration(state.fund("fixed before boundary"), "name")
	_, err = pool.Add(early)
	assert.Equal(t, fault.NamespaceNotDerived, err, "fixed registration accepted for the last legacy block")
}

func TestAddNamespaceConflict(t *testing.T) {
	pool, state := newPool(t)

	// the legacy rule ignores the output index
	state.height = 100
	first := state.fund("c")
	second := first
	second.Index = 1
	state.view[second] = state.view[first]

	ns := namespace.Legacy.Derive(first, chain.NamespaceVersionByte)
	reg := func(funding transactionrecord.OutPoint, name string) *transactionrecord.Tx {
		return &transactionrecord.Tx{
			Version: transactionrecord.KevaVersion,
			TxIn: []transactionrecord.TxIn{
				{PreviousOutPoint: funding},
			},
			TxOut: []transactionrecord.TxOut{
				{Value: chain.KevaLockedAmount, Script: kevascript.NamespaceScript(ns, []byte(name), address)},
			},
		}
	}

	_, err := pool.Add(reg(first, "first"))
	assert.Nil(t, err, "registration rejected")

	_, err = pool.Add(reg(second, "second"))
	assert.Equal(t, fault.NamespaceConflict, err, "second registration of namespace accepted")
}

func TestConflictTrackerScope(t *testing.T) {
	pool, state := newPool(t)

	reg, _ := registration(state.fund("d"), "pooled")
	regId, err := pool.Add(reg)
	assert.Nil(t, err, "registration rejected")

	expiring, _ := registration(state.fund("e"), "expiring")
	expiringId, err := pool.Add(expiring)
	assert.Nil(t, err, "registration rejected")

	later, _ := registration(state.fund("f"), "later")
	laterId, err := pool.Add(later)
	assert.Nil(t, err, "registration rejected")

	tracker := reservoir.NewConflictTracker(pool)

	// a block registering the same namespace from another transaction
	blockTx := &transactionrecord.Tx{
		Version: reg.Version,
		TxIn: []transactionrecord.TxIn{
			{PreviousOutPoint: state.fund("block funding")},
		},
		TxOut:    reg.TxOut,
		LockTime: 99,
	}
	pool.RemoveForBlock([]*transactionrecord.Tx{blockTx})

	// an expiry inside the scope is not recorded
	assert.Nil(t, pool.Remove(expiringId, reservoir.ReasonExpiry), "remove error")

	txs, txIds := tracker.Conflicts()
	assert.Equal(t, 1, len(txs), "wrong conflict count")
	assert.Equal(t, regId, txIds[0], "wrong conflict")

	tracker.Close()
	tracker.Close()

	// nothing recorded after the scope ends
	assert.Nil(t, pool.Remove(laterId, reservoir.ReasonKevaConflict), "remove error")
	_, txIds = tracker.Conflicts()
	assert.Equal(t, 1, len(txIds), "removal recorded after close")
}

func TestRemoveForBlock(t *testing.T) {
	pool, state := newPool(t)

	funding := state.fund("g")
	reg, ns := registration(funding, "confirmed")
	regId, err := pool.Add(reg)
	assert.Nil(t, err, "registration rejected")

	put := update(firstOutput(regId), kevascript.PutScript(ns, []byte("k"), []byte("v"), address))
	_, err = pool.Add(put)
	assert.Nil(t, err, "update rejected")

	// confirming the parent keeps the child
	pool.RemoveForBlock([]*transactionrecord.Tx{reg})
	assert.Equal(t, 1, pool.Size(), "child removed with confirmed parent")

	// a block double spending the child input
	spend := &transactionrecord.Tx{
		Version: transactionrecord.StandardVersion,
		TxIn:    put.TxIn,
		TxOut:   []transactionrecord.TxOut{{Value: 1, Script: plainScript}},
	}
	removed := []reservoir.RemovalReason{}
	id := pool.Subscribe(func(tx *transactionrecord.Tx, txId merkle.Digest, reason reservoir.RemovalReason) {
		removed = append(removed, reason)
	})
	defer pool.Unsubscribe(id)

	pool.RemoveForBlock([]*transactionrecord.Tx{spend})
	assert.Equal(t, 0, pool.Size(), "conflict not removed")
	assert.Equal(t, []reservoir.RemovalReason{reservoir.ReasonConflict}, removed, "wrong reasons")
}

func TestExpire(t *testing.T) {
	pool, state := newPool(t)

	reg, _ := registration(state.fund("h"), "old")
	_, err := pool.Add(reg)
	assert.Nil(t, err, "registration rejected")

	pool.Expire(time.Now())
	assert.Equal(t, 1, pool.Size(), "fresh entry expired")

	pool.Expire(time.Now().Add(2 * time.Hour))
	assert.Equal(t, 0, pool.Size(), "old entry kept")
}

func TestSetExpiry(t *testing.T) {
	pool, state := newPool(t)

	reg, _ := registration(state.fund("i"), "short")
	_, err := pool.Add(reg)
	assert.Nil(t, err, "registration rejected")

	pool.SetExpiry(time.Minute)
	pool.Expire(time.Now().Add(30 * time.Second))
	assert.Equal(t, 1, pool.Size(), "entry expired early")

	pool.Expire(time.Now().Add(2 * time.Minute))
	assert.Equal(t, 0, pool.Size(), "entry kept past expiry")
}
