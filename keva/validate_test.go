// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keva_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kevad/constants"
	"github.com/bitmark-inc/kevad/fault"
	"github.com/bitmark-inc/kevad/keva"
	"github.com/bitmark-inc/kevad/kevascript"
	"github.com/bitmark-inc/kevad/namespace"
	"github.com/bitmark-inc/kevad/transactionrecord"
)

const (
	beforeFix = 100
	afterFix  = 1000
)

func TestOrdinaryTransaction(t *testing.T) {
	view := coinView{}
	funding := outPoint("plain", 0)
	view.add(funding, 10, plainScript)

	tx := &transactionrecord.Tx{
		Version: transactionrecord.StandardVersion,
		TxIn:    []transactionrecord.TxIn{{PreviousOutPoint: funding}},
		TxOut:   []transactionrecord.TxOut{{Value: 5, Script: plainScript}},
	}
	assert.Nil(t, keva.CheckTransaction(tx, afterFix, regtest(), view), "ordinary transaction rejected")
}

func TestRegistration(t *testing.T) {
	view := coinView{}
	tx, _ := makeRegistration(view, "register", "my namespace")

	assert.Nil(t, keva.CheckTransaction(tx, afterFix, regtest(), view), "valid registration rejected")
	assert.Nil(t, keva.CheckTransaction(tx, beforeFix, regtest(), view), "valid registration rejected before fix")
}

func TestForgedNamespace(t *testing.T) {
	view := coinView{}
	tx, _ := makeRegistration(view, "forged", "name")

	forged := bytes.Repeat([]byte{0x35}, 21)
	tx.TxOut[0].Script = kevascript.NamespaceScript(forged, []byte("name"), address)

	err := keva.CheckTransaction(tx, afterFix, regtest(), view)
	assert.Equal(t, fault.NamespaceNotDerived, err, "forged namespace accepted")

	// historic chain state must still validate
	err = keva.CheckTransaction(tx, beforeFix, regtest(), view)
	assert.Nil(t, err, "forged namespace rejected before fix")
}

func TestLegacyNamespaceAfterFix(t *testing.T) {
	view := coinView{}
	tx, _ := makeRegistration(view, "legacy", "name")

	legacy := namespace.Legacy.Derive(tx.TxIn[0].PreviousOutPoint, 53)
	tx.TxOut[0].Script = kevascript.NamespaceScript(legacy, []byte("name"), address)

	err := keva.CheckTransaction(tx, afterFix, regtest(), view)
	assert.Equal(t, fault.NamespaceNotDerived, err, "legacy namespace accepted after fix")
}

func TestNamespaceRuleAtFixBoundary(t *testing.T) {
	parameters := regtest()
	lastLegacy := parameters.NsFixHeight - 1

	view := coinView{}
	fixed, _ := makeRegistration(view, "boundary", "name")
	legacy, _ := makeRegistration(view, "boundary", "name")
	legacyNs := namespace.Legacy.Derive(legacy.TxIn[0].PreviousOutPoint, parameters.NamespaceVersion)
	legacy.TxOut[0].Script = kevascript.NamespaceScript(legacyNs, []byte("name"), address)

	assert.Nil(t, keva.CheckTransaction(legacy, lastLegacy, parameters, view), "legacy rejected below fix height")
	assert.Nil(t, keva.CheckTransaction(fixed, lastLegacy, parameters, view), "fixed rejected below fix height")

	err := keva.CheckTransaction(legacy, parameters.NsFixHeight, parameters, view)
	assert.Equal(t, fault.NamespaceNotDerived, err, "legacy accepted at fix height")
	assert.Nil(t, keva.CheckTransaction(fixed, parameters.NsFixHeight, parameters, view), "fixed rejected at fix height")
}

func TestNamespaceTooLong(t *testing.T) {
	long := bytes.Repeat([]byte{0x35}, constants.MaxNamespaceLength+45)

	view := coinView{}
	reg, _ := makeRegistration(view, "long namespace", "n")
	reg.TxOut[0].Script = kevascript.NamespaceScript(long, []byte("n"), address)

	// the derivation check is skipped here, the length check is not
	err := keva.CheckTransaction(reg, beforeFix, regtest(), view)
	assert.Equal(t, fault.NamespaceTooLong, err, "long registration accepted before fix")
	assert.True(t, fault.IsErrValidation(err), "wrong error class")

	input := outPoint("long holder", 0)
	view.add(input, 5000000, kevascript.NamespaceScript(long, []byte("n"), address))
	put := makeUpdate(input, kevascript.PutScript(long, []byte("key"), []byte("value"), address))
	err = keva.CheckTransaction(put, afterFix, regtest(), view)
	assert.Equal(t, fault.NamespaceTooLong, err, "long update accepted")

	limit := bytes.Repeat([]byte{0x35}, constants.MaxNamespaceLength)
	reg.TxOut[0].Script = kevascript.NamespaceScript(limit, []byte("n"), address)
	assert.Nil(t, keva.CheckTransaction(reg, beforeFix, regtest(), view), "namespace at the limit rejected")
}

func TestGreedyName(t *testing.T) {
	view := coinView{}
	tx, _ := makeRegistration(view, "greedy", "name")
	tx.TxOut[0].Value = regtest().MinimumLockedAmount - 1

	err := keva.CheckTransaction(tx, afterFix, regtest(), view)
	assert.Equal(t, fault.GreedyName, err, "greedy name accepted")
	assert.True(t, fault.IsErrValidation(err), "wrong error class")
}

func TestDisplayNameTooLong(t *testing.T) {
	view := coinView{}
	tx, ns := makeRegistration(view, "long", "")
	tx.TxOut[0].Script = kevascript.NamespaceScript(ns, bytes.Repeat([]byte{'n'}, constants.MaxValueLength+1), address)

	err := keva.CheckTransaction(tx, afterFix, regtest(), view)
	assert.Equal(t, fault.DisplayNameTooLong, err, "long display name accepted")
}

func TestRegistrationWithoutInputs(t *testing.T) {
	view := coinView{}
	tx, _ := makeRegistration(view, "noinputs", "name")
	tx.TxIn = nil

	err := keva.CheckTransaction(tx, afterFix, regtest(), view)
	assert.Equal(t, fault.TransactionHasNoInputs, err, "registration without inputs accepted")
}

func TestMultipleKevaOutputs(t *testing.T) {
	view := coinView{}
	tx, ns := makeRegistration(view, "multiple", "name")
	tx.TxOut[1] = transactionrecord.TxOut{
		Value:  regtest().MinimumLockedAmount,
		Script: kevascript.PutScript(ns, []byte("k"), []byte("v"), address),
	}

	err := keva.CheckTransaction(tx, afterFix, regtest(), view)
	assert.Equal(t, fault.MultipleKevaOutputs, err, "two keva outputs accepted")
}

func TestMarkerMismatch(t *testing.T) {
	view := coinView{}
	tx, ns := makeRegistration(view, "marker", "name")

	tx.Version = transactionrecord.StandardVersion
	err := keva.CheckTransaction(tx, afterFix, regtest(), view)
	assert.Equal(t, fault.NonKevaTxWithKevaOutputs, err, "unmarked keva output accepted")

	tx.Version = transactionrecord.KevaVersion
	tx.TxOut = tx.TxOut[1:]
	err = keva.CheckTransaction(tx, afterFix, regtest(), view)
	assert.Equal(t, fault.KevaTxWithoutKevaOutput, err, "marked transaction without keva output accepted")

	// spending a keva coin from an ordinary transaction
	kevaCoin := outPoint("kevacoin", 0)
	view.add(kevaCoin, regtest().MinimumLockedAmount, kevascript.PutScript(ns, []byte("k"), []byte("v"), address))
	spend := &transactionrecord.Tx{
		Version: transactionrecord.StandardVersion,
		TxIn:    []transactionrecord.TxIn{{PreviousOutPoint: kevaCoin}},
		TxOut:   []transactionrecord.TxOut{{Value: 5, Script: plainScript}},
	}
	err = keva.CheckTransaction(spend, afterFix, regtest(), view)
	assert.Equal(t, fault.NonKevaTxWithKevaInputs, err, "ordinary transaction spending keva coin accepted")
}

func TestMissingInputCoin(t *testing.T) {
	view := coinView{}
	tx := makeUpdate(outPoint("absent", 0), kevascript.PutScript([]byte{0x35}, []byte("k"), []byte("v"), address))

	err := keva.CheckTransaction(tx, afterFix, regtest(), view)
	assert.Equal(t, fault.InputCoinNotFound, err, "missing coin accepted")
}

func TestUpdates(t *testing.T) {
	view := coinView{}
	_, ns := makeRegistration(view, "updates", "name")
	kevaCoin := outPoint("registration-output", 0)
	view.add(kevaCoin, regtest().MinimumLockedAmount, kevascript.NamespaceScript(ns, []byte("name"), address))

	plainCoin := outPoint("plain-coin", 0)
	view.add(plainCoin, regtest().MinimumLockedAmount, plainScript)

	otherCoin := outPoint("other-coin", 0)
	view.add(otherCoin, regtest().MinimumLockedAmount, kevascript.PutScript(ns, []byte("x"), []byte("y"), address))

	longKey := bytes.Repeat([]byte{'k'}, constants.MaxKeyLength+1)
	longValue := bytes.Repeat([]byte{'v'}, constants.MaxValueLength+1)

	testItems := []struct {
		name   string
		input  transactionrecord.OutPoint
		script []byte
		err    error
	}{
		{"put", kevaCoin, kevascript.PutScript(ns, []byte("key"), []byte("value"), address), nil},
		{"delete", kevaCoin, kevascript.DeleteScript(ns, []byte("key"), address), nil},
		{"empty value", kevaCoin, kevascript.PutScript(ns, []byte("key"), nil, address), nil},
		{"max key", kevaCoin, kevascript.PutScript(ns, longKey[1:], []byte("v"), address), nil},
		{"max value", kevaCoin, kevascript.PutScript(ns, []byte("k"), longValue[1:], address), nil},
		{"chained put", otherCoin, kevascript.PutScript(ns, []byte("k"), []byte("v"), address), nil},
		{"plain input", plainCoin, kevascript.PutScript(ns, []byte("key"), []byte("value"), address), fault.UpdateWithoutKevaInput},
		{"plain delete input", plainCoin, kevascript.DeleteScript(ns, []byte("key"), address), fault.UpdateWithoutKevaInput},
		{"long key", kevaCoin, kevascript.PutScript(ns, longKey, []byte("v"), address), fault.KeyTooLong},
		{"long delete key", kevaCoin, kevascript.DeleteScript(ns, longKey, address), fault.KeyTooLong},
		{"long value", kevaCoin, kevascript.PutScript(ns, []byte("k"), longValue, address), fault.ValueTooLong},
		{"mismatch", kevaCoin, kevascript.PutScript([]byte{0x35, 0x00}, []byte("k"), []byte("v"), address), fault.NamespaceMismatch},
	}

	for _, item := range testItems {
		tx := makeUpdate(item.input, item.script)
		err := keva.CheckTransaction(tx, afterFix, regtest(), view)
		assert.Equal(t, item.err, err, item.name)
	}
}

func TestMultipleKevaInputs(t *testing.T) {
	view := coinView{}
	ns := []byte{0x35, 0x01}
	first := outPoint("first", 0)
	second := outPoint("second", 0)
	view.add(first, regtest().MinimumLockedAmount, kevascript.PutScript(ns, []byte("a"), []byte("1"), address))
	view.add(second, regtest().MinimumLockedAmount, kevascript.PutScript(ns, []byte("b"), []byte("2"), address))

	tx := makeUpdate(first, kevascript.PutScript(ns, []byte("c"), []byte("3"), address))
	tx.TxIn = append(tx.TxIn, transactionrecord.TxIn{PreviousOutPoint: second})

	err := keva.CheckTransaction(tx, afterFix, regtest(), view)
	assert.Equal(t, fault.MultipleKevaInputs, err, "two keva inputs accepted")
}
