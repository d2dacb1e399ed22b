// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keva

import (
	"bytes"

	"github.com/bitmark-inc/kevad/chain"
	"github.com/bitmark-inc/kevad/constants"
	"github.com/bitmark-inc/kevad/fault"
	"github.com/bitmark-inc/kevad/kevascript"
	"github.com/bitmark-inc/kevad/namespace"
	"github.com/bitmark-inc/kevad/transactionrecord"
)

// CheckTransaction - validate the keva operation of a transaction
// that would be included in a block at height
//
// returns one of the fault validation errors or nil
func CheckTransaction(tx *transactionrecord.Tx, height uint64, parameters *chain.Parameters, view CoinView) error {

	// the keva input, if any
	var input kevascript.Operation
	haveInput := false
	for _, in := range tx.TxIn {
		coin, ok := view.GetCoin(in.PreviousOutPoint)
		if !ok {
			return fault.InputCoinNotFound
		}
		op := kevascript.Decode(coin.Out.Script)
		if !op.IsKevaOp() {
			continue
		}
		if haveInput {
			return fault.MultipleKevaInputs
		}
		input = op
		haveInput = true
	}

	// the keva output, if any
	var output kevascript.Operation
	var value uint64
	haveOutput := false
	for _, out := range tx.TxOut {
		op := kevascript.Decode(out.Script)
		if !op.IsKevaOp() {
			continue
		}
		if haveOutput {
			return fault.MultipleKevaOutputs
		}
		output = op
		value = out.Value
		haveOutput = true
	}

	if !tx.IsKeva() {
		if haveInput {
			return fault.NonKevaTxWithKevaInputs
		}
		if haveOutput {
			return fault.NonKevaTxWithKevaOutputs
		}
		return nil
	}

	if !haveOutput {
		return fault.KevaTxWithoutKevaOutput
	}

	// the storage key layout holds the namespace length in one byte
	if len(output.Namespace()) > constants.MaxNamespaceLength {
		return fault.NamespaceTooLong
	}

	if value < parameters.MinimumLockedAmount {
		return fault.GreedyName
	}

	if output.IsNamespaceRegistration() {
		return checkRegistration(tx, height, parameters, output)
	}

	return checkUpdate(output, input, haveInput)
}

func checkRegistration(tx *transactionrecord.Tx, height uint64, parameters *chain.Parameters, output kevascript.Operation) error {
	if len(output.DisplayName()) > constants.MaxValueLength {
		return fault.DisplayNameTooLong
	}

	// registrations confirmed before the fix were never checked
	// and the chain already contains forged namespaces
	if !parameters.IsNsFixActive(height) {
		return nil
	}

	if 0 == len(tx.TxIn) {
		return fault.TransactionHasNoInputs
	}

	expected := namespace.Fixed.Derive(tx.TxIn[0].PreviousOutPoint, parameters.NamespaceVersion)
	if !bytes.Equal(expected, output.Namespace()) {
		return fault.NamespaceNotDerived
	}
	return nil
}

func checkUpdate(output kevascript.Operation, input kevascript.Operation, haveInput bool) error {
	if !haveInput {
		return fault.UpdateWithoutKevaInput
	}

	if len(output.Key()) > constants.MaxKeyLength {
		return fault.KeyTooLong
	}

	if !bytes.Equal(output.Namespace(), input.Namespace()) {
		return fault.NamespaceMismatch
	}

	if output.IsPut() && len(output.Value()) > constants.MaxValueLength {
		return fault.ValueTooLong
	}

	if !input.IsNamespaceRegistration() && !input.IsAnyUpdate() {
		if output.IsPut() {
			return fault.PutWithNonKevaInput
		}
		return fault.DeleteWithNonKevaInput
	}
	return nil
}
