// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keva

import (
	"github.com/bitmark-inc/kevad/constants"
	"github.com/bitmark-inc/kevad/kevascript"
	"github.com/bitmark-inc/kevad/storage"
	"github.com/bitmark-inc/kevad/transactionrecord"
	"github.com/bitmark-inc/logger"
)

// Applier - writes validated keva operations to the store
type Applier struct {
	log      *logger.L
	store    Store
	notifier Notifier
}

// NewApplier - create an applier
//
// notifier may be nil
func NewApplier(log *logger.L, store Store, notifier Notifier) *Applier {
	return &Applier{
		log:      log,
		store:    store,
		notifier: notifier,
	}
}

// Apply - write the keva outputs of a validated transaction
//
// an undo entry is appended for every write
func (a *Applier) Apply(tx *transactionrecord.Tx, height uint64, undo *Undo) error {
	if !tx.IsKeva() {
		return nil
	}

	txId, err := tx.TxId()
	if nil != err {
		return err
	}

	for i, out := range tx.TxOut {
		op := kevascript.Decode(out.Script)
		if !op.IsKevaOp() {
			continue
		}

		outPoint := transactionrecord.OutPoint{
			TxId:  txId,
			Index: uint32(i),
		}
		ns := op.Namespace()

		switch {
		case op.IsNamespaceRegistration():
			key := []byte(constants.DisplayNameKey)
			entry := a.capture(ns, key)
			a.store.PutKeyValue(ns, key, &storage.KeyRecord{
				Value:    op.DisplayName(),
				OutPoint: outPoint,
				Height:   height,
			}, entry.IsNew)
			*undo = append(*undo, entry)

			a.log.Debugf("register namespace: %x  at height: %d  tx: %v", ns, height, txId)
			if nil != a.notifier {
				a.notifier.NamespaceCreated(txId, height, ns, op.DisplayName())
			}

		case op.IsPut():
			key := op.Key()
			entry := a.capture(ns, key)
			a.store.PutKeyValue(ns, key, &storage.KeyRecord{
				Value:    op.Value(),
				OutPoint: outPoint,
				Height:   height,
			}, entry.IsNew)
			*undo = append(*undo, entry)

			a.log.Debugf("update namespace: %x  key: %q  at height: %d  tx: %v", ns, key, height, txId)
			if nil != a.notifier {
				a.notifier.KeyUpdated(txId, height, ns, key, op.Value())
			}

		case op.IsDelete():
			key := op.Key()
			entry := a.capture(ns, key)
			*undo = append(*undo, entry)
			if entry.IsNew {
				// deleting an absent key changes nothing, replaying
				// its entry deletes nothing either
				continue
			}
			a.store.DeleteKeyValue(ns, key)

			a.log.Debugf("delete namespace: %x  key: %q  at height: %d  tx: %v", ns, key, height, txId)
			if nil != a.notifier {
				a.notifier.KeyDeleted(txId, height, ns, key)
			}
		}
	}
	return nil
}

// the pre-image of a key
func (a *Applier) capture(ns []byte, key []byte) UndoEntry {
	old, found := a.store.GetKeyValue(ns, key)
	return UndoEntry{
		Namespace: ns,
		Key:       key,
		IsNew:     !found,
		OldData:   old,
	}
}

// Disconnect - replay undo entries in reverse order
//
// a failure means the undo data does not match the store and the
// process cannot continue
func (a *Applier) Disconnect(undo Undo) {
	for i := len(undo) - 1; i >= 0; i -= 1 {
		e := undo[i]
		if e.IsNew {
			a.store.DeleteKeyValue(e.Namespace, e.Key)
			continue
		}
		if nil == e.OldData {
			a.log.Criticalf("undo entry: %d  namespace: %x  key: %q  has no old data", i, e.Namespace, e.Key)
			logger.Panicf("keva: undo entry: %d has no old data", i)
		}
		a.store.PutKeyValue(e.Namespace, e.Key, e.OldData, false)
	}
}
