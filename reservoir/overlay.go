// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"bytes"

	"github.com/bitmark-inc/kevad/kevascript"
	"github.com/bitmark-inc/kevad/merkle"
)

// PendingNamespace - an unconfirmed registration
type PendingNamespace struct {
	TxId        merkle.Digest
	Namespace   []byte
	DisplayName []byte
}

// PendingWrite - an unconfirmed put or delete
//
// a delete is a write with an empty value
type PendingWrite struct {
	TxId      merkle.Digest
	Namespace []byte
	Key       []byte
	Value     []byte
}

// Overlay - the unconfirmed keva operations in admission order
//
// no lock of its own, callers hold the pool lock
type Overlay struct {
	namespaces []PendingNamespace
	writes     []PendingWrite
}

// Admit - record the operation of an admitted transaction
func (o *Overlay) Admit(txId merkle.Digest, op kevascript.Operation) {
	switch {
	case op.IsNamespaceRegistration():
		o.namespaces = append(o.namespaces, PendingNamespace{
			TxId:        txId,
			Namespace:   op.Namespace(),
			DisplayName: op.DisplayName(),
		})
	case op.IsAnyUpdate():
		o.writes = append(o.writes, PendingWrite{
			TxId:      txId,
			Namespace: op.Namespace(),
			Key:       op.Key(),
			Value:     op.Value(),
		})
	}
}

// Remove - drop every entry of a transaction
func (o *Overlay) Remove(txId merkle.Digest) {
	namespaces := o.namespaces[:0]
	for _, n := range o.namespaces {
		if txId != n.TxId {
			namespaces = append(namespaces, n)
		}
	}
	o.namespaces = namespaces

	writes := o.writes[:0]
	for _, w := range o.writes {
		if txId != w.TxId {
			writes = append(writes, w)
		}
	}
	o.writes = writes
}

// Lookup - the last admitted write of a key
//
// found with an empty value is a pending delete
func (o *Overlay) Lookup(ns []byte, key []byte) (PendingWrite, bool) {
	for i := len(o.writes) - 1; i >= 0; i -= 1 {
		w := o.writes[i]
		if bytes.Equal(ns, w.Namespace) && bytes.Equal(key, w.Key) {
			return w, true
		}
	}
	return PendingWrite{}, false
}

// ListAll - all pending writes in admission order
//
// a nil namespace lists every namespace
func (o *Overlay) ListAll(ns []byte) []PendingWrite {
	result := make([]PendingWrite, 0, len(o.writes))
	for _, w := range o.writes {
		if nil == ns || bytes.Equal(ns, w.Namespace) {
			result = append(result, w)
		}
	}
	return result
}

// ListNamespaces - all pending registrations in admission order
func (o *Overlay) ListNamespaces() []PendingNamespace {
	result := make([]PendingNamespace, len(o.namespaces))
	copy(result, o.namespaces)
	return result
}

// Counts - number of pending registrations and writes
func (o *Overlay) Counts() (int, int) {
	return len(o.namespaces), len(o.writes)
}
