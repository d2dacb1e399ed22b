// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keva

import (
	"encoding/binary"

	"github.com/bitmark-inc/kevad/merkle"
	"github.com/bitmark-inc/kevad/messagebus"
)

// message bus commands
const (
	NamespaceCommand = "keva-namespace"
	UpdateCommand    = "keva-update"
	DeleteCommand    = "keva-delete"
)

// BusNotifier - forwards keva changes to the message bus
//
// parameters: txid, height (8 byte big endian), namespace, then
// display name, key/value or key
type BusNotifier struct {
	queue *messagebus.BusMessageQueue
}

// NewBusNotifier - notifier sending to the keva queue
func NewBusNotifier() *BusNotifier {
	return &BusNotifier{
		queue: messagebus.Bus.Keva,
	}
}

func heightBytes(height uint64) []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, height)
	return buffer
}

// NamespaceCreated - a registration was confirmed
func (n *BusNotifier) NamespaceCreated(txId merkle.Digest, height uint64, ns []byte, displayName []byte) {
	n.queue.Send(NamespaceCommand, txId[:], heightBytes(height), ns, displayName)
}

// KeyUpdated - a put was confirmed
func (n *BusNotifier) KeyUpdated(txId merkle.Digest, height uint64, ns []byte, key []byte, value []byte) {
	n.queue.Send(UpdateCommand, txId[:], heightBytes(height), ns, key, value)
}

// KeyDeleted - a delete of an existing key was confirmed
func (n *BusNotifier) KeyDeleted(txId merkle.Digest, height uint64, ns []byte, key []byte) {
	n.queue.Send(DeleteCommand, txId[:], heightBytes(height), ns, key)
}
