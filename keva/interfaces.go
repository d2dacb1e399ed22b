// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keva

import (
	"github.com/bitmark-inc/kevad/merkle"
	"github.com/bitmark-inc/kevad/storage"
	"github.com/bitmark-inc/kevad/transactionrecord"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

// CoinView - read access to unspent outputs
type CoinView interface {
	GetCoin(transactionrecord.OutPoint) (*transactionrecord.Coin, bool)
}

// Store - the confirmed key/value records
type Store interface {
	GetKeyValue(ns []byte, key []byte) (*storage.KeyRecord, bool)
	PutKeyValue(ns []byte, key []byte, record *storage.KeyRecord, isInsert bool)
	DeleteKeyValue(ns []byte, key []byte) bool
}

// Notifier - receives a call for every confirmed keva change
type Notifier interface {
	NamespaceCreated(txId merkle.Digest, height uint64, ns []byte, displayName []byte)
	KeyUpdated(txId merkle.Digest, height uint64, ns []byte, key []byte, value []byte)
	KeyDeleted(txId merkle.Digest, height uint64, ns []byte, key []byte)
}
