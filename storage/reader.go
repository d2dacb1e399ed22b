// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Reader - read only access to the confirmed key/value records
type Reader interface {
	GetKeyValue(ns []byte, key []byte) (*KeyRecord, bool)
	IterateKeys(ns []byte, f func(key []byte, record *KeyRecord) error) error
	IterateAll(f func(ns []byte, key []byte, record *KeyRecord) error) error
	IterateAssociated(target []byte, f func(ns []byte, record *KeyRecord) error) error
	KeyCount() uint64
}
