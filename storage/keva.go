// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"
	"encoding/binary"

	"github.com/bitmark-inc/kevad/constants"
	"github.com/bitmark-inc/logger"
)

var countKey = []byte("count")

// key layout for the K pool: len(ns) ++ ns ++ key
func keyOf(ns []byte, key []byte) []byte {
	lengthPrefixed("namespace", ns)
	buffer := make([]byte, 0, 1+len(ns)+len(key))
	buffer = append(buffer, byte(len(ns)))
	buffer = append(buffer, ns...)
	return append(buffer, key...)
}

// the validator rejects longer namespaces, a longer one here would
// alias the rows of another namespace
func lengthPrefixed(what string, item []byte) {
	if len(item) > constants.MaxNamespaceLength {
		logger.Panicf("storage: %s length: %d exceeds: %d", what, len(item), constants.MaxNamespaceLength)
	}
}

func nsPrefix(ns []byte) []byte {
	return keyOf(ns, nil)
}

// key layout for the G pool: len(target) ++ target ++ ns
//
// target is the text form that follows the association prefix
func associationOf(target []byte, ns []byte) []byte {
	lengthPrefixed("association target", target)
	buffer := make([]byte, 0, 1+len(target)+len(ns))
	buffer = append(buffer, byte(len(target)))
	buffer = append(buffer, target...)
	return append(buffer, ns...)
}

func associationTarget(key []byte) ([]byte, bool) {
	prefix := []byte(constants.AssociatePrefix)
	if !bytes.HasPrefix(key, prefix) || len(key) == len(prefix) {
		return nil, false
	}
	return key[len(prefix):], true
}

// GetKeyValue - the confirmed record of a key
func (d *DB) GetKeyValue(ns []byte, key []byte) (*KeyRecord, bool) {
	buffer := d.Pool.Keys.Get(keyOf(ns, key))
	if nil == buffer {
		return nil, false
	}
	record, err := UnpackKeyRecord(buffer)
	logger.PanicIfError("storage.GetKeyValue", err)
	return record, true
}

// PutKeyValue - write a record
//
// isInsert asserts the key does not exist yet; when false the
// store checks for itself so the record count stays correct
func (d *DB) PutKeyValue(ns []byte, key []byte, record *KeyRecord, isInsert bool) {
	k := keyOf(ns, key)
	exists := false
	if !isInsert {
		exists = d.Pool.Keys.Has(k)
	}

	packed := record.Pack()
	d.Pool.Keys.Put(k, packed)

	if !exists {
		d.adjustCount(1)
	}

	if target, ok := associationTarget(key); ok {
		a := associationOf(target, ns)
		if 0 == len(record.Value) {
			d.Pool.Associations.Delete(a)
		} else {
			d.Pool.Associations.Put(a, packed)
		}
	}
}

// DeleteKeyValue - remove a record if it exists
//
// returns false if there was nothing to remove
func (d *DB) DeleteKeyValue(ns []byte, key []byte) bool {
	k := keyOf(ns, key)
	if !d.Pool.Keys.Has(k) {
		return false
	}
	d.Pool.Keys.Delete(k)
	d.adjustCount(-1)

	if target, ok := associationTarget(key); ok {
		d.Pool.Associations.Delete(associationOf(target, ns))
	}
	return true
}

// IterateKeys - visit every flushed key of a namespace in key order
func (d *DB) IterateKeys(ns []byte, f func(key []byte, record *KeyRecord) error) error {
	prefixLength := 1 + len(ns)
	cursor := d.Pool.Keys.NewPrefixCursor(nsPrefix(ns))
	return cursor.Map(func(k []byte, v []byte) error {
		record, err := UnpackKeyRecord(v)
		if nil != err {
			return err
		}
		return f(k[prefixLength:], record)
	})
}

// IterateAll - visit every flushed record of every namespace
func (d *DB) IterateAll(f func(ns []byte, key []byte, record *KeyRecord) error) error {
	cursor := d.Pool.Keys.NewFetchCursor()
	return cursor.Map(func(k []byte, v []byte) error {
		n := int(k[0])
		if len(k) < 1+n {
			return nil
		}
		record, err := UnpackKeyRecord(v)
		if nil != err {
			return err
		}
		return f(k[1:1+n], k[1+n:], record)
	})
}

// IterateAssociated - visit every namespace that holds a non-empty
// association key naming target
func (d *DB) IterateAssociated(target []byte, f func(ns []byte, record *KeyRecord) error) error {

	// longer than any key, so nothing can name it
	if len(target) > constants.MaxNamespaceLength {
		return nil
	}
	prefix := associationOf(target, nil)
	cursor := d.Pool.Associations.NewPrefixCursor(prefix)
	return cursor.Map(func(k []byte, v []byte) error {
		record, err := UnpackKeyRecord(v)
		if nil != err {
			return err
		}
		return f(k[len(prefix):], record)
	})
}

// KeyCount - total number of records, including display names
func (d *DB) KeyCount() uint64 {
	buffer := d.Pool.Meta.Get(countKey)
	if 8 != len(buffer) {
		return 0
	}
	return binary.BigEndian.Uint64(buffer)
}

func (d *DB) adjustCount(delta int64) {
	count := int64(d.KeyCount()) + delta
	if count < 0 {
		d.log.Criticalf("record count underflow: %d", count)
		logger.Panicf("storage: record count underflow: %d", count)
	}
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, uint64(count))
	d.Pool.Meta.Put(countKey, buffer)
}
