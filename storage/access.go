// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"
)

// Access - batched access to one leveldb database
type Access interface {
	Abort()
	Commit() error
	Delete([]byte)
	Get([]byte) ([]byte, error)
	Has([]byte) (bool, error)
	Iterator(*ldb_util.Range) iterator.Iterator
	Pending() int
	Put([]byte, []byte)
}

// AccessData - batch plus a cache of the uncommitted writes
type AccessData struct {
	sync.Mutex
	db    *leveldb.DB
	batch *leveldb.Batch
	cache Cache
}

func newDA(db *leveldb.DB, cache Cache) Access {
	return &AccessData{
		db:    db,
		batch: new(leveldb.Batch),
		cache: cache,
	}
}

// Put - queue a write
func (d *AccessData) Put(key []byte, value []byte) {
	d.Lock()
	defer d.Unlock()

	d.cache.Set(dbPut, string(key), value)
	d.batch.Put(key, value)
}

// Delete - queue a delete
func (d *AccessData) Delete(key []byte) {
	d.Lock()
	defer d.Unlock()

	d.cache.Set(dbDelete, string(key), nil)
	d.batch.Delete(key)
}

// Commit - write the batch to the database and start a new one
func (d *AccessData) Commit() error {
	d.Lock()
	defer d.Unlock()

	if 0 == d.batch.Len() {
		return nil
	}
	err := d.db.Write(d.batch, nil)
	if nil != err {
		return err
	}
	d.batch.Reset()
	d.cache.Clear()
	return nil
}

// Abort - drop all uncommitted writes
func (d *AccessData) Abort() {
	d.Lock()
	defer d.Unlock()

	d.batch.Reset()
	d.cache.Clear()
}

// Pending - number of queued writes
func (d *AccessData) Pending() int {
	d.Lock()
	defer d.Unlock()

	return d.batch.Len()
}

// Get - read through the cache
//
// returns leveldb.ErrNotFound for a missing or pending deleted key
func (d *AccessData) Get(key []byte) ([]byte, error) {
	d.Lock()
	defer d.Unlock()

	val, op, found := d.cache.Get(string(key))
	if found {
		if dbDelete == op {
			return nil, leveldb.ErrNotFound
		}
		return val, nil
	}
	return d.db.Get(key, nil)
}

// Has - check through the cache
func (d *AccessData) Has(key []byte) (bool, error) {
	d.Lock()
	defer d.Unlock()

	_, op, found := d.cache.Get(string(key))
	if found {
		return dbPut == op, nil
	}
	return d.db.Has(key, nil)
}

// Iterator - iterate over committed data only
func (d *AccessData) Iterator(searchRange *ldb_util.Range) iterator.Iterator {
	return d.db.NewIterator(searchRange, nil)
}
