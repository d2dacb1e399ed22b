// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	cache "github.com/patrickmn/go-cache"
)

// Cache - the uncommitted writes of a batch
type Cache interface {
	Get(string) ([]byte, dbOperation, bool)
	Set(dbOperation, string, []byte)
	Clear()
	Count() int
}

type dbOperation int

const (
	dbPut dbOperation = iota
	dbDelete
)

type dbCache struct {
	cache *cache.Cache
}

type cacheData struct {
	op    dbOperation
	value []byte
}

// entries must live until the batch is committed or aborted
func newCache() *dbCache {
	return &dbCache{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// Get - the last operation queued for a key
func (c *dbCache) Get(key string) ([]byte, dbOperation, bool) {
	obj, found := c.cache.Get(key)
	if !found {
		return nil, dbPut, false
	}
	data := obj.(cacheData)
	return data.value, data.op, true
}

// Set - record an operation
func (c *dbCache) Set(op dbOperation, key string, value []byte) {
	stored := make([]byte, len(value))
	copy(stored, value)
	c.cache.Set(key, cacheData{op: op, value: stored}, cache.NoExpiration)
}

// Clear - forget everything
func (c *dbCache) Clear() {
	c.cache.Flush()
}

// Count - number of cached keys
func (c *dbCache) Count() int {
	return c.cache.ItemCount()
}
