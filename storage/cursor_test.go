// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetchCursor(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	p := db.Pool.Meta
	p.Put([]byte("key-one"), []byte("data-one"))
	p.Put([]byte("key-two"), []byte("data-two"))
	p.Put([]byte("key-three"), []byte("data-three"))
	p.Put([]byte("key-remove-me"), []byte("to be deleted"))
	p.Delete([]byte("key-remove-me"))
	assert.Nil(t, db.Flush(), "flush error")

	cursor := p.NewFetchCursor()
	first, err := cursor.Fetch(2)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, 2, len(first), "wrong first count")
	assert.Equal(t, []byte("key-one"), first[0].Key, "wrong first key")
	assert.Equal(t, []byte("key-three"), first[1].Key, "wrong second key")

	rest, err := cursor.Fetch(10)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, 1, len(rest), "wrong remaining count")
	assert.Equal(t, []byte("data-two"), rest[0].Value, "wrong last value")

	_, err = cursor.Fetch(0)
	assert.NotNil(t, err, "zero count accepted")

	assert.True(t, p.Has([]byte("key-two")), "key missing")
	assert.False(t, p.Has([]byte("key-remove-me")), "deleted key present")
	assert.Nil(t, p.Get([]byte("/nonexistant")), "nonexistant key has a value")
}
