// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/kevad/transactionrecord"
	"github.com/bitmark-inc/logger"
)

// GetCoin - fetch an unspent output
func (d *DB) GetCoin(outPoint transactionrecord.OutPoint) (*transactionrecord.Coin, bool) {
	packed := d.Pool.Coins.Get(outPoint.Bytes())
	if nil == packed {
		return nil, false
	}
	coin, err := transactionrecord.Packed(packed).UnpackCoin()
	logger.PanicIfError("storage.GetCoin", err)
	return coin, true
}

// PutCoin - add an unspent output
func (d *DB) PutCoin(outPoint transactionrecord.OutPoint, coin *transactionrecord.Coin) {
	d.Pool.Coins.Put(outPoint.Bytes(), coin.Pack())
}

// SpendCoin - remove an unspent output
func (d *DB) SpendCoin(outPoint transactionrecord.OutPoint) {
	d.Pool.Coins.Delete(outPoint.Bytes())
}

// ForEachCoin - visit every flushed unspent output
func (d *DB) ForEachCoin(f func(outPoint transactionrecord.OutPoint, coin *transactionrecord.Coin) error) error {
	cursor := d.Pool.Coins.NewFetchCursor()
	return cursor.Map(func(k []byte, v []byte) error {
		outPoint, ok := transactionrecord.OutPointFromBytes(k)
		if !ok {
			return nil
		}
		coin, err := transactionrecord.Packed(v).UnpackCoin()
		if nil != err {
			return err
		}
		return f(outPoint, coin)
	})
}
