// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/kevad/kevascript"
	"github.com/bitmark-inc/kevad/transactionrecord"
)

// ValidateConsistency - cross check the keva records against the coin set
//
// every namespace that still has a key record must be held by an
// unspent keva coin; a held namespace may have no records left since
// any key, the display name included, can be deleted
//
// only flushed data is examined
func (d *DB) ValidateConsistency() bool {
	held := make(map[string]struct{})
	err := d.ForEachCoin(func(outPoint transactionrecord.OutPoint, coin *transactionrecord.Coin) error {
		op := kevascript.Decode(coin.Out.Script)
		if op.IsKevaOp() {
			held[string(op.Namespace())] = struct{}{}
		}
		return nil
	})
	if nil != err {
		d.log.Errorf("coin scan error: %s", err)
		return false
	}

	ok := true
	reported := make(map[string]struct{})
	err = d.IterateAll(func(ns []byte, key []byte, record *KeyRecord) error {
		if _, found := held[string(ns)]; found {
			return nil
		}
		if _, done := reported[string(ns)]; !done {
			reported[string(ns)] = struct{}{}
			d.log.Warnf("namespace: %x has records but no unspent keva coin", ns)
		}
		ok = false
		return nil
	})
	if nil != err {
		d.log.Errorf("key scan error: %s", err)
		return false
	}
	return ok
}
