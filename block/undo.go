// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package block

import (
	"github.com/bitmark-inc/kevad/fault"
	"github.com/bitmark-inc/kevad/keva"
	"github.com/bitmark-inc/kevad/merkle"
	"github.com/bitmark-inc/kevad/transactionrecord"
	"github.com/bitmark-inc/kevad/util"
)

const outPointSize = merkle.DigestLength + 4

// an output spent by a block
type spentCoin struct {
	outPoint transactionrecord.OutPoint
	coin     *transactionrecord.Coin
}

// everything needed to disconnect a block
//
// packed as:
//   keva undo
//   varint count
//   count * (outpoint ++ varint length ++ packed coin)
type blockUndo struct {
	keva  keva.Undo
	spent []spentCoin
}

func (u *blockUndo) pack() []byte {
	buffer := u.keva.Pack()
	buffer = util.AppendUint64(buffer, uint64(len(u.spent)))
	for _, s := range u.spent {
		buffer = append(buffer, s.outPoint.Bytes()...)
		buffer = util.AppendBytes(buffer, s.coin.Pack())
	}
	return buffer
}

func unpackBlockUndo(buffer []byte) (*blockUndo, error) {
	kevaUndo, n, err := keva.UnpackUndo(buffer)
	if nil != err {
		return nil, err
	}
	buffer = buffer[n:]

	count, n := util.FromVarint64(buffer)
	if 0 == n || count > uint64(len(buffer)) {
		return nil, fault.UndoReplayFailed
	}
	buffer = buffer[n:]

	u := &blockUndo{
		keva:  kevaUndo,
		spent: make([]spentCoin, 0, count),
	}
	for i := uint64(0); i < count; i += 1 {
		if len(buffer) < outPointSize {
			return nil, fault.UndoReplayFailed
		}
		outPoint, _ := transactionrecord.OutPointFromBytes(buffer[:outPointSize])
		buffer = buffer[outPointSize:]

		packed, n := util.ReadBytes(buffer)
		if 0 == n {
			return nil, fault.UndoReplayFailed
		}
		buffer = buffer[n:]

		coin, err := transactionrecord.Packed(packed).UnpackCoin()
		if nil != err {
			return nil, fault.UndoReplayFailed
		}
		u.spent = append(u.spent, spentCoin{
			outPoint: outPoint,
			coin:     coin,
		})
	}
	if 0 != len(buffer) {
		return nil, fault.UndoReplayFailed
	}
	return u, nil
}
