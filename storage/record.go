// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/kevad/fault"
	"github.com/bitmark-inc/kevad/merkle"
	"github.com/bitmark-inc/kevad/transactionrecord"
	"github.com/bitmark-inc/kevad/util"
)

const outPointLength = merkle.DigestLength + 4

// KeyRecord - the confirmed value of a single key
type KeyRecord struct {
	Value    []byte
	OutPoint transactionrecord.OutPoint
	Height   uint64
}

// Pack - binary form of a record
//
//   varint length ++ value ++ outpoint(36) ++ varint height
func (record *KeyRecord) Pack() []byte {
	buffer := util.AppendBytes(nil, record.Value)
	buffer = append(buffer, record.OutPoint.Bytes()...)
	return util.AppendUint64(buffer, record.Height)
}

// UnpackKeyRecord - inverse of Pack
func UnpackKeyRecord(buffer []byte) (*KeyRecord, error) {
	value, n := util.ReadBytes(buffer)
	if 0 == n {
		return nil, fault.InvalidTransaction
	}
	buffer = buffer[n:]

	if len(buffer) < outPointLength {
		return nil, fault.InvalidTransaction
	}
	outPoint, _ := transactionrecord.OutPointFromBytes(buffer[:outPointLength])
	buffer = buffer[outPointLength:]

	height, n := util.FromVarint64(buffer)
	if 0 == n {
		return nil, fault.InvalidTransaction
	}

	return &KeyRecord{
		Value:    value,
		OutPoint: outPoint,
		Height:   height,
	}, nil
}
