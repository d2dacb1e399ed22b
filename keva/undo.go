// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keva

import (
	"github.com/bitmark-inc/kevad/fault"
	"github.com/bitmark-inc/kevad/storage"
	"github.com/bitmark-inc/kevad/util"
)

// UndoEntry - how to reverse one write
//
// IsNew: the key did not exist, undo is a delete
// otherwise undo restores OldData
type UndoEntry struct {
	Namespace []byte
	Key       []byte
	IsNew     bool
	OldData   *storage.KeyRecord
}

// Undo - the undo entries of a block in application order
type Undo []UndoEntry

// Pack - binary form of the entries
func (undo Undo) Pack() []byte {
	buffer := util.AppendUint64(nil, uint64(len(undo)))
	for _, e := range undo {
		buffer = util.AppendBytes(buffer, e.Namespace)
		buffer = util.AppendBytes(buffer, e.Key)
		if e.IsNew {
			buffer = append(buffer, 1)
		} else {
			buffer = append(buffer, 0)
			buffer = util.AppendBytes(buffer, e.OldData.Pack())
		}
	}
	return buffer
}

// UnpackUndo - inverse of Pack
//
// returns the entries and the number of bytes consumed
func UnpackUndo(buffer []byte) (Undo, int, error) {
	count, n := util.FromVarint64(buffer)
	if 0 == n {
		return nil, 0, fault.UndoReplayFailed
	}
	total := n

	// each entry is at least three bytes
	if count > uint64(len(buffer)) {
		return nil, 0, fault.UndoReplayFailed
	}

	undo := make(Undo, 0, count)
	for i := uint64(0); i < count; i += 1 {
		ns, n := util.ReadBytes(buffer[total:])
		if 0 == n {
			return nil, 0, fault.UndoReplayFailed
		}
		total += n

		key, n := util.ReadBytes(buffer[total:])
		if 0 == n {
			return nil, 0, fault.UndoReplayFailed
		}
		total += n

		if total >= len(buffer) {
			return nil, 0, fault.UndoReplayFailed
		}
		isNew := 1 == buffer[total]
		total += 1

		e := UndoEntry{
			Namespace: ns,
			Key:       key,
			IsNew:     isNew,
		}
		if !isNew {
			packed, n := util.ReadBytes(buffer[total:])
			if 0 == n {
				return nil, 0, fault.UndoReplayFailed
			}
			total += n
			record, err := storage.UnpackKeyRecord(packed)
			if nil != err {
				return nil, 0, fault.UndoReplayFailed
			}
			e.OldData = record
		}
		undo = append(undo, e)
	}
	return undo, total, nil
}
