// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord

import (
	"github.com/bitmark-inc/kevad/fault"
	"github.com/bitmark-inc/kevad/merkle"
	"github.com/bitmark-inc/kevad/transactionrecord"
)

// Block - an unpacked block
type Block struct {
	Header       *Header
	Digest       merkle.Digest
	Transactions []*transactionrecord.Tx
	TxIds        []merkle.Digest
}

// PackBlock - build a block from a header template and its transactions
//
// the transaction count and merkle root of the header are filled in
func PackBlock(header *Header, txs []*transactionrecord.Tx) (PackedBlock, merkle.Digest, error) {
	if len(txs) < MinimumTransactions || len(txs) > MaximumTransactions {
		return nil, merkle.Digest{}, fault.TransactionCountOutOfRange
	}

	txIds := make([]merkle.Digest, len(txs))
	body := make([]byte, 0, 256*len(txs))
	for i, tx := range txs {
		packed, err := tx.Pack()
		if nil != err {
			return nil, merkle.Digest{}, err
		}
		txIds[i] = packed.MakeTxId()
		body = append(body, packed...)
	}

	h := *header
	h.TransactionCount = uint16(len(txs))
	h.MerkleRoot = merkle.Root(txIds)
	packedHeader := h.Pack()

	block := make(PackedBlock, 0, len(packedHeader)+len(body))
	block = append(block, packedHeader[:]...)
	block = append(block, body...)

	return block, packedHeader.Digest(), nil
}

// Unpack - split a packed block into header and transactions
//
// verifies that the transactions match the header count and merkle root
func (record PackedBlock) Unpack() (*Block, error) {
	header, digest, data, err := ExtractHeader(record)
	if nil != err {
		return nil, err
	}

	block := &Block{
		Header:       header,
		Digest:       digest,
		Transactions: make([]*transactionrecord.Tx, 0, header.TransactionCount),
		TxIds:        make([]merkle.Digest, 0, header.TransactionCount),
	}

	seen := make(map[merkle.Digest]struct{})
	for 0 != len(data) {
		if len(block.Transactions) >= int(header.TransactionCount) {
			return nil, fault.TransactionCountMismatch
		}
		tx, n, err := transactionrecord.Packed(data).Unpack()
		if nil != err {
			return nil, err
		}
		txId := transactionrecord.Packed(data[:n]).MakeTxId()
		if _, ok := seen[txId]; ok {
			return nil, fault.TransactionIsDuplicated
		}
		seen[txId] = struct{}{}

		block.Transactions = append(block.Transactions, tx)
		block.TxIds = append(block.TxIds, txId)
		data = data[n:]
	}

	if len(block.Transactions) != int(header.TransactionCount) {
		return nil, fault.TransactionCountMismatch
	}

	if merkle.Root(block.TxIds) != header.MerkleRoot {
		return nil, fault.InvalidMerkleRoot
	}

	return block, nil
}
