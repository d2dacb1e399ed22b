// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord

import (
	"encoding/binary"
	"time"

	"github.com/bitmark-inc/kevad/fault"
	"github.com/bitmark-inc/kevad/merkle"
)

// PackedHeader - use fix size array to simplify validation
type PackedHeader [totalHeaderSize]byte

// PackedBlock - packed records are just a byte slice
type PackedBlock []byte

// currently supported block version
const (
	Version            = 1
	MinimumVersion     = 1
	MinimumBlockNumber = 1 // first block on an empty chain
)

// maximum transactions in a block
// limited by uint16 field
const (
	MinimumTransactions = 1
	MaximumTransactions = 10000
)

// byte sizes for various fields
const (
	VersionSize          = 2                   // Block version number
	TransactionCountSize = 2                   // Count of transactions
	NumberSize           = 8                   // This block's height
	PreviousBlockSize    = merkle.DigestLength // SHA256d of the previous block header
	MerkleRootSize       = merkle.DigestLength // SHA256d merkle root of all the transactions in the block
	TimestampSize        = 8                   // Current timestamp as seconds since 1970-01-01T00:00 UTC
)

// offsets of the fields
const (
	versionOffset          = 0
	transactionCountOffset = versionOffset + VersionSize
	numberOffset           = transactionCountOffset + TransactionCountSize
	previousBlockOffset    = numberOffset + NumberSize
	merkleRootOffset       = previousBlockOffset + PreviousBlockSize
	timestampOffset        = merkleRootOffset + MerkleRootSize

	// to set size of header array
	totalHeaderSize = timestampOffset + TimestampSize // total bytes in the header
)

// allowed clock skew for a block timestamp
const maximumFutureTime = 2 * time.Hour

// Header - the unpacked header structure
type Header struct {
	Version          uint16        `json:"version"`
	TransactionCount uint16        `json:"transactionCount"`
	Number           uint64        `json:"number,string"`
	PreviousBlock    merkle.Digest `json:"previousBlock"`
	MerkleRoot       merkle.Digest `json:"merkleRoot"`
	Timestamp        uint64        `json:"timestamp,string"`
}

// ExtractHeader - extract a header from the front of a []byte
func ExtractHeader(block []byte) (*Header, merkle.Digest, []byte, error) {
	if len(block) < totalHeaderSize {
		return nil, merkle.Digest{}, nil, fault.InvalidBlockHeaderSize
	}
	packedHeader := PackedHeader{}
	copy(packedHeader[:], block[:totalHeaderSize])

	header, err := packedHeader.Unpack()
	if nil != err {
		return nil, merkle.Digest{}, nil, err
	}

	return header, packedHeader.Digest(), block[totalHeaderSize:], nil
}

// Unpack - turn a byte slice into a record
func (record PackedHeader) Unpack() (*Header, error) {

	header := &Header{}

	header.Version = binary.LittleEndian.Uint16(record[versionOffset:])
	header.TransactionCount = binary.LittleEndian.Uint16(record[transactionCountOffset:])
	header.Number = binary.LittleEndian.Uint64(record[numberOffset:])

	if header.Version < MinimumVersion || header.Number < MinimumBlockNumber {
		return nil, fault.InvalidBlockHeaderVersion
	}

	if header.TransactionCount < MinimumTransactions || header.TransactionCount > MaximumTransactions {
		return nil, fault.TransactionCountOutOfRange
	}

	err := merkle.DigestFromBytes(&header.PreviousBlock, record[previousBlockOffset:merkleRootOffset])
	if nil != err {
		return nil, err
	}

	err = merkle.DigestFromBytes(&header.MerkleRoot, record[merkleRootOffset:timestampOffset])
	if nil != err {
		return nil, err
	}

	header.Timestamp = binary.LittleEndian.Uint64(record[timestampOffset:])

	if header.Timestamp > uint64(time.Now().Add(maximumFutureTime).Unix()) {
		return nil, fault.InvalidBlockHeaderTimestamp
	}

	return header, nil
}

// Digest - digest for a packed header
func (record PackedHeader) Digest() merkle.Digest {
	return merkle.NewDigest(record[:])
}

// Pack - turn a record into an array of bytes
func (header *Header) Pack() PackedHeader {
	buffer := PackedHeader{}

	binary.LittleEndian.PutUint16(buffer[versionOffset:], header.Version)
	binary.LittleEndian.PutUint16(buffer[transactionCountOffset:], header.TransactionCount)
	binary.LittleEndian.PutUint64(buffer[numberOffset:], header.Number)

	// these are in little endian order so can just copy them
	copy(buffer[previousBlockOffset:], header.PreviousBlock[:])
	copy(buffer[merkleRootOffset:], header.MerkleRoot[:])

	binary.LittleEndian.PutUint64(buffer[timestampOffset:], header.Timestamp)

	return buffer
}
