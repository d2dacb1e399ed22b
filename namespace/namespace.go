// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package namespace

import (
	"crypto/sha256"
	"encoding/binary"

	"golang.org/x/crypto/ripemd160"

	"github.com/bitmark-inc/kevad/chain"
	"github.com/bitmark-inc/kevad/merkle"
	"github.com/bitmark-inc/kevad/transactionrecord"
)

// Strategy - the rule used to derive a namespace from a funding outpoint
type Strategy int

// both rules must stay available: already confirmed registrations
// were derived with the legacy rule
const (
	// hashes only the transaction id, the output index is ignored
	// so two registrations funded by outputs of one transaction collide
	Legacy Strategy = iota

	// hashes the transaction id and the little endian output index
	Fixed
)

// ForHeight - select the rule in force for a block at height
func ForHeight(parameters *chain.Parameters, height uint64) Strategy {
	if parameters.IsNsFixActive(height) {
		return Fixed
	}
	return Legacy
}

// String - name of the rule for logging
func (s Strategy) String() string {
	switch s {
	case Legacy:
		return "legacy"
	case Fixed:
		return "fixed"
	default:
		return "unknown"
	}
}

// Derive - compute namespace = version ++ RIPEMD160(SHA256(preimage))
func (s Strategy) Derive(outPoint transactionrecord.OutPoint, version byte) []byte {
	preimage := make([]byte, merkle.DigestLength, merkle.DigestLength+4)
	copy(preimage, outPoint.TxId[:])

	if Fixed == s {
		index := make([]byte, 4)
		binary.LittleEndian.PutUint32(index, outPoint.Index)
		preimage = append(preimage, index...)
	}

	return append([]byte{version}, hash160(preimage)...)
}

func hash160(data []byte) []byte {
	sha := sha256.Sum256(data)
	h := ripemd160.New()
	h.Write(sha[:]) // never fails
	return h.Sum(nil)
}
