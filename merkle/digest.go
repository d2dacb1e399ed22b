// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/bitmark-inc/kevad/fault"
)

// DigestLength - number of bytes in the digest
const DigestLength = 32

// Digest - type for a digest
// stored as little endian byte array
// represented as big endian hex value for print and for JSON
// to convert to bytes just use d[:]
type Digest [DigestLength]byte

// NewDigest - create a double SHA-256 digest from a byte slice
func NewDigest(record []byte) Digest {
	first := sha256.Sum256(record)
	return sha256.Sum256(first[:])
}

// internal function to return a reversed byte order copy of a digest
func reversed(d Digest) []byte {
	result := make([]byte, DigestLength)
	for i := 0; i < DigestLength; i += 1 {
		result[i] = d[DigestLength-1-i]
	}
	return result
}

// String - convert a binary digest to hex string for use by the fmt package (for %s)
//
// the stored version is in little endian, but the output string is big endian
func (digest Digest) String() string {
	return hex.EncodeToString(reversed(digest))
}

// GoString - convert a binary digest to big endian hex string for use by the fmt package (for %#v)
func (digest Digest) GoString() string {
	return "<SHA256d:" + hex.EncodeToString(reversed(digest)) + ">"
}

// Scan - convert a big endian hex representation to a digest for use by the format package scan routines
func (digest *Digest) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'F' {
			return true
		}
		if c >= 'a' && c <= 'f' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	return digest.UnmarshalText(token)
}

// MarshalText - convert digest to big endian hex text
func (digest Digest) MarshalText() ([]byte, error) {
	r := reversed(digest)
	buffer := make([]byte, hex.EncodedLen(len(r)))
	hex.Encode(buffer, r)
	return buffer, nil
}

// UnmarshalText - convert big endian hex text into a digest
func (digest *Digest) UnmarshalText(s []byte) error {
	if DigestLength != hex.DecodedLen(len(s)) {
		return fault.InvalidTransaction
	}
	buffer := make([]byte, DigestLength)
	byteCount, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	if DigestLength != byteCount {
		return fault.InvalidTransaction
	}
	for i, v := range buffer {
		digest[DigestLength-1-i] = v
	}
	return nil
}

// DigestFromBytes - convert and validate little endian binary byte slice to a digest
func DigestFromBytes(digest *Digest, buffer []byte) error {
	if DigestLength != len(buffer) {
		return fault.InvalidTransaction
	}
	copy(digest[:], buffer)
	return nil
}
