// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package namespace

import (
	"bytes"
	"crypto/sha256"

	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/kevad/constants"
	"github.com/bitmark-inc/kevad/fault"
)

const checksumLength = 4

// Encode - base58check text form of a namespace identifier
func Encode(namespace []byte) string {
	buffer := make([]byte, 0, len(namespace)+checksumLength)
	buffer = append(buffer, namespace...)
	buffer = append(buffer, checksum(namespace)...)
	return base58.Encode(buffer)
}

// Decode - parse the text form of a namespace identifier
//
// the leading byte must equal version
func Decode(text string, version byte) ([]byte, error) {
	if "" == text {
		return nil, fault.InvalidNamespace
	}

	buffer, err := base58.Decode(text)
	if nil != err {
		return nil, fault.InvalidNamespace
	}
	if len(buffer) <= checksumLength+1 {
		return nil, fault.InvalidNamespace
	}

	n := len(buffer) - checksumLength
	namespace := buffer[:n]
	if !bytes.Equal(checksum(namespace), buffer[n:]) {
		return nil, fault.InvalidNamespace
	}
	if version != namespace[0] {
		return nil, fault.InvalidNamespace
	}
	if len(namespace) > constants.MaxNamespaceLength {
		return nil, fault.InvalidNamespaceLength
	}
	return namespace, nil
}

func checksum(data []byte) []byte {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return second[:checksumLength]
}
