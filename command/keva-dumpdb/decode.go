// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/kevad/namespace"
	"github.com/bitmark-inc/kevad/storage"
)

// split a length prefixed leading item from the rest
func splitPrefixed(buffer []byte) ([]byte, []byte, bool) {
	if 0 == len(buffer) {
		return nil, nil, false
	}
	n := int(buffer[0])
	if len(buffer) < 1+n {
		return nil, nil, false
	}
	return buffer[1 : 1+n], buffer[1+n:], true
}

// readable form of the keva pools, false for other pools or bad data
func decodeElement(tag string, e storage.Element) (string, bool) {
	switch tag {
	case "K":
		ns, key, ok := splitPrefixed(e.Key)
		if !ok {
			return "", false
		}
		record, err := storage.UnpackKeyRecord(e.Value)
		if nil != err {
			return "", false
		}
		return fmt.Sprintf("ns: %s  key: %q  value: %q  height: %d  outpoint: %s:%d",
			namespace.Encode(ns), key, record.Value, record.Height, record.OutPoint.TxId, record.OutPoint.Index), true

	case "G":
		target, ns, ok := splitPrefixed(e.Key)
		if !ok {
			return "", false
		}
		return fmt.Sprintf("target: %s  member: %s", target, namespace.Encode(ns)), true

	default:
		return "", false
	}
}
