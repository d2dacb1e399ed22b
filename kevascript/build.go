// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kevascript

import (
	"encoding/binary"
)

// NamespaceScript - registration: OP_KEVA_NAMESPACE ns name OP_2DROP OP_DROP address
func NamespaceScript(namespace []byte, displayName []byte, address []byte) []byte {
	script := []byte{byte(OpKevaNamespace)}
	script = appendPush(script, namespace)
	script = appendPush(script, displayName)
	script = append(script, op2Drop, opDrop)
	return append(script, address...)
}

// PutScript - update: OP_KEVA_PUT ns key value OP_2DROP OP_2DROP address
func PutScript(namespace []byte, key []byte, value []byte, address []byte) []byte {
	script := []byte{byte(OpKevaPut)}
	script = appendPush(script, namespace)
	script = appendPush(script, key)
	script = appendPush(script, value)
	script = append(script, op2Drop, op2Drop)
	return append(script, address...)
}

// DeleteScript - delete: OP_KEVA_DELETE ns key OP_2DROP OP_DROP address
func DeleteScript(namespace []byte, key []byte, address []byte) []byte {
	script := []byte{byte(OpKevaDelete)}
	script = appendPush(script, namespace)
	script = appendPush(script, key)
	script = append(script, op2Drop, opDrop)
	return append(script, address...)
}

// minimal push encoding
func appendPush(script []byte, data []byte) []byte {
	length := len(data)
	switch {
	case 0 == length:
		return append(script, op0)
	case length < opPushData1:
		script = append(script, byte(length))
	case length <= 0xff:
		script = append(script, opPushData1, byte(length))
	case length <= 0xffff:
		b := make([]byte, 2)
		binary.LittleEndian.PutUint16(b, uint16(length))
		script = append(script, opPushData2)
		script = append(script, b...)
	default:
		b := make([]byte, 4)
		binary.LittleEndian.PutUint32(b, uint32(length))
		script = append(script, opPushData4)
		script = append(script, b...)
	}
	return append(script, data...)
}
