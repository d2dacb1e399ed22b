// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kevascript

import (
	"encoding/binary"
)

// OpCode - a single script opcode
type OpCode byte

// keva opcodes
const (
	OpKevaNamespace OpCode = 0xd0
	OpKevaPut       OpCode = 0xd1
	OpKevaDelete    OpCode = 0xd2
)

// generic script opcodes used by the keva prefix
const (
	op0         = 0x00
	opPushData1 = 0x4c
	opPushData2 = 0x4d
	opPushData4 = 0x4e
	op2Drop     = 0x6d
	opDrop      = 0x75
)

// sanity limit on a pushed element, length rules are enforced by
// transaction validation
const maxElementSize = 10000

// Operation - the decoded keva prefix of an output script
type Operation struct {
	op      OpCode
	isKeva  bool
	args    [][]byte
	address []byte
}

// Decode - parse an output script
//
// scripts that do not carry a well formed keva prefix decode as
// "not a keva operation" and are never an error
func Decode(script []byte) Operation {
	if 0 == len(script) {
		return Operation{}
	}

	op := OpCode(script[0])
	argCount := 0
	var drops []byte
	switch op {
	case OpKevaNamespace:
		argCount = 2
		drops = []byte{op2Drop, opDrop}
	case OpKevaPut:
		argCount = 3
		drops = []byte{op2Drop, op2Drop}
	case OpKevaDelete:
		argCount = 2
		drops = []byte{op2Drop, opDrop}
	default:
		return Operation{}
	}

	n := 1
	args := make([][]byte, 0, argCount)
	for i := 0; i < argCount; i += 1 {
		data, count, ok := readPush(script[n:])
		if !ok {
			return Operation{}
		}
		args = append(args, data)
		n += count
	}

	for _, d := range drops {
		if n >= len(script) || script[n] != d {
			return Operation{}
		}
		n += 1
	}

	address := make([]byte, len(script)-n)
	copy(address, script[n:])

	return Operation{
		op:      op,
		isKeva:  true,
		args:    args,
		address: address,
	}
}

// read one data push, returns data, bytes consumed and success
func readPush(script []byte) ([]byte, int, bool) {
	if 0 == len(script) {
		return nil, 0, false
	}
	opcode := script[0]
	n := 1
	length := 0
	switch {
	case op0 == opcode:
		return []byte{}, 1, true
	case opcode < opPushData1:
		length = int(opcode)
	case opPushData1 == opcode:
		if len(script) < 2 {
			return nil, 0, false
		}
		length = int(script[1])
		n = 2
	case opPushData2 == opcode:
		if len(script) < 3 {
			return nil, 0, false
		}
		length = int(binary.LittleEndian.Uint16(script[1:3]))
		n = 3
	case opPushData4 == opcode:
		if len(script) < 5 {
			return nil, 0, false
		}
		l := binary.LittleEndian.Uint32(script[1:5])
		if l > maxElementSize {
			return nil, 0, false
		}
		length = int(l)
		n = 5
	default:
		return nil, 0, false
	}
	if length > maxElementSize || len(script)-n < length {
		return nil, 0, false
	}
	data := make([]byte, length)
	copy(data, script[n:n+length])
	return data, n + length, true
}

// IsKevaOp - true if the script carries a keva operation
func (o Operation) IsKevaOp() bool {
	return o.isKeva
}

// KevaOp - the operation code
func (o Operation) KevaOp() OpCode {
	return o.op
}

// IsNamespaceRegistration - true for a namespace registration
func (o Operation) IsNamespaceRegistration() bool {
	return o.isKeva && OpKevaNamespace == o.op
}

// IsAnyUpdate - true for put or delete
func (o Operation) IsAnyUpdate() bool {
	return o.isKeva && (OpKevaPut == o.op || OpKevaDelete == o.op)
}

// IsPut - true for put
func (o Operation) IsPut() bool {
	return o.isKeva && OpKevaPut == o.op
}

// IsDelete - true for delete
func (o Operation) IsDelete() bool {
	return o.isKeva && OpKevaDelete == o.op
}

// Namespace - the namespace of any keva operation
func (o Operation) Namespace() []byte {
	if !o.isKeva {
		return nil
	}
	return o.args[0]
}

// DisplayName - the display name of a registration
func (o Operation) DisplayName() []byte {
	if !o.IsNamespaceRegistration() {
		return nil
	}
	return o.args[1]
}

// Key - the key of an update
func (o Operation) Key() []byte {
	if !o.IsAnyUpdate() {
		return nil
	}
	return o.args[1]
}

// Value - the value of a put, delete has an empty value
func (o Operation) Value() []byte {
	if !o.IsPut() {
		return []byte{}
	}
	return o.args[2]
}

// Address - the script following the keva prefix
func (o Operation) Address() []byte {
	return o.address
}
