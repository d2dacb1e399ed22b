// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

// names of all chains
const (
	Kevacoin = "kevacoin"
	Testnet  = "testnet"
	Regtest  = "regtest"
)

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Kevacoin, Testnet, Regtest:
		return true
	default:
		return false
	}
}
