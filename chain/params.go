// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"github.com/bitmark-inc/kevad/fault"
)

// CheckKevaDBDisabled - value of check interval that turns the check off
const CheckKevaDBDisabled = -1

// Parameters - consensus and policy values that differ between chains
type Parameters struct {
	Name string

	// first height at which the corrected namespace derivation is enforced
	NsFixHeight uint64

	// minimum value locked in a keva output
	MinimumLockedAmount uint64

	// leading byte of every namespace identifier
	NamespaceVersion byte

	// default for the database consistency check interval
	//   -1 = never, 0 = every block, N = every N blocks
	DefaultCheckKevaDB int

	// heights where the consistency check is known to fail
	// a failure in this window is only logged
	InconsistentFrom uint64
	InconsistentTo   uint64
}

// KevaLockedAmount - minimum amount locked in keva outputs on all chains
const KevaLockedAmount = 1000000

// NamespaceVersionByte - produces namespace identifiers starting with 'N'
const NamespaceVersionByte = 53

var allParameters = map[string]*Parameters{
	Kevacoin: {
		Name:                Kevacoin,
		NsFixHeight:         250000,
		MinimumLockedAmount: KevaLockedAmount,
		NamespaceVersion:    NamespaceVersionByte,
		DefaultCheckKevaDB:  CheckKevaDBDisabled,
		InconsistentFrom:    139000,
		InconsistentTo:      180000,
	},
	Testnet: {
		Name:                Testnet,
		NsFixHeight:         40000,
		MinimumLockedAmount: KevaLockedAmount,
		NamespaceVersion:    NamespaceVersionByte,
		DefaultCheckKevaDB:  CheckKevaDBDisabled,
	},
	Regtest: {
		Name:                Regtest,
		NsFixHeight:         432,
		MinimumLockedAmount: KevaLockedAmount,
		NamespaceVersion:    NamespaceVersionByte,
		DefaultCheckKevaDB:  0,
	},
}

// ParametersFor - fetch the parameters of a named chain
func ParametersFor(name string) (*Parameters, error) {
	p, ok := allParameters[name]
	if !ok {
		return nil, fault.InvalidChain
	}
	return p, nil
}

// IsNsFixActive - true if blocks at this height use the fixed derivation
func (p *Parameters) IsNsFixActive(height uint64) bool {
	return height >= p.NsFixHeight
}

// InKnownInconsistency - true if a consistency failure at this height
// is expected
func (p *Parameters) InKnownInconsistency(height uint64) bool {
	if 0 == p.InconsistentTo {
		return false
	}
	return height >= p.InconsistentFrom && height <= p.InconsistentTo
}
