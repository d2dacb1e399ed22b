// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keva

import (
	"github.com/bitmark-inc/kevad/chain"
	"github.com/bitmark-inc/kevad/fault"
	"github.com/bitmark-inc/logger"
)

// Checker - the database cross check
type Checker interface {
	Flush() error
	ValidateConsistency() bool
}

// CheckKevaDB - run the database cross check after connecting a block
//
// interval: -1 never, 0 every block, N when height is a multiple of N
//
// returns false if the check was not run
func CheckKevaDB(log *logger.L, height uint64, interval int, parameters *chain.Parameters, store Checker) bool {
	if interval < 0 {
		return false
	}
	if interval > 0 && 0 != height%uint64(interval) {
		return false
	}

	log.Debugf("checking keva database at height: %d", height)

	err := store.Flush()
	logger.PanicIfError("keva.CheckKevaDB flush", err)

	if store.ValidateConsistency() {
		return true
	}

	if parameters.InKnownInconsistency(height) {
		log.Warnf("keva database inconsistent at height: %d  (known inconsistency)", height)
		return true
	}

	log.Criticalf("keva database inconsistent at height: %d", height)
	logger.Panicf("keva: %s at height: %d", fault.KevaDatabaseInconsistent, height)
	return true
}
