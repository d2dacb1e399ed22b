// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keva - the consensus rules of the key/value layer
//
// CheckTransaction decides whether the keva operation carried by a
// transaction is valid against the coin set, an Applier writes
// validated operations to the store and records how to undo them
//
// callers must hold the chain state lock
package keva
