// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - the ordered key value database holding the coin
// set, the keva key records, the associated namespace index and the
// block undo records
//
// all writes go into a single batch that is made durable by Flush;
// point reads see the batch, iterators only see flushed data
package storage
