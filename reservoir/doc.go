// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package reservoir - the pool of unconfirmed transactions
//
// 1. admission runs keva validation against the chain tip plus the
//    outputs of other pooled transactions
// 2. admitted keva operations are visible through the Overlay
// 3. removals are announced to subscribed listeners, tagged with
//    the reason so that name conflicts can be told apart
//
// the Pool mutex is the pool lock, Overlay is only touched while it
// is held
package reservoir
