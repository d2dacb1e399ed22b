// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"github.com/bitmark-inc/kevad/merkle"
	"github.com/bitmark-inc/kevad/transactionrecord"
)

// RemovalListener - called for every removed transaction
//
// runs with the pool lock held and must not call back into the pool
type RemovalListener func(tx *transactionrecord.Tx, txId merkle.Digest, reason RemovalReason)

// Subscribe - add a removal listener
//
// returns the id needed to unsubscribe
func (p *Pool) Subscribe(listener RemovalListener) int {
	p.Lock()
	defer p.Unlock()

	p.nextListener += 1
	p.listeners[p.nextListener] = listener
	return p.nextListener
}

// Unsubscribe - remove a listener, unknown ids are ignored
func (p *Pool) Unsubscribe(id int) {
	p.Lock()
	defer p.Unlock()

	delete(p.listeners, id)
}
