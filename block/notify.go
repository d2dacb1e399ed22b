// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package block

import (
	"github.com/bitmark-inc/kevad/keva"
	"github.com/bitmark-inc/kevad/merkle"
)

// holds the notifications of a block until its writes are durable
//
// only used while the chain lock is held for writing
type notifyQueue struct {
	target keva.Notifier
	queued []func(keva.Notifier)
}

func (q *notifyQueue) NamespaceCreated(txId merkle.Digest, height uint64, ns []byte, displayName []byte) {
	q.queued = append(q.queued, func(n keva.Notifier) {
		n.NamespaceCreated(txId, height, ns, displayName)
	})
}

func (q *notifyQueue) KeyUpdated(txId merkle.Digest, height uint64, ns []byte, key []byte, value []byte) {
	q.queued = append(q.queued, func(n keva.Notifier) {
		n.KeyUpdated(txId, height, ns, key, value)
	})
}

func (q *notifyQueue) KeyDeleted(txId merkle.Digest, height uint64, ns []byte, key []byte) {
	q.queued = append(q.queued, func(n keva.Notifier) {
		n.KeyDeleted(txId, height, ns, key)
	})
}

// deliver everything queued
func (q *notifyQueue) release() {
	queued := q.queued
	q.queued = nil
	if nil == q.target {
		return
	}
	for _, f := range queued {
		f(q.target)
	}
}

// forget everything queued
func (q *notifyQueue) discard() {
	q.queued = nil
}
