// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keva

import (
	"bytes"

	"github.com/bitmark-inc/kevad/namespace"
	"github.com/bitmark-inc/kevad/reservoir"
	"github.com/bitmark-inc/kevad/rpc/ratelimit"
)

// the operations reported by Pending
const (
	OpNamespace = "keva_namespace"
	OpPut       = "keva_put"
	OpDelete    = "keva_delete"
)

// PendingArguments - arguments for Pending
//
// an empty namespace lists every namespace
type PendingArguments struct {
	Namespace string `json:"namespace"`
}

// PendingEntry - one unconfirmed keva operation
type PendingEntry struct {
	Op          string `json:"op"`
	Namespace   string `json:"namespace"`
	DisplayName string `json:"display_name,omitempty"`
	Key         string `json:"key,omitempty"`
	Value       string `json:"value,omitempty"`
	TxId        string `json:"txid"`
}

// PendingReply - unconfirmed operations, registrations first, each
// in admission order
type PendingReply struct {
	Entries []PendingEntry `json:"entries"`
}

// Pending - list the unconfirmed keva operations
func (k *Keva) Pending(arguments *PendingArguments, reply *PendingReply) error {
	if err := ratelimit.Limit(k.Limiter); nil != err {
		return err
	}

	var ns []byte
	if "" != arguments.Namespace {
		var err error
		ns, err = namespace.Decode(arguments.Namespace, k.version)
		if nil != err {
			return err
		}
	}

	k.Log.Infof("Keva.Pending: namespace: %q", arguments.Namespace)

	entries := make([]PendingEntry, 0)
	k.pool.ReadOverlay(func(overlay *reservoir.Overlay) {
		for _, n := range overlay.ListNamespaces() {
			if nil != ns && !bytes.Equal(ns, n.Namespace) {
				continue
			}
			entries = append(entries, PendingEntry{
				Op:          OpNamespace,
				Namespace:   namespace.Encode(n.Namespace),
				DisplayName: string(n.DisplayName),
				TxId:        n.TxId.String(),
			})
		}
		for _, w := range overlay.ListAll(ns) {
			op := OpPut
			if 0 == len(w.Value) {
				op = OpDelete
			}
			entries = append(entries, PendingEntry{
				Op:        op,
				Namespace: namespace.Encode(w.Namespace),
				Key:       string(w.Key),
				Value:     string(w.Value),
				TxId:      w.TxId.String(),
			})
		}
	})

	reply.Entries = entries
	return nil
}
