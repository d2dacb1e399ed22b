// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keva

import (
	"github.com/bitmark-inc/kevad/rpc/ratelimit"
	"github.com/bitmark-inc/kevad/storage"
)

// FilterArguments - arguments for Filter
//
// MaxAge is in blocks, absent selects the default and zero means
// no limit; Count of zero means all
type FilterArguments struct {
	Namespace string `json:"namespace"`
	Regexp    string `json:"regexp"`
	MaxAge    *int   `json:"maxage"`
	From      int    `json:"from"`
	Count     int    `json:"nb"`
	Stat      string `json:"stat"`
}

// FilterReply - matching records or, in stat mode, their number
type FilterReply struct {
	Keys []Info `json:"keys,omitempty"`
	Stat *Stat  `json:"stat,omitempty"`
}

// Filter - list the confirmed keys of a namespace in key order
func (k *Keva) Filter(arguments *FilterArguments, reply *FilterReply) error {
	if err := ratelimit.LimitListing(k.Limiter, arguments.Count); nil != err {
		return err
	}

	ns, err := k.namespace(arguments.Namespace)
	if nil != err {
		return err
	}
	q, err := newQuery(arguments.Regexp, arguments.MaxAge, arguments.From, arguments.Count, arguments.Stat)
	if nil != err {
		return err
	}

	k.Log.Infof("Keva.Filter: namespace: %s  regexp: %q", arguments.Namespace, arguments.Regexp)

	keys := make([]Info, 0)
	count := 0
	blocks := uint64(0)

	k.chain.ReadStore(func(height uint64, store storage.Reader) {
		blocks = height
		err = store.IterateKeys(ns, func(key []byte, record *storage.KeyRecord) error {
			if q.tooOld(height, record.Height) || !q.matches(key) || q.skip() {
				return nil
			}
			if q.stat {
				count += 1
			} else {
				keys = append(keys, confirmedInfo(key, record, nil))
			}
			if q.full() {
				return errStop
			}
			return nil
		})
	})
	if nil != err && errStop != err {
		return err
	}

	if q.stat {
		reply.Stat = &Stat{
			Blocks: blocks,
			Count:  count,
		}
		return nil
	}
	reply.Keys = keys
	return nil
}
