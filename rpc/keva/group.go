// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keva

import (
	"bytes"
	"sort"

	"github.com/bitmark-inc/kevad/constants"
	"github.com/bitmark-inc/kevad/group"
	"github.com/bitmark-inc/kevad/namespace"
	"github.com/bitmark-inc/kevad/rpc/ratelimit"
	"github.com/bitmark-inc/kevad/storage"
)

// GroupGetArguments - arguments for GroupGet
type GroupGetArguments struct {
	Namespace string `json:"namespace"`
	Key       string `json:"key"`
	Initiator string `json:"initiator"`
}

// GroupGet - the value of a key across the group of a namespace
func (k *Keva) GroupGet(arguments *GroupGetArguments, reply *Info) error {
	if err := ratelimit.Limit(k.Limiter); nil != err {
		return err
	}

	initiator, err := group.ParseInitiator(arguments.Initiator)
	if nil != err {
		return err
	}
	ns, err := k.namespace(arguments.Namespace)
	if nil != err {
		return err
	}
	key, err := checkKey(arguments.Key)
	if nil != err {
		return err
	}

	k.Log.Infof("Keva.GroupGet: namespace: %s  key: %q  initiator: %q", arguments.Namespace, arguments.Key, arguments.Initiator)

	members := k.resolver.ResolveGroup(ns, initiator)
	value, found := k.resolver.ResolveValue(members, key)
	if !found {
		*reply = Info{
			Key: arguments.Key,
		}
		return nil
	}

	if value.Pending {
		*reply = Info{
			Key:       arguments.Key,
			Value:     string(value.Value),
			Height:    pendingHeight(),
			Namespace: namespace.Encode(value.Namespace),
		}
		return nil
	}

	*reply = confirmedInfo(key, value.Record, value.Namespace)
	return nil
}

// ---

// GroupFilterArguments - arguments for GroupFilter
type GroupFilterArguments struct {
	Namespace string `json:"namespace"`
	Initiator string `json:"initiator"`
	Regexp    string `json:"regexp"`
	MaxAge    *int   `json:"maxage"`
	From      int    `json:"from"`
	Count     int    `json:"nb"`
	Stat      string `json:"stat"`
}

// a key with the most recent record found in the group
type groupKey struct {
	ns     []byte
	record *storage.KeyRecord
}

// GroupFilter - list the confirmed keys of every namespace in a group
//
// a key present in several namespaces is shown once with its most
// recent record; from and nb count records before this merge
func (k *Keva) GroupFilter(arguments *GroupFilterArguments, reply *FilterReply) error {
	if err := ratelimit.LimitListing(k.Limiter, arguments.Count); nil != err {
		return err
	}

	initiator, err := group.ParseInitiator(arguments.Initiator)
	if nil != err {
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

	k.Log.Infof("Keva.GroupFilter: namespace: %s  initiator: %q  regexp: %q", arguments.Namespace, arguments.Initiator, arguments.Regexp)

	members := k.resolver.ResolveGroup(ns, initiator)

	displayKey := []byte(constants.DisplayNameKey)
	keys := make(map[string]groupKey)
	count := 0
	blocks := uint64(0)

	k.chain.ReadStore(func(height uint64, store storage.Reader) {
		blocks = height

	scan:
		for _, member := range members {
			err = store.IterateKeys(member, func(key []byte, record *storage.KeyRecord) error {
				if bytes.Equal(displayKey, key) {
					return nil
				}
				if q.tooOld(height, record.Height) || !q.matches(key) || q.skip() {
					return nil
				}
				if q.stat {
					count += 1
				} else if previous, ok := keys[string(key)]; !ok || record.Height > previous.record.Height {
					keys[string(key)] = groupKey{
						ns:     member,
						record: record,
					}
				}
				if q.full() {
					return errStop
				}
				return nil
			})
			if nil != err {
				break scan
			}
		}
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

	sorted := make([]string, 0, len(keys))
	for key := range keys {
		sorted = append(sorted, key)
	}
	sort.Strings(sorted)

	reply.Keys = make([]Info, 0, len(sorted))
	for _, key := range sorted {
		e := keys[key]
		reply.Keys = append(reply.Keys, confirmedInfo([]byte(key), e.record, e.ns))
	}
	return nil
}

// ---

// GroupShowArguments - arguments for GroupShow
type GroupShowArguments struct {
	Namespace string `json:"namespace"`
	MaxAge    *int   `json:"maxage"`
	From      int    `json:"from"`
	Count     int    `json:"nb"`
	Stat      string `json:"stat"`
}

// NamespaceInfo - one member of a group
//
// Initiator is true when the listed namespace created the association
type NamespaceInfo struct {
	NamespaceId string `json:"namespaceId"`
	DisplayName string `json:"display_name"`
	TxId        string `json:"txid"`
	Height      int64  `json:"height"`
	Initiator   bool   `json:"initiator"`
}

// GroupShowReply - the members or, in stat mode, their number
type GroupShowReply struct {
	Namespaces []NamespaceInfo `json:"namespaces,omitempty"`
	Stat       *Stat           `json:"stat,omitempty"`
}

// GroupShow - list the namespaces associated with a namespace
//
// pending associations report height -1 and are not subject to maxage
func (k *Keva) GroupShow(arguments *GroupShowArguments, reply *GroupShowReply) error {
	if err := ratelimit.LimitListing(k.Limiter, arguments.Count); nil != err {
		return err
	}

	ns, err := k.namespace(arguments.Namespace)
	if nil != err {
		return err
	}
	q, err := newQuery("", arguments.MaxAge, arguments.From, arguments.Count, arguments.Stat)
	if nil != err {
		return err
	}

	k.Log.Infof("Keva.GroupShow: namespace: %s", arguments.Namespace)

	members := k.resolver.Members(ns, group.All)

	displayKey := []byte(constants.DisplayNameKey)
	namespaces := make([]NamespaceInfo, 0, len(members))
	count := 0
	blocks := uint64(0)

	k.chain.ReadStore(func(height uint64, store storage.Reader) {
		blocks = height

		for _, m := range members {
			if nil != m.Record && q.tooOld(height, m.Record.Height) {
				continue
			}
			if q.skip() {
				continue
			}

			if q.stat {
				count += 1
			} else {
				info := NamespaceInfo{
					NamespaceId: namespace.Encode(m.Namespace),
					TxId:        m.TxId.String(),
					Height:      -1,
					Initiator:   group.OtherConfirmed == m.Source,
				}
				if nil != m.Record {
					info.Height = int64(m.Record.Height)
				}
				if record, ok := store.GetKeyValue(m.Namespace, displayKey); ok {
					info.DisplayName = string(record.Value)
				}
				namespaces = append(namespaces, info)
			}

			if q.full() {
				break
			}
		}
	})

	if q.stat {
		reply.Stat = &Stat{
			Blocks: blocks,
			Count:  count,
		}
		return nil
	}
	reply.Namespaces = namespaces
	return nil
}
