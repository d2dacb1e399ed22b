// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package group

import (
	"bytes"
	"sort"

	"github.com/bitmark-inc/kevad/constants"
	"github.com/bitmark-inc/kevad/fault"
	"github.com/bitmark-inc/kevad/merkle"
	"github.com/bitmark-inc/kevad/namespace"
	"github.com/bitmark-inc/kevad/reservoir"
	"github.com/bitmark-inc/kevad/storage"
	"github.com/bitmark-inc/logger"
)

// Initiator - which side created an association
type Initiator int

// the initiator filters
const (
	All   Initiator = iota // both directions
	Self                   // associations written by the namespace itself
	Other                  // associations written by other namespaces
)

// ParseInitiator - convert the RPC selector, empty means all
func ParseInitiator(s string) (Initiator, error) {
	switch s {
	case "", "all":
		return All, nil
	case "self":
		return Self, nil
	case "other":
		return Other, nil
	default:
		return All, fault.InvalidInitiator
	}
}

// Source - where a member was found
type Source int

// the member sources, in scan order
const (
	OtherConfirmed Source = iota
	SelfPending
	SelfConfirmed
)

// ChainReader - runs f while holding the chain state lock
type ChainReader interface {
	ReadStore(f func(height uint64, store storage.Reader))
}

// PoolReader - runs f while holding the pool lock
type PoolReader interface {
	ReadOverlay(f func(overlay *reservoir.Overlay))
}

// Member - one association of a group
//
// Record is the confirmed association record, nil for a pending one
type Member struct {
	Namespace []byte
	Source    Source
	Record    *storage.KeyRecord
	TxId      merkle.Digest
}

// Value - the resolved value of a key
//
// a pending value has height -1 and no outpoint
type Value struct {
	Namespace []byte
	Value     []byte
	Height    int64
	Pending   bool
	Record    *storage.KeyRecord
	TxId      merkle.Digest
}

// Resolver - computes namespace groups
type Resolver struct {
	log     *logger.L
	chain   ChainReader
	pool    PoolReader
	version byte
}

// New - create a resolver
func New(log *logger.L, chain ChainReader, pool PoolReader, version byte) *Resolver {
	return &Resolver{
		log:     log,
		chain:   chain,
		pool:    pool,
		version: version,
	}
}

// the namespace an association key points at
func (r *Resolver) associationTarget(key []byte) ([]byte, bool) {
	prefix := []byte(constants.AssociatePrefix)
	if !bytes.HasPrefix(key, prefix) {
		return nil, false
	}
	target, err := namespace.Decode(string(key[len(prefix):]), r.version)
	if nil != err {
		return nil, false
	}
	return target, true
}

// Members - the associations of ns in scan order
//
// the locks are taken one after another and never nested:
//   1. chain: namespaces whose association points at ns
//   2. pool: pending associations written by ns
//   3. chain: confirmed associations written by ns, less the
//      ones a pending write is retracting
func (r *Resolver) Members(ns []byte, initiator Initiator) []Member {
	members := make([]Member, 0)

	if All == initiator || Other == initiator {
		target := []byte(namespace.Encode(ns))
		r.chain.ReadStore(func(height uint64, store storage.Reader) {
			err := store.IterateAssociated(target, func(other []byte, record *storage.KeyRecord) error {
				members = append(members, Member{
					Namespace: other,
					Source:    OtherConfirmed,
					Record:    record,
					TxId:      record.OutPoint.TxId,
				})
				return nil
			})
			if nil != err {
				r.log.Errorf("scan associations of: %s  height: %d  error: %s", target, height, err)
			}
		})
	}

	if Other == initiator {
		return members
	}

	// association keys of ns whose last pending write is empty
	retracted := make(map[string]struct{})
	r.pool.ReadOverlay(func(overlay *reservoir.Overlay) {
		seen := make(map[string]struct{})
		for _, w := range overlay.ListAll(ns) {
			target, ok := r.associationTarget(w.Key)
			if !ok {
				continue
			}
			if _, ok := seen[string(target)]; ok {
				continue
			}
			last, _ := overlay.Lookup(ns, w.Key)
			if 0 == len(last.Value) {
				retracted[string(w.Key)] = struct{}{}
				continue
			}
			seen[string(target)] = struct{}{}
			members = append(members, Member{
				Namespace: target,
				Source:    SelfPending,
				TxId:      last.TxId,
			})
		}
	})

	r.chain.ReadStore(func(height uint64, store storage.Reader) {
		err := store.IterateKeys(ns, func(key []byte, record *storage.KeyRecord) error {
			target, ok := r.associationTarget(key)
			if !ok {
				return nil
			}
			if _, ok := retracted[string(key)]; ok {
				return nil
			}
			members = append(members, Member{
				Namespace: target,
				Source:    SelfConfirmed,
				Record:    record,
				TxId:      record.OutPoint.TxId,
			})
			return nil
		})
		if nil != err {
			r.log.Errorf("scan keys of: %x  height: %d  error: %s", ns, height, err)
		}
	})

	return members
}

// ResolveGroup - the sorted set of ns and its group members
func (r *Resolver) ResolveGroup(ns []byte, initiator Initiator) [][]byte {
	set := map[string]struct{}{
		string(ns): {},
	}
	for _, m := range r.Members(ns, initiator) {
		set[string(m.Namespace)] = struct{}{}
	}

	group := make([][]byte, 0, len(set))
	for s := range set {
		group = append(group, []byte(s))
	}
	sort.Slice(group, func(i, j int) bool {
		return bytes.Compare(group[i], group[j]) < 0
	})
	return group
}

// ResolveValue - the value of key across a group
//
// a pending write in any member wins, the first in group order;
// otherwise the confirmed record with the highest height wins, ties
// go to the first in group order
func (r *Resolver) ResolveValue(group [][]byte, key []byte) (Value, bool) {
	result := Value{}
	found := false

	r.pool.ReadOverlay(func(overlay *reservoir.Overlay) {
		for _, ns := range group {
			w, ok := overlay.Lookup(ns, key)
			if !ok {
				continue
			}
			result = Value{
				Namespace: ns,
				Value:     w.Value,
				Height:    -1,
				Pending:   true,
				TxId:      w.TxId,
			}
			found = true
			return
		}
	})
	if found {
		return result, true
	}

	r.chain.ReadStore(func(height uint64, store storage.Reader) {
		for _, ns := range group {
			record, ok := store.GetKeyValue(ns, key)
			if !ok {
				continue
			}
			if found && int64(record.Height) <= result.Height {
				continue
			}
			result = Value{
				Namespace: ns,
				Value:     record.Value,
				Height:    int64(record.Height),
				Record:    record,
				TxId:      record.OutPoint.TxId,
			}
			found = true
		}
	})
	return result, found
}
