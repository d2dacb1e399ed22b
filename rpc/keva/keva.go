// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keva

import (
	"regexp"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/kevad/constants"
	"github.com/bitmark-inc/kevad/fault"
	"github.com/bitmark-inc/kevad/group"
	"github.com/bitmark-inc/kevad/namespace"
	"github.com/bitmark-inc/kevad/reservoir"
	"github.com/bitmark-inc/kevad/rpc/ratelimit"
	"github.com/bitmark-inc/kevad/storage"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitKeva = 200
	rateBurstKeva = 100
)

// stops an iteration early
const errStop = fault.GenericError("stop")

// Keva - type for RPC calls
type Keva struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	chain    ChainReader
	pool     PoolReader
	resolver *group.Resolver
	version  byte
}

// Info - a key and its value
//
// a pending value has height -1 and no txid; an absent key has
// neither
type Info struct {
	Key       string  `json:"key"`
	Value     string  `json:"value"`
	TxId      string  `json:"txid,omitempty"`
	Vout      *uint32 `json:"vout,omitempty"`
	Height    *int64  `json:"height,omitempty"`
	Namespace string  `json:"namespace,omitempty"`
}

// Stat - the reply of a query in stat mode
type Stat struct {
	Blocks uint64 `json:"blocks"`
	Count  int    `json:"count"`
}

// New - create the keva RPC service
func New(log *logger.L, chain ChainReader, pool PoolReader, version byte) *Keva {
	return &Keva{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitKeva, rateBurstKeva),
		chain:    chain,
		pool:     pool,
		resolver: group.New(log, chain, pool, version),
		version:  version,
	}
}

// ---

// GetArguments - arguments for Get
type GetArguments struct {
	Namespace string `json:"namespace"`
	Key       string `json:"key"`
}

// Get - the value of a key, a pending write wins over the confirmed record
func (k *Keva) Get(arguments *GetArguments, reply *Info) error {
	if err := ratelimit.Limit(k.Limiter); nil != err {
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

	k.Log.Infof("Keva.Get: namespace: %s  key: %q", arguments.Namespace, arguments.Key)

	*reply = Info{
		Key: arguments.Key,
	}

	pending := false
	k.pool.ReadOverlay(func(overlay *reservoir.Overlay) {
		if w, ok := overlay.Lookup(ns, key); ok {
			reply.Value = string(w.Value)
			reply.Height = pendingHeight()
			pending = true
		}
	})
	if pending {
		return nil
	}

	k.chain.ReadStore(func(height uint64, store storage.Reader) {
		if record, ok := store.GetKeyValue(ns, key); ok {
			*reply = confirmedInfo(key, record, nil)
		}
	})
	return nil
}

// decode and check a namespace parameter
func (k *Keva) namespace(text string) ([]byte, error) {
	if "" == text {
		return nil, fault.MissingParameters
	}
	return namespace.Decode(text, k.version)
}

func checkKey(text string) ([]byte, error) {
	key := []byte(text)
	if len(key) > constants.MaxKeyLength {
		return nil, fault.InvalidKeyLength
	}
	return key, nil
}

func pendingHeight() *int64 {
	h := int64(-1)
	return &h
}

// the reply for a confirmed record, namespace is only shown if not nil
func confirmedInfo(key []byte, record *storage.KeyRecord, ns []byte) Info {
	vout := record.OutPoint.Index
	height := int64(record.Height)
	info := Info{
		Key:    string(key),
		Value:  string(record.Value),
		TxId:   record.OutPoint.TxId.String(),
		Vout:   &vout,
		Height: &height,
	}
	if nil != ns {
		info.Namespace = namespace.Encode(ns)
	}
	return info
}

// ---

// the shared query filters
type query struct {
	regexp *regexp.Regexp
	maxAge uint64
	from   int
	nb     int
	stat   bool
}

// validate the optional filter parameters
func newQuery(pattern string, maxAge *int, from int, nb int, stat string) (*query, error) {
	q := &query{
		maxAge: constants.DefaultMaxAge,
		from:   from,
		nb:     nb,
	}

	if "" != pattern {
		r, err := regexp.Compile(pattern)
		if nil != err {
			return nil, fault.InvalidRegexp
		}
		q.regexp = r
	}

	if nil != maxAge {
		if *maxAge < 0 {
			return nil, fault.InvalidMaxAge
		}
		q.maxAge = uint64(*maxAge)
	}

	if from < 0 || nb < 0 {
		return nil, fault.InvalidPagination
	}

	switch stat {
	case "":
	case "stat":
		q.stat = true
	default:
		return nil, fault.InvalidStatSelector
	}
	return q, nil
}

// true if a record updated at updated is too old at height
//
// a maximum age of zero accepts everything
func (q *query) tooOld(height uint64, updated uint64) bool {
	if 0 == q.maxAge || updated > height {
		return false
	}
	return height-updated >= q.maxAge
}

func (q *query) matches(key []byte) bool {
	if nil == q.regexp {
		return true
	}
	return q.regexp.Match(key)
}

// consume the from offset, true if the entry is to be skipped
func (q *query) skip() bool {
	if q.from > 0 {
		q.from -= 1
		return true
	}
	return false
}

// count an accepted entry, true if the page is full
func (q *query) full() bool {
	if q.nb > 0 {
		q.nb -= 1
		return 0 == q.nb
	}
	return false
}
