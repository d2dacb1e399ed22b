// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/kevad/counter"
	"github.com/bitmark-inc/kevad/fault"
	"github.com/bitmark-inc/kevad/merkle"
	"github.com/bitmark-inc/kevad/reservoir"
	"github.com/bitmark-inc/kevad/rpc/ratelimit"
	"github.com/bitmark-inc/kevad/storage"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

//go:generate mockgen -source=node.go -destination=../mocks/node.go -package=mocks

// ChainInfo - the confirmed state queried by Info
type ChainInfo interface {
	Tip() (uint64, merkle.Digest, bool)
	ReadStore(f func(height uint64, store storage.Reader))
}

// PoolInfo - the unconfirmed state queried by Info
type PoolInfo interface {
	Size() int
	ReadOverlay(f func(overlay *reservoir.Overlay))
}

// Node - type for RPC calls
type Node struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Start     time.Time
	Version   string
	ChainName string
	chain     ChainInfo
	pool      PoolInfo
	counter   *counter.Counter
}

// New - create the node RPC service
func New(log *logger.L, chainName string, start time.Time, version string, counter *counter.Counter, chain ChainInfo, pool PoolInfo) *Node {
	return &Node{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:     start,
		Version:   version,
		ChainName: chainName,
		chain:     chain,
		pool:      pool,
		counter:   counter,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain               string    `json:"chain"`
	Block               BlockInfo `json:"block"`
	Keys                uint64    `json:"keys"`
	RPCs                uint64    `json:"rpcs"`
	TransactionCounters Counters  `json:"transactionCounters"`
	Version             string    `json:"version"`
	Uptime              string    `json:"uptime"`
}

// BlockInfo - the highest block held by the node
//
// an empty chain has height zero and no hash
type BlockInfo struct {
	Height uint64 `json:"height"`
	Hash   string `json:"hash,omitempty"`
}

// Counters - unconfirmed counts
type Counters struct {
	Pending    int `json:"pending"`
	Namespaces int `json:"namespaces"`
	Writes     int `json:"writes"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if nil == node.chain || nil == node.pool {
		return fault.DatabaseIsNotSet
	}

	reply.Chain = node.ChainName
	if height, digest, ok := node.chain.Tip(); ok {
		reply.Block = BlockInfo{
			Height: height,
			Hash:   digest.String(),
		}
	}
	node.chain.ReadStore(func(_ uint64, store storage.Reader) {
		reply.Keys = store.KeyCount()
	})

	reply.TransactionCounters.Pending = node.pool.Size()
	node.pool.ReadOverlay(func(overlay *reservoir.Overlay) {
		reply.TransactionCounters.Namespaces, reply.TransactionCounters.Writes = overlay.Counts()
	})

	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}
