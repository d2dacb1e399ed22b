// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	blockchain "github.com/bitmark-inc/kevad/block"
	"github.com/bitmark-inc/kevad/blockrecord"
	"github.com/bitmark-inc/kevad/counter"
	"github.com/bitmark-inc/kevad/merkle"
	"github.com/bitmark-inc/kevad/reservoir"
	"github.com/bitmark-inc/kevad/rpc/block"
	"github.com/bitmark-inc/kevad/rpc/keva"
	"github.com/bitmark-inc/kevad/rpc/node"
	"github.com/bitmark-inc/kevad/rpc/transaction"
	"github.com/bitmark-inc/kevad/storage"
	"github.com/bitmark-inc/kevad/transactionrecord"
	"github.com/bitmark-inc/logger"
)

//go:generate mockgen -source=server.go -destination=../mocks/server.go -package=mocks

// Chain - the confirmed state used by the services
type Chain interface {
	ReadStore(f func(height uint64, store storage.Reader))
	Tip() (uint64, merkle.Digest, bool)
	ConnectBlock(packed blockrecord.PackedBlock) (*blockchain.Connected, error)
	DisconnectTip() ([]*transactionrecord.Tx, error)
	Get(height uint64) (blockrecord.PackedBlock, error)
}

// Pool - the unconfirmed state used by the services
type Pool interface {
	ReadOverlay(f func(overlay *reservoir.Overlay))
	Size() int
	Add(tx *transactionrecord.Tx) (merkle.Digest, error)
	Get(txId merkle.Digest) (*transactionrecord.Tx, bool)
}

// Services - everything the RPC services need
type Services struct {
	ChainName        string
	NamespaceVersion byte
	Version          string
	Chain            Chain
	Pool             Pool
}

// Create - an RPC server with every service registered
func Create(log *logger.L, services *Services, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(keva.New(log, services.Chain, services.Pool, services.NamespaceVersion))
	_ = server.Register(node.New(log, services.ChainName, start, services.Version, rpcCount, services.Chain, services.Pool))
	_ = server.Register(block.New(log, services.Chain))
	_ = server.Register(transaction.New(log, start, services.Pool))

	return server
}
