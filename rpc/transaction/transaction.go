// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transaction

import (
	"encoding/hex"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/kevad/fault"
	"github.com/bitmark-inc/kevad/merkle"
	"github.com/bitmark-inc/kevad/rpc/ratelimit"
	"github.com/bitmark-inc/kevad/transactionrecord"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitTransaction = 200
	rateBurstTransaction = 100
)

//go:generate mockgen -source=transaction.go -destination=../mocks/transaction.go -package=mocks

// Reservoir - the pool operations offered over RPC
type Reservoir interface {
	Add(tx *transactionrecord.Tx) (merkle.Digest, error)
	Get(txId merkle.Digest) (*transactionrecord.Tx, bool)
}

// the status values of a transaction
const (
	StatusPending = "Pending"
	StatusUnknown = "Unknown"
)

// Transaction - an RPC entry for transaction related functions
type Transaction struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Rsvr    Reservoir
}

// New - create the transaction RPC service
func New(log *logger.L, start time.Time, rsvr Reservoir) *Transaction {
	return &Transaction{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitTransaction, rateBurstTransaction),
		Start:   start,
		Rsvr:    rsvr,
	}
}

// ---

// SubmitArguments - a hex encoded packed transaction
type SubmitArguments struct {
	Transaction string `json:"transaction"`
}

// SubmitReply - the id of the admitted transaction
type SubmitReply struct {
	TxId merkle.Digest `json:"txId"`
}

// Submit - validate a transaction and add it to the pool
func (t *Transaction) Submit(arguments *SubmitArguments, reply *SubmitReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	packed, err := hex.DecodeString(arguments.Transaction)
	if nil != err {
		return fault.InvalidHexString
	}

	tx, n, err := transactionrecord.Packed(packed).Unpack()
	if nil != err {
		return err
	}
	if n != len(packed) {
		return fault.InvalidTransaction
	}

	txId, err := t.Rsvr.Add(tx)
	if nil != err {
		t.Log.Infof("Transaction.Submit: rejected: %s", err)
		return err
	}

	t.Log.Infof("Transaction.Submit: txId: %s", txId)

	reply.TxId = txId
	return nil
}

// ---

// Arguments - transaction id
type Arguments struct {
	TxId merkle.Digest `json:"txId"`
}

// StatusReply - results from status RPC
type StatusReply struct {
	Status      string `json:"status"`
	Transaction string `json:"transaction,omitempty"`
}

// Status - query whether a transaction is pooled
func (t *Transaction) Status(arguments *Arguments, reply *StatusReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	tx, ok := t.Rsvr.Get(arguments.TxId)
	if !ok {
		reply.Status = StatusUnknown
		return nil
	}

	packed, err := tx.Pack()
	if nil != err {
		return err
	}
	reply.Status = StatusPending
	reply.Transaction = hex.EncodeToString(packed)
	return nil
}
