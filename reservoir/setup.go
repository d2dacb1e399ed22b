// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reservoir

import (
	"sync"
	"time"

	"github.com/bitmark-inc/kevad/background"
	"github.com/bitmark-inc/kevad/chain"
	"github.com/bitmark-inc/kevad/constants"
	"github.com/bitmark-inc/kevad/fault"
	"github.com/bitmark-inc/kevad/keva"
	"github.com/bitmark-inc/kevad/kevascript"
	"github.com/bitmark-inc/kevad/merkle"
	"github.com/bitmark-inc/kevad/metrics"
	"github.com/bitmark-inc/kevad/transactionrecord"
	"github.com/bitmark-inc/logger"
)

// State - read access to the confirmed chain
//
// the callback runs while the chain state lock is held for reading
type State interface {
	ReadState(func(height uint64, view keva.CoinView))
}

// a pooled transaction
type entry struct {
	tx    *transactionrecord.Tx
	txId  merkle.Digest
	op    kevascript.Operation
	added time.Time
}

// Pool - unconfirmed transactions
type Pool struct {
	sync.Mutex
	log        *logger.L
	parameters *chain.Parameters
	state      State
	expiry     time.Duration

	entries map[merkle.Digest]*entry

	// outpoints spent by pooled transactions
	spent map[transactionrecord.OutPoint]merkle.Digest

	// namespaces registered by pooled transactions
	registered map[string]merkle.Digest

	overlay Overlay

	listeners    map[int]RemovalListener
	nextListener int

	metrics    *metrics.KevaMetrics
	background *background.T
}

// New - create an empty pool
//
// expiry of zero selects the default
func New(parameters *chain.Parameters, state State, expiry time.Duration) (*Pool, error) {
	log := logger.New("reservoir")
	if nil == log {
		return nil, fault.InvalidLoggerChannel
	}

	if expiry <= 0 {
		expiry = constants.ReservoirTimeout
	}

	return &Pool{
		log:        log,
		parameters: parameters,
		state:      state,
		expiry:     expiry,
		entries:    make(map[merkle.Digest]*entry),
		spent:      make(map[transactionrecord.OutPoint]merkle.Digest),
		registered: make(map[string]merkle.Digest),
		listeners:  make(map[int]RemovalListener),
		metrics:    metrics.Keva(),
	}, nil
}

// Start - run the expiry background
func (p *Pool) Start() {
	p.log.Info("starting…")

	processes := background.Processes{
		&background.Periodic{
			Interval: constants.ExpiryInterval,
			Tick: func(args interface{}, now time.Time) {
				args.(*Pool).Expire(now)
			},
		},
	}
	p.background = background.Start(processes, p)
}

// Stop - stop the background
func (p *Pool) Stop() {
	p.log.Info("shutting down…")
	p.background.Stop()
	p.log.Info("finished")
	p.log.Flush()
}

// SetExpiry - change the age at which pooled transactions expire
//
// zero or negative selects the default
func (p *Pool) SetExpiry(expiry time.Duration) {
	p.Lock()
	defer p.Unlock()

	if expiry <= 0 {
		expiry = constants.ReservoirTimeout
	}
	p.expiry = expiry
}

// Size - number of pooled transactions
func (p *Pool) Size() int {
	p.Lock()
	defer p.Unlock()

	return len(p.entries)
}

// Get - a pooled transaction
func (p *Pool) Get(txId merkle.Digest) (*transactionrecord.Tx, bool) {
	p.Lock()
	defer p.Unlock()

	e, ok := p.entries[txId]
	if !ok {
		return nil, false
	}
	return e.tx, true
}

// ReadOverlay - run f on the overlay while holding the pool lock
func (p *Pool) ReadOverlay(f func(overlay *Overlay)) {
	p.Lock()
	defer p.Unlock()

	f(&p.overlay)
}
