// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"sync"
	"time"

	"github.com/bitmark-inc/kevad/counter"
	"github.com/bitmark-inc/kevad/fault"
	"github.com/bitmark-inc/kevad/rpc/certificate"
	"github.com/bitmark-inc/kevad/rpc/handler"
	"github.com/bitmark-inc/kevad/rpc/listeners"
	"github.com/bitmark-inc/kevad/rpc/node"
	"github.com/bitmark-inc/kevad/rpc/server"
	"github.com/bitmark-inc/logger"
)

const (
	rpcName   = "client_rpc"
	httpsName = "http_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	// active RPC connections, shared by both listeners
	connections counter.Counter

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// Initialise - start the JSON RPC and HTTPS listeners
func Initialise(rpcConfiguration *listeners.RPCConfiguration, httpsConfiguration *listeners.HTTPSConfiguration, services *server.Services) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to Start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	if nil == log {
		return fault.InvalidLoggerChannel
	}
	globalData.log = log
	log.Info("starting…")

	tlsConfig, fingerprint, err := certificate.Load(log, rpcName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		&globalData.connections,
		server.Create(log, services, &globalData.connections),
		tlsConfig,
		fingerprint,
	)
	if nil != err {
		return err
	}
	err = rpcListener.Serve()
	if nil != err {
		return err
	}

	err = initialiseHTTPS(log, httpsConfiguration, services)
	if nil != err {
		return err
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

// the optional HTTPS listener
func initialiseHTTPS(log *logger.L, configuration *listeners.HTTPSConfiguration, services *server.Services) error {
	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpsName)
		return nil
	}

	tlsConfig, fingerprint, err := certificate.Load(log, httpsName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return err
	}
	log.Infof("%s: SHA3-256 fingerprint: %x", httpsName, fingerprint)

	s := server.Create(log, services, &globalData.connections)

	start := time.Now()
	info := node.New(log, services.ChainName, start, services.Version, &globalData.connections, services.Chain, services.Pool)
	details := func() (interface{}, error) {
		var reply node.InfoReply
		err := info.Info(&node.InfoArguments{}, &reply)
		return reply, err
	}

	hdlr := handler.New(log, s, start, services.Version, configuration.MaximumConnections, details)

	httpsListener, err := listeners.NewHTTPS(configuration, log, tlsConfig, hdlr)
	if nil != err {
		return err
	}
	return httpsListener.Serve()
}

// Finalise - stop all background tasks
func Finalise() error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
