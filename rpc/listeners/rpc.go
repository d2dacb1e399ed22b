// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"

	"github.com/bitmark-inc/kevad/counter"
	"github.com/bitmark-inc/kevad/fault"
	"github.com/bitmark-inc/logger"
)

const (
	logName      = "client_rpc"
	minBandwidth = 1000000 // 1Mbps
)

// RPCConfiguration - configuration file data for RPC setup
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Bandwidth          float64  `gluamapper:"bandwidth" json:"bandwidth"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

type rpcListener struct {
	log            *logger.L
	count          *counter.Counter
	server         *rpc.Server
	maxConnections uint64
	tlsConfig      *tls.Config
	addresses      []address
}

// NewRPC - validate the configuration of a JSON RPC over TLS listener
func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	count *counter.Counter,
	server *rpc.Server,
	tlsConfig *tls.Config,
	certificateFingerprint [32]byte,
) (Listener, error) {
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}
	if configuration.Bandwidth <= minBandwidth {
		log.Errorf("invalid %s bandwidth: %f bps < 1Mbps", logName, configuration.Bandwidth)
		return nil, fault.MissingParameters
	}
	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return nil, fault.MissingParameters
	}

	addresses, err := listenAddresses(configuration.Listen)
	if nil != err {
		log.Errorf("%s listen error: %s", logName, err)
		return nil, err
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", logName, certificateFingerprint)

	return &rpcListener{
		log:            log,
		count:          count,
		server:         server,
		maxConnections: configuration.MaximumConnections,
		tlsConfig:      tlsConfig,
		addresses:      addresses,
	}, nil
}

// Serve - start accepting on every listen address
func (r *rpcListener) Serve() error {
	for _, a := range r.addresses {
		r.log.Infof("starting RPC server: %s on: %s", a.network, a.hostPort)
		ln, err := tls.Listen(a.network, a.hostPort, r.tlsConfig)
		if nil != err {
			r.log.Errorf("%s listen error: %s", logName, err)
			return err
		}
		go r.accept(ln)
	}
	return nil
}

// connections above the limit are closed immediately
func (r *rpcListener) accept(ln net.Listener) {
	defer ln.Close()

	for {
		conn, err := ln.Accept()
		if nil != err {
			r.log.Errorf("%s accept error: %s", logName, err)
			return
		}
		if !r.count.TryIncrement(r.maxConnections) {
			r.log.Warnf("%s connection limit: %d reached", logName, r.maxConnections)
			_ = conn.Close()
			continue
		}
		go func(conn net.Conn) {
			defer r.count.Decrement()
			r.server.ServeCodec(jsonrpc.NewServerCodec(conn))
			_ = conn.Close()
		}(conn)
	}
}
