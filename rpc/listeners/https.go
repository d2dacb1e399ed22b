// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/bitmark-inc/kevad/fault"
	"github.com/bitmark-inc/kevad/rpc/handler"
	"github.com/bitmark-inc/logger"
)

const (
	httpsLogName       = "http_rpc"
	minConnectionCount = 1
	readWriteTimeout   = 10 * time.Second
	keepAlivePeriod    = 3 * time.Minute
	maxHeaderBytes     = 1 << 20
)

// HTTPSConfiguration - configuration file data for HTTPS setup
//
// Allow maps an endpoint name to the networks permitted to use it
type HTTPSConfiguration struct {
	MaximumConnections uint64              `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string            `gluamapper:"listen" json:"listen"`
	Certificate        string              `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string              `gluamapper:"private_key" json:"private_key"`
	Allow              map[string][]string `gluamapper:"allow" json:"allow"`
}

type httpsListener struct {
	log       *logger.L
	addresses []address
	tlsConfig *tls.Config
	mux       *http.ServeMux
}

// NewHTTPS - validate the configuration of the HTTPS listener
//
// no listen addresses disables it and returns a nil listener
func NewHTTPS(
	configuration *HTTPSConfiguration,
	log *logger.L,
	tlsConfig *tls.Config,
	hdlr handler.Handler,
) (Listener, error) {
	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpsLogName)
		return nil, nil
	}

	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", httpsLogName, configuration.MaximumConnections)
		return nil, fault.MissingParameters
	}

	addresses, err := listenAddresses(configuration.Listen)
	if nil != err {
		log.Errorf("%s listen error: %s", httpsLogName, err)
		return nil, err
	}

	allow, err := allowedNetworks(configuration.Allow)
	if nil != err {
		log.Errorf("%s allow error: %s", httpsLogName, err)
		return nil, err
	}
	hdlr.SetAllow(allow)

	mux := http.NewServeMux()
	mux.HandleFunc("/kevad/rpc", hdlr.RPC)
	mux.HandleFunc("/kevad/details", hdlr.Details)
	mux.HandleFunc("/", hdlr.Root)

	return &httpsListener{
		log:       log,
		addresses: addresses,
		tlsConfig: tlsConfig,
		mux:       mux,
	}, nil
}

func allowedNetworks(allow map[string][]string) (map[string][]*net.IPNet, error) {
	networks := make(map[string][]*net.IPNet, len(allow))
	for endpoint, cidrs := range allow {
		set := make([]*net.IPNet, 0, len(cidrs))
		for _, s := range cidrs {
			_, n, err := net.ParseCIDR(strings.TrimSpace(s))
			if nil != err {
				return nil, err
			}
			set = append(set, n)
		}
		networks[endpoint] = set
	}
	return networks, nil
}

// Serve - start a server on every listen address
func (h *httpsListener) Serve() error {
	lc := net.ListenConfig{
		KeepAlive: keepAlivePeriod,
	}

	config := h.tlsConfig.Clone()
	config.NextProtos = []string{"http/1.1"}

	for _, a := range h.addresses {
		h.log.Infof("starting server: %s on: %s %s", httpsLogName, a.network, a.hostPort)

		ln, err := lc.Listen(context.Background(), a.network, a.hostPort)
		if nil != err {
			h.log.Errorf("%s listen error: %s", httpsLogName, err)
			return err
		}

		s := &http.Server{
			Handler:        h.mux,
			ReadTimeout:    readWriteTimeout,
			WriteTimeout:   readWriteTimeout,
			MaxHeaderBytes: maxHeaderBytes,
		}
		go func() {
			err := s.Serve(tls.NewListener(ln, config))
			h.log.Errorf("%s terminated: %s", httpsLogName, err)
		}()
	}

	return nil
}
