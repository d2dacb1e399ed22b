// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bitmark-inc/logger"
)

const shutdownTimeout = 5 * time.Second

// Configuration - metrics listener
type Configuration struct {
	Listen string `gluamapper:"listen" json:"listen"`
}

// Server - background process serving /metrics
type Server struct {
	log    *logger.L
	server *http.Server
}

// NewServer - create the metrics server, nil if listen is empty
func NewServer(configuration Configuration) *Server {
	if "" == configuration.Listen {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &Server{
		log: logger.New("metrics"),
		server: &http.Server{
			Addr:    configuration.Listen,
			Handler: mux,
		},
	}
}

// Run - serve until shutdown
func (s *Server) Run(args interface{}, shutdown <-chan struct{}) {
	log := s.log

	log.Infof("listening on: %s", s.server.Addr)

	done := make(chan struct{})
	go func() {
		err := s.server.ListenAndServe()
		if nil != err && http.ErrServerClosed != err {
			log.Errorf("serve error: %s", err)
		}
		close(done)
	}()

	select {
	case <-shutdown:
	case <-done:
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := s.server.Shutdown(ctx)
	if nil != err {
		log.Errorf("shutdown error: %s", err)
	}
	<-done
	log.Info("stopped")
}
