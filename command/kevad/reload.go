// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/bitmark-inc/logger"
)

// the settings that can change without a restart
type reloadable interface {
	SetCheckKevaDB(interval int)
}

type expirable interface {
	SetExpiry(expiry time.Duration)
}

// reloader - re-read the configuration file on change
type reloader struct {
	log       *logger.L
	fileName  string
	variables map[string]string
	changed   <-chan struct{}
	chain     reloadable
	pool      expirable
}

// Run - apply each change until shutdown
func (r *reloader) Run(args interface{}, shutdown <-chan struct{}) {
	log := r.log

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-r.changed:
			r.reload()
		}
	}
	log.Info("stopped")
}

// a broken file keeps the current settings
func (r *reloader) reload() {
	log := r.log

	options, err := getConfiguration(r.fileName, r.variables)
	if nil != err {
		log.Errorf("reload: %q  error: %s", r.fileName, err)
		return
	}

	log.Infof("reload: check_keva_db: %d  reservoir_expiry: %d", options.CheckKevaDB, options.ReservoirExpiry)
	r.chain.SetCheckKevaDB(options.CheckKevaDB)
	r.pool.SetExpiry(options.Expiry())
}
