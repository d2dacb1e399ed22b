// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"sync"

	"github.com/bitmark-inc/kevad/background"
	"github.com/bitmark-inc/kevad/fault"
	"github.com/bitmark-inc/kevad/messagebus"
	"github.com/bitmark-inc/kevad/zmqutil"
	"github.com/bitmark-inc/logger"
)

// Configuration - a block of configuration data
// this is read from a Lua configuration file
//
// keys are optional, without them the socket is unencrypted
type Configuration struct {
	Broadcast  []string `gluamapper:"broadcast" json:"broadcast"`
	PrivateKey string   `gluamapper:"private_key" json:"private_key"`
	PublicKey  string   `gluamapper:"public_key" json:"public_key"`
}

// globals for background proccess
type publishData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	brdc broadcaster // for broadcasting keva changes

	// for background
	background *background.T

	// set once during initialise
	initialised bool
}

// global data
var globalData publishData

// Initialise - start the broadcaster, a configuration without any
// broadcast addresses disables publishing
func Initialise(configuration *Configuration) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("publish")
	if nil == log {
		return fault.InvalidLoggerChannel
	}
	globalData.log = log

	if 0 == len(configuration.Broadcast) {
		log.Info("disabled")
		return nil
	}

	log.Info("starting…")

	privateKey, publicKey, err := readKeys(log, configuration)
	if nil != err {
		return err
	}

	if 0 != len(privateKey) {
		if err := zmqutil.StartAuthentication(); nil != err {
			log.Errorf("zmq authentication error: %s", err)
			return err
		}
	}

	if err := globalData.brdc.initialise(privateKey, publicKey, configuration.Broadcast, messagebus.Bus.Keva.Chan()); nil != err {
		return err
	}

	// all data initialised
	globalData.initialised = true

	// start background processes
	log.Info("start background…")

	processes := background.Processes{
		&globalData.brdc,
	}

	globalData.background = background.Start(processes, log)

	return nil
}

// both keys or neither
func readKeys(log *logger.L, configuration *Configuration) ([]byte, []byte, error) {
	if "" == configuration.PrivateKey && "" == configuration.PublicKey {
		log.Warn("publishing without encryption")
		return nil, nil, nil
	}

	privateKey, err := zmqutil.ReadPrivateKeyFile(configuration.PrivateKey)
	if nil != err {
		log.Errorf("read private key file: %q  error: %s", configuration.PrivateKey, err)
		return nil, nil, err
	}
	publicKey, err := zmqutil.ReadPublicKeyFile(configuration.PublicKey)
	if nil != err {
		log.Errorf("read public key file: %q  error: %s", configuration.PublicKey, err)
		return nil, nil, err
	}
	log.Tracef("public key:  %x", publicKey)

	return privateKey, publicKey, nil
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

	// stop background
	globalData.background.Stop()
	zmqutil.StopAuthentication()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
