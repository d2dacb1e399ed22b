// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/kevad/fault"
	"github.com/bitmark-inc/kevad/messagebus"
	"github.com/bitmark-inc/kevad/util"
	"github.com/bitmark-inc/kevad/zmqutil"
	"github.com/bitmark-inc/logger"
)

const (
	broadcasterZapDomain = "broadcaster"
)

type broadcaster struct {
	log     *logger.L
	queue   <-chan messagebus.Message
	socket4 *zmq.Socket
	socket6 *zmq.Socket
}

// initialise the broadcaster
func (brdc *broadcaster) initialise(privateKey []byte, publicKey []byte, broadcast []string, queue <-chan messagebus.Message) error {

	log := logger.New("broadcaster")
	if nil == log {
		return fault.InvalidLoggerChannel
	}
	brdc.log = log
	brdc.queue = queue

	log.Info("initialising…")

	c, err := util.NewConnections(broadcast)
	if nil != err {
		log.Errorf("ip and port error: %s", err)
		return err
	}

	// allocate IPv4 and IPv6 sockets
	brdc.socket4, brdc.socket6, err = zmqutil.NewBind(log, zmq.PUB, broadcasterZapDomain, privateKey, publicKey, c)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return err
	}

	return nil
}

// Run - forward confirmed keva changes to subscribers until shutdown
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brdc.log

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item := <-brdc.queue:
			log.Debugf("sending: %s  parameters: %d", item.Command, len(item.Parameters))
			brdc.process(brdc.socket4, &item)
			brdc.process(brdc.socket6, &item)
		}
	}
	if nil != brdc.socket4 {
		_ = brdc.socket4.Close()
	}
	if nil != brdc.socket6 {
		_ = brdc.socket6.Close()
	}
	log.Info("stopped")
}

// send one multipart message: command then each parameter
//
// a PUB socket drops messages when no subscriber is ready so a send
// error only loses this message
func (brdc *broadcaster) process(socket *zmq.Socket, item *messagebus.Message) {
	if nil == socket {
		return
	}

	flags := zmq.SNDMORE | zmq.DONTWAIT
	if 0 == len(item.Parameters) {
		flags = zmq.DONTWAIT
	}
	_, err := socket.Send(item.Command, flags)
	if nil != err {
		brdc.log.Warnf("send: %s  error: %s", item.Command, err)
		return
	}

	last := len(item.Parameters) - 1
	for i, p := range item.Parameters {
		if i == last {
			_, err = socket.SendBytes(p, zmq.DONTWAIT)
		} else {
			_, err = socket.SendBytes(p, zmq.SNDMORE|zmq.DONTWAIT)
		}
		if nil != err {
			brdc.log.Warnf("send: %s  part: %d  error: %s", item.Command, i, err)
			return
		}
	}
}
