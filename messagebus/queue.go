// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

// internal constants
const (
	queueSize = 1000
)

// Message - a command and its binary parameters
type Message struct {
	Command    string   // type of packet
	Parameters [][]byte // array of parameters
}

// BusMessageQueue - a single buffered queue
type BusMessageQueue struct {
	c chan Message
}

// the exported message queues
type busses struct {
	Keva      *BusMessageQueue
	TestQueue *BusMessageQueue
}

// Bus - all available message queues
var Bus = busses{
	Keva:      newQueue(queueSize),
	TestQueue: newQueue(50),
}

func newQueue(size int) *BusMessageQueue {
	return &BusMessageQueue{
		c: make(chan Message, size),
	}
}

// Send - queue a message
//
// if the queue is full the message is dropped, a slow subscriber
// must never stall block processing
func (queue *BusMessageQueue) Send(command string, parameters ...[]byte) bool {
	select {
	case queue.c <- Message{Command: command, Parameters: parameters}:
		return true
	default:
		return false
	}
}

// Chan - channel to read from
func (queue *BusMessageQueue) Chan() <-chan Message {
	return queue.c
}
