// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"strings"

	"github.com/bitmark-inc/kevad/util"
)

// Listener - a configured server ready to accept connections
type Listener interface {
	Serve() error
}

// a listen address resolved to the network to use with net.Listen
type address struct {
	network  string
	hostPort string
}

// validate listen addresses of the forms "IPv4:port", "[IPv6]:port"
// and "*:port", the last listens on every interface of both stacks
func listenAddresses(listen []string) ([]address, error) {
	connections, err := util.NewConnections(listen)
	if nil != err {
		return nil, err
	}

	addresses := make([]address, len(connections))
	for i, c := range connections {
		hostPort, v6 := c.CanonicalIPandPort("")
		network := "tcp4"
		if v6 {
			network = "tcp6"
		}
		if strings.HasPrefix(hostPort, "[::]:") {
			network = "tcp"
		}
		addresses[i] = address{
			network:  network,
			hostPort: hostPort,
		}
	}
	return addresses, nil
}
