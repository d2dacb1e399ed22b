// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kevad/fault"
)

func TestListenAddresses(t *testing.T) {
	addresses, err := listenAddresses([]string{
		"127.0.0.1:9781",
		"[::1]:9781",
		"*:9782",
	})
	assert.Nil(t, err, "valid addresses")

	expected := []address{
		{network: "tcp4", hostPort: "127.0.0.1:9781"},
		{network: "tcp6", hostPort: "[::1]:9781"},
		{network: "tcp", hostPort: "[::]:9782"},
	}
	assert.Equal(t, expected, addresses, "resolved addresses")
}

func TestListenAddressesInvalid(t *testing.T) {
	_, err := listenAddresses([]string{"localhost:9781"})
	assert.Equal(t, fault.InvalidIpAddress, err, "host name")

	_, err = listenAddresses([]string{"127.0.0.1:0"})
	assert.Equal(t, fault.InvalidPortNumber, err, "zero port")

	_, err = listenAddresses(nil)
	assert.Equal(t, fault.MissingParameters, err, "empty")
}
