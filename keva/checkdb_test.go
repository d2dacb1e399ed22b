// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keva_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kevad/chain"
	"github.com/bitmark-inc/kevad/keva"
	"github.com/bitmark-inc/logger"
)

type fakeChecker struct {
	consistent bool
	flushed    int
	checked    int
}

func (c *fakeChecker) Flush() error {
	c.flushed += 1
	return nil
}

func (c *fakeChecker) ValidateConsistency() bool {
	c.checked += 1
	return c.consistent
}

func TestCheckKevaDBInterval(t *testing.T) {
	log := logger.New("keva-test")
	c := &fakeChecker{consistent: true}

	assert.False(t, keva.CheckKevaDB(log, 10, chain.CheckKevaDBDisabled, regtest(), c), "disabled check ran")
	assert.True(t, keva.CheckKevaDB(log, 10, 0, regtest(), c), "every block check skipped")
	assert.False(t, keva.CheckKevaDB(log, 10, 3, regtest(), c), "check ran off interval")
	assert.True(t, keva.CheckKevaDB(log, 12, 3, regtest(), c), "check skipped on interval")
	assert.Equal(t, 2, c.checked, "wrong check count")
	assert.Equal(t, 2, c.flushed, "check without flush")
}

func TestCheckKevaDBKnownInconsistency(t *testing.T) {
	log := logger.New("keva-test")
	c := &fakeChecker{consistent: false}
	mainnet, _ := chain.ParametersFor(chain.Kevacoin)

	assert.True(t, keva.CheckKevaDB(log, 150000, 0, mainnet, c), "check inside window failed")
	assert.Panics(t, func() { keva.CheckKevaDB(log, 200000, 0, mainnet, c) }, "inconsistency outside window did not halt")
	assert.Panics(t, func() { keva.CheckKevaDB(log, 150000, 0, regtest(), c) }, "window applied to regtest")
}
