// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package block_test

import (
	"encoding/hex"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	blockchain "github.com/bitmark-inc/kevad/block"
	"github.com/bitmark-inc/kevad/blockrecord"
	"github.com/bitmark-inc/kevad/fault"
	"github.com/bitmark-inc/kevad/merkle"
	"github.com/bitmark-inc/kevad/rpc/block"
	"github.com/bitmark-inc/kevad/rpc/fixtures"
	"github.com/bitmark-inc/kevad/rpc/mocks"
	"github.com/bitmark-inc/kevad/transactionrecord"
	"github.com/bitmark-inc/logger"
)

func TestSubmit(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c := mocks.NewMockBlockchain(ctl)
	b := block.New(logger.New(fixtures.LogCategory), c)

	packed := []byte{1, 2, 3, 4}
	connected := &blockchain.Connected{
		Height:    7,
		Digest:    merkle.NewDigest(packed),
		Conflicts: []merkle.Digest{{9}},
	}
	c.EXPECT().ConnectBlock(blockrecord.PackedBlock(packed)).Return(connected, nil).Times(1)

	var reply blockchain.Connected
	err := b.Submit(&block.SubmitArguments{Block: hex.EncodeToString(packed)}, &reply)
	assert.Nil(t, err, "wrong Submit")
	assert.Equal(t, *connected, reply, "wrong reply")
}

func TestSubmitRejected(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c := mocks.NewMockBlockchain(ctl)
	b := block.New(logger.New(fixtures.LogCategory), c)

	c.EXPECT().ConnectBlock(gomock.Any()).Return(nil, fault.BlockHeightMismatch).Times(1)

	var reply blockchain.Connected
	err := b.Submit(&block.SubmitArguments{Block: "00"}, &reply)
	assert.Equal(t, fault.BlockHeightMismatch, err, "wrong error")

	err = b.Submit(&block.SubmitArguments{Block: "not hex"}, &reply)
	assert.Equal(t, fault.InvalidHexString, err, "wrong hex error")
}

func TestDisconnect(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c := mocks.NewMockBlockchain(ctl)
	b := block.New(logger.New(fixtures.LogCategory), c)

	tx := &transactionrecord.Tx{
		Version: transactionrecord.KevaVersion,
		TxOut: []transactionrecord.TxOut{
			{Value: 1, Script: []byte{0x51}},
		},
	}
	txId, err := tx.TxId()
	assert.Nil(t, err, "wrong TxId")

	c.EXPECT().DisconnectTip().Return([]*transactionrecord.Tx{tx}, nil).Times(1)

	var reply block.DisconnectReply
	err = b.Disconnect(&block.DisconnectArguments{}, &reply)
	assert.Nil(t, err, "wrong Disconnect")
	assert.Equal(t, []merkle.Digest{txId}, reply.TxIds, "wrong txids")

	c.EXPECT().DisconnectTip().Return(nil, fault.ChainIsEmpty).Times(1)
	err = b.Disconnect(&block.DisconnectArguments{}, &reply)
	assert.Equal(t, fault.ChainIsEmpty, err, "wrong error")
}

func TestGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c := mocks.NewMockBlockchain(ctl)
	b := block.New(logger.New(fixtures.LogCategory), c)

	c.EXPECT().Get(uint64(3)).Return(blockrecord.PackedBlock{0xab, 0xcd}, nil).Times(1)
	c.EXPECT().Get(uint64(4)).Return(nil, fault.BlockNotFound).Times(1)

	var reply block.GetReply
	err := b.Get(&block.GetArguments{Height: 3}, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, "abcd", reply.Block, "wrong block")

	err = b.Get(&block.GetArguments{Height: 4}, &reply)
	assert.Equal(t, fault.BlockNotFound, err, "wrong error")
}
