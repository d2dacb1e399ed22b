// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package block_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kevad/blockrecord"
	"github.com/bitmark-inc/kevad/constants"
	"github.com/bitmark-inc/kevad/fault"
	"github.com/bitmark-inc/kevad/keva/mocks"
	"github.com/bitmark-inc/kevad/kevascript"
	"github.com/bitmark-inc/kevad/merkle"
	"github.com/bitmark-inc/kevad/namespace"
	"github.com/bitmark-inc/kevad/transactionrecord"
)

func TestConnectAndDisconnect(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	notifier := mocks.NewMockNotifier(ctl)
	f := setup(t, notifier)
	defer teardown(f)

	fund := funding(1, 2)
	_, err := f.chain.ConnectBlock(f.nextBlock(t, fund))
	assert.Nil(t, err, "connect funding block error")

	// the same legacy namespace from two outputs of one transaction
	pending, pendingNs := registration(output(fund, 1), namespace.Legacy, "pending")
	pendingId, err := f.pool.Add(pending)
	assert.Nil(t, err, "pool add error")

	reg, ns := registration(output(fund, 0), namespace.Legacy, "confirmed")
	regId, _ := reg.TxId()
	assert.Equal(t, pendingNs, ns, "legacy namespaces differ")

	notifier.EXPECT().NamespaceCreated(regId, uint64(2), ns, []byte("confirmed")).Times(1)
	connected, err := f.chain.ConnectBlock(f.nextBlock(t, reg))
	assert.Nil(t, err, "connect registration block error")
	assert.Equal(t, uint64(2), connected.Height, "wrong height")
	assert.Equal(t, []merkle.Digest{pendingId}, connected.Conflicts, "wrong conflicts")
	assert.Equal(t, 0, f.pool.Size(), "conflict left in pool")

	put := update(output(reg, 0), kevascript.PutScript(ns, []byte("key"), []byte("value"), address))
	putId, _ := put.TxId()
	notifier.EXPECT().KeyUpdated(putId, uint64(3), ns, []byte("key"), []byte("value")).Times(1)
	_, err = f.chain.ConnectBlock(f.nextBlock(t, put))
	assert.Nil(t, err, "connect update block error")

	r, found := f.db.GetKeyValue(ns, []byte("key"))
	assert.True(t, found, "key not written")
	assert.Equal(t, []byte("value"), r.Value, "wrong value")
	assert.Equal(t, uint64(2), f.db.KeyCount(), "wrong key count")

	height, _, ok := f.chain.Tip()
	assert.True(t, ok, "empty chain")
	assert.Equal(t, uint64(3), height, "wrong tip")

	// undo the update: the transaction returns to the pool
	txs, err := f.chain.DisconnectTip()
	assert.Nil(t, err, "disconnect error")
	assert.Equal(t, 1, len(txs), "wrong disconnected transactions")
	_, found = f.db.GetKeyValue(ns, []byte("key"))
	assert.False(t, found, "key not removed")
	_, found = f.db.GetCoin(output(put, 0))
	assert.False(t, found, "created coin not removed")
	_, found = f.db.GetCoin(output(reg, 0))
	assert.True(t, found, "spent coin not restored")
	_, found = f.pool.Get(putId)
	assert.True(t, found, "update not returned to pool")

	// undo the registration
	_, err = f.chain.DisconnectTip()
	assert.Nil(t, err, "disconnect error")
	_, found = f.db.GetKeyValue(ns, []byte(constants.DisplayNameKey))
	assert.False(t, found, "namespace not removed")
	assert.Equal(t, uint64(0), f.db.KeyCount(), "wrong key count")
	assert.True(t, f.db.ValidateConsistency(), "database inconsistent")

	height, _, ok = f.chain.Tip()
	assert.True(t, ok, "empty chain")
	assert.Equal(t, uint64(1), height, "wrong tip")

	_, err = f.chain.DisconnectTip()
	assert.Nil(t, err, "disconnect error")
	_, _, ok = f.chain.Tip()
	assert.False(t, ok, "chain not empty")

	_, err = f.chain.DisconnectTip()
	assert.Equal(t, fault.ChainIsEmpty, err, "disconnect of empty chain")
}

func TestConnectIsAtomic(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	// no notification may escape a rejected block
	notifier := mocks.NewMockNotifier(ctl)
	f := setup(t, notifier)
	defer teardown(f)

	fund := funding(2, 2)
	_, err := f.chain.ConnectBlock(f.nextBlock(t, fund))
	assert.Nil(t, err, "connect funding block error")

	reg, ns := registration(output(fund, 0), namespace.Fixed, "good")
	bad := update(output(fund, 1), kevascript.PutScript(ns, []byte("key"), []byte("value"), address))

	_, err = f.chain.ConnectBlock(f.nextBlock(t, reg, bad))
	assert.Equal(t, fault.UpdateWithoutKevaInput, err, "block with bad update accepted")

	_, found := f.db.GetKeyValue(ns, []byte(constants.DisplayNameKey))
	assert.False(t, found, "partial block written")
	_, found = f.db.GetCoin(output(fund, 0))
	assert.True(t, found, "partial block spent a coin")
	assert.Equal(t, uint64(0), f.db.KeyCount(), "wrong key count")

	height, _, _ := f.chain.Tip()
	assert.Equal(t, uint64(1), height, "tip moved")
}

func TestConnectOrdering(t *testing.T) {
	f := setup(t, nil)
	defer teardown(f)

	first := f.nextBlock(t, funding(3, 1))
	_, err := f.chain.ConnectBlock(first)
	assert.Nil(t, err, "connect error")

	_, err = f.chain.ConnectBlock(first)
	assert.Equal(t, fault.BlockHeightMismatch, err, "repeated block accepted")

	// right height, wrong parent
	next := f.nextBlock(t, funding(4, 1))
	block, _ := next.Unpack()
	header := *block.Header
	header.PreviousBlock = merkle.NewDigest([]byte("elsewhere"))
	orphan, _, err := blockrecord.PackBlock(&header, block.Transactions)
	assert.Nil(t, err, "pack error")
	_, err = f.chain.ConnectBlock(orphan)
	assert.Equal(t, fault.PreviousBlockDigestDoesNotMatch, err, "orphan accepted")

	// spending a missing coin
	missing := funding(5, 1)
	missing.TxIn = append(missing.TxIn, transactionrecord.TxIn{
		PreviousOutPoint: output(funding(6, 1), 0),
	})
	_, err = f.chain.ConnectBlock(f.nextBlock(t, missing))
	assert.Equal(t, fault.InputCoinNotFound, err, "missing input accepted")

	packed, err := f.chain.Get(1)
	assert.Nil(t, err, "get error")
	assert.Equal(t, first, packed, "wrong stored block")

	_, err = f.chain.Get(2)
	assert.Equal(t, fault.BlockNotFound, err, "absent block found")
}

func TestDeleteDisplayNameKeepsDatabaseConsistent(t *testing.T) {
	f := setup(t, nil)
	defer teardown(f)

	// the fixture checks the keva database after every block
	fund := funding(7, 1)
	_, err := f.chain.ConnectBlock(f.nextBlock(t, fund))
	assert.Nil(t, err, "connect funding block error")

	reg, ns := registration(output(fund, 0), namespace.Legacy, "short lived")
	_, err = f.chain.ConnectBlock(f.nextBlock(t, reg))
	assert.Nil(t, err, "connect registration block error")

	displayKey := []byte(constants.DisplayNameKey)
	del := update(output(reg, 0), kevascript.DeleteScript(ns, displayKey, address))
	assert.NotPanics(t, func() {
		_, err = f.chain.ConnectBlock(f.nextBlock(t, del))
	}, "delete of the display name halted the node")
	assert.Nil(t, err, "connect delete block error")

	_, found := f.db.GetKeyValue(ns, displayKey)
	assert.False(t, found, "display name not deleted")
	assert.True(t, f.db.ValidateConsistency(), "database inconsistent")

	_, err = f.chain.DisconnectTip()
	assert.Nil(t, err, "disconnect error")
	_, found = f.db.GetKeyValue(ns, displayKey)
	assert.True(t, found, "display name not restored")
}
