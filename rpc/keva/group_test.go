// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keva_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kevad/fault"
	"github.com/bitmark-inc/kevad/namespace"
	"github.com/bitmark-inc/kevad/rpc/keva"
)

func TestGroupGet(t *testing.T) {
	f := newFixture(t)
	defer f.teardown()

	var reply keva.Info
	err := f.rpc.GroupGet(&keva.GroupGetArguments{
		Namespace: namespace.Encode(f.a),
		Key:       "k1",
	}, &reply)
	assert.Nil(t, err, "wrong GroupGet")
	assert.Equal(t, "b1", reply.Value, "most recent member should win")
	assert.Equal(t, int64(40), *reply.Height, "wrong height")
	assert.Equal(t, namespace.Encode(f.b), reply.Namespace, "wrong namespace")

	reply = keva.Info{}
	err = f.rpc.GroupGet(&keva.GroupGetArguments{
		Namespace: namespace.Encode(f.a),
		Key:       "k1",
		Initiator: "self",
	}, &reply)
	assert.Nil(t, err, "wrong GroupGet")
	assert.Equal(t, "v1", reply.Value, "self group is only the namespace")
	assert.Equal(t, namespace.Encode(f.a), reply.Namespace, "wrong namespace")

	f.put(f.a, []byte("k1"), "pending")
	reply = keva.Info{}
	err = f.rpc.GroupGet(&keva.GroupGetArguments{
		Namespace: namespace.Encode(f.a),
		Key:       "k1",
	}, &reply)
	assert.Nil(t, err, "wrong GroupGet")
	assert.Equal(t, "pending", reply.Value, "pending should win")
	assert.Equal(t, int64(-1), *reply.Height, "wrong height")
	assert.Equal(t, namespace.Encode(f.a), reply.Namespace, "wrong namespace")

	reply = keva.Info{}
	err = f.rpc.GroupGet(&keva.GroupGetArguments{
		Namespace: namespace.Encode(f.a),
		Key:       "absent",
	}, &reply)
	assert.Nil(t, err, "wrong GroupGet")
	assert.Equal(t, "absent", reply.Key, "wrong key")
	assert.Nil(t, reply.Height, "absent key has no height")
}

func TestGroupGetInvalidInitiator(t *testing.T) {
	f := newFixture(t)
	defer f.teardown()

	var reply keva.Info
	err := f.rpc.GroupGet(&keva.GroupGetArguments{
		Namespace: namespace.Encode(f.a),
		Key:       "k1",
		Initiator: "both",
	}, &reply)
	assert.Equal(t, fault.InvalidInitiator, err, "wrong error")
}

func TestGroupFilter(t *testing.T) {
	f := newFixture(t)
	defer f.teardown()

	var reply keva.FilterReply
	err := f.rpc.GroupFilter(&keva.GroupFilterArguments{
		Namespace: namespace.Encode(f.a),
		Regexp:    "^k",
	}, &reply)
	assert.Nil(t, err, "wrong GroupFilter")
	assert.Equal(t, []string{"k1", "k2"}, keysOf(reply.Keys), "wrong keys")
	assert.Equal(t, "b1", reply.Keys[0].Value, "most recent k1 should win")
	assert.Equal(t, namespace.Encode(f.b), reply.Keys[0].Namespace, "wrong namespace")
	assert.Equal(t, namespace.Encode(f.a), reply.Keys[1].Namespace, "wrong namespace")

	reply = keva.FilterReply{}
	err = f.rpc.GroupFilter(&keva.GroupFilterArguments{
		Namespace: namespace.Encode(f.a),
		Initiator: "self",
	}, &reply)
	assert.Nil(t, err, "wrong GroupFilter")
	assert.Equal(t, []string{"k1", "k2", "other"}, keysOf(reply.Keys), "display name should be skipped")
	assert.Equal(t, "v1", reply.Keys[0].Value, "wrong value")

	reply = keva.FilterReply{}
	err = f.rpc.GroupFilter(&keva.GroupFilterArguments{
		Namespace: namespace.Encode(f.a),
		Stat:      "stat",
	}, &reply)
	assert.Nil(t, err, "wrong GroupFilter")
	assert.Equal(t, &keva.Stat{Blocks: tipHeight, Count: 5}, reply.Stat, "wrong stat")
}

func TestGroupShow(t *testing.T) {
	f := newFixture(t)
	defer f.teardown()

	txId := f.put(f.a, associationKey(f.c), "1")

	var reply keva.GroupShowReply
	err := f.rpc.GroupShow(&keva.GroupShowArguments{
		Namespace: namespace.Encode(f.a),
	}, &reply)
	assert.Nil(t, err, "wrong GroupShow")
	if !assert.Equal(t, 2, len(reply.Namespaces), "wrong member count") {
		return
	}

	other := reply.Namespaces[0]
	assert.Equal(t, namespace.Encode(f.b), other.NamespaceId, "wrong other member")
	assert.Equal(t, "beta", other.DisplayName, "wrong display name")
	assert.Equal(t, int64(41), other.Height, "wrong height")
	assert.True(t, other.Initiator, "other member created the association")

	pending := reply.Namespaces[1]
	assert.Equal(t, namespace.Encode(f.c), pending.NamespaceId, "wrong pending member")
	assert.Equal(t, "", pending.DisplayName, "unregistered member has no name")
	assert.Equal(t, int64(-1), pending.Height, "wrong height")
	assert.Equal(t, txId.String(), pending.TxId, "wrong txid")
	assert.False(t, pending.Initiator, "self association")

	reply = keva.GroupShowReply{}
	err = f.rpc.GroupShow(&keva.GroupShowArguments{
		Namespace: namespace.Encode(f.a),
		MaxAge:    intPointer(10),
	}, &reply)
	assert.Nil(t, err, "wrong GroupShow")
	assert.Equal(t, 1, len(reply.Namespaces), "pending member ignores maxage")

	reply = keva.GroupShowReply{}
	err = f.rpc.GroupShow(&keva.GroupShowArguments{
		Namespace: namespace.Encode(f.a),
		Stat:      "stat",
	}, &reply)
	assert.Nil(t, err, "wrong GroupShow")
	assert.Equal(t, &keva.Stat{Blocks: tipHeight, Count: 2}, reply.Stat, "wrong stat")
}
