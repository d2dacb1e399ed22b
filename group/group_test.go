// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package group_test

import (
	"bytes"
	"errors"
	"os"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kevad/chain"
	"github.com/bitmark-inc/kevad/constants"
	"github.com/bitmark-inc/kevad/fault"
	"github.com/bitmark-inc/kevad/group"
	"github.com/bitmark-inc/kevad/kevascript"
	"github.com/bitmark-inc/kevad/merkle"
	"github.com/bitmark-inc/kevad/namespace"
	"github.com/bitmark-inc/kevad/reservoir"
	"github.com/bitmark-inc/kevad/storage"
	"github.com/bitmark-inc/kevad/transactionrecord"
	"github.com/bitmark-inc/logger"
)

const testingDirName = "testing"

var address = []byte{0x51}

// Test main entrypoint
func TestMain(m *testing.M) {
	os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "trace",
		},
	}
	_ = logger.Initialise(logging)

	result := m.Run()

	logger.Finalise()
	os.RemoveAll(testingDirName)
	os.Exit(result)
}

func makeNamespace(seed string) []byte {
	o := transactionrecord.OutPoint{
		TxId: merkle.NewDigest([]byte(seed)),
	}
	return namespace.Fixed.Derive(o, chain.NamespaceVersionByte)
}

func associationKey(target []byte) []byte {
	return []byte(constants.AssociatePrefix + namespace.Encode(target))
}

// an in memory confirmed store
type record struct {
	ns     []byte
	key    []byte
	record *storage.KeyRecord
}

// failure is returned by the scans after every record was visited
type fakeChain struct {
	records []record
	failure error
}

func (c *fakeChain) ReadStore(f func(height uint64, store storage.Reader)) {
	f(1000, c)
}

func (c *fakeChain) put(ns []byte, key []byte, value string, height uint64) {
	for i, r := range c.records {
		if bytes.Equal(ns, r.ns) && bytes.Equal(key, r.key) {
			c.records = append(c.records[:i], c.records[i+1:]...)
			break
		}
	}
	c.records = append(c.records, record{
		ns:  ns,
		key: key,
		record: &storage.KeyRecord{
			Value:  []byte(value),
			Height: height,
		},
	})
	sort.Slice(c.records, func(i, j int) bool {
		return bytes.Compare(c.records[i].key, c.records[j].key) < 0
	})
}

func (c *fakeChain) GetKeyValue(ns []byte, key []byte) (*storage.KeyRecord, bool) {
	for _, r := range c.records {
		if bytes.Equal(ns, r.ns) && bytes.Equal(key, r.key) {
			return r.record, true
		}
	}
	return nil, false
}

func (c *fakeChain) IterateKeys(ns []byte, f func(key []byte, record *storage.KeyRecord) error) error {
	for _, r := range c.records {
		if bytes.Equal(ns, r.ns) {
			if err := f(r.key, r.record); nil != err {
				return err
			}
		}
	}
	return c.failure
}

func (c *fakeChain) IterateAll(f func(ns []byte, key []byte, record *storage.KeyRecord) error) error {
	for _, r := range c.records {
		if err := f(r.ns, r.key, r.record); nil != err {
			return err
		}
	}
	return nil
}

func (c *fakeChain) IterateAssociated(target []byte, f func(ns []byte, record *storage.KeyRecord) error) error {
	key := append([]byte(constants.AssociatePrefix), target...)
	for _, r := range c.records {
		if bytes.Equal(key, r.key) && 0 != len(r.record.Value) {
			if err := f(r.ns, r.record); nil != err {
				return err
			}
		}
	}
	return c.failure
}

func (c *fakeChain) KeyCount() uint64 {
	return uint64(len(c.records))
}

type fakePool struct {
	overlay reservoir.Overlay
	n       int
}

func (p *fakePool) ReadOverlay(f func(overlay *reservoir.Overlay)) {
	f(&p.overlay)
}

func (p *fakePool) put(ns []byte, key []byte, value string) {
	p.n += 1
	txId := merkle.NewDigest([]byte{byte(p.n)})
	p.overlay.Admit(txId, kevascript.Decode(kevascript.PutScript(ns, key, []byte(value), address)))
}

func newResolver() (*group.Resolver, *fakeChain, *fakePool) {
	c := &fakeChain{}
	p := &fakePool{}
	return group.New(logger.New("group-test"), c, p, chain.NamespaceVersionByte), c, p
}

func TestParseInitiator(t *testing.T) {
	testItems := []struct {
		s         string
		initiator group.Initiator
		err       error
	}{
		{"", group.All, nil},
		{"all", group.All, nil},
		{"self", group.Self, nil},
		{"other", group.Other, nil},
		{"others", group.All, fault.InvalidInitiator},
	}
	for _, item := range testItems {
		initiator, err := group.ParseInitiator(item.s)
		assert.Equal(t, item.err, err, item.s)
		assert.Equal(t, item.initiator, initiator, item.s)
	}
}

func TestHighestHeightWins(t *testing.T) {
	r, c, _ := newResolver()
	a := makeNamespace("a")
	b := makeNamespace("b")

	c.put(a, []byte("k"), "from a", 100)
	c.put(b, []byte("k"), "from b", 200)

	v, found := r.ResolveValue([][]byte{a, b}, []byte("k"))
	assert.True(t, found, "value not found")
	assert.Equal(t, []byte("from b"), v.Value, "older value won")
	assert.Equal(t, int64(200), v.Height, "wrong height")
	assert.Equal(t, b, v.Namespace, "wrong namespace")

	// same height: first in group order
	c.put(a, []byte("k"), "from a again", 200)
	v, _ = r.ResolveValue([][]byte{a, b}, []byte("k"))
	assert.Equal(t, []byte("from a again"), v.Value, "tie not broken by order")

	_, found = r.ResolveValue([][]byte{a, b}, []byte("absent"))
	assert.False(t, found, "absent key found")
}

func TestOverlayPrecedence(t *testing.T) {
	r, c, p := newResolver()
	ns := makeNamespace("ns")

	c.put(ns, []byte("k"), "confirmed", 100)
	p.put(ns, []byte("k"), "pending")

	v, found := r.ResolveValue([][]byte{ns}, []byte("k"))
	assert.True(t, found, "value not found")
	assert.Equal(t, []byte("pending"), v.Value, "confirmed value won")
	assert.Equal(t, int64(-1), v.Height, "pending height not -1")
	assert.True(t, v.Pending, "not marked pending")

	// a pending delete hides the confirmed value
	p.overlay.Admit(merkle.NewDigest([]byte("del")), kevascript.Decode(kevascript.DeleteScript(ns, []byte("k"), address)))
	v, found = r.ResolveValue([][]byte{ns}, []byte("k"))
	assert.True(t, found, "pending delete not found")
	assert.Equal(t, 0, len(v.Value), "pending delete has a value")
}

func TestGroupSources(t *testing.T) {
	r, c, p := newResolver()
	a := makeNamespace("a")
	b := makeNamespace("b")
	other := makeNamespace("other")
	pending := makeNamespace("pending")

	// other -> a confirmed
	c.put(other, associationKey(a), "1", 50)

	// a -> b confirmed
	c.put(a, associationKey(b), "1", 60)

	// a -> pending unconfirmed
	p.put(a, associationKey(pending), "1")

	members := r.Members(a, group.All)
	assert.Equal(t, 3, len(members), "wrong member count")
	assert.Equal(t, group.OtherConfirmed, members[0].Source, "wrong first source")
	assert.Equal(t, other, members[0].Namespace, "wrong other member")
	assert.Equal(t, group.SelfPending, members[1].Source, "wrong second source")
	assert.Equal(t, pending, members[1].Namespace, "wrong pending member")
	assert.Equal(t, group.SelfConfirmed, members[2].Source, "wrong third source")
	assert.Equal(t, b, members[2].Namespace, "wrong self member")

	assert.Equal(t, 2, len(r.ResolveGroup(a, group.Other)), "wrong other group")
	assert.Equal(t, 3, len(r.ResolveGroup(a, group.Self)), "wrong self group")
	assert.Equal(t, 4, len(r.ResolveGroup(a, group.All)), "wrong full group")

	g := r.ResolveGroup(a, group.All)
	assert.True(t, sort.SliceIsSorted(g, func(i, j int) bool {
		return bytes.Compare(g[i], g[j]) < 0
	}), "group not sorted")
}

func TestAssociationRetraction(t *testing.T) {
	r, c, p := newResolver()
	a := makeNamespace("a")
	b := makeNamespace("b")
	confirmed := makeNamespace("confirmed")

	p.put(a, associationKey(b), "1")
	p.put(a, associationKey(b), "")

	c.put(a, associationKey(confirmed), "1", 10)
	p.put(a, associationKey(confirmed), "")

	g := r.ResolveGroup(a, group.Self)
	assert.Equal(t, [][]byte{a}, g, "retracted associations kept")
}

func TestInvalidAssociationKeyIgnored(t *testing.T) {
	r, c, _ := newResolver()
	a := makeNamespace("a")

	c.put(a, []byte(constants.AssociatePrefix+"not-base58!"), "1", 10)
	assert.Equal(t, 0, len(r.Members(a, group.Self)), "invalid key accepted")
}

func TestScanFailureKeepsVisitedMembers(t *testing.T) {
	r, c, _ := newResolver()

	ns := makeNamespace("self")
	other := makeNamespace("other")
	friend := makeNamespace("friend")

	c.put(other, associationKey(ns), "1", 10)
	c.put(ns, associationKey(friend), "1", 11)
	c.failure = errors.New("corrupt record")

	members := r.Members(ns, group.All)
	assert.Equal(t, 2, len(members), "member count")

	sources := map[group.Source][]byte{}
	for _, m := range members {
		sources[m.Source] = m.Namespace
	}
	assert.Equal(t, other, sources[group.OtherConfirmed], "other confirmed")
	assert.Equal(t, friend, sources[group.SelfConfirmed], "self confirmed")

	assert.Equal(t, [][]byte{ns}, r.ResolveGroup(makeNamespace("lonely"), group.All), "empty group")
}
