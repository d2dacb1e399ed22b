// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/kevad/rpc/keva"
)

// Get - value of one key
func (client *Client) Get(namespace string, key string) (*keva.Info, error) {
	arguments := keva.GetArguments{
		Namespace: namespace,
		Key:       key,
	}
	var reply keva.Info
	if err := client.call("Keva.Get", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Filter - keys of one namespace
func (client *Client) Filter(arguments *keva.FilterArguments) (*keva.FilterReply, error) {
	var reply keva.FilterReply
	if err := client.call("Keva.Filter", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GroupGet - value of one key across a group
func (client *Client) GroupGet(namespace string, key string, initiator string) (*keva.Info, error) {
	arguments := keva.GroupGetArguments{
		Namespace: namespace,
		Key:       key,
		Initiator: initiator,
	}
	var reply keva.Info
	if err := client.call("Keva.GroupGet", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GroupFilter - keys across a group
func (client *Client) GroupFilter(arguments *keva.GroupFilterArguments) (*keva.FilterReply, error) {
	var reply keva.FilterReply
	if err := client.call("Keva.GroupFilter", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GroupShow - members of a group
func (client *Client) GroupShow(arguments *keva.GroupShowArguments) (*keva.GroupShowReply, error) {
	var reply keva.GroupShowReply
	if err := client.call("Keva.GroupShow", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Pending - unconfirmed operations, namespace may be empty
func (client *Client) Pending(namespace string) (*keva.PendingReply, error) {
	arguments := keva.PendingArguments{
		Namespace: namespace,
	}
	var reply keva.PendingReply
	if err := client.call("Keva.Pending", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
