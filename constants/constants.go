// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package constants

import (
	"time"
)

// size limits for keva data
const (
	MaxNamespaceLength = 255
	MaxKeyLength       = 255

	// shared with the script element size limit
	MaxValueLength = 3072
)

// reserved keys
const (
	// holds the display name of a namespace, written at registration
	DisplayNameKey = "_KEVA_NS_"

	// a key of the form AssociatePrefix + base58(namespace)
	// adds the namespace to the writer's group
	AssociatePrefix = "_g:"
)

// query defaults
const (
	DefaultMaxAge = 96000
)

// the time for an unconfirmed transaction to expire
const (
	ReservoirTimeout = 24 * time.Hour
	ExpiryInterval   = 10 * time.Minute
)
