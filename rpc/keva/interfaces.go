// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keva

import (
	"github.com/bitmark-inc/kevad/reservoir"
	"github.com/bitmark-inc/kevad/storage"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

// ChainReader - runs f while holding the chain state lock
type ChainReader interface {
	ReadStore(f func(height uint64, store storage.Reader))
}

// PoolReader - runs f while holding the pool lock
type PoolReader interface {
	ReadOverlay(f func(overlay *reservoir.Overlay))
}
