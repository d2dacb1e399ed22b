// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package block

import (
	"github.com/bitmark-inc/kevad/blockrecord"
	"github.com/bitmark-inc/kevad/fault"
)

// Get - the packed block at a height
func (c *Chain) Get(height uint64) (blockrecord.PackedBlock, error) {
	c.RLock()
	defer c.RUnlock()

	packed := c.db.GetBlock(height)
	if nil == packed {
		return nil, fault.BlockNotFound
	}
	return packed, nil
}
