// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances shared across kevad
//
// Each error is a single value so callers compare with == and the
// RPC layer can report the same text the node logs.
package fault
