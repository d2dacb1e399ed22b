// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/kevad/fault"
)

const (
	recordsPerToken = 100 // listing page size covered by one token
	maximumCost     = 10  // charge for an unbounded listing
)

// Limit - limiting for a single request
func Limit(limiter *rate.Limiter) error {
	return reserve(limiter, 1)
}

// LimitListing - limiting for a request returning up to count
// records, zero count means no bound and is charged the maximum
func LimitListing(limiter *rate.Limiter, count int) error {
	return reserve(limiter, Cost(count))
}

// Cost - the number of tokens a listing of count records consumes
func Cost(count int) int {
	switch {
	case count < 0:
		return 1
	case 0 == count:
		return maximumCost
	}
	n := 1 + count/recordsPerToken
	if n > maximumCost {
		return maximumCost
	}
	return n
}

func reserve(limiter *rate.Limiter, n int) error {
	if n > limiter.Burst() {
		n = limiter.Burst()
	}
	r := limiter.ReserveN(time.Now(), n)
	if !r.OK() {
		return fault.RateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}
