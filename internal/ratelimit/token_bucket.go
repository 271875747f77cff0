// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package ratelimit

import (
	"math"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// tokenBucket delegates to golang.org/x/time/rate, the same library
// graaaaaaa-vrclog-companion's ratelimit.go wraps (there as one limiter per
// IP); refillRate is tokens/s and burstLimit is the bucket capacity.
type tokenBucket struct {
	mu         sync.Mutex
	limiter    *rate.Limiter
	refillRate float64
}

func newTokenBucket(burstLimit int, refillRate float64) *tokenBucket {
	if burstLimit <= 0 {
		burstLimit = 1
	}
	if refillRate <= 0 {
		refillRate = 1
	}
	return &tokenBucket{
		limiter:    rate.NewLimiter(rate.Limit(refillRate), burstLimit),
		refillRate: refillRate,
	}
}

func (b *tokenBucket) Allow(now time.Time) Result {
	b.mu.Lock()
	defer b.mu.Unlock()

	res := b.limiter.ReserveN(now, 1)
	if !res.OK() {
		return Result{Allowed: false, RetryAfter: 0}
	}
	delay := res.DelayFrom(now)
	if delay <= 0 {
		return Result{Allowed: true}
	}
	res.CancelAt(now)
	retryAfter := time.Duration(math.Ceil(delay.Seconds())) * time.Second
	return Result{Allowed: false, RetryAfter: retryAfter}
}
