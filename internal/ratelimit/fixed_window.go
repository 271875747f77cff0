// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package ratelimit

import (
	"math"
	"sync"
	"time"
)

// fixedWindow buckets time into W-sized slots by index floor(now/W) and
// resets its counter whenever the bucket index changes.
type fixedWindow struct {
	mu          sync.Mutex
	window      time.Duration
	maxRequests int
	bucket      int64
	count       int
}

func newFixedWindow(window time.Duration, maxRequests int) *fixedWindow {
	if window <= 0 {
		window = time.Second
	}
	return &fixedWindow{window: window, maxRequests: maxRequests}
}

func (f *fixedWindow) Allow(now time.Time) Result {
	f.mu.Lock()
	defer f.mu.Unlock()

	bucket := now.UnixNano() / int64(f.window)
	if bucket != f.bucket {
		f.bucket = bucket
		f.count = 0
	}

	if f.count == 0 || f.count < f.maxRequests {
		f.count++
		return Result{Allowed: true}
	}

	nextBucketStart := time.Unix(0, (f.bucket+1)*int64(f.window))
	retryAfter := nextBucketStart.Sub(now)
	if retryAfter < 0 {
		retryAfter = 0
	}
	return Result{
		Allowed:    false,
		RetryAfter: time.Duration(math.Ceil(retryAfter.Seconds())) * time.Second,
	}
}
