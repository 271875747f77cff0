// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package ratelimit

import (
	"testing"
	"time"

	"github.com/nine-rivers/hookline/model"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestSlidingWindow_AdmitsThenRejects(t *testing.T) {
	w := newSlidingWindow(time.Second, 2)
	now := time.Now()
	require.True(t, w.Allow(now).Allowed)
	require.True(t, w.Allow(now).Allowed)
	res := w.Allow(now)
	require.False(t, res.Allowed)
	require.Greater(t, res.RetryAfter, time.Duration(0))
}

func TestSlidingWindow_ZeroMaxAdmitsFirstThenRejects(t *testing.T) {
	w := newSlidingWindow(time.Second, 0)
	now := time.Now()
	require.True(t, w.Allow(now).Allowed)
	require.False(t, w.Allow(now).Allowed)
}

func TestFixedWindow_ResetsOnBucketChange(t *testing.T) {
	w := newFixedWindow(10*time.Millisecond, 1)
	now := time.Now()
	require.True(t, w.Allow(now).Allowed)
	require.False(t, w.Allow(now).Allowed)

	later := now.Add(20 * time.Millisecond)
	require.True(t, w.Allow(later).Allowed)
}

func TestTokenBucket_BurstThenRefill(t *testing.T) {
	b := newTokenBucket(2, 100)
	now := time.Now()
	require.True(t, b.Allow(now).Allowed)
	require.True(t, b.Allow(now).Allowed)
	res := b.Allow(now)
	require.False(t, res.Allowed)
}

func TestRegistry_GlobalShortCircuits(t *testing.T) {
	global := Config{Algorithm: model.RateLimitAlgorithmFixedWindow, Window: time.Second, MaxRequests: 1}
	sub := Config{Algorithm: model.RateLimitAlgorithmFixedWindow, Window: time.Second, MaxRequests: 10}
	r := NewRegistry(logrus.New(), global, sub)

	require.True(t, r.Allow("sub1", nil).Allowed)
	require.False(t, r.Allow("sub1", nil).Allowed)
	require.False(t, r.Allow("sub2", nil).Allowed)
}

func TestRegistry_ReclaimInactive(t *testing.T) {
	r := NewRegistry(logrus.New(), DefaultConfig(), DefaultConfig())
	r.DisableGlobal()
	r.Allow("sub1", nil)
	r.mu.Lock()
	r.limiters["sub1"].lastSeen = time.Now().Add(-InactivityReclaim - time.Minute)
	r.mu.Unlock()

	removed := r.ReclaimInactive()
	require.Equal(t, 1, removed)
}
