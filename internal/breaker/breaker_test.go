// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package breaker

import (
	"testing"
	"time"

	"github.com/nine-rivers/hookline/model"
	"github.com/stretchr/testify/require"
)

func TestBreaker_OpensThenHalfOpensThenCloses(t *testing.T) {
	settings := DefaultSettings()
	settings.FailureThreshold = 5
	settings.VolumeThreshold = 10
	settings.ResetTimeout = 50 * time.Millisecond
	settings.SuccessThreshold = 2

	b := New("sub1", settings)

	for i := 0; i < 10; i++ {
		res := b.Allow()
		require.True(t, res.Allowed)
		b.Record(false, time.Millisecond, false)
	}
	require.Equal(t, model.BreakerOpen, b.State())

	res := b.Allow()
	require.False(t, res.Allowed)
	require.Greater(t, res.RetryAfter, time.Duration(0))

	time.Sleep(60 * time.Millisecond)

	res = b.Allow()
	require.True(t, res.Allowed)
	require.Equal(t, model.BreakerHalfOpen, b.State())

	b.Record(true, time.Millisecond, false)
	require.Equal(t, model.BreakerHalfOpen, b.State())

	res = b.Allow()
	require.True(t, res.Allowed)
	b.Record(true, time.Millisecond, false)
	require.Equal(t, model.BreakerClosed, b.State())
}

func TestBreaker_HalfOpenFailureReopens(t *testing.T) {
	settings := DefaultSettings()
	settings.FailureThreshold = 2
	settings.VolumeThreshold = 2
	settings.ResetTimeout = 10 * time.Millisecond

	b := New("sub1", settings)
	b.Allow()
	b.Record(false, time.Millisecond, false)
	b.Allow()
	b.Record(false, time.Millisecond, false)
	require.Equal(t, model.BreakerOpen, b.State())

	time.Sleep(20 * time.Millisecond)
	res := b.Allow()
	require.True(t, res.Allowed)
	require.Equal(t, model.BreakerHalfOpen, b.State())

	b.Record(false, time.Millisecond, false)
	require.Equal(t, model.BreakerOpen, b.State())
}

func TestRegistry_AppliesOverride(t *testing.T) {
	r := NewRegistry(DefaultSettings())
	override := &model.BreakerOverride{FailureThreshold: 1, VolumeThreshold: 1}
	b := r.Get("sub1", override)
	require.Same(t, b, r.Get("sub1", nil))

	b.Allow()
	b.Record(false, time.Millisecond, false)
	require.Equal(t, model.BreakerOpen, b.State())
}
