// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package breaker

import (
	"sync"
	"time"

	"github.com/nine-rivers/hookline/model"
)

// Registry holds one Breaker per subscriber id, created lazily on first
// use. It is process-wide but sharded by key: each subscriber's breaker has
// a single owner (the registry's internal mutex only guards map access, not
// per-breaker state), per the concurrency model's "sharded registries, not
// global locks" design note.
type Registry struct {
	defaults Settings

	mu       sync.Mutex
	breakers map[string]*Breaker
}

// NewRegistry returns an empty registry using defaults for any subscriber
// without an override.
func NewRegistry(defaults Settings) *Registry {
	return &Registry{
		defaults: defaults,
		breakers: make(map[string]*Breaker),
	}
}

// Get returns the breaker for subscriberID, creating it (with override
// applied) on first access.
func (r *Registry) Get(subscriberID string, override *model.BreakerOverride) *Breaker {
	r.mu.Lock()
	defer r.mu.Unlock()

	if b, ok := r.breakers[subscriberID]; ok {
		return b
	}

	settings := r.defaults
	applyOverride(&settings, override)

	b := New(subscriberID, settings)
	r.breakers[subscriberID] = b
	return b
}

// Remove discards a subscriber's breaker state, e.g. when the subscriber is
// deleted from the registry.
func (r *Registry) Remove(subscriberID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.breakers, subscriberID)
}

func applyOverride(settings *Settings, override *model.BreakerOverride) {
	if override == nil {
		return
	}
	if override.VolumeThreshold > 0 {
		settings.VolumeThreshold = override.VolumeThreshold
	}
	if override.FailureThreshold > 0 {
		settings.FailureThreshold = override.FailureThreshold
	}
	if override.ErrorThresholdPercent > 0 {
		settings.ErrorThresholdPercent = override.ErrorThresholdPercent
	}
	if override.SlowCallRatePercent > 0 {
		settings.SlowCallRatePercent = override.SlowCallRatePercent
	}
	if override.SlowCallThresholdMs > 0 {
		settings.SlowCallThreshold = time.Duration(override.SlowCallThresholdMs) * time.Millisecond
	}
	if override.MonitoringPeriodMs > 0 {
		settings.MonitoringPeriod = time.Duration(override.MonitoringPeriodMs) * time.Millisecond
	}
	if override.ResetTimeoutMs > 0 {
		settings.ResetTimeout = time.Duration(override.ResetTimeoutMs) * time.Millisecond
	}
	if override.SuccessThreshold > 0 {
		settings.SuccessThreshold = override.SuccessThreshold
	}
}
