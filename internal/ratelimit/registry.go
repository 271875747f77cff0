// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package ratelimit

import (
	"sync"
	"time"

	"github.com/nine-rivers/hookline/model"
	"github.com/sirupsen/logrus"
)

// InactivityReclaim is how long a per-subscriber limiter may sit unused
// before the background sweep reclaims it.
const InactivityReclaim = 24 * time.Hour

type entry struct {
	limiter  Limiter
	lastSeen time.Time
}

// Registry is the admission-control layer: one global limiter checked
// first, plus one limiter per subscriber id created lazily. On any
// internal error it fails open, since admission control must never become
// a single point of failure for delivery.
type Registry struct {
	logger logrus.FieldLogger

	globalEnabled bool
	global        Limiter

	defaultConfig Config

	mu       sync.RWMutex
	limiters map[string]*entry
}

// NewRegistry returns a Registry with a global limiter built from
// globalConfig (enabled by default, matching the spec) and defaultConfig
// applied to any subscriber without an override.
func NewRegistry(logger logrus.FieldLogger, globalConfig, defaultConfig Config) *Registry {
	return &Registry{
		logger:        logger.WithField("component", "ratelimit"),
		globalEnabled: true,
		global:        newLimiter(globalConfig),
		defaultConfig: defaultConfig,
		limiters:      make(map[string]*entry),
	}
}

// DisableGlobal turns off the service-wide limiter, leaving only
// per-subscriber admission control.
func (r *Registry) DisableGlobal() {
	r.globalEnabled = false
}

// Allow checks the global limiter first (short-circuiting on rejection),
// then the subscriber's own limiter.
func (r *Registry) Allow(subscriberID string, override *model.RateLimitOverride) Result {
	now := time.Now()

	if r.globalEnabled {
		res := r.safeAllow(r.global, now)
		if !res.Allowed {
			return res
		}
	}

	return r.safeAllow(r.subscriberLimiter(subscriberID, override), now)
}

// safeAllow calls Allow and fails open (admits) if the call panics due to a
// programming error in a limiter implementation — admission control must
// not be a single point of failure for delivery.
func (r *Registry) safeAllow(l Limiter, now time.Time) (res Result) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.WithField("panic", rec).Error("rate limiter admission failed, failing open")
			res = Result{Allowed: true}
		}
	}()
	return l.Allow(now)
}

func (r *Registry) subscriberLimiter(subscriberID string, override *model.RateLimitOverride) Limiter {
	r.mu.RLock()
	e, ok := r.limiters[subscriberID]
	r.mu.RUnlock()
	if ok {
		r.mu.Lock()
		e.lastSeen = time.Now()
		r.mu.Unlock()
		return e.limiter
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.limiters[subscriberID]; ok {
		e.lastSeen = time.Now()
		return e.limiter
	}

	cfg := applyOverride(r.defaultConfig, override)
	e = &entry{limiter: newLimiter(cfg), lastSeen: time.Now()}
	r.limiters[subscriberID] = e
	return e.limiter
}

// ReclaimInactive removes limiters unused for at least InactivityReclaim,
// intended to be called from a periodic background sweep.
func (r *Registry) ReclaimInactive() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	threshold := time.Now().Add(-InactivityReclaim)
	removed := 0
	for id, e := range r.limiters {
		if e.lastSeen.Before(threshold) {
			delete(r.limiters, id)
			removed++
		}
	}
	return removed
}
