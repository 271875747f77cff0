// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

// Package breaker implements a per-subscriber CLOSED/OPEN/HALF_OPEN circuit
// breaker, grounded on the ring-buffer-of-outcomes shape used by
// autobreaker's CircuitBreaker and the half-open probe/success-threshold
// idiom from kubernaut's retry/circuit-breaker handler. Unlike autobreaker
// this implementation needs timestamped eviction of outcomes within a
// sliding window, a poor fit for stdlib's fixed-size container/ring, so the
// ring buffer is a small hand-rolled slice, mirroring autobreaker's own
// struct-slice-backed counts rather than container/ring.
package breaker

import (
	"sync"
	"time"

	"github.com/nine-rivers/hookline/model"
)

// Settings configures one subscriber's breaker. New uses the values as
// given; Registry starts from its defaults and replaces only the fields a
// subscriber's BreakerOverride sets to a positive value.
type Settings struct {
	VolumeThreshold       int
	FailureThreshold      int
	ErrorThresholdPercent float64
	SlowCallRatePercent   float64
	SlowCallThreshold     time.Duration
	MonitoringPeriod      time.Duration
	ResetTimeout          time.Duration
	SuccessThreshold      int
	TimeoutPerCall        time.Duration
}

// DefaultSettings returns the service-wide breaker defaults.
func DefaultSettings() Settings {
	return Settings{
		VolumeThreshold:       10,
		FailureThreshold:      5,
		ErrorThresholdPercent: 50,
		SlowCallRatePercent:   100,
		SlowCallThreshold:     5 * time.Second,
		MonitoringPeriod:      60 * time.Second,
		ResetTimeout:          30 * time.Second,
		SuccessThreshold:      2,
		TimeoutPerCall:        10 * time.Second,
	}
}

// Result is what Allow returns; Allowed is false, with a RetryAfter hint,
// when an OPEN breaker rejects the attempt outright.
type Result struct {
	Allowed    bool
	RetryAfter time.Duration
}

// Breaker is one subscriber's circuit breaker. It is entirely in-memory and
// reconstructed fresh on restart.
type Breaker struct {
	subscriberID string
	settings     Settings

	mu                   sync.Mutex
	state                model.BreakerState
	consecutiveFailures  int
	consecutiveSuccesses int
	outcomes             []model.CallOutcome
	nextAttemptAt        time.Time
}

// New returns a breaker in the CLOSED state for one subscriber.
func New(subscriberID string, settings Settings) *Breaker {
	return &Breaker{
		subscriberID: subscriberID,
		settings:     settings,
		state:        model.BreakerClosed,
	}
}

// Allow reports whether a call may proceed. When the breaker is OPEN and
// the reset timeout has not elapsed, the call is rejected with a
// RetryAfter hint. When the reset timeout has elapsed, the breaker
// transitions to HALF_OPEN and the call is allowed through as a probe.
func (b *Breaker) Allow() Result {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()

	switch b.state {
	case model.BreakerOpen:
		if now.Before(b.nextAttemptAt) {
			return Result{Allowed: false, RetryAfter: b.nextAttemptAt.Sub(now)}
		}
		b.transitionTo(model.BreakerHalfOpen)
		return Result{Allowed: true}
	default:
		return Result{Allowed: true}
	}
}

// Record reports the outcome of a call that Allow permitted.
func (b *Breaker) Record(success bool, responseTime time.Duration, timeout bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	slow := responseTime >= b.settings.SlowCallThreshold

	b.outcomes = append(b.outcomes, model.CallOutcome{
		TimestampMillis: now.UnixMilli(),
		Success:         success,
		ResponseTimeMs:  responseTime.Milliseconds(),
		Slow:            slow,
		Timeout:         timeout,
	})
	b.evictOlderThan(now)

	if success {
		b.consecutiveFailures = 0
		b.consecutiveSuccesses++
	} else {
		b.consecutiveSuccesses = 0
		b.consecutiveFailures++
	}

	switch b.state {
	case model.BreakerHalfOpen:
		if !success {
			b.transitionTo(model.BreakerOpen)
			return
		}
		if b.consecutiveSuccesses >= b.settings.SuccessThreshold {
			b.transitionTo(model.BreakerClosed)
		}
	case model.BreakerClosed:
		if b.shouldOpen(now) {
			b.transitionTo(model.BreakerOpen)
		}
	}
}

// State returns the breaker's current state.
func (b *Breaker) State() model.BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Snapshot returns a copy of the breaker's state for observability/testing.
func (b *Breaker) Snapshot() model.CircuitBreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	outcomes := make([]model.CallOutcome, len(b.outcomes))
	copy(outcomes, b.outcomes)
	var nextAttempt int64
	if !b.nextAttemptAt.IsZero() {
		nextAttempt = b.nextAttemptAt.UnixMilli()
	}
	return model.CircuitBreakerState{
		SubscriberID:         b.subscriberID,
		State:                b.state,
		ConsecutiveFailures:  b.consecutiveFailures,
		ConsecutiveSuccesses: b.consecutiveSuccesses,
		Outcomes:             outcomes,
		NextAttemptAtMillis:  nextAttempt,
	}
}

func (b *Breaker) transitionTo(state model.BreakerState) {
	b.state = state
	switch state {
	case model.BreakerOpen:
		b.nextAttemptAt = time.Now().Add(b.settings.ResetTimeout)
	case model.BreakerClosed:
		b.consecutiveFailures = 0
		b.consecutiveSuccesses = 0
		b.outcomes = nil
	case model.BreakerHalfOpen:
		b.consecutiveSuccesses = 0
	}
}

// shouldOpen evaluates the sliding-window volume/failure/error/slow-call
// thresholds. Callers hold b.mu.
func (b *Breaker) shouldOpen(now time.Time) bool {
	b.evictOlderThan(now)

	volume := len(b.outcomes)
	if volume < b.settings.VolumeThreshold {
		return false
	}

	if b.consecutiveFailures >= b.settings.FailureThreshold {
		return true
	}

	var failures, slow int
	for _, o := range b.outcomes {
		if !o.Success {
			failures++
		}
		if o.Slow {
			slow++
		}
	}

	errorRate := 100 * float64(failures) / float64(volume)
	if errorRate >= b.settings.ErrorThresholdPercent {
		return true
	}

	slowRate := 100 * float64(slow) / float64(volume)
	return slowRate >= b.settings.SlowCallRatePercent
}

func (b *Breaker) evictOlderThan(now time.Time) {
	cutoff := now.Add(-b.settings.MonitoringPeriod).UnixMilli()
	i := 0
	for i < len(b.outcomes) && b.outcomes[i].TimestampMillis < cutoff {
		i++
	}
	if i > 0 {
		b.outcomes = b.outcomes[i:]
	}
}
