// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package model

// BreakerState is one of the three legal circuit breaker states.
type BreakerState string

const (
	BreakerClosed   BreakerState = "CLOSED"
	BreakerOpen     BreakerState = "OPEN"
	BreakerHalfOpen BreakerState = "HALF_OPEN"
)

// CallOutcome is one recorded call result in a breaker's sliding-window
// ring buffer.
type CallOutcome struct {
	TimestampMillis int64
	Success         bool
	ResponseTimeMs  int64
	Slow            bool
	Timeout         bool
}

// CircuitBreakerState is the in-memory, per-subscriber state of a circuit
// breaker. It is reconstructed fresh on restart — it is never persisted,
// per spec.
type CircuitBreakerState struct {
	SubscriberID        string
	State               BreakerState
	ConsecutiveFailures int
	ConsecutiveSuccesses int
	Outcomes            []CallOutcome
	NextAttemptAtMillis int64
}
