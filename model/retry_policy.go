// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package model

import "time"

// RetryPolicy controls how the dispatcher schedules redelivery attempts for
// a single subscriber. It is embedded in Subscriber and stored as a JSON
// column the same way Headers is.
type RetryPolicy struct {
	// MaxAttempts is the total number of delivery attempts (including the
	// first) before the event is handed to the dead-letter queue.
	MaxAttempts int `json:"max_attempts"`

	// InitialBackoff is the delay before the second attempt.
	InitialBackoff time.Duration `json:"initial_backoff"`

	// MaxBackoff caps the exponential growth of the retry delay.
	MaxBackoff time.Duration `json:"max_backoff"`

	// BackoffMultiplier is applied to the previous delay on each retry.
	BackoffMultiplier float64 `json:"backoff_multiplier"`
}

// DefaultRetryPolicy mirrors the defaults used across the pack's backoff
// helpers: a handful of attempts, one second up to one minute, doubling.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:       8,
		InitialBackoff:    time.Second,
		MaxBackoff:        time.Minute,
		BackoffMultiplier: 2.0,
	}
}

// Value/Scan for RetryPolicy live on Headers-style JSON columns; RetryPolicy
// is stored inline as part of Subscriber's own JSON encoding rather than as
// a separate scanner, since it is never queried independently.
