// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package model

// RateLimitAlgorithm selects the admission algorithm a subscriber override
// uses; the zero value means "use the service default".
type RateLimitAlgorithm string

const (
	RateLimitAlgorithmSlidingWindow RateLimitAlgorithm = "sliding_window"
	RateLimitAlgorithmFixedWindow   RateLimitAlgorithm = "fixed_window"
	RateLimitAlgorithmTokenBucket   RateLimitAlgorithm = "token_bucket"
)

// RateLimitOverride lets a subscriber tighten or loosen the service-wide
// admission defaults. Zero-valued fields fall back to the default configured
// on the limiter.
type RateLimitOverride struct {
	Algorithm   RateLimitAlgorithm `json:"algorithm,omitempty"`
	WindowMs    int64              `json:"window_ms,omitempty"`
	MaxRequests int                `json:"max_requests,omitempty"`
	BurstLimit  int                `json:"burst_limit,omitempty"`
	RefillRate  float64            `json:"refill_rate,omitempty"`
}

// BreakerOverride lets a subscriber tighten or loosen the service-wide
// circuit breaker defaults.
type BreakerOverride struct {
	VolumeThreshold       int     `json:"volume_threshold,omitempty"`
	FailureThreshold      int     `json:"failure_threshold,omitempty"`
	ErrorThresholdPercent float64 `json:"error_threshold_percent,omitempty"`
	SlowCallRatePercent   float64 `json:"slow_call_rate_percent,omitempty"`
	SlowCallThresholdMs   int64   `json:"slow_call_threshold_ms,omitempty"`
	MonitoringPeriodMs    int64   `json:"monitoring_period_ms,omitempty"`
	ResetTimeoutMs        int64   `json:"reset_timeout_ms,omitempty"`
	SuccessThreshold      int     `json:"success_threshold,omitempty"`
}

// Subscriber is a registered webhook endpoint. The core treats it as a
// read-only snapshot per event; the CRUD surface that mutates it lives
// outside this module.
type Subscriber struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	URL    string `json:"url"`
	Secret string `json:"secret,omitempty"`

	// EventTypePatterns holds glob patterns (e.g. "issue.*") matched
	// against the derived event type.
	EventTypePatterns StringSet `json:"event_type_patterns"`

	// CollectionFilter, when non-empty, restricts matching to changes
	// from one namespace collection (e.g. "Issue").
	CollectionFilter string `json:"collection_filter,omitempty"`

	// FilterExpression is compiled and evaluated by the filter engine.
	// An empty expression matches everything.
	FilterExpression string `json:"filter_expression,omitempty"`

	RateLimitOverride *RateLimitOverride `json:"rate_limit_override,omitempty"`
	BreakerOverride   *BreakerOverride   `json:"breaker_override,omitempty"`

	CustomHeaders Headers     `json:"custom_headers"`
	RetryPolicy   RetryPolicy `json:"retry_policy"`

	Enabled bool `json:"enabled"`

	CreateAt int64 `json:"create_at"`
	UpdateAt int64 `json:"update_at"`
	DeleteAt int64 `json:"delete_at"`
}

// SubscriberFilter narrows a subscriber listing query.
type SubscriberFilter struct {
	EnabledOnly bool
	Paging      Paging
}

// IsDeleted reports whether the subscriber has been soft-deleted.
func (s *Subscriber) IsDeleted() bool {
	return s.DeleteAt != 0
}

// MatchesEventType reports whether at least one of the subscriber's
// patterns matches the given event type, using '*' as a trailing wildcard
// (e.g. "issue.*" matches "issue.created").
func (s *Subscriber) MatchesEventType(eventType string) bool {
	for _, pattern := range s.EventTypePatterns {
		if globMatch(pattern, eventType) {
			return true
		}
	}
	return false
}

func globMatch(pattern, value string) bool {
	if pattern == "" {
		return false
	}
	if pattern == "*" {
		return true
	}
	if pattern == value {
		return true
	}
	if len(pattern) > 0 && pattern[len(pattern)-1] == '*' {
		prefix := pattern[:len(pattern)-1]
		return len(value) >= len(prefix) && value[:len(prefix)] == prefix
	}
	return false
}
