// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package model

import "time"

// DeliveryStatus is the lifecycle state of one DeliveryAttempt.
type DeliveryStatus string

const (
	DeliveryStatusPending DeliveryStatus = "pending"
	DeliveryStatusSuccess DeliveryStatus = "success"
	DeliveryStatusFailed  DeliveryStatus = "failed"
	DeliveryStatusRetry   DeliveryStatus = "retry"
)

// DeliveryAttempt is one persisted attempt to deliver an event to a
// subscriber. For a given (subscriber, event) pair, the dispatcher creates
// exactly one terminal attempt: success, or failed with FinalAttempt true.
type DeliveryAttempt struct {
	ID             string         `json:"id"`
	DeliveryID     string         `json:"delivery_id"`
	SubscriberID   string         `json:"subscriber_id"`
	EventID        string         `json:"event_id"`
	AttemptNumber  int            `json:"attempt_number"`
	Status         DeliveryStatus `json:"status"`
	HTTPStatus     *int           `json:"http_status,omitempty"`
	ResponseBody   string         `json:"response_body,omitempty"`
	ResponseHeaders Headers       `json:"response_headers,omitempty"`
	ErrorText      string         `json:"error_text,omitempty"`
	DurationMs     int64          `json:"duration_ms"`
	NextRetryAt    int64          `json:"next_retry_at,omitempty"`
	FinalAttempt   bool           `json:"final_attempt"`
	CreateAt       int64          `json:"create_at"`
}

// DeliveryResult is the structured outcome the dispatcher's send path
// returns to its caller, per the error-handling design's surfaced-result
// contract. It never propagates a bare error for expected outcomes such as
// rate-limiting or an open circuit.
type DeliveryResult struct {
	Success    bool
	StatusCode int
	Err        *DispatchError
	Retryable  bool
	RetryAfter time.Duration
	DurationMs int64
}

// IsRetryableStatus reports whether an HTTP status code is in the
// dispatcher's retryable set.
func IsRetryableStatus(statusCode int) bool {
	switch statusCode {
	case 408, 429, 500, 502, 503, 504, 507, 509, 510:
		return true
	default:
		return false
	}
}
