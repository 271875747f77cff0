// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package model

// DLQStatus is the lifecycle state of a DLQEntry.
type DLQStatus string

const (
	DLQStatusDeadLettered DLQStatus = "dead_lettered"
	DLQStatusRetrying     DLQStatus = "retrying"
)

// DefaultDLQMaxSize is the default cap on queue size; the oldest entries
// are trimmed once insertion would exceed it.
const DefaultDLQMaxSize = 10000

// DefaultDLQRetentionDays is how long an entry survives before the
// automatic expiry sweep purges it.
const DefaultDLQRetentionDays = 30

// DLQEntry freezes an exhausted delivery for manual inspection and replay.
type DLQEntry struct {
	ID            string    `json:"id"`
	SubscriberID  string    `json:"subscriber_id"`
	EventID       string    `json:"event_id"`
	EventType     string    `json:"event_type"`
	DeliveryID    string    `json:"delivery_id"`
	FailureReason string    `json:"failure_reason"`
	Status        DLQStatus `json:"status"`

	// OriginalAttemptCount is how many attempts the delivery made before
	// being dead-lettered the first time.
	OriginalAttemptCount int `json:"original_attempt_count"`

	// RetryCount is how many times the entry has been manually retried
	// via retry(entryId).
	RetryCount int `json:"retry_count"`

	// LastRetryResult records the outcome of the most recent manual
	// retry, set by updateStatus when the retry terminates.
	LastRetryResult string `json:"last_retry_result,omitempty"`

	// EventEnvelope is the frozen wire body for replay.
	EventEnvelope StringMap `json:"event_envelope"`

	DeadLetteredAt int64 `json:"dead_lettered_at"`
}

// DLQFilter narrows a list/retryAll/clear query.
type DLQFilter struct {
	SubscriberID string
	EventType    string
	Status       DLQStatus
	FromMillis   int64
	ToMillis     int64
	Paging       Paging
}
