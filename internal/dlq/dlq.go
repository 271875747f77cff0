// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

// Package dlq implements the dead-letter queue: persisting exhausted
// deliveries and supporting manual replay. Entry lifecycle and error
// categorization are grounded on
// other_examples/tomtom215-cartographus/internal/eventprocessor/dlq.go,
// adapted to this spec's add/retry/list/clear/retryAll/expiry operations
// and persisted through internal/store's SQLStore.
package dlq

import (
	"github.com/nine-rivers/hookline/model"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Backend is the persistence boundary the queue delegates to.
type Backend interface {
	InsertDLQEntry(entry *model.DLQEntry) error
	GetDLQEntry(id string) (*model.DLQEntry, error)
	UpdateDLQEntry(entry *model.DLQEntry) error
	DeleteDLQEntry(id string) error
	ListDLQEntries(filter model.DLQFilter) ([]*model.DLQEntry, error)
	CountDLQEntries(filter model.DLQFilter) (int64, error)
	DeleteOldestDLQEntries(keep int) (int64, error)
	DeleteExpiredDLQEntries(olderThanMillis int64) (int64, error)
}

// Notifier is called whenever an entry is added, letting the orchestrator
// wire up metrics or alerting without the queue depending on them
// directly.
type Notifier func(entry *model.DLQEntry)

// Queue is the dead-letter queue.
type Queue struct {
	backend         Backend
	maxSize         int
	retentionMillis int64
	onAdded         Notifier
	logger          logrus.FieldLogger
}

// Config controls queue-wide limits.
type Config struct {
	MaxSize         int
	RetentionMillis int64
}

// DefaultConfig returns the spec's stated defaults: 10,000 entries, 30
// days retention.
func DefaultConfig() Config {
	return Config{
		MaxSize:         model.DefaultDLQMaxSize,
		RetentionMillis: model.DefaultDLQRetentionDays * 24 * 60 * 60 * 1000,
	}
}

// New builds a Queue. onAdded may be nil.
func New(backend Backend, config Config, onAdded Notifier, logger logrus.FieldLogger) *Queue {
	if config.MaxSize <= 0 {
		config.MaxSize = model.DefaultDLQMaxSize
	}
	return &Queue{
		backend:         backend,
		maxSize:         config.MaxSize,
		retentionMillis: config.RetentionMillis,
		onAdded:         onAdded,
		logger:          logger.WithField("component", "dlq"),
	}
}

// Add freezes a delivery that exhausted its retry budget, trims the tail
// if the queue would exceed maxSize, and notifies onAdded.
func (q *Queue) Add(attempt *model.DeliveryAttempt, event *model.Event, envelope model.StringMap, failureReason string) error {
	entry := &model.DLQEntry{
		ID:                   model.NewID(),
		SubscriberID:         attempt.SubscriberID,
		EventID:              attempt.EventID,
		DeliveryID:           attempt.DeliveryID,
		FailureReason:        failureReason,
		Status:               model.DLQStatusDeadLettered,
		OriginalAttemptCount: attempt.AttemptNumber,
		EventEnvelope:        envelope,
		DeadLetteredAt:       model.GetMillis(),
	}
	if event != nil {
		entry.EventType = event.Type
	}

	if err := q.backend.InsertDLQEntry(entry); err != nil {
		return errors.Wrap(err, "failed to insert dlq entry")
	}

	if trimmed, err := q.backend.DeleteOldestDLQEntries(q.maxSize); err != nil {
		q.logger.WithError(err).Error("failed to trim dlq to max size")
	} else if trimmed > 0 {
		q.logger.WithField("trimmed", trimmed).Info("trimmed dlq entries over max size")
	}

	if q.onAdded != nil {
		q.onAdded(entry)
	}
	return nil
}

// ReplayDelivery is a re-wrapped delivery marked as a DLQ replay, returned
// by Retry for the caller to resubmit through the dispatcher.
type ReplayDelivery struct {
	EntryID      string
	SubscriberID string
	EventID      string
	EventEnvelope model.StringMap
}

// Retry marks entryId retrying, increments its retry count, and returns
// the delivery for the caller to resubmit.
func (q *Queue) Retry(entryID string) (*ReplayDelivery, error) {
	entry, err := q.backend.GetDLQEntry(entryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load dlq entry")
	}
	if entry == nil {
		return nil, errors.Errorf("dlq entry %s not found", entryID)
	}

	entry.Status = model.DLQStatusRetrying
	entry.RetryCount++
	if err := q.backend.UpdateDLQEntry(entry); err != nil {
		return nil, errors.Wrap(err, "failed to update dlq entry for retry")
	}

	return &ReplayDelivery{
		EntryID:       entry.ID,
		SubscriberID:  entry.SubscriberID,
		EventID:       entry.EventID,
		EventEnvelope: entry.EventEnvelope,
	}, nil
}

// UpdateStatus records the outcome of a manual retry: success removes the
// entry entirely; failure restores it to dead_lettered with the result
// stamped.
func (q *Queue) UpdateStatus(entryID string, success bool) error {
	if success {
		if err := q.backend.DeleteDLQEntry(entryID); err != nil {
			return errors.Wrap(err, "failed to delete dlq entry after successful replay")
		}
		return nil
	}

	entry, err := q.backend.GetDLQEntry(entryID)
	if err != nil {
		return errors.Wrap(err, "failed to load dlq entry")
	}
	if entry == nil {
		return errors.Errorf("dlq entry %s not found", entryID)
	}
	entry.Status = model.DLQStatusDeadLettered
	entry.LastRetryResult = "failure"
	return errors.Wrap(q.backend.UpdateDLQEntry(entry), "failed to restore dlq entry after failed replay")
}

// List returns entries matching filter, newest first.
func (q *Queue) List(filter model.DLQFilter) ([]*model.DLQEntry, error) {
	entries, err := q.backend.ListDLQEntries(filter)
	return entries, errors.Wrap(err, "failed to list dlq entries")
}

// Clear removes every entry matching filter.
func (q *Queue) Clear(filter model.DLQFilter) (int64, error) {
	entries, err := q.backend.ListDLQEntries(filter)
	if err != nil {
		return 0, errors.Wrap(err, "failed to list dlq entries for clear")
	}
	var removed int64
	for _, e := range entries {
		if err := q.backend.DeleteDLQEntry(e.ID); err != nil {
			q.logger.WithError(err).WithField("entry", e.ID).Error("failed to delete dlq entry during clear")
			continue
		}
		removed++
	}
	return removed, nil
}

// RetryAll marks every entry matching filter as retrying and returns their
// replay deliveries.
func (q *Queue) RetryAll(filter model.DLQFilter) ([]*ReplayDelivery, error) {
	entries, err := q.backend.ListDLQEntries(filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list dlq entries for retryAll")
	}
	replays := make([]*ReplayDelivery, 0, len(entries))
	for _, e := range entries {
		replay, err := q.Retry(e.ID)
		if err != nil {
			q.logger.WithError(err).WithField("entry", e.ID).Error("failed to mark entry retrying during retryAll")
			continue
		}
		replays = append(replays, replay)
	}
	return replays, nil
}

// ExpireOlderThan purges entries dead-lettered before the retention
// window, intended to be driven by an hourly supervisor.Doer.
func (q *Queue) ExpireOlderThan(now int64) (int64, error) {
	cutoff := now - q.retentionMillis
	removed, err := q.backend.DeleteExpiredDLQEntries(cutoff)
	return removed, errors.Wrap(err, "failed to expire dlq entries")
}
