// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

// Package history retains a flattened, queryable copy of every delivery
// attempt for analytics and audit, independent of the operational
// attempt/DLQ state. The query-builder split between a narrow Backend
// boundary and bucketed aggregation is grounded on the teacher's
// internal/store/events_subscription.go (squirrel-built filtered selects)
// and internal/store/helpers.go (driver-aware SQL), persisted through
// SQLStore.
package history

import (
	"github.com/nine-rivers/hookline/model"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const maxResponseBodyChars = 2048

// Backend is the persistence boundary Recorder delegates to.
type Backend interface {
	InsertDeliveryHistory(record *model.DeliveryHistoryRecord) error
	ListDeliveryHistory(filter model.HistoryFilter) ([]*model.DeliveryHistoryRecord, error)
	AggregateDeliveryHistory(filter model.HistoryFilter, bucket model.HistoryBucket) ([]*model.HistoryAggregate, error)
	DeleteDeliveryHistoryOlderThan(olderThanMillis int64) (int64, error)
}

// Recorder is the delivery history component.
type Recorder struct {
	backend         Backend
	retentionMillis int64
	logger          logrus.FieldLogger
}

// Config controls retention.
type Config struct {
	RetentionMillis int64
}

// DefaultConfig returns the spec's stated default: 90 days retention.
func DefaultConfig() Config {
	return Config{RetentionMillis: model.DefaultHistoryRetentionDays * 24 * 60 * 60 * 1000}
}

// New builds a Recorder.
func New(backend Backend, config Config, logger logrus.FieldLogger) *Recorder {
	if config.RetentionMillis <= 0 {
		config.RetentionMillis = model.DefaultHistoryRetentionDays * 24 * 60 * 60 * 1000
	}
	return &Recorder{
		backend:         backend,
		retentionMillis: config.RetentionMillis,
		logger:          logger.WithField("component", "history"),
	}
}

// Record persists a flattened copy of attempt, truncating the response
// body to maxResponseBodyChars. The compressed flag always records false
// for now; it exists so a real compressor can be slotted in later
// without a schema change.
func (r *Recorder) Record(attempt *model.DeliveryAttempt, event *model.Event, envelope model.StringMap) error {
	body := attempt.ResponseBody
	if len(body) > maxResponseBodyChars {
		body = body[:maxResponseBodyChars]
	}

	record := &model.DeliveryHistoryRecord{
		ID:            model.NewID(),
		SubscriberID:  attempt.SubscriberID,
		EventID:       attempt.EventID,
		AttemptNumber: attempt.AttemptNumber,
		Status:        attempt.Status,
		HTTPStatus:    attempt.HTTPStatus,
		DurationMs:    attempt.DurationMs,
		ResponseBody:  body,
		Compressed:    false,
		EventEnvelope: envelope,
		CreateAt:      model.GetMillis(),
	}
	if event != nil {
		record.EventType = event.Type
	}

	return errors.Wrap(r.backend.InsertDeliveryHistory(record), "failed to insert delivery history record")
}

// List returns history records matching filter.
func (r *Recorder) List(filter model.HistoryFilter) ([]*model.DeliveryHistoryRecord, error) {
	records, err := r.backend.ListDeliveryHistory(filter)
	return records, errors.Wrap(err, "failed to list delivery history")
}

// Aggregate returns per-bucket counts and success rates for filter's
// window, bucketed at the requested granularity.
func (r *Recorder) Aggregate(filter model.HistoryFilter, bucket model.HistoryBucket) ([]*model.HistoryAggregate, error) {
	aggregates, err := r.backend.AggregateDeliveryHistory(filter, bucket)
	return aggregates, errors.Wrap(err, "failed to aggregate delivery history")
}

// ExpireOlderThan purges history records older than the retention
// window. The orchestrator's hourly retention sweep does not call it; it
// runs supervisor.HistoryRetentionSupervisor against the store directly.
func (r *Recorder) ExpireOlderThan(now int64) (int64, error) {
	cutoff := now - r.retentionMillis
	removed, err := r.backend.DeleteDeliveryHistoryOlderThan(cutoff)
	return removed, errors.Wrap(err, "failed to expire delivery history")
}
