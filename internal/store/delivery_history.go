// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package store

import (
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/nine-rivers/hookline/model"
	"github.com/pkg/errors"
)

const deliveryHistoryTable = "DeliveryHistory"

// bucketTruncExpr returns the driver-specific SQL expression that
// truncates CreateAt (epoch millis) down to the start of the requested
// bucket, mirroring the teacher's driver-aware SQL in store.go/helpers.go
// (there, a postgres/sqlite branch on DriverName()).
func bucketTruncExpr(driver string, bucket model.HistoryBucket) string {
	seconds := map[model.HistoryBucket]int64{
		model.HistoryBucketHour:  3600,
		model.HistoryBucketDay:   86400,
		model.HistoryBucketWeek:  7 * 86400,
		model.HistoryBucketMonth: 30 * 86400,
	}[bucket]
	if seconds == 0 {
		seconds = 86400
	}

	switch driver {
	case driverPostgres:
		return fmt.Sprintf("(CreateAt / 1000 / %d) * %d * 1000", seconds, seconds)
	default:
		return fmt.Sprintf("(CreateAt / 1000 / %d) * %d * 1000", seconds, seconds)
	}
}

// InsertDeliveryHistory persists one flattened history record, satisfying
// internal/history.Backend.
func (sqlStore *SQLStore) InsertDeliveryHistory(record *model.DeliveryHistoryRecord) error {
	if record.ID == "" {
		record.ID = model.NewID()
	}
	if record.CreateAt == 0 {
		record.CreateAt = model.GetMillis()
	}

	var envelope interface{} = ""
	if len(record.EventEnvelope) > 0 {
		data, err := json.Marshal(record.EventEnvelope)
		if err != nil {
			return errors.Wrap(err, "failed to marshal event envelope")
		}
		envelope = string(data)
	}

	var httpStatus interface{}
	if record.HTTPStatus != nil {
		httpStatus = *record.HTTPStatus
	}

	_, err := sqlStore.execBuilder(sqlStore.db, sq.Insert(deliveryHistoryTable).
		SetMap(map[string]interface{}{
			"ID":            record.ID,
			"SubscriberID":  record.SubscriberID,
			"EventID":       record.EventID,
			"EventType":     record.EventType,
			"AttemptNumber": record.AttemptNumber,
			"Status":        record.Status,
			"HTTPStatus":    httpStatus,
			"DurationMs":    record.DurationMs,
			"ResponseBody":  record.ResponseBody,
			"Compressed":    record.Compressed,
			"EventEnvelope": envelope,
			"CreateAt":      record.CreateAt,
		}),
	)
	if err != nil {
		return errors.Wrap(err, "failed to insert delivery history record")
	}
	return nil
}

// ListDeliveryHistory returns history rows matching filter, newest first,
// satisfying internal/history.Backend.
func (sqlStore *SQLStore) ListDeliveryHistory(filter model.HistoryFilter) ([]*model.DeliveryHistoryRecord, error) {
	query := sq.Select("ID", "SubscriberID", "EventID", "EventType", "AttemptNumber", "Status",
		"HTTPStatus", "DurationMs", "ResponseBody", "Compressed", "EventEnvelope", "CreateAt").
		From(deliveryHistoryTable).
		OrderBy("CreateAt DESC")
	query = applyHistoryFilter(query, filter)
	// DeliveryHistory has no DeleteAt column, so only the page bounds apply.
	paging := filter.Paging
	paging.IncludeDeleted = true
	query = applyPagingFilter(query, paging)

	var rows []deliveryHistoryRow
	if err := sqlStore.selectBuilder(sqlStore.db, &rows, query); err != nil {
		return nil, errors.Wrap(err, "failed to list delivery history")
	}

	records := make([]*model.DeliveryHistoryRecord, 0, len(rows))
	for i := range rows {
		record, err := rows[i].toModel()
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// AggregateDeliveryHistory returns bucketed counts and success rates for
// filter's window, satisfying internal/history.Backend.
func (sqlStore *SQLStore) AggregateDeliveryHistory(filter model.HistoryFilter, bucket model.HistoryBucket) ([]*model.HistoryAggregate, error) {
	bucketExpr := bucketTruncExpr(sqlStore.db.DriverName(), bucket)

	query := sq.Select(
		fmt.Sprintf("%s as BucketStart", bucketExpr),
		"COUNT(*) as Total",
		fmt.Sprintf("SUM(CASE WHEN Status = '%s' THEN 1 ELSE 0 END) as SuccessCount", model.DeliveryStatusSuccess),
		fmt.Sprintf("SUM(CASE WHEN Status = '%s' THEN 1 ELSE 0 END) as FailureCount", model.DeliveryStatusFailed),
	).From(deliveryHistoryTable).GroupBy("BucketStart").OrderBy("BucketStart ASC")
	query = applyHistoryFilter(query, filter)

	var aggregates []*model.HistoryAggregate
	if err := sqlStore.selectBuilder(sqlStore.db, &aggregates, query); err != nil {
		return nil, errors.Wrap(err, "failed to aggregate delivery history")
	}
	return aggregates, nil
}

// DeleteDeliveryHistoryOlderThan purges records whose CreateAt is below
// olderThanMillis, satisfying internal/history.Backend.
func (sqlStore *SQLStore) DeleteDeliveryHistoryOlderThan(olderThanMillis int64) (int64, error) {
	result, err := sqlStore.execBuilder(sqlStore.db, sq.Delete(deliveryHistoryTable).
		Where("CreateAt < ?", olderThanMillis),
	)
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete expired delivery history")
	}
	removed, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "failed to count removed delivery history rows")
	}
	return removed, nil
}

func applyHistoryFilter(query sq.SelectBuilder, filter model.HistoryFilter) sq.SelectBuilder {
	if filter.SubscriberID != "" {
		query = query.Where("SubscriberID = ?", filter.SubscriberID)
	}
	if filter.EventType != "" {
		query = query.Where("EventType = ?", filter.EventType)
	}
	if filter.FromMillis > 0 {
		query = query.Where("CreateAt >= ?", filter.FromMillis)
	}
	if filter.ToMillis > 0 {
		query = query.Where("CreateAt <= ?", filter.ToMillis)
	}
	return query
}

type deliveryHistoryRow struct {
	ID            string
	SubscriberID  string
	EventID       string
	EventType     string
	AttemptNumber int
	Status        string
	HTTPStatus    *int
	DurationMs    int64
	ResponseBody  string
	Compressed    bool
	EventEnvelope string
	CreateAt      int64
}

func (r *deliveryHistoryRow) toModel() (*model.DeliveryHistoryRecord, error) {
	record := &model.DeliveryHistoryRecord{
		ID:            r.ID,
		SubscriberID:  r.SubscriberID,
		EventID:       r.EventID,
		EventType:     r.EventType,
		AttemptNumber: r.AttemptNumber,
		Status:        model.DeliveryStatus(r.Status),
		HTTPStatus:    r.HTTPStatus,
		DurationMs:    r.DurationMs,
		ResponseBody:  r.ResponseBody,
		Compressed:    r.Compressed,
		CreateAt:      r.CreateAt,
	}
	if r.EventEnvelope != "" {
		if err := json.Unmarshal([]byte(r.EventEnvelope), &record.EventEnvelope); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal event envelope")
		}
	}
	return record, nil
}
