// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package store

import (
	"database/sql"
	"encoding/json"

	sq "github.com/Masterminds/squirrel"
	"github.com/nine-rivers/hookline/model"
	"github.com/pkg/errors"
)

const dlqTable = "DLQEntry"

var dlqColumns = []string{
	"ID", "SubscriberID", "EventID", "EventType", "DeliveryID", "FailureReason",
	"Status", "OriginalAttemptCount", "RetryCount", "LastRetryResult",
	"EventEnvelope", "DeadLetteredAt",
}

var dlqSelect = sq.Select(dlqColumns...).From(dlqTable)

type dlqRow struct {
	ID                   string
	SubscriberID         string
	EventID              string
	EventType            string
	DeliveryID           string
	FailureReason        string
	Status               string
	OriginalAttemptCount int
	RetryCount           int
	LastRetryResult      sql.NullString
	EventEnvelope        string
	DeadLetteredAt       int64
}

func (r *dlqRow) toModel() (*model.DLQEntry, error) {
	entry := &model.DLQEntry{
		ID:                   r.ID,
		SubscriberID:         r.SubscriberID,
		EventID:              r.EventID,
		EventType:            r.EventType,
		DeliveryID:           r.DeliveryID,
		FailureReason:        r.FailureReason,
		Status:               model.DLQStatus(r.Status),
		OriginalAttemptCount: r.OriginalAttemptCount,
		RetryCount:           r.RetryCount,
		DeadLetteredAt:       r.DeadLetteredAt,
	}
	if r.LastRetryResult.Valid {
		entry.LastRetryResult = r.LastRetryResult.String
	}
	if r.EventEnvelope != "" {
		if err := json.Unmarshal([]byte(r.EventEnvelope), &entry.EventEnvelope); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal event envelope")
		}
	}
	return entry, nil
}

func dlqValues(entry *model.DLQEntry) (map[string]interface{}, error) {
	var envelope interface{}
	if len(entry.EventEnvelope) > 0 {
		data, err := json.Marshal(entry.EventEnvelope)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal event envelope")
		}
		envelope = string(data)
	}

	var lastRetryResult interface{}
	if entry.LastRetryResult != "" {
		lastRetryResult = entry.LastRetryResult
	}

	return map[string]interface{}{
		"ID":                   entry.ID,
		"SubscriberID":         entry.SubscriberID,
		"EventID":              entry.EventID,
		"EventType":            entry.EventType,
		"DeliveryID":           entry.DeliveryID,
		"FailureReason":        entry.FailureReason,
		"Status":               entry.Status,
		"OriginalAttemptCount": entry.OriginalAttemptCount,
		"RetryCount":           entry.RetryCount,
		"LastRetryResult":      lastRetryResult,
		"EventEnvelope":        envelope,
		"DeadLetteredAt":       entry.DeadLetteredAt,
	}, nil
}

// InsertDLQEntry persists a new entry, satisfying internal/dlq.Backend.
func (sqlStore *SQLStore) InsertDLQEntry(entry *model.DLQEntry) error {
	values, err := dlqValues(entry)
	if err != nil {
		return err
	}
	_, err = sqlStore.execBuilder(sqlStore.db, sq.Insert(dlqTable).SetMap(values))
	if err != nil {
		return errors.Wrap(err, "failed to insert dlq entry")
	}
	return nil
}

// GetDLQEntry fetches one entry by ID, returning nil if not found,
// satisfying internal/dlq.Backend.
func (sqlStore *SQLStore) GetDLQEntry(id string) (*model.DLQEntry, error) {
	var row dlqRow
	err := sqlStore.getBuilder(sqlStore.db, &row, dlqSelect.Where("ID = ?", id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get dlq entry")
	}
	return row.toModel()
}

// UpdateDLQEntry persists changes to an existing entry, satisfying
// internal/dlq.Backend.
func (sqlStore *SQLStore) UpdateDLQEntry(entry *model.DLQEntry) error {
	values, err := dlqValues(entry)
	if err != nil {
		return err
	}
	delete(values, "ID")

	_, err = sqlStore.execBuilder(sqlStore.db, sq.Update(dlqTable).
		SetMap(values).
		Where("ID = ?", entry.ID),
	)
	if err != nil {
		return errors.Wrap(err, "failed to update dlq entry")
	}
	return nil
}

// DeleteDLQEntry removes one entry, satisfying internal/dlq.Backend.
func (sqlStore *SQLStore) DeleteDLQEntry(id string) error {
	_, err := sqlStore.execBuilder(sqlStore.db, sq.Delete(dlqTable).Where("ID = ?", id))
	if err != nil {
		return errors.Wrap(err, "failed to delete dlq entry")
	}
	return nil
}

// ListDLQEntries returns entries matching filter, newest first, satisfying
// internal/dlq.Backend.
func (sqlStore *SQLStore) ListDLQEntries(filter model.DLQFilter) ([]*model.DLQEntry, error) {
	query := dlqSelect.OrderBy("DeadLetteredAt DESC")
	query = applyDLQFilter(query, filter)
	// DLQEntry has no DeleteAt column, so only the page bounds apply.
	paging := filter.Paging
	paging.IncludeDeleted = true
	query = applyPagingFilter(query, paging)

	var rows []dlqRow
	if err := sqlStore.selectBuilder(sqlStore.db, &rows, query); err != nil {
		return nil, errors.Wrap(err, "failed to list dlq entries")
	}

	entries := make([]*model.DLQEntry, 0, len(rows))
	for i := range rows {
		entry, err := rows[i].toModel()
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// CountDLQEntries returns the number of entries matching filter, satisfying
// internal/dlq.Backend.
func (sqlStore *SQLStore) CountDLQEntries(filter model.DLQFilter) (int64, error) {
	query := sq.Select("Count (*)").From(dlqTable)
	query = applyDLQFilter(query, filter)

	var result countResult
	if err := sqlStore.selectBuilder(sqlStore.db, &result, query); err != nil {
		return 0, errors.Wrap(err, "failed to count dlq entries")
	}
	count, err := result.value()
	if err != nil {
		return 0, errors.Wrap(err, "failed to read dlq count result")
	}
	return count, nil
}

// DeleteOldestDLQEntries trims the queue to keep entries, deleting the
// oldest first, satisfying internal/dlq.Backend.
func (sqlStore *SQLStore) DeleteOldestDLQEntries(keep int) (int64, error) {
	total, err := sqlStore.CountDLQEntries(model.DLQFilter{})
	if err != nil {
		return 0, err
	}
	if total <= int64(keep) {
		return 0, nil
	}

	overflow := total - int64(keep)
	var ids []string
	err = sqlStore.selectBuilder(sqlStore.db, &ids, sq.
		Select("ID").From(dlqTable).
		OrderBy("DeadLetteredAt ASC").
		Limit(uint64(overflow)),
	)
	if err != nil {
		return 0, errors.Wrap(err, "failed to select oldest dlq entries")
	}
	if len(ids) == 0 {
		return 0, nil
	}

	result, err := sqlStore.execBuilder(sqlStore.db, sq.Delete(dlqTable).Where(sq.Eq{"ID": ids}))
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete oldest dlq entries")
	}
	removed, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "failed to count removed dlq entries")
	}
	return removed, nil
}

// DeleteExpiredDLQEntries purges entries dead-lettered before
// olderThanMillis, satisfying internal/dlq.Backend.
func (sqlStore *SQLStore) DeleteExpiredDLQEntries(olderThanMillis int64) (int64, error) {
	result, err := sqlStore.execBuilder(sqlStore.db, sq.Delete(dlqTable).
		Where("DeadLetteredAt < ?", olderThanMillis),
	)
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete expired dlq entries")
	}
	removed, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "failed to count removed dlq entries")
	}
	return removed, nil
}

func applyDLQFilter(query sq.SelectBuilder, filter model.DLQFilter) sq.SelectBuilder {
	if filter.SubscriberID != "" {
		query = query.Where("SubscriberID = ?", filter.SubscriberID)
	}
	if filter.EventType != "" {
		query = query.Where("EventType = ?", filter.EventType)
	}
	if filter.Status != "" {
		query = query.Where("Status = ?", filter.Status)
	}
	if filter.FromMillis > 0 {
		query = query.Where("DeadLetteredAt >= ?", filter.FromMillis)
	}
	if filter.ToMillis > 0 {
		query = query.Where("DeadLetteredAt <= ?", filter.ToMillis)
	}
	return query
}
