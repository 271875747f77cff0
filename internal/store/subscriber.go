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

const subscriberTable = "Subscriber"

var subscriberColumns = []string{
	"ID", "Name", "URL", "Secret", "EventTypePatterns", "CollectionFilter",
	"FilterExpression", "RateLimitOverride", "BreakerOverride", "CustomHeaders",
	"RetryPolicy", "Enabled", "CreateAt", "UpdateAt", "DeleteAt",
}

var subscriberSelect = sq.Select(subscriberColumns...).From(subscriberTable)

// subscriberRow mirrors the Subscriber table layout for sqlx scanning;
// the JSON-valued columns are decoded into model.Subscriber separately,
// matching the teacher's events.go extraData marshal/unmarshal idiom.
type subscriberRow struct {
	ID                string
	Name              string
	URL               string
	Secret            string
	EventTypePatterns string
	CollectionFilter  string
	FilterExpression  string
	RateLimitOverride sql.NullString
	BreakerOverride   sql.NullString
	CustomHeaders     string
	RetryPolicy       string
	Enabled           bool
	CreateAt          int64
	UpdateAt          int64
	DeleteAt          int64
}

func (r *subscriberRow) toModel() (*model.Subscriber, error) {
	sub := &model.Subscriber{
		ID:               r.ID,
		Name:             r.Name,
		URL:              r.URL,
		Secret:           r.Secret,
		CollectionFilter: r.CollectionFilter,
		FilterExpression: r.FilterExpression,
		Enabled:          r.Enabled,
		CreateAt:         r.CreateAt,
		UpdateAt:         r.UpdateAt,
		DeleteAt:         r.DeleteAt,
	}

	if r.EventTypePatterns != "" {
		if err := json.Unmarshal([]byte(r.EventTypePatterns), &sub.EventTypePatterns); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal event type patterns")
		}
	}
	if r.CustomHeaders != "" {
		if err := json.Unmarshal([]byte(r.CustomHeaders), &sub.CustomHeaders); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal custom headers")
		}
	}
	if r.RetryPolicy != "" {
		if err := json.Unmarshal([]byte(r.RetryPolicy), &sub.RetryPolicy); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal retry policy")
		}
	}
	if r.RateLimitOverride.Valid && r.RateLimitOverride.String != "" {
		sub.RateLimitOverride = &model.RateLimitOverride{}
		if err := json.Unmarshal([]byte(r.RateLimitOverride.String), sub.RateLimitOverride); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal rate limit override")
		}
	}
	if r.BreakerOverride.Valid && r.BreakerOverride.String != "" {
		sub.BreakerOverride = &model.BreakerOverride{}
		if err := json.Unmarshal([]byte(r.BreakerOverride.String), sub.BreakerOverride); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal breaker override")
		}
	}

	return sub, nil
}

func subscriberValues(sub *model.Subscriber) (map[string]interface{}, error) {
	eventTypePatterns, err := json.Marshal(sub.EventTypePatterns)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal event type patterns")
	}
	customHeaders, err := json.Marshal(sub.CustomHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal custom headers")
	}
	retryPolicy, err := json.Marshal(sub.RetryPolicy)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal retry policy")
	}

	var rateLimitOverride, breakerOverride interface{}
	if sub.RateLimitOverride != nil {
		data, err := json.Marshal(sub.RateLimitOverride)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal rate limit override")
		}
		rateLimitOverride = string(data)
	}
	if sub.BreakerOverride != nil {
		data, err := json.Marshal(sub.BreakerOverride)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal breaker override")
		}
		breakerOverride = string(data)
	}

	return map[string]interface{}{
		"ID":                sub.ID,
		"Name":              sub.Name,
		"URL":               sub.URL,
		"Secret":            sub.Secret,
		"EventTypePatterns": string(eventTypePatterns),
		"CollectionFilter":  sub.CollectionFilter,
		"FilterExpression":  sub.FilterExpression,
		"RateLimitOverride": rateLimitOverride,
		"BreakerOverride":   breakerOverride,
		"CustomHeaders":     string(customHeaders),
		"RetryPolicy":       string(retryPolicy),
		"Enabled":           sub.Enabled,
		"CreateAt":          sub.CreateAt,
		"UpdateAt":          sub.UpdateAt,
		"DeleteAt":          sub.DeleteAt,
	}, nil
}

// CreateSubscriber inserts a new subscriber.
func (sqlStore *SQLStore) CreateSubscriber(sub *model.Subscriber) error {
	sub.ID = model.NewID()
	sub.CreateAt = model.GetMillis()
	sub.UpdateAt = sub.CreateAt

	values, err := subscriberValues(sub)
	if err != nil {
		return err
	}

	_, err = sqlStore.execBuilder(sqlStore.db, sq.Insert(subscriberTable).SetMap(values))
	if err != nil {
		return errors.Wrap(err, "failed to create subscriber")
	}
	return nil
}

// UpdateSubscriber persists changes to an existing subscriber.
func (sqlStore *SQLStore) UpdateSubscriber(sub *model.Subscriber) error {
	sub.UpdateAt = model.GetMillis()

	values, err := subscriberValues(sub)
	if err != nil {
		return err
	}
	delete(values, "ID")
	delete(values, "CreateAt")

	_, err = sqlStore.execBuilder(sqlStore.db, sq.Update(subscriberTable).
		SetMap(values).
		Where("ID = ?", sub.ID),
	)
	if err != nil {
		return errors.Wrap(err, "failed to update subscriber")
	}
	return nil
}

// GetSubscriber fetches a subscriber by ID, returning nil if not found.
func (sqlStore *SQLStore) GetSubscriber(id string) (*model.Subscriber, error) {
	var row subscriberRow
	err := sqlStore.getBuilder(sqlStore.db, &row, subscriberSelect.Where("ID = ?", id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get subscriber")
	}
	return row.toModel()
}

// GetSubscribers fetches subscribers matching filter.
func (sqlStore *SQLStore) GetSubscribers(filter *model.SubscriberFilter) ([]*model.Subscriber, error) {
	query := subscriberSelect.OrderBy("CreateAt ASC")
	query = applyPagingFilter(query, filter.Paging)
	if filter.EnabledOnly {
		query = query.Where("Enabled = ?", true)
	}

	var rows []subscriberRow
	if err := sqlStore.selectBuilder(sqlStore.db, &rows, query); err != nil {
		return nil, errors.Wrap(err, "failed to get subscribers")
	}

	subs := make([]*model.Subscriber, 0, len(rows))
	for i := range rows {
		sub, err := rows[i].toModel()
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

// DeleteSubscriber marks the given subscriber as deleted.
func (sqlStore *SQLStore) DeleteSubscriber(id string) error {
	_, err := sqlStore.execBuilder(sqlStore.db, sq.Update(subscriberTable).
		Set("DeleteAt", model.GetMillis()).
		Set("UpdateAt", model.GetMillis()).
		Where("ID = ?", id).
		Where("DeleteAt = 0"),
	)
	if err != nil {
		return errors.Wrap(err, "failed to mark subscriber as deleted")
	}
	return nil
}
