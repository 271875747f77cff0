// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package store

import (
	"encoding/json"

	sq "github.com/Masterminds/squirrel"
	"github.com/nine-rivers/hookline/model"
	"github.com/pkg/errors"
)

const deliveryAttemptTable = "DeliveryAttempt"

// SaveAttempt persists one DeliveryAttempt transition, satisfying
// internal/dispatcher.AttemptStore.
func (sqlStore *SQLStore) SaveAttempt(attempt *model.DeliveryAttempt) error {
	if attempt.ID == "" {
		attempt.ID = model.NewID()
	}
	if attempt.CreateAt == 0 {
		attempt.CreateAt = model.GetMillis()
	}

	var responseHeaders interface{} = ""
	if len(attempt.ResponseHeaders) > 0 {
		data, err := json.Marshal(attempt.ResponseHeaders)
		if err != nil {
			return errors.Wrap(err, "failed to marshal response headers")
		}
		responseHeaders = string(data)
	}

	var httpStatus interface{}
	if attempt.HTTPStatus != nil {
		httpStatus = *attempt.HTTPStatus
	}

	_, err := sqlStore.execBuilder(sqlStore.db, sq.Insert(deliveryAttemptTable).
		SetMap(map[string]interface{}{
			"ID":              attempt.ID,
			"DeliveryID":      attempt.DeliveryID,
			"SubscriberID":    attempt.SubscriberID,
			"EventID":         attempt.EventID,
			"AttemptNumber":   attempt.AttemptNumber,
			"Status":          attempt.Status,
			"HTTPStatus":      httpStatus,
			"ResponseBody":    attempt.ResponseBody,
			"ResponseHeaders": responseHeaders,
			"ErrorText":       attempt.ErrorText,
			"DurationMs":      attempt.DurationMs,
			"NextRetryAt":     attempt.NextRetryAt,
			"FinalAttempt":    attempt.FinalAttempt,
			"CreateAt":        attempt.CreateAt,
		}),
	)
	if err != nil {
		return errors.Wrap(err, "failed to save delivery attempt")
	}
	return nil
}

// GetAttemptsForDelivery returns every attempt made for one deliveryID, in
// attempt order; mainly useful for DLQ inspection and tests.
func (sqlStore *SQLStore) GetAttemptsForDelivery(deliveryID string) ([]*model.DeliveryAttempt, error) {
	var rows []deliveryAttemptRow
	err := sqlStore.selectBuilder(sqlStore.db, &rows, sq.
		Select("ID", "DeliveryID", "SubscriberID", "EventID", "AttemptNumber", "Status",
			"HTTPStatus", "ResponseBody", "ResponseHeaders", "ErrorText", "DurationMs",
			"NextRetryAt", "FinalAttempt", "CreateAt").
		From(deliveryAttemptTable).
		Where("DeliveryID = ?", deliveryID).
		OrderBy("AttemptNumber ASC"),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get attempts for delivery")
	}

	attempts := make([]*model.DeliveryAttempt, 0, len(rows))
	for i := range rows {
		attempt, err := rows[i].toModel()
		if err != nil {
			return nil, err
		}
		attempts = append(attempts, attempt)
	}
	return attempts, nil
}

type deliveryAttemptRow struct {
	ID              string
	DeliveryID      string
	SubscriberID    string
	EventID         string
	AttemptNumber   int
	Status          string
	HTTPStatus      *int
	ResponseBody    string
	ResponseHeaders string
	ErrorText       string
	DurationMs      int64
	NextRetryAt     int64
	FinalAttempt    bool
	CreateAt        int64
}

func (r *deliveryAttemptRow) toModel() (*model.DeliveryAttempt, error) {
	attempt := &model.DeliveryAttempt{
		ID:            r.ID,
		DeliveryID:    r.DeliveryID,
		SubscriberID:  r.SubscriberID,
		EventID:       r.EventID,
		AttemptNumber: r.AttemptNumber,
		Status:        model.DeliveryStatus(r.Status),
		HTTPStatus:    r.HTTPStatus,
		ResponseBody:  r.ResponseBody,
		ErrorText:     r.ErrorText,
		DurationMs:    r.DurationMs,
		NextRetryAt:   r.NextRetryAt,
		FinalAttempt:  r.FinalAttempt,
		CreateAt:      r.CreateAt,
	}
	if r.ResponseHeaders != "" {
		if err := json.Unmarshal([]byte(r.ResponseHeaders), &attempt.ResponseHeaders); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal response headers")
		}
	}
	return attempt, nil
}
