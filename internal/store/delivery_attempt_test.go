// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package store

import (
	"testing"

	"github.com/nine-rivers/hookline/model"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestDeliveryAttemptStore_SaveAndGetForDelivery(t *testing.T) {
	logger := log.New().WithField("test", t.Name())
	sqlStore := MakeTestSQLStore(t, logger)

	deliveryID := model.NewID()
	status := 503

	first := &model.DeliveryAttempt{
		DeliveryID:    deliveryID,
		SubscriberID:  model.NewID(),
		EventID:       model.NewID(),
		AttemptNumber: 1,
		Status:        model.DeliveryStatusFailed,
		HTTPStatus:    &status,
		ResponseBody:  "service unavailable",
		DurationMs:    42,
		NextRetryAt:   model.GetMillis() + 1000,
	}
	second := &model.DeliveryAttempt{
		DeliveryID:    deliveryID,
		SubscriberID:  first.SubscriberID,
		EventID:       first.EventID,
		AttemptNumber: 2,
		Status:        model.DeliveryStatusSuccess,
		ResponseHeaders: model.Headers{
			"Content-Type": "application/json",
		},
		DurationMs:   17,
		FinalAttempt: true,
	}

	require.NoError(t, sqlStore.SaveAttempt(first))
	require.NotEmpty(t, first.ID)
	require.NoError(t, sqlStore.SaveAttempt(second))

	attempts, err := sqlStore.GetAttemptsForDelivery(deliveryID)
	require.NoError(t, err)
	require.Len(t, attempts, 2)
	require.Equal(t, 1, attempts[0].AttemptNumber)
	require.Equal(t, model.DeliveryStatusFailed, attempts[0].Status)
	require.NotNil(t, attempts[0].HTTPStatus)
	require.Equal(t, 503, *attempts[0].HTTPStatus)
	require.Equal(t, 2, attempts[1].AttemptNumber)
	require.True(t, attempts[1].FinalAttempt)
	require.Equal(t, "application/json", attempts[1].ResponseHeaders["Content-Type"])
}

func TestDeliveryAttemptStore_GetAttemptsForDeliveryEmpty(t *testing.T) {
	logger := log.New().WithField("test", t.Name())
	sqlStore := MakeTestSQLStore(t, logger)

	attempts, err := sqlStore.GetAttemptsForDelivery(model.NewID())
	require.NoError(t, err)
	require.Empty(t, attempts)
}
