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

func TestDeliveryHistoryStore_InsertAndList(t *testing.T) {
	logger := log.New().WithField("test", t.Name())
	sqlStore := MakeTestSQLStore(t, logger)

	subscriberID := model.NewID()
	record := &model.DeliveryHistoryRecord{
		SubscriberID:  subscriberID,
		EventID:       model.NewID(),
		EventType:     "issue.created",
		AttemptNumber: 1,
		Status:        model.DeliveryStatusSuccess,
		DurationMs:    10,
		ResponseBody:  "ok",
		EventEnvelope: model.StringMap{"type": "issue.created"},
	}
	require.NoError(t, sqlStore.InsertDeliveryHistory(record))
	require.NotEmpty(t, record.ID)

	records, err := sqlStore.ListDeliveryHistory(model.HistoryFilter{
		SubscriberID: subscriberID,
		Paging:       model.AllPagesNotDeleted(),
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "issue.created", records[0].EventType)
	require.Equal(t, "issue.created", records[0].EventEnvelope["type"])
}

func TestDeliveryHistoryStore_Aggregate(t *testing.T) {
	logger := log.New().WithField("test", t.Name())
	sqlStore := MakeTestSQLStore(t, logger)

	subscriberID := model.NewID()
	now := model.GetMillis()

	for i := 0; i < 3; i++ {
		status := model.DeliveryStatusSuccess
		if i == 2 {
			status = model.DeliveryStatusFailed
		}
		require.NoError(t, sqlStore.InsertDeliveryHistory(&model.DeliveryHistoryRecord{
			SubscriberID:  subscriberID,
			EventID:       model.NewID(),
			EventType:     "issue.created",
			AttemptNumber: 1,
			Status:        status,
			DurationMs:    5,
			CreateAt:      now,
		}))
	}

	aggregates, err := sqlStore.AggregateDeliveryHistory(model.HistoryFilter{
		SubscriberID: subscriberID,
	}, model.HistoryBucketDay)
	require.NoError(t, err)
	require.Len(t, aggregates, 1)
	require.EqualValues(t, 3, aggregates[0].Total)
	require.EqualValues(t, 2, aggregates[0].SuccessCount)
	require.EqualValues(t, 1, aggregates[0].FailureCount)
}

func TestDeliveryHistoryStore_DeleteOlderThan(t *testing.T) {
	logger := log.New().WithField("test", t.Name())
	sqlStore := MakeTestSQLStore(t, logger)

	old := &model.DeliveryHistoryRecord{
		SubscriberID: model.NewID(),
		EventID:      model.NewID(),
		EventType:    "issue.created",
		Status:       model.DeliveryStatusSuccess,
		CreateAt:     1000,
	}
	recent := &model.DeliveryHistoryRecord{
		SubscriberID: model.NewID(),
		EventID:      model.NewID(),
		EventType:    "issue.created",
		Status:       model.DeliveryStatusSuccess,
		CreateAt:     model.GetMillis(),
	}
	require.NoError(t, sqlStore.InsertDeliveryHistory(old))
	require.NoError(t, sqlStore.InsertDeliveryHistory(recent))

	removed, err := sqlStore.DeleteDeliveryHistoryOlderThan(model.GetMillis() - 1000)
	require.NoError(t, err)
	require.EqualValues(t, 1, removed)

	remaining, err := sqlStore.ListDeliveryHistory(model.HistoryFilter{Paging: model.AllPagesNotDeleted()})
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	require.Equal(t, recent.ID, remaining[0].ID)
}
