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

func newDLQEntry(subscriberID string, deadLetteredAt int64) *model.DLQEntry {
	return &model.DLQEntry{
		ID:                   model.NewID(),
		SubscriberID:         subscriberID,
		EventID:              model.NewID(),
		EventType:            "issue.created",
		DeliveryID:           model.NewID(),
		FailureReason:        "max attempts exhausted",
		Status:               model.DLQStatusDeadLettered,
		OriginalAttemptCount: 8,
		EventEnvelope:        model.StringMap{"type": "issue.created"},
		DeadLetteredAt:       deadLetteredAt,
	}
}

func TestDLQStore_InsertGetUpdateDelete(t *testing.T) {
	logger := log.New().WithField("test", t.Name())
	sqlStore := MakeTestSQLStore(t, logger)

	entry := newDLQEntry(model.NewID(), model.GetMillis())
	require.NoError(t, sqlStore.InsertDLQEntry(entry))

	fetched, err := sqlStore.GetDLQEntry(entry.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	require.Equal(t, entry.FailureReason, fetched.FailureReason)
	require.Equal(t, "issue.created", fetched.EventEnvelope["type"])

	fetched.Status = model.DLQStatusRetrying
	fetched.RetryCount = 1
	fetched.LastRetryResult = "pending"
	require.NoError(t, sqlStore.UpdateDLQEntry(fetched))

	updated, err := sqlStore.GetDLQEntry(entry.ID)
	require.NoError(t, err)
	require.Equal(t, model.DLQStatusRetrying, updated.Status)
	require.Equal(t, 1, updated.RetryCount)
	require.Equal(t, "pending", updated.LastRetryResult)

	require.NoError(t, sqlStore.DeleteDLQEntry(entry.ID))
	gone, err := sqlStore.GetDLQEntry(entry.ID)
	require.NoError(t, err)
	require.Nil(t, gone)
}

func TestDLQStore_ListAndCountFilters(t *testing.T) {
	logger := log.New().WithField("test", t.Name())
	sqlStore := MakeTestSQLStore(t, logger)

	subA := model.NewID()
	subB := model.NewID()
	require.NoError(t, sqlStore.InsertDLQEntry(newDLQEntry(subA, 1000)))
	require.NoError(t, sqlStore.InsertDLQEntry(newDLQEntry(subA, 2000)))
	require.NoError(t, sqlStore.InsertDLQEntry(newDLQEntry(subB, 3000)))

	all, err := sqlStore.ListDLQEntries(model.DLQFilter{Paging: model.AllPagesNotDeleted()})
	require.NoError(t, err)
	require.Len(t, all, 3)
	// newest first
	require.Equal(t, int64(3000), all[0].DeadLetteredAt)

	countA, err := sqlStore.CountDLQEntries(model.DLQFilter{SubscriberID: subA})
	require.NoError(t, err)
	require.EqualValues(t, 2, countA)

	countB, err := sqlStore.CountDLQEntries(model.DLQFilter{SubscriberID: subB})
	require.NoError(t, err)
	require.EqualValues(t, 1, countB)
}

func TestDLQStore_DeleteOldestTrimsToKeep(t *testing.T) {
	logger := log.New().WithField("test", t.Name())
	sqlStore := MakeTestSQLStore(t, logger)

	for i := int64(0); i < 5; i++ {
		require.NoError(t, sqlStore.InsertDLQEntry(newDLQEntry(model.NewID(), 1000+i)))
	}

	removed, err := sqlStore.DeleteOldestDLQEntries(2)
	require.NoError(t, err)
	require.EqualValues(t, 3, removed)

	count, err := sqlStore.CountDLQEntries(model.DLQFilter{})
	require.NoError(t, err)
	require.EqualValues(t, 2, count)
}

func TestDLQStore_DeleteExpired(t *testing.T) {
	logger := log.New().WithField("test", t.Name())
	sqlStore := MakeTestSQLStore(t, logger)

	require.NoError(t, sqlStore.InsertDLQEntry(newDLQEntry(model.NewID(), 1000)))
	require.NoError(t, sqlStore.InsertDLQEntry(newDLQEntry(model.NewID(), model.GetMillis())))

	removed, err := sqlStore.DeleteExpiredDLQEntries(model.GetMillis() - 1000)
	require.NoError(t, err)
	require.EqualValues(t, 1, removed)

	count, err := sqlStore.CountDLQEntries(model.DLQFilter{})
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}
