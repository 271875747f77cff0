// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package history

import (
	"strings"
	"testing"

	"github.com/nine-rivers/hookline/model"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	records []*model.DeliveryHistoryRecord
}

func (f *fakeBackend) InsertDeliveryHistory(record *model.DeliveryHistoryRecord) error {
	f.records = append(f.records, record)
	return nil
}

func (f *fakeBackend) ListDeliveryHistory(filter model.HistoryFilter) ([]*model.DeliveryHistoryRecord, error) {
	var out []*model.DeliveryHistoryRecord
	for _, r := range f.records {
		if filter.SubscriberID != "" && r.SubscriberID != filter.SubscriberID {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeBackend) AggregateDeliveryHistory(filter model.HistoryFilter, bucket model.HistoryBucket) ([]*model.HistoryAggregate, error) {
	agg := &model.HistoryAggregate{Total: int64(len(f.records))}
	for _, r := range f.records {
		if r.Status == model.DeliveryStatusSuccess {
			agg.SuccessCount++
		} else {
			agg.FailureCount++
		}
	}
	return []*model.HistoryAggregate{agg}, nil
}

func (f *fakeBackend) DeleteDeliveryHistoryOlderThan(olderThanMillis int64) (int64, error) {
	var kept []*model.DeliveryHistoryRecord
	var removed int64
	for _, r := range f.records {
		if r.CreateAt < olderThanMillis {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	f.records = kept
	return removed, nil
}

func TestRecorder_RecordTruncatesLongBody(t *testing.T) {
	backend := &fakeBackend{}
	r := New(backend, DefaultConfig(), logrus.New())

	attempt := &model.DeliveryAttempt{
		SubscriberID: "sub1",
		EventID:      "evt1",
		Status:       model.DeliveryStatusSuccess,
		ResponseBody: strings.Repeat("x", maxResponseBodyChars+500),
	}
	require.NoError(t, r.Record(attempt, &model.Event{Type: "issue.created"}, model.StringMap{"id": "evt1"}))

	records, err := r.List(model.HistoryFilter{SubscriberID: "sub1"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Len(t, records[0].ResponseBody, maxResponseBodyChars)
	require.False(t, records[0].Compressed)
	require.Equal(t, "issue.created", records[0].EventType)
}

func TestRecorder_Aggregate(t *testing.T) {
	backend := &fakeBackend{}
	r := New(backend, DefaultConfig(), logrus.New())

	require.NoError(t, r.Record(&model.DeliveryAttempt{SubscriberID: "sub1", Status: model.DeliveryStatusSuccess}, nil, nil))
	require.NoError(t, r.Record(&model.DeliveryAttempt{SubscriberID: "sub1", Status: model.DeliveryStatusFailed}, nil, nil))

	aggregates, err := r.Aggregate(model.HistoryFilter{SubscriberID: "sub1"}, model.HistoryBucketDay)
	require.NoError(t, err)
	require.Len(t, aggregates, 1)
	require.Equal(t, int64(2), aggregates[0].Total)
	require.Equal(t, int64(1), aggregates[0].SuccessCount)
	require.Equal(t, 0.5, aggregates[0].SuccessRate())
}

func TestRecorder_ExpireOlderThan(t *testing.T) {
	backend := &fakeBackend{records: []*model.DeliveryHistoryRecord{
		{ID: "old", CreateAt: 1000},
		{ID: "new", CreateAt: 9_000_000_000_000},
	}}
	r := New(backend, DefaultConfig(), logrus.New())

	removed, err := r.ExpireOlderThan(9_000_000_000_000)
	require.NoError(t, err)
	require.Equal(t, int64(1), removed)
	require.Len(t, backend.records, 1)
	require.Equal(t, "new", backend.records[0].ID)
}
