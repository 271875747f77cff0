// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package dlq

import (
	"testing"

	"github.com/nine-rivers/hookline/model"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	entries map[string]*model.DLQEntry
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{entries: map[string]*model.DLQEntry{}}
}

func (f *fakeBackend) InsertDLQEntry(entry *model.DLQEntry) error {
	f.entries[entry.ID] = entry
	return nil
}

func (f *fakeBackend) GetDLQEntry(id string) (*model.DLQEntry, error) {
	return f.entries[id], nil
}

func (f *fakeBackend) UpdateDLQEntry(entry *model.DLQEntry) error {
	f.entries[entry.ID] = entry
	return nil
}

func (f *fakeBackend) DeleteDLQEntry(id string) error {
	delete(f.entries, id)
	return nil
}

func (f *fakeBackend) ListDLQEntries(filter model.DLQFilter) ([]*model.DLQEntry, error) {
	var out []*model.DLQEntry
	for _, e := range f.entries {
		if filter.SubscriberID != "" && e.SubscriberID != filter.SubscriberID {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeBackend) CountDLQEntries(filter model.DLQFilter) (int64, error) {
	entries, _ := f.ListDLQEntries(filter)
	return int64(len(entries)), nil
}

func (f *fakeBackend) DeleteOldestDLQEntries(keep int) (int64, error) {
	var removed int64
	for len(f.entries) > keep {
		for id := range f.entries {
			delete(f.entries, id)
			removed++
			break
		}
	}
	return removed, nil
}

func (f *fakeBackend) DeleteExpiredDLQEntries(olderThanMillis int64) (int64, error) {
	var removed int64
	for id, e := range f.entries {
		if e.DeadLetteredAt < olderThanMillis {
			delete(f.entries, id)
			removed++
		}
	}
	return removed, nil
}

func TestQueue_AddAndList(t *testing.T) {
	backend := newFakeBackend()
	q := New(backend, DefaultConfig(), nil, logrus.New())

	attempt := &model.DeliveryAttempt{SubscriberID: "sub1", EventID: "evt1", DeliveryID: "del1", AttemptNumber: 8}
	err := q.Add(attempt, &model.Event{Type: "issue.created"}, model.StringMap{"id": "evt1"}, "max attempts exceeded")
	require.NoError(t, err)

	entries, err := q.List(model.DLQFilter{SubscriberID: "sub1"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, model.DLQStatusDeadLettered, entries[0].Status)
	require.Equal(t, 8, entries[0].OriginalAttemptCount)
}

func TestQueue_AddTrimsOverMaxSize(t *testing.T) {
	backend := newFakeBackend()
	q := New(backend, Config{MaxSize: 2}, nil, logrus.New())

	for i := 0; i < 5; i++ {
		attempt := &model.DeliveryAttempt{SubscriberID: "sub1", EventID: "evt", DeliveryID: "del", AttemptNumber: 1}
		require.NoError(t, q.Add(attempt, nil, nil, "failed"))
	}

	entries, err := q.List(model.DLQFilter{})
	require.NoError(t, err)
	require.LessOrEqual(t, len(entries), 2)
}

func TestQueue_RetryThenSuccessRemovesEntry(t *testing.T) {
	backend := newFakeBackend()
	q := New(backend, DefaultConfig(), nil, logrus.New())

	attempt := &model.DeliveryAttempt{SubscriberID: "sub1", EventID: "evt1", DeliveryID: "del1"}
	require.NoError(t, q.Add(attempt, nil, model.StringMap{"id": "evt1"}, "timeout"))

	entries, err := q.List(model.DLQFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	entryID := entries[0].ID

	replay, err := q.Retry(entryID)
	require.NoError(t, err)
	require.Equal(t, entryID, replay.EntryID)

	require.NoError(t, q.UpdateStatus(entryID, true))

	entries, err = q.List(model.DLQFilter{})
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestQueue_RetryThenFailureRestoresEntry(t *testing.T) {
	backend := newFakeBackend()
	q := New(backend, DefaultConfig(), nil, logrus.New())

	attempt := &model.DeliveryAttempt{SubscriberID: "sub1", EventID: "evt1", DeliveryID: "del1"}
	require.NoError(t, q.Add(attempt, nil, nil, "timeout"))

	entries, _ := q.List(model.DLQFilter{})
	entryID := entries[0].ID

	_, err := q.Retry(entryID)
	require.NoError(t, err)
	require.NoError(t, q.UpdateStatus(entryID, false))

	entry, err := backend.GetDLQEntry(entryID)
	require.NoError(t, err)
	require.Equal(t, model.DLQStatusDeadLettered, entry.Status)
	require.Equal(t, "failure", entry.LastRetryResult)
}

func TestQueue_RetryAll(t *testing.T) {
	backend := newFakeBackend()
	q := New(backend, DefaultConfig(), nil, logrus.New())

	for i := 0; i < 3; i++ {
		attempt := &model.DeliveryAttempt{SubscriberID: "sub1", EventID: "evt", DeliveryID: "del"}
		require.NoError(t, q.Add(attempt, nil, nil, "failed"))
	}

	replays, err := q.RetryAll(model.DLQFilter{SubscriberID: "sub1"})
	require.NoError(t, err)
	require.Len(t, replays, 3)

	entries, _ := q.List(model.DLQFilter{})
	for _, e := range entries {
		require.Equal(t, model.DLQStatusRetrying, e.Status)
	}
}

func TestQueue_Clear(t *testing.T) {
	backend := newFakeBackend()
	q := New(backend, DefaultConfig(), nil, logrus.New())

	for i := 0; i < 3; i++ {
		attempt := &model.DeliveryAttempt{SubscriberID: "sub1", EventID: "evt", DeliveryID: "del"}
		require.NoError(t, q.Add(attempt, nil, nil, "failed"))
	}

	removed, err := q.Clear(model.DLQFilter{})
	require.NoError(t, err)
	require.Equal(t, int64(3), removed)

	entries, _ := q.List(model.DLQFilter{})
	require.Empty(t, entries)
}

func TestQueue_ExpireOlderThan(t *testing.T) {
	backend := newFakeBackend()
	q := New(backend, DefaultConfig(), nil, logrus.New())

	backend.entries["old"] = &model.DLQEntry{ID: "old", DeadLetteredAt: 1000}
	backend.entries["new"] = &model.DLQEntry{ID: "new", DeadLetteredAt: 9_000_000_000_000}

	removed, err := q.ExpireOlderThan(9_000_000_000_000)
	require.NoError(t, err)
	require.Equal(t, int64(1), removed)
	require.NotContains(t, backend.entries, "old")
	require.Contains(t, backend.entries, "new")
}

func TestQueue_OnAddedNotifier(t *testing.T) {
	backend := newFakeBackend()
	var notified *model.DLQEntry
	q := New(backend, DefaultConfig(), func(entry *model.DLQEntry) { notified = entry }, logrus.New())

	attempt := &model.DeliveryAttempt{SubscriberID: "sub1", EventID: "evt1", DeliveryID: "del1"}
	require.NoError(t, q.Add(attempt, nil, nil, "failed"))

	require.NotNil(t, notified)
	require.Equal(t, "sub1", notified.SubscriberID)
}
