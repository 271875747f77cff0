// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package observer

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/nine-rivers/hookline/model"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type fakeCursorStore struct {
	mu    sync.Mutex
	saved model.ResumeToken
}

func (f *fakeCursorStore) Load() (model.ResumeCursor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return model.ResumeCursor{Token: f.saved}, nil
}

func (f *fakeCursorStore) Save(token model.ResumeToken, force bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saved = token
	return nil
}

type fakeSink struct {
	mu      sync.Mutex
	handled []*model.ChangeRecord
}

func (f *fakeSink) Handle(change *model.ChangeRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handled = append(f.handled, change)
	return nil
}

func (f *fakeSink) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.handled)
}

// queueFeed is a ChangeFeed that serves a fixed queue of records, then
// blocks until the context is cancelled.
type queueFeed struct {
	mu       sync.Mutex
	records  []*model.ChangeRecord
	opened   int
	failNext bool
}

func (q *queueFeed) Open(ctx context.Context, resumeAfter model.ResumeToken) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.opened++
	return nil
}

func (q *queueFeed) Next(ctx context.Context) (*model.ChangeRecord, error) {
	q.mu.Lock()
	if q.failNext {
		q.failNext = false
		q.mu.Unlock()
		return nil, errors.New("transient feed error")
	}
	if len(q.records) > 0 {
		r := q.records[0]
		q.records = q.records[1:]
		q.mu.Unlock()
		return r, nil
	}
	q.mu.Unlock()

	<-ctx.Done()
	return nil, ctx.Err()
}

func (q *queueFeed) Close() error { return nil }

func TestObserver_ProcessesRecordsInOrderAndSavesCursor(t *testing.T) {
	feed := &queueFeed{records: []*model.ChangeRecord{
		{Position: model.NewRawResumeToken("1"), DocumentKey: "a"},
		{Position: model.NewRawResumeToken("2"), DocumentKey: "b"},
	}}
	cursorStore := &fakeCursorStore{}
	sink := &fakeSink{}
	o := New(feed, cursorStore, sink, DefaultConfig(), nil, logrus.New())

	require.NoError(t, o.Start(context.Background()))
	require.Eventually(t, func() bool { return sink.count() == 2 }, time.Second, 5*time.Millisecond)

	cursor, err := cursorStore.Load()
	require.NoError(t, err)
	require.Equal(t, "2", cursor.Token["_raw"])

	o.Stop()
	status := o.Status()
	require.False(t, status.Running)
	require.Equal(t, int64(2), status.EventsProcessed)
}

func TestObserver_StartIsIdempotent(t *testing.T) {
	feed := &queueFeed{}
	o := New(feed, &fakeCursorStore{}, &fakeSink{}, DefaultConfig(), nil, logrus.New())

	require.NoError(t, o.Start(context.Background()))
	require.NoError(t, o.Start(context.Background()))
	require.Equal(t, 1, feed.opened)
	o.Stop()
}

func TestObserver_ReconnectsAfterTransientError(t *testing.T) {
	feed := &queueFeed{
		failNext: true,
		records:  []*model.ChangeRecord{{Position: model.NewRawResumeToken("1")}},
	}
	sink := &fakeSink{}
	cfg := Config{BaseDelay: time.Millisecond, MaxDelay: 10 * time.Millisecond}
	o := New(feed, &fakeCursorStore{}, sink, cfg, nil, logrus.New())

	require.NoError(t, o.Start(context.Background()))
	require.Eventually(t, func() bool { return sink.count() == 1 }, time.Second, 5*time.Millisecond)
	require.GreaterOrEqual(t, feed.opened, 2)
	o.Stop()
}

func TestObserver_MaxReconnectAttemptsSignalsTerminal(t *testing.T) {
	feed := &alwaysFailFeed{}
	var calledMu sync.Mutex
	called := false
	cfg := Config{BaseDelay: time.Millisecond, MaxDelay: time.Millisecond}
	o := New(feed, &fakeCursorStore{}, &fakeSink{}, cfg, func() {
		calledMu.Lock()
		called = true
		calledMu.Unlock()
	}, logrus.New())

	require.NoError(t, o.Start(context.Background()))
	require.Eventually(t, func() bool {
		calledMu.Lock()
		defer calledMu.Unlock()
		return called
	}, 2*time.Second, 5*time.Millisecond)
}

type alwaysFailFeed struct{}

func (alwaysFailFeed) Open(ctx context.Context, resumeAfter model.ResumeToken) error { return nil }
func (alwaysFailFeed) Next(ctx context.Context) (*model.ChangeRecord, error) {
	return nil, errors.New("feed unavailable")
}
func (alwaysFailFeed) Close() error { return nil }
