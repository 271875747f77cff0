// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package dispatcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/nine-rivers/hookline/model"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type fakeAttemptStore struct {
	attempts []*model.DeliveryAttempt
}

func (f *fakeAttemptStore) SaveAttempt(a *model.DeliveryAttempt) error {
	f.attempts = append(f.attempts, a)
	return nil
}

type fakeDLQ struct {
	entries int
}

func (f *fakeDLQ) Add(attempt *model.DeliveryAttempt, event *model.Event, envelope model.StringMap, reason string) error {
	f.entries++
	return nil
}

func testEvent() *model.Event {
	return &model.Event{
		ID:        "evt1",
		Type:      "issue.created",
		Workspace: "ws1",
		CreateAt:  model.GetMillis(),
		Payload:   model.StringMap{"id": "issue-1"},
	}
}

func TestDispatcher_RetryThenSuccess(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		if n < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sub := &model.Subscriber{
		ID:  "sub1",
		URL: server.URL,
		RetryPolicy: model.RetryPolicy{
			MaxAttempts:       3,
			InitialBackoff:    time.Millisecond,
			MaxBackoff:        10 * time.Millisecond,
			BackoffMultiplier: 2,
		},
	}

	attempts := &fakeAttemptStore{}
	d := New(DefaultConfig(), nil, nil, attempts, nil, &fakeDLQ{}, logrus.New())

	result := d.Deliver(context.Background(), sub, testEvent())
	require.True(t, result.Success)
	require.Equal(t, int32(3), atomic.LoadInt32(&calls))
	require.Len(t, attempts.attempts, 3)
	require.Equal(t, 1, attempts.attempts[0].AttemptNumber)
	require.Equal(t, 3, attempts.attempts[2].AttemptNumber)
	require.True(t, attempts.attempts[2].FinalAttempt)
}

func TestDispatcher_TerminalFourOhFour(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	sub := &model.Subscriber{ID: "sub1", URL: server.URL, RetryPolicy: model.DefaultRetryPolicy()}
	attempts := &fakeAttemptStore{}
	dlq := &fakeDLQ{}
	d := New(DefaultConfig(), nil, nil, attempts, nil, dlq, logrus.New())

	result := d.Deliver(context.Background(), sub, testEvent())
	require.False(t, result.Success)
	require.Len(t, attempts.attempts, 1)
	require.True(t, attempts.attempts[0].FinalAttempt)
	require.Equal(t, 1, dlq.entries)
}

func TestSignature_HeaderPresentWhenSecretSet(t *testing.T) {
	var gotSig string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSig = r.Header.Get("X-Webhook-Signature")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sub := &model.Subscriber{ID: "sub1", URL: server.URL, Secret: "shh", RetryPolicy: model.DefaultRetryPolicy()}
	d := New(DefaultConfig(), nil, nil, &fakeAttemptStore{}, nil, &fakeDLQ{}, logrus.New())

	result := d.Deliver(context.Background(), sub, testEvent())
	require.True(t, result.Success)
	require.Regexp(t, `^sha256=[0-9a-f]{64}$`, gotSig)
}
