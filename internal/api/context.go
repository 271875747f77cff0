// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

// Package api is the minimal HTTP surface a deployment polls for health
// and uses to inspect and replay dead-lettered deliveries; it deliberately
// does not expose subscriber CRUD, which lives outside this module.
package api

import (
	"context"

	"github.com/nine-rivers/hookline/internal/dlq"
	"github.com/nine-rivers/hookline/internal/observer"
	"github.com/nine-rivers/hookline/model"
	"github.com/sirupsen/logrus"
)

// Pinger is the reachability probe readiness checks against; SQLStore
// satisfies it via its Ping method.
type Pinger interface {
	Ping() error
}

// SubscriberGetter resolves the subscriber a DLQ entry belongs to, needed
// to know where a replay is sent.
type SubscriberGetter interface {
	GetSubscriber(id string) (*model.Subscriber, error)
}

// DLQService is the dead-letter operations the API exposes; dlq.Queue
// satisfies it directly.
type DLQService interface {
	List(filter model.DLQFilter) ([]*model.DLQEntry, error)
	Retry(entryID string) (*dlq.ReplayDelivery, error)
	UpdateStatus(entryID string, success bool) error
	Clear(filter model.DLQFilter) (int64, error)
	RetryAll(filter model.DLQFilter) ([]*dlq.ReplayDelivery, error)
}

// Redeliverer re-sends a DLQ entry's frozen envelope; dispatcher.Dispatcher
// satisfies it via its Redeliver method.
type Redeliverer interface {
	Redeliver(ctx context.Context, sub *model.Subscriber, envelope model.StringMap, eventID string) model.DeliveryResult
}

// Health reports the pipeline's running state for readiness checks.
type Health interface {
	Status() observer.Status
}

// Context carries everything a handler needs to serve one request. It is
// cloned per request so per-request logger fields never leak across
// requests, the same pattern the teacher's api.Context uses.
type Context struct {
	DLQ         DLQService
	Subscribers SubscriberGetter
	Dispatcher  Redeliverer
	Pinger      Pinger
	Health      Health
	RequestID   string
	Logger      logrus.FieldLogger
}

// Clone creates a shallow copy of c for one request.
func (c *Context) Clone() *Context {
	return &Context{
		DLQ:         c.DLQ,
		Subscribers: c.Subscribers,
		Dispatcher:  c.Dispatcher,
		Pinger:      c.Pinger,
		Health:      c.Health,
		Logger:      c.Logger,
	}
}
