// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package orchestrator

import (
	"sync"
	"sync/atomic"

	"github.com/nine-rivers/hookline/model"
	"github.com/sirupsen/logrus"
)

// subscriberLister is the store surface the registry refreshes itself
// from.
type subscriberLister interface {
	GetSubscribers(filter *model.SubscriberFilter) ([]*model.Subscriber, error)
}

// subscriberRegistry caches the enabled-subscriber snapshot in memory and
// refreshes it on a schedule, implementing router.SubscriberSource without
// the router ever touching the store directly.
type subscriberRegistry struct {
	store  subscriberLister
	logger logrus.FieldLogger

	mu        sync.Mutex
	snapshot  atomic.Value // []*model.Subscriber
}

// newSubscriberRegistry returns a registry with an empty snapshot; call
// Do once before starting the observer to populate it synchronously.
func newSubscriberRegistry(store subscriberLister, logger logrus.FieldLogger) *subscriberRegistry {
	r := &subscriberRegistry{
		store:  store,
		logger: logger.WithField("component", "subscriber-registry"),
	}
	r.snapshot.Store([]*model.Subscriber{})
	return r
}

// Snapshot implements router.SubscriberSource.
func (r *subscriberRegistry) Snapshot() []*model.Subscriber {
	return r.snapshot.Load().([]*model.Subscriber)
}

// Do reloads the enabled-subscriber list from the store, implementing
// supervisor.Doer so it can ride the same Scheduler primitive as the DLQ
// and history retention sweeps.
func (r *subscriberRegistry) Do() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	subs, err := r.store.GetSubscribers(&model.SubscriberFilter{
		EnabledOnly: true,
		Paging:      model.AllPagesNotDeleted(),
	})
	if err != nil {
		r.logger.WithError(err).Error("failed to refresh subscriber snapshot")
		return err
	}
	r.snapshot.Store(subs)
	r.logger.WithField("count", len(subs)).Debug("subscriber snapshot refreshed")
	return nil
}

// Shutdown satisfies supervisor.Doer; the registry has no teardown work.
func (r *subscriberRegistry) Shutdown() {}
