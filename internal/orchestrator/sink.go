// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package orchestrator

import (
	"context"
	"sync"
	"time"

	"github.com/nine-rivers/hookline/internal/dispatcher"
	"github.com/nine-rivers/hookline/internal/metrics"
	"github.com/nine-rivers/hookline/internal/router"
	"github.com/nine-rivers/hookline/model"
	"github.com/sirupsen/logrus"
)

// eventLedger is the dedup boundary: RecordEventOnce reports whether
// (sourceID, eventHash) was seen for the first time, via the store's
// insert-and-catch-unique-violation implementation.
type eventLedger interface {
	RecordEventOnce(sourceID, eventHash string) (bool, error)
}

// token is the semaphore unit for bounding concurrent deliveries per
// change, the same shape as internal/events/delivery.go's burst-worker
// pool before this module's domain replaced that package.
type token struct{}

// dispatchSink is the observer.Sink that turns one ChangeRecord into a
// routed Event and fans it out to every matched subscriber concurrently,
// bounded by burstWorkers. The bounded-fan-out shape (buffered semaphore
// channel + sync.WaitGroup, no early-exit since every subscriber must be
// tried regardless of another's outcome) is grounded on
// internal/events/delivery.go's EventDeliverer.SignalNewEvents, adapted
// from "burst workers draining a DB-polled backlog" to "one goroutine per
// matched subscriber for a single routed event".
type dispatchSink struct {
	router       *router.Router
	dispatcher   *dispatcher.Dispatcher
	ledger       eventLedger
	metrics      *metrics.Metrics
	burstWorkers int
	logger       logrus.FieldLogger

	// ctx is cancelled by Stop; in-flight deliveries run it out rather
	// than being killed, and wg lets Stop block until they finish.
	ctx context.Context
	wg  sync.WaitGroup
}

func newDispatchSink(ctx context.Context, r *router.Router, d *dispatcher.Dispatcher, ledger eventLedger, m *metrics.Metrics, burstWorkers int, logger logrus.FieldLogger) *dispatchSink {
	if burstWorkers <= 0 {
		burstWorkers = 1
	}
	return &dispatchSink{
		router:       r,
		dispatcher:   d,
		ledger:       ledger,
		metrics:      m,
		burstWorkers: burstWorkers,
		logger:       logger.WithField("component", "orchestrator-sink"),
		ctx:          ctx,
	}
}

// Handle implements observer.Sink.
func (s *dispatchSink) Handle(change *model.ChangeRecord) error {
	event, matched := s.router.Route(change)

	first, err := s.ledger.RecordEventOnce(event.SourceID, event.EventHash)
	if err != nil {
		return err
	}
	if !first {
		s.logger.WithField("event", event.ID).Debug("duplicate change skipped")
		return nil
	}
	if len(matched) == 0 {
		return nil
	}

	s.fanOut(event, matched)
	return nil
}

// fanOut delivers event to every subscriber in matched concurrently,
// bounded by burstWorkers in flight at once.
func (s *dispatchSink) fanOut(event *model.Event, matched []*model.Subscriber) {
	semaphore := make(chan token, s.burstWorkers)

	for _, sub := range matched {
		semaphore <- token{}
		s.wg.Add(1)
		go func(sub *model.Subscriber) {
			defer func() { <-semaphore; s.wg.Done() }()
			s.deliverOne(sub, event)
		}(sub)
	}
}

func (s *dispatchSink) deliverOne(sub *model.Subscriber, event *model.Event) {
	start := time.Now()
	result := s.dispatcher.Deliver(s.ctx, sub, event)
	if s.metrics == nil {
		return
	}

	// A rate-limit rejection is the only failure Deliver returns with no
	// Err set; every other failure path wraps a DispatchError.
	if !result.Success && result.Err == nil {
		s.metrics.ObserveRateLimitRejection(sub.ID)
	}
	s.metrics.ObserveDelivery(sub.ID, result.Success, time.Since(start))
}

// Drain blocks until every in-flight delivery goroutine has returned.
func (s *dispatchSink) Drain() {
	s.wg.Wait()
}
