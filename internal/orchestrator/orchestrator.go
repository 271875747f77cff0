// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

// Package orchestrator is the composition root wiring the change
// observer, router, dispatcher, and their supporting stores into one
// running pipeline, the same role cmd/cloud/server.go's executeServerCmd
// plays for the teacher's supervisors and API server.
package orchestrator

import (
	"context"
	"time"

	"github.com/nine-rivers/hookline/internal/breaker"
	"github.com/nine-rivers/hookline/internal/cursorstore"
	"github.com/nine-rivers/hookline/internal/dispatcher"
	"github.com/nine-rivers/hookline/internal/dlq"
	"github.com/nine-rivers/hookline/internal/filter"
	"github.com/nine-rivers/hookline/internal/history"
	"github.com/nine-rivers/hookline/internal/metrics"
	"github.com/nine-rivers/hookline/internal/observer"
	"github.com/nine-rivers/hookline/internal/ratelimit"
	"github.com/nine-rivers/hookline/internal/router"
	"github.com/nine-rivers/hookline/internal/store"
	"github.com/nine-rivers/hookline/internal/supervisor"
	"github.com/nine-rivers/hookline/model"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// CursorMode selects where the resume cursor is durably persisted.
type CursorMode string

const (
	CursorModeDatabase CursorMode = "database"
	CursorModeFile     CursorMode = "file"
)

// Config assembles every tunable the orchestrator needs to wire its
// components, grouped the way the teacher's serverFlags composes several
// smaller *Options structs.
type Config struct {
	Workspace        string
	ServiceName      string
	BurstWorkers     int
	FeedPollInterval time.Duration

	CursorMode       CursorMode
	CursorFilePath   string
	CursorMaxHistory int

	SubscriberRefreshInterval time.Duration
	RateLimitReclaimInterval  time.Duration
	MetricsSampleInterval     time.Duration

	Dispatcher dispatcher.Config
	Breaker    breaker.Settings
	RateLimit  ratelimit.Config
	DLQ        dlq.Config
	History    history.Config
	Observer   observer.Config
}

// DefaultConfig returns sane service defaults; callers override only what
// their deployment needs to change.
func DefaultConfig() Config {
	return Config{
		Workspace:                 "default",
		ServiceName:               "hookline",
		BurstWorkers:              8,
		FeedPollInterval:          observer.DefaultPollInterval,
		CursorMode:                CursorModeDatabase,
		CursorMaxHistory:          model.DefaultMaxCursorHistory,
		SubscriberRefreshInterval: 30 * time.Second,
		RateLimitReclaimInterval:  ratelimit.InactivityReclaim / 24,
		MetricsSampleInterval:     15 * time.Second,
		Dispatcher:                dispatcher.DefaultConfig(),
		Breaker:                   breaker.DefaultSettings(),
		RateLimit:                 ratelimit.DefaultConfig(),
		DLQ:                       dlq.DefaultConfig(),
		History:                   history.DefaultConfig(),
		Observer:                  observer.DefaultConfig(),
	}
}

// flusher is the resume cursor's pending-write boundary; both
// cursorstore.DBStore and cursorstore.FileStore implement it.
type flusher interface {
	Flush() error
}

// Orchestrator wires Observer -> Router -> Dispatcher -> History/DLQ and
// owns the schedulers that keep the cursor, DLQ, history, subscriber
// snapshot, and rate limiter state fresh in the background.
type Orchestrator struct {
	config Config
	logger logrus.FieldLogger

	observer   *observer.Observer
	sink       *dispatchSink
	subs       *subscriberRegistry
	cursor     flusher
	metrics    *metrics.Metrics
	dlqQueue   *dlq.Queue
	dispatcher *dispatcher.Dispatcher

	cursorFlushScheduler      *supervisor.Scheduler
	subscriberScheduler       *supervisor.Scheduler
	dlqExpiryScheduler        *supervisor.Scheduler
	historyRetentionScheduler *supervisor.Scheduler
	rateLimitReclaimScheduler *supervisor.Scheduler
	metricsSampleScheduler    *supervisor.Scheduler

	runCancel context.CancelFunc
}

// New builds an Orchestrator around sqlStore, the single concrete store
// satisfying every narrow persistence interface the domain packages
// declare (subscriber snapshot, event ledger, delivery attempts, history,
// DLQ, resume cursor). feedSource is the Source a PollingChangeFeed polls;
// callers needing a push-based feed can instead pass a ChangeFeed directly
// via NewWithFeed.
func New(sqlStore *store.SQLStore, feedSource observer.Source, config Config, logger logrus.FieldLogger) (*Orchestrator, error) {
	feed := observer.NewPollingChangeFeed(feedSource, config.FeedPollInterval)
	return newOrchestrator(sqlStore, feed, config, logger)
}

// NewWithFeed is identical to New but accepts a fully custom ChangeFeed in
// place of a polled Source.
func NewWithFeed(sqlStore *store.SQLStore, feed observer.ChangeFeed, config Config, logger logrus.FieldLogger) (*Orchestrator, error) {
	return newOrchestrator(sqlStore, feed, config, logger)
}

func newOrchestrator(sqlStore *store.SQLStore, feed observer.ChangeFeed, config Config, logger logrus.FieldLogger) (*Orchestrator, error) {
	logger = logger.WithField("component", "orchestrator")

	var cursor interface {
		observer.CursorStore
		flusher
	}
	switch config.CursorMode {
	case CursorModeFile:
		if config.CursorFilePath == "" {
			return nil, errors.New("cursor file path must be set when cursor-mode is file")
		}
		cursor = cursorstore.NewFileStore(config.CursorFilePath, config.ServiceName, config.CursorMaxHistory, logger)
	default:
		cursor = cursorstore.NewDBStore(sqlStore, config.ServiceName, config.CursorMaxHistory, logger)
	}

	filterEngine := filter.NewEngine(logger)
	subs := newSubscriberRegistry(sqlStore, logger)
	routerInstance := router.New(subs, filterEngine, config.Workspace, logger)

	breakers := breaker.NewRegistry(config.Breaker)
	limiters := ratelimit.NewRegistry(logger, config.RateLimit, config.RateLimit)

	metricsInstance := metrics.New()

	dlqQueue := dlq.New(sqlStore, config.DLQ, func(entry *model.DLQEntry) {
		metricsInstance.ObserveDLQAdd()
	}, logger)
	historyRecorder := history.New(sqlStore, config.History, logger)

	d := dispatcher.New(config.Dispatcher, breakers, limiters, sqlStore, historyRecorder, dlqQueue, logger)

	runCtx, cancel := context.WithCancel(context.Background())
	sink := newDispatchSink(runCtx, routerInstance, d, sqlStore, metricsInstance, config.BurstWorkers, logger)

	obs := observer.New(feed, cursor, sink, config.Observer, nil, logger)

	o := &Orchestrator{
		config:     config,
		logger:     logger,
		observer:   obs,
		sink:       sink,
		subs:       subs,
		cursor:     cursor,
		metrics:    metricsInstance,
		dlqQueue:   dlqQueue,
		dispatcher: d,
		runCancel:  cancel,
	}

	o.subscriberScheduler = supervisor.NewScheduler(subs, config.SubscriberRefreshInterval)
	o.cursorFlushScheduler = supervisor.NewScheduler(flushDoer{cursor}, cursorstore.BackgroundFlushInterval)
	o.dlqExpiryScheduler = supervisor.NewScheduler(
		supervisor.NewDLQExpirySupervisor(sqlStore, config.DLQ.RetentionMillis, logger),
		dlqExpirySweepInterval,
	)
	o.historyRetentionScheduler = supervisor.NewScheduler(
		supervisor.NewHistoryRetentionSupervisor(sqlStore, config.History.RetentionMillis, logger),
		historyRetentionSweepInterval,
	)
	o.rateLimitReclaimScheduler = supervisor.NewScheduler(
		newRateLimitReclaimDoer(limiters, logger),
		config.RateLimitReclaimInterval,
	)
	o.metricsSampleScheduler = supervisor.NewScheduler(
		newMetricsSampleDoer(obs.Status, func() (int64, error) {
			return sqlStore.CountDLQEntries(model.DLQFilter{})
		}, metricsInstance, logger),
		config.MetricsSampleInterval,
	)

	return o, nil
}

// dlqExpirySweepInterval and historyRetentionSweepInterval are hourly:
// both sweeps are cheap, bounded deletes and don't need finer granularity
// than the spec's stated retention windows (days).
const (
	dlqExpirySweepInterval        = time.Hour
	historyRetentionSweepInterval = time.Hour
)

// flushDoer adapts a flusher into a supervisor.Doer so the periodic
// background cursor flush rides the same Scheduler primitive as the other
// sweeps.
type flushDoer struct {
	f flusher
}

func (fd flushDoer) Do() error { return fd.f.Flush() }
func (fd flushDoer) Shutdown() {}

// Start loads the subscriber snapshot synchronously so the first routed
// change has something to match against, then starts the observer.
func (o *Orchestrator) Start(ctx context.Context) error {
	if err := o.subs.Do(); err != nil {
		return errors.Wrap(err, "failed to load initial subscriber snapshot")
	}
	return o.observer.Start(ctx)
}

// Stop runs the shutdown sequence: stop the observer first so no new
// change is admitted, drain every delivery goroutine already in flight,
// flush the resume cursor one last time, then stop the background
// schedulers.
func (o *Orchestrator) Stop() {
	o.observer.Stop()
	o.sink.Drain()

	if err := o.cursor.Flush(); err != nil {
		o.logger.WithError(err).Error("failed to flush resume cursor during shutdown")
	}

	o.runCancel()

	_ = o.subscriberScheduler.Close()
	_ = o.cursorFlushScheduler.Close()
	_ = o.dlqExpiryScheduler.Close()
	_ = o.historyRetentionScheduler.Close()
	_ = o.rateLimitReclaimScheduler.Close()
	_ = o.metricsSampleScheduler.Close()
}

// Status reports the observer's current health, the surface
// internal/api's readiness handler reads.
func (o *Orchestrator) Status() observer.Status {
	return o.observer.Status()
}

// Metrics exposes the Prometheus collectors for registration with the
// metrics HTTP handler.
func (o *Orchestrator) Metrics() *metrics.Metrics {
	return o.metrics
}

// DLQ exposes the dead-letter queue for internal/api's replay endpoints.
func (o *Orchestrator) DLQ() *dlq.Queue {
	return o.dlqQueue
}

// Dispatcher exposes the dispatcher for internal/api's manual redelivery
// endpoint.
func (o *Orchestrator) Dispatcher() *dispatcher.Dispatcher {
	return o.dispatcher
}
