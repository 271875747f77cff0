// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package observer

import (
	"context"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/nine-rivers/hookline/model"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// MaxReconnectAttempts is the hard cap on consecutive reconnect attempts
// before the observer gives up and signals the orchestrator. backoff
// itself has no notion of an attempt cap, so this counter is layered on
// top of the library rather than replacing it.
const MaxReconnectAttempts = 10

// CursorStore is the persistence boundary for the observer's resume
// position; cursorstore.FileStore and cursorstore.DBStore both satisfy it.
type CursorStore interface {
	Load() (model.ResumeCursor, error)
	Save(token model.ResumeToken, force bool) error
}

// Sink receives each change in feed order. It is called synchronously
// from the observer's run loop, so a slow sink throttles the tail.
type Sink interface {
	Handle(change *model.ChangeRecord) error
}

// Status is the observer's point-in-time health snapshot.
type Status struct {
	Running           bool
	EventsProcessed   int64
	LastEventAtMillis int64
	ReconnectAttempts int
}

// MaxAttemptsReachedFunc is invoked once the reconnect cap is hit, letting
// the orchestrator treat it as a terminal condition without the observer
// depending on the orchestrator directly.
type MaxAttemptsReachedFunc func()

// Observer tails the upstream change feed from a durable resume cursor,
// handling reconnects with exponential backoff, and hands each record to
// its sink synchronously and in order.
type Observer struct {
	feed        ChangeFeed
	cursorStore CursorStore
	sink        Sink
	onMaxAttempts MaxAttemptsReachedFunc
	logger      logrus.FieldLogger

	baseDelay time.Duration
	maxDelay  time.Duration

	mu                sync.Mutex
	running           bool
	cancel            context.CancelFunc
	done              chan struct{}
	eventsProcessed   int64
	lastEventAtMillis int64
	reconnectAttempts int
}

// Config controls reconnect timing.
type Config struct {
	BaseDelay time.Duration
	MaxDelay  time.Duration
}

// DefaultConfig matches the spec's base*2^(attempt-1) capped backoff.
func DefaultConfig() Config {
	return Config{BaseDelay: 500 * time.Millisecond, MaxDelay: 30 * time.Second}
}

// New builds an Observer. onMaxAttempts may be nil.
func New(feed ChangeFeed, cursorStore CursorStore, sink Sink, config Config, onMaxAttempts MaxAttemptsReachedFunc, logger logrus.FieldLogger) *Observer {
	if config.BaseDelay <= 0 {
		config.BaseDelay = 500 * time.Millisecond
	}
	if config.MaxDelay <= 0 {
		config.MaxDelay = 30 * time.Second
	}
	return &Observer{
		feed:          feed,
		cursorStore:   cursorStore,
		sink:          sink,
		onMaxAttempts: onMaxAttempts,
		logger:        logger.WithField("component", "observer"),
		baseDelay:     config.BaseDelay,
		maxDelay:      config.MaxDelay,
	}
}

// Start loads the saved cursor, opens the feed at that position (or the
// current tail if none is saved), and begins the run loop. Idempotent:
// calling Start while already running is a no-op.
func (o *Observer) Start(ctx context.Context) error {
	o.mu.Lock()
	if o.running {
		o.mu.Unlock()
		return nil
	}

	cursor, err := o.cursorStore.Load()
	if err != nil {
		o.mu.Unlock()
		return errors.Wrap(err, "failed to load resume cursor")
	}

	runCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel
	o.running = true
	o.done = make(chan struct{})
	o.reconnectAttempts = 0
	o.mu.Unlock()

	if err := o.feed.Open(runCtx, cursor.Token); err != nil {
		o.mu.Lock()
		o.running = false
		o.mu.Unlock()
		cancel()
		return errors.Wrap(err, "failed to open change feed")
	}

	go o.run(runCtx)
	return nil
}

// Stop cancels the run loop and waits for it to exit.
func (o *Observer) Stop() {
	o.mu.Lock()
	if !o.running {
		o.mu.Unlock()
		return
	}
	cancel := o.cancel
	done := o.done
	o.mu.Unlock()

	cancel()
	<-done

	_ = o.feed.Close()

	o.mu.Lock()
	o.running = false
	o.mu.Unlock()
}

// Status returns the current health snapshot.
func (o *Observer) Status() Status {
	o.mu.Lock()
	defer o.mu.Unlock()
	return Status{
		Running:           o.running,
		EventsProcessed:   o.eventsProcessed,
		LastEventAtMillis: o.lastEventAtMillis,
		ReconnectAttempts: o.reconnectAttempts,
	}
}

func (o *Observer) run(ctx context.Context) {
	defer close(o.done)

	for {
		record, err := o.feed.Next(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			o.logger.WithError(err).Warn("upstream_feed_lost")
			if !o.reconnect(ctx) {
				return
			}
			continue
		}

		if err := o.handleRecord(record); err != nil {
			o.logger.WithError(err).Error("failed to handle change record")
			continue
		}

		o.mu.Lock()
		o.reconnectAttempts = 0
		o.mu.Unlock()
	}
}

// handleRecord persists the cursor before incrementing the processed
// counter, so a crash between the two never double-acks.
func (o *Observer) handleRecord(record *model.ChangeRecord) error {
	if err := o.cursorStore.Save(record.Position, false); err != nil {
		return errors.Wrap(err, "cursor_persist_failed")
	}

	if err := o.sink.Handle(record); err != nil {
		return errors.Wrap(err, "sink failed to handle change record")
	}

	o.mu.Lock()
	o.eventsProcessed++
	o.lastEventAtMillis = model.GetMillis()
	o.mu.Unlock()
	return nil
}

// reconnect closes and reopens the feed with exponential backoff,
// returning false once MaxReconnectAttempts is exhausted.
func (o *Observer) reconnect(ctx context.Context) bool {
	_ = o.feed.Close()

	for {
		o.mu.Lock()
		o.reconnectAttempts++
		attempt := o.reconnectAttempts
		o.mu.Unlock()

		if attempt > MaxReconnectAttempts {
			o.logger.Error("maxAttemptsReached")
			if o.onMaxAttempts != nil {
				o.onMaxAttempts()
			}
			return false
		}

		delay := o.backoffDelay(attempt)
		select {
		case <-ctx.Done():
			return false
		case <-time.After(delay):
		}

		cursor, err := o.cursorStore.Load()
		if err != nil {
			o.logger.WithError(err).Error("failed to reload resume cursor during reconnect")
			continue
		}

		if err := o.feed.Open(ctx, cursor.Token); err != nil {
			o.logger.WithError(err).WithField("attempt", attempt).Warn("reconnect attempt failed")
			continue
		}
		return true
	}
}

// backoffDelay computes base*2^(attempt-1) capped at maxDelay. The
// backoff.ExponentialBackOff value only carries the interval and
// multiplier settings; the doubling is computed by the loop below and no
// randomization is applied, so the delay is deterministic.
func (o *Observer) backoffDelay(attempt int) time.Duration {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = o.baseDelay
	eb.MaxInterval = o.maxDelay
	eb.MaxElapsedTime = 0
	eb.Multiplier = 2
	eb.RandomizationFactor = 0.1

	delay := eb.InitialInterval
	for i := 1; i < attempt; i++ {
		delay = time.Duration(float64(delay) * eb.Multiplier)
		if delay > eb.MaxInterval {
			delay = eb.MaxInterval
			break
		}
	}
	return delay
}
