// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package dispatcher

import (
	"context"
	"math/rand"
	"net/http"
	"time"

	"github.com/nine-rivers/hookline/internal/breaker"
	"github.com/nine-rivers/hookline/internal/ratelimit"
	"github.com/nine-rivers/hookline/model"
	"github.com/sirupsen/logrus"
)

// AttemptStore persists each DeliveryAttempt transition. Persistence
// failures are logged but never propagated to the caller, per the
// dispatcher's stated contract that delivery itself is the source of
// truth.
type AttemptStore interface {
	SaveAttempt(attempt *model.DeliveryAttempt) error
}

// HistoryRecorder persists a DeliveryHistoryRecord alongside each
// attempt; failures here are likewise best-effort.
type HistoryRecorder interface {
	Record(attempt *model.DeliveryAttempt, event *model.Event, envelope model.StringMap) error
}

// DLQAdder hands a permanently exhausted delivery to the dead-letter
// queue.
type DLQAdder interface {
	Add(attempt *model.DeliveryAttempt, event *model.Event, envelope model.StringMap, failureReason string) error
}

// Config controls the dispatcher's ambient behavior.
type Config struct {
	UserAgent string
	Timeout   time.Duration
}

// DefaultConfig returns sane service defaults.
func DefaultConfig() Config {
	return Config{
		UserAgent: "hookline-webhook-dispatcher/1.0",
		Timeout:   defaultTimeout,
	}
}

// Dispatcher delivers events to subscribers: it signs and sends the
// request, classifies the outcome, retries on retryable failures per the
// subscriber's RetryPolicy, and records every attempt.
type Dispatcher struct {
	config    Config
	client    *http.Client
	breakers  *breaker.Registry
	limiters  *ratelimit.Registry
	attempts  AttemptStore
	history   HistoryRecorder
	dlq       DLQAdder
	logger    logrus.FieldLogger
}

// New builds a Dispatcher. breakers and limiters may be nil to skip those
// admission checks entirely (used by tests exercising send logic alone).
func New(config Config, breakers *breaker.Registry, limiters *ratelimit.Registry, attempts AttemptStore, history HistoryRecorder, dlq DLQAdder, logger logrus.FieldLogger) *Dispatcher {
	return &Dispatcher{
		config:   config,
		client:   &http.Client{Timeout: config.Timeout},
		breakers: breakers,
		limiters: limiters,
		attempts: attempts,
		history:  history,
		dlq:      dlq,
		logger:   logger.WithField("component", "dispatcher"),
	}
}

// Deliver drives the full lifecycle for one (subscriber, event) pair:
// pending -> (admit?) -> in_flight -> {success | retry (sleep) -> in_flight
// | failed}. It blocks for the duration of all retries; callers run it in
// its own goroutine per delivery so that across subscribers, deliveries
// proceed concurrently.
func (d *Dispatcher) Deliver(ctx context.Context, sub *model.Subscriber, event *model.Event) model.DeliveryResult {
	log := d.logger.WithFields(logrus.Fields{
		"subscriber": sub.ID,
		"event":      event.ID,
	})

	if d.limiters != nil {
		res := d.limiters.Allow(sub.ID, sub.RateLimitOverride)
		if !res.Allowed {
			log.WithField("retry_after", res.RetryAfter).Debug("rate_limited_subscriber")
			return model.DeliveryResult{Success: false, Retryable: true, RetryAfter: res.RetryAfter}
		}
	}

	var br *breaker.Breaker
	if d.breakers != nil {
		br = d.breakers.Get(sub.ID, sub.BreakerOverride)
		allowed := br.Allow()
		if !allowed.Allowed {
			log.WithField("retry_after", allowed.RetryAfter).Debug("circuit_open")
			return model.DeliveryResult{
				Success:    false,
				Retryable:  true,
				RetryAfter: allowed.RetryAfter,
				Err:        model.NewDispatchError(model.ErrorKindCircuitOpen, 0, nil, "circuit_open"),
			}
		}
	}

	policy := sub.RetryPolicy
	if policy.MaxAttempts <= 0 {
		policy = model.DefaultRetryPolicy()
	}

	deliveryID := newDeliveryID()
	envelope := model.StringMap(buildEnvelope(event))

	var last model.DeliveryResult
	for attemptNumber := 1; attemptNumber <= policy.MaxAttempts; attemptNumber++ {
		if attemptNumber > 1 {
			delay := backoffDelay(attemptNumber, policy, d.jitter)
			select {
			case <-ctx.Done():
				return model.DeliveryResult{
					Success:   false,
					Retryable: false,
					Err:       model.NewDispatchError(model.ErrorKindInternal, 0, ctx.Err(), "delivery cancelled"),
				}
			case <-time.After(delay):
			}
		}

		last = d.attempt(ctx, sub, event, deliveryID, attemptNumber, policy, envelope, br)

		final := last.Success || !last.Retryable || attemptNumber == policy.MaxAttempts
		d.persist(sub, event, deliveryID, attemptNumber, final, last, envelope)

		if last.Success {
			return last
		}
		if !last.Retryable {
			d.deadLetter(sub, event, deliveryID, attemptNumber, last, envelope)
			return last
		}
		if attemptNumber == policy.MaxAttempts {
			d.deadLetter(sub, event, deliveryID, attemptNumber, last, envelope)
			return last
		}
	}
	return last
}

func (d *Dispatcher) jitter(max time.Duration) time.Duration {
	if max <= 0 {
		return 0
	}
	return time.Duration(rand.Int63n(int64(max)))
}

// attempt performs exactly one HTTP send and classifies its outcome; it
// never sleeps or retries.
func (d *Dispatcher) attempt(ctx context.Context, sub *model.Subscriber, event *model.Event, deliveryID string, attemptNumber int, policy model.RetryPolicy, envelope model.StringMap, br *breaker.Breaker) model.DeliveryResult {
	attemptCtx, cancel := context.WithTimeout(ctx, d.config.Timeout)
	defer cancel()

	start := time.Now()
	req, _, err := buildRequest(attemptCtx, d.config.UserAgent, sub, event, deliveryID)
	if err != nil {
		return model.DeliveryResult{
			Success:   false,
			Retryable: false,
			Err:       model.NewDispatchError(model.ErrorKindPermanent, 0, err, "failed to build request"),
		}
	}

	resp, err := d.client.Do(req)
	duration := time.Since(start)
	if err != nil {
		d.recordBreaker(br, false, duration, attemptCtx.Err() != nil)
		de := classifyTransportError(err)
		return model.DeliveryResult{
			Success:    false,
			Retryable:  de.Retryable(),
			Err:        de,
			DurationMs: duration.Milliseconds(),
		}
	}

	body, bodyErr := readBoundedBody(resp.Body)
	slow := duration >= 5*time.Second

	if bodyErr == ErrResponseTooLarge {
		d.recordBreaker(br, false, duration, false)
		return model.DeliveryResult{
			Success:    false,
			StatusCode: resp.StatusCode,
			Retryable:  false,
			Err:        model.NewDispatchError(model.ErrorKindPermanent, resp.StatusCode, bodyErr, "response_too_large"),
			DurationMs: duration.Milliseconds(),
		}
	}
	_ = body

	de := classifyResponse(resp.StatusCode)
	success := de == nil
	d.recordBreaker(br, success, duration, false)
	_ = slow

	return model.DeliveryResult{
		Success:    success,
		StatusCode: resp.StatusCode,
		Retryable:  de != nil && de.Retryable(),
		Err:        de,
		DurationMs: duration.Milliseconds(),
	}
}

func (d *Dispatcher) recordBreaker(br *breaker.Breaker, success bool, duration time.Duration, timeout bool) {
	if br == nil {
		return
	}
	br.Record(success, duration, timeout)
}

func (d *Dispatcher) persist(sub *model.Subscriber, event *model.Event, deliveryID string, attemptNumber int, final bool, result model.DeliveryResult, envelope model.StringMap) {
	status := model.DeliveryStatusRetry
	if result.Success {
		status = model.DeliveryStatusSuccess
	} else if final {
		status = model.DeliveryStatusFailed
	}

	attempt := &model.DeliveryAttempt{
		ID:            model.NewID(),
		DeliveryID:    deliveryID,
		SubscriberID:  sub.ID,
		EventID:       event.ID,
		AttemptNumber: attemptNumber,
		Status:        status,
		DurationMs:    result.DurationMs,
		FinalAttempt:  final,
		CreateAt:      model.GetMillis(),
	}
	if result.StatusCode != 0 {
		code := result.StatusCode
		attempt.HTTPStatus = &code
	}
	if result.Err != nil {
		attempt.ErrorText = result.Err.Error()
	}
	if !result.Success && !final {
		attempt.NextRetryAt = model.GetMillis() + result.RetryAfter.Milliseconds()
	}

	if d.attempts != nil {
		if err := d.attempts.SaveAttempt(attempt); err != nil {
			d.logger.WithError(err).Error("delivery attempt persist failed")
		}
	}
	if d.history != nil {
		if err := d.history.Record(attempt, event, envelope); err != nil {
			d.logger.WithError(err).Error("history_persist_failed")
		}
	}
}

func (d *Dispatcher) deadLetter(sub *model.Subscriber, event *model.Event, deliveryID string, attemptNumber int, result model.DeliveryResult, envelope model.StringMap) {
	if d.dlq == nil {
		return
	}
	reason := "terminal failure"
	if result.Err != nil {
		reason = result.Err.Error()
	}
	attempt := &model.DeliveryAttempt{
		DeliveryID:    deliveryID,
		SubscriberID:  sub.ID,
		EventID:       event.ID,
		AttemptNumber: attemptNumber,
		FinalAttempt:  true,
	}
	if err := d.dlq.Add(attempt, event, envelope, reason); err != nil {
		d.logger.WithError(err).Error("dlq_persist_failed")
	}
}
