// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package dispatcher

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/nine-rivers/hookline/model"
	"github.com/pkg/errors"
)

// Redeliver re-sends a frozen DLQ envelope to sub, bypassing the retry
// policy, circuit breaker, and rate limiter entirely: it is a single,
// operator-initiated attempt, not part of the automatic delivery
// lifecycle. The outcome is still persisted as a DeliveryAttempt/history
// record so replays show up in the same audit trail as original
// deliveries.
func (d *Dispatcher) Redeliver(ctx context.Context, sub *model.Subscriber, envelope model.StringMap, eventID string) model.DeliveryResult {
	log := d.logger.WithFields(map[string]interface{}{
		"subscriber": sub.ID,
		"event":      eventID,
		"redelivery": true,
	})

	deliveryID := newDeliveryID()
	result := d.redeliverAttempt(ctx, sub, envelope, deliveryID)

	attempt := &model.DeliveryAttempt{
		ID:            model.NewID(),
		DeliveryID:    deliveryID,
		SubscriberID:  sub.ID,
		EventID:       eventID,
		AttemptNumber: 1,
		FinalAttempt:  true,
		DurationMs:    result.DurationMs,
		CreateAt:      model.GetMillis(),
	}
	if result.Success {
		attempt.Status = model.DeliveryStatusSuccess
	} else {
		attempt.Status = model.DeliveryStatusFailed
	}
	if result.StatusCode != 0 {
		code := result.StatusCode
		attempt.HTTPStatus = &code
	}
	if result.Err != nil {
		attempt.ErrorText = result.Err.Error()
	}

	if d.attempts != nil {
		if err := d.attempts.SaveAttempt(attempt); err != nil {
			log.WithError(err).Error("failed to persist redelivery attempt")
		}
	}
	if d.history != nil {
		if err := d.history.Record(attempt, nil, envelope); err != nil {
			log.WithError(err).Error("failed to record redelivery history")
		}
	}

	return result
}

func (d *Dispatcher) redeliverAttempt(ctx context.Context, sub *model.Subscriber, envelope model.StringMap, deliveryID string) model.DeliveryResult {
	attemptCtx, cancel := context.WithTimeout(ctx, d.config.Timeout)
	defer cancel()

	body, err := json.Marshal(envelope)
	if err != nil {
		return model.DeliveryResult{
			Success: false,
			Err:     model.NewDispatchError(model.ErrorKindPermanent, 0, err, "failed to marshal dlq envelope"),
		}
	}

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodPost, sub.URL, bytes.NewReader(body))
	if err != nil {
		return model.DeliveryResult{
			Success: false,
			Err:     model.NewDispatchError(model.ErrorKindPermanent, 0, err, "failed to build redelivery request"),
		}
	}
	req.Header.Set("Content-Type", contentTypeApplicationJSON)
	req.Header.Set("User-Agent", d.config.UserAgent)
	req.Header.Set("X-Webhook-Id", sub.ID)
	req.Header.Set("X-Webhook-Delivery", deliveryID)
	req.Header.Set("X-Webhook-Redelivery", "true")
	if sub.Secret != "" {
		req.Header.Set("X-Webhook-Signature", Sign(sub.Secret, body))
	}
	for key, value := range sub.CustomHeaders {
		req.Header.Set(key, value)
	}

	start := time.Now()
	resp, err := d.client.Do(req)
	duration := time.Since(start)
	if err != nil {
		return model.DeliveryResult{
			Success:    false,
			Retryable:  true,
			Err:        classifyTransportError(err),
			DurationMs: duration.Milliseconds(),
		}
	}

	_, bodyErr := readBoundedBody(resp.Body)
	if bodyErr != nil && bodyErr != ErrResponseTooLarge {
		return model.DeliveryResult{
			Success:    false,
			StatusCode: resp.StatusCode,
			Err:        model.NewDispatchError(model.ErrorKindPermanent, resp.StatusCode, errors.Wrap(bodyErr, "failed to read redelivery response"), "redelivery_read_failed"),
			DurationMs: duration.Milliseconds(),
		}
	}

	de := classifyResponse(resp.StatusCode)
	return model.DeliveryResult{
		Success:    de == nil,
		StatusCode: resp.StatusCode,
		Err:        de,
		DurationMs: duration.Milliseconds(),
	}
}
