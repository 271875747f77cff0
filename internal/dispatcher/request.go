// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package dispatcher

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/nine-rivers/hookline/model"
	"github.com/pkg/errors"
)

const contentTypeApplicationJSON = "application/json"

// MaxResponseBodyBytes bounds how much of a subscriber's response body is
// captured; exceeding the cap aborts the transfer with response_too_large.
const MaxResponseBodyBytes = 64 * 1024

// ErrResponseTooLarge is returned when a subscriber's response exceeds
// MaxResponseBodyBytes.
var ErrResponseTooLarge = errors.New("response_too_large")

// buildEnvelope is the JSON wire body {id, type, timestamp, workspace,
// data, changes} sent to subscribers.
func buildEnvelope(event *model.Event) map[string]interface{} {
	return map[string]interface{}{
		"id":        event.ID,
		"type":      event.Type,
		"timestamp": model.ISO8601FromMillis(event.CreateAt),
		"workspace": event.Workspace,
		"data":      map[string]interface{}(event.Payload),
		"changes":   map[string]interface{}(event.Changes),
	}
}

// buildRequest constructs the outbound POST for one delivery attempt.
func buildRequest(ctx context.Context, userAgent string, sub *model.Subscriber, event *model.Event, deliveryID string) (*http.Request, []byte, error) {
	body, err := json.Marshal(buildEnvelope(event))
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to marshal event envelope")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sub.URL, bytes.NewReader(body))
	if err != nil {
		return nil, nil, errors.Wrap(err, "unable to build delivery request")
	}

	req.Header.Set("Content-Type", contentTypeApplicationJSON)
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Webhook-Id", sub.ID)
	req.Header.Set("X-Webhook-Event", event.Type)
	req.Header.Set("X-Webhook-Timestamp", model.ISO8601FromMillis(event.CreateAt))
	req.Header.Set("X-Webhook-Delivery", deliveryID)

	// Subscriber-supplied custom headers overlay the canonical ones,
	// except the signature header, which is always ours.
	for key, value := range sub.CustomHeaders {
		req.Header.Set(key, value)
	}

	if sub.Secret != "" {
		req.Header.Set("X-Webhook-Signature", Sign(sub.Secret, body))
	}

	return req, body, nil
}

// newDeliveryID mints a delivery id distinct from the event id, since one
// event may be delivered to many subscribers.
func newDeliveryID() string {
	return uuid.NewString()
}

// readBoundedBody drains resp.Body up to MaxResponseBodyBytes+1, returning
// ErrResponseTooLarge if the body is larger.
func readBoundedBody(body io.ReadCloser) ([]byte, error) {
	defer func() {
		_, _ = io.Copy(io.Discard, body)
		_ = body.Close()
	}()

	limited := io.LimitReader(body, MaxResponseBodyBytes+1)
	data, err := io.ReadAll(limited)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}
	if len(data) > MaxResponseBodyBytes {
		return data[:MaxResponseBodyBytes], ErrResponseTooLarge
	}
	return data, nil
}

// defaultTimeout is the per-attempt timeout DefaultConfig sets; every
// subscriber shares Config.Timeout. It is a scoped resource via context
// and is always torn down.
const defaultTimeout = 15 * time.Second
