// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package dispatcher

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/nine-rivers/hookline/model"
)

// classifyTransportError maps a client.Do failure (connection, DNS, TLS,
// stream errors, or our own per-attempt timeout) to a DispatchError. A
// context-deadline timeout is reported as request_timeout, retryable.
func classifyTransportError(err error) *model.DispatchError {
	if errors.Is(err, context.DeadlineExceeded) {
		return model.NewDispatchError(model.ErrorKindTransient, 0, err, "request_timeout")
	}
	return model.NewDispatchError(model.ErrorKindTransient, 0, err, "transport error")
}

// classifyResponse maps an HTTP status code to a DispatchError, or nil for
// success.
func classifyResponse(statusCode int) *model.DispatchError {
	if statusCode >= 200 && statusCode < 300 {
		return nil
	}
	kind := model.ClassifyStatusCode(statusCode)
	return model.NewDispatchError(kind, statusCode, nil, http.StatusText(statusCode))
}

// backoffDelay computes delay(k) = min(base * multiplier^(k-1), max) +
// U[0, jitterMax), matching the dispatcher's documented retry formula,
// where k = attempt-1 is the retry number and jitterMax is one second.
// attempt is 1-based; attempt 1 has no prior delay (the first send is
// immediate) and attempt 2 waits base plus jitter.
func backoffDelay(attempt int, policy model.RetryPolicy, jitter func(max time.Duration) time.Duration) time.Duration {
	if attempt <= 1 {
		return 0
	}
	base := policy.InitialBackoff
	mult := policy.BackoffMultiplier
	if mult <= 0 {
		mult = 2
	}
	delay := base
	for i := 1; i < attempt-1; i++ {
		delay = time.Duration(float64(delay) * mult)
		if policy.MaxBackoff > 0 && delay > policy.MaxBackoff {
			delay = policy.MaxBackoff
			break
		}
	}
	if policy.MaxBackoff > 0 && delay > policy.MaxBackoff {
		delay = policy.MaxBackoff
	}
	return delay + jitter(time.Second)
}
