// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package model

import "github.com/pkg/errors"

// ErrorKind classifies a failure so callers (retry scheduler, circuit
// breaker, metrics) can react without string-matching error messages.
type ErrorKind string

const (
	// ErrorKindTransient covers network timeouts, connection resets, and
	// the retryable statuses of IsRetryableStatus other than 429: the same
	// request might succeed on retry.
	ErrorKindTransient ErrorKind = "transient"

	// ErrorKindPermanent covers every other 4xx and 5xx response and
	// malformed-subscriber configuration: retrying will not help.
	ErrorKindPermanent ErrorKind = "permanent"

	// ErrorKindThrottled covers 429 responses and local rate-limiter
	// rejections.
	ErrorKindThrottled ErrorKind = "throttled"

	// ErrorKindCircuitOpen means the breaker for the subscriber is open
	// and the attempt was never sent.
	ErrorKindCircuitOpen ErrorKind = "circuit_open"

	// ErrorKindInternal covers bugs or resource exhaustion inside the
	// dispatcher itself (e.g. failure to persist a delivery attempt).
	ErrorKindInternal ErrorKind = "internal"
)

// DispatchError wraps a delivery failure with its classification. Every
// component that hands a failure up to the orchestrator returns one of
// these rather than a bare error, so retry and DLQ policy can branch on
// Kind without re-deriving it from an HTTP status code a second time.
type DispatchError struct {
	Kind       ErrorKind
	StatusCode int
	cause      error
}

// NewDispatchError builds a DispatchError wrapping cause with errors.Wrap
// so the stack trace is preserved the way the rest of the module wraps
// errors.
func NewDispatchError(kind ErrorKind, statusCode int, cause error, message string) *DispatchError {
	return &DispatchError{
		Kind:       kind,
		StatusCode: statusCode,
		cause:      errors.Wrap(cause, message),
	}
}

// Error implements the error interface.
func (e *DispatchError) Error() string {
	if e.cause == nil {
		return string(e.Kind)
	}
	return e.cause.Error()
}

// Unwrap allows errors.Is/errors.As to see through to the cause.
func (e *DispatchError) Unwrap() error {
	return e.cause
}

// Retryable reports whether the scheduler should attempt delivery again.
func (e *DispatchError) Retryable() bool {
	switch e.Kind {
	case ErrorKindTransient, ErrorKindThrottled:
		return true
	default:
		return false
	}
}

// ClassifyStatusCode maps an HTTP response status to an ErrorKind. Codes
// below 400 are not errors and are not expected to reach this function.
func ClassifyStatusCode(statusCode int) ErrorKind {
	switch {
	case statusCode == 429:
		return ErrorKindThrottled
	case IsRetryableStatus(statusCode):
		return ErrorKindTransient
	case statusCode >= 400:
		return ErrorKindPermanent
	default:
		return ErrorKindTransient
	}
}
