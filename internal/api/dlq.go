// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/nine-rivers/hookline/model"
)

// initDLQ registers the dead-letter queue inspection and replay endpoints
// on the given router.
func initDLQ(apiRouter *mux.Router, context *Context) {
	addContext := func(name string, handler contextHandlerFunc) *contextHandler {
		return newContextHandler(context, name, handler)
	}

	dlqRouter := apiRouter.PathPrefix("/dlq").Subrouter()
	dlqRouter.Handle("", addContext("handleListDLQ", handleListDLQ)).Methods(http.MethodGet)
	dlqRouter.Handle("", addContext("handleClearDLQ", handleClearDLQ)).Methods(http.MethodDelete)
	dlqRouter.Handle("/retry-all", addContext("handleRetryAllDLQ", handleRetryAllDLQ)).Methods(http.MethodPost)

	entryRouter := apiRouter.PathPrefix("/dlq/{entry:[A-Za-z0-9]+}").Subrouter()
	entryRouter.Handle("/retry", addContext("handleRetryDLQEntry", handleRetryDLQEntry)).Methods(http.MethodPost)
}

// handleListDLQ responds to GET /api/dlq, listing entries matching the
// query-parameter filter.
func handleListDLQ(c *Context, w http.ResponseWriter, r *http.Request) {
	filter, err := parseDLQFilter(r.URL)
	if err != nil {
		c.Logger.WithError(err).Error("failed to parse dlq filter")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	entries, err := c.DLQ.List(filter)
	if err != nil {
		c.Logger.WithError(err).Error("failed to list dlq entries")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []*model.DLQEntry{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	outputJSON(c.Logger, w, entries)
}

// handleClearDLQ responds to DELETE /api/dlq, permanently removing every
// entry matching the query-parameter filter.
func handleClearDLQ(c *Context, w http.ResponseWriter, r *http.Request) {
	filter, err := parseDLQFilter(r.URL)
	if err != nil {
		c.Logger.WithError(err).Error("failed to parse dlq filter")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	removed, err := c.DLQ.Clear(filter)
	if err != nil {
		c.Logger.WithError(err).Error("failed to clear dlq entries")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	outputJSON(c.Logger, w, map[string]int64{"removed": removed})
}

// handleRetryDLQEntry responds to POST /api/dlq/{entry}/retry, replaying
// one frozen delivery synchronously and reporting the outcome.
func handleRetryDLQEntry(c *Context, w http.ResponseWriter, r *http.Request) {
	entryID := mux.Vars(r)["entry"]
	c.Logger = c.Logger.WithField("dlq_entry", entryID)

	result, err := replayOne(c, r, entryID)
	if err != nil {
		c.Logger.WithError(err).Error("failed to replay dlq entry")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	outputJSON(c.Logger, w, result)
}

// handleRetryAllDLQ responds to POST /api/dlq/retry-all, replaying every
// entry matching the query-parameter filter.
func handleRetryAllDLQ(c *Context, w http.ResponseWriter, r *http.Request) {
	filter, err := parseDLQFilter(r.URL)
	if err != nil {
		c.Logger.WithError(err).Error("failed to parse dlq filter")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	entries, err := c.DLQ.List(filter)
	if err != nil {
		c.Logger.WithError(err).Error("failed to list dlq entries for retry-all")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	results := make([]map[string]interface{}, 0, len(entries))
	for _, entry := range entries {
		result, err := replayOne(c, r, entry.ID)
		if err != nil {
			c.Logger.WithError(err).WithField("dlq_entry", entry.ID).Error("failed to replay dlq entry during retry-all")
			continue
		}
		results = append(results, result)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	outputJSON(c.Logger, w, results)
}

// replayOne marks entryID retrying, resolves its subscriber, re-sends its
// frozen envelope, and records the outcome back onto the entry.
func replayOne(c *Context, r *http.Request, entryID string) (map[string]interface{}, error) {
	replay, err := c.DLQ.Retry(entryID)
	if err != nil {
		return nil, err
	}

	sub, err := c.Subscribers.GetSubscriber(replay.SubscriberID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		_ = c.DLQ.UpdateStatus(entryID, false)
		return map[string]interface{}{"entry": entryID, "success": false, "reason": "subscriber_not_found"}, nil
	}

	result := c.Dispatcher.Redeliver(r.Context(), sub, replay.EventEnvelope, replay.EventID)
	if err := c.DLQ.UpdateStatus(entryID, result.Success); err != nil {
		c.Logger.WithError(err).Error("failed to update dlq entry status after replay")
	}

	return map[string]interface{}{
		"entry":       entryID,
		"success":     result.Success,
		"status_code": result.StatusCode,
	}, nil
}
