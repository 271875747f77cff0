// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package api

import (
	"net/http"

	"github.com/gorilla/mux"
)

// initHealth registers the liveness and readiness endpoints on the given
// router.
func initHealth(rootRouter *mux.Router, context *Context) {
	addContext := func(name string, handler contextHandlerFunc) *contextHandler {
		return newContextHandler(context, name, handler)
	}

	rootRouter.Handle("/healthz", addContext("handleHealthz", handleHealthz)).Methods(http.MethodGet)
	rootRouter.Handle("/readyz", addContext("handleReadyz", handleReadyz)).Methods(http.MethodGet)
}

// handleHealthz reports liveness: the process is up and serving requests.
// It never depends on downstream state, so a database outage does not
// cause the orchestrator's pod to be killed and restarted pointlessly.
func handleHealthz(c *Context, w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	outputJSON(c.Logger, w, map[string]string{"status": "ok"})
}

// handleReadyz reports readiness: true iff the observer is running and the
// cursor store's backing database is reachable. A pod failing this check
// should stop receiving traffic but should not be restarted.
func handleReadyz(c *Context, w http.ResponseWriter, r *http.Request) {
	status := c.Health.Status()

	if !status.Running {
		c.Logger.Debug("not ready: observer not running")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		outputJSON(c.Logger, w, map[string]interface{}{"status": "not_ready", "reason": "observer_not_running"})
		return
	}

	if err := c.Pinger.Ping(); err != nil {
		c.Logger.WithError(err).Debug("not ready: store unreachable")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		outputJSON(c.Logger, w, map[string]interface{}{"status": "not_ready", "reason": "store_unreachable"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	outputJSON(c.Logger, w, map[string]interface{}{
		"status":             "ready",
		"events_processed":   status.EventsProcessed,
		"reconnect_attempts": status.ReconnectAttempts,
	})
}
