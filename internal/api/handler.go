// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package api

import (
	"net/http"
	"time"

	"github.com/nine-rivers/hookline/model"
	log "github.com/sirupsen/logrus"
)

type contextHandlerFunc func(c *Context, w http.ResponseWriter, r *http.Request)

// contextHandler wraps a contextHandlerFunc with per-request logging, the
// same shape the teacher's contextHandler uses: clone the base context,
// stamp a request id, and log before and after the handler runs.
type contextHandler struct {
	context *Context
	handler contextHandlerFunc
	name    string
}

func newContextHandler(context *Context, name string, handler contextHandlerFunc) *contextHandler {
	return &contextHandler{context: context, handler: handler, name: name}
}

func (h *contextHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ww := newResponseWriterWrapper(w)

	context := h.context.Clone()
	context.RequestID = model.NewID()
	context.Logger = context.Logger.WithFields(log.Fields{
		"handler": h.name,
		"method":  r.Method,
		"path":    r.URL.Path,
		"request": context.RequestID,
	})

	context.Logger.Debug("handling request")
	h.handler(context, ww, r)
	context.Logger.WithFields(log.Fields{
		"status":      ww.StatusCode(),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("request handled")
}
