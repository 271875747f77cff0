// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package api

import "github.com/gorilla/mux"

// Register wires the health/readiness and DLQ-replay endpoints onto
// rootRouter, the same Register(router, context) entry point the teacher's
// api package exposes.
func Register(rootRouter *mux.Router, context *Context) {
	initHealth(rootRouter, context)

	apiRouter := rootRouter.PathPrefix("/api").Subrouter()
	initDLQ(apiRouter, context)
}
