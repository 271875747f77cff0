// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package main

import (
	"time"

	"github.com/spf13/cobra"
)

type serverFlags struct {
	database string
	listen   string

	metricsListen string

	workspace    string
	feedEndpoint string

	cursorMode     string
	cursorFilePath string

	burstWorkers              int
	feedPollInterval          time.Duration
	subscriberRefreshInterval time.Duration

	debug bool
}

func (flags *serverFlags) addFlags(command *cobra.Command) {
	command.Flags().StringVar(&flags.database, "database", "", "The database backing the webhook dispatcher (e.g. postgres://... or sqlite://...).")
	command.Flags().StringVar(&flags.listen, "listen", ":8075", "The interface and port on which to listen for the health/readiness/DLQ API.")
	command.Flags().StringVar(&flags.metricsListen, "metrics-listen", ":8076", "The interface and port on which to listen for Prometheus metrics.")

	command.Flags().StringVar(&flags.workspace, "workspace", "default", "The tenant identifier stamped onto every routed event.")
	command.Flags().StringVar(&flags.feedEndpoint, "feed-endpoint", "", "The HTTP endpoint the observer polls for upstream change feed records.")

	command.Flags().StringVar(&flags.cursorMode, "cursor-mode", "database", "Where the resume cursor is persisted: 'database' or 'file'.")
	command.Flags().StringVar(&flags.cursorFilePath, "cursor-file", "", "The file path to persist the resume cursor to, when --cursor-mode=file.")

	command.Flags().IntVar(&flags.burstWorkers, "burst-workers", 8, "The maximum number of concurrent deliveries fanned out per routed event.")
	command.Flags().DurationVar(&flags.feedPollInterval, "feed-poll-interval", 2*time.Second, "How often the observer polls the feed endpoint for new changes.")
	command.Flags().DurationVar(&flags.subscriberRefreshInterval, "subscriber-refresh-interval", 30*time.Second, "How often the in-memory subscriber snapshot is refreshed from the database.")

	command.Flags().BoolVar(&flags.debug, "debug", false, "Whether to output debug logs.")
}
