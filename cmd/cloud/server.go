// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package main

import (
	"context"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/nine-rivers/hookline/internal/api"
	"github.com/nine-rivers/hookline/internal/observer"
	"github.com/nine-rivers/hookline/internal/orchestrator"
	"github.com/nine-rivers/hookline/internal/store"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newCmdServer() *cobra.Command {
	var flags serverFlags

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Run the webhook dispatcher server.",
		RunE: func(command *cobra.Command, args []string) error {
			command.SilenceUsage = true
			return executeServerCmd(flags)
		},
	}
	flags.addFlags(cmd)

	return cmd
}

func executeServerCmd(flags serverFlags) error {
	if flags.debug {
		logger.SetLevel(logrus.DebugLevel)
		enableLogStacktrace()
	}

	sqlStore, err := store.New(flags.database, logger)
	if err != nil {
		return errors.Wrap(err, "failed to connect to database")
	}
	if err := sqlStore.Migrate(); err != nil {
		return errors.Wrap(err, "failed to migrate database")
	}

	config := orchestrator.DefaultConfig()
	config.Workspace = flags.workspace
	config.BurstWorkers = flags.burstWorkers
	config.FeedPollInterval = flags.feedPollInterval
	config.SubscriberRefreshInterval = flags.subscriberRefreshInterval

	if flags.cursorMode == "file" {
		config.CursorMode = orchestrator.CursorModeFile
		config.CursorFilePath = flags.cursorFilePath
	}

	if flags.feedEndpoint == "" {
		logger.Warn("no --feed-endpoint configured; the observer will have nothing to poll")
	}
	feedSource := observer.NewHTTPSource(flags.feedEndpoint)

	orch, err := orchestrator.New(sqlStore, feedSource, config, logger)
	if err != nil {
		return errors.Wrap(err, "failed to build orchestrator")
	}

	ctx, cancelOrchestrator := context.WithCancel(context.Background())
	defer cancelOrchestrator()
	if err := orch.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start orchestrator")
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.Handler())
	metricsServer := &http.Server{
		Addr:           flags.metricsListen,
		Handler:        metricsRouter,
		ReadTimeout:    180 * time.Second,
		WriteTimeout:   180 * time.Second,
		IdleTimeout:    180 * time.Second,
		MaxHeaderBytes: 1 << 20,
		ErrorLog:       stdlog.New(&logrusWriter{logger: logger}, "", 0),
	}

	go func() {
		logger.WithField("addr", metricsServer.Addr).Info("metrics server listening")
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Error("failed to listen and serve metrics")
		}
	}()

	router := mux.NewRouter()
	api.Register(router, &api.Context{
		DLQ:         orch.DLQ(),
		Subscribers: sqlStore,
		Dispatcher:  orch.Dispatcher(),
		Pinger:      sqlStore,
		Health:      orch,
		Logger:      logger,
	})

	srv := &http.Server{
		Addr:           flags.listen,
		Handler:        router,
		ReadTimeout:    180 * time.Second,
		WriteTimeout:   180 * time.Second,
		IdleTimeout:    180 * time.Second,
		MaxHeaderBytes: 1 << 20,
		ErrorLog:       stdlog.New(&logrusWriter{logger: logger}, "", 0),
	}

	go func() {
		logger.WithField("addr", srv.Addr).Info("api server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Error("failed to listen and serve api")
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	sig := <-c
	logger.WithField("shutdown-signal", sig.String()).Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("error shutting down api server")
	}
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("error shutting down metrics server")
	}

	orch.Stop()

	return nil
}
