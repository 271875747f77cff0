// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

package orchestrator

import (
	"github.com/nine-rivers/hookline/internal/metrics"
	"github.com/nine-rivers/hookline/internal/observer"
	"github.com/nine-rivers/hookline/internal/ratelimit"
	"github.com/sirupsen/logrus"
)

// rateLimitReclaimDoer sweeps inactive per-subscriber limiters out of the
// ratelimit registry on a schedule, riding the same supervisor.Scheduler
// primitive as the DLQ and history sweeps.
type rateLimitReclaimDoer struct {
	limiters *ratelimit.Registry
	logger   logrus.FieldLogger
}

func newRateLimitReclaimDoer(limiters *ratelimit.Registry, logger logrus.FieldLogger) *rateLimitReclaimDoer {
	return &rateLimitReclaimDoer{limiters: limiters, logger: logger.WithField("supervisor", "ratelimit-reclaim")}
}

func (d *rateLimitReclaimDoer) Do() error {
	removed := d.limiters.ReclaimInactive()
	if removed > 0 {
		d.logger.Debugf("reclaimed %d inactive rate limiters", removed)
	}
	return nil
}

func (d *rateLimitReclaimDoer) Shutdown() {
	d.logger.Debug("shutting down rate limiter reclaim sweep")
}

// metricsSampleDoer periodically copies point-in-time state (observer
// health, DLQ depth) into the Prometheus gauges metrics.Metrics exposes,
// since neither source pushes changes on its own.
type metricsSampleDoer struct {
	observerStatus func() observer.Status
	dlqCount       func() (int64, error)
	metrics        *metrics.Metrics
	logger         logrus.FieldLogger
}

func newMetricsSampleDoer(observerStatus func() observer.Status, dlqCount func() (int64, error), m *metrics.Metrics, logger logrus.FieldLogger) *metricsSampleDoer {
	return &metricsSampleDoer{
		observerStatus: observerStatus,
		dlqCount:       dlqCount,
		metrics:        m,
		logger:         logger.WithField("supervisor", "metrics-sample"),
	}
}

func (d *metricsSampleDoer) Do() error {
	status := d.observerStatus()
	d.metrics.SetObserverStatus(status.Running, status.EventsProcessed, status.ReconnectAttempts)

	count, err := d.dlqCount()
	if err != nil {
		d.logger.WithError(err).Error("failed to sample dlq size")
		return err
	}
	d.metrics.SetDLQSize(count)
	return nil
}

func (d *metricsSampleDoer) Shutdown() {
	d.logger.Debug("shutting down metrics sampler")
}
