// Copyright (c) 2015-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.
//

// Package metrics instruments the dispatch pipeline with
// prometheus/client_golang, the teacher's own metrics library
// (internal/metrics in the original tree), generalized from installation
// creation timings to delivery outcomes, DLQ volume, and observer health.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds every Prometheus collector exposed on /metrics.
type Metrics struct {
	DeliveriesTotal         *prometheus.CounterVec
	DeliveryDurationSeconds *prometheus.HistogramVec
	DLQEntriesTotal         prometheus.Counter
	DLQSize                 prometheus.Gauge
	ObserverEventsProcessed prometheus.Gauge
	ObserverReconnects      prometheus.Gauge
	ObserverRunning         prometheus.Gauge
	RateLimiterRejections   *prometheus.CounterVec
}

// New registers and returns the dispatcher's metric collectors.
func New() *Metrics {
	return &Metrics{
		DeliveriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hookline_deliveries_total",
			Help: "Count of completed delivery attempts by subscriber and outcome.",
		}, []string{"subscriber", "result"}),
		DeliveryDurationSeconds: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hookline_delivery_duration_seconds",
			Help:    "Wall-clock duration of one full Deliver call, including retries.",
			Buckets: prometheus.DefBuckets,
		}, []string{"subscriber"}),
		DLQEntriesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "hookline_dlq_entries_total",
			Help: "Count of deliveries dead-lettered after exhausting their retry budget.",
		}),
		DLQSize: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "hookline_dlq_size",
			Help: "Most recently sampled dead-letter queue row count.",
		}),
		ObserverEventsProcessed: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "hookline_observer_events_processed",
			Help: "Total change records handled by the observer since process start.",
		}),
		ObserverReconnects: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "hookline_observer_reconnect_attempts",
			Help: "Consecutive reconnect attempts since the last successful feed read.",
		}),
		ObserverRunning: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "hookline_observer_running",
			Help: "1 if the change observer run loop is active, 0 otherwise.",
		}),
		RateLimiterRejections: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "hookline_ratelimit_rejections_total",
			Help: "Count of deliveries rejected by admission control by subscriber.",
		}, []string{"subscriber"}),
	}
}

// ObserveDelivery records the outcome of one Deliver call.
func (m *Metrics) ObserveDelivery(subscriberID string, success bool, duration time.Duration) {
	result := "failure"
	if success {
		result = "success"
	}
	m.DeliveriesTotal.WithLabelValues(subscriberID, result).Inc()
	m.DeliveryDurationSeconds.WithLabelValues(subscriberID).Observe(duration.Seconds())
}

// ObserveRateLimitRejection records one admission-control rejection.
func (m *Metrics) ObserveRateLimitRejection(subscriberID string) {
	m.RateLimiterRejections.WithLabelValues(subscriberID).Inc()
}

// ObserveDLQAdd records one entry being dead-lettered.
func (m *Metrics) ObserveDLQAdd() {
	m.DLQEntriesTotal.Inc()
}

// SetDLQSize records the current dead-letter queue row count.
func (m *Metrics) SetDLQSize(size int64) {
	m.DLQSize.Set(float64(size))
}

// SetObserverStatus records the observer's point-in-time health snapshot.
func (m *Metrics) SetObserverStatus(running bool, eventsProcessed int64, reconnectAttempts int) {
	if running {
		m.ObserverRunning.Set(1)
	} else {
		m.ObserverRunning.Set(0)
	}
	m.ObserverEventsProcessed.Set(float64(eventsProcessed))
	m.ObserverReconnects.Set(float64(reconnectAttempts))
}
