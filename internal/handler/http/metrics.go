// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the blob server collectors. Each instance owns its registry,
// so several handlers can coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	reqLatency *prometheus.HistogramVec
	reqStatus  *prometheus.CounterVec
	reqSize    *prometheus.HistogramVec
	respSize   *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		reqLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "blob_server_response_time",
				Help:    "The server's response time",
				Buckets: []float64{0.01, 0.05, 0.1, 0.2, 0.5, 1, 2, 5, 10, 30, 60},
			},
			[]string{"method", "route"},
		),
		reqStatus: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "blob_server_requests_total",
				Help: "Requests by method, route and status code",
			},
			[]string{"method", "route", "code"},
		),
		reqSize: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "blob_server_request_size_bytes",
				Help:    "The size of request bodies",
				Buckets: prometheus.ExponentialBuckets(1, 4, 16),
			},
			[]string{"method", "route"},
		),
		respSize: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "blob_server_response_size_bytes",
				Help:    "The size of response bodies",
				Buckets: prometheus.ExponentialBuckets(1, 4, 16),
			},
			[]string{"method", "route"},
		),
	}

	m.registry.MustRegister(
		m.reqLatency, m.reqStatus, m.reqSize, m.respSize,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// instrument records latency, status and sizes per route pattern. Raw
// paths are never used as labels: they contain owner ids.
func (m *Metrics) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(rw, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := rw.status
		if status == 0 {
			status = http.StatusOK
		}

		m.reqLatency.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		m.reqStatus.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		if r.ContentLength > 0 {
			m.reqSize.WithLabelValues(r.Method, route).Observe(float64(r.ContentLength))
		}
		m.respSize.WithLabelValues(r.Method, route).Observe(float64(rw.size))
	})
}
