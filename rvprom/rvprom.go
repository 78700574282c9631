// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package rvprom exports rendezvous gate activity as Prometheus metrics.
package rvprom

import (
	"github.com/prometheus/client_golang/prometheus"

	"code.hybscloud.com/rendezvous"
)

// Collector counts gate events and tracks open sessions.
// Install it on a gate with rendezvous.WithTracer(c.Trace) and register it
// with a prometheus.Registerer.
type Collector struct {
	events   *prometheus.CounterVec
	sessions prometheus.Gauge
	closes   prometheus.Counter
}

// NewCollector creates a collector whose metrics are prefixed with
// namespace and labelled with gate as a constant label.
func NewCollector(namespace, gate string) *Collector {
	labels := prometheus.Labels{"gate": gate}
	c := &Collector{
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "rendezvous",
			Name:        "events_total",
			Help:        "Gate protocol events by type.",
			ConstLabels: labels,
		}, []string{"event"}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Subsystem:   "rendezvous",
			Name:        "sessions_active",
			Help:        "Client sessions currently bound to a server.",
			ConstLabels: labels,
		}),
		closes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   "rendezvous",
			Name:        "closes_total",
			Help:        "Calls to Close.",
			ConstLabels: labels,
		}),
	}
	for _, ev := range rendezvous.Events() {
		c.events.WithLabelValues(ev.String())
	}
	return c
}

// Trace implements rendezvous.Tracer.
func (c *Collector) Trace(ev rendezvous.Event) {
	c.events.WithLabelValues(ev.String()).Inc()
	switch ev {
	case rendezvous.EventClientConnected:
		c.sessions.Inc()
	case rendezvous.EventDisconnected:
		c.sessions.Dec()
	case rendezvous.EventClose:
		c.closes.Inc()
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.events.Describe(ch)
	c.sessions.Describe(ch)
	c.closes.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.events.Collect(ch)
	c.sessions.Collect(ch)
	c.closes.Collect(ch)
}
