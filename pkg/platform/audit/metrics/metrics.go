package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for the audit publisher.
type Metrics struct {
	QueueDepth      prometheus.Gauge
	EventsEnqueued  prometheus.Counter
	EventsDropped   prometheus.Counter
	EventsPersisted prometheus.Counter
	PersistFailures prometheus.Counter
	PersistDuration prometheus.Histogram
}

// New registers audit publisher metrics with reg, or with the default
// registerer when reg is nil.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		QueueDepth: factory.NewGauge(prometheus.GaugeOpts{
			Name: "patientdesk_audit_queue_depth",
			Help: "Current number of events waiting in the audit publisher queue",
		}),
		EventsEnqueued: factory.NewCounter(prometheus.CounterOpts{
			Name: "patientdesk_audit_events_enqueued_total",
			Help: "Total number of audit events accepted into the async queue",
		}),
		EventsDropped: factory.NewCounter(prometheus.CounterOpts{
			Name: "patientdesk_audit_events_dropped_total",
			Help: "Total number of audit events dropped due to a full buffer",
		}),
		EventsPersisted: factory.NewCounter(prometheus.CounterOpts{
			Name: "patientdesk_audit_events_persisted_total",
			Help: "Total number of audit events written to the audit store",
		}),
		PersistFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "patientdesk_audit_persist_failures_total",
			Help: "Total number of audit events the store rejected",
		}),
		PersistDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "patientdesk_audit_persist_duration_seconds",
			Help:    "Time taken to persist an audit event to the store",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}),
	}
}

func (m *Metrics) IncQueueDepth() {
	m.QueueDepth.Inc()
}

func (m *Metrics) DecQueueDepth() {
	m.QueueDepth.Dec()
}

func (m *Metrics) IncEventsEnqueued() {
	m.EventsEnqueued.Inc()
}

func (m *Metrics) IncEventsDropped() {
	m.EventsDropped.Inc()
}

// ObservePersist records one store write and whether it succeeded.
func (m *Metrics) ObservePersist(start time.Time, err error) {
	m.PersistDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		m.PersistFailures.Inc()
		return
	}
	m.EventsPersisted.Inc()
}
