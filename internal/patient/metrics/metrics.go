package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus collectors for patient record operations.
type Metrics struct {
	PatientsCreated     prometheus.Counter
	PatientsUpdated     prometheus.Counter
	PatientsDeleted     prometheus.Counter
	PatientRecordsTotal prometheus.Gauge
	LookupMisses        *prometheus.CounterVec
	ValidationFailures  *prometheus.CounterVec
	OperationLatency    *prometheus.HistogramVec
}

// New registers patient collectors with reg. A nil reg falls back to the
// default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		PatientsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "patientdesk_patients_created_total",
			Help: "Total number of patient records created",
		}),
		PatientsUpdated: factory.NewCounter(prometheus.CounterOpts{
			Name: "patientdesk_patients_updated_total",
			Help: "Total number of patient records updated",
		}),
		PatientsDeleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "patientdesk_patients_deleted_total",
			Help: "Total number of patient records deleted",
		}),
		PatientRecordsTotal: factory.NewGauge(prometheus.GaugeOpts{
			Name: "patientdesk_patient_records",
			Help: "Current number of patient records held in memory",
		}),
		LookupMisses: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "patientdesk_patient_lookup_misses_total",
			Help: "Total number of operations that referenced an unknown patient id, labeled by operation",
		}, []string{"operation"}),
		ValidationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "patientdesk_patient_validation_failures_total",
			Help: "Total number of rejected patient requests, labeled by operation",
		}, []string{"operation"}),
		OperationLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "patientdesk_patient_operation_latency_seconds",
			Help:    "Latency of patient service operations in seconds",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		}, []string{"operation"}),
	}
}

func (m *Metrics) IncrementPatientsCreated() {
	m.PatientsCreated.Inc()
}

func (m *Metrics) IncrementPatientsUpdated() {
	m.PatientsUpdated.Inc()
}

func (m *Metrics) IncrementPatientsDeleted() {
	m.PatientsDeleted.Inc()
}

func (m *Metrics) SetPatientRecords(n int) {
	m.PatientRecordsTotal.Set(float64(n))
}

func (m *Metrics) IncrementLookupMiss(operation string) {
	m.LookupMisses.WithLabelValues(operation).Inc()
}

func (m *Metrics) IncrementValidationFailure(operation string) {
	m.ValidationFailures.WithLabelValues(operation).Inc()
}

func (m *Metrics) ObserveOperation(operation string, start time.Time) {
	m.OperationLatency.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
