package service

import (
	"log/slog"
	"time"

	patientmetrics "patientdesk/internal/patient/metrics"
	"patientdesk/internal/platform/tracer"
	"patientdesk/pkg/platform/audit"
)

// Service orchestrates patient record management: validation, age derivation,
// id assignment through the store, and audit trail.
type Service struct {
	patients       PatientStore
	logger         *slog.Logger
	auditPublisher AuditPublisher
	auditLogger    *audit.Logger
	metrics        *patientmetrics.Metrics
	tracer         tracer.Tracer
	clock          func() time.Time
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func WithMetrics(m *patientmetrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(t tracer.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// WithClock overrides the time source used for ages and timestamps.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		s.clock = clock
	}
}

func New(patients PatientStore, opts ...Option) *Service {
	s := &Service{patients: patients}
	for _, opt := range opts {
		opt(s)
	}
	if s.tracer == nil {
		s.tracer = tracer.NewNoop()
	}
	if s.clock == nil {
		s.clock = time.Now
	}
	var emitter audit.Emitter
	if s.auditPublisher != nil {
		emitter = s.auditPublisher
	}
	s.auditLogger = audit.NewLogger(s.logger, emitter)
	return s
}
