// Package tracer provides a lightweight tracing abstraction for services.
//
// Services depend on the Tracer interface instead of OpenTelemetry APIs so that
// tests can run with the no-op tracer and production wiring can plug in either
// the global OpenTelemetry provider or the SDK provider from NewWriterProvider.
//
// Implementations:
//   - NoopTracer: for tests (zero overhead)
//   - OTelTracer: OpenTelemetry adapter
package tracer

import (
	"context"
	"time"
)

// Span represents an active trace span.
type Span interface {
	// End completes the span, recording err when non-nil.
	// End must be called exactly once, typically via defer.
	End(err error)

	SetAttributes(attrs ...Attribute)

	AddEvent(name string, attrs ...Attribute)
}

// Tracer creates spans. Implementations must be safe for concurrent use.
type Tracer interface {
	// Start creates a new span with the given name and attributes.
	//
	// Example:
	//   ctx, span := tr.Start(ctx, tracer.SpanPatientUpdate,
	//       tracer.Int64(tracer.AttrPatientID, int64(patientID)),
	//   )
	//   defer func() { span.End(err) }()
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute represents a key-value pair attached to spans.
type Attribute struct {
	Key   string
	Value any
}

func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

func Int64(key string, value int64) Attribute {
	return Attribute{Key: key, Value: value}
}

func Float64(key string, value float64) Attribute {
	return Attribute{Key: key, Value: value}
}

// Duration creates a duration attribute in milliseconds.
func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value.Milliseconds()}
}

// Span names used by the patient module.
const (
	SpanPatientAdd    = "patient.add"
	SpanPatientList   = "patient.list"
	SpanPatientGet    = "patient.get"
	SpanPatientUpdate = "patient.update"
	SpanPatientDelete = "patient.delete"
)

// Attribute keys used by the patient module. Names and phone numbers are PII and
// never go on spans.
const (
	AttrPatientID     = "patient.id"
	AttrRecordCount   = "patient.record_count"
	AttrChangedFields = "patient.changed_fields"
)
