package audit

import (
	"context"
	"time"

	"github.com/google/uuid"

	id "patientdesk/pkg/domain"
)

// Event is emitted from domain logic to capture key actions on patient records.
// Keep it presentation-agnostic so stores and sinks can fan out.
type Event struct {
	ID        uuid.UUID
	Timestamp time.Time
	PatientID id.PatientID
	Action    string
	// Fields lists the record fields an update changed; empty for create/delete.
	Fields    []string
	SessionID string
}

type AuditEvent string

const (
	EventPatientCreated AuditEvent = "patient_created"
	EventPatientUpdated AuditEvent = "patient_updated"
	EventPatientDeleted AuditEvent = "patient_deleted"
)

// Store is the append-only sink behind the publisher.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByPatient(ctx context.Context, patientID id.PatientID) ([]Event, error)
	ListAll(ctx context.Context) ([]Event, error)
}
