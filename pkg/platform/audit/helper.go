package audit

import (
	"context"
	"log/slog"

	id "patientdesk/pkg/domain"
	"patientdesk/pkg/requestcontext"
)

// Emitter is the interface for audit event emission.
// Satisfied by publisher.Publisher.
type Emitter interface {
	Emit(ctx context.Context, event Event) error
}

// Logger provides structured audit logging with optional event emission.
// Use this in services to standardize audit logging patterns.
type Logger struct {
	textLogger *slog.Logger
	emitter    Emitter
}

// NewLogger creates an audit logger. Both arguments are optional.
func NewLogger(textLogger *slog.Logger, emitter Emitter) *Logger {
	return &Logger{
		textLogger: textLogger,
		emitter:    emitter,
	}
}

// Log writes an audit line and emits the event when an emitter is configured.
// The session id from ctx is attached automatically.
//
// Usage:
//
//	auditLogger.Log(ctx, audit.EventPatientUpdated, patient.ID, []string{"phone_number"})
func (l *Logger) Log(ctx context.Context, event AuditEvent, patientID id.PatientID, fields []string) {
	if l == nil {
		return
	}
	sessionID := requestcontext.SessionID(ctx)
	l.logToText(ctx, event, patientID, fields, sessionID)
	l.emitToAudit(ctx, event, patientID, fields, sessionID)
}

func (l *Logger) logToText(ctx context.Context, event AuditEvent, patientID id.PatientID, fields []string, sessionID string) {
	if l.textLogger == nil {
		return
	}
	args := []any{"event", string(event), "log_type", "audit", "patient_id", int(patientID)}
	if len(fields) > 0 {
		args = append(args, "fields", fields)
	}
	if sessionID != "" {
		args = append(args, "session_id", sessionID)
	}
	l.textLogger.InfoContext(ctx, string(event), args...)
}

func (l *Logger) emitToAudit(ctx context.Context, event AuditEvent, patientID id.PatientID, fields []string, sessionID string) {
	if l.emitter == nil {
		return
	}
	err := l.emitter.Emit(ctx, Event{
		PatientID: patientID,
		Action:    string(event),
		Fields:    fields,
		SessionID: sessionID,
	})
	if err != nil && l.textLogger != nil {
		l.textLogger.ErrorContext(ctx, "failed to emit audit event",
			"error", err,
			"event", string(event),
		)
	}
}
