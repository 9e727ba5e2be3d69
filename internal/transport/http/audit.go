package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	id "patientdesk/pkg/domain"
	dErrors "patientdesk/pkg/domain-errors"
	"patientdesk/pkg/platform/audit"
	"patientdesk/pkg/platform/httputil"
	"patientdesk/pkg/requestcontext"
)

// AuditLister reads the audit trail. Satisfied by publisher.Publisher.
type AuditLister interface {
	List(ctx context.Context, patientID id.PatientID) ([]audit.Event, error)
	ListAll(ctx context.Context) ([]audit.Event, error)
}

// AuditHandler exposes the audit trail over HTTP. It never returns patient
// names or contact details, only ids and changed field names.
type AuditHandler struct {
	events AuditLister
	logger *slog.Logger
}

func NewAuditHandler(events AuditLister, logger *slog.Logger) *AuditHandler {
	return &AuditHandler{events: events, logger: logger}
}

func (h *AuditHandler) Register(r chi.Router) {
	r.Get("/audit/events", h.HandleListAll)
	r.Get("/audit/patients/{patientID}", h.HandleListByPatient)
}

type AuditEventResponse struct {
	ID        string   `json:"id"`
	Timestamp string   `json:"timestamp"`
	PatientID int      `json:"patient_id"`
	Action    string   `json:"action"`
	Fields    []string `json:"fields,omitempty"`
	SessionID string   `json:"session_id,omitempty"`
}

type AuditListResponse struct {
	Events []AuditEventResponse `json:"events"`
	Total  int                  `json:"total"`
}

func (h *AuditHandler) HandleListAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	events, err := h.events.ListAll(ctx)
	if err != nil {
		h.writeFailure(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toListResponse(events))
}

func (h *AuditHandler) HandleListByPatient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	patientID, err := id.ParsePatientID(chi.URLParam(r, "patientID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	events, err := h.events.List(ctx, patientID)
	if err != nil {
		h.writeFailure(ctx, w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toListResponse(events))
}

func (h *AuditHandler) writeFailure(ctx context.Context, w http.ResponseWriter, err error) {
	h.logger.ErrorContext(ctx, "failed to list audit events",
		"error", err,
		"request_id", requestcontext.RequestID(ctx),
	)
	httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list audit events"))
}

func toListResponse(events []audit.Event) AuditListResponse {
	out := make([]AuditEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, AuditEventResponse{
			ID:        e.ID.String(),
			Timestamp: e.Timestamp.UTC().Format(time.RFC3339Nano),
			PatientID: int(e.PatientID),
			Action:    e.Action,
			Fields:    e.Fields,
			SessionID: e.SessionID,
		})
	}
	return AuditListResponse{Events: out, Total: len(out)}
}
