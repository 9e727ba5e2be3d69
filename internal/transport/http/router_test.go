package httptransport

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	patientmetrics "patientdesk/internal/patient/metrics"
	"patientdesk/internal/platform/health"
	id "patientdesk/pkg/domain"
	"patientdesk/pkg/platform/audit"
	"patientdesk/pkg/platform/audit/publisher"
	auditmemory "patientdesk/pkg/platform/audit/store/memory"
	request "patientdesk/pkg/platform/middleware/request"
)

type RouterSuite struct {
	suite.Suite
	publisher *publisher.Publisher
	metrics   *patientmetrics.Metrics
	router    http.Handler
}

func (s *RouterSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()
	s.metrics = patientmetrics.New(reg)
	s.publisher = publisher.NewPublisher(auditmemory.NewInMemoryStore())

	s.router = NewRouter(RouterDeps{
		Health:         health.New("test"),
		Audit:          NewAuditHandler(s.publisher, logger),
		Gatherer:       reg,
		RequestMetrics: request.NewMetrics(reg),
		Logger:         logger,
	})
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) get(path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func (s *RouterSuite) emit(patientID id.PatientID, action audit.AuditEvent, fields ...string) {
	s.Require().NoError(s.publisher.Emit(context.Background(), audit.Event{
		PatientID: patientID,
		Action:    string(action),
		Fields:    fields,
		SessionID: "session-1",
		Timestamp: time.Date(2024, time.June, 20, 9, 0, 0, 0, time.UTC),
	}))
}

func (s *RouterSuite) TestHealth() {
	w := s.get("/health/live")
	s.Equal(http.StatusOK, w.Code)
	s.NotEmpty(w.Header().Get("X-Request-ID"))
}

func (s *RouterSuite) TestMetrics() {
	s.metrics.IncrementPatientsCreated()

	w := s.get("/metrics")
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "patientdesk_patients_created_total 1")
}

func (s *RouterSuite) TestAuditEvents() {
	s.emit(100, audit.EventPatientCreated)
	s.emit(101, audit.EventPatientCreated)
	s.emit(100, audit.EventPatientUpdated, "phone_number")

	w := s.get("/audit/events")
	s.Require().Equal(http.StatusOK, w.Code)
	var all AuditListResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &all))
	s.Equal(3, all.Total)

	w = s.get("/audit/patients/100")
	s.Require().Equal(http.StatusOK, w.Code)
	var one AuditListResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &one))
	s.Require().Equal(2, one.Total)
	s.Equal("patient_updated", one.Events[1].Action)
	s.Equal([]string{"phone_number"}, one.Events[1].Fields)
	s.Equal("session-1", one.Events[1].SessionID)
	s.Equal("2024-06-20T09:00:00Z", one.Events[1].Timestamp)
	s.NotEmpty(one.Events[1].ID)
}

func (s *RouterSuite) TestAuditEventsEmptyPatient() {
	w := s.get("/audit/patients/555")
	s.Require().Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"events":[],"total":0}`, w.Body.String())
}

func (s *RouterSuite) TestAuditInvalidPatientID() {
	w := s.get("/audit/patients/abc")
	s.Equal(http.StatusBadRequest, w.Code)
	s.True(strings.Contains(w.Body.String(), "bad_request"))
}

type failingLister struct{}

func (failingLister) List(context.Context, id.PatientID) ([]audit.Event, error) {
	return nil, errors.New("store offline")
}

func (failingLister) ListAll(context.Context) ([]audit.Event, error) {
	return nil, errors.New("store offline")
}

func TestAuditListFailure(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := NewRouter(RouterDeps{
		Audit:    NewAuditHandler(failingLister{}, logger),
		Gatherer: prometheus.NewRegistry(),
		Logger:   logger,
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/audit/events", nil))
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.NotContains(t, w.Body.String(), "store offline")
}
