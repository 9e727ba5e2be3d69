package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	h.Register(r)
	return r
}

func get(t *testing.T, handler http.Handler, path string, out any) int {
	t.Helper()
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
	return w.Code
}

func TestLiveness(t *testing.T) {
	var body LivenessResponse
	code := get(t, newRouter(New("test")), "/health/live", &body)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "alive", body.Status)
}

func TestReadiness(t *testing.T) {
	h := New("test")
	h.RegisterCheck("patient_store", func(context.Context) error { return nil })
	router := newRouter(h)

	var ready ReadinessResponse
	assert.Equal(t, http.StatusOK, get(t, router, "/health/ready", &ready))
	assert.Equal(t, "ready", ready.Status)
	assert.Equal(t, map[string]string{"patient_store": "up"}, ready.Checks)

	h.RegisterCheck("audit_store", func(context.Context) error { return errors.New("unreachable") })

	var notReady ReadinessResponse
	assert.Equal(t, http.StatusServiceUnavailable, get(t, router, "/health/ready", &notReady))
	assert.Equal(t, "not_ready", notReady.Status)
	assert.Equal(t, "down: unreachable", notReady.Checks["audit_store"])
	assert.Equal(t, "up", notReady.Checks["patient_store"])
}

func TestStatus(t *testing.T) {
	h := New("staging")
	h.now = func() time.Time { return h.startTime.Add(90 * time.Second) }

	var body StatusResponse
	assert.Equal(t, http.StatusOK, get(t, newRouter(h), "/health", &body))
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "staging", body.Environment)
	assert.Equal(t, Version, body.Version)
	assert.Equal(t, int64(90), body.UptimeSeconds)
}
