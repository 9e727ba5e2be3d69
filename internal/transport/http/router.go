package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"patientdesk/internal/platform/health"
	request "patientdesk/pkg/platform/middleware/request"
)

// RouterDeps collects what the ops router serves.
type RouterDeps struct {
	Health *health.Handler
	Audit  *AuditHandler
	// Gatherer backs /metrics; nil falls back to the default gatherer.
	Gatherer       prometheus.Gatherer
	RequestMetrics *request.Metrics
	Logger         *slog.Logger
}

// NewRouter wires the read-only ops endpoints: health probes, Prometheus
// metrics and the audit trail.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(request.Recovery(deps.Logger))
	r.Use(request.RequestID)
	r.Use(request.Logger(deps.Logger))
	r.Use(request.LatencyMiddleware(deps.RequestMetrics))
	r.Use(request.Timeout(10 * time.Second))

	if deps.Health != nil {
		deps.Health.Register(r)
	}

	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	if deps.Audit != nil {
		deps.Audit.Register(r)
	}

	return r
}
