package main

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	patientmetrics "patientdesk/internal/patient/metrics"
	"patientdesk/internal/patient/service"
	"patientdesk/internal/patient/store"
	"patientdesk/internal/platform/config"
	"patientdesk/internal/platform/health"
	"patientdesk/internal/platform/httpserver"
	"patientdesk/internal/platform/logger"
	"patientdesk/internal/platform/tracer"
	"patientdesk/internal/transport/cli"
	httptransport "patientdesk/internal/transport/http"
	auditmetrics "patientdesk/pkg/platform/audit/metrics"
	"patientdesk/pkg/platform/audit/publisher"
	auditmemory "patientdesk/pkg/platform/audit/store/memory"
	request "patientdesk/pkg/platform/middleware/request"
	"patientdesk/pkg/requestcontext"
)

const (
	auditBufferSize       = 256
	tracingShutdownWindow = 5 * time.Second
)

// run serves one menu session on stdin/stdout and, when configured, the ops
// server alongside it. It returns when the menu exits or ctx is cancelled.
func run(ctx context.Context, cfg config.Config, stdin io.Reader, stdout, stderr io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	log := logger.New(stderr, level, cfg.LogFormat)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	auditPublisher := publisher.NewPublisher(auditmemory.NewInMemoryStore(),
		publisher.WithAsyncBuffer(auditBufferSize),
		publisher.WithPublisherLogger(log),
		publisher.WithPublisherMetrics(auditmetrics.New(reg)),
	)
	defer auditPublisher.Close()

	spanTracer, shutdownTracing, err := newTracer(cfg.TraceFile)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), tracingShutdownWindow)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			log.WarnContext(ctx, "trace export shutdown failed", "error", err)
		}
	}()

	patientService := service.New(store.New(),
		service.WithLogger(log),
		service.WithMetrics(patientmetrics.New(reg)),
		service.WithTracer(spanTracer),
		service.WithAuditPublisher(auditPublisher),
	)

	sessionID := requestcontext.NewSessionID()
	ctx = requestcontext.WithSessionID(ctx, sessionID)
	log.InfoContext(ctx, "starting patientdesk",
		"session_id", sessionID,
		"environment", cfg.Environment,
		"ops_server", cfg.OpsServerEnabled(),
		"tracing", cfg.TracingEnabled(),
	)

	g, gctx := errgroup.WithContext(ctx)
	opsCtx, stopOps := context.WithCancel(gctx)
	defer stopOps()

	menu := cli.New(patientService, stdin, stdout, cli.WithLogger(log))
	g.Go(func() error {
		defer stopOps()
		return menu.Run(gctx)
	})

	if cfg.OpsServerEnabled() {
		healthHandler := health.New(cfg.Environment)
		healthHandler.RegisterCheck("patient_store", func(ctx context.Context) error {
			_, err := patientService.CountPatients(ctx)
			return err
		})
		router := httptransport.NewRouter(httptransport.RouterDeps{
			Health:         healthHandler,
			Audit:          httptransport.NewAuditHandler(auditPublisher, log),
			Gatherer:       reg,
			RequestMetrics: request.NewMetrics(reg),
			Logger:         log,
		})
		srv := httpserver.New(cfg.MetricsAddr, router)
		g.Go(func() error {
			return httpserver.Run(opsCtx, srv, log)
		})
	}

	err = g.Wait()
	if errors.Is(err, context.Canceled) && ctx.Err() != nil {
		log.InfoContext(ctx, "session interrupted")
		return nil
	}
	if err != nil {
		log.ErrorContext(ctx, "patientdesk stopped with error", "error", err)
		return err
	}
	log.InfoContext(ctx, "session ended")
	return nil
}

// newTracer returns the global OpenTelemetry tracer when path is empty, and
// otherwise an SDK-backed tracer exporting spans to the file at path.
func newTracer(path string) (tracer.Tracer, func(context.Context) error, error) {
	if path == "" {
		return tracer.NewOTel(), func(context.Context) error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	provider, err := tracer.NewWriterProvider(f)
	if err != nil {
		return nil, nil, errors.Join(err, f.Close())
	}
	shutdown := func(ctx context.Context) error {
		return errors.Join(provider.Shutdown(ctx), f.Close())
	}
	return tracer.NewOTel(tracer.WithOTelTracer(provider.Tracer(tracer.InstrumentationName))), shutdown, nil
}
