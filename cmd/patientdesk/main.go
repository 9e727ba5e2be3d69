package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"patientdesk/internal/platform/config"
	"patientdesk/internal/platform/health"
)

// main wires signal handling and the root command. Everything else lives in
// run so tests can drive a full session.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.FromEnv()

	cmd := &cobra.Command{
		Use:   "patientdesk",
		Short: "Manage patient records from an interactive menu",
		Long: `patientdesk keeps patient records in memory for the lifetime of the process
and exposes add, list, search, update and delete through a numbered menu.

Records are lost when the program exits. Set --metrics-addr to serve
Prometheus metrics, health probes and the audit trail while the menu runs.`,
		Version:      health.Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error (env PATIENTDESK_LOG_LEVEL)")
	flags.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text or json (env PATIENTDESK_LOG_FORMAT)")
	flags.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "ops server address, e.g. :9090; empty disables it (env PATIENTDESK_METRICS_ADDR)")
	flags.StringVar(&cfg.TraceFile, "trace-file", cfg.TraceFile, "write finished trace spans as JSON to this file; empty disables tracing (env PATIENTDESK_TRACE_FILE)")

	return cmd
}
