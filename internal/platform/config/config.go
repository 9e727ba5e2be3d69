package config

import (
	"log/slog"
	"os"
	"strings"

	dErrors "patientdesk/pkg/domain-errors"
)

const (
	DefaultLogLevel    = "warn"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "local"
)

// Config captures process level settings. Command-line flags may override the
// values read from the environment before Validate is called.
type Config struct {
	LogLevel  string
	LogFormat string
	// MetricsAddr is the ops server listen address; empty disables the server.
	MetricsAddr string
	Environment string
	// TraceFile receives finished spans as JSON; empty leaves tracing off.
	TraceFile string
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	return Config{
		LogLevel:    envOr("PATIENTDESK_LOG_LEVEL", DefaultLogLevel),
		LogFormat:   envOr("PATIENTDESK_LOG_FORMAT", DefaultLogFormat),
		MetricsAddr: strings.TrimSpace(os.Getenv("PATIENTDESK_METRICS_ADDR")),
		Environment: envOr("PATIENTDESK_ENV", DefaultEnvironment),
		TraceFile:   strings.TrimSpace(os.Getenv("PATIENTDESK_TRACE_FILE")),
	}
}

// Validate rejects unknown log levels and formats.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
		return nil
	default:
		return dErrors.New(dErrors.CodeInvalidInput, "log format must be text or json, got "+c.LogFormat)
	}
}

// Level parses LogLevel (debug, info, warn, error; case-insensitive).
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInvalidInput, "unknown log level "+c.LogLevel)
	}
	return level, nil
}

// OpsServerEnabled reports whether the metrics and health server should run.
func (c Config) OpsServerEnabled() bool {
	return c.MetricsAddr != ""
}

// TracingEnabled reports whether spans should be exported to TraceFile.
func (c Config) TracingEnabled() bool {
	return c.TraceFile != ""
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
