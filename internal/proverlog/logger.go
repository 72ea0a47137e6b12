// Package proverlog provides structured logging shared by the query driver
// and the CLI. The validation core never imports this package and never
// logs.
package proverlog

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type contextKey string

const traceIDKey contextKey = "trace_id"

// Logger wraps logrus.Logger with trace-ID propagation.
type Logger struct {
	*logrus.Logger
	component string
}

// New creates a Logger for component, with the given level ("debug", "info",
// ...) and format ("json" or "text").
func New(component, level, format string) *Logger {
	l := logrus.New()

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	l.SetLevel(logLevel)

	if format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		l.SetFormatter(&logrus.TextFormatter{TimestampFormat: time.RFC3339, FullTimestamp: true})
	}
	l.SetOutput(os.Stdout)

	return &Logger{Logger: l, component: component}
}

// NewFromEnv builds a Logger using PROVER_LOG_LEVEL and PROVER_LOG_FORMAT,
// defaulting to "info" and "text".
func NewFromEnv(component string) *Logger {
	level := strings.TrimSpace(os.Getenv("PROVER_LOG_LEVEL"))
	if level == "" {
		level = "info"
	}
	format := strings.TrimSpace(os.Getenv("PROVER_LOG_FORMAT"))
	if format == "" {
		format = "text"
	}
	return New(component, level, format)
}

// WithTraceID returns a context carrying traceID, and a logger entry
// pre-populated with it plus the component name.
func (l *Logger) WithTraceID(ctx context.Context, traceID string) (context.Context, *logrus.Entry) {
	ctx = context.WithValue(ctx, traceIDKey, traceID)
	return ctx, l.Logger.WithFields(logrus.Fields{"component": l.component, "trace_id": traceID})
}

// WithContext returns a logger entry carrying the component name and, if
// present, the context's trace ID.
func (l *Logger) WithContext(ctx context.Context) *logrus.Entry {
	entry := l.Logger.WithField("component", l.component)
	if id, ok := ctx.Value(traceIDKey).(string); ok {
		entry = entry.WithField("trace_id", id)
	}
	return entry
}

// NewTraceID generates a fresh trace ID for a query-driver proof build.
func NewTraceID() string {
	return uuid.New().String()
}
