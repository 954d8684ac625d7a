// Package audit provides a zerolog-backed audit sink for runner type
// registration events.
package audit

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/runnerdeck/runnerdeck/pkg/runnertypes"
)

// Compile-time interface check to ensure proper implementation.
var _ runnertypes.AuditSink = (*Logger)(nil)

// Logger emits one structured log entry per successful create or update.
type Logger struct {
	logger *zerolog.Logger
}

// New creates an audit logger writing to the given zerolog logger.
func New(logger *zerolog.Logger) *Logger {
	return &Logger{logger: logger}
}

// Record emits the audit entry for one registration event.
func (l *Logger) Record(_ context.Context, event runnertypes.AuditEvent) {
	entry := l.logger.Info().
		Str("audit", "runner_type").
		Str("runner_type", event.Name).
		Str("operation", event.Operation).
		Time("timestamp", event.Timestamp)

	if event.Record != nil {
		entry = entry.Str("record_id", event.Record.ID)
	}

	entry.Msg("RunnerType " + event.Operation)
}
