package logging

import (
	"context"
	"log/slog"

	"karamove/internal/services"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID is the standardized structured logging key for the invocation identifier.
	FieldRunID = "run_id"
	// FieldCommand is the standardized structured logging key for the CLI subcommand.
	FieldCommand = "command"
	// FieldEventType classifies a log line for filtering.
	FieldEventType = "event_type"
	// FieldErrorKind carries services.Kind for failed operations.
	FieldErrorKind = "error_kind"
)

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 2)
	if id, ok := services.RunIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldRunID, id))
	}
	if name, ok := services.CommandFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldCommand, name))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(Args(fields...)...)
}
