package pg

import "context"

// logger is the subset of slog used for migration logging. Satisfied by
// *slog.Logger and the decorated loggers built by pkg/logger.
type logger interface {
	InfoContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}
