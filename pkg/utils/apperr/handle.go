package apperr

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
)

// Handle logs an error that cannot be returned to a caller
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}
	ctxlog.From(ctx).Error("application error", slog.Any("error", err))
}

// Warn logs a recoverable problem, such as data that does not match the
// configuration
func Warn(ctx context.Context, msg string, attrs ...any) {
	ctxlog.From(ctx).Warn(msg, attrs...)
}
