package mediator

import (
	"context"
	"time"

	"github.com/andrescamacho/spaceminer-go/internal/application/common"
)

// LoggingMiddleware logs every request to the context's logger: debug when
// handled, warn when the handler failed. Without a context logger it is silent.
func LoggingMiddleware() Middleware {
	return func(ctx context.Context, request Request, next HandlerFunc) (Response, error) {
		start := time.Now()
		response, err := next(ctx, request)

		logger := common.LoggerFromContext(ctx)
		attrs := []any{
			"request", RequestName(request),
			"kind", RequestKind(request),
			"duration", time.Since(start),
		}
		if err != nil {
			logger.WarnContext(ctx, "request failed", append(attrs, "error", err)...)
		} else {
			logger.DebugContext(ctx, "request handled", attrs...)
		}
		return response, err
	}
}
