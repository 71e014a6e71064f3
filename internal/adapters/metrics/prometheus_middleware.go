package metrics

import (
	"context"
	"time"

	"github.com/andrescamacho/spaceminer-go/internal/application/mediator"
)

// PrometheusMiddleware records duration and outcome of every command and query
// sent through the mediator. A nil collector disables it.
func PrometheusMiddleware(collector *CommandMetricsCollector) mediator.Middleware {
	return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		if collector == nil {
			return next(ctx, request)
		}

		collector.inFlight.Inc()
		defer collector.inFlight.Dec()

		start := time.Now()
		response, err := next(ctx, request)
		collector.RecordRequest(
			mediator.RequestName(request),
			mediator.RequestKind(request),
			time.Since(start).Seconds(),
			err == nil,
		)
		return response, err
	}
}
