package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/palet"
)

// Ensure LoggingResolver implements palet.Resolver.
var _ palet.Resolver = (*LoggingResolver)(nil)

// LoggingResolver wraps a Resolver with logging.
type LoggingResolver struct {
	next   palet.Resolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next palet.Resolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver and logs the result kinds.
func (r *LoggingResolver) Resolve(query string, catalog []*palet.Application) (results []palet.Queryable) {
	defer func(begin time.Time) {
		kind := "(none)"
		if len(results) > 0 {
			kind = string(results[0].Kind())
		}
		r.logger.Info("resolve",
			"query", query,
			"catalog", len(catalog),
			"count", len(results),
			"kind", kind,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return r.next.Resolve(query, catalog)
}
