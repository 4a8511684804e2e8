// Package slog provides logging decorators for palet services using log/slog.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/palet"
)

// Ensure LoggingScanner implements palet.Scanner.
var _ palet.Scanner = (*LoggingScanner)(nil)

// LoggingScanner wraps a Scanner with logging.
type LoggingScanner struct {
	next   palet.Scanner
	logger *slog.Logger
}

// NewLoggingScanner creates a new LoggingScanner.
func NewLoggingScanner(next palet.Scanner, logger *slog.Logger) *LoggingScanner {
	return &LoggingScanner{next: next, logger: logger}
}

// Scan delegates to the wrapped scanner and logs the operation.
func (s *LoggingScanner) Scan(ctx context.Context, dirs []string) (apps []*palet.Application, err error) {
	defer func(begin time.Time) {
		s.logger.Info("catalog scan",
			"dirs", len(dirs),
			"count", len(apps),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Scan(ctx, dirs)
}

// DirectoryReporter returns a callback logging one line per scanned
// directory. Unreadable directories are logged as warnings.
func DirectoryReporter(logger *slog.Logger) func(palet.DirectoryReport) {
	return func(r palet.DirectoryReport) {
		if r.Err != nil {
			logger.Warn("directory skipped", "dir", r.Dir, "err", r.Err)
			return
		}
		logger.Debug("directory scanned",
			"dir", r.Dir,
			"accepted", r.Accepted,
			"total", r.Total,
		)
	}
}

// RejectionReporter returns a callback logging each rejected descriptor.
func RejectionReporter(logger *slog.Logger) func(path string, err error) {
	return func(path string, err error) {
		logger.Debug("descriptor rejected", "path", path, "reason", palet.ErrorMessage(err))
	}
}
