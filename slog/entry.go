package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/palet"
)

// Compile-time interface verification.
var (
	_ palet.EntryService = (*LoggingEntryService)(nil)
	_ palet.Indexer      = (*LoggingIndexer)(nil)
)

// LoggingEntryService wraps an EntryService with logging.
type LoggingEntryService struct {
	next   palet.EntryService
	logger *slog.Logger
}

// NewLoggingEntryService creates a new LoggingEntryService.
func NewLoggingEntryService(next palet.EntryService, logger *slog.Logger) *LoggingEntryService {
	return &LoggingEntryService{next: next, logger: logger}
}

// IsUpToDate delegates to the wrapped service.
func (s *LoggingEntryService) IsUpToDate(ctx context.Context) (ok bool) {
	defer func() {
		s.logger.Debug("store version check", "up_to_date", ok)
	}()
	return s.next.IsUpToDate(ctx)
}

// Initialize delegates to the wrapped service and logs the operation.
func (s *LoggingEntryService) Initialize(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("store initialize",
			"version", palet.StoreVersion,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Initialize(ctx)
}

// InsertEntry delegates to the wrapped service and logs the operation.
func (s *LoggingEntryService) InsertEntry(ctx context.Context, entry *palet.Entry) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("entry insert",
			"name", entry.Name,
			"id", entry.ID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.InsertEntry(ctx, entry)
}

// FindEntries delegates to the wrapped service and logs the operation.
func (s *LoggingEntryService) FindEntries(ctx context.Context, substring string) (entries []*palet.Entry, err error) {
	defer func(begin time.Time) {
		s.logger.Info("entry search",
			"substring", substring,
			"count", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindEntries(ctx, substring)
}

// DeleteEntries delegates to the wrapped service and logs the operation.
func (s *LoggingEntryService) DeleteEntries(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("entry delete",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteEntries(ctx)
}

// LoggingIndexer wraps an Indexer with logging.
type LoggingIndexer struct {
	next   palet.Indexer
	logger *slog.Logger
}

// NewLoggingIndexer creates a new LoggingIndexer.
func NewLoggingIndexer(next palet.Indexer, logger *slog.Logger) *LoggingIndexer {
	return &LoggingIndexer{next: next, logger: logger}
}

// Index delegates to the wrapped indexer and logs the operation.
func (ix *LoggingIndexer) Index(ctx context.Context, apps []*palet.Application, commands palet.CustomCommands) (changed bool, err error) {
	defer func(begin time.Time) {
		ix.logger.Info("catalog index",
			"applications", len(apps),
			"commands", len(commands),
			"changed", changed,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return ix.next.Index(ctx, apps, commands)
}
