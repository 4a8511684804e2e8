package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/fwojciec/palet"
)

// Ensure EntryService implements palet.EntryService at compile time.
var _ palet.EntryService = (*EntryService)(nil)

// querier runs row-returning queries against a DB or a transaction.
type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// EntryService implements palet.EntryService using SQLite.
type EntryService struct {
	db    *DB
	codec palet.ActionableCodec
}

// NewEntryService creates a new EntryService.
func NewEntryService(db *DB, codec palet.ActionableCodec) *EntryService {
	return &EntryService{db: db, codec: codec}
}

// IsUpToDate reports whether the stored version equals palet.StoreVersion.
// A missing metadata table or version row counts as out of date.
func (s *EntryService) IsUpToDate(ctx context.Context) bool {
	md, err := findMetadata(ctx, s.db, palet.MetadataVersion)
	if err != nil {
		return false
	}
	return md.Value == palet.StoreVersion
}

// Initialize drops and recreates both tables when the store is not up to
// date, then records the current version. The rebuild runs in a single
// transaction.
func (s *EntryService) Initialize(ctx context.Context) error {
	if s.IsUpToDate(ctx) {
		return nil
	}

	logger := s.db.logger()
	logger.Info("initializing entry store", "version", palet.StoreVersion, "path", s.db.Path())

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	DropTable(ctx, tx, logger, MetadataTable)
	DropTable(ctx, tx, logger, EntriesTable)
	CreateTable(ctx, tx, logger, MetadataTable)
	CreateTable(ctx, tx, logger, EntriesTable)

	if err := setMetadata(ctx, tx, palet.MetadataVersion, palet.StoreVersion); err != nil {
		return err
	}

	// DDL failures are only logged, so confirm the entries table exists.
	var count int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM entries").Scan(&count); err != nil {
		return fmt.Errorf("failed to verify entries table: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// InsertEntry stores a new entry and sets entry.ID from the inserted row.
func (s *EntryService) InsertEntry(ctx context.Context, entry *palet.Entry) error {
	return insertEntry(ctx, s.db, s.codec, entry)
}

// FindEntries returns entries whose name or description contains substring,
// ignoring case, ordered by ID. Rows whose actionable cannot be decoded are
// returned with a nil Actionable.
//
// SQLite's LOWER only folds ASCII, so matching happens here with Unicode
// case folding.
func (s *EntryService) FindEntries(ctx context.Context, substring string) ([]*palet.Entry, error) {
	needle := strings.ToLower(substring)

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, description, actionable
		FROM entries
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	logger := s.db.logger()
	var entries []*palet.Entry
	for rows.Next() {
		var entry palet.Entry
		var description, actionable sql.NullString
		if err := rows.Scan(&entry.ID, &entry.Name, &description, &actionable); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entry.Description = description.String

		if !containsFold(entry.Name, needle) && !containsFold(entry.Description, needle) {
			continue
		}

		if actionable.Valid && actionable.String != "" {
			a, err := s.codec.Decode(actionable.String)
			if err != nil {
				logger.Warn("undecodable actionable", "id", entry.ID, "name", entry.Name, "err", err)
			} else {
				entry.Actionable = a
			}
		}

		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate entries: %w", err)
	}

	return entries, nil
}

// DeleteEntries removes every entry. The catalog hash is cleared with them
// so the next Index call repopulates the store.
func (s *EntryService) DeleteEntries(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM entries"); err != nil {
		return fmt.Errorf("failed to delete entries: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM metadata WHERE name = ?", palet.MetadataCatalogHash); err != nil {
		return fmt.Errorf("failed to clear catalog hash: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func insertEntry(ctx context.Context, db Execer, codec palet.ActionableCodec, entry *palet.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	encoded, err := codec.Encode(entry.Actionable)
	if err != nil {
		return err
	}

	result, err := db.ExecContext(ctx, `
		INSERT INTO entries (name, description, actionable)
		VALUES (?, ?, ?)
	`, entry.Name, nullString(entry.Description), nullString(encoded))
	if err != nil {
		return fmt.Errorf("failed to insert entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read entry id: %w", err)
	}
	entry.ID = id
	return nil
}

func findMetadata(ctx context.Context, db querier, name string) (*palet.Metadata, error) {
	md := &palet.Metadata{Name: name}
	err := db.QueryRowContext(ctx, "SELECT value FROM metadata WHERE name = ?", name).Scan(&md.Value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, palet.Errorf(palet.ENOTFOUND, "metadata %q not found", name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query metadata: %w", err)
	}
	return md, nil
}

func setMetadata(ctx context.Context, db Execer, name, value string) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO metadata (name, value) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value
	`, name, value)
	if err != nil {
		return fmt.Errorf("failed to set metadata %q: %w", name, err)
	}
	return nil
}
