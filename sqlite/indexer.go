package sqlite

import (
	"context"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/palet"
)

// Ensure Indexer implements palet.Indexer at compile time.
var _ palet.Indexer = (*Indexer)(nil)

// Indexer projects the catalog into the entries table. The projection is
// fingerprinted so an unchanged catalog is not rewritten.
type Indexer struct {
	db    *DB
	codec palet.ActionableCodec
}

// NewIndexer creates a new Indexer.
func NewIndexer(db *DB, codec palet.ActionableCodec) *Indexer {
	return &Indexer{db: db, codec: codec}
}

// Index replaces the stored entries with apps and commands. Returns false
// if the stored catalog hash already matched.
func (ix *Indexer) Index(ctx context.Context, apps []*palet.Application, commands palet.CustomCommands) (bool, error) {
	entries := palet.EntriesFromCatalog(apps, commands)

	hash, err := ix.fingerprint(entries)
	if err != nil {
		return false, err
	}

	stored, err := findMetadata(ctx, ix.db, palet.MetadataCatalogHash)
	if err != nil && palet.ErrorCode(err) != palet.ENOTFOUND {
		return false, err
	}
	if err == nil && stored.Value == hash {
		return false, nil
	}

	tx, err := ix.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM entries"); err != nil {
		return false, fmt.Errorf("failed to delete entries: %w", err)
	}
	for _, entry := range entries {
		if err := insertEntry(ctx, tx, ix.codec, entry); err != nil {
			return false, err
		}
	}
	if err := setMetadata(ctx, tx, palet.MetadataCatalogHash, hash); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return true, nil
}

// fingerprint hashes the encoded projection. Fields are NUL-separated so
// adjacent values cannot run together.
func (ix *Indexer) fingerprint(entries []*palet.Entry) (string, error) {
	d := xxhash.New()
	for _, entry := range entries {
		encoded, err := ix.codec.Encode(entry.Actionable)
		if err != nil {
			return "", err
		}
		_, _ = d.WriteString(entry.Name)
		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(entry.Description)
		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(encoded)
		_, _ = d.WriteString("\x00")
	}
	return fmt.Sprintf("%016x", d.Sum64()), nil
}
