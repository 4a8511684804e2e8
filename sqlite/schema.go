package sqlite

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
)

// Execer executes statements that return no rows. It is satisfied by *DB,
// *sql.DB and *sql.Tx.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Field describes one column of a table.
type Field struct {
	Name     string
	Type     string
	Nullable bool
}

// Definition renders the column as "<name> <type>" followed by NOT NULL
// unless the field is nullable.
func (f Field) Definition() string {
	def := f.Name + " " + f.Type
	if !f.Nullable {
		def += " NOT NULL"
	}
	return def
}

// Table describes a persisted record type. It carries no data and is only
// used to generate DDL.
type Table struct {
	Name          string
	PrimaryKey    Field
	AutoIncrement bool
	Fields        []Field
}

// CreateSQL returns the idempotent CREATE TABLE statement for t.
func (t Table) CreateSQL() string {
	pk := t.PrimaryKey.Name + " " + t.PrimaryKey.Type + " PRIMARY KEY"
	if t.AutoIncrement {
		pk += " AUTOINCREMENT"
	}

	defs := make([]string, 0, len(t.Fields)+1)
	defs = append(defs, pk)
	for _, f := range t.Fields {
		defs = append(defs, f.Definition())
	}

	return "CREATE TABLE IF NOT EXISTS " + t.Name + " (" + strings.Join(defs, ", ") + ")"
}

// DropSQL returns the idempotent DROP TABLE statement for t.
func (t Table) DropSQL() string {
	return "DROP TABLE IF EXISTS " + t.Name
}

// CreateTable creates t. Failures are logged and not returned; callers
// verify the resulting state when they depend on it.
func CreateTable(ctx context.Context, db Execer, logger *slog.Logger, t Table) {
	if _, err := db.ExecContext(ctx, t.CreateSQL()); err != nil {
		logger.Error("create table failed", "table", t.Name, "err", err)
		return
	}
	logger.Debug("table created", "table", t.Name)
}

// DropTable drops t. Failures are logged and not returned.
func DropTable(ctx context.Context, db Execer, logger *slog.Logger, t Table) {
	if _, err := db.ExecContext(ctx, t.DropSQL()); err != nil {
		logger.Error("drop table failed", "table", t.Name, "err", err)
		return
	}
	logger.Debug("table dropped", "table", t.Name)
}

// MetadataTable stores named values such as the store version.
var MetadataTable = Table{
	Name:       "metadata",
	PrimaryKey: Field{Name: "name", Type: "TEXT"},
	Fields: []Field{
		{Name: "value", Type: "TEXT"},
	},
}

// EntriesTable stores the searchable entries.
var EntriesTable = Table{
	Name:          "entries",
	PrimaryKey:    Field{Name: "id", Type: "INTEGER"},
	AutoIncrement: true,
	Fields: []Field{
		{Name: "name", Type: "TEXT"},
		{Name: "description", Type: "TEXT", Nullable: true},
		{Name: "actionable", Type: "TEXT", Nullable: true},
	},
}
