package palet

import "context"

// StoreVersion is the schema version of the entry store. A store holding
// any other version is dropped and rebuilt.
const StoreVersion = "1"

// Metadata keys.
const (
	MetadataVersion     = "version"
	MetadataCatalogHash = "catalog_hash"
)

// Metadata is a named value stored alongside the entries.
type Metadata struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Entry is a persisted, searchable item.
type Entry struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`

	// Actionable is nil when the entry has no action attached or its
	// stored payload could not be decoded.
	Actionable Actionable `json:"actionable"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *Entry) Validate() error {
	if e.Name == "" {
		return Errorf(EINVALID, "entry name required")
	}
	return nil
}

// ActionableType is the discriminant of an Actionable payload.
type ActionableType string

// ActionableType constants.
const (
	ActionableApplication   ActionableType = "application"
	ActionableCustomCommand ActionableType = "custom_command"
)

// Actionable describes how to execute a persisted entry.
// Implementations are ApplicationConfig and CustomCommandConfig.
type Actionable interface {
	ActionableType() ActionableType
	Action() Action
}

// Compile-time interface verification.
var (
	_ Actionable = (*ApplicationConfig)(nil)
	_ Actionable = (*CustomCommandConfig)(nil)
)

// ApplicationConfig is the persisted action of an application.
type ApplicationConfig struct {
	Exec     string `json:"exec"`
	Terminal bool   `json:"terminal"`
}

// ActionableType returns ActionableApplication.
func (c *ApplicationConfig) ActionableType() ActionableType { return ActionableApplication }

// Action spawns the stored exec line.
func (c *ApplicationConfig) Action() Action {
	return Action{Type: ActionSpawn, Command: c.Exec, Terminal: c.Terminal}
}

// CustomCommandConfig is the persisted action of a custom command.
type CustomCommandConfig struct {
	Name             string `json:"name"`
	Command          string `json:"command"`
	Description      string `json:"description,omitempty"`
	AcceptsArguments bool   `json:"accepts_arguments"`
	TTY              bool   `json:"tty"`
}

// ActionableType returns ActionableCustomCommand.
func (c *CustomCommandConfig) ActionableType() ActionableType { return ActionableCustomCommand }

// Action spawns the stored command without arguments.
func (c *CustomCommandConfig) Action() Action {
	return Action{Type: ActionSpawn, Command: c.Command, Terminal: c.TTY}
}

// ActionableCodec converts Actionable payloads to and from the text stored
// in the entries table.
type ActionableCodec interface {
	// Encode returns the tagged text form of a. A nil a encodes to "".
	Encode(a Actionable) (string, error)

	// Decode parses s. Unknown tags and malformed payloads return an error.
	Decode(s string) (Actionable, error)
}

// EntryService represents the versioned, persisted entry store.
type EntryService interface {
	// IsUpToDate reports whether the stored version equals StoreVersion.
	IsUpToDate(ctx context.Context) bool

	// Initialize drops and recreates the store when it is not up to date.
	// No data is preserved across versions.
	Initialize(ctx context.Context) error

	// InsertEntry stores a new entry and sets its ID.
	InsertEntry(ctx context.Context, entry *Entry) error

	// FindEntries returns entries whose name or description contains
	// substring, case-insensitively.
	FindEntries(ctx context.Context, substring string) ([]*Entry, error)

	// DeleteEntries removes every entry.
	DeleteEntries(ctx context.Context) error
}

// Indexer projects the catalog into the entry store.
type Indexer interface {
	// Index replaces the stored entries with apps and commands.
	// Returns false if the stored projection was already current.
	Index(ctx context.Context, apps []*Application, commands CustomCommands) (bool, error)
}

// EntriesFromCatalog projects applications and custom commands into
// entries. Commands follow applications in ascending registry-key order.
func EntriesFromCatalog(apps []*Application, commands CustomCommands) []*Entry {
	entries := make([]*Entry, 0, len(apps)+len(commands))
	for _, app := range apps {
		entries = append(entries, &Entry{
			Name:        app.Name,
			Description: app.Description,
			Actionable:  &ApplicationConfig{Exec: app.Exec, Terminal: app.Terminal},
		})
	}
	for _, key := range commands.Keys() {
		cmd := commands[key]
		entries = append(entries, &Entry{
			Name:        cmd.Name,
			Description: cmd.Description,
			Actionable: &CustomCommandConfig{
				Name:             cmd.Name,
				Command:          cmd.Command,
				Description:      cmd.Description,
				AcceptsArguments: cmd.AcceptsArguments,
				TTY:              cmd.TTY,
			},
		})
	}
	return entries
}
