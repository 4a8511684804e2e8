package palet

// DefaultTerminal wraps commands that need a terminal.
const DefaultTerminal = "alacritty -e"

// Config holds the user configuration consumed by the engine.
type Config struct {
	SearchURLs     SearchURLs     `toml:"search_urls"`
	CustomCommands CustomCommands `toml:"custom_commands"`

	// ExtraPaths are scanned after the default application directories.
	ExtraPaths []string `toml:"extra_paths"`

	// Terminal is the launcher prefixed to commands that need a terminal.
	Terminal string `toml:"terminal"`

	// DBPath is the entry store location. Empty selects the default.
	DBPath string `toml:"db_path"`

	// Dedupe drops applications sharing name and exec after scanning.
	Dedupe bool `toml:"dedupe"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		SearchURLs: SearchURLs{
			"google": {Name: "Google", URL: "https://www.google.com/search?q={q}"},
		},
		CustomCommands: CustomCommands{},
		Terminal:       DefaultTerminal,
	}
}
