// Package toml loads palet configuration files using go-toml.
package toml

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/palet"
	"github.com/pelletier/go-toml/v2"
)

// DefaultPath returns ~/.config/palet/config.toml, or "" if the home
// directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "palet", "config.toml")
}

// LoadConfig reads the configuration at path. A missing file yields
// palet.DefaultConfig(). Keys absent from the file keep their defaults.
func LoadConfig(path string) (*palet.Config, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return palet.DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	cfg, err := DecodeConfig(f)
	if err != nil {
		return nil, palet.Errorf(palet.EINVALID, "%s: %s", path, palet.ErrorMessage(err))
	}
	return cfg, nil
}

// DecodeConfig decodes TOML from r over the defaults.
func DecodeConfig(r io.Reader) (*palet.Config, error) {
	var cfg palet.Config
	if err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, palet.Errorf(palet.EINVALID, "line %d, column %d: %s", row, col, derr.Error())
		}
		return nil, palet.Errorf(palet.EINVALID, "%s", err.Error())
	}

	defaults := palet.DefaultConfig()
	if cfg.SearchURLs == nil {
		cfg.SearchURLs = defaults.SearchURLs
	}
	if cfg.CustomCommands == nil {
		cfg.CustomCommands = defaults.CustomCommands
	}
	if cfg.Terminal == "" {
		cfg.Terminal = defaults.Terminal
	}

	home, _ := os.UserHomeDir()
	for i, p := range cfg.ExtraPaths {
		cfg.ExtraPaths[i] = expandHome(p, home)
	}
	cfg.DBPath = expandHome(cfg.DBPath, home)

	return &cfg, nil
}

// expandHome replaces a leading "~/" with home.
func expandHome(path, home string) string {
	if home == "" {
		return path
	}
	if path == "~" {
		return home
	}
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		return filepath.Join(home, rest)
	}
	return path
}
