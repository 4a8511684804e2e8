package palet

import (
	"net/url"
	"sort"
	"strings"
)

// CustomCommand is a user-configured shell command.
type CustomCommand struct {
	Name             string `toml:"name" json:"name"`
	Command          string `toml:"command" json:"command"`
	Description      string `toml:"description" json:"description"`
	AcceptsArguments bool   `toml:"accepts_arguments" json:"accepts_arguments"`
	TTY              bool   `toml:"tty" json:"tty"`
}

// CustomCommands maps a registry key to a command. Names are display-only
// and may repeat across keys.
type CustomCommands map[string]CustomCommand

// Keys returns the registry keys in ascending order.
func (c CustomCommands) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SearchQueryMarker is replaced by the encoded query in a SearchURL.
const SearchQueryMarker = "{q}"

// SearchURL is a web search engine reachable through a URL template.
type SearchURL struct {
	Name string `toml:"name" json:"name"`
	URL  string `toml:"url" json:"url"`
}

// Build returns the search URL for query. The query is percent-encoded,
// with spaces encoded as %20.
func (s SearchURL) Build(query string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(query), "+", "%20")
	return strings.ReplaceAll(s.URL, SearchQueryMarker, encoded)
}

// SearchURLs maps a registry key to a search engine.
type SearchURLs map[string]SearchURL

// Keys returns the registry keys in ascending order.
func (s SearchURLs) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
