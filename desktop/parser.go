// Package desktop parses freedesktop.org application descriptors.
package desktop

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/palet"
)

// Ensure Parser implements palet.DescriptorParser at compile time.
var _ palet.DescriptorParser = (*Parser)(nil)

// entrySection is the only section whose keys are read.
const entrySection = "[Desktop Entry]"

// Parser reads .desktop files from disk.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses the descriptor at path.
func (p *Parser) Parse(path string) (*palet.Application, error) {
	return Parse(path)
}

// Parse parses the descriptor at path into an application.
// Returns EINVALID naming the file and reason when the descriptor is not a
// visible application with a usable Exec line.
func Parse(path string) (*palet.Application, error) {
	if filepath.Ext(path) != palet.DescriptorExtension {
		return nil, palet.Errorf(palet.EINVALID, "%s: not a %s file", path, palet.DescriptorExtension)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, palet.Errorf(palet.EINTERNAL, "%s: %v", path, err)
	}
	defer f.Close()

	return ParseReader(path, f)
}

// entry holds the raw keys of the [Desktop Entry] section.
type entry struct {
	typ       *string
	name      *string
	exec      *string
	comment   *string
	hidden    bool
	noDisplay bool
	terminal  bool
}

// ParseReader parses descriptor content read from r. The name is used in
// error messages and recorded as the application path.
func ParseReader(name string, r io.Reader) (*palet.Application, error) {
	e, err := readEntry(r)
	if err != nil {
		return nil, palet.Errorf(palet.EINTERNAL, "%s: %v", name, err)
	}

	if e.typ == nil || *e.typ != "Application" {
		typ := "(none)"
		if e.typ != nil {
			typ = *e.typ
		}
		return nil, palet.Errorf(palet.EINVALID, "%s: not an Application type (type: %s)", name, typ)
	}
	if e.hidden || e.noDisplay {
		return nil, palet.Errorf(palet.EINVALID, "%s: hidden or NoDisplay (hidden: %t, no_display: %t)", name, e.hidden, e.noDisplay)
	}
	if e.name == nil {
		return nil, palet.Errorf(palet.EINVALID, "%s: no Name field found", name)
	}
	if e.exec == nil {
		return nil, palet.Errorf(palet.EINVALID, "%s: no Exec field found", name)
	}

	exec := CleanExec(*e.exec)
	if exec == "" {
		return nil, palet.Errorf(palet.EINVALID, "%s: Exec is empty after removing field codes", name)
	}

	app := &palet.Application{
		Name:     *e.name,
		Exec:     exec,
		Terminal: e.terminal,
		Path:     name,
	}
	if e.comment != nil {
		app.Description = *e.comment
	}
	return app, nil
}

func readEntry(r io.Reader) (*entry, error) {
	var e entry
	inEntry := false

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			inEntry = line == entrySection
			continue
		}

		if !inEntry {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		// Locale variants such as Name[de] are ignored.
		if strings.Contains(key, "[") {
			continue
		}

		switch key {
		case "Type":
			e.typ = &value
		case "Name":
			e.name = &value
		case "Exec":
			e.exec = &value
		case "Comment":
			e.comment = &value
		case "Hidden":
			e.hidden = parseBool(value)
		case "NoDisplay":
			e.noDisplay = parseBool(value)
		case "Terminal":
			e.terminal = parseBool(value)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read descriptor: %w", err)
	}
	return &e, nil
}

func parseBool(value string) bool {
	return strings.EqualFold(strings.TrimSpace(value), "true")
}

// CleanExec strips field codes (%f, %U, ...) from an Exec value. Tokens are
// kept up to the first one starting with '%' and joined by single spaces.
func CleanExec(exec string) string {
	var kept []string
	for _, token := range strings.Fields(exec) {
		if strings.HasPrefix(token, "%") {
			break
		}
		kept = append(kept, token)
	}
	return strings.Join(kept, " ")
}
