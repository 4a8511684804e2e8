// Package sh turns palet actions into process argument vectors using
// mvdan.cc/sh for parsing and quoting.
package sh

import (
	"fmt"
	"strings"

	"github.com/fwojciec/palet"
	"mvdan.cc/sh/v3/shell"
	"mvdan.cc/sh/v3/syntax"
)

// Default helper programs.
const (
	DefaultShell     = "sh"
	DefaultClipboard = "xclip -selection clipboard"
	DefaultOpener    = "xdg-open"
)

// Builder converts actions into argv slices ready for exec.
type Builder struct {
	// Terminal prefixes commands whose action requires a terminal,
	// e.g. "alacritty -e".
	Terminal string

	// Shell runs spawn commands with "-c".
	Shell string

	// Clipboard receives text on stdin.
	Clipboard string

	// Opener is invoked with the URL as its only argument.
	Opener string
}

// NewBuilder returns a Builder using terminal and the default helpers.
func NewBuilder(terminal string) *Builder {
	return &Builder{
		Terminal:  terminal,
		Shell:     DefaultShell,
		Clipboard: DefaultClipboard,
		Opener:    DefaultOpener,
	}
}

// Argv returns the argument vector that executes a.
func (b *Builder) Argv(a palet.Action) ([]string, error) {
	switch a.Type {
	case palet.ActionSpawn:
		return b.spawn(a.Command, a.Terminal)
	case palet.ActionClipboard:
		quoted, err := syntax.Quote(a.Text, syntax.LangPOSIX)
		if err != nil {
			return nil, palet.Errorf(palet.EINVALID, "cannot quote clipboard text: %v", err)
		}
		return []string{b.Shell, "-c", "printf %s " + quoted + " | " + b.Clipboard}, nil
	case palet.ActionOpenURL:
		if a.URL == "" {
			return nil, palet.Errorf(palet.EINVALID, "open action has no url")
		}
		return []string{b.Opener, a.URL}, nil
	default:
		return nil, palet.Errorf(palet.EINVALID, "unknown action type %q", a.Type)
	}
}

func (b *Builder) spawn(command string, terminal bool) ([]string, error) {
	if strings.TrimSpace(command) == "" {
		return nil, palet.Errorf(palet.EINVALID, "spawn action has no command")
	}
	if _, err := syntax.NewParser().Parse(strings.NewReader(command), ""); err != nil {
		return nil, palet.Errorf(palet.EINVALID, "command syntax error: %v", err)
	}

	argv := []string{b.Shell, "-c", command}
	if !terminal {
		return argv, nil
	}

	prefix, err := shell.Fields(b.Terminal, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to parse terminal %q: %w", b.Terminal, err)
	}
	return append(prefix, argv...), nil
}

// Join renders argv as a single shell-quoted line for display.
func Join(argv []string) string {
	parts := make([]string, len(argv))
	for i, arg := range argv {
		quoted, err := syntax.Quote(arg, syntax.LangPOSIX)
		if err != nil {
			quoted = fmt.Sprintf("%q", arg)
		}
		parts[i] = quoted
	}
	return strings.Join(parts, " ")
}
