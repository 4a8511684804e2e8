package palet_test

import (
	"testing"

	"github.com/fwojciec/palet"
	"github.com/stretchr/testify/assert"
)

func ptr(s string) *string { return &s }

func TestApplicationResult(t *testing.T) {
	t.Parallel()

	t.Run("uses application name and description", func(t *testing.T) {
		t.Parallel()

		r := &palet.ApplicationResult{Application: &palet.Application{
			Name:        "Firefox",
			Exec:        "firefox",
			Description: "Browse the web",
		}}

		assert.Equal(t, palet.KindApplication, r.Kind())
		assert.Equal(t, "Firefox", r.DisplayName())
		assert.Equal(t, "Browse the web", r.Description())
	})

	t.Run("spawns exec honoring terminal flag", func(t *testing.T) {
		t.Parallel()

		r := &palet.ApplicationResult{Application: &palet.Application{
			Name:     "htop",
			Exec:     "htop",
			Terminal: true,
		}}

		assert.Equal(t, palet.Action{Type: palet.ActionSpawn, Command: "htop", Terminal: true}, r.Action())
	})
}

func TestCustomCommandResult(t *testing.T) {
	t.Parallel()

	cmd := palet.CustomCommand{
		Name:        "echo",
		Command:     "echo",
		Description: "Print text",
		TTY:         true,
	}

	t.Run("without arguments", func(t *testing.T) {
		t.Parallel()

		r := &palet.CustomCommandResult{Command: cmd}

		assert.Equal(t, palet.KindCustomCommand, r.Kind())
		assert.Equal(t, "echo", r.DisplayName())
		assert.Equal(t, "Print text", r.Description())
		assert.Equal(t, palet.Action{Type: palet.ActionSpawn, Command: "echo", Terminal: true}, r.Action())
	})

	t.Run("with arguments", func(t *testing.T) {
		t.Parallel()

		r := &palet.CustomCommandResult{Command: cmd, Arguments: ptr("hello world")}

		assert.Equal(t, "echo hello world", r.DisplayName())
		assert.Equal(t, "Print text (with arguments)", r.Description())
		assert.Equal(t, "echo hello world", r.Action().Command)
	})

	t.Run("falls back to generic description with arguments", func(t *testing.T) {
		t.Parallel()

		r := &palet.CustomCommandResult{
			Command:   palet.CustomCommand{Name: "x", Command: "x"},
			Arguments: ptr("y"),
		}

		assert.Equal(t, "Custom command (with arguments)", r.Description())
	})
}

func TestCalculatorResult(t *testing.T) {
	t.Parallel()

	r := &palet.CalculatorResult{Expression: "3 + 4", Result: "7"}

	assert.Equal(t, palet.KindCalculator, r.Kind())
	assert.Equal(t, "3 + 4 = 7", r.DisplayName())
	assert.Equal(t, "Copy result to clipboard", r.Description())
	assert.Equal(t, palet.Action{Type: palet.ActionClipboard, Text: "7"}, r.Action())
}

func TestSearchFallbackResult(t *testing.T) {
	t.Parallel()

	r := &palet.SearchFallbackResult{
		SearchURL: palet.SearchURL{Name: "DuckDuckGo", URL: "https://duckduckgo.com/?q={q}"},
		Query:     "go generics",
	}

	assert.Equal(t, palet.KindSearchFallback, r.Kind())
	assert.Equal(t, "Search DuckDuckGo", r.DisplayName())
	assert.Equal(t, "Search 'go generics' on DuckDuckGo", r.Description())
	assert.Equal(t, palet.Action{
		Type: palet.ActionOpenURL,
		URL:  "https://duckduckgo.com/?q=go%20generics",
	}, r.Action())
}
