package resolve_test

import (
	"testing"

	"github.com/fwojciec/palet"
	"github.com/fwojciec/palet/expr"
	"github.com/fwojciec/palet/mock"
	"github.com/fwojciec/palet/resolve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var google = palet.SearchURL{Name: "Google", URL: "https://www.google.com/search?q={q}"}

func catalog() []*palet.Application {
	return []*palet.Application{
		{Name: "Calculator", Exec: "gnome-calculator", Description: "Perform arithmetic"},
		{Name: "Firefox", Exec: "firefox", Description: "Browse the World Wide Web"},
		{Name: "Terminal", Exec: "alacritty"},
	}
}

func newResolver(commands palet.CustomCommands) *resolve.Resolver {
	return resolve.NewResolver(expr.NewEvaluator(), commands, palet.SearchURLs{"google": google})
}

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("returns nothing for blank queries", func(t *testing.T) {
		t.Parallel()

		r := newResolver(nil)

		assert.Empty(t, r.Resolve("", catalog()))
		assert.Empty(t, r.Resolve("   ", catalog()))
	})

	t.Run("returns a single calculator result for expressions", func(t *testing.T) {
		t.Parallel()

		r := newResolver(palet.CustomCommands{"plus": {Name: "3 + 4"}})

		results := r.Resolve("3 + 4", catalog())

		require.Len(t, results, 1)
		calc, ok := results[0].(*palet.CalculatorResult)
		require.True(t, ok)
		assert.Equal(t, "7", calc.Result)
		assert.Equal(t, "3 + 4", calc.Expression)
	})

	t.Run("uses the trimmed query as the calculator expression", func(t *testing.T) {
		t.Parallel()

		r := newResolver(nil)

		results := r.Resolve("  2 * 21 ", catalog())

		require.Len(t, results, 1)
		calc, ok := results[0].(*palet.CalculatorResult)
		require.True(t, ok)
		assert.Equal(t, "2 * 21", calc.Expression)
		assert.Equal(t, "42", calc.Result)
		assert.Equal(t, "2 * 21 = 42", calc.DisplayName())
	})

	t.Run("formats fractional results", func(t *testing.T) {
		t.Parallel()

		results := newResolver(nil).Resolve("10 / 4", catalog())

		require.Len(t, results, 1)
		assert.Equal(t, "2.5", results[0].(*palet.CalculatorResult).Result)
	})

	t.Run("falls through when expression evaluation fails", func(t *testing.T) {
		t.Parallel()

		apps := []*palet.Application{{Name: "Firefox-ESR", Exec: "firefox-esr"}}

		results := newResolver(nil).Resolve("firefox-esr", apps)

		require.Len(t, results, 1)
		assert.Equal(t, palet.KindApplication, results[0].Kind())
	})

	t.Run("matches argument commands by name prefix and space", func(t *testing.T) {
		t.Parallel()

		echo := palet.CustomCommand{Name: "echo", Command: "echo", AcceptsArguments: true}
		r := newResolver(palet.CustomCommands{"echo": echo})

		results := r.Resolve("echo hello", catalog())

		require.Len(t, results, 1)
		cmd, ok := results[0].(*palet.CustomCommandResult)
		require.True(t, ok)
		require.NotNil(t, cmd.Arguments)
		assert.Equal(t, "hello", *cmd.Arguments)
		assert.Equal(t, echo, cmd.Command)
	})

	t.Run("preserves argument case and compares name case-insensitively", func(t *testing.T) {
		t.Parallel()

		r := newResolver(palet.CustomCommands{"echo": {Name: "Echo", Command: "echo", AcceptsArguments: true}})

		results := r.Resolve("ECHO Hello World", catalog())

		require.Len(t, results, 1)
		assert.Equal(t, "Hello World", *results[0].(*palet.CustomCommandResult).Arguments)
	})

	t.Run("argument commands do not match without arguments", func(t *testing.T) {
		t.Parallel()

		r := newResolver(palet.CustomCommands{"echo": {Name: "echo", Command: "echo", AcceptsArguments: true}})

		for _, query := range []string{"echo", "echo ", "echo    ", "ech", "echoes x"} {
			results := r.Resolve(query, nil)

			require.Len(t, results, 1, query)
			assert.Equal(t, palet.KindSearchFallback, results[0].Kind(), query)
		}
	})

	t.Run("matches plain commands by name or description substring", func(t *testing.T) {
		t.Parallel()

		r := newResolver(palet.CustomCommands{
			"lock":     {Name: "Lock screen", Command: "loginctl lock-session"},
			"poweroff": {Name: "Shutdown", Command: "systemctl poweroff", Description: "Power off the machine"},
			"reboot":   {Name: "Reboot", Command: "systemctl reboot"},
		})

		results := r.Resolve("OFF", nil)

		require.Len(t, results, 1)
		assert.Equal(t, "Shutdown", results[0].DisplayName())
		assert.Nil(t, results[0].(*palet.CustomCommandResult).Arguments)
	})

	t.Run("orders commands by registry key before applications", func(t *testing.T) {
		t.Parallel()

		r := newResolver(palet.CustomCommands{
			"b": {Name: "fire drill", Command: "b"},
			"a": {Name: "campfire", Command: "a"},
		})

		results := r.Resolve("fire", catalog())

		require.Len(t, results, 3)
		assert.Equal(t, "campfire", results[0].DisplayName())
		assert.Equal(t, "fire drill", results[1].DisplayName())
		assert.Equal(t, "Firefox", results[2].DisplayName())
	})

	t.Run("matches applications by name or description in catalog order", func(t *testing.T) {
		t.Parallel()

		results := newResolver(nil).Resolve("al", catalog())

		require.Len(t, results, 2)
		assert.Equal(t, "Calculator", results[0].DisplayName())
		assert.Equal(t, "Terminal", results[1].DisplayName())
	})

	t.Run("returns one fallback per search engine with the original query", func(t *testing.T) {
		t.Parallel()

		ddg := palet.SearchURL{Name: "DuckDuckGo", URL: "https://duckduckgo.com/?q={q}"}
		r := resolve.NewResolver(expr.NewEvaluator(), nil, palet.SearchURLs{"google": google, "ddg": ddg})

		results := r.Resolve("Weather Berlin", catalog())

		require.Len(t, results, 2)
		first := results[0].(*palet.SearchFallbackResult)
		second := results[1].(*palet.SearchFallbackResult)
		assert.Equal(t, ddg, first.SearchURL)
		assert.Equal(t, google, second.SearchURL)
		assert.Equal(t, "Weather Berlin", first.Query)
		assert.Equal(t, "Weather Berlin", second.Query)
	})

	t.Run("returns nothing without search engines when nothing matches", func(t *testing.T) {
		t.Parallel()

		r := resolve.NewResolver(expr.NewEvaluator(), nil, nil)

		assert.Empty(t, r.Resolve("zzz", catalog()))
	})

	t.Run("uses injected evaluator", func(t *testing.T) {
		t.Parallel()

		var evaluated string
		evaluator := &mock.Evaluator{
			EvaluateFn: func(expression string) (string, bool) {
				evaluated = expression
				return "", false
			},
		}
		r := resolve.NewResolver(evaluator, nil, palet.SearchURLs{"google": google})

		results := r.Resolve("  fire-fox  ", catalog())

		assert.Equal(t, "fire-fox", evaluated)
		require.Len(t, results, 1)
		assert.Equal(t, palet.KindSearchFallback, results[0].Kind())
		assert.Equal(t, "  fire-fox  ", results[0].(*palet.SearchFallbackResult).Query)
	})

	t.Run("skips evaluation without operator characters", func(t *testing.T) {
		t.Parallel()

		evaluator := &mock.Evaluator{
			EvaluateFn: func(expression string) (string, bool) {
				t.Fatalf("unexpected evaluation of %q", expression)
				return "", false
			},
		}
		r := resolve.NewResolver(evaluator, nil, nil)

		results := r.Resolve("firefox", catalog())

		require.Len(t, results, 1)
		assert.Equal(t, "Firefox", results[0].DisplayName())
	})
}

func TestMatchCommands_DuplicateNames(t *testing.T) {
	t.Parallel()

	commands := palet.CustomCommands{
		"open-1": {Name: "open", Command: "xdg-open", AcceptsArguments: true},
		"open-2": {Name: "open", Command: "gio open", AcceptsArguments: true},
	}

	results := resolve.MatchCommands("open ~/notes.txt", commands)

	require.Len(t, results, 2)
	assert.Equal(t, "xdg-open ~/notes.txt", results[0].Action().Command)
	assert.Equal(t, "gio open ~/notes.txt", results[1].Action().Command)
}

func TestSearchFallbacks(t *testing.T) {
	t.Parallel()

	results := resolve.SearchFallbacks("q", palet.SearchURLs{"google": google})

	require.Len(t, results, 1)
	assert.Equal(t, "https://www.google.com/search?q=q", results[0].Action().URL)
}
