// Package resolve implements the multi-provider query resolution pipeline.
package resolve

import (
	"strings"

	"github.com/fwojciec/palet"
)

// Ensure Resolver implements palet.Resolver at compile time.
var _ palet.Resolver = (*Resolver)(nil)

// Resolver resolves queries against the calculator, custom commands,
// the application catalog and the search engine fallback, in that order.
type Resolver struct {
	Evaluator  palet.Evaluator
	Commands   palet.CustomCommands
	SearchURLs palet.SearchURLs
}

// NewResolver creates a new Resolver.
func NewResolver(evaluator palet.Evaluator, commands palet.CustomCommands, searchURLs palet.SearchURLs) *Resolver {
	return &Resolver{
		Evaluator:  evaluator,
		Commands:   commands,
		SearchURLs: searchURLs,
	}
}

// Resolve returns the results for query. A successful calculation is
// returned alone. Otherwise custom command matches precede application
// matches, and a search fallback per engine is returned when neither
// matched.
func (r *Resolver) Resolve(query string, catalog []*palet.Application) []palet.Queryable {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil
	}

	if r.Evaluator != nil && strings.ContainsAny(trimmed, palet.ExpressionOperators) {
		if result, ok := r.Evaluator.Evaluate(trimmed); ok {
			return []palet.Queryable{&palet.CalculatorResult{
				Expression: trimmed,
				Result:     result,
			}}
		}
	}

	lower := strings.ToLower(query)

	results := MatchCommands(query, r.Commands)
	results = append(results, MatchApplications(lower, catalog)...)

	if len(results) == 0 {
		results = SearchFallbacks(query, r.SearchURLs)
	}
	return results
}

// MatchCommands returns the custom commands matching query, in ascending
// registry-key order. Commands accepting arguments match only when query
// is their name followed by a space and non-blank arguments. Other
// commands match when the lowercased query is contained in their name or
// description.
func MatchCommands(query string, commands palet.CustomCommands) []palet.Queryable {
	lower := strings.ToLower(query)

	var results []palet.Queryable
	for _, key := range commands.Keys() {
		cmd := commands[key]

		if cmd.AcceptsArguments {
			if args, ok := commandArguments(query, lower, cmd.Name); ok {
				results = append(results, &palet.CustomCommandResult{
					Command:   cmd,
					Arguments: &args,
				})
			}
			continue
		}

		if strings.Contains(strings.ToLower(cmd.Name), lower) ||
			strings.Contains(strings.ToLower(cmd.Description), lower) {
			results = append(results, &palet.CustomCommandResult{Command: cmd})
		}
	}
	return results
}

// commandArguments extracts the arguments following name in query.
// The prefix comparison is case-insensitive; the separator must be a
// space in the original query and the remainder must not be blank.
func commandArguments(query, lower, name string) (string, bool) {
	nameLower := strings.ToLower(name)
	if !strings.HasPrefix(lower, nameLower) {
		return "", false
	}

	// Lowercasing can change byte lengths, so locate the boundary in the
	// original query by the rune count of the name.
	n := len([]rune(nameLower))
	runes := []rune(query)
	if len(runes) <= n || runes[n] != ' ' {
		return "", false
	}

	args := string(runes[n+1:])
	if strings.TrimSpace(args) == "" {
		return "", false
	}
	return args, true
}

// MatchApplications returns the applications whose lowercased name or
// description contains lower, preserving catalog order.
func MatchApplications(lower string, catalog []*palet.Application) []palet.Queryable {
	var results []palet.Queryable
	for _, app := range catalog {
		if strings.Contains(strings.ToLower(app.Name), lower) ||
			strings.Contains(strings.ToLower(app.Description), lower) {
			results = append(results, &palet.ApplicationResult{Application: app})
		}
	}
	return results
}

// SearchFallbacks returns one search result per engine, in ascending
// registry-key order, each carrying the unmodified query.
func SearchFallbacks(query string, searchURLs palet.SearchURLs) []palet.Queryable {
	results := make([]palet.Queryable, 0, len(searchURLs))
	for _, key := range searchURLs.Keys() {
		results = append(results, &palet.SearchFallbackResult{
			SearchURL: searchURLs[key],
			Query:     query,
		})
	}
	return results
}
