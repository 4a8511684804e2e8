package palet

import "fmt"

// Kind identifies the provider that produced a Queryable.
type Kind string

// Kind constants.
const (
	KindApplication    Kind = "application"
	KindCustomCommand  Kind = "custom_command"
	KindCalculator     Kind = "calculator"
	KindSearchFallback Kind = "search_fallback"
)

// Queryable is one typed, actionable result of query resolution.
// The set of implementations is closed: ApplicationResult,
// CustomCommandResult, CalculatorResult and SearchFallbackResult.
type Queryable interface {
	Kind() Kind
	DisplayName() string

	// Description returns the secondary line, or "" when there is none.
	Description() string

	Action() Action

	queryable()
}

// Compile-time interface verification.
var (
	_ Queryable = (*ApplicationResult)(nil)
	_ Queryable = (*CustomCommandResult)(nil)
	_ Queryable = (*CalculatorResult)(nil)
	_ Queryable = (*SearchFallbackResult)(nil)
)

// ApplicationResult is a catalog application matching the query.
type ApplicationResult struct {
	Application *Application
}

// Kind returns KindApplication.
func (r *ApplicationResult) Kind() Kind { return KindApplication }

// DisplayName returns the application name.
func (r *ApplicationResult) DisplayName() string { return r.Application.Name }

// Description returns the application comment, or "" if it has none.
func (r *ApplicationResult) Description() string { return r.Application.Description }

func (r *ApplicationResult) queryable() {}

// Action spawns the application's exec line.
func (r *ApplicationResult) Action() Action {
	return Action{
		Type:     ActionSpawn,
		Command:  r.Application.Exec,
		Terminal: r.Application.Terminal,
	}
}

// CustomCommandResult is a custom command matching the query.
// Arguments is nil when the command was matched without arguments.
type CustomCommandResult struct {
	Command   CustomCommand
	Arguments *string
}

// Kind returns KindCustomCommand.
func (r *CustomCommandResult) Kind() Kind { return KindCustomCommand }

func (r *CustomCommandResult) queryable() {}

// DisplayName returns the command name, followed by the arguments when
// present.
func (r *CustomCommandResult) DisplayName() string {
	if r.Arguments != nil {
		return r.Command.Name + " " + *r.Arguments
	}
	return r.Command.Name
}

// Description returns the command description. With arguments it is
// suffixed with " (with arguments)", using "Custom command" when the
// command has no description.
func (r *CustomCommandResult) Description() string {
	if r.Arguments == nil {
		return r.Command.Description
	}
	desc := r.Command.Description
	if desc == "" {
		desc = "Custom command"
	}
	return desc + " (with arguments)"
}

// Action spawns the command with the arguments appended.
func (r *CustomCommandResult) Action() Action {
	command := r.Command.Command
	if r.Arguments != nil {
		command += " " + *r.Arguments
	}
	return Action{
		Type:     ActionSpawn,
		Command:  command,
		Terminal: r.Command.TTY,
	}
}

// CalculatorResult is an evaluated arithmetic expression.
type CalculatorResult struct {
	Expression string
	Result     string
}

// Kind returns KindCalculator.
func (r *CalculatorResult) Kind() Kind { return KindCalculator }

// Description returns "Copy result to clipboard".
func (r *CalculatorResult) Description() string { return "Copy result to clipboard" }

func (r *CalculatorResult) queryable() {}

// DisplayName returns "<expression> = <result>".
func (r *CalculatorResult) DisplayName() string {
	return fmt.Sprintf("%s = %s", r.Expression, r.Result)
}

// Action copies the result to the clipboard.
func (r *CalculatorResult) Action() Action {
	return Action{Type: ActionClipboard, Text: r.Result}
}

// SearchFallbackResult searches the web for a query nothing else matched.
type SearchFallbackResult struct {
	SearchURL SearchURL
	Query     string
}

// Kind returns KindSearchFallback.
func (r *SearchFallbackResult) Kind() Kind { return KindSearchFallback }

func (r *SearchFallbackResult) queryable() {}

// DisplayName returns "Search <engine>".
func (r *SearchFallbackResult) DisplayName() string {
	return "Search " + r.SearchURL.Name
}

// Description returns "Search '<query>' on <engine>".
func (r *SearchFallbackResult) Description() string {
	return fmt.Sprintf("Search '%s' on %s", r.Query, r.SearchURL.Name)
}

// Action opens the engine URL built for the query.
func (r *SearchFallbackResult) Action() Action {
	return Action{Type: ActionOpenURL, URL: r.SearchURL.Build(r.Query)}
}

// ExpressionOperators are the characters that mark a query as a candidate
// arithmetic expression.
const ExpressionOperators = "+-*/()^%"

// Evaluator evaluates arithmetic expressions.
type Evaluator interface {
	// Evaluate returns the formatted result of expression.
	// Returns false if expression is not a valid numeric expression.
	Evaluate(expression string) (string, bool)
}

// Resolver turns a raw query into an ordered list of results.
type Resolver interface {
	// Resolve returns the results for query against catalog.
	// A blank query yields no results.
	Resolve(query string, catalog []*Application) []Queryable
}
