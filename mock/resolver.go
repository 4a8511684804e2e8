package mock

import "github.com/fwojciec/palet"

// Compile-time interface verification.
var (
	_ palet.Evaluator = (*Evaluator)(nil)
	_ palet.Resolver  = (*Resolver)(nil)
)

// Evaluator is a mock implementation of palet.Evaluator.
type Evaluator struct {
	EvaluateFn func(expression string) (string, bool)
}

func (e *Evaluator) Evaluate(expression string) (string, bool) {
	return e.EvaluateFn(expression)
}

// Resolver is a mock implementation of palet.Resolver.
type Resolver struct {
	ResolveFn func(query string, catalog []*palet.Application) []palet.Queryable
}

func (r *Resolver) Resolve(query string, catalog []*palet.Application) []palet.Queryable {
	return r.ResolveFn(query, catalog)
}
