// Package expr evaluates calculator queries with expr-lang.
package expr

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/fwojciec/palet"
)

// Ensure Evaluator implements palet.Evaluator at compile time.
var _ palet.Evaluator = (*Evaluator)(nil)

// floatPrecision is the number of decimals kept before trailing zeros are
// stripped.
const floatPrecision = 10

// Evaluator evaluates arithmetic expressions. Only numeric results count.
type Evaluator struct {
	options []expr.Option
}

// NewEvaluator creates a new Evaluator. The % operator also accepts
// floats, computing the remainder with the sign of the dividend.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		options: []expr.Option{
			expr.Function("fmod", fmod,
				new(func(float64, float64) float64),
				new(func(int, float64) float64),
				new(func(float64, int) float64),
			),
			expr.Operator("%", "fmod"),
		},
	}
}

// fmod backs float operands of %. Integer pairs keep the built-in operator.
func fmod(params ...any) (any, error) {
	x, ok := toFloat(params[0])
	if !ok {
		return nil, fmt.Errorf("fmod: unsupported operand %T", params[0])
	}
	y, ok := toFloat(params[1])
	if !ok {
		return nil, fmt.Errorf("fmod: unsupported operand %T", params[1])
	}
	return math.Mod(x, y), nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// IsCandidate reports whether s contains an operator character.
func IsCandidate(s string) bool {
	return strings.ContainsAny(s, palet.ExpressionOperators)
}

// Evaluate evaluates expression and returns the formatted result.
// Returns false if expression has no operator, fails to compile or run,
// or does not produce a finite number.
func (e *Evaluator) Evaluate(expression string) (string, bool) {
	if !IsCandidate(expression) {
		return "", false
	}

	program, err := expr.Compile(expression, e.options...)
	if err != nil {
		return "", false
	}

	out, err := expr.Run(program, nil)
	if err != nil {
		return "", false
	}

	return FormatResult(out)
}

// FormatResult renders a numeric result. Integers render verbatim, floats
// with no fractional part render as integers, and other floats render with
// ten decimals minus trailing zeros and a trailing point.
func FormatResult(v any) (string, bool) {
	switch n := v.(type) {
	case int:
		return strconv.Itoa(n), true
	case int8:
		return strconv.FormatInt(int64(n), 10), true
	case int16:
		return strconv.FormatInt(int64(n), 10), true
	case int32:
		return strconv.FormatInt(int64(n), 10), true
	case int64:
		return strconv.FormatInt(n, 10), true
	case uint:
		return strconv.FormatUint(uint64(n), 10), true
	case uint8:
		return strconv.FormatUint(uint64(n), 10), true
	case uint16:
		return strconv.FormatUint(uint64(n), 10), true
	case uint32:
		return strconv.FormatUint(uint64(n), 10), true
	case uint64:
		return strconv.FormatUint(n, 10), true
	case float32:
		return formatFloat(float64(n))
	case float64:
		return formatFloat(n)
	default:
		return "", false
	}
}

func formatFloat(f float64) (string, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", false
	}

	if f == math.Trunc(f) {
		if f >= math.MinInt64 && f < math.MaxInt64 {
			return strconv.FormatInt(int64(f), 10), true
		}
		return strconv.FormatFloat(f, 'f', 0, 64), true
	}

	s := strconv.FormatFloat(f, 'f', floatPrecision, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s, true
}
