package expr_test

import (
	"math"
	"testing"

	"github.com/fwojciec/palet/expr"
	"github.com/stretchr/testify/assert"
)

func TestEvaluator_Evaluate(t *testing.T) {
	t.Parallel()

	valid := []struct {
		expression string
		want       string
	}{
		{"3 + 4", "7"},
		{"10 / 4", "2.5"},
		{"8 / 4", "2"},
		{"2 ^ 10", "1024"},
		{"7 % 3", "1"},
		{"5.5 % 2", "1.5"},
		{"-5.5 % 2", "-1.5"},
		{"7 % 2.5", "2"},
		{"7.5 % 2.5", "0"},
		{"(1 + 2) * 3", "9"},
		{"1 / 3", "0.3333333333"},
		{"2.5 * 2", "5"},
		{"0.1 + 0.2", "0.3"},
		{"-5", "-5"},
		{"100 - 250", "-150"},
	}

	for _, tc := range valid {
		t.Run(tc.expression, func(t *testing.T) {
			t.Parallel()

			got, ok := expr.NewEvaluator().Evaluate(tc.expression)

			assert.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}

	invalid := []string{
		"5.5 % 0",
		"firefox",
		"firefox-esr",
		"code (insiders)",
		"1 / 0",
		"3 +",
		`"a" + "b"`,
		"",
	}

	for _, expression := range invalid {
		t.Run("rejects "+expression, func(t *testing.T) {
			t.Parallel()

			got, ok := expr.NewEvaluator().Evaluate(expression)

			assert.False(t, ok)
			assert.Empty(t, got)
		})
	}
}

func TestIsCandidate(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"1+1", "a-b", "2*3", "6/2", "(x)", "2^2", "5%2"} {
		assert.True(t, expr.IsCandidate(s), s)
	}
	assert.False(t, expr.IsCandidate("firefox"))
	assert.False(t, expr.IsCandidate("12 34"))
}

func TestFormatResult(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		want string
		ok   bool
	}{
		{"int", 42, "42", true},
		{"int64", int64(-7), "-7", true},
		{"uint8", uint8(255), "255", true},
		{"integral float", 12.0, "12", true},
		{"negative zero", math.Copysign(0, -1), "0", true},
		{"fraction", 2.5, "2.5", true},
		{"rounded to ten decimals", 2.0 / 3.0, "0.6666666667", true},
		{"float32", float32(0.5), "0.5", true},
		{"huge integral float", 1e20, "100000000000000000000", true},
		{"nan", math.NaN(), "", false},
		{"infinity", math.Inf(1), "", false},
		{"string", "7", "", false},
		{"bool", true, "", false},
		{"nil", nil, "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, ok := expr.FormatResult(tc.in)

			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}
