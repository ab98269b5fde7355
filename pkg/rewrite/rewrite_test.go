// Copyright The go-algebra Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kettleby/go-algebra/pkg/expr"
)

func parse(t *testing.T, text string) expr.Expr {
	t.Helper()
	//
	e, err := expr.Parse(text)
	require.NoError(t, err)
	//
	return e
}

func TestEvaluateConstants(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// all-constant applications reduce outright
		{"(+ 1 2)", "3"},
		{"(- 5 2)", "3"},
		{"(** 2 10)", "1024"},
		// the constant portion of a sum/product folds into one constant
		{"(* a 3 4)", "(* a 12)"},
		{"(+ 1 x 2)", "(+ 3 x)"},
		// identity operands are dropped
		{"(+ x 0 y)", "(+ x y)"},
		{"(* x 1)", "x"},
		// annihilators propagate
		{"(* x 0)", "0"},
		{"(* x 0 y)", "0"},
		// nested chains flatten before folding
		{"(+ 1 (+ 2 x))", "(+ 3 x)"},
		{"(* 2 (* 3 x))", "(* 6 x)"},
		// non-constant structure is untouched
		{"(+ x y)", "(+ x y)"},
		{"(/ 1 0)", "(/ 1 0)"},
	}
	//
	for _, test := range tests {
		actual := EvaluateConstants(parse(t, test.input))
		assert.True(t, parse(t, test.expected).Equal(actual),
			"%s ==> %s", test.input, expr.String(actual))
	}
}

func TestEvaluateConstants_LeavesNonIncreasing(t *testing.T) {
	// Folding may merge or drop constant leaves but never mint new distinct
	// ones.
	tests := []string{
		"(+ 1 2)",
		"(* a 3 4)",
		"(+ x 0 y)",
		"(* x 0 y)",
		"(+ 1 (+ 2 x))",
		"(/ 1 0)",
		"(- (** 2 10) (* 3 y))",
		"(+ [1 2] [3 4])",
	}
	//
	for _, test := range tests {
		var (
			input  = parse(t, test)
			output = EvaluateConstants(input)
		)
		//
		assert.LessOrEqual(t,
			len(distinctConstants(output, nil)), len(distinctConstants(input, nil)), test)
	}
}

func TestEvaluateConstants_Vectors(t *testing.T) {
	actual := EvaluateConstants(parse(t, "(+ [1 2] [3 4])"))
	assert.True(t, parse(t, "[4 6]").Equal(actual))
}

// Expansion is checked semantically (the expansion evaluates identically at
// sample points) and structurally (no product of sums remains).
func TestMultiplyOut(t *testing.T) {
	tests := []string{
		"(* (+ x 2) (+ x 3))",
		"(* (+ x y) (- x y))",
		"(** (+ x 1) 2)",
		"(** (+ x y) 3)",
		"(** (* x (+ y 1)) 2)",
		"(/ (+ x y) 2)",
		"(- (** (+ x 1) 2) (* x x))",
	}
	//
	for _, test := range tests {
		var (
			input    = parse(t, test)
			expanded = MultiplyOut(input)
		)
		//
		assertNoProductOfSums(t, test, expanded)
		// Compare at a couple of sample points.
		for _, x := range []int64{-1, 2, 5} {
			bindings := map[string]expr.Expr{
				"x": expr.NewInt64(x), "y": expr.NewInt64(x + 3),
			}
			//
			var (
				lhs = expr.Evaluate(input, bindings)
				rhs = expr.Evaluate(expanded, bindings)
			)
			//
			assert.True(t, lhs.Equal(rhs), "%s ==> %s at x=%d", test, expr.String(expanded), x)
		}
	}
}

func TestMultiplyOut_Binomial(t *testing.T) {
	var (
		expanded   = MultiplyOut(parse(t, "(** (+ x 1) 2)"))
		simplified = simplify(t, expanded)
		expected   = simplify(t, parse(t, "(+ (** x 2) (* 2 x) 1)"))
	)
	//
	assert.True(t, expected.Equal(simplified), expr.String(simplified))
}

func TestMultiplyOut_Irreducible(t *testing.T) {
	// Nothing to distribute.
	e := parse(t, "(+ (* x y) 1)")
	assert.True(t, e.Equal(MultiplyOut(e)))
}

func TestSimplify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// identities and annihilators
		{"(+ x 0)", "x"},
		{"(* x 1)", "x"},
		{"(* x 0)", "0"},
		// inverse cancellation
		{"(- x x)", "0"},
		{"(/ x x)", "1"},
		{"(** x 0)", "1"},
		{"(** x 1)", "x"},
		// collection of like terms
		{"(+ x x)", "(* 2 x)"},
		{"(+ x (* 2 x) (* -2 x))", "x"},
		{"(* x x)", "(** x 2)"},
		{"(* (** x 2) (** x 3))", "(** x 5)"},
		// nested powers
		{"(** (** x 2) 3)", "(** x 6)"},
		// log/exp inverses
		{"(log (exp x))", "x"},
		{"(exp (log x))", "x"},
		// resugaring
		{"(- x y)", "(- x y)"},
		{"(+ x (* -1 y))", "(- x y)"},
		// constant arithmetic
		{"(+ 1 2 x)", "(+ 3 x)"},
		{"(* a 3 4)", "(* 12 a)"},
	}
	//
	for _, test := range tests {
		actual := simplify(t, parse(t, test.input))
		assert.True(t, parse(t, test.expected).Equal(actual),
			"%s ==> %s", test.input, expr.String(actual))
	}
}

func TestSimplify_Idempotent(t *testing.T) {
	tests := []string{
		"(+ x (* 2 x) y)",
		"(- (* (+ x 1) (+ x -1)) (** x 2))",
		"(/ (* 2 x) (* 4 y))",
		"(+ (log (exp x)) (** y 0))",
	}
	//
	for _, test := range tests {
		once := simplify(t, parse(t, test))
		twice := simplify(t, once)
		//
		assert.True(t, once.Equal(twice), "%s ==> %s", test, expr.String(once))
	}
}

func TestSimplify_RatioNotMet(t *testing.T) {
	// An irreducible term cannot be compressed below its own size.
	_, err := Simplify(parse(t, "(+ x y)"), WithRatio(0.4))
	require.ErrorIs(t, err, ErrRatioNotMet)
}

func TestSimplify_PowZeroGuard(t *testing.T) {
	// 0**0 must not rewrite via the x**0 rule; it folds numerically instead.
	actual := simplify(t, parse(t, "(** 0 0)"))
	assert.True(t, expr.One.Equal(actual))
}

func TestEngine_PassBudget(t *testing.T) {
	// A rule that never settles must hit the pass budget rather than loop.
	grow := NewFuncRule("grow", func(e expr.Expr) (expr.Expr, bool) {
		if expr.IsSymbol(e) != nil {
			return expr.Exp(e), true
		}
		//
		return e, false
	})
	//
	engine := NewEngine("grow", 4, grow)
	_, settled := engine.Rewrite(parse(t, "x"))
	assert.False(t, settled)
}

func TestRule_PatternBindings(t *testing.T) {
	// x + x matches a repeated-variable pattern; x + y must not.
	double := NewRule("double",
		Apply(expr.ADD, Any("a"), Any("a")), nil,
		func(binds Bindings) expr.Expr {
			return expr.Product(expr.NewInt64(2), binds["a"])
		})
	//
	matched, ok := double.Apply(parse(t, "(+ x x)"))
	require.True(t, ok)
	assert.True(t, parse(t, "(* 2 x)").Equal(matched))
	//
	_, ok = double.Apply(parse(t, "(+ x y)"))
	assert.False(t, ok)
}

// Simplify with defaults, failing the test on error.
func simplify(t *testing.T, e expr.Expr) expr.Expr {
	t.Helper()
	//
	s, err := Simplify(e)
	require.NoError(t, err)
	//
	return s
}

// Collect the distinct constant leaves of a term.
func distinctConstants(e expr.Expr, acc []*expr.Constant) []*expr.Constant {
	switch t := e.(type) {
	case *expr.Constant:
		for _, c := range acc {
			if c.Equal(t) {
				return acc
			}
		}
		//
		return append(acc, t)
	case *expr.Compound:
		for _, arg := range t.Args {
			acc = distinctConstants(arg, acc)
		}
	case *expr.Vector:
		for _, el := range t.Elements {
			acc = distinctConstants(el, acc)
		}
	}
	//
	return acc
}

// Check no product (or integer power) of sums remains after expansion.
func assertNoProductOfSums(t *testing.T, test string, e expr.Expr) {
	t.Helper()
	//
	if c, ok := e.(*expr.Compound); ok {
		if c.Op == expr.MUL {
			for _, arg := range c.Args {
				assert.Nil(t, expr.IsCompound(arg, expr.ADD), "unexpanded product in %s", test)
			}
		}
		//
		for _, arg := range c.Args {
			assertNoProductOfSums(t, test, arg)
		}
	}
}
