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
package calculus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kettleby/go-algebra/pkg/expr"
	"github.com/kettleby/go-algebra/pkg/rewrite"
)

func parse(t *testing.T, text string) expr.Expr {
	t.Helper()
	//
	e, err := expr.Parse(text)
	require.NoError(t, err)
	//
	return e
}

func TestDifferentiate(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// base cases
		{"5", "0"},
		{"c", "0"},
		{"x", "1"},
		// power rule with constant folding
		{"(** x 2)", "(* 2 x)"},
		{"(* 4 (** x 5))", "(* 20 (** x 4))"},
		// sums differentiate termwise
		{"(+ (** x 2) x 1)", "(+ (* 2 x) 1)"},
		{"(- (** x 2) x)", "(- (* 2 x) 1)"},
		{"(- (** x 2))", "(- (* 2 x))"},
		// log and exp chains
		{"(log x)", "(/ 1 x)"},
		{"(log (** x 2))", "(/ (* 2 x) (** x 2))"},
		// abs
		{"(abs x)", "(/ x (abs x))"},
		// exponential with constant base
		{"(** c x)", "(* (** c x) (log c))"},
		// quotient with a variable-free denominator
		{"(/ x y)", "(/ 1 y)"},
	}
	//
	for _, test := range tests {
		actual, err := Differentiate(parse(t, test.input), "x")
		require.NoError(t, err, test.input)
		assert.True(t, parse(t, test.expected).Equal(actual),
			"d/dx %s ==> %s", test.input, expr.String(actual))
	}
}

func TestDifferentiate_Repeated(t *testing.T) {
	// The fifth derivative of 2x^3 + 4x^5 is 4 * 5! = 480.
	actual, err := Differentiate(parse(t, "(+ (* 2 (** x 3)) (* 4 (** x 5)))"), "x", "x", "x", "x", "x")
	require.NoError(t, err)
	assert.True(t, expr.NewInt64(480).Equal(actual))
}

func TestDifferentiate_VanishesPastDegree(t *testing.T) {
	actual, err := Differentiate(parse(t, "(** x 3)"), "x", "x", "x", "x")
	require.NoError(t, err)
	assert.True(t, expr.Zero.Equal(actual))
}

func TestDifferentiate_NoVariables(t *testing.T) {
	e := parse(t, "(+ x 1)")
	actual, err := Differentiate(e)
	require.NoError(t, err)
	assert.True(t, e.Equal(actual))
}

func TestDifferentiate_Mixed(t *testing.T) {
	// d/dx d/dy of x*y is 1.
	actual, err := Differentiate(parse(t, "(* x y)"), "x", "y")
	require.NoError(t, err)
	assert.True(t, expr.One.Equal(actual))
}

func TestDifferentiate_Quotient(t *testing.T) {
	// d/dx (x / (x+1)) = ((x+1) - x) / (x+1)^2, which simplifies to 1/(x+1)^2.
	d, err := Differentiate(parse(t, "(/ x (+ x 1))"), "x")
	require.NoError(t, err)
	//
	assertEquivalent(t, d, parse(t, "(/ 1 (** (+ x 1) 2))"))
}

func TestDifferentiate_GeneralPower(t *testing.T) {
	// d/dx x^x = x^x * (log(x) + 1)
	d, err := Differentiate(parse(t, "(** x x)"), "x")
	require.NoError(t, err)
	//
	assertEquivalent(t, d, parse(t, "(* (** x x) (+ 1 (log x)))"))
}

func TestDifferentiate_ChainedExp(t *testing.T) {
	d, err := Differentiate(parse(t, "(exp (* 2 x))"), "x")
	require.NoError(t, err)
	//
	assertEquivalent(t, d, parse(t, "(* 2 (exp (* 2 x)))"))
}

func TestDifferentiate_Vector(t *testing.T) {
	actual, err := Differentiate(parse(t, "[x (** x 2)]"), "x")
	require.NoError(t, err)
	assert.True(t, parse(t, "[1 (* 2 x)]").Equal(actual))
}

func TestDifferentiate_Equation(t *testing.T) {
	_, err := Differentiate(parse(t, "(= x 1)"), "x")
	assert.ErrorIs(t, err, ErrNotDifferentiable)
}

// Check two terms simplify to the same canonical form.
func assertEquivalent(t *testing.T, actual expr.Expr, expected expr.Expr) {
	t.Helper()
	//
	lhs, err := rewrite.Simplify(actual)
	require.NoError(t, err)
	//
	rhs, err := rewrite.Simplify(expected)
	require.NoError(t, err)
	//
	assert.True(t, lhs.Equal(rhs), "%s /= %s", expr.String(lhs), expr.String(rhs))
}
