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
package solver

import (
	"math"
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

func parseEq(t *testing.T, text string) *expr.Compound {
	t.Helper()
	//
	eq, err := expr.ParseEquation(text)
	require.NoError(t, err)
	//
	return eq
}

func solve(t *testing.T, unknowns []string, eqs ...string) SolutionSet {
	t.Helper()
	//
	parsed := make([]*expr.Compound, len(eqs))
	for i, eq := range eqs {
		parsed[i] = parseEq(t, eq)
	}
	//
	solutions, err := Solve(parsed, unknowns...)
	require.NoError(t, err)
	//
	return solutions
}

func TestSolve_SingleLinear(t *testing.T) {
	solutions := solve(t, []string{"x"}, "(= (+ 1 x) 3)")
	//
	require.Len(t, solutions.Bindings, 1)
	assert.True(t, expr.NewInt64(2).Equal(solutions.Bindings[0]["x"]))
}

func TestSolve_Tautology(t *testing.T) {
	// Recognising these requires expanding the difference of the two sides,
	// not merely simplifying it.
	for _, eq := range []string{
		"(= (+ x 1) (+ 1 x))",
		"(= (* 2 (+ x 1)) (+ (* 2 x) 2))",
	} {
		solutions := solve(t, []string{"x"}, eq)
		assert.True(t, solutions.All, eq)
	}
}

func TestSolve_Contradiction(t *testing.T) {
	solutions := solve(t, []string{"x"}, "(= (* 0 x) 1)")
	assert.True(t, solutions.IsEmpty())
}

func TestSolve_DegenerateEquation(t *testing.T) {
	solutions := solve(t, []string{"x"}, "(= (* 0 x) 0)")
	assert.True(t, solutions.All)
}

func TestSolve_LinearSystem(t *testing.T) {
	solutions := solve(t, []string{"x", "y"},
		"(= (+ (* 3 x) (* 4 y)) 100)",
		"(= (- x y) 20)")
	//
	require.Len(t, solutions.Bindings, 1)
	//
	binding := solutions.Bindings[0]
	assert.True(t, expr.NewRat(180, 7).Equal(binding["x"]))
	assert.True(t, expr.NewRat(40, 7).Equal(binding["y"]))
}

func TestSolve_InconsistentSystem(t *testing.T) {
	solutions := solve(t, []string{"x", "y"},
		"(= (+ x y) 2)",
		"(= (+ x y) 3)")
	//
	assert.True(t, solutions.IsEmpty())
}

func TestSolve_Underdetermined(t *testing.T) {
	solutions := solve(t, []string{"x", "y"}, "(= (+ x y) 10)")
	//
	require.Len(t, solutions.Bindings, 1)
	//
	binding := solutions.Bindings[0]
	require.NotNil(t, expr.IsSymbol(binding["y"]))
	// Any value of the placeholder satisfies the equation.
	placeholder := expr.String(binding["y"])
	env := map[string]expr.Expr{placeholder: expr.NewInt64(4)}
	//
	var (
		x = expr.Evaluate(binding["x"], env)
		y = expr.Evaluate(binding["y"], env)
	)
	//
	assert.True(t, expr.NewInt64(10).Equal(expr.Evaluate(expr.Sum(x, y), nil)))
}

func TestSolve_ProductUnderdetermined(t *testing.T) {
	// x*y = 6 pivots on x, leaving y arbitrary.  The value bound to x must be
	// expressed over y's placeholder, not over y itself.
	solutions := solve(t, []string{"x", "y"}, "(= (* x y) 6)")
	//
	require.Len(t, solutions.Bindings, 1)
	//
	binding := solutions.Bindings[0]
	require.NotNil(t, expr.IsSymbol(binding["y"]))
	assert.False(t, expr.Contains(binding["x"], "y"))
	// Any non-zero value of the placeholder satisfies the equation.
	placeholder := expr.String(binding["y"])
	env := map[string]expr.Expr{placeholder: expr.NewInt64(3)}
	//
	var (
		x = expr.Evaluate(binding["x"], env)
		y = expr.Evaluate(binding["y"], env)
	)
	//
	assert.True(t, expr.NewInt64(6).Equal(expr.Evaluate(expr.Product(x, y), nil)))
}

func TestSolve_PlaceholdersDistinct(t *testing.T) {
	var (
		solver = NewSolver()
		eq     = parseEq(t, "(= (+ x y) 10)")
	)
	//
	first, err := solver.Solve([]*expr.Compound{eq}, "x", "y")
	require.NoError(t, err)
	//
	second, err := solver.Solve([]*expr.Compound{eq}, "x", "y")
	require.NoError(t, err)
	//
	var (
		a = expr.String(first.Bindings[0]["y"])
		b = expr.String(second.Bindings[0]["y"])
	)
	//
	assert.NotEqual(t, a, b)
}

func TestSolve_SymbolicCoefficients(t *testing.T) {
	// a*x = b has the solution x = b/a (assuming a non-zero).
	solutions := solve(t, []string{"x"}, "(= (* a x) b)")
	//
	require.Len(t, solutions.Bindings, 1)
	//
	env := map[string]expr.Expr{"a": expr.NewInt64(2), "b": expr.NewInt64(6)}
	value := expr.Evaluate(solutions.Bindings[0]["x"], env)
	assert.True(t, expr.NewInt64(3).Equal(value))
}

func TestSolve_Quadratic(t *testing.T) {
	solutions := solve(t, []string{"x"}, "(= (** x 2) 4)")
	//
	assertValues(t, solutions, "x", "2", "-2")
}

func TestSolve_QuadraticNoRealRoots(t *testing.T) {
	solutions := solve(t, []string{"x"}, "(= (** x 2) -4)")
	assert.True(t, solutions.IsEmpty())
}

func TestSolve_QuadraticDoubleRoot(t *testing.T) {
	solutions := solve(t, []string{"x"}, "(= (+ (** x 2) (* -2 x) 1) 0)")
	assertValues(t, solutions, "x", "1")
}

func TestSolve_Cubic(t *testing.T) {
	solutions := solve(t, []string{"x"},
		"(= (+ (** x 3) (* -6 (** x 2)) (* 11 x) -6) 0)")
	//
	assertValues(t, solutions, "x", "1", "2", "3")
}

func TestSolve_Quartic(t *testing.T) {
	// x^4 - 5x^2 + 4 factors as (x-1)(x+1)(x-2)(x+2).
	solutions := solve(t, []string{"x"}, "(= (+ (** x 4) (* -5 (** x 2)) 4) 0)")
	assertValues(t, solutions, "x", "1", "-1", "2", "-2")
}

func TestSolve_AbsoluteValue(t *testing.T) {
	solutions := solve(t, []string{"x"}, "(= (abs x) 2)")
	assertValues(t, solutions, "x", "2", "-2")
}

func TestSolve_Logarithm(t *testing.T) {
	// log(x) = 0 at x = 1, via rearrangement and an approximate exp.
	solutions := solve(t, []string{"x"}, "(= (log x) 0)")
	assertApproxValues(t, solutions, "x", 1)
}

func TestSolve_Exponential(t *testing.T) {
	// 2^(2x) - 5*2^x + 4 = 0 is quadratic in u = 2^x, with u in {1, 4} and
	// hence x in {0, 2}.  The inversion goes through approximate logarithms.
	solutions := solve(t, []string{"x"},
		"(= (+ (** 2 (* 2 x)) (* -5 (** 2 x)) 4) 0)")
	//
	assertApproxValues(t, solutions, "x", 0, 2)
}

func TestSolve_LogElimination(t *testing.T) {
	// log(x) + log(x) = log(4) combines to log(x^2) = log(4), lifting into
	// x^2 = 4.  The positive root must survive; a negative candidate may be
	// retained since log of a negative number never reduces to a judgement.
	solutions := solve(t, []string{"x"}, "(= (+ (log x) (log x)) (log 4))")
	//
	require.False(t, solutions.All)
	require.NotEmpty(t, solutions.Bindings)
	//
	found := false
	for _, binding := range solutions.Bindings {
		c := expr.IsConstant(binding["x"])
		if c != nil && math.Abs(c.Float64()-2) < 1e-9 {
			found = true
		}
	}
	//
	assert.True(t, found, "missing solution x = 2 in %s", solutions)
}

func TestSolve_MixedSystem(t *testing.T) {
	// x^2 = 4 crossed with x + y = 5.
	solutions := solve(t, []string{"x", "y"},
		"(= (** x 2) 4)",
		"(= (+ x y) 5)")
	//
	require.Len(t, solutions.Bindings, 2)
	//
	for _, binding := range solutions.Bindings {
		var (
			x = binding["x"]
			y = binding["y"]
		)
		//
		assert.True(t, expr.NewInt64(5).Equal(expr.Evaluate(expr.Sum(x, y), nil)))
	}
	//
	assertValues(t, solutions, "x", "2", "-2")
}

func TestSolve_Unsolvable(t *testing.T) {
	_, err := Solve([]*expr.Compound{parseEq(t, "(= (log x) (exp x))")}, "x")
	assert.ErrorIs(t, err, ErrUnsolvable)
}

func TestSolve_ForeignResidue(t *testing.T) {
	// An equation over symbols we are not solving for.
	_, err := Solve([]*expr.Compound{parseEq(t, "(= a 1)")}, "x")
	assert.ErrorIs(t, err, ErrUnsolvable)
}

func TestRearrange_Linear(t *testing.T) {
	branches, err := Rearrange("x", parseEq(t, "(= (+ (* 2 x) 1) 9)"))
	require.NoError(t, err)
	require.Len(t, branches, 1)
	//
	lhs := expr.IsSymbol(branches[0].Lhs())
	require.NotNil(t, lhs)
	assert.Equal(t, "x", lhs.Name)
	// The right-hand side is left unsimplified but evaluates to (9-1)/2.
	value := expr.Evaluate(branches[0].Rhs(), nil)
	assert.True(t, expr.NewInt64(4).Equal(value))
}

func TestRearrange_UnknownOnRight(t *testing.T) {
	branches, err := Rearrange("x", parseEq(t, "(= 9 (+ (* 2 x) 1))"))
	require.NoError(t, err)
	require.Len(t, branches, 1)
	assert.True(t, expr.NewInt64(4).Equal(expr.Evaluate(branches[0].Rhs(), nil)))
}

func TestRearrange_EvenPowerForks(t *testing.T) {
	branches, err := Rearrange("x", parseEq(t, "(= (** x 2) 9)"))
	require.NoError(t, err)
	require.Len(t, branches, 2)
	//
	var values []expr.Expr
	for _, branch := range branches {
		values = append(values, expr.Evaluate(branch.Rhs(), nil))
	}
	//
	assert.True(t, expr.NewInt64(3).Equal(values[0]))
	assert.True(t, expr.NewInt64(-3).Equal(values[1]))
}

func TestRearrange_OddPower(t *testing.T) {
	branches, err := Rearrange("x", parseEq(t, "(= (** x 3) 8)"))
	require.NoError(t, err)
	require.Len(t, branches, 1)
	assert.True(t, expr.NewInt64(2).Equal(expr.Evaluate(branches[0].Rhs(), nil)))
}

func TestRearrange_AbsForks(t *testing.T) {
	branches, err := Rearrange("x", parseEq(t, "(= (+ (abs x) 1) 4)"))
	require.NoError(t, err)
	require.Len(t, branches, 2)
}

func TestRearrange_Division(t *testing.T) {
	// 6 / x = 2  ==>  x = 6 / 2
	branches, err := Rearrange("x", parseEq(t, "(= (/ 6 x) 2)"))
	require.NoError(t, err)
	require.Len(t, branches, 1)
	assert.True(t, expr.NewInt64(3).Equal(expr.Evaluate(branches[0].Rhs(), nil)))
}

func TestRearrange_Errors(t *testing.T) {
	_, err := Rearrange("x", parseEq(t, "(= y 2)"))
	assert.ErrorIs(t, err, ErrNoOccurrence)
	//
	_, err = Rearrange("x", parseEq(t, "(= (+ x x) 2)"))
	assert.ErrorIs(t, err, ErrMultipleOccurrences)
	//
	_, err = Rearrange("x", parseEq(t, "(= [x 1] [2 1])"))
	assert.ErrorIs(t, err, ErrNotInvertible)
}

// Check the solution set binds the unknown to exactly the given values, in
// any order.
func assertValues(t *testing.T, solutions SolutionSet, unknown string, values ...string) {
	t.Helper()
	//
	require.False(t, solutions.All)
	require.Len(t, solutions.Bindings, len(values))
	//
	for _, text := range values {
		var (
			expected = parse(t, text)
			found    = false
		)
		//
		for _, binding := range solutions.Bindings {
			if expected.Equal(binding[unknown]) {
				found = true
				break
			}
		}
		//
		assert.True(t, found, "missing solution %s = %s in %s", unknown, text, solutions)
	}
}

// As assertValues, but comparing numerically within a tolerance, for
// solutions which pass through approximate logarithms or exponentials.
func assertApproxValues(t *testing.T, solutions SolutionSet, unknown string, values ...float64) {
	t.Helper()
	//
	require.False(t, solutions.All)
	require.Len(t, solutions.Bindings, len(values))
	//
	for _, expected := range values {
		found := false
		//
		for _, binding := range solutions.Bindings {
			c := expr.IsConstant(binding[unknown])
			if c != nil && math.Abs(c.Float64()-expected) < 1e-9 {
				found = true
				break
			}
		}
		//
		assert.True(t, found, "missing solution %s = %v in %s", unknown, expected, solutions)
	}
}
