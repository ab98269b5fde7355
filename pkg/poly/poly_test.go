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
package poly

import (
	"math/big"
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

func TestNormalForm_Linear(t *testing.T) {
	p, err := NormalForm("x", parse(t, "(+ (* 2 x) 1)"))
	require.NoError(t, err)
	//
	assert.Equal(t, 1, p.Degree())
	assert.True(t, expr.One.Equal(p.Coefficient(0)))
	assert.True(t, expr.NewInt64(2).Equal(p.Coefficient(1)))
}

func TestNormalForm_ProductOfFactors(t *testing.T) {
	// (x+1)(x-1) ==> x^2 - 1
	p, err := NormalForm("x", parse(t, "(* (+ x 1) (- x 1))"))
	require.NoError(t, err)
	//
	assert.Equal(t, 2, p.Degree())
	assert.True(t, expr.MinusOne.Equal(p.Coefficient(0)))
	assert.True(t, expr.Zero.Equal(p.Coefficient(1)))
	assert.True(t, expr.One.Equal(p.Coefficient(2)))
}

func TestNormalForm_CollapsesToZero(t *testing.T) {
	p, err := NormalForm("x", parse(t, "(- (* x x) (** x 2))"))
	require.NoError(t, err)
	//
	assert.True(t, p.IsZero())
	assert.Equal(t, 0, p.Degree())
}

func TestNormalForm_SymbolicCoefficients(t *testing.T) {
	// a*x^2 + b viewed in x: coefficients free of x, not numeric.
	p, err := NormalForm("x", parse(t, "(+ (* a (** x 2)) b)"))
	require.NoError(t, err)
	//
	require.Equal(t, 2, p.Degree())
	assert.True(t, parse(t, "b").Equal(p.Coefficient(0)))
	assert.True(t, parse(t, "a").Equal(p.Coefficient(2)))
	//
	_, numeric := p.NumericCoefficients()
	assert.False(t, numeric)
}

func TestNormalForm_FreeOfVariable(t *testing.T) {
	p, err := NormalForm("x", parse(t, "(+ y 1)"))
	require.NoError(t, err)
	//
	assert.Equal(t, 0, p.Degree())
}

func TestNormalForm_Division(t *testing.T) {
	// (2x + 4) / 2 ==> x + 2
	p, err := NormalForm("x", parse(t, "(/ (+ (* 2 x) 4) 2)"))
	require.NoError(t, err)
	//
	require.Equal(t, 1, p.Degree())
	assert.True(t, expr.NewInt64(2).Equal(p.Coefficient(0)))
	assert.True(t, expr.One.Equal(p.Coefficient(1)))
}

func TestNormalForm_Errors(t *testing.T) {
	for _, text := range []string{
		"(/ 1 x)",
		"(log x)",
		"(** x -1)",
		"(** 2 x)",
		"(abs x)",
		"(** x 1/2)",
	} {
		_, err := NormalForm("x", parse(t, text))
		assert.ErrorIs(t, err, ErrNotPolynomial, text)
	}
}

func TestPolynomial_Expr(t *testing.T) {
	p, err := NormalForm("x", parse(t, "(* (+ x 1) (- x 1))"))
	require.NoError(t, err)
	// Canonical ascending sum, omitting zero coefficients.
	assert.True(t, parse(t, "(+ -1 (** x 2))").Equal(p.Expr()))
}

func TestPolynomial_NumericCoefficients(t *testing.T) {
	p, err := NormalForm("x", parse(t, "(+ (** x 2) (* 3/2 x) -1)"))
	require.NoError(t, err)
	//
	coeffs, ok := p.NumericCoefficients()
	require.True(t, ok)
	require.Len(t, coeffs, 3)
	assert.Equal(t, 0, coeffs[0].Cmp(big.NewRat(-1, 1)))
	assert.Equal(t, 0, coeffs[1].Cmp(big.NewRat(3, 2)))
	assert.Equal(t, 0, coeffs[2].Cmp(big.NewRat(1, 1)))
}

func TestRationalRoots_Quadratic(t *testing.T) {
	// x^2 - 3x + 2 = (x-1)(x-2)
	roots, remainder := RationalRoots(rats(2, -3, 1))
	//
	assert.Len(t, remainder, 1)
	assertRoots(t, roots, 1, 2)
}

func TestRationalRoots_Cubic(t *testing.T) {
	// x^3 - 6x^2 + 11x - 6 = (x-1)(x-2)(x-3)
	roots, remainder := RationalRoots(rats(-6, 11, -6, 1))
	//
	assert.Len(t, remainder, 1)
	assertRoots(t, roots, 1, 2, 3)
}

func TestRationalRoots_ZeroRoot(t *testing.T) {
	// x^3 - x = x(x-1)(x+1)
	roots, remainder := RationalRoots(rats(0, -1, 0, 1))
	//
	assert.Len(t, remainder, 1)
	assertRoots(t, roots, 0, 1, -1)
}

func TestRationalRoots_Irrational(t *testing.T) {
	// x^2 - 2 has no rational roots; the remainder is untouched.
	roots, remainder := RationalRoots(rats(-2, 0, 1))
	//
	assert.Empty(t, roots)
	assert.Len(t, remainder, 3)
}

func TestRationalRoots_FractionalCoefficients(t *testing.T) {
	// x^2/2 - x/2 - 1 = (x-2)(x+1)/2
	coeffs := []*big.Rat{big.NewRat(-1, 1), big.NewRat(-1, 2), big.NewRat(1, 2)}
	roots, remainder := RationalRoots(coeffs)
	//
	assert.Len(t, remainder, 1)
	assertRoots(t, roots, 2, -1)
}

func TestRecognize_Exponential(t *testing.T) {
	// 2^(2x) - 5*2^x + 4: quadratic in u = 2^x.
	p, subst, err := Recognize("x", parse(t, "(+ (** 2 (* 2 x)) (* -5 (** 2 x)) 4)"), "u")
	require.NoError(t, err)
	//
	require.Equal(t, SubstExponential, subst.Kind)
	assert.True(t, expr.NewInt64(2).Equal(subst.Base))
	assert.Equal(t, "u", subst.Variable)
	//
	require.Equal(t, 2, p.Degree())
	assert.True(t, expr.NewInt64(4).Equal(p.Coefficient(0)))
	assert.True(t, expr.NewInt64(-5).Equal(p.Coefficient(1)))
	assert.True(t, expr.One.Equal(p.Coefficient(2)))
}

func TestRecognize_ExponentialWithIntercept(t *testing.T) {
	// 3^(x+1) - 9 rewrites to 3*u - 9 under u = 3^x.
	p, subst, err := Recognize("x", parse(t, "(- (** 3 (+ x 1)) 9)"), "u")
	require.NoError(t, err)
	//
	require.Equal(t, SubstExponential, subst.Kind)
	require.Equal(t, 1, p.Degree())
	assert.True(t, expr.NewInt64(3).Equal(p.Coefficient(1)))
	assert.True(t, expr.NewInt64(-9).Equal(p.Coefficient(0)))
}

func TestRecognize_Power(t *testing.T) {
	// x^4 - 5x^2 + 4: quadratic in u = x^2.
	p, subst, err := Recognize("x", parse(t, "(+ (** x 4) (* -5 (** x 2)) 4)"), "u")
	require.NoError(t, err)
	//
	require.Equal(t, SubstPower, subst.Kind)
	assert.Equal(t, int64(2), subst.Power)
	//
	require.Equal(t, 2, p.Degree())
	assert.True(t, expr.NewInt64(4).Equal(p.Coefficient(0)))
	assert.True(t, expr.NewInt64(-5).Equal(p.Coefficient(1)))
	assert.True(t, expr.One.Equal(p.Coefficient(2)))
}

func TestRecognize_Errors(t *testing.T) {
	for _, text := range []string{
		// mixed bases
		"(+ (** 2 x) (** 3 x))",
		// bare occurrence alongside a power
		"(+ (** x 2) x)",
		// nothing to substitute
		"(log x)",
	} {
		_, _, err := Recognize("x", parse(t, text), "u")
		assert.Error(t, err, text)
	}
}

func rats(coeffs ...int64) []*big.Rat {
	result := make([]*big.Rat, len(coeffs))
	//
	for i, c := range coeffs {
		result[i] = new(big.Rat).SetInt64(c)
	}
	//
	return result
}

func assertRoots(t *testing.T, actual []*big.Rat, expected ...int64) {
	t.Helper()
	//
	require.Len(t, actual, len(expected))
	//
	for _, e := range expected {
		found := false
		//
		for _, a := range actual {
			if a.Cmp(new(big.Rat).SetInt64(e)) == 0 {
				found = true
				break
			}
		}
		//
		assert.True(t, found, "missing root %d", e)
	}
}
