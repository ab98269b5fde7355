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
	"github.com/kettleby/go-algebra/pkg/expr"
	"github.com/kettleby/go-algebra/pkg/rewrite"
	"github.com/kettleby/go-algebra/pkg/util/array"
)

// SubstKind distinguishes the recognised changes of variable.
type SubstKind uint8

const (
	// SubstExponential stands for u = base^x: the unknown occurs only in
	// exponent position over a common base.
	SubstExponential SubstKind = iota
	// SubstPower stands for u = x^d: the unknown occurs only raised to
	// multiples of a common power d >= 2.
	SubstPower
)

// Substitution records a change of variable under which a term became
// polynomial.  Inverting it (recovering the original unknown from a value of
// the stand-in) is the caller's concern.
type Substitution struct {
	// Variable is the fresh stand-in.
	Variable string
	// Kind of the change of variable.
	Kind SubstKind
	// Base of the exponential, for SubstExponential.
	Base expr.Expr
	// Power d of the unknown, for SubstPower.
	Power int64
}

// Recognize attempts to view a term that is not a polynomial in the given
// variable as a polynomial in some stand-in for it: first as a polynomial in
// u = base^x, then as a polynomial in u = x^d.  On success it returns the
// normal form in the stand-in together with the substitution applied.
func Recognize(variable string, e expr.Expr, fresh string) (*Polynomial, *Substitution, error) {
	expanded := rewrite.MultiplyOut(e)
	//
	if p, s, err := recognizeExponential(variable, expanded, fresh); err == nil {
		return p, s, nil
	}
	//
	return recognizePower(variable, expanded, fresh)
}

// Recognise u = base^x: every occurrence of the variable must sit in the
// exponent of a power over one common (variable-free) base, and each such
// exponent must be linear in the variable with positive integer slope.  Then
// base^(k*x + c) rewrites to base^c * u^k.
func recognizeExponential(variable string, e expr.Expr, fresh string) (*Polynomial, *Substitution, error) {
	var base expr.Expr
	//
	replaced, err := replaceExponentials(variable, fresh, e, &base)
	if err != nil {
		return nil, nil, err
	} else if base == nil {
		// No exponential occurrence at all.
		return nil, nil, ErrNotPolynomial
	}
	//
	p, err := NormalForm(fresh, replaced)
	if err != nil {
		return nil, nil, err
	}
	//
	return p, &Substitution{Variable: fresh, Kind: SubstExponential, Base: base}, nil
}

// Rewrite each power-with-the-variable-in-its-exponent into the stand-in,
// checking all such powers share one base.  Any other occurrence of the
// variable fails the recognition.
func replaceExponentials(variable string, fresh string, e expr.Expr, base *expr.Expr) (expr.Expr, error) {
	if !expr.Contains(e, variable) {
		return e, nil
	}
	//
	if pow := asExponential(variable, e); pow != nil {
		if *base == nil {
			*base = pow.Args[0]
		} else if !(*base).Equal(pow.Args[0]) {
			// Mixed bases.
			return nil, ErrNotPolynomial
		}
		//
		return standInFor(variable, fresh, pow)
	}
	//
	switch t := e.(type) {
	case *expr.Compound:
		args := make([]expr.Expr, len(t.Args))
		//
		for i, arg := range t.Args {
			narg, err := replaceExponentials(variable, fresh, arg, base)
			if err != nil {
				return nil, err
			}
			//
			args[i] = narg
		}
		//
		return &expr.Compound{Op: t.Op, Args: args}, nil
	default:
		// A bare occurrence outside any exponent.
		return nil, ErrNotPolynomial
	}
}

// Check for a power whose base is free of the variable whilst its exponent is
// not.
func asExponential(variable string, e expr.Expr) *expr.Compound {
	pow := expr.IsCompound(e, expr.POW)
	//
	if pow != nil && !expr.Contains(pow.Args[0], variable) && expr.Contains(pow.Args[1], variable) {
		return pow
	}
	//
	return nil
}

// Rewrite base^(k*x + c) as base^c * u^k, requiring the exponent to be
// linear in x with an exact positive integer slope k.
func standInFor(variable string, fresh string, pow *expr.Compound) (expr.Expr, error) {
	exponent, err := NormalForm(variable, pow.Args[1])
	if err != nil || exponent.Degree() != 1 {
		return nil, ErrNotPolynomial
	}
	//
	slope := expr.IsConstant(exponent.Coefficient(1))
	if slope == nil || !slope.IsExact() {
		return nil, ErrNotPolynomial
	}
	//
	k, ok := slope.AsInt64()
	if !ok || k < 1 {
		return nil, ErrNotPolynomial
	}
	//
	var (
		standIn   expr.Expr = expr.NewSymbol(fresh)
		intercept           = exponent.Coefficient(0)
	)
	//
	if k > 1 {
		standIn = expr.Power(standIn, expr.NewInt64(k))
	}
	//
	if expr.Zero.Equal(intercept) {
		return standIn, nil
	}
	//
	return expr.Product(expr.Power(pow.Args[0], intercept), standIn), nil
}

// Recognise u = x^d: every occurrence of the variable must be of the form
// x^n with n an exact positive integer, and d = gcd of all such n must be at
// least two.  Then x^n rewrites to u^(n/d).
func recognizePower(variable string, e expr.Expr, fresh string) (*Polynomial, *Substitution, error) {
	exponents := collectPowers(variable, e, nil)
	//
	d := int64(0)
	for _, n := range exponents {
		if n <= 0 {
			// A bare or otherwise irreducible occurrence.
			return nil, nil, ErrNotPolynomial
		}
		//
		d = gcd64(d, n)
	}
	//
	if d < 2 {
		return nil, nil, ErrNotPolynomial
	}
	//
	p, err := NormalForm(fresh, replacePowers(variable, fresh, d, e))
	if err != nil {
		return nil, nil, err
	}
	//
	return p, &Substitution{Variable: fresh, Kind: SubstPower, Power: d}, nil
}

// Gather the exponent of every occurrence of the variable.  A sentinel of
// zero marks an occurrence which is not a pure positive integer power.
func collectPowers(variable string, e expr.Expr, acc []int64) []int64 {
	if !expr.Contains(e, variable) {
		return acc
	}
	//
	if n, ok := asIntegerPower(variable, e); ok {
		return append(acc, n)
	}
	//
	if c, ok := e.(*expr.Compound); ok {
		for _, arg := range c.Args {
			acc = collectPowers(variable, arg, acc)
		}
		//
		return acc
	}
	//
	return append(acc, 0)
}

// Check for x^n with n an exact positive integer (n >= 2).
func asIntegerPower(variable string, e expr.Expr) (int64, bool) {
	pow := expr.IsCompound(e, expr.POW)
	if pow == nil {
		return 0, false
	}
	//
	sym, ok := pow.Args[0].(*expr.Symbol)
	if !ok || sym.Name != variable {
		return 0, false
	}
	//
	exponent := expr.IsConstant(pow.Args[1])
	if exponent == nil || !exponent.IsExact() {
		return 0, false
	}
	//
	n, ok := exponent.AsInt64()
	if !ok || n < 2 {
		return 0, false
	}
	//
	return n, true
}

// Rewrite every x^n into u^(n/d).
func replacePowers(variable string, fresh string, d int64, e expr.Expr) expr.Expr {
	if !expr.Contains(e, variable) {
		return e
	}
	//
	if n, ok := asIntegerPower(variable, e); ok {
		if n == d {
			return expr.NewSymbol(fresh)
		}
		//
		return expr.Power(expr.NewSymbol(fresh), expr.NewInt64(n/d))
	}
	//
	if c, ok := e.(*expr.Compound); ok {
		args := array.Map(c.Args, func(arg expr.Expr) expr.Expr {
			return replacePowers(variable, fresh, d, arg)
		})
		//
		return &expr.Compound{Op: c.Op, Args: args}
	}
	//
	return e
}

func gcd64(a int64, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	//
	return a
}
