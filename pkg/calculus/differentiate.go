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

// Package calculus provides symbolic differentiation.
package calculus

import (
	"errors"

	"github.com/kettleby/go-algebra/pkg/expr"
	"github.com/kettleby/go-algebra/pkg/rewrite"
)

// ErrNotDifferentiable signals a term which has no derivative rule, such as
// an equation.
var ErrNotDifferentiable = errors.New("not differentiable")

// Differentiate computes the derivative of a term with respect to each of
// the given variables in turn, left to right.  Symbols other than the
// variable under differentiation are treated as constants.  Constants are
// folded after every step, so repeated differentiation does not accumulate
// unevaluated coefficients.
func Differentiate(e expr.Expr, variables ...string) (expr.Expr, error) {
	result := e
	//
	for _, variable := range variables {
		derived, err := derivative(variable, result)
		if err != nil {
			return nil, err
		}
		// NOTE: folding here keeps intermediate derivatives small, which
		// matters when differentiating repeatedly.
		result = rewrite.EvaluateConstants(derived)
	}
	//
	return result, nil
}

func derivative(variable string, e expr.Expr) (expr.Expr, error) {
	switch t := e.(type) {
	case *expr.Constant:
		return expr.Zero, nil
	case *expr.Symbol:
		if t.Name == variable {
			return expr.One, nil
		}
		//
		return expr.Zero, nil
	case *expr.Vector:
		elements := make([]expr.Expr, len(t.Elements))
		//
		for i, el := range t.Elements {
			d, err := derivative(variable, el)
			if err != nil {
				return nil, err
			}
			//
			elements[i] = d
		}
		//
		return expr.NewVector(elements...), nil
	case *expr.Compound:
		return compoundDerivative(variable, t)
	}
	//
	return nil, ErrNotDifferentiable
}

func compoundDerivative(variable string, c *expr.Compound) (expr.Expr, error) {
	// A subterm free of the variable differentiates to zero regardless of its
	// operator.
	if !expr.Contains(c, variable) {
		return expr.Zero, nil
	}
	//
	switch c.Op {
	case expr.ADD:
		return sumRule(variable, c.Args)
	case expr.SUB:
		d0, d1, err := derivatives2(variable, c.Args[0], c.Args[1])
		if err != nil {
			return nil, err
		}
		//
		return subOf(d0, d1), nil
	case expr.NEG:
		d, err := derivative(variable, c.Args[0])
		if err != nil {
			return nil, err
		}
		//
		return negOf(d), nil
	case expr.MUL:
		return productRule(variable, c.Args)
	case expr.DIV:
		return quotientRule(variable, c.Args[0], c.Args[1])
	case expr.POW:
		return powerRule(variable, c.Args[0], c.Args[1])
	case expr.LOG:
		// d log(f) = f' / f
		d, err := derivative(variable, c.Args[0])
		if err != nil {
			return nil, err
		}
		//
		return divOf(d, c.Args[0]), nil
	case expr.EXP:
		// d exp(f) = exp(f) * f'
		d, err := derivative(variable, c.Args[0])
		if err != nil {
			return nil, err
		}
		//
		return mulOf(expr.Exp(c.Args[0]), d), nil
	case expr.ABS:
		// d abs(f) = (f / abs(f)) * f'
		d, err := derivative(variable, c.Args[0])
		if err != nil {
			return nil, err
		}
		//
		return mulOf(divOf(c.Args[0], expr.Abs(c.Args[0])), d), nil
	}
	// Equations have no derivative.
	return nil, ErrNotDifferentiable
}

func sumRule(variable string, terms []expr.Expr) (expr.Expr, error) {
	var derived []expr.Expr
	//
	for _, term := range terms {
		d, err := derivative(variable, term)
		if err != nil {
			return nil, err
		}
		//
		if !expr.Zero.Equal(d) {
			derived = append(derived, d)
		}
	}
	//
	return addOf(derived), nil
}

// Generalised product rule: d(f1*...*fn) = sum over i of f1*...*di*...*fn.
func productRule(variable string, factors []expr.Expr) (expr.Expr, error) {
	var terms []expr.Expr
	//
	for i := range factors {
		d, err := derivative(variable, factors[i])
		if err != nil {
			return nil, err
		}
		//
		if expr.Zero.Equal(d) {
			continue
		}
		//
		product := make([]expr.Expr, len(factors))
		copy(product, factors)
		product[i] = d
		//
		terms = append(terms, mulOf(product...))
	}
	//
	return addOf(terms), nil
}

// d(f/g) = (f'*g - f*g') / g^2
func quotientRule(variable string, f expr.Expr, g expr.Expr) (expr.Expr, error) {
	df, dg, err := derivatives2(variable, f, g)
	if err != nil {
		return nil, err
	}
	// Denominator free of the variable reduces to f'/g.
	if expr.Zero.Equal(dg) {
		return divOf(df, g), nil
	}
	//
	numerator := subOf(mulOf(df, g), mulOf(f, dg))
	//
	return divOf(numerator, powOf(g, expr.NewInt64(2))), nil
}

// Power rule, in three flavours depending on where the variable occurs:
//
//	d(f^c) = c * f^(c-1) * f'
//	d(c^g) = c^g * log(c) * g'
//	d(f^g) = f^g * (g'*log(f) + g*f'/f)
func powerRule(variable string, f expr.Expr, g expr.Expr) (expr.Expr, error) {
	var (
		baseFree     = !expr.Contains(f, variable)
		exponentFree = !expr.Contains(g, variable)
	)
	//
	switch {
	case exponentFree:
		df, err := derivative(variable, f)
		if err != nil {
			return nil, err
		}
		//
		var decremented expr.Expr = expr.Subtract(g, expr.One)
		if c := expr.IsConstant(g); c != nil {
			decremented = c.Sub(expr.One)
		}
		//
		return mulOf(g, powOf(f, decremented), df), nil
	case baseFree:
		dg, err := derivative(variable, g)
		if err != nil {
			return nil, err
		}
		//
		return mulOf(expr.Power(f, g), expr.Log(f), dg), nil
	default:
		df, dg, err := derivatives2(variable, f, g)
		if err != nil {
			return nil, err
		}
		//
		inner := addOf([]expr.Expr{
			mulOf(dg, expr.Log(f)),
			mulOf(g, divOf(df, f)),
		})
		//
		return mulOf(expr.Power(f, g), inner), nil
	}
}

func derivatives2(variable string, lhs expr.Expr, rhs expr.Expr) (expr.Expr, expr.Expr, error) {
	d0, err := derivative(variable, lhs)
	if err != nil {
		return nil, nil, err
	}
	//
	d1, err := derivative(variable, rhs)
	if err != nil {
		return nil, nil, err
	}
	//
	return d0, d1, nil
}
