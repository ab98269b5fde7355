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
	"github.com/kettleby/go-algebra/pkg/expr"
	"github.com/kettleby/go-algebra/pkg/util/array"
)

// Resugar converts the internal additive/multiplicative normal form back
// into the friendlier surface operators: products against negative powers
// become divisions, sums against negative coefficients become subtractions,
// and a lone -1 coefficient becomes negation.
func resugar(e expr.Expr) expr.Expr {
	switch t := e.(type) {
	case *expr.Compound:
		args := array.Map(t.Args, resugar)
		//
		switch t.Op {
		case expr.MUL:
			return resugarProduct(args)
		case expr.ADD:
			return resugarSum(args)
		case expr.POW:
			return resugarPower(args[0], args[1])
		}
		//
		return &expr.Compound{Op: t.Op, Args: args}
	case *expr.Vector:
		return &expr.Vector{Elements: array.Map(t.Elements, resugar)}
	default:
		return e
	}
}

// A power with a negative exact integer exponent reads better as a division.
func resugarPower(base expr.Expr, exponent expr.Expr) expr.Expr {
	if c := expr.IsConstant(exponent); c != nil && c.IsExact() && c.IsInteger() && c.Sign() < 0 {
		return expr.Divide(expr.One, positivePower(base, c))
	}
	//
	return expr.Power(base, exponent)
}

// Split a product's factors into numerator and denominator parts, and pull a
// bare -1 coefficient out as negation.
func resugarProduct(factors []expr.Expr) expr.Expr {
	var (
		numerator   []expr.Expr
		denominator []expr.Expr
		negated     = false
	)
	//
	for _, f := range factors {
		if c := expr.IsConstant(f); c != nil && c.IsExact() && c.Cmp(expr.MinusOne) == 0 {
			negated = !negated
			continue
		}
		//
		if pow := expr.IsCompound(f, expr.POW); pow != nil {
			if c := expr.IsConstant(pow.Args[1]); c != nil && c.IsExact() && c.IsInteger() && c.Sign() < 0 {
				denominator = append(denominator, positivePower(pow.Args[0], c))
				continue
			}
		} else if div := expr.IsCompound(f, expr.DIV); div != nil && expr.One.Equal(div.Args[0]) {
			// Already-resugared reciprocal from a child pass.
			denominator = append(denominator, div.Args[1])
			continue
		}
		//
		numerator = append(numerator, f)
	}
	//
	result := productOf(numerator)
	//
	if len(denominator) != 0 {
		result = expr.Divide(result, productOf(denominator))
	}
	//
	if negated {
		result = expr.Negate(result)
	}
	//
	return result
}

// Partition a sum's terms by the sign of their numeric coefficient, turning
// the negative group into a subtrahend.
func resugarSum(terms []expr.Expr) expr.Expr {
	var (
		positive []expr.Expr
		negative []expr.Expr
	)
	//
	for _, t := range terms {
		if neg, ok := negatedTerm(t); ok {
			negative = append(negative, neg)
		} else {
			positive = append(positive, t)
		}
	}
	//
	if len(negative) == 0 || len(positive) == 0 {
		return sumOf(terms)
	}
	//
	result := sumOf(positive)
	// Subtract each negated term in turn.
	for _, n := range negative {
		result = expr.Subtract(result, n)
	}
	//
	return result
}

// Check whether a term carries a negative numeric coefficient and, if so,
// return the term with that coefficient flipped.
func negatedTerm(t expr.Expr) (expr.Expr, bool) {
	if neg := expr.IsCompound(t, expr.NEG); neg != nil {
		return neg.Args[0], true
	}
	//
	if c := expr.IsConstant(t); c != nil && c.Sign() < 0 {
		return c.Neg(), true
	}
	//
	product := expr.IsCompound(t, expr.MUL)
	if product == nil {
		return nil, false
	}
	//
	coeff := expr.IsConstant(product.Args[0])
	if coeff == nil || coeff.Sign() >= 0 {
		return nil, false
	}
	//
	flipped := coeff.Neg()
	//
	if flipped.IsOne() {
		return productOf(product.Args[1:]), true
	}
	//
	return expr.Product(array.Prepend[expr.Expr](flipped, product.Args[1:])...), true
}

// Raise a base to the magnitude of a negative exponent, collapsing the
// exponent-one case.
func positivePower(base expr.Expr, exponent *expr.Constant) expr.Expr {
	flipped := exponent.Neg()
	//
	if flipped.IsOne() {
		return base
	}
	//
	return expr.Power(base, flipped)
}
