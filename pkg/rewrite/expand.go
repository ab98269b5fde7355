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
	"math/big"
	"slices"

	"github.com/kettleby/go-algebra/pkg/expr"
)

// The expansion engine distributes products over sums and expands integer
// powers of sums (by exact multinomial coefficients) until no distribution
// rule matches.  Subtraction and negation desugar into addition against a
// factor of -1, so that one distribution rule covers them all.
var expandEngine = NewEngine("expand", 256,
	NewRule("desugar-sub",
		Apply(expr.SUB, Any("a"), Any("b")), nil,
		func(binds Bindings) expr.Expr {
			return expr.Sum(binds["a"], expr.Product(expr.MinusOne, binds["b"]))
		}),
	NewRule("desugar-neg",
		Apply(expr.NEG, Any("a")), nil,
		func(binds Bindings) expr.Expr {
			return expr.Product(expr.MinusOne, binds["a"])
		}),
	NewFuncRule("flatten", flattenNode),
	NewFuncRule("expand-power", expandPowerNode),
	NewFuncRule("distribute", distributeNode),
	NewFuncRule("distribute-div", distributeDivNode),
)

// MultiplyOut repeatedly applies distribution rules (power-of-sum becomes an
// expanded sum of products, product-of-sums becomes a sum of products) until
// no distribution rule matches.
func MultiplyOut(e expr.Expr) expr.Expr {
	expanded, _ := expandEngine.Rewrite(e)
	return expanded
}

// Expand (** base n) where base is a sum (multinomial expansion) or a
// product (power distributes over the factors).
func expandPowerNode(e expr.Expr) (expr.Expr, bool) {
	pow := expr.IsCompound(e, expr.POW)
	if pow == nil {
		return e, false
	}
	//
	exponent := expr.IsConstant(pow.Args[1])
	if exponent == nil {
		return e, false
	}
	//
	n, ok := exponent.AsInt64()
	if !ok || !exponent.IsExact() {
		return e, false
	}
	// Power of a sum: multinomial expansion for n >= 2.
	if sum := expr.IsCompound(pow.Args[0], expr.ADD); sum != nil && n >= 2 {
		return expandPowerOfSum(sum.Args, n), true
	}
	// Power of a product: distribute over the factors.
	if product := expr.IsCompound(pow.Args[0], expr.MUL); product != nil && n != 0 && n != 1 {
		factors := make([]expr.Expr, len(product.Args))
		for i, f := range product.Args {
			factors[i] = expr.Power(f, exponent)
		}
		//
		return expr.Product(factors...), true
	}
	//
	return e, false
}

// Distribute a product over any sums among its operands, producing the full
// cartesian sum of products.
func distributeNode(e expr.Expr) (expr.Expr, bool) {
	product := expr.IsCompound(e, expr.MUL)
	if product == nil {
		return e, false
	}
	// Gather the term choices for each operand.
	var (
		choices = make([][]expr.Expr, len(product.Args))
		anySum  = false
	)
	//
	for i, arg := range product.Args {
		if sum := expr.IsCompound(arg, expr.ADD); sum != nil {
			choices[i] = sum.Args
			anySum = true
		} else {
			choices[i] = []expr.Expr{arg}
		}
	}
	//
	if !anySum {
		return e, false
	}
	// Cartesian product of the choices.
	terms := []expr.Expr{}
	//
	var walk func(i int, factors []expr.Expr)
	walk = func(i int, factors []expr.Expr) {
		if i == len(choices) {
			// NOTE: must copy factors, since the slice is reused as the
			// enumeration backtracks.
			terms = append(terms, productOf(slices.Clone(factors)))
			return
		}
		//
		for _, choice := range choices[i] {
			walk(i+1, append(factors, choice))
		}
	}
	//
	walk(0, make([]expr.Expr, 0, len(choices)))
	//
	return expr.Sum(terms...), true
}

// Distribute a sum in the numerator over a division: (a+b)/c becomes
// a/c + b/c.
func distributeDivNode(e expr.Expr) (expr.Expr, bool) {
	div := expr.IsCompound(e, expr.DIV)
	if div == nil {
		return e, false
	}
	//
	sum := expr.IsCompound(div.Args[0], expr.ADD)
	if sum == nil {
		return e, false
	}
	//
	terms := make([]expr.Expr, len(sum.Args))
	for i, t := range sum.Args {
		terms[i] = expr.Divide(t, div.Args[1])
	}
	//
	return expr.Sum(terms...), true
}

// Expand (t1 + ... + tk)^n via the multinomial theorem.  Coefficients are
// combinatorial and computed exactly as integers.
func expandPowerOfSum(terms []expr.Expr, n int64) expr.Expr {
	var (
		out       []expr.Expr
		nFact     = factorial(n)
		exponents = make([]int64, len(terms))
	)
	//
	var walk func(i int, remaining int64)
	walk = func(i int, remaining int64) {
		if i == len(terms)-1 {
			exponents[i] = remaining
			out = append(out, multinomialTerm(nFact, terms, exponents))
			return
		}
		//
		for k := int64(0); k <= remaining; k++ {
			exponents[i] = k
			walk(i+1, remaining-k)
		}
	}
	//
	walk(0, n)
	//
	return expr.Sum(out...)
}

// Construct coeff * t1^e1 * ... * tk^ek for one multinomial composition,
// where coeff = n! / (e1! * ... * ek!).
func multinomialTerm(nFact *big.Int, terms []expr.Expr, exponents []int64) expr.Expr {
	coeff := new(big.Int).Set(nFact)
	//
	for _, e := range exponents {
		coeff.Quo(coeff, factorial(e))
	}
	//
	var factors []expr.Expr
	//
	if coeff.Cmp(big.NewInt(1)) != 0 {
		factors = append(factors, expr.NewBigRat(new(big.Rat).SetInt(coeff)))
	}
	//
	for i, t := range terms {
		switch exponents[i] {
		case 0:
			// skip
		case 1:
			factors = append(factors, t)
		default:
			factors = append(factors, expr.Power(t, expr.NewInt64(exponents[i])))
		}
	}
	//
	return productOf(factors)
}

func factorial(n int64) *big.Int {
	result := big.NewInt(1)
	//
	for i := int64(2); i <= n; i++ {
		result.Mul(result, big.NewInt(i))
	}
	//
	return result
}

// Construct a product, collapsing the empty and singleton cases.
func productOf(factors []expr.Expr) expr.Expr {
	switch len(factors) {
	case 0:
		return expr.One
	case 1:
		return factors[0]
	default:
		return expr.Product(factors...)
	}
}
