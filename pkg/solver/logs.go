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
	"github.com/kettleby/go-algebra/pkg/expr"
)

// An additive term with its sign within a sum.
type signedTerm struct {
	term    expr.Expr
	negated bool
}

// Eliminate logarithms from an equation of the form sum-of-terms = 0, where
// every occurrence of the unknown sits beneath a logarithm.  The log terms
// combine into a single logarithm (log a + log b = log ab, k*log a = log
// a^k), which then lifts into an exponential:
//
//	log(inner) + rest = 0  ==>  inner = exp(-rest)
//
// The returned sides form the transformed equation.
func eliminateLogs(unknown string, diff expr.Expr) (expr.Expr, expr.Expr, bool) {
	var (
		logs []signedTerm
		rest []expr.Expr
	)
	//
	for _, st := range additiveTerms(diff, false, nil) {
		if expr.Contains(st.term, unknown) {
			logs = append(logs, st)
		} else if st.negated {
			rest = append(rest, expr.Negate(st.term))
		} else {
			rest = append(rest, st.term)
		}
	}
	//
	if len(logs) == 0 {
		return nil, nil, false
	}
	// Combine all unknown-bearing terms into one logarithm.
	var factors []expr.Expr
	//
	for _, st := range logs {
		factor, ok := logArgument(st)
		if !ok {
			return nil, nil, false
		}
		//
		factors = append(factors, factor)
	}
	//
	inner := productOf(factors)
	rhs := expr.Exp(expr.Negate(sumOf(rest)))
	//
	return inner, rhs, true
}

// Flatten an expression into its top-level additive terms, tracking signs
// through subtraction and negation.
func additiveTerms(e expr.Expr, negated bool, acc []signedTerm) []signedTerm {
	if c, ok := e.(*expr.Compound); ok {
		switch c.Op {
		case expr.ADD:
			for _, arg := range c.Args {
				acc = additiveTerms(arg, negated, acc)
			}
			//
			return acc
		case expr.SUB:
			acc = additiveTerms(c.Args[0], negated, acc)
			return additiveTerms(c.Args[1], !negated, acc)
		case expr.NEG:
			return additiveTerms(c.Args[0], !negated, acc)
		}
	}
	//
	return append(acc, signedTerm{e, negated})
}

// View a signed term as a logarithm, returning the term it contributes to
// the combined logarithm's argument: log(f) contributes f, k*log(f)
// contributes f^k, and a negative sign inverts the exponent.
func logArgument(st signedTerm) (expr.Expr, bool) {
	var (
		coeff *expr.Constant
		log   *expr.Compound
	)
	//
	if l := expr.IsCompound(st.term, expr.LOG); l != nil {
		log = l
	} else if product := expr.IsCompound(st.term, expr.MUL); product != nil && len(product.Args) == 2 {
		coeff = expr.IsConstant(product.Args[0])
		// A non-constant multiplier cannot lift into the exponent.
		if coeff != nil {
			log = expr.IsCompound(product.Args[1], expr.LOG)
		}
	}
	//
	if log == nil {
		return nil, false
	}
	//
	exponent := expr.One
	//
	if coeff != nil {
		if !coeff.IsExact() || !coeff.IsInteger() {
			return nil, false
		}
		//
		exponent = coeff
	}
	//
	if st.negated {
		exponent = exponent.Neg()
	}
	//
	if exponent.IsOne() {
		return log.Args[0], true
	}
	//
	return expr.Power(log.Args[0], exponent), true
}
