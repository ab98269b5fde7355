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
	"github.com/kettleby/go-algebra/pkg/expr"
)

// Smart constructors which apply identity and annihilator laws on the fly,
// so that derivative rules do not litter their results with 0 and 1 operands.

func addOf(terms []expr.Expr) expr.Expr {
	switch len(terms) {
	case 0:
		return expr.Zero
	case 1:
		return terms[0]
	default:
		return expr.Sum(terms...)
	}
}

func mulOf(factors ...expr.Expr) expr.Expr {
	var kept []expr.Expr
	//
	for _, f := range factors {
		if expr.Zero.Equal(f) {
			return expr.Zero
		} else if expr.One.Equal(f) {
			continue
		}
		//
		kept = append(kept, f)
	}
	//
	switch len(kept) {
	case 0:
		return expr.One
	case 1:
		return kept[0]
	default:
		return expr.Product(kept...)
	}
}

func subOf(lhs expr.Expr, rhs expr.Expr) expr.Expr {
	if expr.Zero.Equal(rhs) {
		return lhs
	} else if expr.Zero.Equal(lhs) {
		return negOf(rhs)
	}
	//
	return expr.Subtract(lhs, rhs)
}

func negOf(e expr.Expr) expr.Expr {
	if c := expr.IsConstant(e); c != nil {
		return c.Neg()
	}
	//
	return expr.Negate(e)
}

func divOf(numerator expr.Expr, denominator expr.Expr) expr.Expr {
	if expr.Zero.Equal(numerator) {
		return expr.Zero
	} else if expr.One.Equal(denominator) {
		return numerator
	}
	//
	return expr.Divide(numerator, denominator)
}

func powOf(base expr.Expr, exponent expr.Expr) expr.Expr {
	if expr.One.Equal(exponent) {
		return base
	} else if expr.Zero.Equal(exponent) {
		return expr.One
	}
	//
	return expr.Power(base, exponent)
}
