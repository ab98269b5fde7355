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
	"errors"

	"github.com/kettleby/go-algebra/pkg/expr"
)

var (
	// ErrNoOccurrence signals that the unknown does not occur in the
	// equation at all.
	ErrNoOccurrence = errors.New("unknown does not occur in equation")
	// ErrMultipleOccurrences signals that the unknown occurs more than once,
	// which puts the equation beyond purely syntactic rearrangement.
	ErrMultipleOccurrences = errors.New("unknown occurs more than once")
	// ErrNotInvertible signals that the unknown sits beneath an operator
	// with no inverse rule.
	ErrNotInvertible = errors.New("operator cannot be inverted")
)

// Rearrange isolates an unknown occurring exactly once in an equation, by
// repeatedly applying the inverse of the outermost operator surrounding it.
// The rearrangement is purely syntactic: no simplification is performed, and
// side conditions (such as a non-zero divisor) are not checked.  Inverting an
// even power or an absolute value forks the derivation, hence the result is
// a list of equations of the form unknown = term.
func Rearrange(unknown string, eq *expr.Compound) ([]*expr.Compound, error) {
	var (
		lhs = eq.Lhs()
		rhs = eq.Rhs()
	)
	//
	switch expr.Occurrences(eq, unknown) {
	case 0:
		return nil, ErrNoOccurrence
	case 1:
		// solvable syntactically
	default:
		return nil, ErrMultipleOccurrences
	}
	// Ensure the occurrence is on the left.
	if expr.Contains(rhs, unknown) {
		lhs, rhs = rhs, lhs
	}
	//
	return peel(unknown, lhs, rhs)
}

// Peel the outermost operator off the side containing the unknown, moving
// its inverse to the other side, until the unknown stands alone.
func peel(unknown string, lhs expr.Expr, rhs expr.Expr) ([]*expr.Compound, error) {
	if sym, ok := lhs.(*expr.Symbol); ok && sym.Name == unknown {
		return []*expr.Compound{expr.Equation(sym, rhs)}, nil
	}
	//
	c, ok := lhs.(*expr.Compound)
	if !ok {
		return nil, ErrNotInvertible
	}
	//
	switch c.Op {
	case expr.ADD:
		inner, rest := splitOn(unknown, c.Args)
		return peel(unknown, inner, expr.Subtract(rhs, sumOf(rest)))
	case expr.SUB:
		if expr.Contains(c.Args[0], unknown) {
			return peel(unknown, c.Args[0], expr.Sum(rhs, c.Args[1]))
		}
		//
		return peel(unknown, c.Args[1], expr.Subtract(c.Args[0], rhs))
	case expr.NEG:
		return peel(unknown, c.Args[0], expr.Negate(rhs))
	case expr.MUL:
		inner, rest := splitOn(unknown, c.Args)
		return peel(unknown, inner, expr.Divide(rhs, productOf(rest)))
	case expr.DIV:
		if expr.Contains(c.Args[0], unknown) {
			return peel(unknown, c.Args[0], expr.Product(rhs, c.Args[1]))
		}
		// a / f(x) = r  ==>  f(x) = a / r
		return peel(unknown, c.Args[1], expr.Divide(c.Args[0], rhs))
	case expr.POW:
		return peelPower(unknown, c, rhs)
	case expr.LOG:
		return peel(unknown, c.Args[0], expr.Exp(rhs))
	case expr.EXP:
		return peel(unknown, c.Args[0], expr.Log(rhs))
	case expr.ABS:
		// abs forks: f(x) = r or f(x) = -r.
		positive, err := peel(unknown, c.Args[0], rhs)
		if err != nil {
			return nil, err
		}
		//
		negative, err := peel(unknown, c.Args[0], expr.Negate(rhs))
		if err != nil {
			return nil, err
		}
		//
		return append(positive, negative...), nil
	}
	//
	return nil, ErrNotInvertible
}

// Invert a power, distinguishing the unknown-in-base and unknown-in-exponent
// cases.
func peelPower(unknown string, pow *expr.Compound, rhs expr.Expr) ([]*expr.Compound, error) {
	var (
		base     = pow.Args[0]
		exponent = pow.Args[1]
	)
	// Unknown in the exponent: base^f(x) = r  ==>  f(x) = log(r)/log(base).
	if expr.Contains(exponent, unknown) {
		return peel(unknown, exponent, expr.Divide(expr.Log(rhs), expr.Log(base)))
	}
	// Unknown in the base: take the n-th root.  An exact even integer
	// exponent forks the derivation into a positive and a negative root.
	if c := expr.IsConstant(exponent); c != nil && c.IsExact() && c.IsInteger() {
		if n, ok := c.AsInt64(); ok && n != 0 {
			root := expr.Power(rhs, expr.NewRat(1, n))
			//
			if n%2 != 0 {
				return peel(unknown, base, root)
			}
			//
			positive, err := peel(unknown, base, root)
			if err != nil {
				return nil, err
			}
			//
			negative, err := peel(unknown, base, expr.Negate(root))
			if err != nil {
				return nil, err
			}
			//
			return append(positive, negative...), nil
		}
	}
	// General exponent: f(x)^g = r  ==>  f(x) = r^(1/g).
	return peel(unknown, base, expr.Power(rhs, expr.Divide(expr.One, exponent)))
}

// Split a variadic operand list into the single operand containing the
// unknown and the remaining operands.
func splitOn(unknown string, args []expr.Expr) (expr.Expr, []expr.Expr) {
	var (
		inner expr.Expr
		rest  = make([]expr.Expr, 0, len(args)-1)
	)
	//
	for _, arg := range args {
		if inner == nil && expr.Contains(arg, unknown) {
			inner = arg
		} else {
			rest = append(rest, arg)
		}
	}
	//
	return inner, rest
}

// Construct a sum, collapsing the empty and singleton cases.
func sumOf(terms []expr.Expr) expr.Expr {
	switch len(terms) {
	case 0:
		return expr.Zero
	case 1:
		return terms[0]
	default:
		return expr.Sum(terms...)
	}
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
