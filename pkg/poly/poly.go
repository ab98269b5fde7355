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

// Package poly converts terms into a canonical recursive univariate
// polynomial form: a polynomial in one designated main variable whose
// coefficients may themselves be arbitrary sub-expressions not containing
// that variable.
package poly

import (
	"errors"
	"math/big"

	"github.com/kettleby/go-algebra/pkg/expr"
	"github.com/kettleby/go-algebra/pkg/rewrite"
)

// ErrNotPolynomial signals that the main variable occurs in a way that is
// irreducible to non-negative integer powers.  This is an expected,
// recoverable outcome.
var ErrNotPolynomial = errors.New("not a polynomial")

// Bound on the degree accepted during normalisation, as an escape hatch
// against pathological inputs like x^1000000.
const maxDegree = 512

// Polynomial is the canonical form: coefficients in ascending order of the
// power of the main variable, each free of that variable and individually
// simplified.  The zero polynomial has a single zero coefficient.
type Polynomial struct {
	variable string
	coeffs   []expr.Expr
}

// NormalForm converts a term into polynomial normal form with respect to a
// given main variable, or fails with ErrNotPolynomial.
func NormalForm(variable string, e expr.Expr) (*Polynomial, error) {
	// Multiply out first, so that only sums of products remain.
	coeffs, err := coefficientsOf(variable, rewrite.MultiplyOut(e))
	if err != nil {
		return nil, err
	}
	//
	return newPolynomial(variable, coeffs), nil
}

// Construct a polynomial from raw (possibly nil) ascending coefficients,
// simplifying each and trimming leading zeros.
func newPolynomial(variable string, coeffs []expr.Expr) *Polynomial {
	ncoeffs := make([]expr.Expr, len(coeffs))
	//
	for i, c := range coeffs {
		if c == nil {
			ncoeffs[i] = expr.Zero
		} else if s, err := rewrite.Simplify(c); err == nil {
			ncoeffs[i] = s
		} else {
			ncoeffs[i] = rewrite.EvaluateConstants(c)
		}
	}
	// Trim zero leading coefficients.
	last := 0
	//
	for i, c := range ncoeffs {
		if !expr.Zero.Equal(c) {
			last = i
		}
	}
	//
	return &Polynomial{variable, ncoeffs[:last+1]}
}

// Variable returns the main variable of this polynomial.
func (p *Polynomial) Variable() string { return p.variable }

// Degree of this polynomial.  The zero polynomial has degree zero.
func (p *Polynomial) Degree() int { return len(p.coeffs) - 1 }

// Coefficient of the k-th power of the main variable.
func (p *Polynomial) Coefficient(k int) expr.Expr {
	if k < len(p.coeffs) {
		return p.coeffs[k]
	}
	//
	return expr.Zero
}

// IsZero checks for the zero polynomial.
func (p *Polynomial) IsZero() bool {
	return len(p.coeffs) == 1 && expr.Zero.Equal(p.coeffs[0])
}

// NumericCoefficients returns the coefficients as exact rationals, provided
// every coefficient is an exact numeric constant.
func (p *Polynomial) NumericCoefficients() ([]*big.Rat, bool) {
	rats := make([]*big.Rat, len(p.coeffs))
	//
	for i, c := range p.coeffs {
		constant := expr.IsConstant(c)
		if constant == nil || !constant.IsExact() {
			return nil, false
		}
		//
		rats[i] = constant.Rat()
	}
	//
	return rats, true
}

// Expr reconstructs the canonical sum-of-power-terms form, ordered by
// ascending power of the main variable, each power appearing at most once.
func (p *Polynomial) Expr() expr.Expr {
	var (
		terms    []expr.Expr
		variable = expr.NewSymbol(p.variable)
	)
	//
	for k, coeff := range p.coeffs {
		if expr.Zero.Equal(coeff) {
			continue
		}
		//
		var power expr.Expr
		//
		switch k {
		case 0:
			terms = append(terms, coeff)
			continue
		case 1:
			power = variable
		default:
			power = expr.Power(variable, expr.NewInt64(int64(k)))
		}
		//
		if expr.One.Equal(coeff) {
			terms = append(terms, power)
		} else {
			terms = append(terms, expr.Product(coeff, power))
		}
	}
	//
	switch len(terms) {
	case 0:
		return expr.Zero
	case 1:
		return terms[0]
	default:
		return expr.Sum(terms...)
	}
}

// Compute ascending coefficients of a term viewed as a polynomial in the
// given variable.  Entries may be nil (absent powers) and are not yet
// simplified.
func coefficientsOf(variable string, e expr.Expr) ([]expr.Expr, error) {
	// A term free of the variable is a degree-zero coefficient, whatever its
	// structure.
	if !expr.Contains(e, variable) {
		return []expr.Expr{e}, nil
	}
	//
	switch t := e.(type) {
	case *expr.Symbol:
		return []expr.Expr{nil, expr.One}, nil
	case *expr.Compound:
		switch t.Op {
		case expr.ADD:
			return sumCoefficients(variable, t.Args)
		case expr.MUL:
			return productCoefficients(variable, t.Args)
		case expr.POW:
			return powerCoefficients(variable, t)
		case expr.SUB:
			return sumCoefficients(variable, []expr.Expr{t.Args[0], expr.Negate(t.Args[1])})
		case expr.NEG:
			return productCoefficients(variable, []expr.Expr{expr.MinusOne, t.Args[0]})
		case expr.DIV:
			if expr.Contains(t.Args[1], variable) {
				// Variable in the denominator.
				return nil, ErrNotPolynomial
			}
			// Scale the numerator's coefficients.
			coeffs, err := coefficientsOf(variable, t.Args[0])
			if err != nil {
				return nil, err
			}
			//
			return mapCoefficients(coeffs, func(c expr.Expr) expr.Expr {
				return expr.Divide(c, t.Args[1])
			}), nil
		}
	}
	// The variable occurs under an irreducible operator (log, abs, ...).
	return nil, ErrNotPolynomial
}

func sumCoefficients(variable string, terms []expr.Expr) ([]expr.Expr, error) {
	var coeffs []expr.Expr
	//
	for _, term := range terms {
		ith, err := coefficientsOf(variable, term)
		if err != nil {
			return nil, err
		}
		//
		coeffs = addCoefficients(coeffs, ith)
	}
	//
	return coeffs, nil
}

func productCoefficients(variable string, factors []expr.Expr) ([]expr.Expr, error) {
	coeffs := []expr.Expr{expr.One}
	//
	for _, factor := range factors {
		ith, err := coefficientsOf(variable, factor)
		if err != nil {
			return nil, err
		}
		//
		coeffs = convolve(coeffs, ith)
		//
		if len(coeffs) > maxDegree {
			return nil, ErrNotPolynomial
		}
	}
	//
	return coeffs, nil
}

func powerCoefficients(variable string, pow *expr.Compound) ([]expr.Expr, error) {
	var (
		base     = pow.Args[0]
		exponent = expr.IsConstant(pow.Args[1])
	)
	// The exponent must be a fixed non-negative integer; anything else
	// (including the variable occurring within the exponent) is handled, if
	// at all, by substitution recognition.
	if exponent == nil || !exponent.IsExact() {
		return nil, ErrNotPolynomial
	}
	//
	n, ok := exponent.AsInt64()
	if !ok || n < 0 || n > maxDegree {
		return nil, ErrNotPolynomial
	}
	//
	baseCoeffs, err := coefficientsOf(variable, base)
	if err != nil {
		return nil, err
	}
	//
	coeffs := []expr.Expr{expr.One}
	//
	for i := int64(0); i < n; i++ {
		coeffs = convolve(coeffs, baseCoeffs)
		//
		if len(coeffs) > maxDegree {
			return nil, ErrNotPolynomial
		}
	}
	//
	return coeffs, nil
}

// Pointwise addition of coefficient sequences, accumulating symbolic sums.
func addCoefficients(lhs []expr.Expr, rhs []expr.Expr) []expr.Expr {
	if len(rhs) > len(lhs) {
		lhs, rhs = rhs, lhs
	}
	//
	coeffs := make([]expr.Expr, len(lhs))
	copy(coeffs, lhs)
	//
	for i, c := range rhs {
		coeffs[i] = addTerm(coeffs[i], c)
	}
	//
	return coeffs
}

// Convolution of coefficient sequences (polynomial multiplication).
func convolve(lhs []expr.Expr, rhs []expr.Expr) []expr.Expr {
	coeffs := make([]expr.Expr, len(lhs)+len(rhs)-1)
	//
	for i, a := range lhs {
		for j, b := range rhs {
			if a == nil || b == nil {
				continue
			}
			//
			coeffs[i+j] = addTerm(coeffs[i+j], expr.Product(a, b))
		}
	}
	//
	return coeffs
}

func addTerm(acc expr.Expr, term expr.Expr) expr.Expr {
	if term == nil {
		return acc
	} else if acc == nil {
		return term
	}
	//
	return expr.Sum(acc, term)
}

func mapCoefficients(coeffs []expr.Expr, fn func(expr.Expr) expr.Expr) []expr.Expr {
	ncoeffs := make([]expr.Expr, len(coeffs))
	//
	for i, c := range coeffs {
		if c != nil {
			ncoeffs[i] = fn(c)
		}
	}
	//
	return ncoeffs
}
