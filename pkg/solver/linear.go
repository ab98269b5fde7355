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
	"math/big"

	"github.com/kettleby/go-algebra/pkg/expr"
	"github.com/kettleby/go-algebra/pkg/poly"
	"github.com/kettleby/go-algebra/pkg/rewrite"
)

// A linear equation over the unknowns: coeffs[i]*x_i + ... + constant = 0,
// with every coefficient an exact rational.
type linearRow struct {
	coeffs   []*big.Rat
	constant *big.Rat
}

// Attempt to view every equation as linear in every unknown with exact
// numeric coefficients.  Returns false as soon as any equation falls outside
// that fragment.
func extractLinearSystem(eqs []*expr.Compound, unknowns []string) ([]linearRow, bool) {
	rows := make([]linearRow, len(eqs))
	//
	for i, eq := range eqs {
		row, ok := extractLinearRow(eq, unknowns)
		if !ok {
			return nil, false
		}
		//
		rows[i] = row
	}
	//
	return rows, true
}

// Extract exact coefficients of each unknown from lhs - rhs, by repeatedly
// taking the degree-one polynomial view in each unknown and descending into
// its constant coefficient.
func extractLinearRow(eq *expr.Compound, unknowns []string) (linearRow, bool) {
	var (
		row       = linearRow{coeffs: make([]*big.Rat, len(unknowns))}
		remainder = expr.Expr(expr.Subtract(eq.Lhs(), eq.Rhs()))
	)
	//
	for i, unknown := range unknowns {
		p, err := poly.NormalForm(unknown, remainder)
		if err != nil || p.Degree() > 1 {
			return linearRow{}, false
		}
		//
		coeff := expr.IsConstant(p.Coefficient(1))
		if coeff == nil || !coeff.IsExact() {
			// Non-numeric coefficient, e.g. another unknown (a product term
			// like x*y) or a symbolic parameter.
			return linearRow{}, false
		}
		//
		row.coeffs[i] = coeff.Rat()
		remainder = p.Coefficient(0)
	}
	// What remains must be free of all unknowns and exactly numeric.
	constant := expr.IsConstant(remainder)
	if constant == nil || !constant.IsExact() {
		return linearRow{}, false
	}
	//
	row.constant = constant.Rat()
	//
	return row, true
}

// Solve a linear system by Gaussian elimination over exact rationals.  A
// unique solution yields one binding; an underdetermined system binds free
// unknowns to fresh placeholder symbols and pivots to terms over them; an
// inconsistent system yields the empty set.
func (p *Solver) solveLinear(rows []linearRow, unknowns []string) SolutionSet {
	var (
		ncols = len(unknowns)
		// pivots[c] is the row which eliminates column c, or -1.
		pivots = make([]int, ncols)
		rank   = 0
	)
	//
	for c := range pivots {
		pivots[c] = -1
	}
	// Forward elimination.
	for c := 0; c < ncols && rank < len(rows); c++ {
		pivot := -1
		//
		for r := rank; r < len(rows); r++ {
			if rows[r].coeffs[c].Sign() != 0 {
				pivot = r
				break
			}
		}
		//
		if pivot < 0 {
			continue
		}
		//
		rows[rank], rows[pivot] = rows[pivot], rows[rank]
		pivots[c] = rank
		// Eliminate the column below the pivot.
		for r := rank + 1; r < len(rows); r++ {
			eliminate(&rows[r], &rows[rank], c)
		}
		//
		rank++
	}
	// Rows reduced to 0 = k with k non-zero witness inconsistency.
	for _, row := range rows[rank:] {
		if row.constant.Sign() != 0 {
			return NoSolutions()
		}
	}
	// Back substitution, right to left.  Free columns receive fresh
	// placeholder symbols.
	values := make([]expr.Expr, ncols)
	//
	for c := ncols - 1; c >= 0; c-- {
		if pivots[c] < 0 {
			values[c] = expr.NewSymbol(p.freshName())
			continue
		}
		//
		values[c] = backSubstitute(rows[pivots[c]], c, values)
	}
	//
	binding := make(Binding, ncols)
	for i, unknown := range unknowns {
		binding[unknown] = values[i]
	}
	//
	return Solutions(binding)
}

// Subtract a multiple of the pivot row such that column c becomes zero.
func eliminate(row *linearRow, pivot *linearRow, c int) {
	if row.coeffs[c].Sign() == 0 {
		return
	}
	//
	factor := new(big.Rat).Quo(row.coeffs[c], pivot.coeffs[c])
	//
	for i := range row.coeffs {
		scaled := new(big.Rat).Mul(factor, pivot.coeffs[i])
		row.coeffs[i] = new(big.Rat).Sub(row.coeffs[i], scaled)
	}
	//
	scaled := new(big.Rat).Mul(factor, pivot.constant)
	row.constant = new(big.Rat).Sub(row.constant, scaled)
}

// Express the pivot variable of a row in terms of the already-determined
// values to its right: x_c = (-k - sum c_j * v_j) / c_c.
func backSubstitute(row linearRow, c int, values []expr.Expr) expr.Expr {
	var (
		terms []expr.Expr
		pivot = row.coeffs[c]
	)
	//
	if row.constant.Sign() != 0 {
		k := new(big.Rat).Quo(row.constant, pivot)
		terms = append(terms, expr.NewBigRat(k.Neg(k)))
	}
	//
	for j := c + 1; j < len(values); j++ {
		if row.coeffs[j].Sign() == 0 {
			continue
		}
		//
		factor := new(big.Rat).Quo(row.coeffs[j], pivot)
		terms = append(terms, expr.Product(expr.NewBigRat(factor.Neg(factor)), values[j]))
	}
	//
	return rewrite.EvaluateConstants(sumOf(terms))
}
