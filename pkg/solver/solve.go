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
	"fmt"
	"math"

	log "github.com/sirupsen/logrus"

	"github.com/kettleby/go-algebra/pkg/expr"
	"github.com/kettleby/go-algebra/pkg/poly"
	"github.com/kettleby/go-algebra/pkg/rewrite"
)

// ErrUnsolvable signals that no strategy applies to the system.  This says
// nothing about whether solutions exist, only that they were not found.
var ErrUnsolvable = errors.New("equation cannot be solved")

// Absolute tolerance below which an approximate residue counts as zero
// during candidate verification.
const verifyTolerance = 1e-9

// Bound on strategy recursion (e.g. an equation re-entered after eliminating
// logarithms), as an escape hatch against looping transformations.
const maxStrategyDepth = 8

// Solver solves systems of equations.  It carries a monotone counter from
// which placeholder symbols for underdetermined systems are drawn, so that
// placeholders never collide across calls on the same solver.
type Solver struct {
	fresh uint
}

// NewSolver constructs a fresh solver.
func NewSolver() *Solver { return &Solver{} }

// Solve a system of equations with a throwaway solver.
func Solve(eqs []*expr.Compound, unknowns ...string) (SolutionSet, error) {
	return NewSolver().Solve(eqs, unknowns...)
}

// Mint a placeholder symbol name.
func (p *Solver) freshName() string {
	name := fmt.Sprintf("_%d", p.fresh)
	p.fresh++
	//
	return name
}

// Solve determines the values of the given unknowns under which every
// equation holds.  Equations satisfied by construction are discarded; an
// equation which reduces to a false numeric statement makes the whole system
// inconsistent (an empty solution set, not an error).  ErrUnsolvable is
// returned when the system falls outside every strategy.
func (p *Solver) Solve(eqs []*expr.Compound, unknowns ...string) (SolutionSet, error) {
	remaining := make([]*expr.Compound, 0, len(eqs))
	//
	for _, eq := range eqs {
		// Expansion catches tautologies which simplification alone cannot
		// cancel, such as x+1 = 1+x.
		diff := simplified(rewrite.MultiplyOut(expr.Subtract(eq.Lhs(), eq.Rhs())))
		//
		if !containsAny(diff, unknowns) {
			if c := expr.IsConstant(diff); c != nil {
				if c.IsZero() {
					// Holds regardless of the unknowns.
					continue
				}
				// A false numeric statement.
				return NoSolutions(), nil
			}
			// Residue over symbols we are not solving for.
			return SolutionSet{}, ErrUnsolvable
		}
		//
		remaining = append(remaining, simplifyEquation(eq))
	}
	//
	if len(remaining) == 0 {
		return AllSolutions(), nil
	}
	// Fast path: simultaneous linear equations with numeric coefficients.
	if rows, ok := extractLinearSystem(remaining, unknowns); ok {
		log.Debugf("solving %d equation(s) in %d unknown(s) by elimination", len(rows), len(unknowns))
		return p.solveLinear(rows, unknowns), nil
	}
	//
	solutions, err := p.solveNonlinear(remaining, unknowns)
	if err != nil {
		return SolutionSet{}, err
	}
	// Discard candidates refuted by back-substitution into the originals.
	if !solutions.All {
		solutions.Bindings = p.verified(eqs, solutions.Bindings)
	}
	//
	return solutions, nil
}

// Solve a non-linear system by isolating one unknown from one equation,
// substituting each of its candidate values into the rest, and recursing on
// the remaining unknowns.
func (p *Solver) solveNonlinear(eqs []*expr.Compound, unknowns []string) (SolutionSet, error) {
	for i, eq := range eqs {
		for _, unknown := range unknowns {
			if !expr.Contains(eq, unknown) {
				continue
			}
			//
			candidates, all, err := p.solveSingle(unknown, eq, 0)
			if err != nil || all {
				// Try another pivot.
				continue
			}
			//
			var (
				rest   = withoutIndex(eqs, i)
				others = without(unknowns, unknown)
			)
			//
			return p.substituteCandidates(unknown, candidates, rest, others)
		}
	}
	//
	return SolutionSet{}, ErrUnsolvable
}

// Fold each candidate value for the isolated unknown through the remaining
// system, combining the resulting bindings.
func (p *Solver) substituteCandidates(unknown string, candidates []expr.Expr, eqs []*expr.Compound,
	others []string) (SolutionSet, error) {
	//
	var bindings []Binding
	//
	for _, candidate := range candidates {
		env := map[string]expr.Expr{unknown: candidate}
		substituted := substituteInto(eqs, env)
		// With no unknowns left, the remaining equations are pure checks on
		// the candidate.
		if len(others) == 0 {
			if residueHolds(substituted) {
				bindings = append(bindings, Binding{unknown: candidate})
			}
			//
			continue
		}
		//
		sub, err := p.Solve(substituted, others...)
		if err != nil {
			return SolutionSet{}, err
		}
		//
		if sub.All {
			// The rest of the system imposes nothing; the other unknowns
			// remain arbitrary.
			binding := make(Binding, len(others)+1)
			for _, other := range others {
				binding[other] = expr.NewSymbol(p.freshName())
			}
			// The candidate may itself mention the other unknowns, so rewrite
			// it over their placeholders.
			binding[unknown] = simplified(expr.Substitute(candidate, binding))
			//
			bindings = append(bindings, binding)
			continue
		}
		// Back-substitute each sub-solution into the candidate.
		for _, subBinding := range sub.Bindings {
			binding := make(Binding, len(subBinding)+1)
			for name, value := range subBinding {
				binding[name] = value
			}
			//
			binding[unknown] = simplified(expr.Substitute(candidate, subBinding))
			bindings = append(bindings, binding)
		}
	}
	//
	return Solutions(bindings...), nil
}

// Solve a single equation for a single unknown, producing candidate values.
// The boolean result indicates the equation holds for every value of the
// unknown.  Strategies are tried in order: polynomial normal form, syntactic
// rearrangement, logarithm elimination, and change of variable.
func (p *Solver) solveSingle(unknown string, eq *expr.Compound, depth int) ([]expr.Expr, bool, error) {
	if depth > maxStrategyDepth {
		return nil, false, ErrUnsolvable
	}
	//
	diff := simplified(expr.Subtract(eq.Lhs(), eq.Rhs()))
	//
	if !expr.Contains(diff, unknown) {
		if c := expr.IsConstant(diff); c != nil && c.IsZero() {
			return nil, true, nil
		}
		//
		return nil, false, nil
	}
	// Polynomial in the unknown.  This strategy precedes rearrangement since
	// it judges solvability (e.g. a negative discriminant) rather than
	// producing an uninterpreted root.
	if pnf, err := poly.NormalForm(unknown, diff); err == nil {
		log.Debugf("solving for %s as a degree %d polynomial", unknown, pnf.Degree())
		return p.solvePolynomial(pnf)
	}
	// Syntactic rearrangement applies once simplification has collapsed the
	// unknown into a single occurrence.
	if expr.Occurrences(diff, unknown) == 1 {
		neq := expr.Equation(diff, expr.Zero)
		//
		if branches, err := Rearrange(unknown, neq); err == nil {
			log.Debugf("solving for %s by rearrangement (%d branch(es))", unknown, len(branches))
			return branchValues(branches), false, nil
		}
	}
	// Combine logarithms and peel the resulting single log off.
	if inner, rhs, ok := eliminateLogs(unknown, diff); ok {
		log.Debugf("solving for %s by eliminating logarithms", unknown)
		return p.solveSingle(unknown, expr.Equation(inner, rhs), depth+1)
	}
	// Polynomial in a stand-in for the unknown.
	if pnf, subst, err := poly.Recognize(unknown, diff, p.freshName()); err == nil {
		log.Debugf("solving for %s by change of variable (%s)", unknown, subst.Variable)
		values, all, err := p.solvePolynomial(pnf)
		if err != nil || all {
			return nil, all, err
		}
		//
		return p.invertSubstitution(subst, values), false, nil
	}
	//
	return nil, false, ErrUnsolvable
}

// Candidate values from rearranged equations of the form unknown = term.
func branchValues(branches []*expr.Compound) []expr.Expr {
	values := make([]expr.Expr, 0, len(branches))
	//
	for _, branch := range branches {
		values = appendDistinct(values, simplified(branch.Rhs()))
	}
	//
	return values
}

// Solve p(x) = 0 from the polynomial normal form.  Degrees one and two admit
// closed forms over arbitrary coefficients; higher degrees require numeric
// coefficients and proceed by rational root search.
func (p *Solver) solvePolynomial(pnf *poly.Polynomial) ([]expr.Expr, bool, error) {
	switch pnf.Degree() {
	case 0:
		// Reachable via substitution recognition; the constant judgement.
		if pnf.IsZero() {
			return nil, true, nil
		}
		//
		return nil, false, nil
	case 1:
		value := simplified(expr.Divide(expr.Negate(pnf.Coefficient(0)), pnf.Coefficient(1)))
		return []expr.Expr{value}, false, nil
	case 2:
		return quadraticRoots(pnf.Coefficient(0), pnf.Coefficient(1), pnf.Coefficient(2)), false, nil
	}
	// Higher degree: exact numeric coefficients only.
	coeffs, ok := pnf.NumericCoefficients()
	if !ok {
		return nil, false, ErrUnsolvable
	}
	//
	roots, remainder := poly.RationalRoots(coeffs)
	// The deflated remainder must itself be solvable, else the candidate set
	// would be incomplete.
	var values []expr.Expr
	//
	switch len(remainder) {
	case 1:
		// Fully deflated.
	case 2:
		value := simplified(expr.Divide(expr.NewBigRat(remainder[0]).Neg(), expr.NewBigRat(remainder[1])))
		values = appendDistinct(values, value)
	case 3:
		quadratic := quadraticRoots(
			expr.NewBigRat(remainder[0]), expr.NewBigRat(remainder[1]), expr.NewBigRat(remainder[2]))
		//
		for _, value := range quadratic {
			values = appendDistinct(values, value)
		}
	default:
		return nil, false, ErrUnsolvable
	}
	//
	for _, root := range roots {
		values = appendDistinct(values, expr.NewBigRat(root))
	}
	//
	return values, false, nil
}

// Real roots of c2*x^2 + c1*x + c0 = 0 by the quadratic formula.  A provably
// negative discriminant yields no roots; a symbolic discriminant yields both
// formula branches.
func quadraticRoots(c0 expr.Expr, c1 expr.Expr, c2 expr.Expr) []expr.Expr {
	var (
		two          = expr.NewInt64(2)
		four         = expr.NewInt64(4)
		discriminant = simplified(expr.Subtract(expr.Power(c1, two), expr.Product(four, c2, c0)))
		denominator  = expr.Product(two, c2)
	)
	//
	if d := expr.IsConstant(discriminant); d != nil {
		if d.Sign() < 0 {
			return nil
		} else if d.IsZero() {
			value := simplified(expr.Divide(expr.Negate(c1), denominator))
			return []expr.Expr{value}
		}
	}
	//
	root := expr.Power(discriminant, expr.NewRat(1, 2))
	//
	return appendDistinct(
		[]expr.Expr{simplified(expr.Divide(expr.Sum(expr.Negate(c1), root), denominator))},
		simplified(expr.Divide(expr.Subtract(expr.Negate(c1), root), denominator)))
}

// Recover values of the original unknown from values of the stand-in.
func (p *Solver) invertSubstitution(subst *poly.Substitution, values []expr.Expr) []expr.Expr {
	var inverted []expr.Expr
	//
	for _, value := range values {
		constant := expr.IsConstant(value)
		//
		switch subst.Kind {
		case poly.SubstExponential:
			// u = base^x  ==>  x = log(u) / log(base); no real preimage for
			// u <= 0.
			if constant != nil && constant.Sign() <= 0 {
				continue
			}
			//
			x := simplified(expr.Divide(expr.Log(value), expr.Log(subst.Base)))
			inverted = appendDistinct(inverted, x)
		case poly.SubstPower:
			// u = x^d  ==>  x = u^(1/d), with a negative branch for even d.
			even := subst.Power%2 == 0
			//
			if even && constant != nil && constant.Sign() < 0 {
				continue
			}
			//
			root := simplified(expr.Power(value, expr.NewRat(1, subst.Power)))
			inverted = appendDistinct(inverted, root)
			//
			if even && !expr.Zero.Equal(root) {
				inverted = appendDistinct(inverted, simplified(expr.Negate(root)))
			}
		}
	}
	//
	return inverted
}

// Check candidate bindings against the original equations, discarding any
// which are numerically refuted.  Bindings which cannot be reduced to a
// numeric judgement are retained.
func (p *Solver) verified(eqs []*expr.Compound, bindings []Binding) []Binding {
	kept := make([]Binding, 0, len(bindings))
	//
	for _, binding := range bindings {
		if satisfiable(eqs, binding) {
			kept = append(kept, binding)
		}
	}
	//
	return kept
}

func satisfiable(eqs []*expr.Compound, binding Binding) bool {
	for _, eq := range eqs {
		var (
			diff    = expr.Subtract(eq.Lhs(), eq.Rhs())
			residue = expr.Evaluate(diff, binding)
		)
		//
		if refuted(residue) {
			return false
		}
	}
	//
	return true
}

// A residue refutes its candidate when it reduces to a provably non-zero
// number.  Approximate residues are measured against a tolerance, since
// irrational candidates round-trip through floats.
func refuted(residue expr.Expr) bool {
	c := expr.IsConstant(residue)
	//
	if c == nil {
		// One more attempt at reducing the residue.
		if s, err := rewrite.Simplify(residue); err == nil {
			c = expr.IsConstant(s)
		}
	}
	//
	if c == nil {
		return false
	} else if c.IsExact() {
		return !c.IsZero()
	}
	//
	return math.Abs(c.Float64()) > verifyTolerance
}

// Check equations containing no unknowns, as arise after substituting the
// final candidate: each must not be refuted.
func residueHolds(eqs []*expr.Compound) bool {
	for _, eq := range eqs {
		if refuted(simplified(expr.Subtract(eq.Lhs(), eq.Rhs()))) {
			return false
		}
	}
	//
	return true
}

// Simplify, falling back to plain constant folding when the compression
// ratio cannot be met.
func simplified(e expr.Expr) expr.Expr {
	if s, err := rewrite.Simplify(e); err == nil {
		return s
	}
	//
	return rewrite.EvaluateConstants(e)
}

func simplifyEquation(eq *expr.Compound) *expr.Compound {
	return expr.Equation(simplified(eq.Lhs()), simplified(eq.Rhs()))
}

func containsAny(e expr.Expr, names []string) bool {
	for _, name := range names {
		if expr.Contains(e, name) {
			return true
		}
	}
	//
	return false
}

func substituteInto(eqs []*expr.Compound, env map[string]expr.Expr) []*expr.Compound {
	neqs := make([]*expr.Compound, len(eqs))
	//
	for i, eq := range eqs {
		neqs[i] = expr.Equation(expr.Substitute(eq.Lhs(), env), expr.Substitute(eq.Rhs(), env))
	}
	//
	return neqs
}

func appendDistinct(values []expr.Expr, value expr.Expr) []expr.Expr {
	for _, v := range values {
		if v.Equal(value) {
			return values
		}
	}
	//
	return append(values, value)
}

func without(names []string, name string) []string {
	kept := make([]string, 0, len(names))
	//
	for _, n := range names {
		if n != name {
			kept = append(kept, n)
		}
	}
	//
	return kept
}

func withoutIndex(eqs []*expr.Compound, index int) []*expr.Compound {
	kept := make([]*expr.Compound, 0, len(eqs))
	//
	for i, eq := range eqs {
		if i != index {
			kept = append(kept, eq)
		}
	}
	//
	return kept
}
