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
	"errors"
	"slices"

	"github.com/kettleby/go-algebra/pkg/expr"
	"github.com/kettleby/go-algebra/pkg/util/array"
)

// ErrRatioNotMet signals that simplification could not reach the requested
// compression ratio.  This is an expected, recoverable outcome: the caller
// receives no partial result and may fall back to the original term.
var ErrRatioNotMet = errors.New("simplification ratio not met")

// DefaultRatio bounds the size of a simplified term relative to its input.
// The default is permissive enough to allow expansion followed by
// contraction within a single call.
const DefaultRatio = 4.0

// DefaultMaxPasses bounds the number of whole-tree rewriting passes, as an
// escape hatch against non-terminating rule interaction.
const DefaultMaxPasses = 64

// Options configures a simplification run.
type Options struct {
	// Ratio bounds size(result) relative to size(input).
	Ratio float64
	// MaxPasses bounds the engine's whole-tree passes.
	MaxPasses uint
}

// Option mutates simplification options.
type Option func(*Options)

// WithRatio overrides the default compression ratio.
func WithRatio(ratio float64) Option {
	return func(o *Options) { o.Ratio = ratio }
}

// WithMaxPasses overrides the default pass budget.
func WithMaxPasses(passes uint) Option {
	return func(o *Options) { o.MaxPasses = passes }
}

// The simplification rule set.  Subtraction, negation and division are
// desugared away before these rules run, so cancellation laws need only
// concern sums, products and powers.
var simplifyRules = []Rule{
	NewFuncRule("flatten", flattenNode),
	NewFuncRule("fold-constants", foldNode),
	NewFuncRule("collect-products", collectProductsNode),
	NewFuncRule("collect-terms", collectTermsNode),
	NewRule("pow-zero",
		Apply(expr.POW, Any("x"), Lit(expr.Zero)),
		func(binds Bindings) bool {
			// Sound unless the base is provably zero; a non-constant base is
			// taken as non-zero.
			return expr.IsConstant(binds["x"]) == nil
		},
		func(binds Bindings) expr.Expr { return expr.One }),
	NewRule("pow-one",
		Apply(expr.POW, Any("x"), Lit(expr.One)), nil,
		func(binds Bindings) expr.Expr { return binds["x"] }),
	NewRule("pow-pow",
		Apply(expr.POW, Apply(expr.POW, Any("x"), Num("m")), Num("n")),
		func(binds Bindings) bool {
			return exactInteger(binds["m"]) && exactInteger(binds["n"])
		},
		func(binds Bindings) expr.Expr {
			var (
				m = expr.IsConstant(binds["m"])
				n = expr.IsConstant(binds["n"])
			)
			//
			return expr.Power(binds["x"], m.Mul(n))
		}),
	NewRule("log-exp",
		Apply(expr.LOG, Apply(expr.EXP, Any("x"))), nil,
		func(binds Bindings) expr.Expr { return binds["x"] }),
	NewRule("exp-log",
		Apply(expr.EXP, Apply(expr.LOG, Any("x"))), nil,
		func(binds Bindings) expr.Expr { return binds["x"] }),
	NewRule("abs-abs",
		Apply(expr.ABS, Apply(expr.ABS, Any("x"))), nil,
		func(binds Bindings) expr.Expr { return expr.Abs(binds["x"]) }),
	NewFuncRule("sort-operands", sortOperandsNode),
}

// Simplify applies the simplification rule set (identity and annihilator
// laws, inverse cancellation, cross-term cancellation, flattening and
// regrouping of associative/commutative chains) to a fixpoint.  The result
// is guaranteed to satisfy size(result) <= ratio*size(input); otherwise
// ErrRatioNotMet is returned and no partial result is produced.  On success,
// Simplify is idempotent.
func Simplify(e expr.Expr, opts ...Option) (expr.Expr, error) {
	options := Options{Ratio: DefaultRatio, MaxPasses: DefaultMaxPasses}
	//
	for _, opt := range opts {
		opt(&options)
	}
	//
	var (
		engine           = NewEngine("simplify", options.MaxPasses, simplifyRules...)
		size             = e.Size()
		reduced, reached = engine.Rewrite(desugar(e))
	)
	//
	if !reached {
		return nil, ErrRatioNotMet
	}
	//
	result := resugar(reduced)
	//
	if float64(result.Size()) > options.Ratio*float64(size) {
		return nil, ErrRatioNotMet
	}
	//
	return result, nil
}

// Desugar subtraction, negation and division into their additive and
// multiplicative forms, so that collection and cancellation see a uniform
// representation.
func desugar(e expr.Expr) expr.Expr {
	c, ok := e.(*expr.Compound)
	if !ok {
		if v, ok := e.(*expr.Vector); ok {
			return &expr.Vector{Elements: array.Map(v.Elements, desugar)}
		}
		//
		return e
	}
	//
	args := make([]expr.Expr, len(c.Args))
	for i, arg := range c.Args {
		args[i] = desugar(arg)
	}
	//
	switch c.Op {
	case expr.SUB:
		return expr.Sum(args[0], expr.Product(expr.MinusOne, args[1]))
	case expr.NEG:
		return expr.Product(expr.MinusOne, args[0])
	case expr.DIV:
		return expr.Product(args[0], expr.Power(args[1], expr.MinusOne))
	default:
		return &expr.Compound{Op: c.Op, Args: args}
	}
}

// Collect repeated bases within a product into powers: x*x becomes x^2, and
// a^m * a^n becomes a^(m+n).
func collectProductsNode(e expr.Expr) (expr.Expr, bool) {
	product := expr.IsCompound(e, expr.MUL)
	if product == nil {
		return e, false
	}
	//
	type member struct {
		exponent expr.Expr
		original expr.Expr
	}
	//
	type group struct {
		base    expr.Expr
		members []member
	}
	//
	var (
		order     []string
		groups    = make(map[string]*group)
		constants []expr.Expr
		collected = false
	)
	//
	for _, arg := range product.Args {
		if expr.IsConstant(arg) != nil {
			constants = append(constants, arg)
			continue
		}
		//
		var (
			base     = arg
			exponent expr.Expr = expr.One
		)
		//
		if pow := expr.IsCompound(arg, expr.POW); pow != nil {
			base, exponent = pow.Args[0], pow.Args[1]
		}
		//
		key := expr.String(base)
		//
		if g, ok := groups[key]; ok {
			g.members = append(g.members, member{exponent, arg})
			collected = true
		} else {
			groups[key] = &group{base, []member{{exponent, arg}}}
			order = append(order, key)
		}
	}
	//
	if !collected {
		return e, false
	}
	// Rebuild, merging each repeated base into a single power.
	factors := slices.Clone(constants)
	//
	for _, key := range order {
		g := groups[key]
		//
		if len(g.members) == 1 {
			factors = append(factors, g.members[0].original)
			continue
		}
		//
		exponents := make([]expr.Expr, len(g.members))
		for i, m := range g.members {
			exponents[i] = m.exponent
		}
		//
		factors = append(factors, expr.Power(g.base, expr.Sum(exponents...)))
	}
	//
	return productOf(factors), true
}

// Collect like terms within a sum: x + 2x becomes 3x, and terms whose
// numeric coefficients cancel disappear.
func collectTermsNode(e expr.Expr) (expr.Expr, bool) {
	sum := expr.IsCompound(e, expr.ADD)
	if sum == nil {
		return e, false
	}
	//
	type group struct {
		factor expr.Expr
		coeff  *expr.Constant
		count  uint
	}
	//
	var (
		order     []string
		groups    = make(map[string]*group)
		collected = false
	)
	//
	for _, term := range sum.Args {
		coeff, factor := splitCoefficient(term)
		//
		var key string
		if factor != nil {
			key = expr.String(factor)
		}
		//
		if g, ok := groups[key]; ok {
			g.coeff = g.coeff.Add(coeff)
			g.count++
			collected = true
		} else {
			groups[key] = &group{factor, coeff, 1}
			order = append(order, key)
		}
	}
	//
	if !collected {
		return e, false
	}
	// Rebuild one term per distinct factor.
	var terms []expr.Expr
	//
	for _, key := range order {
		g := groups[key]
		//
		switch {
		case g.factor == nil:
			// Pure constant group.
			if !g.coeff.IsZero() {
				terms = append(terms, g.coeff)
			}
		case g.coeff.IsZero():
			// Cancelled.
		case g.coeff.IsOne():
			terms = append(terms, g.factor)
		default:
			terms = append(terms, scaleBy(g.coeff, g.factor))
		}
	}
	//
	return sumOf(terms), true
}

// Split a term into its numeric coefficient and remaining factor part.  A
// pure constant yields a nil factor.
func splitCoefficient(term expr.Expr) (*expr.Constant, expr.Expr) {
	if c := expr.IsConstant(term); c != nil {
		return c, nil
	}
	//
	product := expr.IsCompound(term, expr.MUL)
	if product == nil {
		return expr.One, term
	}
	//
	var (
		coeff   = expr.One
		factors []expr.Expr
	)
	//
	for _, arg := range product.Args {
		if c := expr.IsConstant(arg); c != nil {
			coeff = coeff.Mul(c)
		} else {
			factors = append(factors, arg)
		}
	}
	//
	if len(factors) == 0 {
		return coeff, nil
	}
	//
	return coeff, productOf(factors)
}

func scaleBy(coeff *expr.Constant, factor expr.Expr) expr.Expr {
	if product := expr.IsCompound(factor, expr.MUL); product != nil {
		return expr.Product(array.Prepend[expr.Expr](coeff, product.Args)...)
	}
	//
	return expr.Product(coeff, factor)
}

// Sort the operand list of a commutative operator into canonical order.
func sortOperandsNode(e expr.Expr) (expr.Expr, bool) {
	c, ok := e.(*expr.Compound)
	if !ok || !c.Op.Info().Commutative {
		return e, false
	}
	//
	if slices.IsSortedFunc(c.Args, expr.Cmp) {
		return e, false
	}
	//
	args := slices.Clone(c.Args)
	slices.SortStableFunc(args, expr.Cmp)
	//
	return &expr.Compound{Op: c.Op, Args: args}, true
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

func exactInteger(e expr.Expr) bool {
	c := expr.IsConstant(e)
	return c != nil && c.IsExact() && c.IsInteger()
}
