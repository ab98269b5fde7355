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
package expr

import (
	"fmt"

	"github.com/kettleby/go-algebra/pkg/sexp"
)

// Compound represents the application of an operator to an ordered sequence
// of operand expressions.  Operand order is significant for display even when
// the operator is commutative.  Constructors enforce the operator's declared
// arity; violating it is a programmer error and panics.
type Compound struct {
	Op   Op
	Args []Expr
}

// NewCompound constructs a compound term, checking the operator's declared
// arity.
func NewCompound(op Op, args ...Expr) *Compound {
	var (
		info  = op.Info()
		arity = uint(len(args))
	)
	//
	if arity < info.MinArity || arity > info.MaxArity {
		panic(fmt.Sprintf("operator %s applied to %d operands", info.Name, arity))
	}
	//
	return &Compound{op, args}
}

// Sum constructs a variadic addition.
func Sum(args ...Expr) *Compound { return NewCompound(ADD, args...) }

// Product constructs a variadic multiplication.
func Product(args ...Expr) *Compound { return NewCompound(MUL, args...) }

// Power constructs an exponentiation.
func Power(base Expr, exponent Expr) *Compound { return NewCompound(POW, base, exponent) }

// Subtract constructs a binary subtraction.
func Subtract(lhs Expr, rhs Expr) *Compound { return NewCompound(SUB, lhs, rhs) }

// Divide constructs a binary division.
func Divide(num Expr, den Expr) *Compound { return NewCompound(DIV, num, den) }

// Negate constructs a unary negation.
func Negate(arg Expr) *Compound { return NewCompound(NEG, arg) }

// Log constructs a natural logarithm.
func Log(arg Expr) *Compound { return NewCompound(LOG, arg) }

// Exp constructs a natural exponential.
func Exp(arg Expr) *Compound { return NewCompound(EXP, arg) }

// Abs constructs an absolute value.
func Abs(arg Expr) *Compound { return NewCompound(ABS, arg) }

// Equation constructs an equality between a left-hand and right-hand side.
func Equation(lhs Expr, rhs Expr) *Compound { return NewCompound(EQ, lhs, rhs) }

// Lhs returns the left-hand side of an equality.
func (p *Compound) Lhs() Expr {
	if p.Op != EQ {
		panic("left-hand side of non-equation")
	}
	//
	return p.Args[0]
}

// Rhs returns the right-hand side of an equality.
func (p *Compound) Rhs() Expr {
	if p.Op != EQ {
		panic("right-hand side of non-equation")
	}
	//
	return p.Args[1]
}

// Equal implementation for the Expr interface.
func (p *Compound) Equal(other Expr) bool {
	if o, ok := other.(*Compound); ok {
		return p.Op == o.Op && equalExprs(p.Args, o.Args)
	}
	//
	return false
}

// Lisp implementation for the Expr interface.
func (p *Compound) Lisp() sexp.SExp {
	elements := make([]sexp.SExp, 1+len(p.Args))
	elements[0] = sexp.NewSymbol(p.Op.String())
	// Translate arguments
	for i, arg := range p.Args {
		elements[i+1] = arg.Lisp()
	}
	// Done
	return sexp.NewList(elements)
}

// Size implementation for the Expr interface.
func (p *Compound) Size() uint { return sizeOfExprs(p.Args) }

func (p *Compound) String() string { return p.Lisp().String() }
