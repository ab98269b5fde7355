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

// Package expr provides the term representation used throughout the engine.
// An expression is a constant, a symbol, a compound term (operator tag plus
// ordered operands) or a vector literal.  Expressions are immutable values:
// every transformation constructs new terms and never mutates shared
// sub-expressions in place.
package expr

import (
	"github.com/kettleby/go-algebra/pkg/sexp"
)

// Expr represents a symbolic term.  The concrete variants are *Constant,
// *Symbol, *Compound and *Vector.
type Expr interface {
	// Lisp converts this expression into an S-expression, for example so it
	// can be printed.
	Lisp() sexp.SExp
	// Equal determines whether this expression is structurally identical to
	// another.  Equality is order-sensitive, even for operands of commutative
	// operators; canonical ordering is the rewrite engine's concern, not raw
	// equality's.
	Equal(Expr) bool
	// Size returns the number of nodes in this expression tree.
	Size() uint
}

// IsConstant checks whether an arbitrary expression is a constant and, if so,
// returns it.
func IsConstant(e Expr) *Constant {
	if c, ok := e.(*Constant); ok {
		return c
	}
	//
	return nil
}

// IsSymbol checks whether an arbitrary expression is a symbol and, if so,
// returns it.
func IsSymbol(e Expr) *Symbol {
	if s, ok := e.(*Symbol); ok {
		return s
	}
	//
	return nil
}

// IsCompound checks whether an arbitrary expression is a compound term with
// the given operator and, if so, returns it.
func IsCompound(e Expr, op Op) *Compound {
	if c, ok := e.(*Compound); ok && c.Op == op {
		return c
	}
	//
	return nil
}

// IsNumeric checks whether an arbitrary expression is a numeric constant
// matching the given predicate.
func IsNumeric(e Expr, predicate func(*Constant) bool) bool {
	if c, ok := e.(*Constant); ok {
		return predicate(c)
	}
	//
	return false
}

// String renders an arbitrary expression via its S-expression form.
func String(e Expr) string {
	return e.Lisp().String()
}

func equalExprs(lhs []Expr, rhs []Expr) bool {
	if len(lhs) != len(rhs) {
		return false
	}
	//
	for i := range lhs {
		if !lhs[i].Equal(rhs[i]) {
			return false
		}
	}
	//
	return true
}

func sizeOfExprs(exprs []Expr) uint {
	size := uint(1)
	//
	for _, e := range exprs {
		size += e.Size()
	}
	//
	return size
}
