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
	"cmp"
	"strings"
)

// Rank of each expression variant within the total order.
const (
	rankConstant = iota
	rankSymbol
	rankCompound
	rankVector
)

// Cmp imposes an arbitrary (but deterministic) total order on expressions:
// constants first (by value), then symbols (by name), then compound terms (by
// operator, then operands lexicographically), then vectors.  The rewrite
// engine uses this order to canonicalise operand sequences of commutative
// operators.
func Cmp(lhs Expr, rhs Expr) int {
	if c := cmp.Compare(rankOf(lhs), rankOf(rhs)); c != 0 {
		return c
	}
	//
	switch l := lhs.(type) {
	case *Constant:
		r := rhs.(*Constant)
		// Exact values order before approximate values of equal magnitude.
		if c := l.Cmp(r); c != 0 {
			return c
		}
		//
		return boolCmp(r.IsExact(), l.IsExact())
	case *Symbol:
		return strings.Compare(l.Name, rhs.(*Symbol).Name)
	case *Compound:
		r := rhs.(*Compound)
		//
		if c := cmp.Compare(l.Op, r.Op); c != 0 {
			return c
		}
		//
		return cmpExprs(l.Args, r.Args)
	case *Vector:
		return cmpExprs(l.Elements, rhs.(*Vector).Elements)
	}
	// Unreachable
	panic("unknown expression")
}

func cmpExprs(lhs []Expr, rhs []Expr) int {
	if c := cmp.Compare(len(lhs), len(rhs)); c != 0 {
		return c
	}
	//
	for i := range lhs {
		if c := Cmp(lhs[i], rhs[i]); c != 0 {
			return c
		}
	}
	//
	return 0
}

func rankOf(e Expr) int {
	switch e.(type) {
	case *Constant:
		return rankConstant
	case *Symbol:
		return rankSymbol
	case *Compound:
		return rankCompound
	default:
		return rankVector
	}
}

func boolCmp(lhs bool, rhs bool) int {
	if lhs == rhs {
		return 0
	} else if lhs {
		return 1
	}
	//
	return -1
}
