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
	"sort"
)

// Substitute replaces every free occurrence of the bound symbols within a
// given expression, returning a new expression.  The original is never
// modified.
func Substitute(e Expr, bindings map[string]Expr) Expr {
	switch t := e.(type) {
	case *Constant:
		return e
	case *Symbol:
		if binding, ok := bindings[t.Name]; ok {
			return binding
		}
		//
		return e
	case *Compound:
		return &Compound{t.Op, substituteAll(t.Args, bindings)}
	case *Vector:
		return &Vector{substituteAll(t.Elements, bindings)}
	}
	// Unreachable
	panic("unknown expression")
}

// SubstituteExpr replaces every occurrence of a given (arbitrary) target
// sub-expression with a replacement, returning a new expression.  Matching is
// structural and outermost-first.
func SubstituteExpr(e Expr, target Expr, replacement Expr) Expr {
	if e.Equal(target) {
		return replacement
	}
	//
	switch t := e.(type) {
	case *Compound:
		args := make([]Expr, len(t.Args))
		for i, arg := range t.Args {
			args[i] = SubstituteExpr(arg, target, replacement)
		}
		//
		return &Compound{t.Op, args}
	case *Vector:
		elements := make([]Expr, len(t.Elements))
		for i, el := range t.Elements {
			elements[i] = SubstituteExpr(el, target, replacement)
		}
		//
		return &Vector{elements}
	default:
		return e
	}
}

// Contains checks whether a given symbol occurs anywhere within a given
// expression.
func Contains(e Expr, name string) bool {
	return Occurrences(e, name) != 0
}

// Occurrences counts the free occurrences of a given symbol within a given
// expression.
func Occurrences(e Expr, name string) uint {
	switch t := e.(type) {
	case *Constant:
		return 0
	case *Symbol:
		if t.Name == name {
			return 1
		}
		//
		return 0
	case *Compound:
		return occurrencesOfAll(t.Args, name)
	case *Vector:
		return occurrencesOfAll(t.Elements, name)
	}
	// Unreachable
	panic("unknown expression")
}

// Symbols returns the distinct symbols occurring within a given expression,
// in lexicographic order.
func Symbols(e Expr) []string {
	seen := make(map[string]bool)
	collectSymbols(e, seen)
	//
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	//
	sort.Strings(names)
	//
	return names
}

func collectSymbols(e Expr, seen map[string]bool) {
	switch t := e.(type) {
	case *Symbol:
		seen[t.Name] = true
	case *Compound:
		for _, arg := range t.Args {
			collectSymbols(arg, seen)
		}
	case *Vector:
		for _, el := range t.Elements {
			collectSymbols(el, seen)
		}
	}
}

func substituteAll(exprs []Expr, bindings map[string]Expr) []Expr {
	nexprs := make([]Expr, len(exprs))
	//
	for i, e := range exprs {
		nexprs[i] = Substitute(e, bindings)
	}
	//
	return nexprs
}

func occurrencesOfAll(exprs []Expr, name string) uint {
	count := uint(0)
	//
	for _, e := range exprs {
		count += Occurrences(e, name)
	}
	//
	return count
}
