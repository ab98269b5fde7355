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
	"github.com/kettleby/go-algebra/pkg/expr"
)

// Pattern is an expression template matched by structural recursive descent
// against a term's operator tag and operand arity.  A matching pattern binds
// its pattern variables in the supplied bindings.
type Pattern interface {
	// Match this pattern against a given term, extending the bindings.  A
	// pattern variable occurring more than once must match structurally equal
	// terms.
	Match(e expr.Expr, binds Bindings) bool
}

// Any matches any expression, binding it under the given name.
func Any(name string) Pattern { return &anyPattern{name} }

// Num matches any constant, binding it under the given name.
func Num(name string) Pattern { return &numPattern{name} }

// Lit matches exactly the given constant value.
func Lit(value *expr.Constant) Pattern { return &litPattern{value} }

// Apply matches a compound term with the given operator and operand
// patterns.
func Apply(op expr.Op, args ...Pattern) Pattern { return &opPattern{op, args} }

type anyPattern struct{ name string }

func (p *anyPattern) Match(e expr.Expr, binds Bindings) bool {
	return bind(p.name, e, binds)
}

type numPattern struct{ name string }

func (p *numPattern) Match(e expr.Expr, binds Bindings) bool {
	if expr.IsConstant(e) == nil {
		return false
	}
	//
	return bind(p.name, e, binds)
}

type litPattern struct{ value *expr.Constant }

func (p *litPattern) Match(e expr.Expr, binds Bindings) bool {
	return p.value.Equal(e)
}

type opPattern struct {
	op   expr.Op
	args []Pattern
}

func (p *opPattern) Match(e expr.Expr, binds Bindings) bool {
	c := expr.IsCompound(e, p.op)
	//
	if c == nil || len(c.Args) != len(p.args) {
		return false
	}
	//
	for i, arg := range p.args {
		if !arg.Match(c.Args[i], binds) {
			return false
		}
	}
	//
	return true
}

// Bind a name to a term, respecting any existing binding for that name.
func bind(name string, e expr.Expr, binds Bindings) bool {
	if existing, ok := binds[name]; ok {
		return existing.Equal(e)
	}
	//
	binds[name] = e
	//
	return true
}
