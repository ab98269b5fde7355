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

// Package rewrite implements the rule-based rewriting machinery: constant
// folding, full expansion (multiplying out) and heuristic simplification.
// Rule sets are process-wide read-only configuration, constructed once at
// package initialisation and shared freely.
package rewrite

import (
	"github.com/kettleby/go-algebra/pkg/expr"
)

// Bindings maps pattern-variable names to the sub-expressions they matched.
type Bindings map[string]expr.Expr

// Rule transforms a term into a rewritten term, or leaves it untouched.
// Application is a pure function: it either returns a new term and true, or
// the original term and false.
type Rule struct {
	// Name identifies this rule in debug traces.
	Name string
	// Apply attempts this rule on the given term.
	Apply func(expr.Expr) (expr.Expr, bool)
}

// NewRule constructs a rule from a pattern, an optional guard over the
// matched bindings, and a replacement builder.
func NewRule(name string, pattern Pattern, guard func(Bindings) bool, build func(Bindings) expr.Expr) Rule {
	apply := func(e expr.Expr) (expr.Expr, bool) {
		binds := make(Bindings)
		//
		if !pattern.Match(e, binds) {
			return e, false
		} else if guard != nil && !guard(binds) {
			return e, false
		}
		//
		return build(binds), true
	}
	//
	return Rule{name, apply}
}

// NewFuncRule constructs a rule directly from a transformation function, for
// rewrites (flattening, collection) whose "pattern" is the operand structure
// of a variadic operator rather than a fixed-arity template.
func NewFuncRule(name string, apply func(expr.Expr) (expr.Expr, bool)) Rule {
	return Rule{name, apply}
}
