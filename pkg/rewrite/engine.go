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
	log "github.com/sirupsen/logrus"

	"github.com/kettleby/go-algebra/pkg/expr"
)

// Bound on rule applications at a single node within a single pass.  Rule
// sets are expected to reach a local fixpoint well within this; the bound is
// an escape hatch against cyclic rule sets.
const maxNodeSteps = 32

// Engine applies an ordered rule set bottom-up over a term, repeating whole
// passes until a fixpoint is reached or the pass budget is exhausted.
// Engines are immutable once constructed and safe for concurrent use.
type Engine struct {
	// Name identifies this engine in debug traces.
	name string
	// Ordered rule set.
	rules []Rule
	// Maximum number of whole-tree passes.
	maxPasses uint
}

// NewEngine constructs an engine from an ordered rule set.
func NewEngine(name string, maxPasses uint, rules ...Rule) *Engine {
	return &Engine{name, rules, maxPasses}
}

// Rewrite a term to fixpoint.  The second result indicates whether a
// fixpoint was actually reached within the pass budget.
func (p *Engine) Rewrite(e expr.Expr) (expr.Expr, bool) {
	for i := uint(0); i < p.maxPasses; i++ {
		next := p.rewriteNode(e)
		//
		if next.Equal(e) {
			return next, true
		}
		//
		e = next
	}
	//
	log.Debugf("%s: pass budget exhausted", p.name)
	//
	return e, false
}

// Apply one bottom-up pass over the given term.
func (p *Engine) rewriteNode(e expr.Expr) expr.Expr {
	// Rewrite children first.
	switch t := e.(type) {
	case *expr.Compound:
		e = &expr.Compound{Op: t.Op, Args: p.rewriteAll(t.Args)}
	case *expr.Vector:
		e = &expr.Vector{Elements: p.rewriteAll(t.Elements)}
	}
	// Then rules at this node, to a local fixpoint.
	for i := 0; i < maxNodeSteps; i++ {
		applied := false
		//
		for _, rule := range p.rules {
			if next, ok := rule.Apply(e); ok {
				log.Debugf("%s: %s: %s ==> %s", p.name, rule.Name, expr.String(e), expr.String(next))
				//
				e = next
				applied = true
				//
				break
			}
		}
		//
		if !applied {
			return e
		}
	}
	//
	return e
}

func (p *Engine) rewriteAll(exprs []expr.Expr) []expr.Expr {
	nexprs := make([]expr.Expr, len(exprs))
	//
	for i, e := range exprs {
		nexprs[i] = p.rewriteNode(e)
	}
	//
	return nexprs
}
