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
	"github.com/kettleby/go-algebra/pkg/util/array"
)

// The constant-folding engine.  Folding never fails: it produces the
// most-folded form reachable without heuristic restructuring.
var foldEngine = NewEngine("fold", 64,
	NewFuncRule("flatten", flattenNode),
	NewFuncRule("fold-constants", foldNode),
)

// EvaluateConstants folds every compound term whose operands are all
// constants and, for associative/commutative operators, folds the constant
// portion of the operand list into a single constant.  Identity operands are
// dropped and annihilators (zero in a product) propagate.
func EvaluateConstants(e expr.Expr) expr.Expr {
	folded, _ := foldEngine.Rewrite(e)
	return folded
}

// Flatten nested applications of an associative operator into a single
// variadic application.
func flattenNode(e expr.Expr) (expr.Expr, bool) {
	c, ok := e.(*expr.Compound)
	if !ok || !c.Op.Info().Associative {
		return e, false
	}
	//
	args := array.Flatten(c.Args, func(arg expr.Expr) []expr.Expr {
		if nested := expr.IsCompound(arg, c.Op); nested != nil {
			return nested.Args
		}
		//
		return nil
	})
	// Flatten returns the original slice when nothing was nested.
	if len(args) == len(c.Args) {
		return e, false
	}
	//
	return &expr.Compound{Op: c.Op, Args: args}, true
}

// Fold the constant content of a single node.
func foldNode(e expr.Expr) (expr.Expr, bool) {
	c, ok := e.(*expr.Compound)
	if !ok {
		return e, false
	}
	// Vector structure reduces first (elementwise combination etc).
	if combined, ok := expr.CombineVectors(c.Op, c.Args); ok {
		return combined, true
	}
	// Terms of constants reduce outright.
	if consts, ok := expr.Constants(c.Args); ok {
		if v, ok := expr.ApplyOp(c.Op, consts); ok {
			return v, true
		}
	}
	//
	info := c.Op.Info()
	if !info.Associative || !info.Commutative {
		return e, false
	}
	// Associative/commutative: partition operands into the constant group and
	// the rest, folding the former into a single constant.
	return foldGroup(c)
}

func foldGroup(c *expr.Compound) (expr.Expr, bool) {
	var (
		info    = c.Op.Info()
		args    = c.Args
		changed = false
	)
	// Annihilator propagates immediately.
	if info.Annihilator != nil {
		for _, arg := range args {
			if info.Annihilator.Equal(arg) {
				return info.Annihilator, true
			}
		}
	}
	// Merge the constant group into a single constant.
	if consts, count := constantsOf(args); count > 1 {
		merged, ok := expr.ApplyOp(c.Op, consts)
		if !ok {
			return c, false
		}
		//
		args = mergeConstants(merged, args)
		changed = true
	}
	// Drop identity operands.
	if info.Identity != nil {
		nargs := array.RemoveMatching(args, func(arg expr.Expr) bool {
			return info.Identity.Equal(arg)
		})
		//
		if len(nargs) != len(args) {
			args, changed = nargs, true
		}
	}
	// Collapse what remains.
	switch len(args) {
	case 0:
		return info.Identity, true
	case 1:
		return args[0], true
	}
	//
	if !changed {
		return c, false
	}
	//
	return &expr.Compound{Op: c.Op, Args: args}, true
}

// Extract the constant operands of a term.
func constantsOf(args []expr.Expr) ([]*expr.Constant, int) {
	var consts []*expr.Constant
	//
	for _, arg := range args {
		if c := expr.IsConstant(arg); c != nil {
			consts = append(consts, c)
		}
	}
	//
	return consts, len(consts)
}

// Replace all constants within a given operand sequence with a single
// constant (whose value has been precomputed from those constants).  The new
// value replaces the first constant in the list.
func mergeConstants(constant *expr.Constant, args []expr.Expr) []expr.Expr {
	var (
		nargs = make([]expr.Expr, 0, len(args))
		first = true
	)
	//
	for _, arg := range args {
		if expr.IsConstant(arg) != nil {
			if first {
				nargs = append(nargs, constant)
				first = false
			}
		} else {
			nargs = append(nargs, arg)
		}
	}
	//
	return nargs
}
