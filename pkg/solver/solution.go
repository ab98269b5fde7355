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

// Package solver determines the values of unknowns for which a system of
// equations holds.
package solver

import (
	"sort"
	"strings"

	"github.com/kettleby/go-algebra/pkg/expr"
)

// Binding assigns a term to each unknown within one solution of a system.
// Underdetermined systems bind unknowns to terms over placeholder symbols,
// standing for arbitrary values.
type Binding map[string]expr.Expr

// SolutionSet is the outcome of solving a system: either every assignment
// satisfies it, or exactly the listed bindings do.  The empty list means the
// system is inconsistent.
type SolutionSet struct {
	// All indicates every assignment is a solution.
	All bool
	// Bindings enumerates the solutions when All is false.
	Bindings []Binding
}

// AllSolutions is the solution set of a tautological system.
func AllSolutions() SolutionSet { return SolutionSet{All: true} }

// NoSolutions is the solution set of an inconsistent system.
func NoSolutions() SolutionSet { return SolutionSet{} }

// Solutions constructs an explicit solution set.
func Solutions(bindings ...Binding) SolutionSet {
	return SolutionSet{Bindings: bindings}
}

// IsEmpty checks for the inconsistent outcome.
func (p SolutionSet) IsEmpty() bool { return !p.All && len(p.Bindings) == 0 }

func (p SolutionSet) String() string {
	if p.All {
		return "all"
	} else if len(p.Bindings) == 0 {
		return "none"
	}
	//
	var builder strings.Builder
	//
	for i, binding := range p.Bindings {
		if i != 0 {
			builder.WriteString("; ")
		}
		//
		builder.WriteString(binding.String())
	}
	//
	return builder.String()
}

func (p Binding) String() string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	//
	sort.Strings(names)
	//
	var builder strings.Builder
	builder.WriteString("{")
	//
	for i, name := range names {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(name)
		builder.WriteString(": ")
		builder.WriteString(expr.String(p[name]))
	}
	//
	builder.WriteString("}")
	//
	return builder.String()
}
