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

import "math"

// Op identifies the operator of a compound term.  Operator properties (arity,
// associativity, commutativity, identity and annihilator elements) are
// declared once in a process-wide read-only table, never mutated after
// initialisation.
type Op uint8

// The fixed set of operator tags.  This set is extensible in the sense that
// adding a tag means adding a table row; nothing else in the expression model
// changes.
const (
	// ADD is variadic addition.
	ADD Op = iota
	// MUL is variadic multiplication.
	MUL
	// POW is binary exponentiation (base, exponent).
	POW
	// SUB is binary subtraction.
	SUB
	// DIV is binary division.
	DIV
	// NEG is unary negation.
	NEG
	// LOG is the unary natural logarithm.
	LOG
	// EXP is the unary natural exponential.
	EXP
	// ABS is the unary absolute value.
	ABS
	// EQ is binary equality (left-hand side, right-hand side).
	EQ
)

// OpInfo describes the declared properties of an operator tag.
type OpInfo struct {
	// Name as written in the surface S-expression syntax.
	Name string
	// MinArity and MaxArity bound the permitted operand count.
	MinArity uint
	MaxArity uint
	// Associative indicates nested applications may be flattened.
	Associative bool
	// Commutative indicates operand order is semantically irrelevant.
	Commutative bool
	// Identity is the identity element (e.g. 0 for addition), or nil.
	Identity *Constant
	// Annihilator is the absorbing element (e.g. 0 for multiplication), or
	// nil.
	Annihilator *Constant
}

var opTable = [...]OpInfo{
	ADD: {Name: "+", MinArity: 1, MaxArity: math.MaxUint, Associative: true, Commutative: true, Identity: Zero},
	MUL: {Name: "*", MinArity: 1, MaxArity: math.MaxUint, Associative: true, Commutative: true, Identity: One, Annihilator: Zero},
	POW: {Name: "**", MinArity: 2, MaxArity: 2},
	SUB: {Name: "-", MinArity: 2, MaxArity: 2},
	DIV: {Name: "/", MinArity: 2, MaxArity: 2},
	NEG: {Name: "-", MinArity: 1, MaxArity: 1},
	LOG: {Name: "log", MinArity: 1, MaxArity: 1},
	EXP: {Name: "exp", MinArity: 1, MaxArity: 1},
	ABS: {Name: "abs", MinArity: 1, MaxArity: 1},
	EQ:  {Name: "=", MinArity: 2, MaxArity: 2},
}

// Info returns the declared properties of this operator.
func (o Op) Info() *OpInfo {
	return &opTable[o]
}

// String returns the surface name of this operator.
func (o Op) String() string {
	return opTable[o].Name
}

// OpOfSymbol maps a surface name (and arity) back to an operator tag.  The
// name "-" is negation when unary and subtraction otherwise.
func OpOfSymbol(name string, arity uint) (Op, bool) {
	if name == "-" && arity == 1 {
		return NEG, true
	}
	//
	for op, info := range opTable {
		if info.Name == name && info.MinArity <= arity && arity <= info.MaxArity {
			return Op(op), true
		}
	}
	//
	return 0, false
}
