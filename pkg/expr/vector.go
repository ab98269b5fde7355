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
	"github.com/kettleby/go-algebra/pkg/sexp"
)

// Vector represents an ordered sequence of expressions, treated as a compound
// value participating in the arithmetic operators.  A matrix is a vector
// whose elements are vectors of equal length.
type Vector struct {
	Elements []Expr
}

// NewVector constructs a vector literal from the given elements.
func NewVector(elements ...Expr) *Vector {
	return &Vector{elements}
}

// Len returns the number of elements in this vector.
func (p *Vector) Len() uint { return uint(len(p.Elements)) }

// IsMatrix checks whether this vector is a matrix (i.e. a non-empty vector of
// equal-length vectors) and, if so, returns its dimensions.
func (p *Vector) IsMatrix() (uint, uint, bool) {
	if len(p.Elements) == 0 {
		return 0, 0, false
	}
	//
	var width uint
	//
	for i, e := range p.Elements {
		row, ok := e.(*Vector)
		//
		if !ok {
			return 0, 0, false
		} else if i == 0 {
			width = row.Len()
		} else if row.Len() != width {
			// Ragged rows are a programmer error, caught loudly at the point
			// of use.
			panic("ragged matrix literal")
		}
	}
	//
	return uint(len(p.Elements)), width, true
}

// Equal implementation for the Expr interface.
func (p *Vector) Equal(other Expr) bool {
	if o, ok := other.(*Vector); ok {
		return equalExprs(p.Elements, o.Elements)
	}
	//
	return false
}

// Lisp implementation for the Expr interface.
func (p *Vector) Lisp() sexp.SExp {
	elements := make([]sexp.SExp, len(p.Elements))
	//
	for i, e := range p.Elements {
		elements[i] = e.Lisp()
	}
	//
	return sexp.NewArray(elements)
}

// Size implementation for the Expr interface.
func (p *Vector) Size() uint { return sizeOfExprs(p.Elements) }

func (p *Vector) String() string { return p.Lisp().String() }
