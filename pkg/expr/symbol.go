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
	"unicode"

	"github.com/kettleby/go-algebra/pkg/sexp"
)

// Symbol represents an opaque named variable.  Two symbols are equal exactly
// when their names are equal.
type Symbol struct {
	Name string
}

// NewSymbol constructs a symbol with the given name.
func NewSymbol(name string) *Symbol {
	return &Symbol{name}
}

// ValidSymbolName checks whether a given name is made up from letters, digits
// or "_" and does not start with a digit.
func ValidSymbolName(s string) bool {
	if s == "" {
		return false
	}
	//
	for i, c := range s {
		if unicode.IsLetter(c) || c == '_' {
			// OK
		} else if i != 0 && unicode.IsNumber(c) {
			// Also OK
		} else {
			// Otherwise, not OK.
			return false
		}
	}
	//
	return true
}

// Equal implementation for the Expr interface.
func (p *Symbol) Equal(other Expr) bool {
	if o, ok := other.(*Symbol); ok {
		return p.Name == o.Name
	}
	//
	return false
}

// Lisp implementation for the Expr interface.
func (p *Symbol) Lisp() sexp.SExp {
	return sexp.NewSymbol(p.Name)
}

// Size implementation for the Expr interface.
func (p *Symbol) Size() uint { return 1 }

func (p *Symbol) String() string { return p.Name }
