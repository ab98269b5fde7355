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
	"fmt"
	"math/big"
	"regexp"

	"github.com/kettleby/go-algebra/pkg/sexp"
	"github.com/shopspring/decimal"
)

// Exact numeric literals: integers and fractions.  Anything with a decimal
// point or exponent is an approximate literal.
var exactLiteral = regexp.MustCompile(`^-?[0-9]+(/[0-9]+)?$`)
var approxLiteral = regexp.MustCompile(`^-?[0-9]+\.[0-9]+([eE]-?[0-9]+)?$`)

// FromSExp translates an S-expression into an expression.  Lists translate
// into compound terms, arrays into vector literals, and symbols into numeric
// constants or named variables.  The core engine consumes constructed trees;
// this translation exists for the CLI and tests.
func FromSExp(s sexp.SExp) (Expr, error) {
	switch t := s.(type) {
	case *sexp.Symbol:
		return fromSymbol(t)
	case *sexp.Array:
		return fromArray(t)
	case *sexp.List:
		return fromList(t)
	}
	// Unreachable
	return nil, fmt.Errorf("unknown S-expression %s", s.String())
}

// Parse a string holding exactly one S-expression into an expression.
func Parse(text string) (Expr, error) {
	s, err := sexp.Parse(text)
	if err != nil {
		return nil, err
	}
	//
	return FromSExp(s)
}

// ParseEquation parses a string and checks the result is an equality.
func ParseEquation(text string) (*Compound, error) {
	e, err := Parse(text)
	if err != nil {
		return nil, err
	} else if eq := IsCompound(e, EQ); eq != nil {
		return eq, nil
	}
	//
	return nil, fmt.Errorf("expected an equation, found %s", String(e))
}

func fromSymbol(s *sexp.Symbol) (Expr, error) {
	if exactLiteral.MatchString(s.Value) {
		rat, ok := new(big.Rat).SetString(s.Value)
		if !ok {
			return nil, fmt.Errorf("malformed numeric literal %s", s.Value)
		}
		//
		return NewBigRat(rat), nil
	} else if approxLiteral.MatchString(s.Value) {
		dec, err := decimal.NewFromString(s.Value)
		if err != nil {
			return nil, fmt.Errorf("malformed numeric literal %s", s.Value)
		}
		//
		return NewDecimal(dec), nil
	} else if ValidSymbolName(s.Value) {
		return NewSymbol(s.Value), nil
	}
	//
	return nil, fmt.Errorf("malformed symbol %s", s.Value)
}

func fromArray(s *sexp.Array) (Expr, error) {
	elements := make([]Expr, s.Len())
	//
	for i := range elements {
		element, err := FromSExp(s.Get(i))
		if err != nil {
			return nil, err
		}
		//
		elements[i] = element
	}
	//
	return &Vector{elements}, nil
}

func fromList(s *sexp.List) (Expr, error) {
	if s.Len() == 0 {
		return nil, fmt.Errorf("empty application")
	}
	//
	head := s.Get(0).AsSymbol()
	if head == nil {
		return nil, fmt.Errorf("non-symbol operator in %s", s.String())
	}
	//
	arity := uint(s.Len() - 1)
	//
	op, ok := OpOfSymbol(head.Value, arity)
	if !ok {
		return nil, fmt.Errorf("unknown operator %s with %d operands", head.Value, arity)
	}
	//
	args := make([]Expr, arity)
	for i := range args {
		arg, err := FromSExp(s.Get(i + 1))
		if err != nil {
			return nil, err
		}
		//
		args[i] = arg
	}
	//
	return NewCompound(op, args...), nil
}
