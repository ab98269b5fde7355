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
package sexp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Symbol(t *testing.T) {
	s, err := Parse("hello")
	require.Nil(t, err)
	//
	symbol := s.AsSymbol()
	require.NotNil(t, symbol)
	assert.Equal(t, "hello", symbol.Value)
}

func TestParse_List(t *testing.T) {
	s, err := Parse("(+ 1 2)")
	require.Nil(t, err)
	//
	list := s.AsList()
	require.NotNil(t, list)
	require.Equal(t, 3, list.Len())
	assert.Equal(t, "+", list.Get(0).AsSymbol().Value)
	assert.Equal(t, "(+ 1 2)", s.String())
}

func TestParse_NestedList(t *testing.T) {
	s, err := Parse("(* (+ x 1) y)")
	require.Nil(t, err)
	//
	list := s.AsList()
	require.NotNil(t, list)
	require.Equal(t, 3, list.Len())
	//
	inner := list.Get(1).AsList()
	require.NotNil(t, inner)
	assert.Equal(t, 3, inner.Len())
	assert.Equal(t, "(* (+ x 1) y)", s.String())
}

func TestParse_Array(t *testing.T) {
	s, err := Parse("[1 2 3]")
	require.Nil(t, err)
	//
	array := s.AsArray()
	require.NotNil(t, array)
	assert.Equal(t, 3, array.Len())
	assert.Equal(t, "[1 2 3]", s.String())
}

func TestParse_Comment(t *testing.T) {
	s, err := Parse("; a comment\n(+ 1 2)")
	require.Nil(t, err)
	assert.Equal(t, "(+ 1 2)", s.String())
}

func TestParse_Whitespace(t *testing.T) {
	s, err := Parse("  ( +   1\n\t2 )  ")
	require.Nil(t, err)
	assert.Equal(t, "(+ 1 2)", s.String())
}

func TestParse_TrailingComment(t *testing.T) {
	s, err := Parse("(+ 1 2) ; trailing")
	require.Nil(t, err)
	assert.Equal(t, "(+ 1 2)", s.String())
}

func TestParseAll_Multiple(t *testing.T) {
	terms, err := ParseAll("(+ 1 2) x [y z]")
	require.Nil(t, err)
	require.Len(t, terms, 3)
	assert.Equal(t, "(+ 1 2)", terms[0].String())
	assert.Equal(t, "x", terms[1].String())
	assert.Equal(t, "[y z]", terms[2].String())
}

func TestParse_ErrUnterminatedList(t *testing.T) {
	_, err := Parse("(+ 1 2")
	require.NotNil(t, err)
}

func TestParse_ErrUnexpectedEndOfList(t *testing.T) {
	_, err := Parse(")")
	require.NotNil(t, err)
	assert.Equal(t, 0, err.Offset)
}

func TestParse_ErrTrailingInput(t *testing.T) {
	_, err := Parse("x y")
	require.NotNil(t, err)
}

func TestList_MatchSymbols(t *testing.T) {
	s, err := Parse("(define foo 1)")
	require.Nil(t, err)
	//
	list := s.AsList()
	require.NotNil(t, list)
	assert.True(t, list.MatchSymbols(2, "define", "foo"))
	assert.False(t, list.MatchSymbols(2, "declare"))
}
