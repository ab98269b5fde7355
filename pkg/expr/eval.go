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

// Evaluate substitutes the given bindings into an expression and reduces the
// result numerically as far as possible.  Unbound symbols are left symbolic,
// in which case the result is a partially reduced expression rather than a
// constant.  Vector and matrix arithmetic is reduced structurally
// (elementwise operations, scalar scaling, inner and matrix products).
func Evaluate(e Expr, bindings map[string]Expr) Expr {
	return eval(Substitute(e, bindings))
}

func eval(e Expr) Expr {
	switch t := e.(type) {
	case *Compound:
		args := evalAll(t.Args)
		// Reduce vector structure first, then re-evaluate the combined form.
		if combined, ok := CombineVectors(t.Op, args); ok {
			return eval(combined)
		}
		// Reduce all-constant applications.
		if consts, ok := Constants(args); ok {
			if v, ok := ApplyOp(t.Op, consts); ok {
				return v
			}
		}
		//
		return &Compound{t.Op, args}
	case *Vector:
		return &Vector{evalAll(t.Elements)}
	default:
		return e
	}
}

func evalAll(exprs []Expr) []Expr {
	nexprs := make([]Expr, len(exprs))
	//
	for i, e := range exprs {
		nexprs[i] = eval(e)
	}
	//
	return nexprs
}

// Constants checks whether every expression in a sequence is a constant and,
// if so, returns them.
func Constants(exprs []Expr) ([]*Constant, bool) {
	consts := make([]*Constant, len(exprs))
	//
	for i, e := range exprs {
		c, ok := e.(*Constant)
		if !ok {
			return nil, false
		}
		//
		consts[i] = c
	}
	//
	return consts, true
}

// CombineVectors reduces an operator applied to one or more vector operands
// into elementwise (or product) structure.  Returns false when no operand is
// a vector.  Shape mismatches are programmer errors and panic.
func CombineVectors(op Op, args []Expr) (Expr, bool) {
	if !anyVector(args) {
		return nil, false
	}
	//
	switch op {
	case ADD:
		return zipVectors(args, func(elements []Expr) Expr { return Sum(elements...) }), true
	case SUB:
		return zipVectors(args, func(elements []Expr) Expr { return Subtract(elements[0], elements[1]) }), true
	case NEG:
		return mapVector(args[0].(*Vector), func(e Expr) Expr { return Negate(e) }), true
	case DIV:
		vec, ok := args[0].(*Vector)
		if !ok {
			panic("dividing scalar by vector")
		} else if _, ok := args[1].(*Vector); ok {
			panic("dividing vector by vector")
		}
		//
		return mapVector(vec, func(e Expr) Expr { return Divide(e, args[1]) }), true
	case MUL:
		acc := args[0]
		for _, arg := range args[1:] {
			acc = mulPair(acc, arg)
		}
		//
		return acc, true
	}
	// Remaining operators do not combine over vectors.
	return nil, false
}

func anyVector(exprs []Expr) bool {
	for _, e := range exprs {
		if _, ok := e.(*Vector); ok {
			return true
		}
	}
	//
	return false
}

func mapVector(vec *Vector, fn func(Expr) Expr) *Vector {
	elements := make([]Expr, len(vec.Elements))
	//
	for i, e := range vec.Elements {
		elements[i] = fn(e)
	}
	//
	return &Vector{elements}
}

func zipVectors(args []Expr, fn func([]Expr) Expr) *Vector {
	var length = -1
	// Sanity check shapes
	for _, arg := range args {
		vec, ok := arg.(*Vector)
		//
		if !ok {
			panic("mixing vector and scalar operands")
		} else if length >= 0 && len(vec.Elements) != length {
			panic("vector operands of unequal length")
		}
		//
		length = len(vec.Elements)
	}
	//
	elements := make([]Expr, length)
	//
	for i := range elements {
		row := make([]Expr, len(args))
		for j, arg := range args {
			row[j] = arg.(*Vector).Elements[i]
		}
		//
		elements[i] = fn(row)
	}
	//
	return &Vector{elements}
}

// Multiply a pair of operands where at least one may be a vector: scalars
// scale vectors elementwise; vectors combine by inner product; matrices
// combine by matrix product.
func mulPair(lhs Expr, rhs Expr) Expr {
	lvec, lok := lhs.(*Vector)
	rvec, rok := rhs.(*Vector)
	//
	switch {
	case !lok && !rok:
		return Product(lhs, rhs)
	case lok && !rok:
		return mapVector(lvec, func(e Expr) Expr { return Product(e, rhs) })
	case !lok && rok:
		return mapVector(rvec, func(e Expr) Expr { return Product(lhs, e) })
	}
	// Vector (or matrix) times vector (or matrix).
	_, _, lmat := lvec.IsMatrix()
	_, _, rmat := rvec.IsMatrix()
	//
	switch {
	case lmat && rmat:
		return matrixProduct(lvec, transpose(rvec))
	case lmat:
		return matrixVectorProduct(lvec, rvec)
	case rmat:
		// Row vector times matrix.
		return matrixVectorProduct(transpose(rvec), lvec)
	default:
		return innerProduct(lvec, rvec)
	}
}

func innerProduct(lhs *Vector, rhs *Vector) Expr {
	if len(lhs.Elements) != len(rhs.Elements) {
		panic("inner product of unequal-length vectors")
	}
	//
	terms := make([]Expr, len(lhs.Elements))
	for i := range terms {
		terms[i] = Product(lhs.Elements[i], rhs.Elements[i])
	}
	//
	return Sum(terms...)
}

func matrixVectorProduct(mat *Vector, vec *Vector) Expr {
	return mapVector(mat, func(row Expr) Expr {
		return innerProduct(row.(*Vector), vec)
	})
}

// Multiply a matrix by the transpose of another; i.e. rows of the left
// against rows of the (already transposed) right.
func matrixProduct(lhs *Vector, rhsT *Vector) Expr {
	return mapVector(lhs, func(row Expr) Expr {
		return mapVector(rhsT, func(col Expr) Expr {
			return innerProduct(row.(*Vector), col.(*Vector))
		})
	})
}

func transpose(mat *Vector) *Vector {
	rows, cols, ok := mat.IsMatrix()
	if !ok {
		panic("transpose of non-matrix")
	}
	//
	elements := make([]Expr, cols)
	//
	for j := uint(0); j < cols; j++ {
		column := make([]Expr, rows)
		for i := uint(0); i < rows; i++ {
			column[i] = mat.Elements[i].(*Vector).Elements[j]
		}
		//
		elements[j] = &Vector{column}
	}
	//
	return &Vector{elements}
}
