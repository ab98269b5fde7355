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
	"math"
	"math/big"
)

// ApplyOp applies an operator to a sequence of constant operands, producing a
// new constant.  This is the numeric kernel shared by constant folding and
// evaluation.  It returns false when the application is undefined over the
// given operands (division by zero, logarithm of a non-positive value,
// fractional power of a negative value) in which case the term is left
// unfolded.
//
// Exactness is preserved wherever possible: integer powers of rationals stay
// exact, as do perfect roots.  Transcendental applications (and imperfect
// roots) land in the approximate domain.
func ApplyOp(op Op, args []*Constant) (*Constant, bool) {
	switch op {
	case ADD:
		return foldConstants(args, (*Constant).Add), true
	case MUL:
		return foldConstants(args, (*Constant).Mul), true
	case SUB:
		return args[0].Sub(args[1]), true
	case DIV:
		if args[1].IsZero() {
			return nil, false
		}
		//
		return args[0].Div(args[1]), true
	case NEG:
		return args[0].Neg(), true
	case ABS:
		return args[0].Abs(), true
	case POW:
		return applyPow(args[0], args[1])
	case LOG:
		return applyLog(args[0])
	case EXP:
		return applyExp(args[0])
	}
	// Remaining operators (e.g. equality) have no numeric value.
	return nil, false
}

func foldConstants(args []*Constant, fn func(*Constant, *Constant) *Constant) *Constant {
	acc := args[0]
	//
	for _, arg := range args[1:] {
		acc = fn(acc, arg)
	}
	//
	return acc
}

func applyPow(base *Constant, exponent *Constant) (*Constant, bool) {
	// Integer exponents of exact bases keep the computation exact.
	if n, ok := exponent.AsInt64(); ok && base.IsExact() {
		return ratPow(base.Rat(), n)
	}
	// Try a perfect root for exact rational exponents p/q.
	if base.IsExact() && exponent.IsExact() {
		if root, ok := ratRoot(base.Rat(), exponent.Rat()); ok {
			return NewBigRat(root), true
		}
	}
	// Fall back to floating point.
	var (
		b = base.Float64()
		e = exponent.Float64()
		v = math.Pow(b, e)
	)
	//
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, false
	}
	//
	return NewFloat(v), true
}

func applyLog(arg *Constant) (*Constant, bool) {
	if arg.Sign() <= 0 {
		return nil, false
	} else if arg.IsOne() {
		return Zero, true
	}
	//
	return NewFloat(math.Log(arg.Float64())), true
}

func applyExp(arg *Constant) (*Constant, bool) {
	if arg.IsZero() {
		return One, true
	}
	//
	v := math.Exp(arg.Float64())
	//
	if math.IsInf(v, 0) {
		return nil, false
	}
	//
	return NewFloat(v), true
}

// Raise an exact rational to an integer power.  Zero raised to a negative
// power is undefined; zero to the zero is taken as one.
func ratPow(base *big.Rat, n int64) (*Constant, bool) {
	if base.Sign() == 0 && n < 0 {
		return nil, false
	} else if n == 0 {
		return One, true
	}
	//
	var (
		exp = new(big.Int).SetInt64(absInt64(n))
		num = new(big.Int).Exp(base.Num(), exp, nil)
		den = new(big.Int).Exp(base.Denom(), exp, nil)
		res = new(big.Rat).SetFrac(num, den)
	)
	//
	if n < 0 {
		res.Inv(res)
	}
	//
	return NewBigRat(res), true
}

// Attempt to compute base^(p/q) exactly, which succeeds only when base is a
// perfect q-th power (up to sign, for odd q).
func ratRoot(base *big.Rat, exponent *big.Rat) (*big.Rat, bool) {
	var (
		p = exponent.Num().Int64()
		q = exponent.Denom().Int64()
	)
	// Reject anything outside the int64-friendly range.
	if !exponent.Num().IsInt64() || !exponent.Denom().IsInt64() || q <= 1 {
		return nil, false
	}
	//
	negative := base.Sign() < 0
	if negative && q%2 == 0 {
		// Even root of a negative value.
		return nil, false
	}
	//
	var (
		num, numExact = nthRoot(new(big.Int).Abs(base.Num()), uint(q))
		den, denExact = nthRoot(new(big.Int).Abs(base.Denom()), uint(q))
	)
	//
	if !numExact || !denExact {
		return nil, false
	}
	//
	if negative {
		num.Neg(num)
	}
	//
	root := new(big.Rat).SetFrac(num, den)
	// Raise the root to the numerator of the exponent.
	res, ok := ratPow(root, p)
	if !ok {
		return nil, false
	}
	//
	return res.Rat(), true
}

// Integer n-th root by Newton iteration, together with a flag indicating
// whether the root is exact.  The argument must be non-negative.
func nthRoot(z *big.Int, n uint) (*big.Int, bool) {
	one := big.NewInt(1)
	//
	if z.Sign() == 0 || z.Cmp(one) == 0 {
		return new(big.Int).Set(z), true
	}
	// Initial estimate: 2^(ceil(bitlen/n))
	var (
		shift = (uint(z.BitLen()) + n - 1) / n
		x     = new(big.Int).Lsh(one, shift)
		nInt  = new(big.Int).SetUint64(uint64(n))
		nLess = new(big.Int).SetUint64(uint64(n - 1))
	)
	//
	for {
		// t = ((n-1)*x + z/x^(n-1)) / n
		var (
			xPow = new(big.Int).Exp(x, nLess, nil)
			t    = new(big.Int).Quo(z, xPow)
		)
		//
		t.Add(t, new(big.Int).Mul(nLess, x))
		t.Quo(t, nInt)
		//
		if t.Cmp(x) >= 0 {
			break
		}
		//
		x = t
	}
	// Check exactness
	check := new(big.Int).Exp(x, nInt, nil)
	//
	return x, check.Cmp(z) == 0
}

func absInt64(n int64) int64 {
	if n < 0 {
		return -n
	}
	//
	return n
}
