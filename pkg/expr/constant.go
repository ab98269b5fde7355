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
	"math/big"

	"github.com/kettleby/go-algebra/pkg/sexp"
	"github.com/shopspring/decimal"
)

// Precision (in digits) used when an exact rational is forced into the
// approximate domain.
const approxPrecision = 32

// Constant represents a numeric value within an expression.  A constant is
// either exact (an arbitrary-precision rational) or approximate (a decimal).
// Arithmetic between an exact and an approximate constant contaminates to
// approximate.
type Constant struct {
	// Exact value, or nil when this constant is approximate.
	rat *big.Rat
	// Approximate value, meaningful only when rat is nil.
	dec decimal.Decimal
}

// Commonly used exact constants.
var (
	// Zero is the exact constant 0.
	Zero = NewInt64(0)
	// One is the exact constant 1.
	One = NewInt64(1)
	// MinusOne is the exact constant -1.
	MinusOne = NewInt64(-1)
)

// NewInt64 constructs an exact integer constant.
func NewInt64(val int64) *Constant {
	return &Constant{rat: new(big.Rat).SetInt64(val)}
}

// NewRat constructs an exact rational constant.  The denominator must be
// non-zero.
func NewRat(num int64, den int64) *Constant {
	if den == 0 {
		panic("constant with zero denominator")
	}
	//
	return &Constant{rat: new(big.Rat).SetFrac(big.NewInt(num), big.NewInt(den))}
}

// NewBigRat constructs an exact rational constant from a given (copied)
// big.Rat.
func NewBigRat(val *big.Rat) *Constant {
	return &Constant{rat: new(big.Rat).Set(val)}
}

// NewDecimal constructs an approximate constant from a given decimal.
func NewDecimal(val decimal.Decimal) *Constant {
	return &Constant{dec: val}
}

// NewFloat constructs an approximate constant from a given float64.
func NewFloat(val float64) *Constant {
	return &Constant{dec: decimal.NewFromFloat(val)}
}

// IsExact reports whether this constant is exact (integer or rational), as
// opposed to approximate.
func (p *Constant) IsExact() bool { return p.rat != nil }

// Rat returns the value of this constant as an exact rational.  For an
// approximate constant this is the exact value of its decimal representation.
func (p *Constant) Rat() *big.Rat {
	if p.rat != nil {
		return new(big.Rat).Set(p.rat)
	}
	//
	return p.dec.Rat()
}

// Decimal returns the value of this constant in the approximate domain.
func (p *Constant) Decimal() decimal.Decimal {
	if p.rat != nil {
		return decimal.NewFromBigRat(p.rat, approxPrecision)
	}
	//
	return p.dec
}

// Float64 returns the (possibly rounded) value of this constant as a float.
func (p *Constant) Float64() float64 {
	if p.rat != nil {
		f, _ := p.rat.Float64()
		return f
	}
	//
	return p.dec.InexactFloat64()
}

// Sign returns -1, 0 or 1 according to the sign of this constant.
func (p *Constant) Sign() int {
	if p.rat != nil {
		return p.rat.Sign()
	}
	//
	return p.dec.Sign()
}

// IsZero checks whether this constant is zero.
func (p *Constant) IsZero() bool { return p.Sign() == 0 }

// IsOne checks whether this constant is one.
func (p *Constant) IsOne() bool {
	if p.rat != nil {
		return p.rat.Cmp(One.rat) == 0
	}
	//
	return p.dec.Equal(decimal.NewFromInt(1))
}

// IsInteger checks whether this constant holds an integral value.
func (p *Constant) IsInteger() bool {
	if p.rat != nil {
		return p.rat.IsInt()
	}
	//
	return p.dec.IsInteger()
}

// AsInt64 returns this constant as an int64, provided it is integral and fits.
func (p *Constant) AsInt64() (int64, bool) {
	if p.rat != nil && p.rat.IsInt() && p.rat.Num().IsInt64() {
		return p.rat.Num().Int64(), true
	} else if p.rat == nil && p.dec.IsInteger() {
		return p.dec.IntPart(), true
	}
	//
	return 0, false
}

// Cmp compares the numeric values of two constants, ignoring exactness.
func (p *Constant) Cmp(other *Constant) int {
	if p.rat != nil && other.rat != nil {
		return p.rat.Cmp(other.rat)
	}
	// At least one approximate; compare in the exact domain regardless, since
	// a decimal converts exactly to a rational.
	return p.Rat().Cmp(other.Rat())
}

// Add returns the sum of two constants.
func (p *Constant) Add(other *Constant) *Constant {
	if p.rat != nil && other.rat != nil {
		return &Constant{rat: new(big.Rat).Add(p.rat, other.rat)}
	}
	//
	return &Constant{dec: p.Decimal().Add(other.Decimal())}
}

// Sub returns the difference of two constants.
func (p *Constant) Sub(other *Constant) *Constant {
	if p.rat != nil && other.rat != nil {
		return &Constant{rat: new(big.Rat).Sub(p.rat, other.rat)}
	}
	//
	return &Constant{dec: p.Decimal().Sub(other.Decimal())}
}

// Mul returns the product of two constants.
func (p *Constant) Mul(other *Constant) *Constant {
	if p.rat != nil && other.rat != nil {
		return &Constant{rat: new(big.Rat).Mul(p.rat, other.rat)}
	}
	//
	return &Constant{dec: p.Decimal().Mul(other.Decimal())}
}

// Div returns the quotient of two constants.  The divisor must be non-zero.
func (p *Constant) Div(other *Constant) *Constant {
	if other.IsZero() {
		panic("constant division by zero")
	} else if p.rat != nil && other.rat != nil {
		return &Constant{rat: new(big.Rat).Quo(p.rat, other.rat)}
	}
	//
	return &Constant{dec: p.Decimal().Div(other.Decimal())}
}

// Neg returns the negation of this constant.
func (p *Constant) Neg() *Constant {
	if p.rat != nil {
		return &Constant{rat: new(big.Rat).Neg(p.rat)}
	}
	//
	return &Constant{dec: p.dec.Neg()}
}

// Abs returns the absolute value of this constant.
func (p *Constant) Abs() *Constant {
	if p.rat != nil {
		return &Constant{rat: new(big.Rat).Abs(p.rat)}
	}
	//
	return &Constant{dec: p.dec.Abs()}
}

// Equal implementation for the Expr interface.  Structural equality requires
// matching exactness: the exact 2 and the approximate 2.0 are distinct terms.
func (p *Constant) Equal(other Expr) bool {
	if o, ok := other.(*Constant); ok {
		return p.IsExact() == o.IsExact() && p.Cmp(o) == 0
	}
	//
	return false
}

// Lisp implementation for the Expr interface.
func (p *Constant) Lisp() sexp.SExp {
	return sexp.NewSymbol(p.String())
}

// Size implementation for the Expr interface.
func (p *Constant) Size() uint { return 1 }

func (p *Constant) String() string {
	if p.rat != nil {
		return p.rat.RatString()
	}
	//
	return p.dec.String()
}
