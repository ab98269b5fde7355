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
package poly

import (
	"math/big"
)

// Candidate numerators/denominators are enumerated by trial division, so cap
// the magnitude for which enumeration is attempted.
const maxDivisorBound = int64(1_000_000)

// RationalRoots searches for rational roots of a polynomial given by exact
// ascending coefficients, using the rational root theorem.  Each distinct
// root is reported once; all corresponding linear factors (including repeated
// ones) are divided out, and the deflated coefficients are returned alongside
// the roots.  The search is exact but incomplete: coefficients whose
// numerators or denominators exceed the enumeration bound yield no
// candidates.
func RationalRoots(coeffs []*big.Rat) ([]*big.Rat, []*big.Rat) {
	var roots []*big.Rat
	//
	remainder := trimRats(coeffs)
	// Divide out x as long as the constant term vanishes.
	if len(remainder) > 1 && remainder[0].Sign() == 0 {
		roots = append(roots, new(big.Rat))
		//
		for len(remainder) > 1 && remainder[0].Sign() == 0 {
			remainder = remainder[1:]
		}
	}
	//
	if len(remainder) < 2 {
		return roots, remainder
	}
	// Clear denominators, giving integer coefficients.
	ints := clearDenominators(remainder)
	//
	var (
		numerators   = divisorsOf(ints[0])
		denominators = divisorsOf(ints[len(ints)-1])
	)
	//
	for _, p := range numerators {
		for _, q := range denominators {
			for _, sign := range []int64{1, -1} {
				candidate := big.NewRat(sign*p, q)
				//
				if evalRat(remainder, candidate).Sign() != 0 {
					continue
				}
				//
				roots = append(roots, candidate)
				// Divide out (x - candidate) to full multiplicity.
				for {
					remainder = deflate(remainder, candidate)
					//
					if len(remainder) < 2 || evalRat(remainder, candidate).Sign() != 0 {
						break
					}
				}
				//
				if len(remainder) < 2 {
					return roots, remainder
				}
			}
		}
	}
	//
	return roots, remainder
}

// Evaluate a polynomial at a point by Horner's scheme.
func evalRat(coeffs []*big.Rat, x *big.Rat) *big.Rat {
	acc := new(big.Rat)
	//
	for i := len(coeffs) - 1; i >= 0; i-- {
		acc.Mul(acc, x)
		acc.Add(acc, coeffs[i])
	}
	//
	return acc
}

// Synthetic division by (x - root).  The root is assumed exact, hence the
// final remainder is discarded.
func deflate(coeffs []*big.Rat, root *big.Rat) []*big.Rat {
	var (
		quotient = make([]*big.Rat, len(coeffs)-1)
		carry    = new(big.Rat)
	)
	//
	for i := len(coeffs) - 1; i >= 1; i-- {
		carry = new(big.Rat).Add(coeffs[i], new(big.Rat).Mul(carry, root))
		quotient[i-1] = carry
	}
	//
	return quotient
}

// Scale rational coefficients by the LCM of their denominators, producing
// integer coefficients with identical roots.
func clearDenominators(coeffs []*big.Rat) []*big.Int {
	lcm := big.NewInt(1)
	//
	for _, c := range coeffs {
		var (
			denom = c.Denom()
			gcd   = new(big.Int).GCD(nil, nil, lcm, denom)
		)
		//
		lcm = new(big.Int).Mul(lcm, new(big.Int).Quo(denom, gcd))
	}
	//
	ints := make([]*big.Int, len(coeffs))
	//
	for i, c := range coeffs {
		scaled := new(big.Rat).Mul(c, new(big.Rat).SetInt(lcm))
		ints[i] = scaled.Num()
	}
	//
	return ints
}

// Positive divisors of |n|, or nothing when |n| exceeds the enumeration
// bound.
func divisorsOf(n *big.Int) []int64 {
	if !n.IsInt64() {
		return nil
	}
	//
	v := n.Int64()
	if v < 0 {
		v = -v
	}
	//
	if v == 0 || v > maxDivisorBound {
		return nil
	}
	//
	var divisors []int64
	//
	for d := int64(1); d*d <= v; d++ {
		if v%d == 0 {
			divisors = append(divisors, d)
			//
			if other := v / d; other != d {
				divisors = append(divisors, other)
			}
		}
	}
	//
	return divisors
}

// Strip zero leading coefficients.
func trimRats(coeffs []*big.Rat) []*big.Rat {
	last := 0
	//
	for i, c := range coeffs {
		if c.Sign() != 0 {
			last = i
		}
	}
	//
	return coeffs[:last+1]
}
