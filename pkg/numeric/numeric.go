// Package numeric defines the capability surface a sample's element type must
// satisfy for the statistics packages in this module.
//
// Two constraints partition the API: Real admits every built-in integer and
// floating-point type and is enough for order-based operations (sorting,
// median, rank queries, mode); Float admits only floating-point types and is
// required wherever a statistic divides without truncation or takes a real
// root. Addition, subtraction, multiplication, division, comparison, the 0/1
// identities, and count-to-element conversion are covered by Go's built-in
// operators and conversions under these constraints; the helpers below supply
// the remaining operations (square root, powers, absolute value) that Go has
// no generic operator for.
package numeric

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Real is satisfied by every built-in integer and floating-point type.
type Real interface {
	constraints.Integer | constraints.Float
}

// Float is satisfied by the built-in floating-point types.
type Float interface {
	constraints.Float
}

// Sqrt returns the non-negative square root of x.
func Sqrt[T Float](x T) T {
	return T(math.Sqrt(float64(x)))
}

// Abs returns the absolute value of x.
func Abs[T Float](x T) T {
	return T(math.Abs(float64(x)))
}

// Pow returns x raised to the real power y.
func Pow[T Float](x, y T) T {
	return T(math.Pow(float64(x), float64(y)))
}

// PowInt returns x raised to the non-negative integer power r by repeated
// multiplication. For the small exponents the moment engine uses this is both
// faster and more accurate than going through math.Pow.
func PowInt[T Float](x T, r int) T {
	result := T(1)

	for i := 0; i < r; i++ {
		result *= x
	}

	return result
}
