// SPDX-License-Identifier: MIT

// Package scalar - kind-independent operations.
//
// Purpose:
//   - Equality and hashing at the bit level, so that values which compare equal
//     also hash equal (NaN == NaN when the payload matches, -0.0 != +0.0).
//   - Square root computed in float64 and narrowed to the requested kind.
//   - Min/max/clamp that follow IEEE semantics for floats (NaN propagates).

package scalar

import (
	"math"

	"golang.org/x/exp/constraints"
)

// floatBits returns the IEEE bit pattern of a float kind, widened to uint64.
// Precondition: IsFloat[K]().
func floatBits[K Kind](v K) uint64 {
	if Size[K]() == 4 {
		return uint64(math.Float32bits(float32(v)))
	}

	return math.Float64bits(float64(v))
}

// Equals reports whether a and b are bit-identical.
// For floats this differs from ==: NaN equals a NaN with the same payload and
// -0.0 does not equal +0.0. For integers it is plain ==.
// Complexity: O(1).
func Equals[K Kind](a, b K) bool {
	if IsFloat[K]() {
		return floatBits(a) == floatBits(b)
	}

	return a == b
}

// Hash returns a hash of v consistent with Equals: Equals(a,b) ⇒ Hash(a)==Hash(b).
// Floats hash their bit pattern; integers hash their two's complement value.
func Hash[K Kind](v K) uint64 {
	if IsFloat[K]() {
		bits := floatBits(v)

		return bits ^ (bits >> 32)
	}

	return uint64(int64(v))
}

// SquareRoot returns sqrt(v) computed in float64 and narrowed to K.
// Integer kinds truncate toward zero; a negative integer input has no
// meaningful result and must be excluded by the caller.
func SquareRoot[K Kind](v K) K {
	return K(math.Sqrt(float64(v)))
}

// Absolute returns |v| for float kinds by clearing the sign bit, so that
// Absolute(-0.0) == +0.0 and Absolute(NaN) is NaN. Integer kinds use CheckedAbsolute.
func Absolute[F Float](v F) F {
	return F(math.Abs(float64(v)))
}

// Minimum returns the smaller of a and b. For floats, NaN propagates and
// -0.0 is less than +0.0.
func Minimum[T constraints.Ordered](a, b T) T { return min(a, b) }

// Maximum returns the larger of a and b. For floats, NaN propagates and
// +0.0 is greater than -0.0.
func Maximum[T constraints.Ordered](a, b T) T { return max(a, b) }

// Clamp restricts v to [lo, hi] as max(lo, min(v, hi)).
// The bounds are not validated; lo > hi yields lo.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	return max(lo, min(v, hi))
}

// AlmostEqual reports whether a and b are within eps, either absolutely or
// relative to the larger magnitude. Exactly equal values (including ±Inf)
// always match; NaN never matches.
// Complexity: O(1).
func AlmostEqual[F Float](a, b F, eps float64) bool {
	if a == b {
		return true
	}
	x, y := float64(a), float64(b)
	diff := math.Abs(x - y)
	if diff <= eps {
		return true
	}

	return diff <= eps*math.Max(math.Abs(x), math.Abs(y))
}
