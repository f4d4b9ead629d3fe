// SPDX-License-Identifier: MIT

// Package scalar - element kinds.
//
// Purpose:
//   - Declare the closed set of element kinds the library supports and the
//     compile-time helpers that dispatch on them without reflection.

package scalar

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Integer is the overflow-checked element kind family (int32, int64).
// Narrower and unsigned integers are deliberately excluded.
type Integer interface {
	~int32 | ~int64
}

// Float is the IEEE element kind family (float32, float64).
type Float interface {
	constraints.Float
}

// Kind is any element kind a vector may hold. Matrices use Float only.
type Kind interface {
	Integer | Float
}

// IsFloat reports whether K is a floating-point kind.
// The division is folded per instantiation; no runtime type inspection happens.
func IsFloat[K Kind]() bool {
	var half K = 1
	half /= 2

	return half != 0
}

// Size returns the width of K in bytes (4 or 8). This is the element stride
// of any packed buffer holding K values.
func Size[K Kind]() int {
	var zero K

	return int(unsafe.Sizeof(zero))
}

// MaxValue returns the largest value representable by the integer kind I.
func MaxValue[I Integer]() I {
	bits := uint(Size[I]()) * 8

	return I(uint64(1)<<(bits-1) - 1)
}

// MinValue returns the smallest value representable by the integer kind I.
func MinValue[I Integer]() I {
	return -MaxValue[I]() - 1
}
