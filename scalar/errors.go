// SPDX-License-Identifier: MIT
// Package scalar: sentinel error set.
// All checked operations return these sentinels wrapped with the operation
// and its operands; callers match them with errors.Is.

package scalar

import (
	"errors"
	"fmt"
)

var (
	// ErrOverflow is returned when the mathematical result of a checked integer
	// operation does not fit in the element kind.
	ErrOverflow = errors.New("scalar: integer overflow")

	// ErrDivideByZero is returned by CheckedDivide when the divisor is zero.
	ErrDivideByZero = errors.New("scalar: integer divide by zero")

	// ErrNotFinite is returned when a NaN or ±Inf float is narrowed to an integer kind.
	ErrNotFinite = errors.New("scalar: NaN or Inf cannot be narrowed to an integer")
)

// Operation tags for error wrapping (no magic strings at call sites).
const (
	opAdd         = "CheckedAdd"
	opSubtract    = "CheckedSubtract"
	opMultiply    = "CheckedMultiply"
	opDivide      = "CheckedDivide"
	opAbsolute    = "CheckedAbsolute"
	opNegate      = "CheckedNegate"
	opFromFloat64 = "CheckedFromFloat64"
)

// binaryErrorf wraps err with the operation tag and both operands.
func binaryErrorf[I Integer](op string, a, b I, err error) error {
	return fmt.Errorf("%s(%d, %d): %w", op, int64(a), int64(b), err)
}

// unaryErrorf wraps err with the operation tag and its single operand.
func unaryErrorf(op string, a any, err error) error {
	return fmt.Errorf("%s(%v): %w", op, a, err)
}
