// SPDX-License-Identifier: MIT

// Package scalar - overflow-checked integer arithmetic.
//
// Purpose:
//   - Give integer vectors the semantics of exact arithmetic: any result that does
//     not fit in the element kind is reported, never silently wrapped.
//
// Implementation notes:
//   - Go signed arithmetic wraps on overflow (it is defined, not UB), so every check
//     computes the wrapped result first and then tests for the wrap.
//   - No operation widens to a larger type; the same code serves int32 and int64.
//
// Complexity:
//   - Every function is O(1) and allocation-free on success.

package scalar

import "math"

// CheckedAdd returns a + b or ErrOverflow.
func CheckedAdd[I Integer](a, b I) (I, error) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, binaryErrorf(opAdd, a, b, ErrOverflow)
	}

	return sum, nil
}

// CheckedSubtract returns a - b or ErrOverflow.
func CheckedSubtract[I Integer](a, b I) (I, error) {
	diff := a - b
	if (b > 0 && diff > a) || (b < 0 && diff < a) {
		return 0, binaryErrorf(opSubtract, a, b, ErrOverflow)
	}

	return diff, nil
}

// CheckedMultiply returns a * b or ErrOverflow.
// Implementation:
//   - Stage 1: zero operands short-circuit (no overflow possible).
//   - Stage 2: the MinValue × -1 pair is rejected explicitly, because the
//     division test below cannot detect it (MinValue / -1 wraps to MinValue).
//   - Stage 3: compute the wrapped product and verify it by division.
func CheckedMultiply[I Integer](a, b I) (I, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	lowest := MinValue[I]()
	if (a == -1 && b == lowest) || (b == -1 && a == lowest) {
		return 0, binaryErrorf(opMultiply, a, b, ErrOverflow)
	}
	product := a * b
	if product/b != a {
		return 0, binaryErrorf(opMultiply, a, b, ErrOverflow)
	}

	return product, nil
}

// CheckedDivide returns a / b truncated toward zero.
// Errors:
//   - ErrDivideByZero when b == 0.
//   - ErrOverflow for MinValue / -1.
func CheckedDivide[I Integer](a, b I) (I, error) {
	if b == 0 {
		return 0, binaryErrorf(opDivide, a, b, ErrDivideByZero)
	}
	if b == -1 && a == MinValue[I]() {
		return 0, binaryErrorf(opDivide, a, b, ErrOverflow)
	}

	return a / b, nil
}

// CheckedAbsolute returns |a|. The absolute value of MinValue is not
// representable and yields ErrOverflow.
func CheckedAbsolute[I Integer](a I) (I, error) {
	if a == MinValue[I]() {
		return 0, unaryErrorf(opAbsolute, a, ErrOverflow)
	}
	if a < 0 {
		return -a, nil
	}

	return a, nil
}

// CheckedNegate returns -a, failing for MinValue.
func CheckedNegate[I Integer](a I) (I, error) {
	if a == MinValue[I]() {
		return 0, unaryErrorf(opNegate, a, ErrOverflow)
	}

	return -a, nil
}

// CheckedFromFloat64 narrows f to the integer kind I, truncating toward zero.
// Go leaves out-of-range float→int conversions implementation-defined, so the
// range is validated before converting.
//
// Errors:
//   - ErrNotFinite for NaN and ±Inf.
//   - ErrOverflow when trunc(f) lies outside [MinValue, MaxValue].
func CheckedFromFloat64[I Integer](f float64) (I, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, unaryErrorf(opFromFloat64, f, ErrNotFinite)
	}
	t := math.Trunc(f)
	// MinValue is a power of two and therefore exact in float64; its negation
	// is the first value above MaxValue.
	lowest := float64(MinValue[I]())
	if t < lowest || t >= -lowest {
		return 0, unaryErrorf(opFromFloat64, f, ErrOverflow)
	}

	return I(t), nil
}
