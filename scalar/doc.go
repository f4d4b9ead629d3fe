// SPDX-License-Identifier: MIT

// Package scalar is the element-kind layer under package vector and package matrix.
//
// Purpose:
//   - Name the four element kinds (int32, int64, float32, float64) as generic
//     constraints so that every vector/matrix algorithm is written once.
//   - Provide the overflow-checked integer arithmetic that integer vectors are
//     built on. This is the only place in the numeric core that can fail at runtime.
//   - Provide bit-exact equality and hashing for every kind, so NaN and -0.0 behave
//     deterministically in Equal/Hash of vectors and matrices.
//
// Kinds:
//
//	Integer = ~int32 | ~int64    (checked: CheckedAdd, CheckedMultiply, ...)
//	Float   = ~float32 | ~float64 (native IEEE arithmetic)
//	Kind    = Integer | Float
//
// Error policy:
//   - Checked operations return (value, error); the error wraps ErrOverflow,
//     ErrDivideByZero or ErrNotFinite and is matched with errors.Is.
//   - A failing operation returns the zero value; it never returns a wrapped result.
//
// Concurrency:
//   - Every function is pure. No shared state.
package scalar
