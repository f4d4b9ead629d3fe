// SPDX-License-Identifier: MIT

// Package matrix - shapes, offsets and capability interfaces.
//
// Purpose:
//   - Carry the dimension N ∈ {3,4} as a type parameter so that a 3×3 and a
//     4×4 matrix can never be mixed by accident.
//   - Define the single column-major offset formula col·N + row shared by every
//     backend, in a checked (public) and an unchecked (internal) form.
//
// Complexity quicksheet:
//   - Offset/offsetOf/validateIndex: O(1), no allocation.

package matrix

import "github.com/katalvlaran/lvlspace/scalar"

// Dim3 marks a 3×3 matrix.
type Dim3 struct{}

// N returns 3.
func (Dim3) N() int { return 3 }

// Dim4 marks a 4×4 matrix.
type Dim4 struct{}

// N returns 4.
func (Dim4) N() int { return 4 }

// Dim is the shape constraint: exactly one of the markers above.
type Dim interface {
	Dim3 | Dim4
	N() int
}

// maxN bounds every local block.
const maxN = 4

// Readable is the read capability of a matrix. At is bounds-checked.
type Readable[K scalar.Float, D Dim] interface {
	Shape() D
	At(row, col int) (K, error)
}

// Writable is the write capability of a mutable matrix. Set is bounds-checked.
type Writable[K scalar.Float, D Dim] interface {
	Shape() D
	Set(row, col int, v K) error
}

// ReadWriter combines both capabilities.
type ReadWriter[K scalar.Float, D Dim] interface {
	Readable[K, D]
	Writable[K, D]
}

// unsafeReader is implemented by the package backends; coordinates are trusted.
// isNil reports a typed-nil pointer hidden behind a non-nil interface.
type unsafeReader[K scalar.Float] interface {
	isNil() bool
	unsafeAt(row, col int) K
}

// unsafeWriter is implemented by the mutable package backends.
type unsafeWriter[K scalar.Float] interface {
	isNil() bool
	unsafeSet(row, col int, v K)
}

// dimOf returns N for the shape D.
func dimOf[D Dim]() int {
	var d D

	return d.N()
}

// ElementSize returns the byte stride of one element of kind K (4 or 8).
func ElementSize[K scalar.Float]() int { return scalar.Size[K]() }

// Offset returns the linear column-major offset col·N + row of (row, col).
// Errors: ErrOutOfRange when either index is outside [0, N).
// Complexity: O(1).
func Offset[D Dim](row, col int) (int, error) {
	if err := validateIndex[D](row, col); err != nil {
		return 0, matrixErrorf(opOffset, err)
	}

	return offsetOf[D](row, col), nil
}

// offsetOf is the unchecked form of Offset used in hot loops.
func offsetOf[D Dim](row, col int) int {
	return col*dimOf[D]() + row
}

// validateIndex ensures 0 ≤ row, col < N. Returns the plain sentinel.
func validateIndex[D Dim](row, col int) error {
	n := dimOf[D]()
	if row < 0 || row >= n || col < 0 || col >= n {
		return ErrOutOfRange
	}

	return nil
}
