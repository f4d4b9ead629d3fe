// SPDX-License-Identifier: MIT

// Package matrix - Array storage & safe accessors.
//
// Purpose:
//   - Provide a heap-allocated N×N matrix backed by a private 2D array.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//
// AI-Hints:
//   - Array is the simplest mutable backend; prefer Direct when the bytes must
//     reach a native API, and Mat when a value that cannot change is wanted.
//
// Complexity quicksheet:
//   - NewArray: O(N²); At/Set: O(1); NewArrayFrom: O(N²).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlspace/scalar"
)

// ---------- error context tags ----------

const (
	kindArray  = "Array"
	kindDirect = "Direct"
	kindMat    = "Mat"
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxWith    = "With"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Array is a mutable N×N matrix owning a 2D array indexed [col][row].
// Not safe for concurrent mutation.
type Array[K scalar.Float, D Dim] struct {
	cols [maxN][maxN]K
}

// Compile-time assertions.
var (
	_ ReadWriter[float64, Dim4] = (*Array[float64, Dim4])(nil)
	_ ReadWriter[float32, Dim3] = (*Array[float32, Dim3])(nil)
	_ fmt.Stringer              = (*Array[float64, Dim3])(nil)
)

// NewArray returns a new identity matrix.
// Complexity: O(N²).
func NewArray[K scalar.Float, D Dim]() *Array[K, D] {
	a := &Array[K, D]{}
	for i := 0; i < dimOf[D](); i++ {
		a.cols[i][i] = 1
	}

	return a
}

// NewArrayFrom returns a new Array holding a copy of src.
// Errors: ErrNilMatrix, or the first error returned by src.At.
func NewArrayFrom[K scalar.Float, D Dim](src Readable[K, D]) (*Array[K, D], error) {
	b, err := load(src)
	if err != nil {
		return nil, matrixErrorf(opCopy, err)
	}
	a := &Array[K, D]{}
	storeUnchecked[K, D](a, &b)

	return a, nil
}

// Shape returns the shape marker.
func (a *Array[K, D]) Shape() D {
	var d D

	return d
}

// At returns the element at (row, col).
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(1).
func (a *Array[K, D]) At(row, col int) (K, error) {
	if a == nil {
		return 0, indexErrorf(kindArray, ctxAt, row, col, ErrNilMatrix)
	}
	if err := validateIndex[D](row, col); err != nil {
		return 0, indexErrorf(kindArray, ctxAt, row, col, err)
	}

	return a.cols[col][row], nil
}

// Set assigns v at (row, col).
// Errors: ErrNilMatrix, ErrOutOfRange.
// Complexity: O(1).
func (a *Array[K, D]) Set(row, col int, v K) error {
	if a == nil {
		return indexErrorf(kindArray, ctxSet, row, col, ErrNilMatrix)
	}
	if err := validateIndex[D](row, col); err != nil {
		return indexErrorf(kindArray, ctxSet, row, col, err)
	}
	a.cols[col][row] = v

	return nil
}

func (a *Array[K, D]) isNil() bool { return a == nil }

func (a *Array[K, D]) unsafeAt(row, col int) K { return a.cols[col][row] }

func (a *Array[K, D]) unsafeSet(row, col int, v K) { a.cols[col][row] = v }

// Mat returns an immutable snapshot of a. A nil a yields the zero Mat.
func (a *Array[K, D]) Mat() Mat[K, D] {
	if a == nil {
		return Mat[K, D]{}
	}
	b := loadUnchecked[K, D](a)

	return fromBlock[K, D](&b)
}

// String renders the matrix row by row.
func (a *Array[K, D]) String() string {
	if a == nil {
		return "<nil>"
	}
	b := loadUnchecked[K, D](a)

	return formatBlock(&b, dimOf[D]())
}

// formatBlock renders one "[a, b, c]" line per row.
func formatBlock[K scalar.Float](b *block[K], n int) string {
	var sb strings.Builder
	for r := 0; r < n; r++ {
		sb.WriteString(_fmtRowOpen)
		for c := 0; c < n; c++ {
			if c > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%v", b[r][c])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
