// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ". Call sites wrap sentinels with an
// operation tag (matrixErrorf/directErrorf); callers match with errors.Is.
// Singular input is reported as a bool by Invert, never as an error.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates that a row or column index is outside [0, N).
	// Public indexers (At/Set/Offset) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrBadBuffer indicates that a caller buffer does not hold exactly N·N elements.
	ErrBadBuffer = errors.New("matrix: buffer length does not match shape")

	// ErrDimensionMismatch indicates a value list whose length is not N·N.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// Operation name constants for unified error wrapping.
const (
	opMultiply       = "Multiply"
	opMultiplyVector = "MultiplyVector"
	opTranspose      = "Transpose"
	opScale          = "Scale"
	opAdd            = "Add"
	opSubtract       = "Subtract"
	opDeterminant    = "Determinant"
	opInvert         = "Invert"
	opTrace          = "Trace"
	opCopy           = "Copy"
	opSetIdentity    = "SetIdentity"
	opSetZero        = "SetZero"
	opRow            = "Row"
	opColumn         = "Column"
	opSetRow         = "SetRow"
	opSetColumn      = "SetColumn"
	opOffset         = "Offset"
	opFromRowMajor   = "MatFromRowMajor"
	opFromColMajor   = "MatFromColumnMajor"
	opWrap           = "WrapDirect"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// indexErrorf reports the receiver type, method and coordinates of a bad access.
func indexErrorf(kind, method string, row, col int, err error) error {
	return fmt.Errorf("%s.%s(%d,%d): %w", kind, method, row, col, err)
}

// directErrorf attaches buffer context to a Direct construction failure.
func directErrorf(got, want int, err error) error {
	return fmt.Errorf("%s: got %d bytes, want %d: %w", opWrap, got, want, err)
}
