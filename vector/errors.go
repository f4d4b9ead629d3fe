// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// Checked integer algorithms return scalar sentinels (scalar.ErrOverflow,
// scalar.ErrDivideByZero) wrapped with the vector operation tag; the sentinels
// below cover the vector surface itself.

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates a component index outside [0, N).
	ErrOutOfRange = errors.New("vector: component index out of range")

	// ErrDimensionMismatch indicates that source and destination of a copy differ in length.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")
)

// Operation name constants for unified error wrapping.
const (
	opCheckedAbsolute2          = "CheckedAbsolute2"
	opCheckedAbsolute3          = "CheckedAbsolute3"
	opCheckedAbsolute4          = "CheckedAbsolute4"
	opCheckedAdd2               = "CheckedAdd2"
	opCheckedAdd3               = "CheckedAdd3"
	opCheckedAdd4               = "CheckedAdd4"
	opCheckedAddScaled2         = "CheckedAddScaled2"
	opCheckedAddScaled3         = "CheckedAddScaled3"
	opCheckedAddScaled4         = "CheckedAddScaled4"
	opCheckedCrossProduct3      = "CheckedCrossProduct3"
	opCheckedDistance2          = "CheckedDistance2"
	opCheckedDistance3          = "CheckedDistance3"
	opCheckedDistance4          = "CheckedDistance4"
	opCheckedDotProduct2        = "CheckedDotProduct2"
	opCheckedDotProduct3        = "CheckedDotProduct3"
	opCheckedDotProduct4        = "CheckedDotProduct4"
	opCheckedInterpolateLinear2 = "CheckedInterpolateLinear2"
	opCheckedInterpolateLinear3 = "CheckedInterpolateLinear3"
	opCheckedInterpolateLinear4 = "CheckedInterpolateLinear4"
	opCheckedMagnitude2         = "CheckedMagnitude2"
	opCheckedMagnitude3         = "CheckedMagnitude3"
	opCheckedMagnitude4         = "CheckedMagnitude4"
	opCheckedMagnitudeSquared2  = "CheckedMagnitudeSquared2"
	opCheckedMagnitudeSquared3  = "CheckedMagnitudeSquared3"
	opCheckedMagnitudeSquared4  = "CheckedMagnitudeSquared4"
	opCheckedNegate2            = "CheckedNegate2"
	opCheckedNegate3            = "CheckedNegate3"
	opCheckedNegate4            = "CheckedNegate4"
	opCheckedProjection2        = "CheckedProjection2"
	opCheckedProjection3        = "CheckedProjection3"
	opCheckedProjection4        = "CheckedProjection4"
	opCheckedScale2             = "CheckedScale2"
	opCheckedScale3             = "CheckedScale3"
	opCheckedScale4             = "CheckedScale4"
	opCheckedSubtract2          = "CheckedSubtract2"
	opCheckedSubtract3          = "CheckedSubtract3"
	opCheckedSubtract4          = "CheckedSubtract4"
)

// vectorErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func vectorErrorf(op string, err error) error {
	return fmt.Errorf("vector.%s: %w", op, err)
}

// indexErrorf reports an invalid component index for the given method.
func indexErrorf(method string, i, n int) error {
	return fmt.Errorf("vector.%s(%d) on %d components: %w", method, i, n, ErrOutOfRange)
}
