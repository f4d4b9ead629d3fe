// SPDX-License-Identifier: MIT

// Package matrix - phantom-tagged transforms.
//
// Purpose:
//   - Tagged[K,D,T0,T1] is a Mat that maps vectors in space T0 to space T1.
//     Composition and application only type-check when the spaces line up.
//
// Implementation:
//   - Two leading [0]T fields carry the tags at zero cost:
//     unsafe.Sizeof(Tagged[K,D,A,B]{}) == unsafe.Sizeof(Mat[K,D]{}).
//
// Bridging:
//   - Tag[T0,T1](m) imposes, t.Untagged() erases, t.CopyTo(out) exports into
//     any untagged Writable. These are the only sanctioned conversions.

package matrix

import (
	"github.com/katalvlaran/lvlspace/scalar"
	"github.com/katalvlaran/lvlspace/vector"
)

// Tagged is a transform from space T0 to space T1.
type Tagged[K scalar.Float, D Dim, T0, T1 any] struct {
	_ [0]T0
	_ [0]T1
	m Mat[K, D]
}

// Tag returns m as a transform from T0 to T1. The tags come first so the
// element kind and shape are inferred:
//
//	objectToWorld := matrix.Tag[Object, World](m)
func Tag[T0, T1 any, K scalar.Float, D Dim](m Mat[K, D]) Tagged[K, D, T0, T1] {
	return Tagged[K, D, T0, T1]{m: m}
}

// Untagged returns the underlying matrix.
func (t Tagged[K, D, T0, T1]) Untagged() Mat[K, D] { return t.m }

// Shape returns the shape marker.
func (t Tagged[K, D, T0, T1]) Shape() D { return t.m.Shape() }

// At returns the element at (row, col). Errors: ErrOutOfRange.
func (t Tagged[K, D, T0, T1]) At(row, col int) (K, error) { return t.m.At(row, col) }

func (t Tagged[K, D, T0, T1]) isNil() bool { return false }

func (t Tagged[K, D, T0, T1]) unsafeAt(row, col int) K { return t.m.unsafeAt(row, col) }

// CopyTo writes the matrix into an untagged out, dropping the tags.
func (t Tagged[K, D, T0, T1]) CopyTo(out Writable[K, D]) error { return t.m.CopyTo(out) }

// Equal compares matrices bit-exactly; the tags already agree by type.
func (t Tagged[K, D, T0, T1]) Equal(o Tagged[K, D, T0, T1]) bool { return t.m.Equal(o.m) }

// String renders the matrix row by row.
func (t Tagged[K, D, T0, T1]) String() string { return t.m.String() }

// MultiplyTagged composes m0 after m1: the result maps T0 to T2 by applying
// m1 (T0→T1) first, then m0 (T1→T2).
func MultiplyTagged[K scalar.Float, D Dim, T0, T1, T2 any](m0 Tagged[K, D, T1, T2], m1 Tagged[K, D, T0, T1]) Tagged[K, D, T0, T2] {
	return Tagged[K, D, T0, T2]{m: m0.m.Multiply(m1.m)}
}

// InvertTagged returns the transform from T1 back to T0, or false when the
// matrix is singular.
func InvertTagged[K scalar.Float, D Dim, T0, T1 any](m Tagged[K, D, T0, T1]) (Tagged[K, D, T1, T0], bool) {
	inv, ok := m.m.Inverse()
	if !ok {
		return Tagged[K, D, T1, T0]{}, false
	}

	return Tagged[K, D, T1, T0]{m: inv}, true
}

// TransformTagged3 maps a T0 vector to T1.
func TransformTagged3[K scalar.Float, T0, T1 any](m Tagged[K, Dim3, T0, T1], v vector.Tagged3[K, T0]) vector.Tagged3[K, T1] {
	return vector.Tag3[T1](ApplyVector3(m.m, v.Untagged()))
}

// TransformTagged4 maps a T0 vector to T1.
func TransformTagged4[K scalar.Float, T0, T1 any](m Tagged[K, Dim4, T0, T1], v vector.Tagged4[K, T0]) vector.Tagged4[K, T1] {
	return vector.Tag4[T1](ApplyVector4(m.m, v.Untagged()))
}
