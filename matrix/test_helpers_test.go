// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures with exactly known determinants
//     and inverses.
//   - Provide wrappers that force the checked (non-backend) code paths.

package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlspace/matrix"
	"github.com/katalvlaran/lvlspace/scalar"
)

// Space tags.
type (
	Object struct{}
	World  struct{}
	Camera struct{}
)

// tight tolerance for float64 results that are exact up to rounding
var tight = matrix.WithEpsilon(1e-12)

// errBoom is returned by failingWriter.
var errBoom = errors.New("boom")

// hide wraps a ReadWriter to mask its concrete type, so algorithms cannot
// take the unchecked backend fast path and fall back to At/Set.
type hide[K scalar.Float, D matrix.Dim] struct {
	matrix.ReadWriter[K, D]
}

// failingWriter accepts `ok` writes, then fails every Set with errBoom.
type failingWriter struct {
	ok     int
	writes int
}

func (w *failingWriter) Shape() matrix.Dim4 { return matrix.Dim4{} }

func (w *failingWriter) Set(_, _ int, _ float64) error {
	if w.writes >= w.ok {
		return errBoom
	}
	w.writes++

	return nil
}

// mat3 builds a float64 3×3 from row-major values or fails the test.
func mat3(t testing.TB, rows ...float64) matrix.Mat[float64, matrix.Dim3] {
	t.Helper()
	m, err := matrix.MatFromRowMajor[float64, matrix.Dim3](rows...)
	require.NoError(t, err)

	return m
}

// mat4 builds a float64 4×4 from row-major values or fails the test.
func mat4(t testing.TB, rows ...float64) matrix.Mat[float64, matrix.Dim4] {
	t.Helper()
	m, err := matrix.MatFromRowMajor[float64, matrix.Dim4](rows...)
	require.NoError(t, err)

	return m
}

// det1Mat3 has determinant 1 and an integer inverse (see inverseOfDet1Mat3).
func det1Mat3(t testing.TB) matrix.Mat[float64, matrix.Dim3] {
	return mat3(t,
		1, 2, 3,
		0, 1, 4,
		5, 6, 0)
}

func inverseOfDet1Mat3(t testing.TB) matrix.Mat[float64, matrix.Dim3] {
	return mat3(t,
		-24, 18, 5,
		20, -15, -4,
		-5, 4, 1)
}

// det30Mat4 has determinant 30.
func det30Mat4(t testing.TB) matrix.Mat[float64, matrix.Dim4] {
	return mat4(t,
		1, 0, 2, -1,
		3, 0, 0, 5,
		2, 1, 4, -3,
		1, 0, 5, 0)
}

// singularMat4 repeats its first row.
func singularMat4(t testing.TB) matrix.Mat[float64, matrix.Dim4] {
	return mat4(t,
		1, 2, 3, 4,
		5, 6, 7, 8,
		1, 2, 3, 4,
		0, 0, 0, 1)
}

// newArray4 copies m into a fresh Array or fails the test.
func newArray4(t testing.TB, m matrix.Mat[float64, matrix.Dim4]) *matrix.Array[float64, matrix.Dim4] {
	t.Helper()
	a, err := matrix.NewArrayFrom[float64, matrix.Dim4](m)
	require.NoError(t, err)

	return a
}

// newDirect4 copies m into a fresh Direct or fails the test.
func newDirect4(t testing.TB, m matrix.Mat[float64, matrix.Dim4]) *matrix.Direct[float64, matrix.Dim4] {
	t.Helper()
	d, err := matrix.NewDirectFrom[float64, matrix.Dim4](m)
	require.NoError(t, err)

	return d
}

// snapshot4 reads any Readable back into a Mat or fails the test.
func snapshot4(t testing.TB, m matrix.Readable[float64, matrix.Dim4]) matrix.Mat[float64, matrix.Dim4] {
	t.Helper()
	s, err := matrix.MatOf(m)
	require.NoError(t, err)

	return s
}
