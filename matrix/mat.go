// SPDX-License-Identifier: MIT

// Package matrix - Mat, the immutable matrix value.
//
// Purpose:
//   - A Mat is a comparable value: every operation returns a new Mat and the
//     receiver never changes, so a Mat may be shared between goroutines.
//
// Implementation:
//   - Elements live column-major in a fixed [16]K (offset col·N + row); for
//     Dim3 only the first 9 cells are used and the rest stay zero, which keeps
//     == meaningful.
//
// Complexity quicksheet:
//   - At/With: O(1); Multiply: O(N³); Inverse/Determinant: closed forms.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlspace/scalar"
)

// Mat is an immutable N×N matrix value. The zero Mat is the zero matrix;
// use Identity for the identity.
type Mat[K scalar.Float, D Dim] struct {
	e [maxN * maxN]K
}

// Compile-time assertions.
var (
	_ Readable[float64, Dim4] = Mat[float64, Dim4]{}
	_ Readable[float32, Dim3] = Mat[float32, Dim3]{}
	_ fmt.Stringer            = Mat[float32, Dim4]{}
)

// Identity returns the N×N identity.
func Identity[K scalar.Float, D Dim]() Mat[K, D] {
	var m Mat[K, D]
	for i := 0; i < dimOf[D](); i++ {
		m.e[offsetOf[D](i, i)] = 1
	}

	return m
}

// MatFromRowMajor builds a Mat from N·N values listed row by row, the way a
// matrix is written on paper.
// Errors: ErrDimensionMismatch when len(vals) != N·N.
func MatFromRowMajor[K scalar.Float, D Dim](vals ...K) (Mat[K, D], error) {
	var m Mat[K, D]
	n := dimOf[D]()
	if len(vals) != n*n {
		return m, matrixErrorf(opFromRowMajor, fmt.Errorf("%d values for %dx%d: %w", len(vals), n, n, ErrDimensionMismatch))
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			m.e[offsetOf[D](r, c)] = vals[r*n+c]
		}
	}

	return m, nil
}

// MatFromColumnMajor builds a Mat from N·N values listed column by column,
// i.e. in storage order.
// Errors: ErrDimensionMismatch when len(vals) != N·N.
func MatFromColumnMajor[K scalar.Float, D Dim](vals ...K) (Mat[K, D], error) {
	var m Mat[K, D]
	n := dimOf[D]()
	if len(vals) != n*n {
		return m, matrixErrorf(opFromColMajor, fmt.Errorf("%d values for %dx%d: %w", len(vals), n, n, ErrDimensionMismatch))
	}
	copy(m.e[:], vals)

	return m, nil
}

// MatOf returns an immutable snapshot of any Readable.
// Errors: ErrNilMatrix, or the first error returned by src.At.
func MatOf[K scalar.Float, D Dim](src Readable[K, D]) (Mat[K, D], error) {
	b, err := load(src)
	if err != nil {
		return Mat[K, D]{}, matrixErrorf(opCopy, err)
	}

	return fromBlock[K, D](&b), nil
}

func fromBlock[K scalar.Float, D Dim](b *block[K]) Mat[K, D] {
	var m Mat[K, D]
	n := dimOf[D]()
	for c := 0; c < n; c++ {
		for r := 0; r < n; r++ {
			m.e[offsetOf[D](r, c)] = b[r][c]
		}
	}

	return m
}

func (m Mat[K, D]) toBlock() block[K] {
	var b block[K]
	n := dimOf[D]()
	for c := 0; c < n; c++ {
		for r := 0; r < n; r++ {
			b[r][c] = m.e[offsetOf[D](r, c)]
		}
	}

	return b
}

// Shape returns the shape marker.
func (m Mat[K, D]) Shape() D {
	var d D

	return d
}

// At returns the element at (row, col).
// Errors: ErrOutOfRange.
func (m Mat[K, D]) At(row, col int) (K, error) {
	if err := validateIndex[D](row, col); err != nil {
		return 0, indexErrorf(kindMat, ctxAt, row, col, err)
	}

	return m.e[offsetOf[D](row, col)], nil
}

func (m Mat[K, D]) isNil() bool { return false }

func (m Mat[K, D]) unsafeAt(row, col int) K { return m.e[offsetOf[D](row, col)] }

// With returns a copy of m with (row, col) set to v; m is unchanged.
// Errors: ErrOutOfRange (the returned Mat is then m itself).
func (m Mat[K, D]) With(row, col int, v K) (Mat[K, D], error) {
	if err := validateIndex[D](row, col); err != nil {
		return m, indexErrorf(kindMat, ctxWith, row, col, err)
	}
	m.e[offsetOf[D](row, col)] = v

	return m, nil
}

// ColumnMajor returns the N·N elements in storage order.
func (m Mat[K, D]) ColumnMajor() []K {
	n := dimOf[D]()
	out := make([]K, n*n)
	copy(out, m.e[:n*n])

	return out
}

// Multiply returns m·o.
func (m Mat[K, D]) Multiply(o Mat[K, D]) Mat[K, D] {
	a, b := m.toBlock(), o.toBlock()
	p := mulBlock(&a, &b, dimOf[D]())

	return fromBlock[K, D](&p)
}

// Inverse returns m⁻¹, or (m, false) when the determinant is exactly zero.
func (m Mat[K, D]) Inverse() (Mat[K, D], bool) {
	a := m.toBlock()
	inv, ok := invertBlock(&a, dimOf[D]())
	if !ok {
		return m, false
	}

	return fromBlock[K, D](&inv), true
}

// Transpose returns mᵀ.
func (m Mat[K, D]) Transpose() Mat[K, D] {
	a := m.toBlock()
	t := transposeBlock(&a, dimOf[D]())

	return fromBlock[K, D](&t)
}

// Scale returns every element multiplied by s.
func (m Mat[K, D]) Scale(s K) Mat[K, D] {
	for i := range m.e {
		m.e[i] *= s
	}

	return m
}

// Add returns m + o.
func (m Mat[K, D]) Add(o Mat[K, D]) Mat[K, D] {
	for i := range m.e {
		m.e[i] += o.e[i]
	}

	return m
}

// Subtract returns m - o.
func (m Mat[K, D]) Subtract(o Mat[K, D]) Mat[K, D] {
	for i := range m.e {
		m.e[i] -= o.e[i]
	}

	return m
}

// Determinant returns det(m), computed in float64.
func (m Mat[K, D]) Determinant() float64 {
	a := m.toBlock()

	return detBlock(&a, dimOf[D]())
}

// Trace returns the sum of the diagonal.
func (m Mat[K, D]) Trace() K {
	a := m.toBlock()

	return traceBlock(&a, dimOf[D]())
}

// Equal reports bit-exact equality (NaN equals NaN with the same payload, -0 ≠ +0).
func (m Mat[K, D]) Equal(o Mat[K, D]) bool {
	for i := range m.e {
		if !scalar.Equals(m.e[i], o.e[i]) {
			return false
		}
	}

	return true
}

// Hash is consistent with Equal.
func (m Mat[K, D]) Hash() uint64 {
	n := dimOf[D]()
	h := uint64(1)
	for _, v := range m.e[:n*n] {
		h = 31*h + scalar.Hash(v)
	}

	return h
}

// CopyTo writes m into out.
// Errors: ErrNilMatrix, or the first error returned by out.Set.
func (m Mat[K, D]) CopyTo(out Writable[K, D]) error {
	b := m.toBlock()
	if err := store(out, &b); err != nil {
		return matrixErrorf(opCopy, err)
	}

	return nil
}

// String renders the matrix row by row.
func (m Mat[K, D]) String() string {
	b := m.toBlock()

	return formatBlock(&b, dimOf[D]())
}

// ApproxEqual reports whether every pair of elements agrees within the
// configured epsilon (absolute or relative, see scalar.AlmostEqual).
// Options: WithEpsilon.
func ApproxEqual[K scalar.Float, D Dim](a, b Mat[K, D], opts ...Option) bool {
	o := gatherOptions(opts...)
	for i := range a.e {
		if !scalar.AlmostEqual(a.e[i], b.e[i], o.eps) {
			return false
		}
	}

	return true
}
