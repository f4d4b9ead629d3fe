// SPDX-License-Identifier: MIT

// Package matrix - algorithms over the capability interfaces.
//
// Purpose:
//   - Work on any Readable/Writable, with a fast path for the package backends
//     (unchecked access) and a checked fallback for foreign implementations.
//   - Stay aliasing-safe: every input is loaded into a local block before the
//     first write to out, so out may be the same object as an input.
//
// Errors:
//   - ErrNilMatrix for nil operands; any error returned by a foreign At/Set.
//     Errors are wrapped with the operation tag (matrixErrorf). The package
//     backends never fail on in-range access, so for them err is always nil
//     when the operands are non-nil.
//
// Complexity quicksheet:
//   - Multiply: O(N³); everything else O(N²) or O(1).

package matrix

import (
	"github.com/katalvlaran/lvlspace/scalar"
	"github.com/katalvlaran/lvlspace/vector"
)

// Determinant returns det(m) computed in float64: cofactor expansion along the
// first row for 3×3, Laplace expansion by 2×2 minors for 4×4.
func Determinant[K scalar.Float, D Dim](m Readable[K, D]) (float64, error) {
	a, err := load(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return detBlock(&a, dimOf[D]()), nil
}

// Invert writes m⁻¹ into out and reports true. When det(m) is exactly zero it
// reports false and leaves out untouched.
// Implementation:
//   - Stage 1: load m; widen to float64.
//   - Stage 2: determinant; stop on 0.
//   - Stage 3: adjugate scaled by 1/det, narrowed to K, stored into out.
func Invert[K scalar.Float, D Dim](m Readable[K, D], out Writable[K, D]) (bool, error) {
	a, err := load(m)
	if err != nil {
		return false, matrixErrorf(opInvert, err)
	}
	inv, ok := invertBlock(&a, dimOf[D]())
	if !ok {
		return false, nil
	}
	if err = store(out, &inv); err != nil {
		return false, matrixErrorf(opInvert, err)
	}

	return true, nil
}

// Multiply writes m0·m1 into out: out[r][c] = Σ_k m0[r][k]·m1[k][c].
// out may alias m0 and/or m1.
func Multiply[K scalar.Float, D Dim](m0, m1 Readable[K, D], out Writable[K, D]) error {
	a, err := load(m0)
	if err != nil {
		return matrixErrorf(opMultiply, err)
	}
	b, err := load(m1)
	if err != nil {
		return matrixErrorf(opMultiply, err)
	}
	p := mulBlock(&a, &b, dimOf[D]())
	if err = store(out, &p); err != nil {
		return matrixErrorf(opMultiply, err)
	}

	return nil
}

// MultiplyVector3 returns m·v (each row of m dotted with v).
func MultiplyVector3[K scalar.Float](m Readable[K, Dim3], v vector.Vec3[K]) (vector.Vec3[K], error) {
	a, err := load(m)
	if err != nil {
		return vector.Vec3[K]{}, matrixErrorf(opMultiplyVector, err)
	}
	var out vector.Vec3[K]
	mulVecInto(&a, v[:], out[:])

	return out, nil
}

// MultiplyVector4 returns m·v (each row of m dotted with v).
func MultiplyVector4[K scalar.Float](m Readable[K, Dim4], v vector.Vec4[K]) (vector.Vec4[K], error) {
	a, err := load(m)
	if err != nil {
		return vector.Vec4[K]{}, matrixErrorf(opMultiplyVector, err)
	}
	var out vector.Vec4[K]
	mulVecInto(&a, v[:], out[:])

	return out, nil
}

// mulVecInto computes dst = a·v; len(v) == len(dst) == N and dst must not alias v.
func mulVecInto[K scalar.Float](a *block[K], v, dst []K) {
	for r := range dst {
		var sum K
		for c := range v {
			sum += a[r][c] * v[c]
		}
		dst[r] = sum
	}
}

// Transpose writes mᵀ into out. out may be m.
func Transpose[K scalar.Float, D Dim](m Readable[K, D], out Writable[K, D]) error {
	a, err := load(m)
	if err != nil {
		return matrixErrorf(opTranspose, err)
	}
	t := transposeBlock(&a, dimOf[D]())
	if err = store(out, &t); err != nil {
		return matrixErrorf(opTranspose, err)
	}

	return nil
}

// Scale writes s·m into out.
func Scale[K scalar.Float, D Dim](m Readable[K, D], s K, out Writable[K, D]) error {
	a, err := load(m)
	if err != nil {
		return matrixErrorf(opScale, err)
	}
	p := scaleBlock(&a, s, dimOf[D]())
	if err = store(out, &p); err != nil {
		return matrixErrorf(opScale, err)
	}

	return nil
}

// Add writes m0 + m1 into out.
func Add[K scalar.Float, D Dim](m0, m1 Readable[K, D], out Writable[K, D]) error {
	return addSub(m0, m1, 1, out, opAdd)
}

// Subtract writes m0 - m1 into out.
func Subtract[K scalar.Float, D Dim](m0, m1 Readable[K, D], out Writable[K, D]) error {
	return addSub(m0, m1, -1, out, opSubtract)
}

// addSub shares loading and wrapping between Add and Subtract.
func addSub[K scalar.Float, D Dim](m0, m1 Readable[K, D], sign K, out Writable[K, D], tag string) error {
	a, err := load(m0)
	if err != nil {
		return matrixErrorf(tag, err)
	}
	b, err := load(m1)
	if err != nil {
		return matrixErrorf(tag, err)
	}
	s := addBlock(&a, &b, sign, dimOf[D]())
	if err = store(out, &s); err != nil {
		return matrixErrorf(tag, err)
	}

	return nil
}

// Trace returns the sum of the diagonal of m.
func Trace[K scalar.Float, D Dim](m Readable[K, D]) (K, error) {
	a, err := load(m)
	if err != nil {
		return 0, matrixErrorf(opTrace, err)
	}

	return traceBlock(&a, dimOf[D]()), nil
}

// SetIdentity overwrites out with the identity.
func SetIdentity[K scalar.Float, D Dim](out Writable[K, D]) error {
	b := identityBlock[K](dimOf[D]())
	if err := store(out, &b); err != nil {
		return matrixErrorf(opSetIdentity, err)
	}

	return nil
}

// SetZero overwrites out with zeros.
func SetZero[K scalar.Float, D Dim](out Writable[K, D]) error {
	var b block[K]
	if err := store(out, &b); err != nil {
		return matrixErrorf(opSetZero, err)
	}

	return nil
}

// Copy writes every element of src into out.
func Copy[K scalar.Float, D Dim](src Readable[K, D], out Writable[K, D]) error {
	b, err := load(src)
	if err != nil {
		return matrixErrorf(opCopy, err)
	}
	if err = store(out, &b); err != nil {
		return matrixErrorf(opCopy, err)
	}

	return nil
}

// ---------- rows & columns ----------

// readLine reads row i (byRow) or column i of m into dst.
func readLine[K scalar.Float, D Dim](m Readable[K, D], i int, byRow bool, dst []K, tag string) error {
	if m == nil {
		return matrixErrorf(tag, ErrNilMatrix)
	}
	for j := range dst {
		r, c := i, j
		if !byRow {
			r, c = j, i
		}
		v, err := m.At(r, c)
		if err != nil {
			return matrixErrorf(tag, err)
		}
		dst[j] = v
	}

	return nil
}

// writeLine validates i before the first write so a bad index changes nothing.
func writeLine[K scalar.Float, D Dim](out Writable[K, D], i int, byRow bool, src []K, tag string) error {
	if out == nil {
		return matrixErrorf(tag, ErrNilMatrix)
	}
	if err := validateIndex[D](i, 0); err != nil {
		return matrixErrorf(tag, err)
	}
	for j, v := range src {
		r, c := i, j
		if !byRow {
			r, c = j, i
		}
		if err := out.Set(r, c, v); err != nil {
			return matrixErrorf(tag, err)
		}
	}

	return nil
}

// Row3 returns row i of m. Errors: ErrOutOfRange.
func Row3[K scalar.Float](m Readable[K, Dim3], i int) (vector.Vec3[K], error) {
	var v vector.Vec3[K]
	err := readLine(m, i, true, v[:], opRow)

	return v, err
}

// Row4 returns row i of m. Errors: ErrOutOfRange.
func Row4[K scalar.Float](m Readable[K, Dim4], i int) (vector.Vec4[K], error) {
	var v vector.Vec4[K]
	err := readLine(m, i, true, v[:], opRow)

	return v, err
}

// Column3 returns column i of m. Errors: ErrOutOfRange.
func Column3[K scalar.Float](m Readable[K, Dim3], i int) (vector.Vec3[K], error) {
	var v vector.Vec3[K]
	err := readLine(m, i, false, v[:], opColumn)

	return v, err
}

// Column4 returns column i of m. Errors: ErrOutOfRange.
func Column4[K scalar.Float](m Readable[K, Dim4], i int) (vector.Vec4[K], error) {
	var v vector.Vec4[K]
	err := readLine(m, i, false, v[:], opColumn)

	return v, err
}

// SetRow3 overwrites row i of out with v. Errors: ErrOutOfRange (out unchanged).
func SetRow3[K scalar.Float](out Writable[K, Dim3], i int, v vector.Vec3[K]) error {
	return writeLine(out, i, true, v[:], opSetRow)
}

// SetRow4 overwrites row i of out with v. Errors: ErrOutOfRange (out unchanged).
func SetRow4[K scalar.Float](out Writable[K, Dim4], i int, v vector.Vec4[K]) error {
	return writeLine(out, i, true, v[:], opSetRow)
}

// SetColumn3 overwrites column i of out with v. Errors: ErrOutOfRange (out unchanged).
func SetColumn3[K scalar.Float](out Writable[K, Dim3], i int, v vector.Vec3[K]) error {
	return writeLine(out, i, false, v[:], opSetColumn)
}

// SetColumn4 overwrites column i of out with v. Errors: ErrOutOfRange (out unchanged).
func SetColumn4[K scalar.Float](out Writable[K, Dim4], i int, v vector.Vec4[K]) error {
	return writeLine(out, i, false, v[:], opSetColumn)
}
