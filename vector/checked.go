// SPDX-License-Identifier: MIT

// Package vector - overflow-checked integer algorithms.
//
// Purpose:
//   - Per-dimension entry points for int32/int64 vectors. Every multiply, add and
//     subtract goes through scalar's checked arithmetic.
//
// Behavior highlights:
//   - On failure the zero vector is returned with an error wrapping
//     scalar.ErrOverflow, scalar.ErrDivideByZero or scalar.ErrNotFinite;
//     nothing partially computed escapes.
//   - Magnitude and distance truncate the float64 square root toward zero.
//
// Complexity:
//   - O(N) for every function, N ∈ {2,3,4}.

package vector

import "github.com/katalvlaran/lvlspace/scalar"

// ---------- 2 components ----------

// CheckedAdd2 returns a + b.
func CheckedAdd2[I scalar.Integer](a, b Vec2[I]) (Vec2[I], error) {
	var out Vec2[I]
	if err := checkedAddInto(out[:], a[:], b[:]); err != nil {
		return Vec2[I]{}, vectorErrorf(opCheckedAdd2, err)
	}

	return out, nil
}

// CheckedSubtract2 returns a - b.
func CheckedSubtract2[I scalar.Integer](a, b Vec2[I]) (Vec2[I], error) {
	var out Vec2[I]
	if err := checkedSubtractInto(out[:], a[:], b[:]); err != nil {
		return Vec2[I]{}, vectorErrorf(opCheckedSubtract2, err)
	}

	return out, nil
}

// CheckedScale2 returns v·r.
func CheckedScale2[I scalar.Integer](v Vec2[I], r I) (Vec2[I], error) {
	var out Vec2[I]
	if err := checkedScaleInto(out[:], v[:], r); err != nil {
		return Vec2[I]{}, vectorErrorf(opCheckedScale2, err)
	}

	return out, nil
}

// CheckedAddScaled2 returns a + b·r.
func CheckedAddScaled2[I scalar.Integer](a, b Vec2[I], r I) (Vec2[I], error) {
	var out Vec2[I]
	if err := checkedAddScaledInto(out[:], a[:], b[:], r); err != nil {
		return Vec2[I]{}, vectorErrorf(opCheckedAddScaled2, err)
	}

	return out, nil
}

// CheckedNegate2 returns -v.
func CheckedNegate2[I scalar.Integer](v Vec2[I]) (Vec2[I], error) {
	var out Vec2[I]
	if err := checkedNegateInto(out[:], v[:]); err != nil {
		return Vec2[I]{}, vectorErrorf(opCheckedNegate2, err)
	}

	return out, nil
}

// CheckedAbsolute2 returns the componentwise absolute value of v.
func CheckedAbsolute2[I scalar.Integer](v Vec2[I]) (Vec2[I], error) {
	var out Vec2[I]
	if err := checkedAbsoluteInto(out[:], v[:]); err != nil {
		return Vec2[I]{}, vectorErrorf(opCheckedAbsolute2, err)
	}

	return out, nil
}

// CheckedDotProduct2 returns Σ a[i]·b[i].
func CheckedDotProduct2[I scalar.Integer](a, b Vec2[I]) (I, error) {
	d, err := checkedDot(a[:], b[:])
	if err != nil {
		return 0, vectorErrorf(opCheckedDotProduct2, err)
	}

	return d, nil
}

// CheckedMagnitudeSquared2 returns v·v.
func CheckedMagnitudeSquared2[I scalar.Integer](v Vec2[I]) (I, error) {
	d, err := checkedDot(v[:], v[:])
	if err != nil {
		return 0, vectorErrorf(opCheckedMagnitudeSquared2, err)
	}

	return d, nil
}

// CheckedMagnitude2 returns sqrt(v·v) truncated toward zero.
func CheckedMagnitude2[I scalar.Integer](v Vec2[I]) (I, error) {
	m, err := checkedMagnitude(v[:])
	if err != nil {
		return 0, vectorErrorf(opCheckedMagnitude2, err)
	}

	return m, nil
}

// CheckedDistance2 returns CheckedMagnitude2(a - b).
func CheckedDistance2[I scalar.Integer](a, b Vec2[I]) (I, error) {
	var diff Vec2[I]
	if err := checkedSubtractInto(diff[:], a[:], b[:]); err != nil {
		return 0, vectorErrorf(opCheckedDistance2, err)
	}
	m, err := checkedMagnitude(diff[:])
	if err != nil {
		return 0, vectorErrorf(opCheckedDistance2, err)
	}

	return m, nil
}

// CheckedInterpolateLinear2 returns a + trunc((b-a)·alpha); alpha 0 and 1 yield
// a and b exactly. alpha is not clamped.
func CheckedInterpolateLinear2[I scalar.Integer](a, b Vec2[I], alpha float64) (Vec2[I], error) {
	var out Vec2[I]
	if err := checkedLerpInto(out[:], a[:], b[:], alpha); err != nil {
		return Vec2[I]{}, vectorErrorf(opCheckedInterpolateLinear2, err)
	}

	return out, nil
}

// CheckedProjection2 returns ((p·q) / |q|²)·q using integer division.
// A zero q fails with scalar.ErrDivideByZero.
func CheckedProjection2[I scalar.Integer](p, q Vec2[I]) (Vec2[I], error) {
	var out Vec2[I]
	if err := checkedProjectInto(out[:], p[:], q[:]); err != nil {
		return Vec2[I]{}, vectorErrorf(opCheckedProjection2, err)
	}

	return out, nil
}

// ---------- 3 components ----------

// CheckedAdd3 returns a + b.
func CheckedAdd3[I scalar.Integer](a, b Vec3[I]) (Vec3[I], error) {
	var out Vec3[I]
	if err := checkedAddInto(out[:], a[:], b[:]); err != nil {
		return Vec3[I]{}, vectorErrorf(opCheckedAdd3, err)
	}

	return out, nil
}

// CheckedSubtract3 returns a - b.
func CheckedSubtract3[I scalar.Integer](a, b Vec3[I]) (Vec3[I], error) {
	var out Vec3[I]
	if err := checkedSubtractInto(out[:], a[:], b[:]); err != nil {
		return Vec3[I]{}, vectorErrorf(opCheckedSubtract3, err)
	}

	return out, nil
}

// CheckedScale3 returns v·r.
func CheckedScale3[I scalar.Integer](v Vec3[I], r I) (Vec3[I], error) {
	var out Vec3[I]
	if err := checkedScaleInto(out[:], v[:], r); err != nil {
		return Vec3[I]{}, vectorErrorf(opCheckedScale3, err)
	}

	return out, nil
}

// CheckedAddScaled3 returns a + b·r.
func CheckedAddScaled3[I scalar.Integer](a, b Vec3[I], r I) (Vec3[I], error) {
	var out Vec3[I]
	if err := checkedAddScaledInto(out[:], a[:], b[:], r); err != nil {
		return Vec3[I]{}, vectorErrorf(opCheckedAddScaled3, err)
	}

	return out, nil
}

// CheckedNegate3 returns -v.
func CheckedNegate3[I scalar.Integer](v Vec3[I]) (Vec3[I], error) {
	var out Vec3[I]
	if err := checkedNegateInto(out[:], v[:]); err != nil {
		return Vec3[I]{}, vectorErrorf(opCheckedNegate3, err)
	}

	return out, nil
}

// CheckedAbsolute3 returns the componentwise absolute value of v.
func CheckedAbsolute3[I scalar.Integer](v Vec3[I]) (Vec3[I], error) {
	var out Vec3[I]
	if err := checkedAbsoluteInto(out[:], v[:]); err != nil {
		return Vec3[I]{}, vectorErrorf(opCheckedAbsolute3, err)
	}

	return out, nil
}

// CheckedDotProduct3 returns Σ a[i]·b[i].
func CheckedDotProduct3[I scalar.Integer](a, b Vec3[I]) (I, error) {
	d, err := checkedDot(a[:], b[:])
	if err != nil {
		return 0, vectorErrorf(opCheckedDotProduct3, err)
	}

	return d, nil
}

// CheckedMagnitudeSquared3 returns v·v.
func CheckedMagnitudeSquared3[I scalar.Integer](v Vec3[I]) (I, error) {
	d, err := checkedDot(v[:], v[:])
	if err != nil {
		return 0, vectorErrorf(opCheckedMagnitudeSquared3, err)
	}

	return d, nil
}

// CheckedMagnitude3 returns sqrt(v·v) truncated toward zero.
func CheckedMagnitude3[I scalar.Integer](v Vec3[I]) (I, error) {
	m, err := checkedMagnitude(v[:])
	if err != nil {
		return 0, vectorErrorf(opCheckedMagnitude3, err)
	}

	return m, nil
}

// CheckedDistance3 returns CheckedMagnitude3(a - b).
func CheckedDistance3[I scalar.Integer](a, b Vec3[I]) (I, error) {
	var diff Vec3[I]
	if err := checkedSubtractInto(diff[:], a[:], b[:]); err != nil {
		return 0, vectorErrorf(opCheckedDistance3, err)
	}
	m, err := checkedMagnitude(diff[:])
	if err != nil {
		return 0, vectorErrorf(opCheckedDistance3, err)
	}

	return m, nil
}

// CheckedInterpolateLinear3 returns a + trunc((b-a)·alpha); alpha 0 and 1 yield
// a and b exactly. alpha is not clamped.
func CheckedInterpolateLinear3[I scalar.Integer](a, b Vec3[I], alpha float64) (Vec3[I], error) {
	var out Vec3[I]
	if err := checkedLerpInto(out[:], a[:], b[:], alpha); err != nil {
		return Vec3[I]{}, vectorErrorf(opCheckedInterpolateLinear3, err)
	}

	return out, nil
}

// CheckedProjection3 returns ((p·q) / |q|²)·q using integer division.
// A zero q fails with scalar.ErrDivideByZero.
func CheckedProjection3[I scalar.Integer](p, q Vec3[I]) (Vec3[I], error) {
	var out Vec3[I]
	if err := checkedProjectInto(out[:], p[:], q[:]); err != nil {
		return Vec3[I]{}, vectorErrorf(opCheckedProjection3, err)
	}

	return out, nil
}

// CheckedCrossProduct3 returns a × b with every product and difference checked.
func CheckedCrossProduct3[I scalar.Integer](a, b Vec3[I]) (Vec3[I], error) {
	var out Vec3[I]
	// component i = a[j]·b[k] - a[k]·b[j] for (i,j,k) cyclic.
	for i := 0; i < 3; i++ {
		j, k := (i+1)%3, (i+2)%3
		p, err := scalar.CheckedMultiply(a[j], b[k])
		if err != nil {
			return Vec3[I]{}, vectorErrorf(opCheckedCrossProduct3, err)
		}
		q, err := scalar.CheckedMultiply(a[k], b[j])
		if err != nil {
			return Vec3[I]{}, vectorErrorf(opCheckedCrossProduct3, err)
		}
		out[i], err = scalar.CheckedSubtract(p, q)
		if err != nil {
			return Vec3[I]{}, vectorErrorf(opCheckedCrossProduct3, err)
		}
	}

	return out, nil
}

// ---------- 4 components ----------

// CheckedAdd4 returns a + b.
func CheckedAdd4[I scalar.Integer](a, b Vec4[I]) (Vec4[I], error) {
	var out Vec4[I]
	if err := checkedAddInto(out[:], a[:], b[:]); err != nil {
		return Vec4[I]{}, vectorErrorf(opCheckedAdd4, err)
	}

	return out, nil
}

// CheckedSubtract4 returns a - b.
func CheckedSubtract4[I scalar.Integer](a, b Vec4[I]) (Vec4[I], error) {
	var out Vec4[I]
	if err := checkedSubtractInto(out[:], a[:], b[:]); err != nil {
		return Vec4[I]{}, vectorErrorf(opCheckedSubtract4, err)
	}

	return out, nil
}

// CheckedScale4 returns v·r.
func CheckedScale4[I scalar.Integer](v Vec4[I], r I) (Vec4[I], error) {
	var out Vec4[I]
	if err := checkedScaleInto(out[:], v[:], r); err != nil {
		return Vec4[I]{}, vectorErrorf(opCheckedScale4, err)
	}

	return out, nil
}

// CheckedAddScaled4 returns a + b·r.
func CheckedAddScaled4[I scalar.Integer](a, b Vec4[I], r I) (Vec4[I], error) {
	var out Vec4[I]
	if err := checkedAddScaledInto(out[:], a[:], b[:], r); err != nil {
		return Vec4[I]{}, vectorErrorf(opCheckedAddScaled4, err)
	}

	return out, nil
}

// CheckedNegate4 returns -v.
func CheckedNegate4[I scalar.Integer](v Vec4[I]) (Vec4[I], error) {
	var out Vec4[I]
	if err := checkedNegateInto(out[:], v[:]); err != nil {
		return Vec4[I]{}, vectorErrorf(opCheckedNegate4, err)
	}

	return out, nil
}

// CheckedAbsolute4 returns the componentwise absolute value of v.
func CheckedAbsolute4[I scalar.Integer](v Vec4[I]) (Vec4[I], error) {
	var out Vec4[I]
	if err := checkedAbsoluteInto(out[:], v[:]); err != nil {
		return Vec4[I]{}, vectorErrorf(opCheckedAbsolute4, err)
	}

	return out, nil
}

// CheckedDotProduct4 returns Σ a[i]·b[i].
func CheckedDotProduct4[I scalar.Integer](a, b Vec4[I]) (I, error) {
	d, err := checkedDot(a[:], b[:])
	if err != nil {
		return 0, vectorErrorf(opCheckedDotProduct4, err)
	}

	return d, nil
}

// CheckedMagnitudeSquared4 returns v·v.
func CheckedMagnitudeSquared4[I scalar.Integer](v Vec4[I]) (I, error) {
	d, err := checkedDot(v[:], v[:])
	if err != nil {
		return 0, vectorErrorf(opCheckedMagnitudeSquared4, err)
	}

	return d, nil
}

// CheckedMagnitude4 returns sqrt(v·v) truncated toward zero.
func CheckedMagnitude4[I scalar.Integer](v Vec4[I]) (I, error) {
	m, err := checkedMagnitude(v[:])
	if err != nil {
		return 0, vectorErrorf(opCheckedMagnitude4, err)
	}

	return m, nil
}

// CheckedDistance4 returns CheckedMagnitude4(a - b).
func CheckedDistance4[I scalar.Integer](a, b Vec4[I]) (I, error) {
	var diff Vec4[I]
	if err := checkedSubtractInto(diff[:], a[:], b[:]); err != nil {
		return 0, vectorErrorf(opCheckedDistance4, err)
	}
	m, err := checkedMagnitude(diff[:])
	if err != nil {
		return 0, vectorErrorf(opCheckedDistance4, err)
	}

	return m, nil
}

// CheckedInterpolateLinear4 returns a + trunc((b-a)·alpha); alpha 0 and 1 yield
// a and b exactly. alpha is not clamped.
func CheckedInterpolateLinear4[I scalar.Integer](a, b Vec4[I], alpha float64) (Vec4[I], error) {
	var out Vec4[I]
	if err := checkedLerpInto(out[:], a[:], b[:], alpha); err != nil {
		return Vec4[I]{}, vectorErrorf(opCheckedInterpolateLinear4, err)
	}

	return out, nil
}

// CheckedProjection4 returns ((p·q) / |q|²)·q using integer division.
// A zero q fails with scalar.ErrDivideByZero.
func CheckedProjection4[I scalar.Integer](p, q Vec4[I]) (Vec4[I], error) {
	var out Vec4[I]
	if err := checkedProjectInto(out[:], p[:], q[:]); err != nil {
		return Vec4[I]{}, vectorErrorf(opCheckedProjection4, err)
	}

	return out, nil
}
