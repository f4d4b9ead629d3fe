// SPDX-License-Identifier: MIT

// Package vector - clamp family.
//
// Purpose:
//   - Componentwise min/max against scalar or per-component bounds, shared by
//     every element kind because no arithmetic is involved.
//
// Behavior highlights:
//   - Each component is clamped independently: out[i] = max(lo[i], min(v[i], hi[i])).
//   - Bounds are not validated; lo > hi yields lo. NaN propagates for floats.

package vector

import "github.com/katalvlaran/lvlspace/scalar"

func clampInto[K scalar.Kind](dst, v, lo, hi []K) {
	for i := range dst {
		dst[i] = scalar.Clamp(v[i], lo[i], hi[i])
	}
}

func clampMinimumInto[K scalar.Kind](dst, v, lo []K) {
	for i := range dst {
		dst[i] = scalar.Maximum(v[i], lo[i])
	}
}

func clampMaximumInto[K scalar.Kind](dst, v, hi []K) {
	for i := range dst {
		dst[i] = scalar.Minimum(v[i], hi[i])
	}
}

// ---------- 2 components ----------

// Clamp2 clamps every component of v to [lo, hi].
func Clamp2[K scalar.Kind](v Vec2[K], lo, hi K) Vec2[K] {
	return ClampByVector2(v, Vec2[K]{lo, lo}, Vec2[K]{hi, hi})
}

// ClampMinimum2 raises every component of v to at least lo.
func ClampMinimum2[K scalar.Kind](v Vec2[K], lo K) Vec2[K] {
	return ClampMinimumByVector2(v, Vec2[K]{lo, lo})
}

// ClampMaximum2 lowers every component of v to at most hi.
func ClampMaximum2[K scalar.Kind](v Vec2[K], hi K) Vec2[K] {
	return ClampMaximumByVector2(v, Vec2[K]{hi, hi})
}

// ClampByVector2 clamps v[i] to [lo[i], hi[i]] for each component.
func ClampByVector2[K scalar.Kind](v, lo, hi Vec2[K]) (out Vec2[K]) {
	clampInto(out[:], v[:], lo[:], hi[:])

	return out
}

// ClampMinimumByVector2 returns max(v[i], lo[i]) per component.
func ClampMinimumByVector2[K scalar.Kind](v, lo Vec2[K]) (out Vec2[K]) {
	clampMinimumInto(out[:], v[:], lo[:])

	return out
}

// ClampMaximumByVector2 returns min(v[i], hi[i]) per component.
func ClampMaximumByVector2[K scalar.Kind](v, hi Vec2[K]) (out Vec2[K]) {
	clampMaximumInto(out[:], v[:], hi[:])

	return out
}

// ---------- 3 components ----------

// Clamp3 clamps every component of v to [lo, hi].
func Clamp3[K scalar.Kind](v Vec3[K], lo, hi K) Vec3[K] {
	return ClampByVector3(v, Vec3[K]{lo, lo, lo}, Vec3[K]{hi, hi, hi})
}

// ClampMinimum3 raises every component of v to at least lo.
func ClampMinimum3[K scalar.Kind](v Vec3[K], lo K) Vec3[K] {
	return ClampMinimumByVector3(v, Vec3[K]{lo, lo, lo})
}

// ClampMaximum3 lowers every component of v to at most hi.
func ClampMaximum3[K scalar.Kind](v Vec3[K], hi K) Vec3[K] {
	return ClampMaximumByVector3(v, Vec3[K]{hi, hi, hi})
}

// ClampByVector3 clamps v[i] to [lo[i], hi[i]] for each component.
func ClampByVector3[K scalar.Kind](v, lo, hi Vec3[K]) (out Vec3[K]) {
	clampInto(out[:], v[:], lo[:], hi[:])

	return out
}

// ClampMinimumByVector3 returns max(v[i], lo[i]) per component.
func ClampMinimumByVector3[K scalar.Kind](v, lo Vec3[K]) (out Vec3[K]) {
	clampMinimumInto(out[:], v[:], lo[:])

	return out
}

// ClampMaximumByVector3 returns min(v[i], hi[i]) per component.
func ClampMaximumByVector3[K scalar.Kind](v, hi Vec3[K]) (out Vec3[K]) {
	clampMaximumInto(out[:], v[:], hi[:])

	return out
}

// ---------- 4 components ----------

// Clamp4 clamps every component of v to [lo, hi].
func Clamp4[K scalar.Kind](v Vec4[K], lo, hi K) Vec4[K] {
	return ClampByVector4(v, Vec4[K]{lo, lo, lo, lo}, Vec4[K]{hi, hi, hi, hi})
}

// ClampMinimum4 raises every component of v to at least lo.
func ClampMinimum4[K scalar.Kind](v Vec4[K], lo K) Vec4[K] {
	return ClampMinimumByVector4(v, Vec4[K]{lo, lo, lo, lo})
}

// ClampMaximum4 lowers every component of v to at most hi.
func ClampMaximum4[K scalar.Kind](v Vec4[K], hi K) Vec4[K] {
	return ClampMaximumByVector4(v, Vec4[K]{hi, hi, hi, hi})
}

// ClampByVector4 clamps v[i] to [lo[i], hi[i]] for each component.
func ClampByVector4[K scalar.Kind](v, lo, hi Vec4[K]) (out Vec4[K]) {
	clampInto(out[:], v[:], lo[:], hi[:])

	return out
}

// ClampMinimumByVector4 returns max(v[i], lo[i]) per component.
func ClampMinimumByVector4[K scalar.Kind](v, lo Vec4[K]) (out Vec4[K]) {
	clampMinimumInto(out[:], v[:], lo[:])

	return out
}

// ClampMaximumByVector4 returns min(v[i], hi[i]) per component.
func ClampMaximumByVector4[K scalar.Kind](v, hi Vec4[K]) (out Vec4[K]) {
	clampMaximumInto(out[:], v[:], hi[:])

	return out
}
