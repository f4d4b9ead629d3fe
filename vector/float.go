// SPDX-License-Identifier: MIT

// Package vector - floating-point algorithms.
//
// Purpose:
//   - Per-dimension entry points for float32/float64 vectors. Each one slices its
//     array arguments and delegates to the kernels in kernels.go.
//
// Behavior highlights:
//   - Pure functions: inputs by value, result by value; no allocation.
//   - No clamping or guarding of degenerate input (see package doc).
//
// Complexity:
//   - O(N) for every function, N ∈ {2,3,4}.

package vector

import "github.com/katalvlaran/lvlspace/scalar"

func approxEqual[F scalar.Float](a, b []F, eps float64) bool {
	for i := range a {
		if !scalar.AlmostEqual(a[i], b[i], eps) {
			return false
		}
	}

	return true
}

// ---------- 2 components ----------

// Add2 returns a + b.
func Add2[F scalar.Float](a, b Vec2[F]) (out Vec2[F]) {
	addInto(out[:], a[:], b[:])

	return out
}

// Subtract2 returns a - b.
func Subtract2[F scalar.Float](a, b Vec2[F]) (out Vec2[F]) {
	subtractInto(out[:], a[:], b[:])

	return out
}

// Scale2 returns v·r.
func Scale2[F scalar.Float](v Vec2[F], r F) (out Vec2[F]) {
	scaleInto(out[:], v[:], r)

	return out
}

// AddScaled2 returns a + b·r.
func AddScaled2[F scalar.Float](a, b Vec2[F], r F) (out Vec2[F]) {
	addScaledInto(out[:], a[:], b[:], r)

	return out
}

// Negate2 returns -v.
func Negate2[F scalar.Float](v Vec2[F]) (out Vec2[F]) {
	negateInto(out[:], v[:])

	return out
}

// Absolute2 returns the componentwise absolute value of v.
func Absolute2[F scalar.Float](v Vec2[F]) (out Vec2[F]) {
	absoluteInto(out[:], v[:])

	return out
}

// DotProduct2 returns Σ a[i]·b[i].
func DotProduct2[F scalar.Float](a, b Vec2[F]) F {
	return dot(a[:], b[:])
}

// MagnitudeSquared2 returns v·v without taking a square root.
func MagnitudeSquared2[F scalar.Float](v Vec2[F]) F {
	return dot(v[:], v[:])
}

// Magnitude2 returns sqrt(v·v), computed through scalar.SquareRoot.
func Magnitude2[F scalar.Float](v Vec2[F]) F {
	return scalar.SquareRoot(dot(v[:], v[:]))
}

// Distance2 returns Magnitude2(a - b).
func Distance2[F scalar.Float](a, b Vec2[F]) F {
	return Magnitude2(Subtract2(a, b))
}

// Normalize2 is the 2-component form of Normalize3.
func Normalize2[F scalar.Float](v Vec2[F]) (out Vec2[F]) {
	normalizeInto(out[:], v[:])

	return out
}

// InterpolateLinear2 is the 2-component form of InterpolateLinear3.
func InterpolateLinear2[F scalar.Float](a, b Vec2[F], alpha F) (out Vec2[F]) {
	lerpInto(out[:], a[:], b[:], alpha)

	return out
}

// InterpolateBilinear2 interpolates the four corners x0y0, x1y0, x0y1, x1y1
// first along x by px, then along y by py.
func InterpolateBilinear2[F scalar.Float](x0y0, x1y0, x0y1, x1y1 Vec2[F], px, py F) Vec2[F] {
	return InterpolateLinear2(InterpolateLinear2(x0y0, x1y0, px), InterpolateLinear2(x0y1, x1y1, px), py)
}

// Projection2 is the 2-component form of Projection3.
func Projection2[F scalar.Float](p, q Vec2[F]) (out Vec2[F]) {
	projectInto(out[:], p[:], q[:])

	return out
}

// OrthoNormalize2 is the 2-component form of OrthoNormalize3.
func OrthoNormalize2[F scalar.Float](v0, v1 Vec2[F]) (v0n, v1n Vec2[F]) {
	orthoNormalizeInto(v0n[:], v1n[:], v0[:], v1[:])

	return v0n, v1n
}

// ApproxEqual2 reports whether every component pair satisfies scalar.AlmostEqual with eps.
func ApproxEqual2[F scalar.Float](a, b Vec2[F], eps float64) bool {
	return approxEqual(a[:], b[:], eps)
}

// ---------- 3 components ----------

// Add3 returns a + b.
func Add3[F scalar.Float](a, b Vec3[F]) (out Vec3[F]) {
	addInto(out[:], a[:], b[:])

	return out
}

// Subtract3 returns a - b.
func Subtract3[F scalar.Float](a, b Vec3[F]) (out Vec3[F]) {
	subtractInto(out[:], a[:], b[:])

	return out
}

// Scale3 returns v·r.
func Scale3[F scalar.Float](v Vec3[F], r F) (out Vec3[F]) {
	scaleInto(out[:], v[:], r)

	return out
}

// AddScaled3 returns a + b·r.
func AddScaled3[F scalar.Float](a, b Vec3[F], r F) (out Vec3[F]) {
	addScaledInto(out[:], a[:], b[:], r)

	return out
}

// Negate3 returns -v.
func Negate3[F scalar.Float](v Vec3[F]) (out Vec3[F]) {
	negateInto(out[:], v[:])

	return out
}

// Absolute3 returns the componentwise absolute value of v.
func Absolute3[F scalar.Float](v Vec3[F]) (out Vec3[F]) {
	absoluteInto(out[:], v[:])

	return out
}

// DotProduct3 returns Σ a[i]·b[i].
func DotProduct3[F scalar.Float](a, b Vec3[F]) F {
	return dot(a[:], b[:])
}

// MagnitudeSquared3 returns v·v without taking a square root.
func MagnitudeSquared3[F scalar.Float](v Vec3[F]) F {
	return dot(v[:], v[:])
}

// Magnitude3 returns sqrt(v·v), computed through scalar.SquareRoot.
func Magnitude3[F scalar.Float](v Vec3[F]) F {
	return scalar.SquareRoot(dot(v[:], v[:]))
}

// Distance3 returns Magnitude3(a - b).
func Distance3[F scalar.Float](a, b Vec3[F]) F {
	return Magnitude3(Subtract3(a, b))
}

// Normalize3 returns v scaled to unit length.
// Implementation:
//   - Stage 1: m = |v|² via DotProduct.
//   - Stage 2: if m > 0, scale by 1/sqrt(m); otherwise return v unchanged.
//
// Behavior highlights:
//   - The zero vector normalizes to itself; this is not an error.
//   - NaN components propagate (m is NaN, the m > 0 test fails, v is returned).
//
// Complexity:
//   - Time O(1), Space O(1).
func Normalize3[F scalar.Float](v Vec3[F]) (out Vec3[F]) {
	normalizeInto(out[:], v[:])

	return out
}

// InterpolateLinear3 returns a·(1-alpha) + b·alpha.
// alpha is not clamped: values outside [0,1] extrapolate along the line.
// alpha == 0 returns a and alpha == 1 returns b exactly for finite inputs.
func InterpolateLinear3[F scalar.Float](a, b Vec3[F], alpha F) (out Vec3[F]) {
	lerpInto(out[:], a[:], b[:], alpha)

	return out
}

// InterpolateBilinear3 interpolates the four corners x0y0, x1y0, x0y1, x1y1
// first along x by px, then along y by py.
func InterpolateBilinear3[F scalar.Float](x0y0, x1y0, x0y1, x1y1 Vec3[F], px, py F) Vec3[F] {
	return InterpolateLinear3(InterpolateLinear3(x0y0, x1y0, px), InterpolateLinear3(x0y1, x1y1, px), py)
}

// Projection3 returns the projection of p onto q: (p·q / |q|²)·q.
// A zero q divides by zero and yields NaN/Inf components; callers that can
// meet a zero q must test MagnitudeSquared3(q) first.
func Projection3[F scalar.Float](p, q Vec3[F]) (out Vec3[F]) {
	projectInto(out[:], p[:], q[:])

	return out
}

// OrthoNormalize3 applies one Gram-Schmidt step to the pair (v0, v1).
// Implementation:
//   - Stage 1: v0n = Normalize3(v0).
//   - Stage 2: r = v1 - (v1·v0n)·v0n, removing the component of v1 along v0n.
//   - Stage 3: v1n = Normalize3(r).
//
// Behavior highlights:
//   - Degenerate input is not signalled: a zero v0 leaves v1 merely normalized,
//     and a v1 collinear with v0 yields a zero (or rounding-noise) v1n.
//
// Complexity:
//   - Time O(1), Space O(1).
func OrthoNormalize3[F scalar.Float](v0, v1 Vec3[F]) (v0n, v1n Vec3[F]) {
	orthoNormalizeInto(v0n[:], v1n[:], v0[:], v1[:])

	return v0n, v1n
}

// ApproxEqual3 reports whether every component pair satisfies scalar.AlmostEqual with eps.
func ApproxEqual3[F scalar.Float](a, b Vec3[F], eps float64) bool {
	return approxEqual(a[:], b[:], eps)
}

// CrossProduct3 returns a × b by cofactor expansion:
//
//	(a.y·b.z - a.z·b.y, a.z·b.x - a.x·b.z, a.x·b.y - a.y·b.x)
//
// The product is anti-commutative: CrossProduct3(a, b) == Negate3(CrossProduct3(b, a)).
func CrossProduct3[F scalar.Float](a, b Vec3[F]) Vec3[F] {
	return Vec3[F]{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// ---------- 4 components ----------

// Add4 returns a + b.
func Add4[F scalar.Float](a, b Vec4[F]) (out Vec4[F]) {
	addInto(out[:], a[:], b[:])

	return out
}

// Subtract4 returns a - b.
func Subtract4[F scalar.Float](a, b Vec4[F]) (out Vec4[F]) {
	subtractInto(out[:], a[:], b[:])

	return out
}

// Scale4 returns v·r.
func Scale4[F scalar.Float](v Vec4[F], r F) (out Vec4[F]) {
	scaleInto(out[:], v[:], r)

	return out
}

// AddScaled4 returns a + b·r.
func AddScaled4[F scalar.Float](a, b Vec4[F], r F) (out Vec4[F]) {
	addScaledInto(out[:], a[:], b[:], r)

	return out
}

// Negate4 returns -v.
func Negate4[F scalar.Float](v Vec4[F]) (out Vec4[F]) {
	negateInto(out[:], v[:])

	return out
}

// Absolute4 returns the componentwise absolute value of v.
func Absolute4[F scalar.Float](v Vec4[F]) (out Vec4[F]) {
	absoluteInto(out[:], v[:])

	return out
}

// DotProduct4 returns Σ a[i]·b[i].
func DotProduct4[F scalar.Float](a, b Vec4[F]) F {
	return dot(a[:], b[:])
}

// MagnitudeSquared4 returns v·v without taking a square root.
func MagnitudeSquared4[F scalar.Float](v Vec4[F]) F {
	return dot(v[:], v[:])
}

// Magnitude4 returns sqrt(v·v), computed through scalar.SquareRoot.
func Magnitude4[F scalar.Float](v Vec4[F]) F {
	return scalar.SquareRoot(dot(v[:], v[:]))
}

// Distance4 returns Magnitude4(a - b).
func Distance4[F scalar.Float](a, b Vec4[F]) F {
	return Magnitude4(Subtract4(a, b))
}

// Normalize4 is the 4-component form of Normalize3.
func Normalize4[F scalar.Float](v Vec4[F]) (out Vec4[F]) {
	normalizeInto(out[:], v[:])

	return out
}

// InterpolateLinear4 is the 4-component form of InterpolateLinear3.
func InterpolateLinear4[F scalar.Float](a, b Vec4[F], alpha F) (out Vec4[F]) {
	lerpInto(out[:], a[:], b[:], alpha)

	return out
}

// InterpolateBilinear4 interpolates the four corners x0y0, x1y0, x0y1, x1y1
// first along x by px, then along y by py.
func InterpolateBilinear4[F scalar.Float](x0y0, x1y0, x0y1, x1y1 Vec4[F], px, py F) Vec4[F] {
	return InterpolateLinear4(InterpolateLinear4(x0y0, x1y0, px), InterpolateLinear4(x0y1, x1y1, px), py)
}

// Projection4 is the 4-component form of Projection3.
func Projection4[F scalar.Float](p, q Vec4[F]) (out Vec4[F]) {
	projectInto(out[:], p[:], q[:])

	return out
}

// OrthoNormalize4 is the 4-component form of OrthoNormalize3.
func OrthoNormalize4[F scalar.Float](v0, v1 Vec4[F]) (v0n, v1n Vec4[F]) {
	orthoNormalizeInto(v0n[:], v1n[:], v0[:], v1[:])

	return v0n, v1n
}

// ApproxEqual4 reports whether every component pair satisfies scalar.AlmostEqual with eps.
func ApproxEqual4[F scalar.Float](a, b Vec4[F], eps float64) bool {
	return approxEqual(a[:], b[:], eps)
}
