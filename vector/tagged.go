// SPDX-License-Identifier: MIT

// Package vector - phantom-tagged vectors.
//
// Purpose:
//   - Attach a compile-time space marker S (object space, world space, ...) to a
//     vector so that values from different spaces cannot be combined by accident.
//
// Implementation:
//   - The marker is a leading [0]S field: zero-sized, never read, and placed first
//     so that no trailing padding is added. A TaggedN is laid out exactly like VecN.
//   - Tags never influence a computed value; two tagged vectors with different
//     tags and equal components are bitwise identical.
//
// Bridging:
//   - TagN[S](v) imposes a tag, t.Untagged() erases it. These are the only
//     sanctioned conversions; erasing and re-imposing is the caller's decision.
//
// AI-Hints:
//   - Declare tags as empty struct types: type World struct{}.
//   - Only the common float algorithms have tagged forms; for anything else use
//     Untagged, the plain algorithm, then TagN again.

package vector

import "github.com/katalvlaran/lvlspace/scalar"

// ---------- 2 components ----------

// Tagged2 is a Vec2 expressed in the space S.
type Tagged2[K scalar.Kind, S any] struct {
	_ [0]S
	v Vec2[K]
}

// Tag2 returns v tagged with the space S. S comes first so that K is inferred:
//
//	p := vector.Tag2[World](vector.Vec2[float64]{...})
func Tag2[S any, K scalar.Kind](v Vec2[K]) Tagged2[K, S] {
	return Tagged2[K, S]{v: v}
}

// Untagged returns the plain vector, erasing the tag.
func (t Tagged2[K, S]) Untagged() Vec2[K] { return t.v }

// Len returns 2.
func (t Tagged2[K, S]) Len() int { return 2 }

// Component returns component i or ErrOutOfRange.
func (t Tagged2[K, S]) Component(i int) (K, error) { return t.v.Component(i) }

// X returns component 0.
func (t Tagged2[K, S]) X() K { return t.v[0] }

// Y returns component 1.
func (t Tagged2[K, S]) Y() K { return t.v[1] }

// Equal reports bit-exact equality of the components.
func (t Tagged2[K, S]) Equal(o Tagged2[K, S]) bool { return t.v.Equal(o.v) }

// Hash returns the hash of the untagged vector.
func (t Tagged2[K, S]) Hash() uint64 { return t.v.Hash() }

// String renders the components like Vec2.String.
func (t Tagged2[K, S]) String() string { return t.v.String() }

// AddTagged2 returns a + b within the space S.
func AddTagged2[F scalar.Float, S any](a, b Tagged2[F, S]) Tagged2[F, S] {
	return Tagged2[F, S]{v: Add2(a.v, b.v)}
}

// SubtractTagged2 returns a - b within the space S.
func SubtractTagged2[F scalar.Float, S any](a, b Tagged2[F, S]) Tagged2[F, S] {
	return Tagged2[F, S]{v: Subtract2(a.v, b.v)}
}

// ScaleTagged2 returns v·r.
func ScaleTagged2[F scalar.Float, S any](v Tagged2[F, S], r F) Tagged2[F, S] {
	return Tagged2[F, S]{v: Scale2(v.v, r)}
}

// DotProductTagged2 returns a·b; both operands must share the space S.
func DotProductTagged2[F scalar.Float, S any](a, b Tagged2[F, S]) F {
	return DotProduct2(a.v, b.v)
}

// MagnitudeTagged2 returns the length of v.
func MagnitudeTagged2[F scalar.Float, S any](v Tagged2[F, S]) F {
	return Magnitude2(v.v)
}

// NormalizeTagged2 returns v scaled to unit length (zero stays zero).
func NormalizeTagged2[F scalar.Float, S any](v Tagged2[F, S]) Tagged2[F, S] {
	return Tagged2[F, S]{v: Normalize2(v.v)}
}

// InterpolateLinearTagged2 returns a·(1-alpha) + b·alpha.
func InterpolateLinearTagged2[F scalar.Float, S any](a, b Tagged2[F, S], alpha F) Tagged2[F, S] {
	return Tagged2[F, S]{v: InterpolateLinear2(a.v, b.v, alpha)}
}

// ---------- 3 components ----------

// Tagged3 is a Vec3 expressed in the space S.
type Tagged3[K scalar.Kind, S any] struct {
	_ [0]S
	v Vec3[K]
}

// Tag3 returns v tagged with the space S. S comes first so that K is inferred:
//
//	p := vector.Tag3[World](vector.Vec3[float64]{...})
func Tag3[S any, K scalar.Kind](v Vec3[K]) Tagged3[K, S] {
	return Tagged3[K, S]{v: v}
}

// Untagged returns the plain vector, erasing the tag.
func (t Tagged3[K, S]) Untagged() Vec3[K] { return t.v }

// Len returns 3.
func (t Tagged3[K, S]) Len() int { return 3 }

// Component returns component i or ErrOutOfRange.
func (t Tagged3[K, S]) Component(i int) (K, error) { return t.v.Component(i) }

// X returns component 0.
func (t Tagged3[K, S]) X() K { return t.v[0] }

// Y returns component 1.
func (t Tagged3[K, S]) Y() K { return t.v[1] }

// Z returns component 2.
func (t Tagged3[K, S]) Z() K { return t.v[2] }

// Equal reports bit-exact equality of the components.
func (t Tagged3[K, S]) Equal(o Tagged3[K, S]) bool { return t.v.Equal(o.v) }

// Hash returns the hash of the untagged vector.
func (t Tagged3[K, S]) Hash() uint64 { return t.v.Hash() }

// String renders the components like Vec3.String.
func (t Tagged3[K, S]) String() string { return t.v.String() }

// AddTagged3 returns a + b within the space S.
func AddTagged3[F scalar.Float, S any](a, b Tagged3[F, S]) Tagged3[F, S] {
	return Tagged3[F, S]{v: Add3(a.v, b.v)}
}

// SubtractTagged3 returns a - b within the space S.
func SubtractTagged3[F scalar.Float, S any](a, b Tagged3[F, S]) Tagged3[F, S] {
	return Tagged3[F, S]{v: Subtract3(a.v, b.v)}
}

// ScaleTagged3 returns v·r.
func ScaleTagged3[F scalar.Float, S any](v Tagged3[F, S], r F) Tagged3[F, S] {
	return Tagged3[F, S]{v: Scale3(v.v, r)}
}

// DotProductTagged3 returns a·b; both operands must share the space S.
func DotProductTagged3[F scalar.Float, S any](a, b Tagged3[F, S]) F {
	return DotProduct3(a.v, b.v)
}

// MagnitudeTagged3 returns the length of v.
func MagnitudeTagged3[F scalar.Float, S any](v Tagged3[F, S]) F {
	return Magnitude3(v.v)
}

// NormalizeTagged3 returns v scaled to unit length (zero stays zero).
func NormalizeTagged3[F scalar.Float, S any](v Tagged3[F, S]) Tagged3[F, S] {
	return Tagged3[F, S]{v: Normalize3(v.v)}
}

// InterpolateLinearTagged3 returns a·(1-alpha) + b·alpha.
func InterpolateLinearTagged3[F scalar.Float, S any](a, b Tagged3[F, S], alpha F) Tagged3[F, S] {
	return Tagged3[F, S]{v: InterpolateLinear3(a.v, b.v, alpha)}
}

// CrossProductTagged3 returns a × b within the space S.
func CrossProductTagged3[F scalar.Float, S any](a, b Tagged3[F, S]) Tagged3[F, S] {
	return Tagged3[F, S]{v: CrossProduct3(a.v, b.v)}
}

// ---------- 4 components ----------

// Tagged4 is a Vec4 expressed in the space S.
type Tagged4[K scalar.Kind, S any] struct {
	_ [0]S
	v Vec4[K]
}

// Tag4 returns v tagged with the space S. S comes first so that K is inferred:
//
//	p := vector.Tag4[World](vector.Vec4[float64]{...})
func Tag4[S any, K scalar.Kind](v Vec4[K]) Tagged4[K, S] {
	return Tagged4[K, S]{v: v}
}

// Untagged returns the plain vector, erasing the tag.
func (t Tagged4[K, S]) Untagged() Vec4[K] { return t.v }

// Len returns 4.
func (t Tagged4[K, S]) Len() int { return 4 }

// Component returns component i or ErrOutOfRange.
func (t Tagged4[K, S]) Component(i int) (K, error) { return t.v.Component(i) }

// X returns component 0.
func (t Tagged4[K, S]) X() K { return t.v[0] }

// Y returns component 1.
func (t Tagged4[K, S]) Y() K { return t.v[1] }

// Z returns component 2.
func (t Tagged4[K, S]) Z() K { return t.v[2] }

// W returns component 3.
func (t Tagged4[K, S]) W() K { return t.v[3] }

// Equal reports bit-exact equality of the components.
func (t Tagged4[K, S]) Equal(o Tagged4[K, S]) bool { return t.v.Equal(o.v) }

// Hash returns the hash of the untagged vector.
func (t Tagged4[K, S]) Hash() uint64 { return t.v.Hash() }

// String renders the components like Vec4.String.
func (t Tagged4[K, S]) String() string { return t.v.String() }

// AddTagged4 returns a + b within the space S.
func AddTagged4[F scalar.Float, S any](a, b Tagged4[F, S]) Tagged4[F, S] {
	return Tagged4[F, S]{v: Add4(a.v, b.v)}
}

// SubtractTagged4 returns a - b within the space S.
func SubtractTagged4[F scalar.Float, S any](a, b Tagged4[F, S]) Tagged4[F, S] {
	return Tagged4[F, S]{v: Subtract4(a.v, b.v)}
}

// ScaleTagged4 returns v·r.
func ScaleTagged4[F scalar.Float, S any](v Tagged4[F, S], r F) Tagged4[F, S] {
	return Tagged4[F, S]{v: Scale4(v.v, r)}
}

// DotProductTagged4 returns a·b; both operands must share the space S.
func DotProductTagged4[F scalar.Float, S any](a, b Tagged4[F, S]) F {
	return DotProduct4(a.v, b.v)
}

// MagnitudeTagged4 returns the length of v.
func MagnitudeTagged4[F scalar.Float, S any](v Tagged4[F, S]) F {
	return Magnitude4(v.v)
}

// NormalizeTagged4 returns v scaled to unit length (zero stays zero).
func NormalizeTagged4[F scalar.Float, S any](v Tagged4[F, S]) Tagged4[F, S] {
	return Tagged4[F, S]{v: Normalize4(v.v)}
}

// InterpolateLinearTagged4 returns a·(1-alpha) + b·alpha.
func InterpolateLinearTagged4[F scalar.Float, S any](a, b Tagged4[F, S], alpha F) Tagged4[F, S] {
	return Tagged4[F, S]{v: InterpolateLinear4(a.v, b.v, alpha)}
}

// Compile-time capability assertions for tagged vectors.
var (
	_ Readable[float32] = Tagged2[float32, struct{}]{}
	_ Readable[float32] = Tagged3[float32, struct{}]{}
	_ Readable[float32] = Tagged4[float32, struct{}]{}
)
