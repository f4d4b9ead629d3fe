// SPDX-License-Identifier: MIT

// Package matrix - affine transform constructors and Mat·vector products.
//
// Conventions:
//   - Column vectors: a transform M maps p to M·p, and M1·M0 applies M0 first.
//   - Translation lives in column 3 of a 4×4; the point (x, y, z) is (x, y, z, 1).
//   - Angles are radians; rotation axes must already be unit length.

package matrix

import (
	"math"

	"github.com/katalvlaran/lvlspace/scalar"
	"github.com/katalvlaran/lvlspace/vector"
)

// ApplyVector3 returns m·v.
func ApplyVector3[K scalar.Float](m Mat[K, Dim3], v vector.Vec3[K]) vector.Vec3[K] {
	a := m.toBlock()
	var out vector.Vec3[K]
	mulVecInto(&a, v[:], out[:])

	return out
}

// ApplyVector4 returns m·v.
func ApplyVector4[K scalar.Float](m Mat[K, Dim4], v vector.Vec4[K]) vector.Vec4[K] {
	a := m.toBlock()
	var out vector.Vec4[K]
	mulVecInto(&a, v[:], out[:])

	return out
}

// TransformPoint3 maps the point p through the 4×4 affine m (w = 1, no divide).
func TransformPoint3[K scalar.Float](m Mat[K, Dim4], p vector.Vec3[K]) vector.Vec3[K] {
	r := ApplyVector4(m, vector.Vec4[K]{p[0], p[1], p[2], 1})

	return vector.Vec3[K]{r[0], r[1], r[2]}
}

// Translation returns the 4×4 transform adding (x, y, z) to a point.
func Translation[K scalar.Float](x, y, z K) Mat[K, Dim4] {
	m := Identity[K, Dim4]()
	m.e[offsetOf[Dim4](0, 3)] = x
	m.e[offsetOf[Dim4](1, 3)] = y
	m.e[offsetOf[Dim4](2, 3)] = z

	return m
}

// Scaling returns the 4×4 transform scaling each axis independently.
func Scaling[K scalar.Float](x, y, z K) Mat[K, Dim4] {
	m := Identity[K, Dim4]()
	m.e[offsetOf[Dim4](0, 0)] = x
	m.e[offsetOf[Dim4](1, 1)] = y
	m.e[offsetOf[Dim4](2, 2)] = z

	return m
}

// rotationBlock fills the upper 3×3 of b with the Rodrigues rotation about the
// unit axis (x, y, z) by angle radians.
func rotationBlock[K scalar.Float](b *block[K], axis vector.Vec3[K], angle float64) {
	x, y, z := float64(axis[0]), float64(axis[1]), float64(axis[2])
	s, c := math.Sincos(angle)
	t := 1 - c

	b[0][0] = K(c + x*x*t)
	b[0][1] = K(x*y*t - z*s)
	b[0][2] = K(x*z*t + y*s)
	b[1][0] = K(x*y*t + z*s)
	b[1][1] = K(c + y*y*t)
	b[1][2] = K(y*z*t - x*s)
	b[2][0] = K(x*z*t - y*s)
	b[2][1] = K(y*z*t + x*s)
	b[2][2] = K(c + z*z*t)
}

// RotationAxisAngle returns the 4×4 rotation about a unit axis (right-handed).
// Complexity: O(1).
func RotationAxisAngle[K scalar.Float](axis vector.Vec3[K], angle float64) Mat[K, Dim4] {
	b := identityBlock[K](4)
	rotationBlock(&b, axis, angle)

	return fromBlock[K, Dim4](&b)
}

// Rotation3AxisAngle returns the 3×3 rotation about a unit axis (right-handed).
func Rotation3AxisAngle[K scalar.Float](axis vector.Vec3[K], angle float64) Mat[K, Dim3] {
	var b block[K]
	rotationBlock(&b, axis, angle)

	return fromBlock[K, Dim3](&b)
}
