// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for transform constructors.

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlspace/matrix"
	"github.com/katalvlaran/lvlspace/vector"
)

func TestTranslationAndScaling(t *testing.T) {
	tr := matrix.Translation[float64](1, 2, 3)
	assert.Equal(t, vector.Vec3[float64]{11, 12, 13}, matrix.TransformPoint3(tr, vector.Vec3[float64]{10, 10, 10}))
	// directions (w = 0) ignore translation
	assert.Equal(t, vector.Vec4[float64]{5, 0, 0, 0}, matrix.ApplyVector4(tr, vector.Vec4[float64]{5, 0, 0, 0}))

	sc := matrix.Scaling[float32](2, 3, 4)
	assert.Equal(t, vector.Vec3[float32]{2, 3, 4}, matrix.TransformPoint3(sc, vector.Vec3[float32]{1, 1, 1}))

	// scale first, then translate
	both := tr.Multiply(matrix.Scaling[float64](2, 2, 2))
	assert.Equal(t, vector.Vec3[float64]{3, 4, 5}, matrix.TransformPoint3(both, vector.Vec3[float64]{1, 1, 1}))

	inv, ok := tr.Inverse()
	require.True(t, ok)
	assert.True(t, matrix.ApproxEqual(inv, matrix.Translation[float64](-1, -2, -3), tight))
}

func TestRotationAxisAngle(t *testing.T) {
	tests := []struct {
		name string
		axis vector.Vec3[float64]
		in   vector.Vec3[float64]
		want vector.Vec3[float64]
	}{
		{"z maps x to y", vector.Vec3[float64]{0, 0, 1}, vector.Vec3[float64]{1, 0, 0}, vector.Vec3[float64]{0, 1, 0}},
		{"x maps y to z", vector.Vec3[float64]{1, 0, 0}, vector.Vec3[float64]{0, 1, 0}, vector.Vec3[float64]{0, 0, 1}},
		{"y maps z to x", vector.Vec3[float64]{0, 1, 0}, vector.Vec3[float64]{0, 0, 1}, vector.Vec3[float64]{1, 0, 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r4 := matrix.RotationAxisAngle(tc.axis, math.Pi/2)
			assert.True(t, vector.ApproxEqual3(tc.want, matrix.TransformPoint3(r4, tc.in), 1e-12))

			r3 := matrix.Rotation3AxisAngle(tc.axis, math.Pi/2)
			assert.True(t, vector.ApproxEqual3(tc.want, matrix.ApplyVector3(r3, tc.in), 1e-12))
		})
	}
}

// TestRotationIsOrthonormal checks det = 1 and Rᵀ = R⁻¹ for an arbitrary axis.
func TestRotationIsOrthonormal(t *testing.T) {
	axis := vector.Normalize3(vector.Vec3[float64]{1, 2, 3})
	r := matrix.Rotation3AxisAngle(axis, 1.1)
	assert.InDelta(t, 1.0, r.Determinant(), 1e-12)

	inv, ok := r.Inverse()
	require.True(t, ok)
	assert.True(t, matrix.ApproxEqual(inv, r.Transpose(), tight))

	// the axis itself is fixed
	assert.True(t, vector.ApproxEqual3(axis, matrix.ApplyVector3(r, axis), 1e-12))
}
