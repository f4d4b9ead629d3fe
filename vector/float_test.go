// SPDX-License-Identifier: MIT
// Package vector_test contains the float algorithm suite.
package vector_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlspace/vector"
)

// FloatSuite exercises the float64/float32 vector algorithms.
type FloatSuite struct {
	suite.Suite
	rng *rand.Rand
}

func (s *FloatSuite) SetupTest() {
	s.rng = rand.New(rand.NewSource(20240601))
}

// TestAddSubtractScale checks the elementary componentwise operations.
func (s *FloatSuite) TestAddSubtractScale() {
	a := vector.Vec3[float64]{1, 2, 3}
	b := vector.Vec3[float64]{4, 5, 6}

	require.Equal(s.T(), vector.Vec3[float64]{5, 7, 9}, vector.Add3(a, b))
	require.Equal(s.T(), vector.Vec3[float64]{-3, -3, -3}, vector.Subtract3(a, b))
	require.Equal(s.T(), vector.Vec3[float64]{2, 4, 6}, vector.Scale3(a, 2))
	require.Equal(s.T(), vector.Vec3[float64]{9, 12, 15}, vector.AddScaled3(a, b, 2))
	require.Equal(s.T(), vector.Vec3[float64]{-1, -2, -3}, vector.Negate3(a))
	require.Equal(s.T(), a, vector.Absolute3(vector.Negate3(a)))

	require.Equal(s.T(), vector.Vec2[float64]{4, 6}, vector.Add2(vector.Vec2[float64]{1, 2}, vector.Vec2[float64]{3, 4}))
	require.Equal(s.T(), vector.Vec4[float32]{0, 0, 0, 2}, vector.Scale4(vector.Vec4[float32]{0, 0, 0, 1}, 2))
}

// TestDotMagnitudeIdentity checks DotProduct(v,v) == MagnitudeSquared(v).
func (s *FloatSuite) TestDotMagnitudeIdentity() {
	for i := 0; i < 64; i++ {
		v := randomVec3(s.rng)
		require.Equal(s.T(), vector.DotProduct3(v, v), vector.MagnitudeSquared3(v))
		require.InDelta(s.T(), math.Sqrt(vector.MagnitudeSquared3(v)), vector.Magnitude3(v), eps)
	}
	require.Equal(s.T(), 32.0, vector.DotProduct3(vector.Vec3[float64]{1, 2, 3}, vector.Vec3[float64]{4, 5, 6}))
	require.Equal(s.T(), 5.0, vector.Magnitude2(vector.Vec2[float64]{3, 4}))
	require.Equal(s.T(), 5.0, vector.Distance4(vector.Vec4[float64]{1, 1, 1, 1}, vector.Vec4[float64]{4, 5, 1, 1}))
}

// TestCrossProduct checks perpendicularity and anti-commutativity.
func (s *FloatSuite) TestCrossProduct() {
	a := vector.Vec3[float64]{1, 2, 3}
	b := vector.Vec3[float64]{4, 5, 6}
	require.Equal(s.T(), vector.Vec3[float64]{-3, 6, -3}, vector.CrossProduct3(a, b))

	for i := 0; i < 64; i++ {
		a, b = randomVec3(s.rng), randomVec3(s.rng)
		c := vector.CrossProduct3(a, b)
		require.InDelta(s.T(), 0, vector.DotProduct3(c, a), 1e-9)
		require.InDelta(s.T(), 0, vector.DotProduct3(c, b), 1e-9)
		require.Equal(s.T(), c, vector.Negate3(vector.CrossProduct3(b, a)))
	}
}

// TestNormalize checks unit length for non-zero input and the zero fixed point.
func (s *FloatSuite) TestNormalize() {
	for i := 0; i < 64; i++ {
		v := randomVec3(s.rng)
		require.InDelta(s.T(), 1.0, vector.Magnitude3(vector.Normalize3(v)), eps)
	}
	requireVec3InDelta(s.T(), vector.Vec3[float64]{0.6, 0.8, 0}, vector.Normalize3(vector.Vec3[float64]{3, 4, 0}), eps)

	require.Equal(s.T(), vector.Vec2[float64]{}, vector.Normalize2(vector.Vec2[float64]{}))
	require.Equal(s.T(), vector.Vec3[float64]{}, vector.Normalize3(vector.Vec3[float64]{}))
	require.Equal(s.T(), vector.Vec4[float32]{}, vector.Normalize4(vector.Vec4[float32]{}))

	n32 := vector.Normalize4(vector.Vec4[float32]{1, 1, 1, 1})
	require.InDelta(s.T(), 1.0, float64(vector.Magnitude4(n32)), 1e-6)
}

// TestInterpolateLinear checks exact boundaries and unclamped extrapolation.
func (s *FloatSuite) TestInterpolateLinear() {
	a := vector.Vec3[float64]{1, 2, 3}
	b := vector.Vec3[float64]{5, 7, 11}

	require.Equal(s.T(), a, vector.InterpolateLinear3(a, b, 0))
	require.Equal(s.T(), b, vector.InterpolateLinear3(a, b, 1))
	require.Equal(s.T(), vector.Vec3[float64]{3, 4.5, 7}, vector.InterpolateLinear3(a, b, 0.5))
	require.Equal(s.T(), vector.Vec3[float64]{9, 12, 19}, vector.InterpolateLinear3(a, b, 2))

	for i := 0; i < 32; i++ {
		p, q := randomVec3(s.rng), randomVec3(s.rng)
		require.True(s.T(), p.Equal(vector.InterpolateLinear3(p, q, 0)))
		require.True(s.T(), q.Equal(vector.InterpolateLinear3(p, q, 1)))
	}
}

func (s *FloatSuite) TestInterpolateBilinear() {
	x0y0 := vector.Vec2[float64]{0, 0}
	x1y0 := vector.Vec2[float64]{1, 0}
	x0y1 := vector.Vec2[float64]{0, 1}
	x1y1 := vector.Vec2[float64]{1, 1}
	require.Equal(s.T(), vector.Vec2[float64]{0.25, 0.75}, vector.InterpolateBilinear2(x0y0, x1y0, x0y1, x1y1, 0.25, 0.75))
	require.Equal(s.T(), x1y1, vector.InterpolateBilinear2(x0y0, x1y0, x0y1, x1y1, 1, 1))
}

// TestProjection covers the regular case and the unguarded zero target.
func (s *FloatSuite) TestProjection() {
	p := vector.Vec3[float64]{2, 3, 0}
	q := vector.Vec3[float64]{4, 0, 0}
	require.Equal(s.T(), vector.Vec3[float64]{2, 0, 0}, vector.Projection3(p, q))

	zero := vector.Projection3(p, vector.Vec3[float64]{})
	require.True(s.T(), allNaN(zero[:]), "projection onto zero propagates NaN, got %v", zero)
}

// TestOrthoNormalize covers the regular and the two degenerate cases.
func (s *FloatSuite) TestOrthoNormalize() {
	v0n, v1n := vector.OrthoNormalize3(vector.Vec3[float64]{2, 0, 0}, vector.Vec3[float64]{1, 1, 0})
	require.Equal(s.T(), vector.Vec3[float64]{1, 0, 0}, v0n)
	require.Equal(s.T(), vector.Vec3[float64]{0, 1, 0}, v1n)

	for i := 0; i < 32; i++ {
		a, b := randomVec3(s.rng), randomVec3(s.rng)
		an, bn := vector.OrthoNormalize3(a, b)
		require.InDelta(s.T(), 1.0, vector.Magnitude3(an), 1e-9)
		require.InDelta(s.T(), 1.0, vector.Magnitude3(bn), 1e-9)
		require.InDelta(s.T(), 0.0, vector.DotProduct3(an, bn), 1e-9)
	}

	// Collinear input leaves a zero remainder, which normalizes to itself.
	_, v1n = vector.OrthoNormalize3(vector.Vec3[float64]{1, 0, 0}, vector.Vec3[float64]{3, 0, 0})
	require.Equal(s.T(), vector.Vec3[float64]{}, v1n)

	// A zero v0 leaves v1 merely normalized.
	z0, z1 := vector.OrthoNormalize2(vector.Vec2[float64]{}, vector.Vec2[float64]{0, 2})
	require.Equal(s.T(), vector.Vec2[float64]{}, z0)
	require.Equal(s.T(), vector.Vec2[float64]{0, 1}, z1)
}

func (s *FloatSuite) TestApproxEqual() {
	a := vector.Vec4[float64]{1, 2, 3, 4}
	b := vector.Vec4[float64]{1, 2, 3, 4 + 1e-10}
	require.True(s.T(), vector.ApproxEqual4(a, b, 1e-9))
	require.False(s.T(), vector.ApproxEqual4(a, b, 1e-12))
}

func TestFloatSuite(t *testing.T) {
	suite.Run(t, new(FloatSuite))
}
