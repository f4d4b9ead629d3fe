// SPDX-License-Identifier: MIT
// Package vector_test contains test helpers shared by the vector tests.

package vector_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlspace/vector"
)

// eps is the absolute tolerance for float64 comparisons in this package.
const eps = 1e-12

// World and Object are phantom space tags used by the tagged tests.
type (
	World  struct{}
	Object struct{}
)

// requireVec3InDelta fails t when any component pair differs by more than delta.
func requireVec3InDelta(t *testing.T, want, got vector.Vec3[float64], delta float64) {
	t.Helper()
	for i := range want {
		require.InDeltaf(t, want[i], got[i], delta, "component %d: want %v got %v", i, want, got)
	}
}

// randomVec3 returns a deterministic pseudo-random vector in [-10, 10)³.
func randomVec3(rng *rand.Rand) vector.Vec3[float64] {
	return vector.Vec3[float64]{
		rng.Float64()*20 - 10,
		rng.Float64()*20 - 10,
		rng.Float64()*20 - 10,
	}
}

// allNaN reports whether every component is NaN.
func allNaN(v []float64) bool {
	for _, c := range v {
		if !math.IsNaN(c) {
			return false
		}
	}

	return true
}
