// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for functional options.

package matrix_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlspace/matrix"
)

func TestOptionDefaults(t *testing.T) {
	assert.Equal(t, matrix.DefaultEpsilon, matrix.EpsilonOf())
	assert.Equal(t, matrix.NativeByteOrder(), matrix.ByteOrderOf())
}

func TestOptionLastWins(t *testing.T) {
	assert.Equal(t, 0.5, matrix.EpsilonOf(matrix.WithEpsilon(1), matrix.WithEpsilon(0.5)))
	assert.Equal(t, binary.BigEndian, matrix.ByteOrderOf(matrix.WithByteOrder(binary.LittleEndian), matrix.WithByteOrder(binary.BigEndian)))
	assert.Equal(t, matrix.DefaultEpsilon, matrix.EpsilonOf(nil))
}

func TestOptionPanics(t *testing.T) {
	for _, eps := range []float64{-1e-9, math.NaN(), math.Inf(1)} {
		require.Panics(t, func() { matrix.WithEpsilon(eps) }, "eps %v", eps)
	}
	require.NotPanics(t, func() { matrix.WithEpsilon(0) })
	require.Panics(t, func() { matrix.WithByteOrder(nil) })
}
