// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for x/image/math/f32 interop.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f32"

	"github.com/katalvlaran/lvlspace/matrix"
)

// TestImageMat4KeepsRowCol checks row-major f32 data keeps (row, col) meaning.
func TestImageMat4KeepsRowCol(t *testing.T) {
	src := f32.Mat4{
		1, 0, 0, 7,
		0, 1, 0, 8,
		0, 0, 1, 9,
		0, 0, 0, 1,
	}
	m := matrix.FromImageMat4(src)
	assert.True(t, m.Equal(matrix.Translation[float32](7, 8, 9)))

	v, err := m.At(0, 3)
	require.NoError(t, err)
	assert.Equal(t, float32(7), v)
	assert.Equal(t, src, matrix.ToImageMat4(m))
}

func TestImageMat3RoundTrip(t *testing.T) {
	src := f32.Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9}
	m := matrix.FromImageMat3(src)
	v, _ := m.At(1, 0)
	assert.Equal(t, float32(4), v)
	assert.Equal(t, src, matrix.ToImageMat3(m))
}
