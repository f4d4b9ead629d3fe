// SPDX-License-Identifier: MIT
// Package matrix: interop with golang.org/x/image/math/f32.
// f32.Mat3/Mat4 are row-major; Mat is column-major, so each conversion
// transposes the storage order while preserving element (row, col).

package matrix

import "golang.org/x/image/math/f32"

// ToImageMat3 converts m to the row-major f32.Mat3.
func ToImageMat3(m Mat[float32, Dim3]) f32.Mat3 {
	var out f32.Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r*3+c] = m.unsafeAt(r, c)
		}
	}

	return out
}

// FromImageMat3 converts the row-major f32.Mat3 to a Mat.
func FromImageMat3(m f32.Mat3) Mat[float32, Dim3] {
	out, _ := MatFromRowMajor[float32, Dim3](m[:]...)

	return out
}

// ToImageMat4 converts m to the row-major f32.Mat4.
func ToImageMat4(m Mat[float32, Dim4]) f32.Mat4 {
	var out f32.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r*4+c] = m.unsafeAt(r, c)
		}
	}

	return out
}

// FromImageMat4 converts the row-major f32.Mat4 to a Mat.
func FromImageMat4(m f32.Mat4) Mat[float32, Dim4] {
	out, _ := MatFromRowMajor[float32, Dim4](m[:]...)

	return out
}
