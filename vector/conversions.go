// SPDX-License-Identifier: MIT

// Package vector - interop with golang.org/x/image/math/f32.
//
// Purpose:
//   - f32.Vec2/Vec3/Vec4 are plain [N]float32 arrays, so conversion is a type
//     conversion with no copying logic and no reordering.

package vector

import "golang.org/x/image/math/f32"

// ToImageVec2 converts v to f32.Vec2.
func ToImageVec2(v Vec2[float32]) f32.Vec2 { return f32.Vec2(v) }

// ToImageVec3 converts v to f32.Vec3.
func ToImageVec3(v Vec3[float32]) f32.Vec3 { return f32.Vec3(v) }

// ToImageVec4 converts v to f32.Vec4.
func ToImageVec4(v Vec4[float32]) f32.Vec4 { return f32.Vec4(v) }

// FromImageVec2 converts an f32.Vec2.
func FromImageVec2(v f32.Vec2) Vec2[float32] { return Vec2[float32](v) }

// FromImageVec3 converts an f32.Vec3.
func FromImageVec3(v f32.Vec3) Vec3[float32] { return Vec3[float32](v) }

// FromImageVec4 converts an f32.Vec4.
func FromImageVec4(v f32.Vec4) Vec4[float32] { return Vec4[float32](v) }
