// SPDX-License-Identifier: MIT

// Package vector provides 2-, 3- and 4-component vectors over int32, int64,
// float32 and float64, and the algorithms that operate on them.
//
// Types:
//
//	Vec2[K], Vec3[K], Vec4[K]        plain vectors, backed by [N]K arrays
//	Tagged2[K,S], Tagged3, Tagged4   the same vectors tagged with a space S
//
// A VecN value is immutable: every algorithm takes its inputs by value and
// returns a new value, so input/output aliasing cannot occur. A *VecN is the
// mutable form (SetComponent, direct indexing) and is owned by a single goroutine;
// the package performs no locking.
//
// Two algorithm families exist because the element kinds disagree on failure:
//
//   - Float kinds (Add3, Normalize3, CrossProduct3, ...) use IEEE arithmetic and
//     never fail. Degenerate input propagates: Normalize of the zero vector is the
//     zero vector; projection onto the zero vector yields NaN/Inf components.
//   - Integer kinds (CheckedAdd3, CheckedDotProduct3, ...) route every step through
//     scalar's checked arithmetic and return (VecN, error). A failing call returns
//     the zero vector and an error wrapping scalar.ErrOverflow or
//     scalar.ErrDivideByZero.
//
// The clamp family, equality and hashing are shared by every kind.
//
// Tagged vectors carry a compile-time space marker that has no runtime
// representation (unsafe.Sizeof(Tagged3[float64, World]{}) == unsafe.Sizeof(Vec3[float64]{})).
// Tag3 imposes a tag and Untagged erases it; these are the only bridges.
package vector
