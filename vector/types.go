// SPDX-License-Identifier: MIT

// Package vector - value types and capability interfaces.
//
// Purpose:
//   - Define Vec2/Vec3/Vec4 as fixed-size arrays so they are comparable, copyable
//     values with the same memory layout as a packed [N]K buffer.
//   - Expose the read capability (Readable) on values and the write capability
//     (Writable) on pointers, so a function can declare which one it needs.
//
// Complexity quicksheet:
//   - Every accessor is O(1); Equal/Hash/String are O(N).

package vector

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlspace/scalar"
)

// Vec2 is a 2-component vector (x, y).
type Vec2[K scalar.Kind] [2]K

// Vec3 is a 3-component vector (x, y, z).
type Vec3[K scalar.Kind] [3]K

// Vec4 is a 4-component vector (x, y, z, w).
type Vec4[K scalar.Kind] [4]K

// Readable is the read-only capability shared by every vector type,
// tagged or not. Component is bounds-checked.
type Readable[K scalar.Kind] interface {
	Len() int
	Component(i int) (K, error)
}

// Writable is the write-only capability of a mutable vector.
type Writable[K scalar.Kind] interface {
	Len() int
	SetComponent(i int, v K) error
}

// Compile-time capability assertions.
var (
	_ Readable[float64] = Vec2[float64]{}
	_ Readable[float64] = Vec3[float64]{}
	_ Readable[float64] = Vec4[float64]{}
	_ Writable[int32]   = (*Vec2[int32])(nil)
	_ Writable[int32]   = (*Vec3[int32])(nil)
	_ Writable[int32]   = (*Vec4[int32])(nil)
	_ fmt.Stringer      = Vec3[float32]{}
)

// ---------- method context tags ----------

const (
	ctxComponent    = "Component"
	ctxSetComponent = "SetComponent"
	ctxCopy         = "Copy"
)

// ---------- shared slice helpers ----------

func componentAt[K scalar.Kind](s []K, i int) (K, error) {
	if i < 0 || i >= len(s) {
		return 0, indexErrorf(ctxComponent, i, len(s))
	}

	return s[i], nil
}

func setComponentAt[K scalar.Kind](s []K, i int, v K) error {
	if i < 0 || i >= len(s) {
		return indexErrorf(ctxSetComponent, i, len(s))
	}
	s[i] = v

	return nil
}

// equalBits compares two equally sized slices with scalar.Equals.
func equalBits[K scalar.Kind](a, b []K) bool {
	for i := range a {
		if !scalar.Equals(a[i], b[i]) {
			return false
		}
	}

	return true
}

// hashOf combines component hashes with the classic 31-multiplier scheme.
func hashOf[K scalar.Kind](s []K) uint64 {
	h := uint64(1)
	for _, c := range s {
		h = 31*h + scalar.Hash(c)
	}

	return h
}

// formatOf renders "[x, y, z]" with %v per component.
func formatOf[K scalar.Kind](s []K) string {
	var b strings.Builder
	b.WriteString("[")
	for i, c := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", c)
	}
	b.WriteString("]")

	return b.String()
}

// Copy transfers every component of src into dst.
// Errors: ErrDimensionMismatch when the lengths differ (dst is untouched),
// or the first error returned by src/dst accessors.
// Complexity: O(N).
func Copy[K scalar.Kind](src Readable[K], dst Writable[K]) error {
	var buf [4]K
	n := src.Len()
	if n != dst.Len() || n > len(buf) {
		return vectorErrorf(ctxCopy, ErrDimensionMismatch)
	}
	for i := 0; i < n; i++ {
		v, err := src.Component(i)
		if err != nil {
			return vectorErrorf(ctxCopy, err)
		}
		buf[i] = v
	}
	for i := 0; i < n; i++ {
		if err := dst.SetComponent(i, buf[i]); err != nil {
			return vectorErrorf(ctxCopy, err)
		}
	}

	return nil
}

// ---------- Vec2 ----------

// X returns component 0.
func (v Vec2[K]) X() K { return v[0] }

// Y returns component 1.
func (v Vec2[K]) Y() K { return v[1] }

// Len returns 2.
func (v Vec2[K]) Len() int { return 2 }

// Component returns component i or ErrOutOfRange.
func (v Vec2[K]) Component(i int) (K, error) { return componentAt(v[:], i) }

// SetComponent overwrites component i in place or returns ErrOutOfRange.
func (v *Vec2[K]) SetComponent(i int, c K) error { return setComponentAt(v[:], i, c) }

// Equal reports bit-exact equality (see scalar.Equals).
func (v Vec2[K]) Equal(o Vec2[K]) bool { return equalBits(v[:], o[:]) }

// Hash returns a hash consistent with Equal.
func (v Vec2[K]) Hash() uint64 { return hashOf(v[:]) }

// String renders the vector as "[x, y]".
func (v Vec2[K]) String() string { return formatOf(v[:]) }

// ---------- Vec3 ----------

// X returns component 0.
func (v Vec3[K]) X() K { return v[0] }

// Y returns component 1.
func (v Vec3[K]) Y() K { return v[1] }

// Z returns component 2.
func (v Vec3[K]) Z() K { return v[2] }

// Len returns 3.
func (v Vec3[K]) Len() int { return 3 }

// Component returns component i or ErrOutOfRange.
func (v Vec3[K]) Component(i int) (K, error) { return componentAt(v[:], i) }

// SetComponent overwrites component i in place or returns ErrOutOfRange.
func (v *Vec3[K]) SetComponent(i int, c K) error { return setComponentAt(v[:], i, c) }

// Equal reports bit-exact equality (see scalar.Equals).
func (v Vec3[K]) Equal(o Vec3[K]) bool { return equalBits(v[:], o[:]) }

// Hash returns a hash consistent with Equal.
func (v Vec3[K]) Hash() uint64 { return hashOf(v[:]) }

// String renders the vector as "[x, y, z]".
func (v Vec3[K]) String() string { return formatOf(v[:]) }

// ---------- Vec4 ----------

// X returns component 0.
func (v Vec4[K]) X() K { return v[0] }

// Y returns component 1.
func (v Vec4[K]) Y() K { return v[1] }

// Z returns component 2.
func (v Vec4[K]) Z() K { return v[2] }

// W returns component 3.
func (v Vec4[K]) W() K { return v[3] }

// Len returns 4.
func (v Vec4[K]) Len() int { return 4 }

// Component returns component i or ErrOutOfRange.
func (v Vec4[K]) Component(i int) (K, error) { return componentAt(v[:], i) }

// SetComponent overwrites component i in place or returns ErrOutOfRange.
func (v *Vec4[K]) SetComponent(i int, c K) error { return setComponentAt(v[:], i, c) }

// Equal reports bit-exact equality (see scalar.Equals).
func (v Vec4[K]) Equal(o Vec4[K]) bool { return equalBits(v[:], o[:]) }

// Hash returns a hash consistent with Equal.
func (v Vec4[K]) Hash() uint64 { return hashOf(v[:]) }

// String renders the vector as "[x, y, z, w]".
func (v Vec4[K]) String() string { return formatOf(v[:]) }
