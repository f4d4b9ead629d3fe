// SPDX-License-Identifier: MIT

// Package matrix - Direct storage: a column-major byte buffer.
//
// Purpose:
//   - Hold the matrix in the exact bytes a native graphics API expects:
//     element (row, col) at byte offset (col·N + row)·stride, stride 4 for
//     float32 and 8 for float64, in native byte order unless WithByteOrder says
//     otherwise.
//   - Expose the buffer (Bytes, WriteTo) without copying.
//
// Implementation:
//   - Elements are decoded/encoded through binary.ByteOrder and the IEEE bit
//     conversions of package math on every access; nothing is cached.
//
// AI-Hints:
//   - WrapDirect adopts a caller-owned buffer (e.g. a mapped uniform block);
//     writes through the Direct are visible to the owner immediately.
//   - A Direct is not safe for concurrent use, and neither is its buffer.
//
// Complexity quicksheet:
//   - NewDirect: O(N²); At/Set: O(1); WriteTo: one Write of N²·stride bytes.

package matrix

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/lvlspace/scalar"
)

// Direct is a mutable N×N matrix stored column-major in a byte buffer.
type Direct[K scalar.Float, D Dim] struct {
	buf    []byte
	order  binary.ByteOrder
	stride int
}

// Compile-time assertions.
var (
	_ ReadWriter[float32, Dim4] = (*Direct[float32, Dim4])(nil)
	_ ReadWriter[float64, Dim3] = (*Direct[float64, Dim3])(nil)
	_ io.WriterTo               = (*Direct[float32, Dim4])(nil)
	_ fmt.Stringer              = (*Direct[float32, Dim4])(nil)
)

// DirectSize returns the number of bytes a Direct[K,D] buffer holds.
func DirectSize[K scalar.Float, D Dim]() int {
	n := dimOf[D]()

	return n * n * ElementSize[K]()
}

// NewDirect allocates a new identity matrix.
// Options: WithByteOrder.
// Complexity: O(N²).
func NewDirect[K scalar.Float, D Dim](opts ...Option) *Direct[K, D] {
	o := gatherOptions(opts...)
	m := &Direct[K, D]{
		buf:    make([]byte, DirectSize[K, D]()),
		order:  o.order,
		stride: ElementSize[K](),
	}
	for i := 0; i < dimOf[D](); i++ {
		m.unsafeSet(i, i, 1)
	}

	return m
}

// NewDirectFrom allocates a Direct holding a copy of src.
// Errors: ErrNilMatrix, or the first error returned by src.At.
func NewDirectFrom[K scalar.Float, D Dim](src Readable[K, D], opts ...Option) (*Direct[K, D], error) {
	b, err := load(src)
	if err != nil {
		return nil, matrixErrorf(opCopy, err)
	}
	m := NewDirect[K, D](opts...)
	storeUnchecked[K, D](m, &b)

	return m, nil
}

// WrapDirect adopts buf as the storage of a Direct without copying; its
// current contents become the matrix elements.
// Errors: ErrBadBuffer when len(buf) != DirectSize[K,D]().
func WrapDirect[K scalar.Float, D Dim](buf []byte, opts ...Option) (*Direct[K, D], error) {
	want := DirectSize[K, D]()
	if len(buf) != want {
		return nil, directErrorf(len(buf), want, ErrBadBuffer)
	}
	o := gatherOptions(opts...)

	return &Direct[K, D]{buf: buf, order: o.order, stride: ElementSize[K]()}, nil
}

// Shape returns the shape marker.
func (m *Direct[K, D]) Shape() D {
	var d D

	return d
}

// ByteOrder reports the order used to encode elements.
func (m *Direct[K, D]) ByteOrder() binary.ByteOrder { return m.order }

// Bytes returns the backing buffer (not a copy).
func (m *Direct[K, D]) Bytes() []byte { return m.buf }

// WriteTo writes the buffer to w in one call.
func (m *Direct[K, D]) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(m.buf)

	return int64(n), err
}

// At returns the element at (row, col).
// Errors: ErrNilMatrix, ErrOutOfRange.
func (m *Direct[K, D]) At(row, col int) (K, error) {
	if m == nil {
		return 0, indexErrorf(kindDirect, ctxAt, row, col, ErrNilMatrix)
	}
	if err := validateIndex[D](row, col); err != nil {
		return 0, indexErrorf(kindDirect, ctxAt, row, col, err)
	}

	return m.unsafeAt(row, col), nil
}

// Set encodes v at (row, col).
// Errors: ErrNilMatrix, ErrOutOfRange.
func (m *Direct[K, D]) Set(row, col int, v K) error {
	if m == nil {
		return indexErrorf(kindDirect, ctxSet, row, col, ErrNilMatrix)
	}
	if err := validateIndex[D](row, col); err != nil {
		return indexErrorf(kindDirect, ctxSet, row, col, err)
	}
	m.unsafeSet(row, col, v)

	return nil
}

func (m *Direct[K, D]) isNil() bool { return m == nil }

func (m *Direct[K, D]) unsafeAt(row, col int) K {
	off := offsetOf[D](row, col) * m.stride
	if m.stride == 4 {
		return K(math.Float32frombits(m.order.Uint32(m.buf[off:])))
	}

	return K(math.Float64frombits(m.order.Uint64(m.buf[off:])))
}

func (m *Direct[K, D]) unsafeSet(row, col int, v K) {
	off := offsetOf[D](row, col) * m.stride
	if m.stride == 4 {
		m.order.PutUint32(m.buf[off:], math.Float32bits(float32(v)))

		return
	}
	m.order.PutUint64(m.buf[off:], math.Float64bits(float64(v)))
}

// Mat returns an immutable snapshot of m. A nil m yields the zero Mat.
func (m *Direct[K, D]) Mat() Mat[K, D] {
	if m == nil {
		return Mat[K, D]{}
	}
	b := loadUnchecked[K, D](m)

	return fromBlock[K, D](&b)
}

// String renders the matrix row by row.
func (m *Direct[K, D]) String() string {
	if m == nil {
		return "<nil>"
	}
	b := loadUnchecked[K, D](m)

	return formatBlock(&b, dimOf[D]())
}
