// SPDX-License-Identifier: MIT

// Package matrix provides square 3×3 and 4×4 matrices over float32 and float64
// with three interchangeable storage strategies and the algorithms graphics
// pipelines need (determinant, adjugate inverse, products, transforms).
//
// Shapes:
//
//	Dim3, Dim4     zero-size shape markers; the dimension is a type parameter D
//
// Storage (identical semantics, identity when constructed without a source):
//
//	*Array[K,D]    heap-allocated 2D array owned by the matrix
//	*Direct[K,D]   column-major []byte in native (or configured) byte order,
//	               ready to hand to a native API via Bytes or WriteTo
//	Mat[K,D]       immutable value; With/Multiply/... return new values
//
// Layout: element (row, col) lives at linear offset col·N + row. Offset is the
// checked form, used by public accessors; algorithms use an unchecked sibling.
//
// Algorithms take capability interfaces (Readable, Writable) and always load
// every input into a local block before writing the output, so out may alias
// any input: Multiply(a, b, a) is well-defined. Determinant and Invert work in
// float64 regardless of K. A singular matrix (determinant exactly 0) makes
// Invert report false and leave out untouched.
//
// Tagged[K,D,T0,T1] records that a matrix maps space T0 to space T1 with no
// runtime cost; MultiplyTagged only composes transforms whose spaces line up.
//
// Concurrency: no type in this package is safe for concurrent mutation.
// Mat values are immutable and may be shared freely.
package matrix
