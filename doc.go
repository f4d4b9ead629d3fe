// Package lvlspace is a small linear-algebra toolkit for graphics pipelines:
// fixed-size vectors and square matrices with exact, predictable semantics.
//
// What is inside?
//
//	scalar/  element kinds (int32, int64, float32, float64), bit-exact
//	         equality/hash, overflow-checked integer arithmetic
//	vector/  Vec2/Vec3/Vec4 values; float algorithms (normalize, cross,
//	         projection, Gram–Schmidt, ...) and their checked integer twins;
//	         space-tagged vectors
//	matrix/  3×3 and 4×4 matrices in three storages (Array, Direct, Mat),
//	         determinant and adjugate inverse in float64, aliasing-safe
//	         products, affine transforms, space-tagged transforms
//
// Why lvlspace?
//
//   - Column-major Direct buffers hand their bytes straight to a native API.
//   - Output may alias input in every matrix algorithm.
//   - Integer vectors report overflow instead of wrapping.
//   - Phantom space tags (Object, World, Camera, ...) cost zero bytes and turn
//     mixed-space arithmetic into compile errors.
//
// Dependencies flow scalar → vector → matrix. No package logs, no package
// keeps global mutable state, and nothing here is safe for concurrent
// mutation; immutable values (VecN, Mat) may be shared freely.
//
// Quick start:
//
//	model := matrix.Tag[Object, World](matrix.Translation[float32](0, 0, -5))
//	p := vector.Tag4[Object](vector.Vec4[float32]{1, 0, 0, 1})
//	q := matrix.TransformTagged4(model, p) // vector.Tagged4[float32, World]
//
// See examples/ for an end-to-end scene pipeline.
package lvlspace
