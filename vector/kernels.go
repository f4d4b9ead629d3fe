// SPDX-License-Identifier: MIT

// Package vector - dimension-independent kernels.
//
// Purpose:
//   - Implement every algorithm once over equally sized slices; the exported
//     per-dimension functions slice their array arguments and delegate here.
//
// Contract:
//   - All slices passed to one kernel have the same length (2, 3 or 4).
//   - dst never aliases an input: wrappers always pass a fresh local array.
//   - Checked kernels stop at the first failure; the caller discards dst.

package vector

import "github.com/katalvlaran/lvlspace/scalar"

// ---------- float kernels ----------

func addInto[F scalar.Float](dst, a, b []F) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func subtractInto[F scalar.Float](dst, a, b []F) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func scaleInto[F scalar.Float](dst, a []F, r F) {
	for i := range dst {
		dst[i] = a[i] * r
	}
}

func addScaledInto[F scalar.Float](dst, a, b []F, r F) {
	for i := range dst {
		dst[i] = a[i] + b[i]*r
	}
}

func negateInto[F scalar.Float](dst, a []F) {
	for i := range dst {
		dst[i] = -a[i]
	}
}

func absoluteInto[F scalar.Float](dst, a []F) {
	for i := range dst {
		dst[i] = scalar.Absolute(a[i])
	}
}

// dot accumulates Σ a[i]·b[i] in index order.
func dot[F scalar.Float](a, b []F) F {
	var sum F
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum
}

// normalizeInto scales a by 1/sqrt(|a|²) when |a|² > 0, else copies a unchanged.
func normalizeInto[F scalar.Float](dst, a []F) {
	magSq := dot(a, a)
	if magSq > 0 {
		scaleInto(dst, a, 1/scalar.SquareRoot(magSq))
		return
	}
	copy(dst, a)
}

// lerpInto computes a·(1-alpha) + b·alpha without clamping alpha.
func lerpInto[F scalar.Float](dst, a, b []F, alpha F) {
	for i := range dst {
		dst[i] = a[i]*(1-alpha) + b[i]*alpha
	}
}

// projectInto computes (p·q / |q|²)·q. A zero q divides by zero and
// propagates NaN/Inf.
func projectInto[F scalar.Float](dst, p, q []F) {
	scaleInto(dst, q, dot(p, q)/dot(q, q))
}

// orthoNormalizeInto runs one Gram-Schmidt step: dst0 = normalize(a),
// dst1 = normalize(b - (b·dst0)·dst0).
func orthoNormalizeInto[F scalar.Float](dst0, dst1, a, b []F) {
	normalizeInto(dst0, a)
	var tmp [4]F
	rem := tmp[:len(b)]
	addScaledInto(rem, b, dst0, -dot(b, dst0))
	normalizeInto(dst1, rem)
}

// ---------- checked integer kernels ----------

func checkedAddInto[I scalar.Integer](dst, a, b []I) error {
	for i := range dst {
		v, err := scalar.CheckedAdd(a[i], b[i])
		if err != nil {
			return err
		}
		dst[i] = v
	}

	return nil
}

func checkedSubtractInto[I scalar.Integer](dst, a, b []I) error {
	for i := range dst {
		v, err := scalar.CheckedSubtract(a[i], b[i])
		if err != nil {
			return err
		}
		dst[i] = v
	}

	return nil
}

func checkedScaleInto[I scalar.Integer](dst, a []I, r I) error {
	for i := range dst {
		v, err := scalar.CheckedMultiply(a[i], r)
		if err != nil {
			return err
		}
		dst[i] = v
	}

	return nil
}

func checkedAddScaledInto[I scalar.Integer](dst, a, b []I, r I) error {
	for i := range dst {
		s, err := scalar.CheckedMultiply(b[i], r)
		if err != nil {
			return err
		}
		v, err := scalar.CheckedAdd(a[i], s)
		if err != nil {
			return err
		}
		dst[i] = v
	}

	return nil
}

func checkedNegateInto[I scalar.Integer](dst, a []I) error {
	for i := range dst {
		v, err := scalar.CheckedNegate(a[i])
		if err != nil {
			return err
		}
		dst[i] = v
	}

	return nil
}

func checkedAbsoluteInto[I scalar.Integer](dst, a []I) error {
	for i := range dst {
		v, err := scalar.CheckedAbsolute(a[i])
		if err != nil {
			return err
		}
		dst[i] = v
	}

	return nil
}

func checkedDot[I scalar.Integer](a, b []I) (I, error) {
	var sum I
	for i := range a {
		p, err := scalar.CheckedMultiply(a[i], b[i])
		if err != nil {
			return 0, err
		}
		sum, err = scalar.CheckedAdd(sum, p)
		if err != nil {
			return 0, err
		}
	}

	return sum, nil
}

// checkedMagnitude returns sqrt(a·a) truncated to the integer kind.
func checkedMagnitude[I scalar.Integer](a []I) (I, error) {
	magSq, err := checkedDot(a, a)
	if err != nil {
		return 0, err
	}

	return scalar.SquareRoot(magSq), nil
}

// checkedLerpInto computes a + trunc((b-a)·alpha) per component. alpha 0 and 1
// return a and b exactly; the difference and the sum are checked, and the
// scaled step is narrowed toward zero.
func checkedLerpInto[I scalar.Integer](dst, a, b []I, alpha float64) error {
	switch alpha {
	case 0:
		copy(dst, a)

		return nil
	case 1:
		copy(dst, b)

		return nil
	}
	for i := range dst {
		d, err := scalar.CheckedSubtract(b[i], a[i])
		if err != nil {
			return err
		}
		step, err := scalar.CheckedFromFloat64[I](float64(d) * alpha)
		if err != nil {
			return err
		}
		v, err := scalar.CheckedAdd(a[i], step)
		if err != nil {
			return err
		}
		dst[i] = v
	}

	return nil
}

// checkedProjectInto computes ((p·q) / |q|²)·q with integer division.
// A zero q fails with scalar.ErrDivideByZero.
func checkedProjectInto[I scalar.Integer](dst, p, q []I) error {
	pq, err := checkedDot(p, q)
	if err != nil {
		return err
	}
	qq, err := checkedDot(q, q)
	if err != nil {
		return err
	}
	s, err := scalar.CheckedDivide(pq, qq)
	if err != nil {
		return err
	}

	return checkedScaleInto(dst, q, s)
}
