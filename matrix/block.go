// SPDX-License-Identifier: MIT

// Package matrix - local blocks and the kernels that run on them.
//
// Purpose:
//   - Every algorithm copies its operands into a stack-allocated block, computes
//     into another block and only then stores the result. This is what makes an
//     output that aliases an input safe.
//
// Implementation:
//   - load/store prefer the unchecked unsafeAt/unsafeSet fast path of the
//     package backends and fall back to the checked At/Set of any other
//     Readable/Writable implementation.
//   - Determinant and inverse widen to float64 first.
//
// Complexity quicksheet:
//   - load/store/transpose: O(N²); multiply: O(N³); det/invert: O(1) closed forms.

package matrix

import "github.com/katalvlaran/lvlspace/scalar"

// block holds an N×N matrix indexed [row][col]; only the leading N×N cells are used.
type block[K scalar.Float] [maxN][maxN]K

// block64 is the float64 working form of Determinant and Invert.
type block64 = [maxN][maxN]float64

// load copies every element of m into a block.
func load[K scalar.Float, D Dim](m Readable[K, D]) (block[K], error) {
	var b block[K]
	if m == nil {
		return b, ErrNilMatrix
	}
	if f, ok := m.(unsafeReader[K]); ok {
		if f.isNil() {
			return b, ErrNilMatrix
		}

		return loadUnchecked[K, D](f), nil
	}
	n := dimOf[D]()
	for c := 0; c < n; c++ {
		for r := 0; r < n; r++ {
			v, err := m.At(r, c)
			if err != nil {
				return b, err
			}
			b[r][c] = v
		}
	}

	return b, nil
}

// store writes the leading N×N cells of b into out.
// A foreign Writable that fails part-way leaves out partially written.
func store[K scalar.Float, D Dim](out Writable[K, D], b *block[K]) error {
	if out == nil {
		return ErrNilMatrix
	}
	if f, ok := out.(unsafeWriter[K]); ok {
		if f.isNil() {
			return ErrNilMatrix
		}
		storeUnchecked[K, D](f, b)

		return nil
	}
	n := dimOf[D]()
	for c := 0; c < n; c++ {
		for r := 0; r < n; r++ {
			if err := out.Set(r, c, b[r][c]); err != nil {
				return err
			}
		}
	}

	return nil
}

// loadUnchecked copies a package backend into a block. f must be non-nil.
func loadUnchecked[K scalar.Float, D Dim](f unsafeReader[K]) block[K] {
	var b block[K]
	n := dimOf[D]()
	for c := 0; c < n; c++ {
		for r := 0; r < n; r++ {
			b[r][c] = f.unsafeAt(r, c)
		}
	}

	return b
}

// storeUnchecked writes a block into a package backend. f must be non-nil.
func storeUnchecked[K scalar.Float, D Dim](f unsafeWriter[K], b *block[K]) {
	n := dimOf[D]()
	for c := 0; c < n; c++ {
		for r := 0; r < n; r++ {
			f.unsafeSet(r, c, b[r][c])
		}
	}
}

func identityBlock[K scalar.Float](n int) block[K] {
	var b block[K]
	for i := 0; i < n; i++ {
		b[i][i] = 1
	}

	return b
}

// mulBlock returns a·b: out[r][c] = Σ_k a[r][k]·b[k][c].
func mulBlock[K scalar.Float](a, b *block[K], n int) block[K] {
	var out block[K]
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			var sum K
			for k := 0; k < n; k++ {
				sum += a[r][k] * b[k][c]
			}
			out[r][c] = sum
		}
	}

	return out
}

func transposeBlock[K scalar.Float](a *block[K], n int) block[K] {
	var out block[K]
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			out[c][r] = a[r][c]
		}
	}

	return out
}

func scaleBlock[K scalar.Float](a *block[K], s K, n int) block[K] {
	var out block[K]
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			out[r][c] = a[r][c] * s
		}
	}

	return out
}

// addBlock returns a + sign·b.
func addBlock[K scalar.Float](a, b *block[K], sign K, n int) block[K] {
	var out block[K]
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			out[r][c] = a[r][c] + sign*b[r][c]
		}
	}

	return out
}

func traceBlock[K scalar.Float](a *block[K], n int) K {
	var t K
	for i := 0; i < n; i++ {
		t += a[i][i]
	}

	return t
}

func widen[K scalar.Float](a *block[K], n int) block64 {
	var w block64
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			w[r][c] = float64(a[r][c])
		}
	}

	return w
}

// det3 expands along the first row.
func det3(a *block64) float64 {
	return a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
		a[0][1]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
		a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0])
}

// minors4 holds the 2×2 minors of rows {0,1} (s) and rows {2,3} (c).
type minors4 struct {
	s [6]float64
	c [6]float64
}

func minorsOf(a *block64) minors4 {
	var m minors4
	m.s[0] = a[0][0]*a[1][1] - a[1][0]*a[0][1]
	m.s[1] = a[0][0]*a[1][2] - a[1][0]*a[0][2]
	m.s[2] = a[0][0]*a[1][3] - a[1][0]*a[0][3]
	m.s[3] = a[0][1]*a[1][2] - a[1][1]*a[0][2]
	m.s[4] = a[0][1]*a[1][3] - a[1][1]*a[0][3]
	m.s[5] = a[0][2]*a[1][3] - a[1][2]*a[0][3]

	m.c[5] = a[2][2]*a[3][3] - a[3][2]*a[2][3]
	m.c[4] = a[2][1]*a[3][3] - a[3][1]*a[2][3]
	m.c[3] = a[2][1]*a[3][2] - a[3][1]*a[2][2]
	m.c[2] = a[2][0]*a[3][3] - a[3][0]*a[2][3]
	m.c[1] = a[2][0]*a[3][2] - a[3][0]*a[2][2]
	m.c[0] = a[2][0]*a[3][1] - a[3][0]*a[2][1]

	return m
}

// det4 is the Laplace expansion over the 2×2 minors of the top and bottom row pairs.
func det4(m *minors4) float64 {
	s, c := &m.s, &m.c

	return s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
}

func detBlock[K scalar.Float](a *block[K], n int) float64 {
	w := widen(a, n)
	if n == 3 {
		return det3(&w)
	}
	m := minorsOf(&w)

	return det4(&m)
}

// invertBlock returns the adjugate of a scaled by 1/det, or false when det == 0.
func invertBlock[K scalar.Float](a *block[K], n int) (block[K], bool) {
	var out block[K]
	w := widen(a, n)
	if n == 3 {
		det := det3(&w)
		if det == 0 {
			return out, false
		}
		inv := 1 / det
		// signed cofactor C[i][j] via cyclic indices; inverse[j][i] = C[i][j]/det
		for i := 0; i < 3; i++ {
			i1, i2 := (i+1)%3, (i+2)%3
			for j := 0; j < 3; j++ {
				j1, j2 := (j+1)%3, (j+2)%3
				cof := w[i1][j1]*w[i2][j2] - w[i1][j2]*w[i2][j1]
				out[j][i] = K(cof * inv)
			}
		}

		return out, true
	}

	m := minorsOf(&w)
	det := det4(&m)
	if det == 0 {
		return out, false
	}
	inv := 1 / det
	s, c := &m.s, &m.c
	var adj block64
	adj[0][0] = w[1][1]*c[5] - w[1][2]*c[4] + w[1][3]*c[3]
	adj[0][1] = -w[0][1]*c[5] + w[0][2]*c[4] - w[0][3]*c[3]
	adj[0][2] = w[3][1]*s[5] - w[3][2]*s[4] + w[3][3]*s[3]
	adj[0][3] = -w[2][1]*s[5] + w[2][2]*s[4] - w[2][3]*s[3]

	adj[1][0] = -w[1][0]*c[5] + w[1][2]*c[2] - w[1][3]*c[1]
	adj[1][1] = w[0][0]*c[5] - w[0][2]*c[2] + w[0][3]*c[1]
	adj[1][2] = -w[3][0]*s[5] + w[3][2]*s[2] - w[3][3]*s[1]
	adj[1][3] = w[2][0]*s[5] - w[2][2]*s[2] + w[2][3]*s[1]

	adj[2][0] = w[1][0]*c[4] - w[1][1]*c[2] + w[1][3]*c[0]
	adj[2][1] = -w[0][0]*c[4] + w[0][1]*c[2] - w[0][3]*c[0]
	adj[2][2] = w[3][0]*s[4] - w[3][1]*s[2] + w[3][3]*s[0]
	adj[2][3] = -w[2][0]*s[4] + w[2][1]*s[2] - w[2][3]*s[0]

	adj[3][0] = -w[1][0]*c[3] + w[1][1]*c[1] - w[1][2]*c[0]
	adj[3][1] = w[0][0]*c[3] - w[0][1]*c[1] + w[0][2]*c[0]
	adj[3][2] = -w[3][0]*s[3] + w[3][1]*s[1] - w[3][2]*s[0]
	adj[3][3] = w[2][0]*s[3] - w[2][1]*s[1] + w[2][2]*s[0]

	for r := 0; r < 4; r++ {
		for col := 0; col < 4; col++ {
			out[r][col] = K(adj[r][col] * inv)
		}
	}

	return out, true
}
