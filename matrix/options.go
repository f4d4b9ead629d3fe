// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Direct storage and
// approximate comparison. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters over defaults.
//
// Notes:
//   - Byte order only affects Direct; the other backends hold native values.
//   - Epsilon only affects ApproxEqual; exact equality is Mat.Equal.

package matrix

import (
	"encoding/binary"
	"math"

	"golang.org/x/sys/cpu"
)

// DefaultEpsilon is the tolerance used by ApproxEqual. It suits float32 data;
// pass a smaller WithEpsilon for float64 pipelines that need it.
const DefaultEpsilon = 1e-6

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicByteOrderNil   = "matrix: WithByteOrder: order must not be nil"
)

// Option mutates internal options. Safe to apply repeatedly.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Public entry points accept ...Option and resolve them via gatherOptions.
type Options struct {
	eps   float64          // >= 0; DefaultEpsilon
	order binary.ByteOrder // NativeByteOrder()
}

// NativeByteOrder returns the byte order of the running CPU, which is the
// default layout of a Direct buffer.
func NativeByteOrder() binary.ByteOrder {
	if cpu.IsBigEndian {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// WithEpsilon sets the tolerance used by ApproxEqual.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithByteOrder sets the byte order of a Direct buffer. Use it when the
// consumer of Bytes expects a fixed order (e.g. a little-endian file format)
// rather than the host's.
func WithByteOrder(order binary.ByteOrder) Option {
	if order == nil {
		panic(panicByteOrderNil)
	}

	return func(o *Options) { o.order = order }
}

// gatherOptions applies setters over the defaults, in order; last write wins.
func gatherOptions(opts ...Option) Options {
	o := Options{
		eps:   DefaultEpsilon,
		order: NativeByteOrder(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
