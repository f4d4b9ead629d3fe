// SPDX-License-Identifier: MIT

package matrix

import "encoding/binary"

// Test bridge: unchecked offsets and the resolved options, visible to
// matrix_test only.

func OffsetOf3(row, col int) int { return offsetOf[Dim3](row, col) }

func OffsetOf4(row, col int) int { return offsetOf[Dim4](row, col) }

func EpsilonOf(opts ...Option) float64 { return gatherOptions(opts...).eps }

func ByteOrderOf(opts ...Option) binary.ByteOrder { return gatherOptions(opts...).order }
