// Package scalar_test contains unit tests for the checked integer arithmetic.
package scalar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlspace/scalar"
)

// TestRangeInt32Int64 pins MinValue/MaxValue to the Go constants.
func TestRangeInt32Int64(t *testing.T) {
	require.Equal(t, int32(math.MaxInt32), scalar.MaxValue[int32]())
	require.Equal(t, int32(math.MinInt32), scalar.MinValue[int32]())
	require.Equal(t, int64(math.MaxInt64), scalar.MaxValue[int64]())
	require.Equal(t, int64(math.MinInt64), scalar.MinValue[int64]())
}

// TestCheckedAddInt32 covers the canonical add(5,3) and add(MAX,1) cases.
func TestCheckedAddInt32(t *testing.T) {
	got, err := scalar.CheckedAdd[int32](5, 3)
	require.NoError(t, err)
	require.Equal(t, int32(8), got)

	_, err = scalar.CheckedAdd[int32](math.MaxInt32, 1)
	require.ErrorIs(t, err, scalar.ErrOverflow)

	_, err = scalar.CheckedAdd[int32](math.MinInt32, -1)
	require.ErrorIs(t, err, scalar.ErrOverflow)

	got, err = scalar.CheckedAdd[int32](math.MaxInt32, math.MinInt32)
	require.NoError(t, err)
	require.Equal(t, int32(-1), got)
}

func TestCheckedSubtract(t *testing.T) {
	tests := []struct {
		name    string
		a, b    int64
		want    int64
		wantErr error
	}{
		{"plain", 10, 4, 6, nil},
		{"negative result", 4, 10, -6, nil},
		{"min minus one", math.MinInt64, 1, 0, scalar.ErrOverflow},
		{"max minus minus one", math.MaxInt64, -1, 0, scalar.ErrOverflow},
		{"zero minus min", 0, math.MinInt64, 0, scalar.ErrOverflow},
		{"min minus min", math.MinInt64, math.MinInt64, 0, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := scalar.CheckedSubtract(tc.a, tc.b)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestCheckedMultiply(t *testing.T) {
	tests := []struct {
		name    string
		a, b    int32
		want    int32
		wantErr error
	}{
		{"zero", 0, math.MinInt32, 0, nil},
		{"plain", -7, 6, -42, nil},
		{"edge fits", 46340, 46340, 2147395600, nil},
		{"square overflows", 46341, 46341, 0, scalar.ErrOverflow},
		{"min times minus one", math.MinInt32, -1, 0, scalar.ErrOverflow},
		{"minus one times min", -1, math.MinInt32, 0, scalar.ErrOverflow},
		{"min times one", math.MinInt32, 1, math.MinInt32, nil},
		{"max times two", math.MaxInt32, 2, 0, scalar.ErrOverflow},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := scalar.CheckedMultiply(tc.a, tc.b)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestCheckedDivide(t *testing.T) {
	got, err := scalar.CheckedDivide[int64](-7, 2)
	require.NoError(t, err)
	require.Equal(t, int64(-3), got) // truncation toward zero

	_, err = scalar.CheckedDivide[int64](1, 0)
	require.ErrorIs(t, err, scalar.ErrDivideByZero)

	_, err = scalar.CheckedDivide[int64](math.MinInt64, -1)
	require.ErrorIs(t, err, scalar.ErrOverflow)
}

func TestCheckedAbsoluteNegate(t *testing.T) {
	got, err := scalar.CheckedAbsolute[int32](-12)
	require.NoError(t, err)
	require.Equal(t, int32(12), got)

	_, err = scalar.CheckedAbsolute[int32](math.MinInt32)
	require.ErrorIs(t, err, scalar.ErrOverflow)

	got, err = scalar.CheckedNegate[int32](math.MaxInt32)
	require.NoError(t, err)
	require.Equal(t, int32(-math.MaxInt32), got)

	_, err = scalar.CheckedNegate[int32](math.MinInt32)
	require.ErrorIs(t, err, scalar.ErrOverflow)
}

func TestCheckedFromFloat64(t *testing.T) {
	got, err := scalar.CheckedFromFloat64[int32](-2.9)
	require.NoError(t, err)
	require.Equal(t, int32(-2), got)

	got, err = scalar.CheckedFromFloat64[int32](2147483647.5)
	require.NoError(t, err)
	require.Equal(t, int32(math.MaxInt32), got)

	_, err = scalar.CheckedFromFloat64[int32](2147483648)
	require.ErrorIs(t, err, scalar.ErrOverflow)

	_, err = scalar.CheckedFromFloat64[int64](math.Ldexp(1, 63))
	require.ErrorIs(t, err, scalar.ErrOverflow)

	got64, err := scalar.CheckedFromFloat64[int64](-math.Ldexp(1, 63))
	require.NoError(t, err)
	require.Equal(t, int64(math.MinInt64), got64)

	_, err = scalar.CheckedFromFloat64[int64](math.NaN())
	require.ErrorIs(t, err, scalar.ErrNotFinite)
}

// TestErrorMessageCarriesOperands checks the wrapping format used across the package.
func TestErrorMessageCarriesOperands(t *testing.T) {
	_, err := scalar.CheckedAdd[int32](math.MaxInt32, 1)
	require.EqualError(t, err, "CheckedAdd(2147483647, 1): scalar: integer overflow")
}

// TestNamedIntegerKind ensures ~int32 types go through the same checks.
func TestNamedIntegerKind(t *testing.T) {
	type pixels int32
	_, err := scalar.CheckedAdd(pixels(math.MaxInt32), pixels(1))
	require.ErrorIs(t, err, scalar.ErrOverflow)
}
