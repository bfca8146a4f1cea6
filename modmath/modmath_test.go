package modmath

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func bigMulMod(a, b, m uint64) uint64 {
	r := new(big.Int).Mul(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
	return r.Mod(r, new(big.Int).SetUint64(m)).Uint64()
}

func TestMulMod(t *testing.T) {
	for _, tc := range []struct{ a, b, m uint64 }{
		{123496789, 65559, 214743648},
		{math.MaxUint64, math.MaxUint64, math.MaxUint64 - 58},
		{math.MaxUint64 - 1, 3, math.MaxUint64},
		{1 << 63, 1 << 63, 1<<61 - 1},
		{0, 12345, 7},
		{5, 5, 1},
	} {
		require.Equal(t, bigMulMod(tc.a, tc.b, tc.m), MulMod(tc.a, tc.b, tc.m), "%d*%d mod %d", tc.a, tc.b, tc.m)
	}
}

func TestSquareMod(t *testing.T) {
	require.EqualValues(t, 16, SquareMod(4, 209))
	require.EqualValues(t, 47, SquareMod(16, 209))
}

func TestAddMod(t *testing.T) {
	require.EqualValues(t, 3, AddMod(5, 5, 7))
	require.EqualValues(t, 0, AddMod(0, 0, 7))
	m := uint64(math.MaxUint64 - 10)
	require.Equal(t, m-2, AddMod(m-1, m-1, m))
	require.EqualValues(t, 10, AddMod(math.MaxUint64, 0, m))
}

func TestMulChecked(t *testing.T) {
	p, ok := MulChecked(71, 67)
	require.True(t, ok)
	require.EqualValues(t, 4757, p)

	_, ok = MulChecked(1<<32, 1<<32)
	require.False(t, ok)
}

func TestGCD(t *testing.T) {
	require.EqualValues(t, 1, GCD(11, 19))
	require.EqualValues(t, 6, GCD(54, 24))
	require.EqualValues(t, 9, GCD(0, 9))
}
