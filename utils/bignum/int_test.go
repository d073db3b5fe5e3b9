package bignum

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/finitefield/ntt/utils/sampling"
)

func TestNewInt(t *testing.T) {
	require.Equal(t, int64(0), NewInt(nil).Int64())
	require.Equal(t, int64(-7), NewInt(-7).Int64())
	require.Equal(t, int64(7), NewInt(uint64(7)).Int64())
	require.Equal(t, "18446744069414584321", NewInt("18446744069414584321").String())
	require.Equal(t, int64(3), NewInt(NewFloat(3.7, 64)).Int64())
	require.Panics(t, func() { NewInt(3.7) })
}

func TestRandInt(t *testing.T) {
	prng, err := sampling.NewKeyedPRNG(sampling.KeyFromLabel("bignum/randint"))
	require.NoError(t, err)
	max := big.NewInt(1000)
	for i := 0; i < 100; i++ {
		n := RandInt(prng, max)
		require.True(t, n.Sign() >= 0 && n.Cmp(max) < 0)
	}
}

func TestDivRound(t *testing.T) {
	for _, tc := range []struct{ a, b, want int64 }{
		{7, 2, 4},
		{-7, 2, -4},
		{7, -2, -4},
		{6, 3, 2},
		{5, 4, 1},
	} {
		i := new(big.Int)
		DivRound(big.NewInt(tc.a), big.NewInt(tc.b), i)
		require.Equal(t, tc.want, i.Int64(), "%d / %d", tc.a, tc.b)
	}
}
