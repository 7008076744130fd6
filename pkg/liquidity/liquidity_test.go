package liquidity

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shibaone/shibaswap-v3-sdk/pkg/fullmath"
	"github.com/shibaone/shibaswap-v3-sdk/pkg/tickmath"
)

func TestMaxLiquidityForAmounts(t *testing.T) {
	// sqrt prices of 100/110 and 110/100
	lower := fullmath.MustParse("75541088972021052632782079082")
	upper := fullmath.MustParse("83095197869223157896060286990")

	cases := []struct {
		name    string
		current *big.Int
		want    int64
	}{
		{"price inside", fullmath.Q96, 2148},
		{"price below", fullmath.MustParse("75162434512514379355924140470"), 1048},
		{"price above", fullmath.MustParse("83472048772503575395058907992"), 2097},
		{"price at lower", lower, 1048},
		{"price at upper", upper, 2097},
	}
	for _, tc := range cases {
		for _, full := range []bool{false, true} {
			got, err := MaxLiquidityForAmounts(tc.current, lower, upper, big.NewInt(100), big.NewInt(200), full)
			require.NoError(t, err)
			require.Equal(t, tc.want, got.Int64(), "%s full=%v", tc.name, full)
		}
	}
}

func TestMaxLiquidityForAmountsPrecision(t *testing.T) {
	lower, _ := tickmath.GetSqrtRatioAtTick(-276340)
	upper, _ := tickmath.GetSqrtRatioAtTick(-276300)
	current, _ := tickmath.GetSqrtRatioAtTick(-276400)
	amount0 := fullmath.MustParse("1000000000000000000000")
	amount1 := big.NewInt(1_000_000_000)

	imprecise, err := MaxLiquidityForAmounts(current, lower, upper, amount0, amount1, false)
	require.NoError(t, err)
	require.Equal(t, "500125587360139559", imprecise.String())

	precise, err := MaxLiquidityForAmounts(current, upper, lower, amount0, amount1, true)
	require.NoError(t, err)
	require.Equal(t, "500125587360139564", precise.String())
}

func TestMaxLiquidityForAmountsEmptyRange(t *testing.T) {
	_, err := MaxLiquidityForAmounts(fullmath.Q96, fullmath.Q96, fullmath.Q96, big.NewInt(1), big.NewInt(1), true)
	require.ErrorIs(t, err, fullmath.ErrDivisionByZero)
}

func TestRegimeOf(t *testing.T) {
	require.Equal(t, PriceBelowRange, RegimeOf(-11, -10, 10))
	require.Equal(t, PriceInRange, RegimeOf(-10, -10, 10))
	require.Equal(t, PriceInRange, RegimeOf(9, -10, 10))
	require.Equal(t, PriceAboveRange, RegimeOf(10, -10, 10))
	require.Equal(t, PriceAboveRange, RegimeOf(11, -10, 10))
}

func TestAmountsForLiquidity(t *testing.T) {
	// 1 DAI (18 decimals) = 1 USDC (6 decimals)
	sqrtPrice := fullmath.MustParse("79228162514264337593543")
	tick := -276325
	center := -276320
	liquidity := fullmath.MustParse("100000000000000000000")

	cases := []struct {
		name               string
		lower, upper       int
		mint0, mint1       string
		current0, current1 string
	}{
		{"in range", center - 20, center + 20,
			"120054069145287995769397", "79831926243",
			"120054069145287995769396", "79831926242"},
		{"range above price", center + 10, center + 20,
			"49949961958869841754182", "0",
			"49949961958869841754181", "0"},
		{"range below price", center - 20, center - 10,
			"0", "49970077053",
			"0", "49970077052"},
	}
	for _, tc := range cases {
		a0, a1, err := AmountsForLiquidity(tick, sqrtPrice, tc.lower, tc.upper, liquidity, true)
		require.NoError(t, err)
		require.Equal(t, tc.mint0, a0.String(), tc.name)
		require.Equal(t, tc.mint1, a1.String(), tc.name)

		a0, a1, err = AmountsForLiquidity(tick, sqrtPrice, tc.lower, tc.upper, liquidity, false)
		require.NoError(t, err)
		require.Equal(t, tc.current0, a0.String(), tc.name)
		require.Equal(t, tc.current1, a1.String(), tc.name)
	}
}

func TestAmountsForLiquidityTickBounds(t *testing.T) {
	_, _, err := AmountsForLiquidity(0, fullmath.Q96, tickmath.MinTick-1, 0, big.NewInt(1), true)
	require.ErrorIs(t, err, tickmath.ErrTickOutOfRange)
}
