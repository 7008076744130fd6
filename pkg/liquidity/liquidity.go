// Package liquidity converts between token amounts and the liquidity of a
// price range.
package liquidity

import (
	"fmt"
	"math/big"

	"github.com/shibaone/shibaswap-v3-sdk/pkg/fullmath"
)

func sorted(a, b *big.Int) (*big.Int, *big.Int) {
	if a.Cmp(b) > 0 {
		return b, a
	}
	return a, b
}

// MaxLiquidityForAmount0Imprecise matches the periphery router, which floors
// sqrtA*sqrtB/2^96 before the final division:
//
//	amount0 * (sqrtA*sqrtB / 2^96) / (sqrtB - sqrtA)
func MaxLiquidityForAmount0Imprecise(sqrtRatioAX96, sqrtRatioBX96, amount0 *big.Int) (*big.Int, error) {
	lower, upper := sorted(sqrtRatioAX96, sqrtRatioBX96)
	intermediate := new(big.Int).Mul(lower, upper)
	intermediate.Quo(intermediate, fullmath.Q96)
	return fullmath.MulDivFloor(amount0, intermediate, new(big.Int).Sub(upper, lower))
}

// MaxLiquidityForAmount0Precise computes
//
//	amount0 * sqrtA * sqrtB / (2^96 * (sqrtB - sqrtA))
func MaxLiquidityForAmount0Precise(sqrtRatioAX96, sqrtRatioBX96, amount0 *big.Int) (*big.Int, error) {
	lower, upper := sorted(sqrtRatioAX96, sqrtRatioBX96)
	numerator := new(big.Int).Mul(lower, upper)
	denominator := new(big.Int).Sub(upper, lower)
	denominator.Mul(denominator, fullmath.Q96)
	return fullmath.MulDivFloor(amount0, numerator, denominator)
}

// MaxLiquidityForAmount1 computes amount1 * 2^96 / (sqrtB - sqrtA).
func MaxLiquidityForAmount1(sqrtRatioAX96, sqrtRatioBX96, amount1 *big.Int) (*big.Int, error) {
	lower, upper := sorted(sqrtRatioAX96, sqrtRatioBX96)
	return fullmath.MulDivFloor(amount1, fullmath.Q96, new(big.Int).Sub(upper, lower))
}

// MaxLiquidityForAmounts returns the largest liquidity the range
// [sqrtRatioAX96, sqrtRatioBX96] can hold at sqrtRatioCurrentX96 without
// spending more than amount0 and amount1. useFullPrecision selects the exact
// amount0 formula instead of the router's rounding.
func MaxLiquidityForAmounts(sqrtRatioCurrentX96, sqrtRatioAX96, sqrtRatioBX96, amount0, amount1 *big.Int, useFullPrecision bool) (*big.Int, error) {
	lower, upper := sorted(sqrtRatioAX96, sqrtRatioBX96)

	forAmount0 := MaxLiquidityForAmount0Imprecise
	if useFullPrecision {
		forAmount0 = MaxLiquidityForAmount0Precise
	}

	var (
		liquidity *big.Int
		err       error
	)
	switch {
	case sqrtRatioCurrentX96.Cmp(lower) <= 0:
		liquidity, err = forAmount0(lower, upper, amount0)
	case sqrtRatioCurrentX96.Cmp(upper) < 0:
		var liquidity0, liquidity1 *big.Int
		if liquidity0, err = forAmount0(sqrtRatioCurrentX96, upper, amount0); err != nil {
			break
		}
		if liquidity1, err = MaxLiquidityForAmount1(lower, sqrtRatioCurrentX96, amount1); err != nil {
			break
		}
		liquidity = liquidity0
		if liquidity1.Cmp(liquidity0) < 0 {
			liquidity = liquidity1
		}
	default:
		liquidity, err = MaxLiquidityForAmount1(lower, upper, amount1)
	}
	if err != nil {
		return nil, fmt.Errorf("max liquidity for amounts: %w", err)
	}
	return liquidity, nil
}
