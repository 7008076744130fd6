package liquidity

import (
	"fmt"
	"math/big"

	"github.com/shibaone/shibaswap-v3-sdk/pkg/sqrtpricemath"
	"github.com/shibaone/shibaswap-v3-sdk/pkg/tickmath"
)

// Regime classifies the current tick against a position's range.
type Regime int

const (
	// PriceBelowRange: the position holds token0 only.
	PriceBelowRange Regime = iota
	// PriceInRange: the position holds both tokens.
	PriceInRange
	// PriceAboveRange: the position holds token1 only.
	PriceAboveRange
)

func (r Regime) String() string {
	switch r {
	case PriceBelowRange:
		return "below"
	case PriceInRange:
		return "in_range"
	case PriceAboveRange:
		return "above"
	default:
		return fmt.Sprintf("regime(%d)", int(r))
	}
}

// RegimeOf compares ticks, never prices: tickCurrent == tickUpper counts as
// above the range.
func RegimeOf(tickCurrent, tickLower, tickUpper int) Regime {
	switch {
	case tickCurrent < tickLower:
		return PriceBelowRange
	case tickCurrent < tickUpper:
		return PriceInRange
	default:
		return PriceAboveRange
	}
}

// AmountsForLiquidity returns the token amounts represented by liquidity in
// [tickLower, tickUpper] when the pool sits at tickCurrent/sqrtRatioX96.
// roundUp is used for amounts a depositor must supply, round down for
// amounts a holder can withdraw.
func AmountsForLiquidity(tickCurrent int, sqrtRatioX96 *big.Int, tickLower, tickUpper int, liquidity *big.Int, roundUp bool) (*big.Int, *big.Int, error) {
	sqrtLower, err := tickmath.GetSqrtRatioAtTick(tickLower)
	if err != nil {
		return nil, nil, err
	}
	sqrtUpper, err := tickmath.GetSqrtRatioAtTick(tickUpper)
	if err != nil {
		return nil, nil, err
	}

	amount0, amount1 := new(big.Int), new(big.Int)
	switch RegimeOf(tickCurrent, tickLower, tickUpper) {
	case PriceBelowRange:
		amount0, err = sqrtpricemath.GetAmount0Delta(sqrtLower, sqrtUpper, liquidity, roundUp)
	case PriceInRange:
		amount0, err = sqrtpricemath.GetAmount0Delta(sqrtRatioX96, sqrtUpper, liquidity, roundUp)
		if err == nil {
			amount1, err = sqrtpricemath.GetAmount1Delta(sqrtLower, sqrtRatioX96, liquidity, roundUp)
		}
	case PriceAboveRange:
		amount1, err = sqrtpricemath.GetAmount1Delta(sqrtLower, sqrtUpper, liquidity, roundUp)
	}
	if err != nil {
		return nil, nil, err
	}
	return amount0, amount1, nil
}
