package v3

import (
	"fmt"
	"math/big"

	"github.com/shibaone/shibaswap-v3-sdk/pkg/fullmath"
	"github.com/shibaone/shibaswap-v3-sdk/pkg/tickmath"
	"github.com/shibaone/shibaswap-v3-sdk/pkg/token"
)

// EncodeSqrtRatioX96 returns floor(sqrt(amount1 * 2^192 / amount0)), the
// sqrt price of a pool holding amount1 token1 per amount0 token0.
func EncodeSqrtRatioX96(amount1, amount0 *big.Int) (*big.Int, error) {
	if amount0.Sign() == 0 {
		return nil, fullmath.ErrDivisionByZero
	}
	ratioX192 := new(big.Int).Lsh(amount1, 192)
	ratioX192.Quo(ratioX192, amount0)
	return fullmath.Sqrt(ratioX192)
}

// TickToPrice returns the price of base in quote at tick.
func TickToPrice(base, quote token.Token, tick int) (token.Price, error) {
	sqrtRatioX96, err := tickmath.GetSqrtRatioAtTick(tick)
	if err != nil {
		return token.Price{}, err
	}
	ratioX192 := new(big.Int).Mul(sqrtRatioX96, sqrtRatioX96)

	before, err := base.SortsBefore(quote)
	if err != nil {
		return token.Price{}, err
	}
	if before {
		return token.NewPrice(base, quote, fullmath.Q192, ratioX192)
	}
	return token.NewPrice(base, quote, ratioX192, fullmath.Q192)
}

// PriceToClosestTick returns the first tick whose price is less than or
// equal to price.
func PriceToClosestTick(price token.Price) (int, error) {
	before, err := price.Base.SortsBefore(price.Quote)
	if err != nil {
		return 0, err
	}

	var sqrtRatioX96 *big.Int
	if before {
		sqrtRatioX96, err = EncodeSqrtRatioX96(price.Numerator(), price.Denominator())
	} else {
		sqrtRatioX96, err = EncodeSqrtRatioX96(price.Denominator(), price.Numerator())
	}
	if err != nil {
		return 0, fmt.Errorf("price to tick: %w", err)
	}

	tick, err := tickmath.GetTickAtSqrtRatio(sqrtRatioX96)
	if err != nil {
		return 0, err
	}
	if tick == tickmath.MaxTick-1 {
		return tick, nil
	}

	next, err := TickToPrice(price.Base, price.Quote, tick+1)
	if err != nil {
		return 0, err
	}
	if before {
		if !price.LessThan(next.Fraction) {
			tick++
		}
	} else if !price.GreaterThan(next.Fraction) {
		tick++
	}
	return tick, nil
}
