// Package sqrtpricemath computes token amounts between two Q64.96 square-root
// prices for a given liquidity, and the price reached after adding or
// removing an amount of either token.
package sqrtpricemath

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/holiman/uint256"

	"github.com/shibaone/shibaswap-v3-sdk/pkg/fullmath"
)

const resolution = 96

var (
	ErrInvalidPrice      = errors.New("sqrt price must be positive")
	ErrInvalidLiquidity  = errors.New("liquidity must be positive")
	ErrInvalidPriceOrder = errors.New("sqrt price lower bound above upper bound")
	ErrPriceOverflow     = errors.New("sqrt price exceeds uint160")
	ErrInsufficientPrice = errors.New("amount exceeds virtual reserves")
)

func sorted(a, b *big.Int) (*big.Int, *big.Int) {
	if a.Cmp(b) > 0 {
		return b, a
	}
	return a, b
}

// GetAmount0Delta returns the token0 amount between two sqrt prices:
//
//	liquidity * 2^96 * (sqrtB - sqrtA) / sqrtB / sqrtA
//
// The prices may be passed in either order.
func GetAmount0Delta(sqrtRatioAX96, sqrtRatioBX96, liquidity *big.Int, roundUp bool) (*big.Int, error) {
	lower, upper := sorted(sqrtRatioAX96, sqrtRatioBX96)
	if lower.Sign() <= 0 {
		return nil, ErrInvalidPrice
	}

	numerator1 := new(big.Int).Lsh(liquidity, resolution)
	numerator2 := new(big.Int).Sub(upper, lower)
	if numerator2.Sign() < 0 {
		return nil, ErrInvalidPriceOrder
	}

	if roundUp {
		scaled, err := fullmath.MulDivRoundingUp(numerator1, numerator2, upper)
		if err != nil {
			return nil, fmt.Errorf("amount0 delta: %w", err)
		}
		return fullmath.DivRoundingUp(scaled, lower)
	}

	scaled, err := fullmath.MulDiv(numerator1, numerator2, upper)
	if err != nil {
		return nil, fmt.Errorf("amount0 delta: %w", err)
	}
	return scaled.Quo(scaled, lower), nil
}

// GetAmount1Delta returns the token1 amount between two sqrt prices:
//
//	liquidity * (sqrtB - sqrtA) / 2^96
func GetAmount1Delta(sqrtRatioAX96, sqrtRatioBX96, liquidity *big.Int, roundUp bool) (*big.Int, error) {
	lower, upper := sorted(sqrtRatioAX96, sqrtRatioBX96)
	diff := new(big.Int).Sub(upper, lower)

	var (
		amount *big.Int
		err    error
	)
	if roundUp {
		amount, err = fullmath.MulDivRoundingUp(liquidity, diff, fullmath.Q96)
	} else {
		amount, err = fullmath.MulDiv(liquidity, diff, fullmath.Q96)
	}
	if err != nil {
		return nil, fmt.Errorf("amount1 delta: %w", err)
	}
	return amount, nil
}

// GetNextSqrtPriceFromInput returns the sqrt price after swapping amountIn of
// token0 (zeroForOne) or token1 into the pool. The result never overshoots
// the true price.
func GetNextSqrtPriceFromInput(sqrtPX96, liquidity, amountIn *big.Int, zeroForOne bool) (*big.Int, error) {
	if err := checkState(sqrtPX96, liquidity); err != nil {
		return nil, err
	}
	if zeroForOne {
		return nextFromAmount0RoundingUp(sqrtPX96, liquidity, amountIn, true)
	}
	return nextFromAmount1RoundingDown(sqrtPX96, liquidity, amountIn, true)
}

// GetNextSqrtPriceFromOutput returns the sqrt price after taking amountOut
// of token1 (zeroForOne) or token0 out of the pool.
func GetNextSqrtPriceFromOutput(sqrtPX96, liquidity, amountOut *big.Int, zeroForOne bool) (*big.Int, error) {
	if err := checkState(sqrtPX96, liquidity); err != nil {
		return nil, err
	}
	if zeroForOne {
		return nextFromAmount1RoundingDown(sqrtPX96, liquidity, amountOut, false)
	}
	return nextFromAmount0RoundingUp(sqrtPX96, liquidity, amountOut, false)
}

func checkState(sqrtPX96, liquidity *big.Int) error {
	if sqrtPX96.Sign() <= 0 {
		return ErrInvalidPrice
	}
	if liquidity.Sign() <= 0 {
		return ErrInvalidLiquidity
	}
	return nil
}

// The product and denominator wrap at 256 bits exactly like the contract;
// the wrapped value is only used to detect overflow.
func nextFromAmount0RoundingUp(sqrtPX96, liquidity, amount *big.Int, add bool) (*big.Int, error) {
	if amount.Sign() == 0 {
		return new(big.Int).Set(sqrtPX96), nil
	}

	numerator1 := new(big.Int).Lsh(liquidity, resolution)
	n1, err := fullmath.ToWord(numerator1)
	if err != nil {
		return nil, err
	}
	p, err := fullmath.ToWord(sqrtPX96)
	if err != nil {
		return nil, err
	}
	a, err := fullmath.ToWord(amount)
	if err != nil {
		return nil, err
	}

	product := new(uint256.Int).Mul(a, p)
	noOverflow := new(uint256.Int).Div(product, a).Eq(p)

	if add {
		if noOverflow {
			denominator := new(uint256.Int).Add(n1, product)
			if !denominator.Lt(n1) {
				return fullmath.MulDivRoundingUp(numerator1, sqrtPX96, denominator.ToBig())
			}
		}
		// numerator1 / (numerator1/sqrtP + amount)
		denominator := new(big.Int).Quo(numerator1, sqrtPX96)
		denominator.Add(denominator, amount)
		return fullmath.DivRoundingUp(numerator1, denominator)
	}

	if !noOverflow || !n1.Gt(product) {
		return nil, ErrInsufficientPrice
	}
	denominator := new(uint256.Int).Sub(n1, product)
	return fullmath.MulDivRoundingUp(numerator1, sqrtPX96, denominator.ToBig())
}

func nextFromAmount1RoundingDown(sqrtPX96, liquidity, amount *big.Int, add bool) (*big.Int, error) {
	if add {
		var quotient *big.Int
		if amount.Cmp(fullmath.MaxUint160) <= 0 {
			quotient = new(big.Int).Lsh(amount, resolution)
			quotient.Quo(quotient, liquidity)
		} else {
			var err error
			quotient, err = fullmath.MulDiv(amount, fullmath.Q96, liquidity)
			if err != nil {
				return nil, err
			}
		}
		next := quotient.Add(quotient, sqrtPX96)
		if next.Cmp(fullmath.MaxUint160) > 0 {
			return nil, ErrPriceOverflow
		}
		return next, nil
	}

	quotient, err := fullmath.MulDivRoundingUp(amount, fullmath.Q96, liquidity)
	if err != nil {
		return nil, err
	}
	if sqrtPX96.Cmp(quotient) <= 0 {
		return nil, ErrInsufficientPrice
	}
	return quotient.Sub(sqrtPX96, quotient), nil
}
