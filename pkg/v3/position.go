package v3

import (
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/shibaone/shibaswap-v3-sdk/pkg/fraction"
	"github.com/shibaone/shibaswap-v3-sdk/pkg/fullmath"
	"github.com/shibaone/shibaswap-v3-sdk/pkg/liquidity"
	"github.com/shibaone/shibaswap-v3-sdk/pkg/tickmath"
	"github.com/shibaone/shibaswap-v3-sdk/pkg/token"
)

var ErrInvalidTickRange = errors.New("invalid tick range")

// Amounts is a pair of raw token0/token1 quantities.
type Amounts struct {
	Amount0 *big.Int
	Amount1 *big.Int
}

func (a Amounts) clone() Amounts {
	return Amounts{Amount0: new(big.Int).Set(a.Amount0), Amount1: new(big.Int).Set(a.Amount1)}
}

// Position is liquidity bound to [tickLower, tickUpper) of a pool snapshot.
// Derived amounts are computed on first use and shared by later callers.
type Position struct {
	pool      *Pool
	tickLower int
	tickUpper int
	liquidity *big.Int

	amountsOnce sync.Once
	amounts     Amounts
	amountsErr  error

	mintOnce sync.Once
	mint     Amounts
	mintErr  error
}

// NewPosition checks tick order, bounds and spacing.
func NewPosition(pool *Pool, tickLower, tickUpper int, liq *big.Int) (*Position, error) {
	if tickLower >= tickUpper {
		return nil, fmt.Errorf("%w: lower %d >= upper %d", ErrInvalidTickRange, tickLower, tickUpper)
	}
	if tickLower < tickmath.MinTick {
		return nil, fmt.Errorf("%w: lower %d", tickmath.ErrTickOutOfRange, tickLower)
	}
	if tickUpper > tickmath.MaxTick {
		return nil, fmt.Errorf("%w: upper %d", tickmath.ErrTickOutOfRange, tickUpper)
	}
	if tickLower%pool.tickSpacing != 0 || tickUpper%pool.tickSpacing != 0 {
		return nil, fmt.Errorf("%w: [%d, %d] not aligned to spacing %d", ErrInvalidTickRange, tickLower, tickUpper, pool.tickSpacing)
	}
	if liq.Sign() < 0 || liq.Cmp(fullmath.MaxUint128) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidLiquidity, liq)
	}

	return &Position{
		pool:      pool,
		tickLower: tickLower,
		tickUpper: tickUpper,
		liquidity: new(big.Int).Set(liq),
	}, nil
}

// FromAmounts mints the largest position that [amount0, amount1] can fund
// at the pool's current price. useFullPrecision=false reproduces the
// router's rounding of the token0 formula.
func FromAmounts(pool *Pool, tickLower, tickUpper int, amount0, amount1 *big.Int, useFullPrecision bool) (*Position, error) {
	sqrtLower, err := tickmath.GetSqrtRatioAtTick(tickLower)
	if err != nil {
		return nil, err
	}
	sqrtUpper, err := tickmath.GetSqrtRatioAtTick(tickUpper)
	if err != nil {
		return nil, err
	}
	liq, err := liquidity.MaxLiquidityForAmounts(pool.sqrtRatioX96, sqrtLower, sqrtUpper, amount0, amount1, useFullPrecision)
	if err != nil {
		return nil, err
	}
	return NewPosition(pool, tickLower, tickUpper, liq)
}

// FromAmount0 spends amount0 with unbounded token1.
func FromAmount0(pool *Pool, tickLower, tickUpper int, amount0 *big.Int, useFullPrecision bool) (*Position, error) {
	return FromAmounts(pool, tickLower, tickUpper, amount0, fullmath.MaxUint256, useFullPrecision)
}

// FromAmount1 spends amount1 with unbounded token0. The token1 formula has
// no imprecise variant.
func FromAmount1(pool *Pool, tickLower, tickUpper int, amount1 *big.Int) (*Position, error) {
	return FromAmounts(pool, tickLower, tickUpper, fullmath.MaxUint256, amount1, true)
}

func (p *Position) Pool() *Pool         { return p.pool }
func (p *Position) TickLower() int      { return p.tickLower }
func (p *Position) TickUpper() int      { return p.tickUpper }
func (p *Position) Liquidity() *big.Int { return new(big.Int).Set(p.liquidity) }

// Regime reports where the pool's current tick sits against the range.
func (p *Position) Regime() liquidity.Regime {
	return liquidity.RegimeOf(p.pool.tickCurrent, p.tickLower, p.tickUpper)
}

func (p *Position) amountsFor(roundUp bool) (Amounts, error) {
	a0, a1, err := liquidity.AmountsForLiquidity(p.pool.tickCurrent, p.pool.sqrtRatioX96, p.tickLower, p.tickUpper, p.liquidity, roundUp)
	if err != nil {
		return Amounts{}, err
	}
	return Amounts{Amount0: a0, Amount1: a1}, nil
}

// Amounts returns what burning the position yields at the current price,
// rounded down.
func (p *Position) Amounts() (Amounts, error) {
	p.amountsOnce.Do(func() {
		p.amounts, p.amountsErr = p.amountsFor(false)
	})
	if p.amountsErr != nil {
		return Amounts{}, p.amountsErr
	}
	return p.amounts.clone(), nil
}

// Amount0 is the token0 side of Amounts.
func (p *Position) Amount0() (token.Amount, error) {
	a, err := p.Amounts()
	if err != nil {
		return token.Amount{}, err
	}
	return token.NewAmount(p.pool.token0, a.Amount0)
}

// Amount1 is the token1 side of Amounts.
func (p *Position) Amount1() (token.Amount, error) {
	a, err := p.Amounts()
	if err != nil {
		return token.Amount{}, err
	}
	return token.NewAmount(p.pool.token1, a.Amount1)
}

// MintAmounts returns what minting the position costs at the current price,
// rounded up.
func (p *Position) MintAmounts() (Amounts, error) {
	p.mintOnce.Do(func() {
		p.mint, p.mintErr = p.amountsFor(true)
	})
	if p.mintErr != nil {
		return Amounts{}, p.mintErr
	}
	return p.mint.clone(), nil
}

// MintAmountsWithSlippage deducts tolerance from each side of MintAmounts.
func (p *Position) MintAmountsWithSlippage(tolerance fraction.Percent) (Amounts, error) {
	a, err := p.MintAmounts()
	if err != nil {
		return Amounts{}, err
	}
	return withSlippage(a, tolerance), nil
}

// BurnAmountsWithSlippage deducts tolerance from each side of Amounts.
func (p *Position) BurnAmountsWithSlippage(tolerance fraction.Percent) (Amounts, error) {
	a, err := p.Amounts()
	if err != nil {
		return Amounts{}, err
	}
	return withSlippage(a, tolerance), nil
}

// An out-of-range side is zero and Deduct keeps it zero.
func withSlippage(a Amounts, tolerance fraction.Percent) Amounts {
	return Amounts{
		Amount0: tolerance.Deduct(a.Amount0),
		Amount1: tolerance.Deduct(a.Amount1),
	}
}

// Token0PriceLower is the token0 price at tickLower.
func (p *Position) Token0PriceLower() (token.Price, error) {
	return TickToPrice(p.pool.token0, p.pool.token1, p.tickLower)
}

// Token0PriceUpper is the token0 price at tickUpper.
func (p *Position) Token0PriceUpper() (token.Price, error) {
	return TickToPrice(p.pool.token0, p.pool.token1, p.tickUpper)
}
