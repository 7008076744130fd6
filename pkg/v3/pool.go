// Package v3 models a concentrated-liquidity pool snapshot and the
// positions minted against it.
package v3

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/shibaone/shibaswap-v3-sdk/pkg/fullmath"
	"github.com/shibaone/shibaswap-v3-sdk/pkg/tickmath"
	"github.com/shibaone/shibaswap-v3-sdk/pkg/token"
)

var (
	ErrInvalidLiquidity = errors.New("liquidity outside uint128")
	ErrPriceBounds      = errors.New("sqrt price not within current tick")
)

// Pool is an immutable snapshot of pool state.
type Pool struct {
	token0       token.Token
	token1       token.Token
	fee          FeeAmount
	tickSpacing  int
	sqrtRatioX96 *big.Int
	liquidity    *big.Int
	tickCurrent  int
}

// PoolParams carries the constructor inputs. The tokens may be in either
// order. A zero TickSpacing selects the fee tier's default.
type PoolParams struct {
	TokenA       token.Token
	TokenB       token.Token
	Fee          FeeAmount
	TickSpacing  int
	SqrtRatioX96 *big.Int
	Liquidity    *big.Int
	TickCurrent  int
}

// NewPool validates the snapshot: canonical token order, a fee below 100%,
// tick and liquidity bounds, and a sqrt price inside the current tick.
func NewPool(p PoolParams) (*Pool, error) {
	token0, token1, err := token.Sort(p.TokenA, p.TokenB)
	if err != nil {
		return nil, fmt.Errorf("new pool: %w", err)
	}
	if p.Fee >= feeDenominator {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFee, p.Fee)
	}

	spacing := p.TickSpacing
	if spacing == 0 {
		if spacing, err = p.Fee.TickSpacing(); err != nil {
			return nil, err
		}
	}
	if spacing < 0 {
		return nil, fmt.Errorf("%w: %d", tickmath.ErrInvalidTickSpacing, spacing)
	}

	if p.SqrtRatioX96 == nil || p.Liquidity == nil {
		return nil, errors.New("new pool: sqrt price and liquidity are required")
	}
	if p.Liquidity.Sign() < 0 || p.Liquidity.Cmp(fullmath.MaxUint128) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidLiquidity, p.Liquidity)
	}

	lower, err := tickmath.GetSqrtRatioAtTick(p.TickCurrent)
	if err != nil {
		return nil, err
	}
	if p.SqrtRatioX96.Cmp(lower) < 0 {
		return nil, fmt.Errorf("%w: %s below tick %d", ErrPriceBounds, p.SqrtRatioX96, p.TickCurrent)
	}
	if p.TickCurrent < tickmath.MaxTick {
		upper, err := tickmath.GetSqrtRatioAtTick(p.TickCurrent + 1)
		if err != nil {
			return nil, err
		}
		if p.SqrtRatioX96.Cmp(upper) > 0 {
			return nil, fmt.Errorf("%w: %s above tick %d", ErrPriceBounds, p.SqrtRatioX96, p.TickCurrent+1)
		}
	}

	return &Pool{
		token0:       token0,
		token1:       token1,
		fee:          p.Fee,
		tickSpacing:  spacing,
		sqrtRatioX96: new(big.Int).Set(p.SqrtRatioX96),
		liquidity:    new(big.Int).Set(p.Liquidity),
		tickCurrent:  p.TickCurrent,
	}, nil
}

// NewPoolAtSqrtRatio derives the current tick from the sqrt price.
func NewPoolAtSqrtRatio(tokenA, tokenB token.Token, fee FeeAmount, sqrtRatioX96, liquidity *big.Int) (*Pool, error) {
	tick, err := tickmath.GetTickAtSqrtRatio(sqrtRatioX96)
	if err != nil {
		return nil, err
	}
	return NewPool(PoolParams{
		TokenA:       tokenA,
		TokenB:       tokenB,
		Fee:          fee,
		SqrtRatioX96: sqrtRatioX96,
		Liquidity:    liquidity,
		TickCurrent:  tick,
	})
}

func (p *Pool) Token0() token.Token    { return p.token0 }
func (p *Pool) Token1() token.Token    { return p.token1 }
func (p *Pool) Fee() FeeAmount         { return p.fee }
func (p *Pool) TickSpacing() int       { return p.tickSpacing }
func (p *Pool) TickCurrent() int       { return p.tickCurrent }
func (p *Pool) SqrtRatioX96() *big.Int { return new(big.Int).Set(p.sqrtRatioX96) }
func (p *Pool) Liquidity() *big.Int    { return new(big.Int).Set(p.liquidity) }
func (p *Pool) ChainID() uint64        { return p.token0.ChainID }

func (p *Pool) InvolvesToken(t token.Token) bool {
	return t.Equals(p.token0) || t.Equals(p.token1)
}

// Token0Price is sqrtRatioX96^2 / 2^192 token1 per token0.
func (p *Pool) Token0Price() (token.Price, error) {
	ratioX192 := new(big.Int).Mul(p.sqrtRatioX96, p.sqrtRatioX96)
	return token.NewPrice(p.token0, p.token1, fullmath.Q192, ratioX192)
}

// Token1Price is the inverse of Token0Price.
func (p *Pool) Token1Price() (token.Price, error) {
	ratioX192 := new(big.Int).Mul(p.sqrtRatioX96, p.sqrtRatioX96)
	return token.NewPrice(p.token1, p.token0, ratioX192, fullmath.Q192)
}

func (p *Pool) PriceOf(t token.Token) (token.Price, error) {
	switch {
	case t.Equals(p.token0):
		return p.Token0Price()
	case t.Equals(p.token1):
		return p.Token1Price()
	default:
		return token.Price{}, fmt.Errorf("%w: %s not in pool", token.ErrTokenMismatch, t)
	}
}
