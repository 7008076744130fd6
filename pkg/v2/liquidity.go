package v2

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/shibaone/shibaswap-v3-sdk/pkg/fullmath"
	"github.com/shibaone/shibaswap-v3-sdk/pkg/token"
)

// protocolFeeDivisor sets the protocol's share of fee growth to 1/6.
var protocolFeeDivisor = big.NewInt(5)

var (
	ErrLiquidityExceedsSupply = errors.New("liquidity exceeds total supply")
	ErrMissingKLast           = errors.New("kLast required when protocol fee is on")
)

func (p *Pool) checkLiquidityToken(a token.Amount) error {
	if !a.Token().Equals(p.liquidityToken) {
		return fmt.Errorf("%w: %s is not the liquidity token", token.ErrTokenMismatch, a.Token())
	}
	return nil
}

// GetLiquidityMinted returns the liquidity minted for depositing amountA and
// amountB. The first deposit mints sqrt(amount0*amount1) - MinimumLiquidity;
// later deposits mint the smaller proportional share of totalSupply.
func (p *Pool) GetLiquidityMinted(totalSupply, amountA, amountB token.Amount) (token.Amount, error) {
	if err := p.checkLiquidityToken(totalSupply); err != nil {
		return token.Amount{}, err
	}
	before, err := amountA.Token().SortsBefore(amountB.Token())
	if err != nil {
		return token.Amount{}, err
	}
	if !before {
		amountA, amountB = amountB, amountA
	}
	if !amountA.Token().Equals(p.Token0()) || !amountB.Token().Equals(p.Token1()) {
		return token.Amount{}, fmt.Errorf("%w: deposit tokens differ from pool tokens", token.ErrTokenMismatch)
	}

	var liquidity *big.Int
	if totalSupply.Quotient().Sign() == 0 {
		root, err := fullmath.Sqrt(new(big.Int).Mul(amountA.Quotient(), amountB.Quotient()))
		if err != nil {
			return token.Amount{}, err
		}
		liquidity = root.Sub(root, minLiquidity)
	} else {
		amount0, err := fullmath.MulDivFloor(amountA.Quotient(), totalSupply.Quotient(), p.reserves[0].Quotient())
		if err != nil {
			return token.Amount{}, fmt.Errorf("liquidity minted: %w", err)
		}
		amount1, err := fullmath.MulDivFloor(amountB.Quotient(), totalSupply.Quotient(), p.reserves[1].Quotient())
		if err != nil {
			return token.Amount{}, fmt.Errorf("liquidity minted: %w", err)
		}
		liquidity = amount0
		if amount1.Cmp(amount0) < 0 {
			liquidity = amount1
		}
	}

	if liquidity.Sign() <= 0 {
		return token.Amount{}, ErrInsufficientInputAmount
	}
	return token.NewAmount(p.liquidityToken, liquidity)
}

// GetLiquidityValue returns the amount of t that liquidity can be redeemed
// for. With feeOn, totalSupply is first inflated by the protocol fee that
// would be minted since kLast.
func (p *Pool) GetLiquidityValue(t token.Token, totalSupply, liquidity token.Amount, feeOn bool, kLast *big.Int) (token.Amount, error) {
	reserve, err := p.ReserveOf(t)
	if err != nil {
		return token.Amount{}, err
	}
	if err := p.checkLiquidityToken(totalSupply); err != nil {
		return token.Amount{}, err
	}
	if err := p.checkLiquidityToken(liquidity); err != nil {
		return token.Amount{}, err
	}
	if liquidity.Quotient().Cmp(totalSupply.Quotient()) > 0 {
		return token.Amount{}, ErrLiquidityExceedsSupply
	}

	supply := totalSupply.Quotient()
	if feeOn {
		if kLast == nil {
			return token.Amount{}, ErrMissingKLast
		}
		feeLiquidity, err := p.protocolFeeLiquidity(supply, kLast)
		if err != nil {
			return token.Amount{}, err
		}
		supply.Add(supply, feeLiquidity)
	}

	value, err := fullmath.MulDivFloor(liquidity.Quotient(), reserve.Quotient(), supply)
	if err != nil {
		return token.Amount{}, fmt.Errorf("liquidity value: %w", err)
	}
	return token.NewAmount(t, value)
}

// protocolFeeLiquidity is totalSupply*(rootK-rootKLast)/(rootK*5+rootKLast)
// when rootK grew since kLast, zero otherwise.
func (p *Pool) protocolFeeLiquidity(totalSupply, kLast *big.Int) (*big.Int, error) {
	if kLast.Sign() == 0 {
		return new(big.Int), nil
	}
	rootK, err := fullmath.Sqrt(new(big.Int).Mul(p.reserves[0].Quotient(), p.reserves[1].Quotient()))
	if err != nil {
		return nil, err
	}
	rootKLast, err := fullmath.Sqrt(kLast)
	if err != nil {
		return nil, err
	}
	if rootK.Cmp(rootKLast) <= 0 {
		return new(big.Int), nil
	}

	numerator := new(big.Int).Sub(rootK, rootKLast)
	denominator := new(big.Int).Mul(rootK, protocolFeeDivisor)
	denominator.Add(denominator, rootKLast)
	return fullmath.MulDivFloor(totalSupply, numerator, denominator)
}
