package quote

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shibaone/shibaswap-v3-sdk/internal/model"
	v3 "github.com/shibaone/shibaswap-v3-sdk/pkg/v3"
)

func v3Pool(req model.QuoteRequest) (*v3.Pool, error) {
	if req.V3Pool == nil {
		return nil, fmt.Errorf("%w: v3_pool", ErrMissingPool)
	}
	pool, err := v3.DeserializePool(*req.V3Pool)
	if err != nil {
		return nil, fmt.Errorf("v3 pool: %w", err)
	}
	return pool, nil
}

func (q Quoter) v3Position(req model.QuoteRequest) (model.QuoteResult, error) {
	pool, err := v3Pool(req)
	if err != nil {
		return model.QuoteResult{}, err
	}
	liq, err := requireInt("liquidity", req.Liquidity)
	if err != nil {
		return model.QuoteResult{}, err
	}
	position, err := v3.NewPosition(pool, int(req.TickLower), int(req.TickUpper), liq)
	if err != nil {
		return model.QuoteResult{}, err
	}
	return q.describePosition(req, position)
}

// v3FromAmounts sizes the largest position the given amounts afford. Either
// amount may be omitted to size from the other side alone.
func (q Quoter) v3FromAmounts(req model.QuoteRequest) (model.QuoteResult, error) {
	pool, err := v3Pool(req)
	if err != nil {
		return model.QuoteResult{}, err
	}
	lower, upper := int(req.TickLower), int(req.TickUpper)

	has0 := strings.TrimSpace(req.Amount0) != ""
	has1 := strings.TrimSpace(req.Amount1) != ""

	var position *v3.Position
	switch {
	case has0 && has1:
		var amount0, amount1 *big.Int
		if amount0, err = requireInt("amount0", req.Amount0); err != nil {
			return model.QuoteResult{}, err
		}
		if amount1, err = requireInt("amount1", req.Amount1); err != nil {
			return model.QuoteResult{}, err
		}
		position, err = v3.FromAmounts(pool, lower, upper, amount0, amount1, req.UseFullPrecision)
	case has0:
		var amount0 *big.Int
		if amount0, err = requireInt("amount0", req.Amount0); err != nil {
			return model.QuoteResult{}, err
		}
		position, err = v3.FromAmount0(pool, lower, upper, amount0, req.UseFullPrecision)
	case has1:
		var amount1 *big.Int
		if amount1, err = requireInt("amount1", req.Amount1); err != nil {
			return model.QuoteResult{}, err
		}
		position, err = v3.FromAmount1(pool, lower, upper, amount1)
	default:
		return model.QuoteResult{}, fmt.Errorf("%w: amount0 or amount1", ErrMissingField)
	}
	if err != nil {
		return model.QuoteResult{}, err
	}
	return q.describePosition(req, position)
}

func (q Quoter) describePosition(req model.QuoteRequest, position *v3.Position) (model.QuoteResult, error) {
	tolerance, err := q.slippage(req)
	if err != nil {
		return model.QuoteResult{}, err
	}
	amounts, err := position.Amounts()
	if err != nil {
		return model.QuoteResult{}, err
	}
	mint, err := position.MintAmounts()
	if err != nil {
		return model.QuoteResult{}, err
	}
	mintMin, err := position.MintAmountsWithSlippage(tolerance)
	if err != nil {
		return model.QuoteResult{}, err
	}
	burnMin, err := position.BurnAmountsWithSlippage(tolerance)
	if err != nil {
		return model.QuoteResult{}, err
	}

	token0, token1 := position.Pool().Token0(), position.Pool().Token1()
	return model.QuoteResult{
		Liquidity:   position.Liquidity().String(),
		Regime:      position.Regime().String(),
		Amounts:     amountPair(amounts.Amount0, amounts.Amount1, token0, token1),
		MintAmounts: amountPair(mint.Amount0, mint.Amount1, token0, token1),
		MintMin:     amountPair(mintMin.Amount0, mintMin.Amount1, token0, token1),
		BurnMin:     amountPair(burnMin.Amount0, burnMin.Amount1, token0, token1),
	}, nil
}
