package quote

import (
	"fmt"
	"math/big"

	"github.com/shibaone/shibaswap-v3-sdk/internal/model"
	"github.com/shibaone/shibaswap-v3-sdk/pkg/token"
	v2 "github.com/shibaone/shibaswap-v3-sdk/pkg/v2"
)

func v2Pool(req model.QuoteRequest) (*v2.Pool, error) {
	if req.V2Pool == nil {
		return nil, fmt.Errorf("%w: v2_pool", ErrMissingPool)
	}
	pool, err := v2.Deserialize(*req.V2Pool)
	if err != nil {
		return nil, fmt.Errorf("v2 pool: %w", err)
	}
	return pool, nil
}

// v2TokenAmount resolves req.Token against the pool and pairs it with raw.
func v2TokenAmount(pool *v2.Pool, address, raw string) (token.Amount, error) {
	t, err := pickToken(address, pool.Token0(), pool.Token1())
	if err != nil {
		return token.Amount{}, err
	}
	value, err := requireInt("amount", raw)
	if err != nil {
		return token.Amount{}, err
	}
	return token.NewAmount(t, value)
}

func (q Quoter) v2ExactIn(req model.QuoteRequest) (model.QuoteResult, error) {
	pool, err := v2Pool(req)
	if err != nil {
		return model.QuoteResult{}, err
	}
	input, err := v2TokenAmount(pool, req.Token, req.Amount)
	if err != nil {
		return model.QuoteResult{}, err
	}
	output, next, err := pool.GetOutputAmount(input)
	if err != nil {
		return model.QuoteResult{}, err
	}
	nextRecord := next.Serialize()
	return model.QuoteResult{
		AmountIn:   tokenAmount(input),
		AmountOut:  tokenAmount(output),
		NextV2Pool: &nextRecord,
	}, nil
}

func (q Quoter) v2ExactOut(req model.QuoteRequest) (model.QuoteResult, error) {
	pool, err := v2Pool(req)
	if err != nil {
		return model.QuoteResult{}, err
	}
	output, err := v2TokenAmount(pool, req.Token, req.Amount)
	if err != nil {
		return model.QuoteResult{}, err
	}
	input, next, err := pool.GetInputAmount(output)
	if err != nil {
		return model.QuoteResult{}, err
	}
	nextRecord := next.Serialize()
	return model.QuoteResult{
		AmountIn:   tokenAmount(input),
		AmountOut:  tokenAmount(output),
		NextV2Pool: &nextRecord,
	}, nil
}

func (q Quoter) v2Mint(req model.QuoteRequest) (model.QuoteResult, error) {
	pool, err := v2Pool(req)
	if err != nil {
		return model.QuoteResult{}, err
	}
	raw0, err := requireInt("amount0", req.Amount0)
	if err != nil {
		return model.QuoteResult{}, err
	}
	raw1, err := requireInt("amount1", req.Amount1)
	if err != nil {
		return model.QuoteResult{}, err
	}
	supply, err := requireInt("total_supply", req.TotalSupply)
	if err != nil {
		return model.QuoteResult{}, err
	}

	amount0, err := token.NewAmount(pool.Token0(), raw0)
	if err != nil {
		return model.QuoteResult{}, err
	}
	amount1, err := token.NewAmount(pool.Token1(), raw1)
	if err != nil {
		return model.QuoteResult{}, err
	}
	totalSupply, err := token.NewAmount(pool.LiquidityToken(), supply)
	if err != nil {
		return model.QuoteResult{}, err
	}

	minted, err := pool.GetLiquidityMinted(totalSupply, amount0, amount1)
	if err != nil {
		return model.QuoteResult{}, err
	}
	return model.QuoteResult{
		Liquidity: minted.Quotient().String(),
		AmountOut: tokenAmount(minted),
	}, nil
}

func (q Quoter) v2Value(req model.QuoteRequest) (model.QuoteResult, error) {
	pool, err := v2Pool(req)
	if err != nil {
		return model.QuoteResult{}, err
	}
	t, err := pickToken(req.Token, pool.Token0(), pool.Token1())
	if err != nil {
		return model.QuoteResult{}, err
	}
	supply, err := requireInt("total_supply", req.TotalSupply)
	if err != nil {
		return model.QuoteResult{}, err
	}
	liq, err := requireInt("liquidity", req.Liquidity)
	if err != nil {
		return model.QuoteResult{}, err
	}
	totalSupply, err := token.NewAmount(pool.LiquidityToken(), supply)
	if err != nil {
		return model.QuoteResult{}, err
	}
	liquidity, err := token.NewAmount(pool.LiquidityToken(), liq)
	if err != nil {
		return model.QuoteResult{}, err
	}

	var kLast *big.Int
	if req.FeeOn {
		kLast, err = requireInt("k_last", req.KLast)
		if err != nil {
			return model.QuoteResult{}, err
		}
	}

	value, err := pool.GetLiquidityValue(t, totalSupply, liquidity, req.FeeOn, kLast)
	if err != nil {
		return model.QuoteResult{}, err
	}
	return model.QuoteResult{
		Liquidity: liq.String(),
		AmountOut: tokenAmount(value),
	}, nil
}
