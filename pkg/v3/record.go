package v3

import (
	"errors"
	"fmt"

	"github.com/shibaone/shibaswap-v3-sdk/pkg/token"
)

// PoolRecord is the serialized form of a Pool.
type PoolRecord struct {
	Token0      token.Record `json:"token0"`
	Token1      token.Record `json:"token1"`
	Fee         uint32       `json:"fee"`
	TickSpacing int32        `json:"tick_spacing"`
	Liquidity   string       `json:"liquidity"`
	Slot0       *PoolSlot0   `json:"slot0"`
}

// PoolSlot0 holds the price fields of a pool.
type PoolSlot0 struct {
	SqrtPriceX96 string `json:"sqrt_price_x96"`
	Tick         int32  `json:"tick"`
}

func (p *Pool) Serialize() PoolRecord {
	return PoolRecord{
		Token0:      p.token0.Record(),
		Token1:      p.token1.Record(),
		Fee:         uint32(p.fee),
		TickSpacing: int32(p.tickSpacing),
		Liquidity:   p.liquidity.String(),
		Slot0: &PoolSlot0{
			SqrtPriceX96: p.sqrtRatioX96.String(),
			Tick:         int32(p.tickCurrent),
		},
	}
}

// DeserializePool rebuilds a Pool through NewPool.
func DeserializePool(rec PoolRecord) (*Pool, error) {
	if rec.Slot0 == nil {
		return nil, errors.New("decode pool: missing slot0")
	}
	token0, err := token.FromRecord(rec.Token0)
	if err != nil {
		return nil, fmt.Errorf("decode token0: %w", err)
	}
	token1, err := token.FromRecord(rec.Token1)
	if err != nil {
		return nil, fmt.Errorf("decode token1: %w", err)
	}
	sqrtRatioX96, err := token.ParseInt(rec.Slot0.SqrtPriceX96)
	if err != nil {
		return nil, fmt.Errorf("decode sqrt price: %w", err)
	}
	liq, err := token.ParseInt(rec.Liquidity)
	if err != nil {
		return nil, fmt.Errorf("decode liquidity: %w", err)
	}

	return NewPool(PoolParams{
		TokenA:       token0,
		TokenB:       token1,
		Fee:          FeeAmount(rec.Fee),
		TickSpacing:  int(rec.TickSpacing),
		SqrtRatioX96: sqrtRatioX96,
		Liquidity:    liq,
		TickCurrent:  int(rec.Slot0.Tick),
	})
}

// PositionRecord is the serialized form of a Position.
type PositionRecord struct {
	Pool      PoolRecord `json:"pool"`
	TickLower int32      `json:"tick_lower"`
	TickUpper int32      `json:"tick_upper"`
	Liquidity string     `json:"liquidity"`
}

func (p *Position) Serialize() PositionRecord {
	return PositionRecord{
		Pool:      p.pool.Serialize(),
		TickLower: int32(p.tickLower),
		TickUpper: int32(p.tickUpper),
		Liquidity: p.liquidity.String(),
	}
}

// DeserializePosition rebuilds the pool and then the position.
func DeserializePosition(rec PositionRecord) (*Position, error) {
	pool, err := DeserializePool(rec.Pool)
	if err != nil {
		return nil, err
	}
	liq, err := token.ParseInt(rec.Liquidity)
	if err != nil {
		return nil, fmt.Errorf("decode position liquidity: %w", err)
	}
	return NewPosition(pool, int(rec.TickLower), int(rec.TickUpper), liq)
}
