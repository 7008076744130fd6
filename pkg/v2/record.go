package v2

import (
	"fmt"

	"github.com/shibaone/shibaswap-v3-sdk/pkg/token"
)

// PoolRecord is the serialized form of a Pool.
type PoolRecord struct {
	Reserve0       token.AmountRecord `json:"reserve0"`
	Reserve1       token.AmountRecord `json:"reserve1"`
	LiquidityToken token.Record       `json:"liquidity_token"`
}

func (p *Pool) Serialize() PoolRecord {
	return PoolRecord{
		Reserve0:       p.reserves[0].Record(),
		Reserve1:       p.reserves[1].Record(),
		LiquidityToken: p.liquidityToken.Record(),
	}
}

// Deserialize rebuilds a Pool, re-running every constructor check.
func Deserialize(rec PoolRecord) (*Pool, error) {
	reserve0, err := token.AmountFromRecord(rec.Reserve0)
	if err != nil {
		return nil, fmt.Errorf("decode reserve0: %w", err)
	}
	reserve1, err := token.AmountFromRecord(rec.Reserve1)
	if err != nil {
		return nil, fmt.Errorf("decode reserve1: %w", err)
	}
	liquidityToken, err := token.FromRecord(rec.LiquidityToken)
	if err != nil {
		return nil, fmt.Errorf("decode liquidity token: %w", err)
	}
	return NewPool(reserve0, reserve1, liquidityToken)
}
