package model

import (
	v2 "github.com/shibaone/shibaswap-v3-sdk/pkg/v2"
)

// QuoteResult is the output line for a successful QuoteRequest.
type QuoteResult struct {
	ID   string    `json:"id"`
	Kind QuoteKind `json:"kind"`

	AmountIn    *TokenAmount   `json:"amount_in,omitempty"`
	AmountOut   *TokenAmount   `json:"amount_out,omitempty"`
	Liquidity   string         `json:"liquidity,omitempty"`
	Regime      string         `json:"regime,omitempty"`
	Amounts     *AmountPair    `json:"amounts,omitempty"`
	MintAmounts *AmountPair    `json:"mint_amounts,omitempty"`
	MintMin     *AmountPair    `json:"mint_min,omitempty"`
	BurnMin     *AmountPair    `json:"burn_min,omitempty"`
	NextV2Pool  *v2.PoolRecord `json:"next_v2_pool,omitempty"`
}

// TokenAmount carries a raw amount and its decimal rendering.
type TokenAmount struct {
	Token     string `json:"token"`
	Raw       string `json:"raw"`
	Formatted string `json:"formatted"`
}

// AmountPair is a token0/token1 amount pair.
type AmountPair struct {
	Amount0    string `json:"amount0"`
	Amount1    string `json:"amount1"`
	Formatted0 string `json:"formatted0"`
	Formatted1 string `json:"formatted1"`
}
