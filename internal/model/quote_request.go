package model

import (
	v2 "github.com/shibaone/shibaswap-v3-sdk/pkg/v2"
	v3 "github.com/shibaone/shibaswap-v3-sdk/pkg/v3"
)

// QuoteKind names the computation requested by a QuoteRequest.
type QuoteKind string

const (
	KindV2ExactIn     QuoteKind = "v2_exact_in"
	KindV2ExactOut    QuoteKind = "v2_exact_out"
	KindV2Mint        QuoteKind = "v2_mint"
	KindV2Value       QuoteKind = "v2_value"
	KindV3Position    QuoteKind = "v3_position"
	KindV3FromAmounts QuoteKind = "v3_from_amounts"
)

// QuoteRequest is one input line of a quote batch. Big integers are base-10
// strings; token fields are hex addresses.
type QuoteRequest struct {
	ID   string    `json:"id"`
	Kind QuoteKind `json:"kind"`

	V2Pool *v2.PoolRecord `json:"v2_pool,omitempty"`
	V3Pool *v3.PoolRecord `json:"v3_pool,omitempty"`

	Token            string `json:"token,omitempty"`
	Amount           string `json:"amount,omitempty"`
	Amount0          string `json:"amount0,omitempty"`
	Amount1          string `json:"amount1,omitempty"`
	TotalSupply      string `json:"total_supply,omitempty"`
	Liquidity        string `json:"liquidity,omitempty"`
	FeeOn            bool   `json:"fee_on,omitempty"`
	KLast            string `json:"k_last,omitempty"`
	TickLower        int32  `json:"tick_lower,omitempty"`
	TickUpper        int32  `json:"tick_upper,omitempty"`
	SlippageBips     uint32 `json:"slippage_bips,omitempty"`
	UseFullPrecision bool   `json:"use_full_precision,omitempty"`
}
