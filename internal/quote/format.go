package quote

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/shibaone/shibaswap-v3-sdk/internal/model"
	"github.com/shibaone/shibaswap-v3-sdk/pkg/token"
)

func formatAmount(raw *big.Int, decimals uint8) string {
	if raw == nil {
		return ""
	}
	return decimal.NewFromBigInt(raw, -int32(decimals)).String()
}

func tokenAmount(a token.Amount) *model.TokenAmount {
	return &model.TokenAmount{
		Token:     a.Token().Address.Hex(),
		Raw:       a.Quotient().String(),
		Formatted: a.ToExact(),
	}
}

func amountPair(amount0, amount1 *big.Int, token0, token1 token.Token) *model.AmountPair {
	return &model.AmountPair{
		Amount0:    amount0.String(),
		Amount1:    amount1.String(),
		Formatted0: formatAmount(amount0, token0.Decimals),
		Formatted1: formatAmount(amount1, token1.Decimals),
	}
}
