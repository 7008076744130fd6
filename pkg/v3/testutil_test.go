package v3

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shibaone/shibaswap-v3-sdk/pkg/fullmath"
	"github.com/shibaone/shibaswap-v3-sdk/pkg/token"
)

var (
	dai, _  = token.New(1, "0x6B175474E89094C44Da98b954EedeAC495271d0F", 18, "DAI", "Dai Stablecoin")
	usdc, _ = token.New(1, "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48", 6, "USDC", "USD Coin")
	weth, _ = token.New(1, "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2", 18, "WETH", "Wrapped Ether")

	// 100 USDC : 100 DAI
	daiUSDCSqrtPrice = fullmath.MustParse("79228162514264337593543")
)

const daiUSDCTick = -276325

func daiUSDCPool(t *testing.T) *Pool {
	t.Helper()
	p, err := NewPool(PoolParams{
		TokenA:       usdc,
		TokenB:       dai,
		Fee:          FeeLow,
		SqrtRatioX96: daiUSDCSqrtPrice,
		Liquidity:    fullmath.MustParse("1000000000000000000"),
		TickCurrent:  daiUSDCTick,
	})
	require.NoError(t, err)
	return p
}

func poolAtTick(t *testing.T, tick int) *Pool {
	t.Helper()
	p, err := NewPoolAtSqrtRatio(dai, weth, FeeLow, mustSqrtAtTick(t, tick), big.NewInt(0))
	require.NoError(t, err)
	require.Equal(t, tick, p.TickCurrent())
	return p
}
