package v2

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shibaone/shibaswap-v3-sdk/pkg/fullmath"
	"github.com/shibaone/shibaswap-v3-sdk/pkg/token"
)

var (
	dai, _     = token.New(1, "0x6B175474E89094C44Da98b954EedeAC495271d0F", 18, "DAI", "Dai Stablecoin")
	weth, _    = token.New(1, "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2", 18, "WETH", "Wrapped Ether")
	usdc, _    = token.New(1, "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48", 6, "USDC", "USD Coin")
	lpToken, _ = token.New(1, "0xA478c2975Ab1Ea89e8196811F51A7B7Ade33eB11", 18, "SSLP", "LP Token")
)

func amount(t *testing.T, tok token.Token, raw int64) token.Amount {
	t.Helper()
	a, err := token.NewAmount(tok, big.NewInt(raw))
	require.NoError(t, err)
	return a
}

func newPool(t *testing.T, reserveDAI, reserveWETH int64) *Pool {
	t.Helper()
	// deliberately unsorted
	p, err := NewPool(amount(t, weth, reserveWETH), amount(t, dai, reserveDAI), lpToken)
	require.NoError(t, err)
	return p
}

func TestNewPoolOrdering(t *testing.T) {
	p := newPool(t, 100, 200)
	require.True(t, p.Token0().Equals(dai))
	require.True(t, p.Token1().Equals(weth))
	require.Equal(t, int64(100), p.Reserve0().Quotient().Int64())
	require.Equal(t, int64(200), p.Reserve1().Quotient().Int64())
	require.Equal(t, uint64(1), p.ChainID())

	otherChain, _ := token.New(56, "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2", 18, "WETH", "")
	_, err := NewPool(amount(t, dai, 1), amount(t, otherChain, 1), lpToken)
	require.ErrorIs(t, err, token.ErrChainMismatch)

	_, err = NewPool(amount(t, dai, 1), amount(t, dai, 1), lpToken)
	require.ErrorIs(t, err, token.ErrIdenticalAddresses)
}

func TestPrices(t *testing.T) {
	p := newPool(t, 100, 101)

	price0, err := p.Token0Price()
	require.NoError(t, err)
	require.True(t, price0.Base.Equals(dai))
	require.Equal(t, "1.0100", price0.ToFixed(4))

	price1, err := p.PriceOf(weth)
	require.NoError(t, err)
	require.Equal(t, "0.9901", price1.ToFixed(4))

	_, err = p.PriceOf(usdc)
	require.ErrorIs(t, err, token.ErrTokenMismatch)

	_, err = p.ReserveOf(usdc)
	require.ErrorIs(t, err, token.ErrTokenMismatch)
	require.False(t, p.InvolvesToken(usdc))
}

func TestEmptyReservePrice(t *testing.T) {
	p := newPool(t, 0, 100)
	_, err := p.Token0Price()
	require.Error(t, err)
}

func TestGetOutputAmount(t *testing.T) {
	p := newPool(t, 1000, 1000)

	out, next, err := p.GetOutputAmount(amount(t, dai, 100))
	require.NoError(t, err)
	require.True(t, out.Token().Equals(weth))
	require.Equal(t, int64(90), out.Quotient().Int64())
	require.Equal(t, int64(1100), next.Reserve0().Quotient().Int64())
	require.Equal(t, int64(910), next.Reserve1().Quotient().Int64())

	// snapshot is untouched
	require.Equal(t, int64(1000), p.Reserve0().Quotient().Int64())

	_, _, err = p.GetOutputAmount(amount(t, dai, 1))
	require.ErrorIs(t, err, ErrInsufficientInputAmount)

	_, _, err = newPool(t, 0, 1000).GetOutputAmount(amount(t, dai, 100))
	require.ErrorIs(t, err, ErrInsufficientReserves)

	_, _, err = p.GetOutputAmount(amount(t, usdc, 100))
	require.ErrorIs(t, err, token.ErrTokenMismatch)
}

func TestGetInputAmount(t *testing.T) {
	p := newPool(t, 1000, 1000)

	in, next, err := p.GetInputAmount(amount(t, weth, 90))
	require.NoError(t, err)
	require.True(t, in.Token().Equals(dai))
	require.Equal(t, int64(100), in.Quotient().Int64())
	require.Equal(t, int64(1100), next.Reserve0().Quotient().Int64())
	require.Equal(t, int64(910), next.Reserve1().Quotient().Int64())

	_, _, err = p.GetInputAmount(amount(t, weth, 1000))
	require.ErrorIs(t, err, ErrInsufficientReserves)

	_, _, err = newPool(t, 1000, 0).GetInputAmount(amount(t, dai, 1))
	require.ErrorIs(t, err, ErrInsufficientReserves)
}

func TestRoundTripNeverFavorsTrader(t *testing.T) {
	for _, reserves := range [][2]int64{{1000, 1000}, {12345, 678901}} {
		p := newPool(t, reserves[0], reserves[1])
		for _, in := range []int64{7, 50, 100, 999} {
			out, next, err := p.GetOutputAmount(amount(t, dai, in))
			require.NoError(t, err)

			back, _, err := next.GetInputAmount(out)
			require.NoError(t, err)
			require.GreaterOrEqual(t, back.Quotient().Int64(), in)
		}
	}
}

func TestQuote(t *testing.T) {
	p := newPool(t, 1000, 4000)
	b, err := p.Quote(amount(t, dai, 25))
	require.NoError(t, err)
	require.True(t, b.Token().Equals(weth))
	require.Equal(t, int64(100), b.Quotient().Int64())
}

func TestGetLiquidityMinted(t *testing.T) {
	empty := newPool(t, 0, 0)
	zeroSupply := amount(t, lpToken, 0)

	_, err := empty.GetLiquidityMinted(zeroSupply, amount(t, dai, 1000), amount(t, weth, 1000))
	require.ErrorIs(t, err, ErrInsufficientInputAmount)

	minted, err := empty.GetLiquidityMinted(zeroSupply, amount(t, dai, 1_000_000), amount(t, weth, 1_000_000))
	require.NoError(t, err)
	require.Equal(t, int64(999_000), minted.Quotient().Int64())

	minted, err = empty.GetLiquidityMinted(zeroSupply, amount(t, weth, 1001), amount(t, dai, 1001))
	require.NoError(t, err)
	require.Equal(t, int64(1), minted.Quotient().Int64())

	p := newPool(t, 10000, 1000)
	minted, err = p.GetLiquidityMinted(amount(t, lpToken, 10000), amount(t, dai, 2000), amount(t, weth, 2000))
	require.NoError(t, err)
	require.True(t, minted.Token().Equals(lpToken))
	require.Equal(t, int64(2000), minted.Quotient().Int64())

	_, err = p.GetLiquidityMinted(amount(t, dai, 10000), amount(t, dai, 2000), amount(t, weth, 2000))
	require.ErrorIs(t, err, token.ErrTokenMismatch)

	_, err = p.GetLiquidityMinted(amount(t, lpToken, 10000), amount(t, usdc, 2000), amount(t, weth, 2000))
	require.ErrorIs(t, err, token.ErrTokenMismatch)
}

func TestGetLiquidityValue(t *testing.T) {
	p := newPool(t, 1000, 1000)

	value, err := p.GetLiquidityValue(dai, amount(t, lpToken, 1000), amount(t, lpToken, 1000), false, nil)
	require.NoError(t, err)
	require.Equal(t, int64(1000), value.Quotient().Int64())

	value, err = p.GetLiquidityValue(weth, amount(t, lpToken, 1000), amount(t, lpToken, 500), false, nil)
	require.NoError(t, err)
	require.Equal(t, int64(500), value.Quotient().Int64())

	// rootK=1000, rootKLast=500: fee liquidity 45 inflates supply to 545
	value, err = p.GetLiquidityValue(dai, amount(t, lpToken, 500), amount(t, lpToken, 500), true, big.NewInt(250_000))
	require.NoError(t, err)
	require.Equal(t, int64(917), value.Quotient().Int64())

	value, err = p.GetLiquidityValue(dai, amount(t, lpToken, 500), amount(t, lpToken, 500), true, big.NewInt(0))
	require.NoError(t, err)
	require.Equal(t, int64(1000), value.Quotient().Int64())

	// no growth since kLast
	value, err = p.GetLiquidityValue(dai, amount(t, lpToken, 500), amount(t, lpToken, 500), true, big.NewInt(1_000_000))
	require.NoError(t, err)
	require.Equal(t, int64(1000), value.Quotient().Int64())

	_, err = p.GetLiquidityValue(dai, amount(t, lpToken, 500), amount(t, lpToken, 501), false, nil)
	require.ErrorIs(t, err, ErrLiquidityExceedsSupply)

	_, err = p.GetLiquidityValue(dai, amount(t, lpToken, 500), amount(t, lpToken, 500), true, nil)
	require.ErrorIs(t, err, ErrMissingKLast)

	_, err = p.GetLiquidityValue(dai, amount(t, lpToken, 0), amount(t, lpToken, 0), false, nil)
	require.ErrorIs(t, err, fullmath.ErrDivisionByZero)
}

func TestPoolRecordRoundTrip(t *testing.T) {
	p := newPool(t, 1000, 2500)

	b, err := json.Marshal(p.Serialize())
	require.NoError(t, err)

	var rec PoolRecord
	require.NoError(t, json.Unmarshal(b, &rec))
	decoded, err := Deserialize(rec)
	require.NoError(t, err)

	require.Equal(t, p.Serialize(), decoded.Serialize())
	require.True(t, decoded.LiquidityToken().Equals(lpToken))

	rec.Reserve1.Token = rec.Reserve0.Token
	_, err = Deserialize(rec)
	require.ErrorIs(t, err, token.ErrIdenticalAddresses)
}
