package token

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shibaone/shibaswap-v3-sdk/pkg/fullmath"
)

const (
	daiAddress  = "0x6B175474E89094C44Da98b954EedeAC495271d0F"
	usdcAddress = "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"
)

func mustToken(t *testing.T, chainID uint64, address string, decimals uint8, symbol string) Token {
	t.Helper()
	tok, err := New(chainID, address, decimals, symbol, "")
	require.NoError(t, err)
	return tok
}

func TestSortsBefore(t *testing.T) {
	dai := mustToken(t, 1, daiAddress, 18, "DAI")
	usdc := mustToken(t, 1, usdcAddress, 6, "USDC")

	before, err := dai.SortsBefore(usdc)
	require.NoError(t, err)
	require.True(t, before)

	before, err = usdc.SortsBefore(dai)
	require.NoError(t, err)
	require.False(t, before)

	token0, token1, err := Sort(usdc, dai)
	require.NoError(t, err)
	require.True(t, token0.Equals(dai))
	require.True(t, token1.Equals(usdc))
}

func TestSortsBeforeErrors(t *testing.T) {
	dai := mustToken(t, 1, daiAddress, 18, "DAI")
	otherChain := mustToken(t, 56, usdcAddress, 6, "USDC")

	_, err := dai.SortsBefore(otherChain)
	require.ErrorIs(t, err, ErrChainMismatch)

	// same address, different metadata
	_, err = dai.SortsBefore(mustToken(t, 1, daiAddress, 6, "X"))
	require.ErrorIs(t, err, ErrIdenticalAddresses)
}

func TestEqualsIgnoresMetadata(t *testing.T) {
	a := mustToken(t, 1, daiAddress, 18, "DAI")
	b := mustToken(t, 1, "0x6b175474e89094c44da98b954eedeac495271d0f", 0, "")
	require.True(t, a.Equals(b))
	require.False(t, a.Equals(mustToken(t, 5, daiAddress, 18, "DAI")))
}

func TestNewInvalidAddress(t *testing.T) {
	_, err := New(1, "0x1234", 18, "", "")
	require.ErrorIs(t, err, ErrInvalidAddress)
}

func TestAmount(t *testing.T) {
	usdc := mustToken(t, 1, usdcAddress, 6, "USDC")
	dai := mustToken(t, 1, daiAddress, 18, "DAI")

	a, err := NewAmount(usdc, big.NewInt(1_500_000))
	require.NoError(t, err)
	require.Equal(t, "1.5", a.ToExact())

	sum, err := a.Add(a)
	require.NoError(t, err)
	require.Equal(t, "3000000", sum.Quotient().String())

	_, err = a.Sub(sum)
	require.ErrorIs(t, err, ErrAmountOutOfRange)

	other, _ := NewAmount(dai, big.NewInt(1))
	_, err = a.Add(other)
	require.ErrorIs(t, err, ErrTokenMismatch)

	_, err = NewAmount(usdc, new(big.Int).Add(fullmath.MaxUint256, fullmath.One))
	require.ErrorIs(t, err, ErrAmountOutOfRange)
}

func TestPrice(t *testing.T) {
	dai := mustToken(t, 1, daiAddress, 18, "DAI")
	usdc := mustToken(t, 1, usdcAddress, 6, "USDC")

	// 1 DAI = 1.01 USDC
	p, err := NewPrice(dai, usdc, fullmath.MustParse("100000000000000000000"), big.NewInt(101_000_000))
	require.NoError(t, err)
	require.Equal(t, "1.01", p.ToFixed(2))

	inv, err := p.Invert()
	require.NoError(t, err)
	require.True(t, inv.Base.Equals(usdc))
	require.Equal(t, "0.9901", inv.ToFixed(4))

	oneDai, _ := NewAmount(dai, fullmath.MustParse("1000000000000000000"))
	out, err := p.Convert(oneDai)
	require.NoError(t, err)
	require.Equal(t, "1010000", out.Quotient().String())

	_, err = p.Convert(out)
	require.ErrorIs(t, err, ErrTokenMismatch)

	_, err = NewPrice(dai, usdc, big.NewInt(0), big.NewInt(1))
	require.Error(t, err)
}

func TestAmountRecordRoundTrip(t *testing.T) {
	usdc := mustToken(t, 1, usdcAddress, 6, "USDC")
	a, _ := NewAmount(usdc, fullmath.MustParse("79831926242"))

	b, err := json.Marshal(a.Record())
	require.NoError(t, err)

	var rec AmountRecord
	require.NoError(t, json.Unmarshal(b, &rec))

	decoded, err := AmountFromRecord(rec)
	require.NoError(t, err)
	require.True(t, decoded.Token().Equals(usdc))
	require.Equal(t, usdc.Decimals, decoded.Token().Decimals)
	require.Zero(t, decoded.Quotient().Cmp(a.Quotient()))

	rec.Amount = "-1"
	_, err = AmountFromRecord(rec)
	require.ErrorIs(t, err, ErrAmountOutOfRange)
}
