// Package tickmath converts between ticks and Q64.96 square-root prices with
// the exact rounding of the on-chain TickMath library.
package tickmath

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/holiman/uint256"

	"github.com/shibaone/shibaswap-v3-sdk/pkg/fullmath"
)

const (
	MinTick = -887272
	MaxTick = -MinTick
)

var (
	// MinSqrtRatio is GetSqrtRatioAtTick(MinTick).
	MinSqrtRatio = big.NewInt(4295128739)
	// MaxSqrtRatio is GetSqrtRatioAtTick(MaxTick).
	MaxSqrtRatio = fullmath.MustParse("1461446703485210103287273052203988822378723970342")
)

var (
	ErrTickOutOfRange     = errors.New("tick out of range")
	ErrRatioOutOfRange    = errors.New("sqrt ratio out of range")
	ErrInvalidTickSpacing = errors.New("tick spacing must be positive")
)

// sqrt(1.0001^-(2^i)) in Q128.128 for bits 1..19 of |tick|.
var ratioFactors = [...]*uint256.Int{
	uint256.MustFromHex("0xfff97272373d413259a46990580e213a"),
	uint256.MustFromHex("0xfff2e50f5f656932ef12357cf3c7fdcc"),
	uint256.MustFromHex("0xffe5caca7e10e4e61c3624eaa0941cd0"),
	uint256.MustFromHex("0xffcb9843d60f6159c9db58835c926644"),
	uint256.MustFromHex("0xff973b41fa98c081472e6896dfb254c0"),
	uint256.MustFromHex("0xff2ea16466c96a3843ec78b326b52861"),
	uint256.MustFromHex("0xfe5dee046a99a2a811c461f1969c3053"),
	uint256.MustFromHex("0xfcbe86c7900a88aedcffc83b479aa3a4"),
	uint256.MustFromHex("0xf987a7253ac413176f2b074cf7815e54"),
	uint256.MustFromHex("0xf3392b0822b70005940c7a398e4b70f3"),
	uint256.MustFromHex("0xe7159475a2c29b7443b29c7fa6e889d9"),
	uint256.MustFromHex("0xd097f3bdfd2022b8845ad8f792aa5825"),
	uint256.MustFromHex("0xa9f746462d870fdf8a65dc1f90e061e5"),
	uint256.MustFromHex("0x70d869a156d2a1b890bb3df62baf32f7"),
	uint256.MustFromHex("0x31be135f97d08fd981231505542fcfa6"),
	uint256.MustFromHex("0x9aa508b5b7a84e1c677de54f3e99bc9"),
	uint256.MustFromHex("0x5d6af8dedb81196699c329225ee604"),
	uint256.MustFromHex("0x2216e584f5fa1ea926041bedfe98"),
	uint256.MustFromHex("0x48a170391f7dc42444e8fa2"),
}

var (
	ratioBit0 = uint256.MustFromHex("0xfffcb933bd6fad37aa2d162d1a594001")
	ratioOne  = new(uint256.Int).Lsh(uint256.NewInt(1), 128)
	maxWord   = new(uint256.Int).SetAllOne()
)

// GetSqrtRatioAtTick returns sqrt(1.0001^tick) * 2^96, rounded up.
func GetSqrtRatioAtTick(tick int) (*big.Int, error) {
	if tick < MinTick || tick > MaxTick {
		return nil, fmt.Errorf("%w: %d", ErrTickOutOfRange, tick)
	}

	absTick := tick
	if absTick < 0 {
		absTick = -absTick
	}

	ratio := new(uint256.Int)
	if absTick&1 != 0 {
		ratio.Set(ratioBit0)
	} else {
		ratio.Set(ratioOne)
	}
	for i, factor := range ratioFactors {
		if absTick&(1<<(i+1)) != 0 {
			ratio.Mul(ratio, factor)
			ratio.Rsh(ratio, 128)
		}
	}

	if tick > 0 {
		ratio.Div(maxWord, ratio)
	}

	// Q128.128 -> Q64.96, rounding up so the result never understates the price.
	roundUp := ratio.Uint64()&0xffffffff != 0
	ratio.Rsh(ratio, 32)
	if roundUp {
		ratio.AddUint64(ratio, 1)
	}

	return ratio.ToBig(), nil
}

var (
	log2ToLogSqrt10001 = fullmath.MustParse("255738958999603826347141")
	tickLowOffset      = fullmath.MustParse("3402992956809132418596140100660247210")
	tickHighOffset     = fullmath.MustParse("291339464771989622907027621153398088495")
)

// GetTickAtSqrtRatio returns the greatest tick whose sqrt ratio is at most
// sqrtRatioX96. The input must lie in [MinSqrtRatio, MaxSqrtRatio).
func GetTickAtSqrtRatio(sqrtRatioX96 *big.Int) (int, error) {
	if sqrtRatioX96.Cmp(MinSqrtRatio) < 0 || sqrtRatioX96.Cmp(MaxSqrtRatio) >= 0 {
		return 0, fmt.Errorf("%w: %s", ErrRatioOutOfRange, sqrtRatioX96)
	}

	ratio := new(big.Int).Lsh(sqrtRatioX96, 32)
	msb := ratio.BitLen() - 1

	// normalize to a 128-bit mantissa in [2^127, 2^128)
	r := new(big.Int)
	if msb >= 128 {
		r.Rsh(ratio, uint(msb-127))
	} else {
		r.Lsh(ratio, uint(127-msb))
	}

	log2 := new(big.Int).Lsh(big.NewInt(int64(msb-128)), 64)
	f := new(big.Int)
	for i := 0; i < 14; i++ {
		r.Mul(r, r)
		r.Rsh(r, 127)
		f.Rsh(r, 128)
		log2.Or(log2, new(big.Int).Lsh(f, uint(63-i)))
		r.Rsh(r, uint(f.Uint64()))
	}

	logSqrt10001 := new(big.Int).Mul(log2, log2ToLogSqrt10001)

	tickLow := new(big.Int).Sub(logSqrt10001, tickLowOffset)
	tickLow.Rsh(tickLow, 128)
	tickHigh := new(big.Int).Add(logSqrt10001, tickHighOffset)
	tickHigh.Rsh(tickHigh, 128)

	low := int(tickLow.Int64())
	high := int(tickHigh.Int64())
	if low == high {
		return low, nil
	}

	highRatio, err := GetSqrtRatioAtTick(high)
	if err != nil {
		return 0, err
	}
	if highRatio.Cmp(sqrtRatioX96) <= 0 {
		return high, nil
	}
	return low, nil
}
