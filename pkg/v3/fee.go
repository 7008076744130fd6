package v3

import (
	"errors"
	"fmt"
)

// FeeAmount is a pool fee in hundredths of a bip (1e-6).
type FeeAmount uint32

const (
	FeeLowest FeeAmount = 100
	FeeLow    FeeAmount = 500
	FeeMedium FeeAmount = 3000
	FeeHigh   FeeAmount = 10000
)

// feeDenominator bounds every fee: fee < 100%.
const feeDenominator = 1_000_000

var ErrInvalidFee = errors.New("invalid fee")

var tickSpacings = map[FeeAmount]int{
	FeeLowest: 1,
	FeeLow:    10,
	FeeMedium: 60,
	FeeHigh:   200,
}

// TickSpacing returns the default tick spacing of a fee tier.
func (f FeeAmount) TickSpacing() (int, error) {
	spacing, ok := tickSpacings[f]
	if !ok {
		return 0, fmt.Errorf("%w: no default tick spacing for fee %d", ErrInvalidFee, f)
	}
	return spacing, nil
}

// ParseFeeAmount accepts the tier names and raw fee values.
func ParseFeeAmount(s string) (FeeAmount, error) {
	switch s {
	case "LOWEST", "lowest", "100":
		return FeeLowest, nil
	case "LOW", "low", "500":
		return FeeLow, nil
	case "MEDIUM", "medium", "3000":
		return FeeMedium, nil
	case "HIGH", "high", "10000":
		return FeeHigh, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidFee, s)
	}
}
