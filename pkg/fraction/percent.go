package fraction

import (
	"errors"
	"math/big"
)

var ErrInvalidPercent = errors.New("percent must be between 0 and 1")

// Percent is a fraction in [0, 1], used for slippage tolerances.
type Percent struct {
	Fraction
}

// NewPercent returns numerator/denominator as a percent.
func NewPercent(numerator, denominator int64) (Percent, error) {
	f, err := New(big.NewInt(numerator), big.NewInt(denominator))
	if err != nil {
		return Percent{}, err
	}
	return PercentFromFraction(f)
}

// FromBips returns bips/10000.
func FromBips(bips int64) (Percent, error) {
	return NewPercent(bips, 10_000)
}

func PercentFromFraction(f Fraction) (Percent, error) {
	if f.Cmp(FromInt(0)) < 0 || f.Cmp(FromInt(1)) > 0 {
		return Percent{}, ErrInvalidPercent
	}
	return Percent{Fraction: f}, nil
}

// Deduct returns amount - floor(amount*numerator/denominator). A zero
// amount stays zero.
func (p Percent) Deduct(amount *big.Int) *big.Int {
	cut := new(big.Int).Mul(amount, p.numerator)
	cut.Quo(cut, p.denominator)
	return cut.Sub(amount, cut)
}

func (p Percent) String() string {
	return p.Fraction.Mul(FromInt(100)).ToFixed(2) + "%"
}
