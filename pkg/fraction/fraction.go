// Package fraction provides exact rational numbers for prices and
// percentages.
package fraction

import (
	"errors"
	"math/big"

	"github.com/shopspring/decimal"
)

var ErrDivisionByZero = errors.New("fraction: zero denominator")

// Fraction is an immutable numerator/denominator pair. It is not reduced.
type Fraction struct {
	numerator   *big.Int
	denominator *big.Int
}

// New returns numerator/denominator.
func New(numerator, denominator *big.Int) (Fraction, error) {
	if denominator.Sign() == 0 {
		return Fraction{}, ErrDivisionByZero
	}
	return Fraction{
		numerator:   new(big.Int).Set(numerator),
		denominator: new(big.Int).Set(denominator),
	}, nil
}

// FromInt returns n/1.
func FromInt(n int64) Fraction {
	return Fraction{numerator: big.NewInt(n), denominator: big.NewInt(1)}
}

func (f Fraction) Numerator() *big.Int   { return new(big.Int).Set(f.numerator) }
func (f Fraction) Denominator() *big.Int { return new(big.Int).Set(f.denominator) }

// Quotient truncates towards zero.
func (f Fraction) Quotient() *big.Int {
	return new(big.Int).Quo(f.numerator, f.denominator)
}

// Remainder returns the fractional part as (numerator mod denominator)/denominator.
func (f Fraction) Remainder() Fraction {
	return Fraction{
		numerator:   new(big.Int).Rem(f.numerator, f.denominator),
		denominator: new(big.Int).Set(f.denominator),
	}
}

func (f Fraction) Invert() (Fraction, error) {
	return New(f.denominator, f.numerator)
}

func (f Fraction) Add(other Fraction) Fraction {
	if f.denominator.Cmp(other.denominator) == 0 {
		return Fraction{
			numerator:   new(big.Int).Add(f.numerator, other.numerator),
			denominator: new(big.Int).Set(f.denominator),
		}
	}
	return Fraction{
		numerator: new(big.Int).Add(
			new(big.Int).Mul(f.numerator, other.denominator),
			new(big.Int).Mul(other.numerator, f.denominator),
		),
		denominator: new(big.Int).Mul(f.denominator, other.denominator),
	}
}

func (f Fraction) Sub(other Fraction) Fraction {
	return f.Add(Fraction{numerator: new(big.Int).Neg(other.numerator), denominator: other.denominator})
}

func (f Fraction) Mul(other Fraction) Fraction {
	return Fraction{
		numerator:   new(big.Int).Mul(f.numerator, other.numerator),
		denominator: new(big.Int).Mul(f.denominator, other.denominator),
	}
}

func (f Fraction) Div(other Fraction) (Fraction, error) {
	inv, err := other.Invert()
	if err != nil {
		return Fraction{}, err
	}
	return f.Mul(inv), nil
}

// Cmp compares f and other and returns -1, 0 or +1.
func (f Fraction) Cmp(other Fraction) int {
	return f.rat().Cmp(other.rat())
}

func (f Fraction) LessThan(other Fraction) bool    { return f.Cmp(other) < 0 }
func (f Fraction) EqualTo(other Fraction) bool     { return f.Cmp(other) == 0 }
func (f Fraction) GreaterThan(other Fraction) bool { return f.Cmp(other) > 0 }

func (f Fraction) rat() *big.Rat {
	return new(big.Rat).SetFrac(f.numerator, f.denominator)
}

// Decimal renders the fraction with places digits after the point,
// rounding half away from zero.
func (f Fraction) Decimal(places int32) decimal.Decimal {
	num := decimal.NewFromBigInt(f.numerator, 0)
	den := decimal.NewFromBigInt(f.denominator, 0)
	return num.DivRound(den, places)
}

// ToFixed formats the fraction with exactly places decimal digits.
func (f Fraction) ToFixed(places int32) string {
	return f.Decimal(places).StringFixed(places)
}

func (f Fraction) String() string {
	return f.numerator.String() + "/" + f.denominator.String()
}
