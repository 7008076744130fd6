package token

import (
	"math/big"

	"github.com/shibaone/shibaswap-v3-sdk/pkg/fraction"
)

// Price is the raw exchange rate quote/base in smallest units: one raw unit
// of Base is worth Fraction raw units of Quote.
type Price struct {
	fraction.Fraction
	Base  Token
	Quote Token
}

// NewPrice returns numerator/denominator quote units per base unit.
func NewPrice(base, quote Token, denominator, numerator *big.Int) (Price, error) {
	f, err := fraction.New(numerator, denominator)
	if err != nil {
		return Price{}, err
	}
	return Price{Fraction: f, Base: base, Quote: quote}, nil
}

// Invert swaps base and quote.
func (p Price) Invert() (Price, error) {
	f, err := p.Fraction.Invert()
	if err != nil {
		return Price{}, err
	}
	return Price{Fraction: f, Base: p.Quote, Quote: p.Base}, nil
}

// Multiply chains p (A->B) with other (B->C) into A->C.
func (p Price) Multiply(other Price) (Price, error) {
	if !p.Quote.Equals(other.Base) {
		return Price{}, ErrTokenMismatch
	}
	return Price{Fraction: p.Fraction.Mul(other.Fraction), Base: p.Base, Quote: other.Quote}, nil
}

// Convert values an amount of the base token in the quote token, rounding down.
func (p Price) Convert(amount Amount) (Amount, error) {
	if !amount.Token().Equals(p.Base) {
		return Amount{}, ErrTokenMismatch
	}
	raw := new(big.Int).Mul(amount.raw, p.Fraction.Numerator())
	raw.Quo(raw, p.Fraction.Denominator())
	return NewAmount(p.Quote, raw)
}

// Adjusted is the price in whole tokens: raw * 10^baseDecimals / 10^quoteDecimals.
func (p Price) Adjusted() fraction.Fraction {
	scalar, _ := fraction.New(pow10(p.Base.Decimals), pow10(p.Quote.Decimals))
	return p.Fraction.Mul(scalar)
}

// ToFixed renders the adjusted price.
func (p Price) ToFixed(places int32) string {
	return p.Adjusted().ToFixed(places)
}

func pow10(n uint8) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}
