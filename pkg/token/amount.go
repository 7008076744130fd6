package token

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/shibaone/shibaswap-v3-sdk/pkg/fullmath"
)

var ErrAmountOutOfRange = errors.New("amount outside uint256")

// Amount is a raw integer quantity of a token in its smallest unit.
type Amount struct {
	token Token
	raw   *big.Int
}

// NewAmount validates 0 <= raw <= MaxUint256.
func NewAmount(t Token, raw *big.Int) (Amount, error) {
	if raw.Sign() < 0 || raw.Cmp(fullmath.MaxUint256) > 0 {
		return Amount{}, fmt.Errorf("%w: %s", ErrAmountOutOfRange, raw)
	}
	return Amount{token: t, raw: new(big.Int).Set(raw)}, nil
}

func (a Amount) Token() Token       { return a.token }
func (a Amount) Quotient() *big.Int { return new(big.Int).Set(a.raw) }

func (a Amount) Add(other Amount) (Amount, error) {
	if !a.token.Equals(other.token) {
		return Amount{}, ErrTokenMismatch
	}
	return NewAmount(a.token, new(big.Int).Add(a.raw, other.raw))
}

func (a Amount) Sub(other Amount) (Amount, error) {
	if !a.token.Equals(other.token) {
		return Amount{}, ErrTokenMismatch
	}
	return NewAmount(a.token, new(big.Int).Sub(a.raw, other.raw))
}

// Decimal returns the amount scaled by the token decimals.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.NewFromBigInt(a.raw, -int32(a.token.Decimals))
}

// ToExact renders the amount in whole-token units without trailing zeros.
func (a Amount) ToExact() string {
	return a.Decimal().String()
}
