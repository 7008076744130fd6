// Package fullmath implements the exact integer primitives the pool math is
// built on: floor/ceil multiply-divide, rounding-up division and integer
// square root.
//
// MulDivFloor and MulDivCeil work over unbounded integers. MulDiv and
// MulDivRoundingUp reproduce the 256-bit on-chain variants and fail with
// ErrOverflow where the contract would revert.
package fullmath

import (
	"errors"
	"math/big"

	"github.com/holiman/uint256"
)

var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrOverflow       = errors.New("uint256 overflow")
	ErrNegative       = errors.New("negative operand")
)

// MulDivFloor returns floor(a*b/denominator).
func MulDivFloor(a, b, denominator *big.Int) (*big.Int, error) {
	if denominator.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	return floorDiv(new(big.Int).Mul(a, b), denominator), nil
}

// MulDivCeil returns ceil(a*b/denominator).
func MulDivCeil(a, b, denominator *big.Int) (*big.Int, error) {
	if denominator.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	return ceilDiv(new(big.Int).Mul(a, b), denominator), nil
}

// DivRoundingUp returns ceil(a/b).
func DivRoundingUp(a, b *big.Int) (*big.Int, error) {
	if b.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	return ceilDiv(a, b), nil
}

// big.Int DivMod is Euclidean: the quotient is the floor for b > 0 and the
// ceiling for b < 0.
func floorDiv(a, b *big.Int) *big.Int {
	q, m := new(big.Int).DivMod(a, b, new(big.Int))
	if b.Sign() < 0 && m.Sign() != 0 {
		q.Sub(q, One)
	}
	return q
}

func ceilDiv(a, b *big.Int) *big.Int {
	q, m := new(big.Int).DivMod(a, b, new(big.Int))
	if b.Sign() > 0 && m.Sign() != 0 {
		q.Add(q, One)
	}
	return q
}

// MulDiv computes floor(a*b/denominator) with a 512-bit intermediate product.
// Operands and the result must fit in 256 bits.
func MulDiv(a, b, denominator *big.Int) (*big.Int, error) {
	z, _, err := mulDiv256(a, b, denominator)
	if err != nil {
		return nil, err
	}
	return z.ToBig(), nil
}

// MulDivRoundingUp is MulDiv rounded towards positive infinity.
func MulDivRoundingUp(a, b, denominator *big.Int) (*big.Int, error) {
	z, exact, err := mulDiv256(a, b, denominator)
	if err != nil {
		return nil, err
	}
	if !exact {
		if z.Eq(maxWord) {
			return nil, ErrOverflow
		}
		z.AddUint64(z, 1)
	}
	return z.ToBig(), nil
}

var maxWord = new(uint256.Int).SetAllOne()

func mulDiv256(a, b, denominator *big.Int) (*uint256.Int, bool, error) {
	if denominator.Sign() == 0 {
		return nil, false, ErrDivisionByZero
	}
	x, err := ToWord(a)
	if err != nil {
		return nil, false, err
	}
	y, err := ToWord(b)
	if err != nil {
		return nil, false, err
	}
	d, err := ToWord(denominator)
	if err != nil {
		return nil, false, err
	}

	z, overflow := new(uint256.Int).MulDivOverflow(x, y, d)
	if overflow {
		return nil, false, ErrOverflow
	}

	// exact iff z*d == x*y; compare through MulMod to stay within 256 bits.
	exact := new(uint256.Int).MulMod(x, y, d).IsZero()
	return z, exact, nil
}

// ToWord converts a non-negative integer to a 256-bit word.
func ToWord(v *big.Int) (*uint256.Int, error) {
	if v.Sign() < 0 {
		return nil, ErrNegative
	}
	w, overflow := uint256.FromBig(v)
	if overflow {
		return nil, ErrOverflow
	}
	return w, nil
}

// Sqrt returns floor(sqrt(n)).
func Sqrt(n *big.Int) (*big.Int, error) {
	if n.Sign() < 0 {
		return nil, ErrNegative
	}
	return new(big.Int).Sqrt(n), nil
}
