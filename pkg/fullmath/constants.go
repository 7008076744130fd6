package fullmath

import "math/big"

var (
	Zero = big.NewInt(0)
	One  = big.NewInt(1)

	Q32  = new(big.Int).Lsh(One, 32)
	Q96  = new(big.Int).Lsh(One, 96)
	Q128 = new(big.Int).Lsh(One, 128)
	Q192 = new(big.Int).Lsh(One, 192)

	MaxUint128 = new(big.Int).Sub(Q128, One)
	MaxUint160 = new(big.Int).Sub(new(big.Int).Lsh(One, 160), One)
	MaxUint256 = new(big.Int).Sub(new(big.Int).Lsh(One, 256), One)
)

// MustParse parses a base-10 or 0x-prefixed integer literal. It panics on
// malformed input and is meant for package-level constants only.
func MustParse(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic("fullmath: invalid integer literal " + s)
	}
	return v
}
