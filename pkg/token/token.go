// Package token defines ERC-20 token identity, raw token amounts and exact
// prices between two tokens.
package token

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrChainMismatch      = errors.New("tokens are on different chains")
	ErrTokenMismatch      = errors.New("token mismatch")
	ErrIdenticalAddresses = errors.New("identical token addresses")
	ErrInvalidAddress     = errors.New("invalid token address")
)

// Token identifies an ERC-20 token by chain and address. Decimals, Symbol
// and Name are display metadata and take no part in equality.
type Token struct {
	ChainID  uint64
	Address  common.Address
	Decimals uint8
	Symbol   string
	Name     string
}

// New parses a hex address into a Token.
func New(chainID uint64, address string, decimals uint8, symbol, name string) (Token, error) {
	if !common.IsHexAddress(address) {
		return Token{}, fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}
	return Token{
		ChainID:  chainID,
		Address:  common.HexToAddress(address),
		Decimals: decimals,
		Symbol:   symbol,
		Name:     name,
	}, nil
}

// Equals reports whether both tokens share chain and address.
func (t Token) Equals(other Token) bool {
	return t.ChainID == other.ChainID && t.Address == other.Address
}

// SortsBefore reports whether t is token0 of a pair with other.
func (t Token) SortsBefore(other Token) (bool, error) {
	if t.ChainID != other.ChainID {
		return false, fmt.Errorf("%w: %d != %d", ErrChainMismatch, t.ChainID, other.ChainID)
	}
	if t.Address == other.Address {
		return false, fmt.Errorf("%w: %s", ErrIdenticalAddresses, t.Address.Hex())
	}
	return bytes.Compare(t.Address.Bytes(), other.Address.Bytes()) < 0, nil
}

// Sort returns (token0, token1).
func Sort(a, b Token) (Token, Token, error) {
	before, err := a.SortsBefore(b)
	if err != nil {
		return Token{}, Token{}, err
	}
	if before {
		return a, b, nil
	}
	return b, a, nil
}

func (t Token) String() string {
	if t.Symbol != "" {
		return t.Symbol
	}
	return t.Address.Hex()
}
