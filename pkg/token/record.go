package token

import (
	"fmt"
	"math/big"
)

// Record is the JSON form of a Token.
type Record struct {
	ChainID  uint64 `json:"chain_id"`
	Address  string `json:"address"`
	Decimals uint8  `json:"decimals"`
	Symbol   string `json:"symbol,omitempty"`
	Name     string `json:"name,omitempty"`
}

func (t Token) Record() Record {
	return Record{
		ChainID:  t.ChainID,
		Address:  t.Address.Hex(),
		Decimals: t.Decimals,
		Symbol:   t.Symbol,
		Name:     t.Name,
	}
}

func FromRecord(r Record) (Token, error) {
	return New(r.ChainID, r.Address, r.Decimals, r.Symbol, r.Name)
}

// AmountRecord is the JSON form of an Amount; the raw value is a base-10
// string.
type AmountRecord struct {
	Token  Record `json:"token"`
	Amount string `json:"amount"`
}

func (a Amount) Record() AmountRecord {
	return AmountRecord{Token: a.token.Record(), Amount: a.raw.String()}
}

func AmountFromRecord(r AmountRecord) (Amount, error) {
	t, err := FromRecord(r.Token)
	if err != nil {
		return Amount{}, err
	}
	raw, err := ParseInt(r.Amount)
	if err != nil {
		return Amount{}, err
	}
	return NewAmount(t, raw)
}

// ParseInt parses a base-10 integer string.
func ParseInt(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("parse integer %q", s)
	}
	return v, nil
}
