package quote

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/shibaone/shibaswap-v3-sdk/internal/model"
	"github.com/shibaone/shibaswap-v3-sdk/pkg/fraction"
	"github.com/shibaone/shibaswap-v3-sdk/pkg/token"
)

var (
	ErrUnknownKind   = errors.New("unknown quote kind")
	ErrMissingPool   = errors.New("missing pool")
	ErrMissingField  = errors.New("missing field")
	ErrTokenNotFound = errors.New("token not in pool")
)

// Quoter evaluates single requests against the pool snapshots they carry.
// DefaultSlippageBips applies when a request leaves slippage_bips unset.
type Quoter struct {
	DefaultSlippageBips uint32
}

// Quote dispatches req by kind.
func (q Quoter) Quote(req model.QuoteRequest) (model.QuoteResult, error) {
	var (
		res model.QuoteResult
		err error
	)
	switch req.Kind {
	case model.KindV2ExactIn:
		res, err = q.v2ExactIn(req)
	case model.KindV2ExactOut:
		res, err = q.v2ExactOut(req)
	case model.KindV2Mint:
		res, err = q.v2Mint(req)
	case model.KindV2Value:
		res, err = q.v2Value(req)
	case model.KindV3Position:
		res, err = q.v3Position(req)
	case model.KindV3FromAmounts:
		res, err = q.v3FromAmounts(req)
	default:
		return model.QuoteResult{}, fmt.Errorf("%w: %q", ErrUnknownKind, req.Kind)
	}
	if err != nil {
		return model.QuoteResult{}, err
	}
	res.ID = req.ID
	res.Kind = req.Kind
	return res, nil
}

func (q Quoter) slippage(req model.QuoteRequest) (fraction.Percent, error) {
	bips := req.SlippageBips
	if bips == 0 {
		bips = q.DefaultSlippageBips
	}
	tolerance, err := fraction.FromBips(int64(bips))
	if err != nil {
		return fraction.Percent{}, fmt.Errorf("slippage %d bips: %w", bips, err)
	}
	return tolerance, nil
}

func requireInt(name, value string) (*big.Int, error) {
	if strings.TrimSpace(value) == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingField, name)
	}
	v, err := token.ParseInt(strings.TrimSpace(value))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}

// pickToken returns whichever of candidates has the given address.
func pickToken(address string, candidates ...token.Token) (token.Token, error) {
	if strings.TrimSpace(address) == "" {
		return token.Token{}, fmt.Errorf("%w: token", ErrMissingField)
	}
	if !common.IsHexAddress(address) {
		return token.Token{}, fmt.Errorf("%w: %s", token.ErrInvalidAddress, address)
	}
	addr := common.HexToAddress(address)
	for _, t := range candidates {
		if t.Address == addr {
			return t, nil
		}
	}
	return token.Token{}, fmt.Errorf("%w: %s", ErrTokenNotFound, addr.Hex())
}
