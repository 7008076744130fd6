// Package v2 models a constant-product (x*y=k) pool snapshot and its swap
// and liquidity math.
package v2

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/shibaone/shibaswap-v3-sdk/pkg/token"
)

const (
	// SwapGasCost is the estimated gas of a single-hop swap.
	SwapGasCost = 60_000
	// MinimumLiquidity is burned on the first mint.
	MinimumLiquidity = 1_000
)

var (
	feeNumerator   = big.NewInt(997)
	feeDenominator = big.NewInt(1000)
	minLiquidity   = big.NewInt(MinimumLiquidity)
)

var (
	ErrInsufficientReserves    = errors.New("insufficient reserves")
	ErrInsufficientInputAmount = errors.New("insufficient input amount")
)

// Pool is an immutable reserve snapshot. Swaps return a new Pool.
type Pool struct {
	liquidityToken token.Token
	reserves       [2]token.Amount
}

// NewPool orders the reserves canonically. liquidityToken is the pool's LP
// token.
func NewPool(amountA, amountB token.Amount, liquidityToken token.Token) (*Pool, error) {
	before, err := amountA.Token().SortsBefore(amountB.Token())
	if err != nil {
		return nil, fmt.Errorf("new pool: %w", err)
	}
	if !before {
		amountA, amountB = amountB, amountA
	}
	return &Pool{
		liquidityToken: liquidityToken,
		reserves:       [2]token.Amount{amountA, amountB},
	}, nil
}

func (p *Pool) LiquidityToken() token.Token { return p.liquidityToken }
func (p *Pool) Token0() token.Token         { return p.reserves[0].Token() }
func (p *Pool) Token1() token.Token         { return p.reserves[1].Token() }
func (p *Pool) Reserve0() token.Amount      { return p.reserves[0] }
func (p *Pool) Reserve1() token.Amount      { return p.reserves[1] }
func (p *Pool) ChainID() uint64             { return p.Token0().ChainID }

// InvolvesToken reports whether t is token0 or token1.
func (p *Pool) InvolvesToken(t token.Token) bool {
	return t.Equals(p.Token0()) || t.Equals(p.Token1())
}

func (p *Pool) ReserveOf(t token.Token) (token.Amount, error) {
	switch {
	case t.Equals(p.Token0()):
		return p.reserves[0], nil
	case t.Equals(p.Token1()):
		return p.reserves[1], nil
	default:
		return token.Amount{}, fmt.Errorf("%w: %s not in pool", token.ErrTokenMismatch, t)
	}
}

func (p *Pool) other(t token.Token) token.Token {
	if t.Equals(p.Token0()) {
		return p.Token1()
	}
	return p.Token0()
}

// Token0Price is reserve1/reserve0.
func (p *Pool) Token0Price() (token.Price, error) {
	return token.NewPrice(p.Token0(), p.Token1(), p.reserves[0].Quotient(), p.reserves[1].Quotient())
}

// Token1Price is reserve0/reserve1.
func (p *Pool) Token1Price() (token.Price, error) {
	return token.NewPrice(p.Token1(), p.Token0(), p.reserves[1].Quotient(), p.reserves[0].Quotient())
}

// PriceOf returns the mid price of t in terms of the other token.
func (p *Pool) PriceOf(t token.Token) (token.Price, error) {
	if !p.InvolvesToken(t) {
		return token.Price{}, fmt.Errorf("%w: %s not in pool", token.ErrTokenMismatch, t)
	}
	if t.Equals(p.Token0()) {
		return p.Token0Price()
	}
	return p.Token1Price()
}

func (p *Pool) hasEmptyReserve() bool {
	return p.reserves[0].Quotient().Sign() == 0 || p.reserves[1].Quotient().Sign() == 0
}

// GetOutputAmount returns the output of swapping input through the pool and
// the pool after the swap:
//
//	out = in*997*reserveOut / (reserveIn*1000 + in*997)
func (p *Pool) GetOutputAmount(input token.Amount) (token.Amount, *Pool, error) {
	if !p.InvolvesToken(input.Token()) {
		return token.Amount{}, nil, fmt.Errorf("%w: %s not in pool", token.ErrTokenMismatch, input.Token())
	}
	if p.hasEmptyReserve() {
		return token.Amount{}, nil, ErrInsufficientReserves
	}

	inputReserve, _ := p.ReserveOf(input.Token())
	outputReserve, _ := p.ReserveOf(p.other(input.Token()))

	inputWithFee := new(big.Int).Mul(input.Quotient(), feeNumerator)
	numerator := new(big.Int).Mul(inputWithFee, outputReserve.Quotient())
	denominator := new(big.Int).Mul(inputReserve.Quotient(), feeDenominator)
	denominator.Add(denominator, inputWithFee)

	output, err := token.NewAmount(outputReserve.Token(), numerator.Quo(numerator, denominator))
	if err != nil {
		return token.Amount{}, nil, err
	}
	if output.Quotient().Sign() == 0 {
		return token.Amount{}, nil, ErrInsufficientInputAmount
	}

	next, err := p.afterSwap(inputReserve, input, outputReserve, output)
	if err != nil {
		return token.Amount{}, nil, err
	}
	return output, next, nil
}

// GetInputAmount returns the input required to receive output and the pool
// after the swap:
//
//	in = reserveIn*out*1000 / ((reserveOut-out)*997) + 1
func (p *Pool) GetInputAmount(output token.Amount) (token.Amount, *Pool, error) {
	if !p.InvolvesToken(output.Token()) {
		return token.Amount{}, nil, fmt.Errorf("%w: %s not in pool", token.ErrTokenMismatch, output.Token())
	}
	outputReserve, _ := p.ReserveOf(output.Token())
	if p.hasEmptyReserve() || output.Quotient().Cmp(outputReserve.Quotient()) >= 0 {
		return token.Amount{}, nil, ErrInsufficientReserves
	}
	inputReserve, _ := p.ReserveOf(p.other(output.Token()))

	numerator := new(big.Int).Mul(inputReserve.Quotient(), output.Quotient())
	numerator.Mul(numerator, feeDenominator)
	denominator := new(big.Int).Sub(outputReserve.Quotient(), output.Quotient())
	denominator.Mul(denominator, feeNumerator)

	raw := numerator.Quo(numerator, denominator)
	input, err := token.NewAmount(inputReserve.Token(), raw.Add(raw, big.NewInt(1)))
	if err != nil {
		return token.Amount{}, nil, err
	}

	next, err := p.afterSwap(inputReserve, input, outputReserve, output)
	if err != nil {
		return token.Amount{}, nil, err
	}
	return input, next, nil
}

func (p *Pool) afterSwap(inputReserve, input, outputReserve, output token.Amount) (*Pool, error) {
	newInput, err := inputReserve.Add(input)
	if err != nil {
		return nil, err
	}
	newOutput, err := outputReserve.Sub(output)
	if err != nil {
		return nil, err
	}
	return NewPool(newInput, newOutput, p.liquidityToken)
}

// Quote returns the amount of the other token that keeps the reserve ratio
// when adding amountA of liquidity: amountA * reserveB / reserveA.
func (p *Pool) Quote(amountA token.Amount) (token.Amount, error) {
	if !p.InvolvesToken(amountA.Token()) {
		return token.Amount{}, fmt.Errorf("%w: %s not in pool", token.ErrTokenMismatch, amountA.Token())
	}
	if p.hasEmptyReserve() {
		return token.Amount{}, ErrInsufficientReserves
	}
	reserveA, _ := p.ReserveOf(amountA.Token())
	reserveB, _ := p.ReserveOf(p.other(amountA.Token()))

	raw := new(big.Int).Mul(amountA.Quotient(), reserveB.Quotient())
	return token.NewAmount(reserveB.Token(), raw.Quo(raw, reserveA.Quotient()))
}
