package lmsr

import (
	"errors"
	"math"
)

var (
	ErrNonPositiveFee = errors.New("fee must be positive")
	ErrEmptyBalances  = errors.New("balances must not be empty")
)

// Curve is a fee-bound view of the scoring rule that checks its inputs
// instead of handing back NaN. It is immutable and safe for concurrent use.
type Curve struct {
	fee    float64
	stable bool
}

type CurveOption func(*Curve)

// WithStableLogSumExp makes the curve shift exponents by their maximum
// before exponentiating. Results match the literal formulas up to rounding
// but do not overflow for large scaled reserves.
func WithStableLogSumExp() CurveOption {
	return func(c *Curve) {
		c.stable = true
	}
}

func NewCurve(fee float64, opts ...CurveOption) (*Curve, error) {
	if !(fee > 0) || math.IsInf(fee, 1) {
		return nil, ErrNonPositiveFee
	}
	c := &Curve{fee: fee}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Curve) Fee() float64 {
	return c.fee
}

func (c *Curve) Stable() bool {
	return c.stable
}

func (c *Curve) Cost(balances []float64) (float64, error) {
	if len(balances) == 0 {
		return 0, ErrEmptyBalances
	}
	return cost(c.fee, balances, c.stable), nil
}

func (c *Curve) Price(balances []float64, q float64) (float64, error) {
	if len(balances) == 0 {
		return 0, ErrEmptyBalances
	}
	return price(c.fee, balances, q, c.stable), nil
}

func (c *Curve) Price2(balances []float64, q float64) (float64, error) {
	if len(balances) == 0 {
		return 0, ErrEmptyBalances
	}
	return price2(c.fee, balances, q, c.stable), nil
}

func (c *Curve) FirstQuotient(balances []float64, q float64) (float64, error) {
	if len(balances) == 0 {
		return 0, ErrEmptyBalances
	}
	return firstQuotient(c.fee, balances, q, c.stable), nil
}

func (c *Curve) SecondQuotient(balances []float64, q float64) (float64, error) {
	if len(balances) == 0 {
		return 0, ErrEmptyBalances
	}
	return secondQuotient(c.fee, balances, q, c.stable), nil
}

func (c *Curve) Probabilities(balances []float64) ([]float64, error) {
	if len(balances) == 0 {
		return nil, ErrEmptyBalances
	}
	return probabilities(c.fee, balances, c.stable), nil
}

// TradeCost is the cost of moving balances[idx] by delta. An idx outside
// the vector panics like any slice index.
func (c *Curve) TradeCost(delta float64, balances []float64, idx int) (float64, error) {
	if len(balances) == 0 {
		return 0, ErrEmptyBalances
	}
	return tradeCost(c.fee, delta, balances, idx, c.stable), nil
}
